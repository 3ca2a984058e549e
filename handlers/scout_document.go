package handlers

import "html/template"

// scoutDocumentTemplate is a self-contained page meant to be printed or saved
// as PDF from the browser.
var scoutDocumentTemplate = template.Must(template.New("scout-document").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Scout de Jogo - {{.KeeperName}}</title>
<style>
	body { font-family: Arial, Helvetica, sans-serif; margin: 40px; color: #1a1a1a; }
	h1 { font-size: 22px; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; }
	h2 { font-size: 16px; margin-top: 28px; }
	table { border-collapse: collapse; width: 100%; margin-top: 8px; }
	th, td { border: 1px solid #999; padding: 6px 10px; text-align: left; font-size: 13px; }
	th { background: #f0f0f0; }
	.meta td { border: none; padding: 2px 0; }
	@media print { body { margin: 12mm; } }
</style>
</head>
<body>
<h1>Scout de Jogo</h1>
<table class="meta">
	<tr><td><strong>Goleiro:</strong> {{.KeeperName}}</td></tr>
	<tr><td><strong>Adversário:</strong> {{.Scout.Opponent}}</td></tr>
	<tr><td><strong>Data:</strong> {{.Scout.Date}}</td></tr>
	{{if .Scout.Competition}}<tr><td><strong>Competição:</strong> {{.Scout.Competition}}</td></tr>{{end}}
	{{if .Scout.Result}}<tr><td><strong>Resultado:</strong> {{.Scout.Result}}</td></tr>{{end}}
	<tr><td><strong>Minutos jogados:</strong> {{.Scout.MinutesPlayed}}</td></tr>
</table>

<h2>Resumo</h2>
<table>
	<tr><th>Defesas</th><th>Gols sofridos</th><th>Jogo sem sofrer gols</th></tr>
	<tr>
		<td>{{.TotalSaves}}</td>
		<td>{{.GoalsAgainst}}</td>
		<td>{{if .Scout.CleanSheet}}Sim{{else}}Não{{end}}</td>
	</tr>
</table>

<h2>Ações especiais</h2>
<table>
	<tr><th>Defesas simples</th><th>Defesas difíceis</th><th>Defesaças</th><th>Erros capitais</th></tr>
	<tr>
		<td>{{.Scout.SpecialActions.BasicSaves}}</td>
		<td>{{.Scout.SpecialActions.DifficultSaves}}</td>
		<td>{{.Scout.SpecialActions.SuperSaves}}</td>
		<td>{{.Scout.SpecialActions.CriticalErrors}}</td>
	</tr>
</table>

{{if .Scout.Actions}}
<h2>Ações técnicas</h2>
<table>
	<tr><th>Ação</th><th>Acertos</th><th>Erros</th></tr>
	{{range $action, $tally := .Scout.Actions}}
	<tr><td>{{$action}}</td><td>{{$tally.Positive}}</td><td>{{$tally.Negative}}</td></tr>
	{{end}}
</table>
{{end}}

{{if .Scout.GoalZones}}
<h2>Zonas do gol</h2>
<table>
	<tr><th>Zona</th><th>Defesas</th><th>Gols</th></tr>
	{{range $zone, $tally := .Scout.GoalZones}}
	<tr><td>{{$zone}}</td><td>{{$tally.Saves}}</td><td>{{$tally.Goals}}</td></tr>
	{{end}}
</table>
{{end}}
</body>
</html>
`))
