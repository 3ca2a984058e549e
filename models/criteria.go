package models

// Evaluation criteria vocabularies. Criterion names are kept in the club's
// working language since they are data, not identifiers.

var DefensiveCriteria = []string{
	"Defesa em pé", "Encaixe abdômen", "Entrada", "Entrada completa", "Punho",
	"Quedas Alta", "Mão trocada", "Quedas Rasteira", "Quedas Meia altura",
	"Saídas de gol Enfrentamento", "Saídas de gol Alta",
	"Saídas de gol Alta direcionada", "Saídas de gol Rasteira",
	"Expectativa Base", "Expectativa Posição", "Passada cruzada",
	"Passada lateral", "Rebotes direcionados", "Improviso", "Balanço", "Giro",
}

var OffensiveCriteria = []string{
	"Tiro de meta", "Reposição de mão", "Reposição voleio", "Bola ao chão",
	"Domínio", "Passe curto", "Passe médio", "Passe longo",
}

var TacticalCriteria = []string{
	"Bissetriz", "Cruzamentos", "Bolas paradas", "Organização ofensiva",
	"Transição defensiva", "Organização defensiva", "Transição ofensiva",
}

var PhysicalCriteria = []string{
	"Antropometria/Estatura", "Força", "Potência", "Velocidade", "Reação",
	"Agilidade", "Mobilidade", "Resistência específica", "Coordenação motora",
}

var BehavioralCriteria = []string{
	"Comunicação", "Liderança", "Concentração", "Competitividade",
	"Tomada de decisão", "Controle emocional",
}

// PhysicalStructure groups the gym and field work tags offered by training
// forms. Stored training tags are plain strings; this is a menu, not a
// constraint.
var PhysicalStructure = map[string][]string{
	"mmss":        {"MMSS - Força", "MMSS - Resistência", "MMSS - Hipertrofia"},
	"mmii":        {"MMII - Força", "MMII - Resistência", "MMII - Hipertrofia"},
	"power":       {"Potência Muscular", "Potência de Salto", "Pliometria"},
	"maxStrength": {"Força Máxima (MMII)", "Força Máxima (MMSS)"},
	"maxSpeed":    {"Velocidade Máxima", "Aceleração Linear"},
	"core":        {"Core - Estabilidade", "Core - Dinâmico", "Anti-rotação"},
	"mobility":    {"Mobilidade Quadril", "Mobilidade Tornozelo", "Mobilidade Ombro"},
	"field": {
		"Velocidade Específica", "Reação de Campo", "Agilidade Específica",
		"Resistência Específica", "Coordenação Motora",
	},
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

// ValidDefensiveCriterion and friends report vocabulary membership for the
// five evaluation score groups.
func ValidDefensiveCriterion(name string) bool  { return contains(DefensiveCriteria, name) }
func ValidOffensiveCriterion(name string) bool  { return contains(OffensiveCriteria, name) }
func ValidTacticalCriterion(name string) bool   { return contains(TacticalCriteria, name) }
func ValidPhysicalCriterion(name string) bool   { return contains(PhysicalCriteria, name) }
func ValidBehavioralCriterion(name string) bool { return contains(BehavioralCriteria, name) }
