// Package narrative produces the free-text performance commentary. It is the
// only network dependency in the system and is isolated behind a
// pure-input/text-output contract: callers always get a string, never an
// error, so the aggregation engine stays unit-testable without HTTP mocks.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/gbfmachado/gkpro-system/stats"
)

// Fixed fallback texts, in the club's working language.
const (
	MsgDisabled    = "Análise inteligente indisponível. Configure a GEMINI_API_KEY."
	MsgUnavailable = "Não foi possível gerar a análise inteligente no momento."
)

// ScoutFacts is the aggregated scouting payload sent with every request.
type ScoutFacts struct {
	TotalSaves  int `json:"total_saves"`
	CleanSheets int `json:"clean_sheets"`
	TotalGames  int `json:"total_games"`
}

// Summarizer turns aggregated metrics into a short technical commentary.
type Summarizer interface {
	Summarize(ctx context.Context, keeperName string, radar []stats.RadarAxis, facts ScoutFacts) string
}

type disabledSummarizer struct{}

func (disabledSummarizer) Summarize(context.Context, string, []stats.RadarAxis, ScoutFacts) string {
	return MsgDisabled
}

type geminiSummarizer struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// New builds a Summarizer. Without an API key the feature is disabled rather
// than an error; a client construction failure likewise degrades to the
// disabled message.
func New(ctx context.Context, apiKey, model string, logger *slog.Logger) Summarizer {
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, narrative summaries disabled")
		return disabledSummarizer{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.Error("failed to create GenAI client, narrative summaries disabled", slog.Any("error", err))
		return disabledSummarizer{}
	}

	return &geminiSummarizer{client: client, model: model, logger: logger}
}

func (s *geminiSummarizer) Summarize(ctx context.Context, keeperName string, radar []stats.RadarAxis, facts ScoutFacts) string {
	radarJSON, err := json.Marshal(radar)
	if err != nil {
		return MsgUnavailable
	}
	factsJSON, err := json.Marshal(facts)
	if err != nil {
		return MsgUnavailable
	}

	prompt := fmt.Sprintf(`Você é um especialista em treinamento de goleiros de elite.
Analise os dados do goleiro %s.
Avaliações Recentes: %s
Scout de Jogo Recente: %s

Forneça um breve resumo técnico (máximo 150 palavras) em português destacando:
1. Principal ponto forte atual.
2. Área crítica de desenvolvimento.
3. Uma sugestão prática de exercício.`, keeperName, radarJSON, factsJSON)

	// Single attempt, no retry: any failure degrades to the fixed fallback.
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		s.logger.Error("narrative generation failed", slog.String("keeper", keeperName), slog.Any("error", err))
		return MsgUnavailable
	}

	text := resp.Text()
	if text == "" {
		return MsgUnavailable
	}
	return text
}
