package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/narrative"
	"github.com/gbfmachado/gkpro-system/stats"
)

// stubSummarizer echoes a canned text and records its last call.
type stubSummarizer struct {
	text     string
	lastName string
	calls    int
}

func (s *stubSummarizer) Summarize(ctx context.Context, keeperName string, radar []stats.RadarAxis, facts narrative.ScoutFacts) string {
	s.lastName = keeperName
	s.calls++
	return s.text
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewReportService(repo.Goalkeepers, repo.Evaluations, repo.Scouts, &stubSummarizer{})

	require.NoError(t, repo.Evaluations.Add(ctx, models.Evaluation{
		ID:           "e1",
		GoalkeeperID: "1",
		Date:         "2025-05-01",
		Tactical:     map[string]int{"Posicionamento": 4},
	}))
	require.NoError(t, repo.Scouts.Add(ctx, models.MatchScout{
		ID:             "s1",
		GoalkeeperID:   "1",
		CleanSheet:     true,
		SpecialActions: models.SpecialActions{BasicSaves: 5},
	}))

	report, err := svc.Report(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, "Alisson Becker", report.Goalkeeper.Name)
	require.Len(t, report.Radar, 5)
	assert.Equal(t, 4.0, report.Radar[2].Score)
	assert.Equal(t, 1, report.Scout.Games)
	assert.Equal(t, 5, report.Scout.TotalSaves)
	assert.Equal(t, 1, report.Scout.CleanSheets)
	assert.Equal(t, 1, report.RankPosition)

	_, err = svc.Report(ctx, "missing")
	assert.ErrorIs(t, err, ErrGoalkeeperNotFound)
}

func TestReportWithoutEvaluations(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewReportService(repo.Goalkeepers, repo.Evaluations, repo.Scouts, &stubSummarizer{})

	report, err := svc.Report(ctx, "1")
	require.NoError(t, err)

	// No evaluations: the radar still carries five zeroed axes.
	require.Len(t, report.Radar, 5)
	for _, axis := range report.Radar {
		assert.Equal(t, 0.0, axis.Score)
	}
}

func TestRanking(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewReportService(repo.Goalkeepers, repo.Evaluations, repo.Scouts, &stubSummarizer{})

	require.NoError(t, repo.Goalkeepers.Add(ctx, models.Goalkeeper{ID: "g2", Name: "Novato", Category: models.CategorySub17}))
	require.NoError(t, repo.Evaluations.Add(ctx, models.Evaluation{
		ID:           "e1",
		GoalkeeperID: "g2",
		Date:         "2025-05-01",
		Physical:     map[string]int{"Velocidade": 5},
	}))

	ranking := svc.Ranking(ctx)
	require.Len(t, ranking, 2)
	assert.Equal(t, "g2", ranking[0].ID)
	assert.Equal(t, 5.0, ranking[0].Score)
	assert.Equal(t, "1", ranking[1].ID)
	assert.Equal(t, 0.0, ranking[1].Score)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	stub := &stubSummarizer{text: "Comentário técnico."}
	svc := NewReportService(repo.Goalkeepers, repo.Evaluations, repo.Scouts, stub)

	text, err := svc.Summary(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Comentário técnico.", text)
	assert.Equal(t, "Alisson Becker", stub.lastName)

	_, err = svc.Summary(ctx, "missing")
	assert.ErrorIs(t, err, ErrGoalkeeperNotFound)
}
