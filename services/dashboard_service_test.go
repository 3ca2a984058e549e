package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbfmachado/gkpro-system/models"
)

func TestDashboardGetStats(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewDashboardService(repo.Goalkeepers, repo.Scouts)

	// Seeded keeper "1" is Professional.
	require.NoError(t, repo.Scouts.Add(ctx, models.MatchScout{
		ID:             "s1",
		GoalkeeperID:   "1",
		Opponent:       "Flamengo",
		Date:           "2025-06-01",
		SpecialActions: models.SpecialActions{BasicSaves: 4, CriticalErrors: 1},
	}))

	all, err := svc.GetStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, all.Summary.Games)
	assert.Equal(t, 4, all.Summary.TotalSaves)
	assert.Equal(t, 1, all.Summary.CriticalErrors)
	require.Len(t, all.Corrections, 1)
	assert.Equal(t, "Alisson Becker", all.Corrections[0].KeeperName)

	professional, err := svc.GetStats(ctx, models.CategoryProfessional)
	require.NoError(t, err)
	assert.Equal(t, 1, professional.Summary.Games)

	// Another cohort sees no matches but still gets the performance series.
	other, err := svc.GetStats(ctx, models.CategorySub13)
	require.NoError(t, err)
	assert.Equal(t, 0, other.Summary.Games)
	assert.NotEmpty(t, other.CategoryPerformance)

	_, err = svc.GetStats(ctx, "Sub-99")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
