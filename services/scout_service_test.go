package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/stats"
)

func validScoutInput() ScoutInput {
	return ScoutInput{
		GoalkeeperID:  "1",
		Opponent:      "Grêmio",
		Date:          "2025-06-14",
		MinutesPlayed: 90,
		SpecialActions: models.SpecialActions{
			BasicSaves: 3, DifficultSaves: 1,
		},
		Actions:    map[string]models.Tally{"punho": {Positive: 2}},
		PitchZones: models.PitchZones{4: 2},
		GoalZones:  models.GoalZones{9: {Saves: 1, Goals: 1}},
	}
}

func TestScoutCreateDefaultsAndNormalization(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewScoutService(repo.Scouts, repo.Goalkeepers)

	input := validScoutInput()
	input.PitchZones[7] = 0
	input.GoalZones[2] = models.GoalZoneTally{}

	created, err := svc.Create(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, models.PositionStarter, created.MatchPosition)

	// Zeroed zones are stripped on write.
	_, present := created.PitchZones[7]
	assert.False(t, present)
	_, present = created.GoalZones[2]
	assert.False(t, present)
	assert.Equal(t, 2, created.PitchZones[4])
}

func TestScoutCreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewScoutService(repo.Scouts, repo.Goalkeepers)

	tests := []struct {
		name    string
		mutate  func(*ScoutInput)
		wantErr error
	}{
		{"missing goalkeeper", func(in *ScoutInput) { in.GoalkeeperID = "" }, ErrGoalkeeperIDRequired},
		{"missing opponent", func(in *ScoutInput) { in.Opponent = "" }, ErrOpponentRequired},
		{"bad date", func(in *ScoutInput) { in.Date = "14-06-2025" }, ErrInvalidDate},
		{"under evaluation is not a match position", func(in *ScoutInput) { in.MatchPosition = models.PositionUnderEvaluation }, ErrInvalidMatchPosition},
		{"negative minutes", func(in *ScoutInput) { in.MinutesPlayed = -1 }, ErrNegativeCounter},
		{"negative special action", func(in *ScoutInput) { in.SpecialActions.SuperSaves = -2 }, ErrNegativeCounter},
		{"negative action tally", func(in *ScoutInput) { in.Actions = map[string]models.Tally{"punho": {Negative: -1}} }, ErrNegativeCounter},
		{"unknown action", func(in *ScoutInput) { in.Actions = map[string]models.Tally{"carrinho": {}} }, ErrUnknownScoutMetric},
		{"pitch zone out of range", func(in *ScoutInput) { in.PitchZones = models.PitchZones{12: 1} }, ErrInvalidZone},
		{"goal zone out of range", func(in *ScoutInput) { in.GoalZones = models.GoalZones{10: {Saves: 1}} }, ErrInvalidZone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validScoutInput()
			tt.mutate(&input)
			_, err := svc.Create(ctx, input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScoutListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewScoutService(repo.Scouts, repo.Goalkeepers)

	older := validScoutInput()
	older.Date = "2025-02-01"
	newer := validScoutInput()
	newer.Date = "2025-06-14"

	_, err := svc.Create(ctx, older)
	require.NoError(t, err)
	_, err = svc.Create(ctx, newer)
	require.NoError(t, err)

	scouts := svc.List(ctx)
	require.Len(t, scouts, 2)
	assert.Equal(t, "2025-06-14", scouts[0].Date)
	assert.Equal(t, "2025-02-01", scouts[1].Date)
}

func TestScoutHeatmaps(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewScoutService(repo.Scouts, repo.Goalkeepers)

	first := validScoutInput()
	second := validScoutInput()
	second.PitchZones = models.PitchZones{4: 1, 11: 3}

	_, err := svc.Create(ctx, first)
	require.NoError(t, err)
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	heatmaps, err := svc.Heatmaps(ctx, "1", "")
	require.NoError(t, err)
	assert.Equal(t, models.PitchZones{4: 3, 11: 3}, heatmaps.Pitch)
	assert.Equal(t, models.GoalZoneTally{Saves: 2, Goals: 2}, heatmaps.Goal[9])

	// The seeded keeper is Professional; another cohort yields empty maps.
	empty, err := svc.Heatmaps(ctx, "", models.CategorySub9)
	require.NoError(t, err)
	assert.Empty(t, empty.Pitch)

	_, err = svc.Heatmaps(ctx, "", "Sub-99")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestScoutDocument(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewScoutService(repo.Scouts, repo.Goalkeepers)

	created, err := svc.Create(ctx, validScoutInput())
	require.NoError(t, err)

	doc, err := svc.Document(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alisson Becker", doc.KeeperName)
	assert.Equal(t, 4, doc.TotalSaves)
	assert.Equal(t, 1, doc.GoalsAgainst)

	// A dangling goalkeeper id falls back to the placeholder label.
	dangling := validScoutInput()
	dangling.GoalkeeperID = "ghost"
	created, err = svc.Create(ctx, dangling)
	require.NoError(t, err)

	doc, err = svc.Document(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, stats.PlaceholderKeeperName, doc.KeeperName)

	_, err = svc.Document(ctx, "missing")
	assert.ErrorIs(t, err, ErrScoutNotFound)
}
