package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbfmachado/gkpro-system/models"
)

func TestGroupAverage(t *testing.T) {
	assert.Equal(t, 0.0, GroupAverage(nil))
	assert.Equal(t, 0.0, GroupAverage(map[string]int{}))

	// Absent criteria are excluded from the mean, not counted as zero.
	assert.Equal(t, 3.0, GroupAverage(map[string]int{"Punho": 4, "Entrada": 2}))
}

func TestLatestEvaluation(t *testing.T) {
	evals := []models.Evaluation{
		{ID: "e1", GoalkeeperID: "g1", Date: "2025-01-10"},
		{ID: "e2", GoalkeeperID: "g1", Date: "2025-04-02"},
		{ID: "e3", GoalkeeperID: "g2", Date: "2025-12-31"},
		{ID: "e4", GoalkeeperID: "g1", Date: "2025-04-02"},
	}

	latest, found := LatestEvaluation(evals, "g1")
	require.True(t, found)
	// Ties keep the earliest-seen record.
	assert.Equal(t, "e2", latest.ID)

	_, found = LatestEvaluation(evals, "unknown")
	assert.False(t, found)
}

func TestRadarProfileNil(t *testing.T) {
	axes := RadarProfile(nil)

	require.Len(t, axes, 5)
	assert.Equal(t, "Defensivo", axes[0].Subject)
	assert.Equal(t, "Comportamental", axes[4].Subject)
	for _, axis := range axes {
		assert.Equal(t, 0.0, axis.Score)
		assert.Equal(t, float64(models.ScoreMax), axis.MaxScore)
	}
}

func TestRadarProfile(t *testing.T) {
	eval := models.Evaluation{
		TechnicalDefensive: map[string]int{"Punho": 4, "Entrada": 2},
		Tactical:           map[string]int{"Posicionamento": 5},
	}

	axes := RadarProfile(&eval)

	require.Len(t, axes, 5)
	assert.Equal(t, 3.0, axes[0].Score)
	assert.Equal(t, 0.0, axes[1].Score)
	assert.Equal(t, 5.0, axes[2].Score)
}

func TestPooledScore(t *testing.T) {
	eval := models.Evaluation{
		TechnicalDefensive: map[string]int{"Punho": 5, "Encaixe": 3},
		Tactical:           map[string]int{"Posicionamento": 1},
	}

	// Straight pool mean: groups of different sizes weigh proportionally.
	assert.InDelta(t, 3.0, PooledScore(eval), 1e-9)

	assert.Equal(t, 0.0, PooledScore(models.Evaluation{}))
}

func TestRankGoalkeepers(t *testing.T) {
	keepers := []models.Goalkeeper{
		{ID: "g1", Name: "Primeiro"},
		{ID: "g2", Name: "Segundo"},
		{ID: "g3", Name: "Sem avaliação"},
	}
	evals := []models.Evaluation{
		{ID: "e1", GoalkeeperID: "g1", Date: "2025-01-01", Tactical: map[string]int{"Posicionamento": 2}},
		{ID: "e2", GoalkeeperID: "g1", Date: "2025-06-01", Tactical: map[string]int{"Posicionamento": 3}},
		{ID: "e3", GoalkeeperID: "g2", Date: "2025-02-01", Physical: map[string]int{"Velocidade": 5, "Força": 4}},
	}

	ranking := RankGoalkeepers(keepers, evals)

	require.Len(t, ranking, 3)
	// g2 averages 4.5 from its only evaluation; g1's latest scores 3.0; g3 has
	// no evaluations and sorts last at zero.
	assert.Equal(t, "g2", ranking[0].ID)
	assert.Equal(t, 4.5, ranking[0].Score)
	assert.Equal(t, "g1", ranking[1].ID)
	assert.Equal(t, 3.0, ranking[1].Score)
	assert.Equal(t, "g3", ranking[2].ID)
	assert.Equal(t, 0.0, ranking[2].Score)
}

func TestRankGoalkeepersRoundedTies(t *testing.T) {
	keepers := []models.Goalkeeper{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}
	// Equal rounded scores tie; input order decides.
	evals := []models.Evaluation{
		{ID: "e1", GoalkeeperID: "a", Date: "2025-01-01", Tactical: map[string]int{
			"Posicionamento": 3, "Leitura de jogo": 3, "Antecipação": 3,
		}},
		{ID: "e2", GoalkeeperID: "b", Date: "2025-01-01", Tactical: map[string]int{
			"Posicionamento": 3, "Leitura de jogo": 3, "Antecipação": 3,
		}},
	}

	ranking := RankGoalkeepers(keepers, evals)

	require.Len(t, ranking, 2)
	assert.Equal(t, "a", ranking[0].ID)
	assert.Equal(t, ranking[0].Score, ranking[1].Score)
}
