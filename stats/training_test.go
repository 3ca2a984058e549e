package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbfmachado/gkpro-system/models"
)

func TestMonthlyContentFrequency(t *testing.T) {
	trainings := []models.Training{
		{
			ID: "t1", Date: "2025-03-03", Category: models.CategorySub15,
			Goalkeepers:        []string{"g1", "g2"},
			TechnicalObjective: []string{"Encaixe", "Punho"},
			TacticalObjective:  []string{"Organização ofensiva"},
		},
		{
			ID: "t2", Date: "2025-03-10", Category: models.CategorySub15,
			Goalkeepers:        []string{"g1"},
			TechnicalObjective: []string{"Encaixe"},
			TacticalObjective:  []string{"Organização ofensiva"},
		},
		{
			ID: "t3", Date: "2025-04-01", Category: models.CategorySub15,
			TacticalObjective: []string{"Organização ofensiva"},
		},
		{
			ID: "t4", Date: "not-a-date", Category: models.CategorySub15,
			TacticalObjective: []string{"Organização ofensiva"},
		},
	}

	freq := MonthlyContentFrequency(trainings, FrequencyFilter{Year: 2025, Month: time.March})

	// t3 is another month, t4 has an unparseable date.
	assert.Equal(t, 2, freq.TotalSessions)
	require.Len(t, freq.Groups, 4)

	technical := freq.Groups[0]
	assert.Equal(t, "Técnico", technical.Name)
	require.Len(t, technical.Items, 2)
	assert.Equal(t, TagCount{Tag: "Encaixe", Count: 2}, technical.Items[0])
	assert.Equal(t, TagCount{Tag: "Punho", Count: 1}, technical.Items[1])

	tactical := freq.Groups[1]
	assert.Equal(t, "Tático", tactical.Name)
	require.Len(t, tactical.Items, 1)
	assert.Equal(t, TagCount{Tag: "Organização ofensiva", Count: 2}, tactical.Items[0])

	assert.Empty(t, freq.Groups[2].Items)
	assert.Empty(t, freq.Groups[3].Items)
}

func TestMonthlyContentFrequencyFilters(t *testing.T) {
	trainings := []models.Training{
		{ID: "t1", Date: "2025-03-03", Category: models.CategorySub15, Goalkeepers: []string{"g1"}, PhysicalObjective: []string{"Velocidade"}},
		{ID: "t2", Date: "2025-03-10", Category: models.CategorySub17, Goalkeepers: []string{"g2"}, PhysicalObjective: []string{"Velocidade"}},
	}

	byCategory := MonthlyContentFrequency(trainings, FrequencyFilter{Year: 2025, Month: time.March, Category: models.CategorySub17})
	assert.Equal(t, 1, byCategory.TotalSessions)

	byKeeper := MonthlyContentFrequency(trainings, FrequencyFilter{Year: 2025, Month: time.March, GoalkeeperID: "g1"})
	assert.Equal(t, 1, byKeeper.TotalSessions)
	assert.Equal(t, 1, byKeeper.Groups[2].Items[0].Count)

	none := MonthlyContentFrequency(trainings, FrequencyFilter{Year: 2024, Month: time.March})
	assert.Equal(t, 0, none.TotalSessions)
}

func TestMonthlyContentFrequencyRepeatedTags(t *testing.T) {
	trainings := []models.Training{
		{ID: "t1", Date: "2025-05-05", Category: models.CategorySub11,
			BehavioralObjective: []string{"Foco", "Foco", "Liderança"}},
	}

	freq := MonthlyContentFrequency(trainings, FrequencyFilter{Year: 2025, Month: time.May})

	// Raw occurrence counting: a tag repeated within one session counts twice.
	behavioral := freq.Groups[3]
	require.Len(t, behavioral.Items, 2)
	assert.Equal(t, TagCount{Tag: "Foco", Count: 2}, behavioral.Items[0])
	assert.Equal(t, TagCount{Tag: "Liderança", Count: 1}, behavioral.Items[1])
}
