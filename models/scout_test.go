package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchZonesSet(t *testing.T) {
	zones := PitchZones{}

	zones.Set(3, 2)
	assert.Equal(t, PitchZones{3: 2}, zones)

	zones.Set(3, 0)
	_, present := zones[3]
	assert.False(t, present, "a zone cleared to zero must be deleted")

	zones.Set(5, -1)
	assert.Empty(t, zones)
}

func TestPitchZonesNormalized(t *testing.T) {
	zones := PitchZones{1: 2, 4: 0, 7: -3}

	assert.Equal(t, PitchZones{1: 2}, zones.Normalized())
	assert.Nil(t, PitchZones(nil).Normalized())
}

func TestGoalZonesSet(t *testing.T) {
	zones := GoalZones{}

	zones.Set(9, GoalZoneTally{Saves: 1, Goals: -2})
	assert.Equal(t, GoalZoneTally{Saves: 1}, zones[9])

	zones.Set(9, GoalZoneTally{})
	assert.Empty(t, zones)
}

func TestGoalZonesNormalized(t *testing.T) {
	zones := GoalZones{
		1: {Saves: 2, Goals: 1},
		5: {},
		8: {Saves: -1, Goals: 0},
	}

	assert.Equal(t, GoalZones{1: {Saves: 2, Goals: 1}}, zones.Normalized())
}

func TestMatchScoutTechnicalNegatives(t *testing.T) {
	scout := MatchScout{Actions: map[string]Tally{
		"punho":   {Positive: 3, Negative: 2},
		"encaixe": {Negative: 1},
	}}

	assert.Equal(t, 3, scout.TechnicalNegatives())
	assert.Equal(t, 0, MatchScout{}.TechnicalNegatives())
}

func TestSpecialActionsTotalSaves(t *testing.T) {
	sa := SpecialActions{BasicSaves: 2, DifficultSaves: 1, SuperSaves: 1, CriticalErrors: 4}

	// Critical errors never count toward saves.
	assert.Equal(t, 4, sa.TotalSaves())
}
