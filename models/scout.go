package models

// ScoutMetricIDs are the fine-grained technical-action identifiers tracked
// per match. They are distinct from the four special-action counters.
var ScoutMetricIDs = []string{
	"punho",
	"encaixe",
	"entrada",
	"entradaCompleta",
	"quedaRasteira",
	"quedaMeiaAltura",
	"quedaAlta",
	"quedaMaoTrocada",
	"saidaRasteira",
	"enfrentamentos",
	"saidaAlta",
	"saidaAltaDirecionada",
	"coberturas",
	"bolaAoChao",
	"tiroDeMeta",
	"reposicaoMao",
	"reposicaoVoleio",
	"passeCirculacao",
	"passeRuptura",
	"lancamento",
}

// Pitch-origin zones run 1..11, goal-mouth zones 1..9.
const (
	PitchZoneMax = 11
	GoalZoneMax  = 9
)

// Tally is a positive/negative pair for one technical action. Both counters
// are independent and never negative.
type Tally struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// SpecialActions are the four headline scouting counters. Saves here are what
// "total saves" aggregates over; the per-action tallies are tracked apart.
type SpecialActions struct {
	BasicSaves     int `json:"basic_saves"`
	DifficultSaves int `json:"difficult_saves"`
	SuperSaves     int `json:"super_saves"`
	CriticalErrors int `json:"critical_errors"`
}

// TotalSaves is basic + difficult + super for a single match.
func (s SpecialActions) TotalSaves() int {
	return s.BasicSaves + s.DifficultSaves + s.SuperSaves
}

type GoalZoneTally struct {
	Saves int `json:"saves"`
	Goals int `json:"goals"`
}

// PitchZones maps pitch-origin zone (1..11) to shot count. A zone whose count
// returns to zero is deleted from the map, never stored as zero: aggregation
// treats key absence as zero and relies on this for heatmap sparsity.
type PitchZones map[int]int

// Set enforces the delete-at-zero rule.
func (z PitchZones) Set(zone, count int) {
	if count <= 0 {
		delete(z, zone)
		return
	}
	z[zone] = count
}

// Normalized returns a copy with all non-positive entries stripped.
func (z PitchZones) Normalized() PitchZones {
	if z == nil {
		return nil
	}
	out := make(PitchZones, len(z))
	for zone, count := range z {
		if count > 0 {
			out[zone] = count
		}
	}
	return out
}

// GoalZones maps goal-mouth zone (1..9) to its save/goal tally, with the same
// delete-at-zero policy as PitchZones.
type GoalZones map[int]GoalZoneTally

func (z GoalZones) Set(zone int, t GoalZoneTally) {
	if t.Saves < 0 {
		t.Saves = 0
	}
	if t.Goals < 0 {
		t.Goals = 0
	}
	if t.Saves == 0 && t.Goals == 0 {
		delete(z, zone)
		return
	}
	z[zone] = t
}

func (z GoalZones) Normalized() GoalZones {
	if z == nil {
		return nil
	}
	out := make(GoalZones, len(z))
	for zone, t := range z {
		if t.Saves < 0 {
			t.Saves = 0
		}
		if t.Goals < 0 {
			t.Goals = 0
		}
		if t.Saves == 0 && t.Goals == 0 {
			continue
		}
		out[zone] = t
	}
	return out
}

// MatchScout is one match worth of scouting data for one goalkeeper.
type MatchScout struct {
	ID                string           `json:"id"`
	GoalkeeperID      string           `json:"goalkeeper_id"`
	Opponent          string           `json:"opponent"`
	Date              string           `json:"date"`
	Competition       string           `json:"competition,omitempty"`
	Result            string           `json:"result,omitempty"`
	CleanSheet        bool             `json:"clean_sheet"`
	GoalParticipation bool             `json:"goal_participation"`
	Assists           int              `json:"assists,omitempty"`
	GoalsScored       int              `json:"goals_scored,omitempty"`
	Penalties         *Tally           `json:"penalties,omitempty"`
	MinutesPlayed     int              `json:"minutes_played"`
	MatchPosition     Position         `json:"match_position"`
	Actions           map[string]Tally `json:"actions"`
	SpecialActions    SpecialActions   `json:"special_actions"`
	PitchZones        PitchZones       `json:"pitch_zones,omitempty"`
	GoalZones         GoalZones        `json:"goal_zones,omitempty"`
}

func (m MatchScout) EntityID() string { return m.ID }

// TechnicalNegatives sums the negative side of every technical-action tally.
func (m MatchScout) TechnicalNegatives() int {
	total := 0
	for _, t := range m.Actions {
		total += t.Negative
	}
	return total
}

// ZoneGoals sums conceded goals across the goal-mouth zone map.
func (m MatchScout) ZoneGoals() int {
	total := 0
	for _, t := range m.GoalZones {
		total += t.Goals
	}
	return total
}
