package models

// Evaluation score bounds. A criterion absent from a score map means "not yet
// scored", which is distinct from a score of 0.
const (
	ScoreMin = 0
	ScoreMax = 5
)

type EvaluationFrequency string

const (
	FrequencyNone EvaluationFrequency = "none"
	FrequencyOnce EvaluationFrequency = "1x"
	FrequencyTwo  EvaluationFrequency = "2x"
	FrequencyTri  EvaluationFrequency = "3x"
)

func ValidEvaluationFrequency(f EvaluationFrequency) bool {
	switch f {
	case FrequencyNone, FrequencyOnce, FrequencyTwo, FrequencyTri:
		return true
	}
	return false
}

// Evaluation is one scoring session for a goalkeeper. The five maps are
// sparse: only criteria that were actually scored carry an entry, each an
// integer in [ScoreMin, ScoreMax]. GoalkeeperID is a weak reference and may
// dangle after the goalkeeper is deleted.
type Evaluation struct {
	ID                 string              `json:"id"`
	GoalkeeperID       string              `json:"goalkeeper_id"`
	Date               string              `json:"date"`
	TechnicalDefensive map[string]int      `json:"technical_defensive"`
	TechnicalOffensive map[string]int      `json:"technical_offensive"`
	Tactical           map[string]int      `json:"tactical"`
	Physical           map[string]int      `json:"physical"`
	Behavioral         map[string]int      `json:"behavioral"`
	Frequency          EvaluationFrequency `json:"frequency,omitempty"`
	Observations       string              `json:"observations,omitempty"`
	HighlightsLink     string              `json:"highlights_link,omitempty"`
	ImprovementsLink   string              `json:"improvements_link,omitempty"`
}

func (e Evaluation) EntityID() string { return e.ID }

// ScoreGroups returns the five score maps in the fixed radar order:
// defensive, offensive, tactical, physical, behavioral.
func (e Evaluation) ScoreGroups() []map[string]int {
	return []map[string]int{
		e.TechnicalDefensive,
		e.TechnicalOffensive,
		e.Tactical,
		e.Physical,
		e.Behavioral,
	}
}
