package models

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

func ValidIntensity(i Intensity) bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

type Exercise struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Duration    string    `json:"duration,omitempty"`
	Intensity   Intensity `json:"intensity"`
	Notes       string    `json:"notes,omitempty"`
}

// Training is one session. The four objective lists hold freeform strings
// drawn from the controlled vocabularies but are deliberately not validated
// against them at write time.
type Training struct {
	ID                  string     `json:"id"`
	Date                string     `json:"date"`
	Category            Category   `json:"category"`
	Goalkeepers         []string   `json:"goalkeepers"`
	TechnicalObjective  []string   `json:"technical_objective,omitempty"`
	TacticalObjective   []string   `json:"tactical_objective,omitempty"`
	PhysicalObjective   []string   `json:"physical_objective,omitempty"`
	BehavioralObjective []string   `json:"behavioral_objective,omitempty"`
	Exercises           []Exercise `json:"exercises,omitempty"`
	VideoURL            string     `json:"video_url,omitempty"`
}

func (t Training) EntityID() string { return t.ID }

// HasParticipant reports whether the goalkeeper id took part in the session.
func (t Training) HasParticipant(goalkeeperID string) bool {
	for _, id := range t.Goalkeepers {
		if id == goalkeeperID {
			return true
		}
	}
	return false
}
