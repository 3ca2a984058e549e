package models

// CoachRoles is the coaching title ladder: one title per cohort plus the
// technical coordinator.
var CoachRoles = []string{
	"Coach Sub-8",
	"Coach Sub-9",
	"Coach Sub-10",
	"Coach Sub-11",
	"Coach Sub-12",
	"Coach Sub-13",
	"Coach Sub-14",
	"Coach Sub-15",
	"Coach Sub-16",
	"Coach Sub-17",
	"Coach Sub-20",
	"Coach Professional",
	"Technical Coordinator",
}

func ValidCoachRole(role string) bool {
	for _, known := range CoachRoles {
		if role == known {
			return true
		}
	}
	return false
}

type CoachStatus string

const (
	CoachActive   CoachStatus = "active"
	CoachOnLeave  CoachStatus = "on_leave"
	CoachVacation CoachStatus = "vacation"
)

func ValidCoachStatus(s CoachStatus) bool {
	switch s {
	case CoachActive, CoachOnLeave, CoachVacation:
		return true
	}
	return false
}

// Coach has a lifecycle independent from goalkeepers; deleting either side
// never cascades.
type Coach struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Role       string      `json:"role"`
	Categories []Category  `json:"categories"`
	Specialty  string      `json:"specialty,omitempty"`
	License    string      `json:"license,omitempty"`
	Email      string      `json:"email,omitempty"`
	Phone      string      `json:"phone,omitempty"`
	Status     CoachStatus `json:"status"`
	Photo      string      `json:"photo,omitempty"`
}

func (c Coach) EntityID() string { return c.ID }
