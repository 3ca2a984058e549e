package models

type SupportArea string

const (
	AreaMedicine      SupportArea = "medicine"
	AreaPhysiotherapy SupportArea = "physiotherapy"
	AreaNutrition     SupportArea = "nutrition"
	AreaPsychology    SupportArea = "psychology"
	AreaPedagogy      SupportArea = "pedagogy"
)

func SupportAreas() []SupportArea {
	return []SupportArea{
		AreaMedicine, AreaPhysiotherapy, AreaNutrition,
		AreaPsychology, AreaPedagogy,
	}
}

func ValidSupportArea(a SupportArea) bool {
	for _, known := range SupportAreas() {
		if a == known {
			return true
		}
	}
	return false
}

type AvailabilityStatus string

const (
	StatusFit              AvailabilityStatus = "fit"
	StatusUnderObservation AvailabilityStatus = "under_observation"
	StatusRestricted       AvailabilityStatus = "restricted"
	StatusWithdrawn        AvailabilityStatus = "withdrawn"
)

func ValidAvailabilityStatus(s AvailabilityStatus) bool {
	switch s {
	case StatusFit, StatusUnderObservation, StatusRestricted, StatusWithdrawn:
		return true
	}
	return false
}

// SupportRecord is one interdisciplinary entry (medical, physio, nutrition,
// psychology or pedagogy) attached to a goalkeeper by weak reference.
type SupportRecord struct {
	ID               string             `json:"id"`
	GoalkeeperID     string             `json:"goalkeeper_id"`
	Date             string             `json:"date"`
	Area             SupportArea        `json:"area"`
	ProfessionalName string             `json:"professional_name"`
	Status           AvailabilityStatus `json:"status"`
	Title            string             `json:"title"`
	Description      string             `json:"description,omitempty"`
}

func (s SupportRecord) EntityID() string { return s.ID }
