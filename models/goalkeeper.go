package models

// Category is the cohort tag shared by goalkeepers, coaches and training
// sessions. Coordinator is a non-athlete tag used for staff only.
type Category string

const (
	CategorySub8         Category = "Sub-8"
	CategorySub9         Category = "Sub-9"
	CategorySub10        Category = "Sub-10"
	CategorySub11        Category = "Sub-11"
	CategorySub12        Category = "Sub-12"
	CategorySub13        Category = "Sub-13"
	CategorySub14        Category = "Sub-14"
	CategorySub15        Category = "Sub-15"
	CategorySub16        Category = "Sub-16"
	CategorySub17        Category = "Sub-17"
	CategorySub20        Category = "Sub-20"
	CategoryProfessional Category = "Professional"
	CategoryCoordinator  Category = "Coordinator"
)

// Categories lists every cohort tag in display order.
func Categories() []Category {
	return []Category{
		CategorySub8, CategorySub9, CategorySub10, CategorySub11,
		CategorySub12, CategorySub13, CategorySub14, CategorySub15,
		CategorySub16, CategorySub17, CategorySub20,
		CategoryProfessional, CategoryCoordinator,
	}
}

// ValidCategory reports whether c is one of the enumerated cohort tags.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type Position string

const (
	PositionStarter         Position = "starter"
	PositionBackup          Position = "backup"
	PositionUnderEvaluation Position = "under_evaluation"
)

func ValidPosition(p Position) bool {
	switch p {
	case PositionStarter, PositionBackup, PositionUnderEvaluation:
		return true
	}
	return false
}

type DominantFoot string

const (
	FootRight DominantFoot = "right"
	FootLeft  DominantFoot = "left"
	FootBoth  DominantFoot = "both"
)

func ValidDominantFoot(f DominantFoot) bool {
	switch f {
	case FootRight, FootLeft, FootBoth:
		return true
	}
	return false
}

// Goalkeeper is the athlete profile. Height and Wingspan are centimeters,
// Weight is kilograms. Photo is either a public URL or an inline data blob.
type Goalkeeper struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	BirthDate    string       `json:"birth_date"`
	Photo        string       `json:"photo,omitempty"`
	Category     Category     `json:"category"`
	Position     Position     `json:"position"`
	Height       float64      `json:"height"`
	Weight       float64      `json:"weight"`
	Wingspan     float64      `json:"wingspan"`
	DominantFoot DominantFoot `json:"dominant_foot"`
	School       string       `json:"school,omitempty"`
	ClubTime     string       `json:"club_time,omitempty"`
	Notes        string       `json:"notes,omitempty"`
}

func (g Goalkeeper) EntityID() string { return g.ID }
