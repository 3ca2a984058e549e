// Package stats is the aggregation engine: pure functions that fold raw
// match-scout records, evaluations and training sessions into the derived
// metrics the dashboards and reports render. Nothing here performs I/O.
package stats

import (
	"math"
	"sort"

	"github.com/gbfmachado/gkpro-system/models"
)

// PlaceholderKeeperName labels records whose goalkeeper no longer exists.
// Deleting a goalkeeper never removes dependent records, so lookups here must
// always tolerate a dangling id.
const PlaceholderKeeperName = "Goleiro"

// correctionAlertLimit caps the technical-corrections list shown on the
// dashboard.
const correctionAlertLimit = 4

// ScoutingSummary aggregates a set of match-scout records. TotalSaves counts
// only the three save special-actions; the per-action positive tallies are a
// separate taxonomy and are never mixed in. CriticalErrors likewise counts
// only the decisive-error special counter, while TechnicalNegatives sums the
// negative side of every fine-grained action.
type ScoutingSummary struct {
	Games              int     `json:"games"`
	TotalSaves         int     `json:"total_saves"`
	DifficultSaves     int     `json:"difficult_saves"`
	SuperSaves         int     `json:"super_saves"`
	CleanSheets        int     `json:"clean_sheets"`
	GoalsConceded      int     `json:"goals_conceded"`
	ShotsAgainst       int     `json:"shots_against"`
	CriticalErrors     int     `json:"critical_errors"`
	TechnicalNegatives int     `json:"technical_negatives"`
	AverageSaves       float64 `json:"average_saves"`
}

// GoalsConceded computes the conceded count for one match. A clean sheet
// forces zero regardless of zone data. A non-clean-sheet match counts at
// least one goal even when the goal-zone map carries none, so matches entered
// without zone detail are not under-counted. This asymmetry is a deliberate
// long-standing policy.
func GoalsConceded(s models.MatchScout) int {
	if s.CleanSheet {
		return 0
	}
	if goals := s.ZoneGoals(); goals > 1 {
		return goals
	}
	return 1
}

// SummarizeScouts folds the given records into one summary. The caller
// pre-filters by goalkeeper or category as needed.
func SummarizeScouts(scouts []models.MatchScout) ScoutingSummary {
	var sum ScoutingSummary
	sum.Games = len(scouts)

	for _, s := range scouts {
		saves := s.SpecialActions.TotalSaves()
		conceded := GoalsConceded(s)

		sum.TotalSaves += saves
		sum.DifficultSaves += s.SpecialActions.DifficultSaves
		sum.SuperSaves += s.SpecialActions.SuperSaves
		sum.GoalsConceded += conceded
		sum.ShotsAgainst += saves + conceded
		sum.CriticalErrors += s.SpecialActions.CriticalErrors
		sum.TechnicalNegatives += s.TechnicalNegatives()
		if s.CleanSheet {
			sum.CleanSheets++
		}
	}

	if sum.Games > 0 {
		sum.AverageSaves = math.Round(float64(sum.TotalSaves)/float64(sum.Games)*10) / 10
	}
	return sum
}

// CorrectionAlert is one entry of the technical-corrections list. ErrorCount
// mixes both error taxonomies (critical errors plus all negative action
// tallies); the dashboard headline metric uses only the critical counter.
// The two computations are intentionally kept separate.
type CorrectionAlert struct {
	KeeperName string `json:"keeper_name"`
	Opponent   string `json:"opponent"`
	Date       string `json:"date"`
	ErrorCount int    `json:"error_count"`
	Critical   bool   `json:"critical"`
}

// TechnicalCorrections lists the matches with the most combined errors,
// stable-sorted descending and truncated to the top four.
func TechnicalCorrections(scouts []models.MatchScout, keepers []models.Goalkeeper) []CorrectionAlert {
	names := make(map[string]string, len(keepers))
	for _, k := range keepers {
		names[k.ID] = k.Name
	}

	alerts := make([]CorrectionAlert, 0)
	for _, s := range scouts {
		critical := s.SpecialActions.CriticalErrors
		negatives := s.TechnicalNegatives()
		if critical == 0 && negatives == 0 {
			continue
		}

		name, ok := names[s.GoalkeeperID]
		if !ok {
			name = PlaceholderKeeperName
		}

		alerts = append(alerts, CorrectionAlert{
			KeeperName: name,
			Opponent:   s.Opponent,
			Date:       s.Date,
			ErrorCount: critical + negatives,
			Critical:   critical > 0,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].ErrorCount > alerts[j].ErrorCount
	})
	if len(alerts) > correctionAlertLimit {
		alerts = alerts[:correctionAlertLimit]
	}
	return alerts
}

// PitchZoneHeatmap accumulates shot-origin counts per pitch zone. Zones never
// present in any record are absent from the result; consumers treat absence
// as zero.
func PitchZoneHeatmap(scouts []models.MatchScout) models.PitchZones {
	heat := make(models.PitchZones)
	for _, s := range scouts {
		for zone, count := range s.PitchZones {
			if count > 0 {
				heat[zone] += count
			}
		}
	}
	return heat
}

// GoalZoneHeatmap accumulates save/goal tallies per goal-mouth zone with the
// same sparsity contract as PitchZoneHeatmap.
func GoalZoneHeatmap(scouts []models.MatchScout) models.GoalZones {
	heat := make(models.GoalZones)
	for _, s := range scouts {
		for zone, t := range s.GoalZones {
			cur := heat[zone]
			cur.Saves += t.Saves
			cur.Goals += t.Goals
			heat.Set(zone, cur)
		}
	}
	return heat
}

// CategoryScore is the 0-100 performance index of one cohort.
type CategoryScore struct {
	Category    models.Category `json:"category"`
	Score       int             `json:"score"`
	KeeperCount int             `json:"keeper_count"`
}

// CategoryPerformance scores every athlete cohort (Coordinator is staff-only
// and skipped). A cohort with no matches scores 0 but is still listed when it
// has keepers or is the currently selected filter, so the chart shows a zero
// bar instead of dropping the series.
//
// Score formula, clamped to [0, 100]:
//
//	(saves*5 + (difficult+super)*10 - weightedErrors*8) / matches + 60
//
// where weightedErrors = criticalErrors*2 + technicalNegatives.
func CategoryPerformance(keepers []models.Goalkeeper, scouts []models.MatchScout, selected models.Category) []CategoryScore {
	result := make([]CategoryScore, 0)

	for _, cat := range models.Categories() {
		if cat == models.CategoryCoordinator {
			continue
		}

		catIDs := make(map[string]bool)
		keeperCount := 0
		for _, k := range keepers {
			if k.Category == cat {
				catIDs[k.ID] = true
				keeperCount++
			}
		}

		var catScouts []models.MatchScout
		for _, s := range scouts {
			if catIDs[s.GoalkeeperID] {
				catScouts = append(catScouts, s)
			}
		}

		score := 0.0
		if len(catScouts) > 0 {
			totalSaves, totalDifficult, weightedErrors := 0, 0, 0
			for _, s := range catScouts {
				totalSaves += s.SpecialActions.TotalSaves()
				totalDifficult += s.SpecialActions.DifficultSaves + s.SpecialActions.SuperSaves
				weightedErrors += s.SpecialActions.CriticalErrors*2 + s.TechnicalNegatives()
			}
			raw := float64(totalSaves*5+totalDifficult*10-weightedErrors*8)/float64(len(catScouts)) + 60
			score = math.Min(100, math.Max(0, raw))
		}

		if keeperCount > 0 || cat == selected {
			result = append(result, CategoryScore{
				Category:    cat,
				Score:       int(math.Round(score)),
				KeeperCount: keeperCount,
			})
		}
	}

	return result
}

// FilterByGoalkeeper returns the scouts belonging to one goalkeeper,
// preserving input order.
func FilterByGoalkeeper(scouts []models.MatchScout, goalkeeperID string) []models.MatchScout {
	out := make([]models.MatchScout, 0)
	for _, s := range scouts {
		if s.GoalkeeperID == goalkeeperID {
			out = append(out, s)
		}
	}
	return out
}

// FilterByCategory returns the scouts whose goalkeeper belongs to the given
// cohort. Scouts with dangling goalkeeper ids are excluded rather than
// failing the lookup.
func FilterByCategory(scouts []models.MatchScout, keepers []models.Goalkeeper, category models.Category) []models.MatchScout {
	ids := make(map[string]bool)
	for _, k := range keepers {
		if k.Category == category {
			ids[k.ID] = true
		}
	}

	out := make([]models.MatchScout, 0)
	for _, s := range scouts {
		if ids[s.GoalkeeperID] {
			out = append(out, s)
		}
	}
	return out
}
