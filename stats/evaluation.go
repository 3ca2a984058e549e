package stats

import (
	"math"
	"sort"

	"github.com/gbfmachado/gkpro-system/models"
)

// Radar axis labels, fixed order.
var radarSubjects = [5]string{
	"Defensivo", "Ofensivo", "Tático", "Físico", "Comportamental",
}

// RadarAxis is one dimension of the five-axis profile chart.
type RadarAxis struct {
	Subject  string  `json:"subject"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
}

// GroupAverage is the mean of the values present in one score map. Absent
// criteria are excluded from both sum and count, never treated as zero, and
// an empty (or nil) map averages to 0.
func GroupAverage(scores map[string]int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, v := range scores {
		sum += v
	}
	return float64(sum) / float64(len(scores))
}

// LatestEvaluation returns the evaluation with the greatest date for the
// goalkeeper. Dates are ISO strings so lexicographic comparison is
// chronological; ties keep the earliest-seen record (stable on input order).
func LatestEvaluation(evals []models.Evaluation, goalkeeperID string) (models.Evaluation, bool) {
	var latest models.Evaluation
	found := false
	for _, e := range evals {
		if e.GoalkeeperID != goalkeeperID {
			continue
		}
		if !found || e.Date > latest.Date {
			latest = e
			found = true
		}
	}
	return latest, found
}

// RadarProfile builds the five-axis profile from an evaluation. A nil
// evaluation yields the five axes with zero scores, so a goalkeeper without
// evaluations still renders an (empty) chart.
func RadarProfile(e *models.Evaluation) []RadarAxis {
	axes := make([]RadarAxis, len(radarSubjects))
	for i, subject := range radarSubjects {
		axes[i] = RadarAxis{Subject: subject, MaxScore: models.ScoreMax}
	}
	if e == nil {
		return axes
	}
	for i, group := range e.ScoreGroups() {
		axes[i].Score = GroupAverage(group)
	}
	return axes
}

// PooledScore is the mean over all values pooled across the five score maps.
// This is a straight pool average, not a mean of group means: groups of
// different sizes weigh proportionally.
func PooledScore(e models.Evaluation) float64 {
	sum, count := 0, 0
	for _, group := range e.ScoreGroups() {
		for _, v := range group {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// RankingEntry is one row of the goalkeeper ranking.
type RankingEntry struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category models.Category `json:"category"`
	Score    float64         `json:"score"`
	Photo    string          `json:"photo,omitempty"`
}

// RankGoalkeepers orders all goalkeepers by the pooled score of their latest
// evaluation, descending. Goalkeepers without evaluations score 0 and sort
// after scored ones; equal scores keep their relative input order. Scores are
// rounded to one decimal before sorting, so near-equal scores tie.
func RankGoalkeepers(keepers []models.Goalkeeper, evals []models.Evaluation) []RankingEntry {
	ranking := make([]RankingEntry, 0, len(keepers))
	for _, k := range keepers {
		score := 0.0
		if latest, ok := LatestEvaluation(evals, k.ID); ok {
			score = math.Round(PooledScore(latest)*10) / 10
		}
		ranking = append(ranking, RankingEntry{
			ID:       k.ID,
			Name:     k.Name,
			Category: k.Category,
			Score:    score,
			Photo:    k.Photo,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking
}
