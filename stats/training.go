package stats

import (
	"sort"
	"time"

	"github.com/gbfmachado/gkpro-system/models"
)

// Objective group labels, fixed order.
var objectiveGroups = [4]string{"Técnico", "Tático", "Físico", "Comportamental"}

// TagCount is one (tag, occurrences) pair of the mesocycle quantification.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ObjectiveGroup holds the tallied tags of one objective category, sorted
// descending by count.
type ObjectiveGroup struct {
	Name  string     `json:"name"`
	Items []TagCount `json:"items"`
}

// MonthlyFrequency is the training-content tally for one calendar month.
// Bar widths are count / TotalSessions, not count / sum of counts.
type MonthlyFrequency struct {
	TotalSessions int              `json:"total_sessions"`
	Groups        []ObjectiveGroup `json:"groups"`
}

// FrequencyFilter narrows the tally. Category and GoalkeeperID are optional;
// their zero values match everything.
type FrequencyFilter struct {
	Year         int
	Month        time.Month
	Category     models.Category
	GoalkeeperID string
}

// MonthlyContentFrequency tallies objective-tag occurrences over the sessions
// of one calendar month. Tags are counted per raw list entry: a tag repeated
// within one session's list counts every occurrence. Sessions whose date does
// not parse are skipped.
func MonthlyContentFrequency(trainings []models.Training, filter FrequencyFilter) MonthlyFrequency {
	var matched []models.Training
	for _, t := range trainings {
		d, err := time.Parse("2006-01-02", t.Date)
		if err != nil {
			continue
		}
		if d.Year() != filter.Year || d.Month() != filter.Month {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.GoalkeeperID != "" && !t.HasParticipant(filter.GoalkeeperID) {
			continue
		}
		matched = append(matched, t)
	}

	type tally struct {
		counts map[string]int
		order  []string // first-seen order, the sort tie-break
	}
	tallies := [4]tally{}
	for i := range tallies {
		tallies[i].counts = make(map[string]int)
	}

	count := func(t *tally, tags []string) {
		for _, tag := range tags {
			if _, seen := t.counts[tag]; !seen {
				t.order = append(t.order, tag)
			}
			t.counts[tag]++
		}
	}

	for _, t := range matched {
		count(&tallies[0], t.TechnicalObjective)
		count(&tallies[1], t.TacticalObjective)
		count(&tallies[2], t.PhysicalObjective)
		count(&tallies[3], t.BehavioralObjective)
	}

	groups := make([]ObjectiveGroup, len(objectiveGroups))
	for i, name := range objectiveGroups {
		items := make([]TagCount, 0, len(tallies[i].order))
		for _, tag := range tallies[i].order {
			items = append(items, TagCount{Tag: tag, Count: tallies[i].counts[tag]})
		}
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].Count > items[b].Count
		})
		groups[i] = ObjectiveGroup{Name: name, Items: items}
	}

	return MonthlyFrequency{
		TotalSessions: len(matched),
		Groups:        groups,
	}
}
