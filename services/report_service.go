package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/narrative"
	"github.com/gbfmachado/gkpro-system/repositories"
	"github.com/gbfmachado/gkpro-system/stats"
)

// KeeperReport is the per-goalkeeper performance report: the five-axis radar
// from the latest evaluation plus aggregated scouting numbers and the
// goalkeeper's position in the club-wide ranking (1-based, 0 when unranked).
type KeeperReport struct {
	Goalkeeper   models.Goalkeeper     `json:"goalkeeper"`
	Radar        []stats.RadarAxis     `json:"radar"`
	Scout        stats.ScoutingSummary `json:"scout"`
	RankPosition int                   `json:"rank_position"`
}

type ReportService interface {
	Report(ctx context.Context, goalkeeperID string) (*KeeperReport, error)
	Ranking(ctx context.Context) []stats.RankingEntry
	Summary(ctx context.Context, goalkeeperID string) (string, error)
}

type reportService struct {
	keepers     *repositories.Collection[models.Goalkeeper]
	evaluations *repositories.Collection[models.Evaluation]
	scouts      *repositories.Collection[models.MatchScout]
	summarizer  narrative.Summarizer

	// Collapses concurrent summary requests per goalkeeper so a superseding
	// request never races a stale in-flight one.
	group singleflight.Group
}

func NewReportService(
	keepers *repositories.Collection[models.Goalkeeper],
	evaluations *repositories.Collection[models.Evaluation],
	scouts *repositories.Collection[models.MatchScout],
	summarizer narrative.Summarizer,
) ReportService {
	return &reportService{
		keepers:     keepers,
		evaluations: evaluations,
		scouts:      scouts,
		summarizer:  summarizer,
	}
}

func (s *reportService) Report(ctx context.Context, goalkeeperID string) (*KeeperReport, error) {
	keeper, ok := s.keepers.Get(goalkeeperID)
	if !ok {
		return nil, ErrGoalkeeperNotFound
	}

	evals := s.evaluations.List()
	var latest *models.Evaluation
	if e, found := stats.LatestEvaluation(evals, goalkeeperID); found {
		latest = &e
	}

	report := &KeeperReport{
		Goalkeeper: keeper,
		Radar:      stats.RadarProfile(latest),
		Scout:      stats.SummarizeScouts(stats.FilterByGoalkeeper(s.scouts.List(), goalkeeperID)),
	}

	for i, entry := range stats.RankGoalkeepers(s.keepers.List(), evals) {
		if entry.ID == goalkeeperID {
			report.RankPosition = i + 1
			break
		}
	}
	return report, nil
}

func (s *reportService) Ranking(ctx context.Context) []stats.RankingEntry {
	return stats.RankGoalkeepers(s.keepers.List(), s.evaluations.List())
}

// Summary generates the narrative commentary for a goalkeeper. The narrative
// call never errors; only an unknown goalkeeper does.
func (s *reportService) Summary(ctx context.Context, goalkeeperID string) (string, error) {
	report, err := s.Report(ctx, goalkeeperID)
	if err != nil {
		return "", err
	}

	text, err, _ := s.group.Do(goalkeeperID, func() (interface{}, error) {
		return s.summarizer.Summarize(ctx, report.Goalkeeper.Name, report.Radar, narrative.ScoutFacts{
			TotalSaves:  report.Scout.TotalSaves,
			CleanSheets: report.Scout.CleanSheets,
			TotalGames:  report.Scout.Games,
		}), nil
	})
	if err != nil {
		// Unreachable: the summarizer contract returns a string, never an error.
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	return text.(string), nil
}
