package services

import (
	"context"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/repositories"
	"github.com/gbfmachado/gkpro-system/stats"
)

// DashboardStats is everything the performance panel renders for one category
// filter (empty category = all cohorts).
type DashboardStats struct {
	Category            models.Category         `json:"category,omitempty"`
	Summary             stats.ScoutingSummary   `json:"summary"`
	Corrections         []stats.CorrectionAlert `json:"corrections"`
	CategoryPerformance []stats.CategoryScore   `json:"category_performance"`
}

type DashboardService interface {
	GetStats(ctx context.Context, category models.Category) (*DashboardStats, error)
}

type dashboardService struct {
	keepers *repositories.Collection[models.Goalkeeper]
	scouts  *repositories.Collection[models.MatchScout]
}

func NewDashboardService(keepers *repositories.Collection[models.Goalkeeper], scouts *repositories.Collection[models.MatchScout]) DashboardService {
	return &dashboardService{keepers: keepers, scouts: scouts}
}

func (s *dashboardService) GetStats(ctx context.Context, category models.Category) (*DashboardStats, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	keepers := s.keepers.List()
	scouts := s.scouts.List()

	filtered := scouts
	if category != "" {
		filtered = stats.FilterByCategory(scouts, keepers, category)
	}

	return &DashboardStats{
		Category:    category,
		Summary:     stats.SummarizeScouts(filtered),
		Corrections: stats.TechnicalCorrections(filtered, keepers),
		// Category performance always spans all cohorts; the selected one is
		// kept in the series even when empty so its bar renders at zero.
		CategoryPerformance: stats.CategoryPerformance(keepers, scouts, category),
	}, nil
}
