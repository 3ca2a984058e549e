package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/repositories"
	"github.com/gbfmachado/gkpro-system/stats"
)

var (
	ErrScoutNotFound        = errors.New("match scout not found")
	ErrOpponentRequired     = errors.New("opponent is required")
	ErrNegativeCounter      = errors.New("counters must not be negative")
	ErrUnknownScoutMetric   = errors.New("unknown technical action")
	ErrInvalidZone          = errors.New("zone identifier out of range")
	ErrInvalidMatchPosition = errors.New("match position must be starter or backup")
)

type ScoutService interface {
	List(ctx context.Context) []models.MatchScout
	GetByID(ctx context.Context, id string) (*models.MatchScout, error)
	Create(ctx context.Context, input ScoutInput) (*models.MatchScout, error)
	Update(ctx context.Context, id string, input ScoutInput) (*models.MatchScout, error)
	Delete(ctx context.Context, id string) error
	Heatmaps(ctx context.Context, goalkeeperID string, category models.Category) (*Heatmaps, error)
	Document(ctx context.Context, id string) (*ScoutDocument, error)
}

type ScoutInput struct {
	GoalkeeperID      string                  `json:"goalkeeper_id"`
	Opponent          string                  `json:"opponent"`
	Date              string                  `json:"date"`
	Competition       string                  `json:"competition"`
	Result            string                  `json:"result"`
	CleanSheet        bool                    `json:"clean_sheet"`
	GoalParticipation bool                    `json:"goal_participation"`
	Assists           int                     `json:"assists"`
	GoalsScored       int                     `json:"goals_scored"`
	Penalties         *models.Tally           `json:"penalties"`
	MinutesPlayed     int                     `json:"minutes_played"`
	MatchPosition     models.Position         `json:"match_position"`
	Actions           map[string]models.Tally `json:"actions"`
	SpecialActions    models.SpecialActions   `json:"special_actions"`
	PitchZones        models.PitchZones       `json:"pitch_zones"`
	GoalZones         models.GoalZones        `json:"goal_zones"`
}

// Heatmaps are the accumulated zone tallies for a filtered scout set. Absent
// zones mean zero.
type Heatmaps struct {
	Pitch models.PitchZones `json:"pitch"`
	Goal  models.GoalZones  `json:"goal"`
}

// ScoutDocument is the data behind the standalone printable match report.
type ScoutDocument struct {
	Scout        models.MatchScout
	KeeperName   string
	TotalSaves   int
	GoalsAgainst int
}

type scoutService struct {
	scouts  *repositories.Collection[models.MatchScout]
	keepers *repositories.Collection[models.Goalkeeper]
}

func NewScoutService(scouts *repositories.Collection[models.MatchScout], keepers *repositories.Collection[models.Goalkeeper]) ScoutService {
	return &scoutService{scouts: scouts, keepers: keepers}
}

func (s *scoutService) List(ctx context.Context) []models.MatchScout {
	// Newest matches first, like the history view expects.
	scouts := s.scouts.List()
	sort.SliceStable(scouts, func(i, j int) bool {
		return scouts[i].Date > scouts[j].Date
	})
	return scouts
}

func (s *scoutService) GetByID(ctx context.Context, id string) (*models.MatchScout, error) {
	scout, ok := s.scouts.Get(id)
	if !ok {
		return nil, ErrScoutNotFound
	}
	return &scout, nil
}

func (s *scoutService) Create(ctx context.Context, input ScoutInput) (*models.MatchScout, error) {
	scout, err := scoutFromInput(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}
	if err := s.scouts.Add(ctx, *scout); err != nil {
		return nil, fmt.Errorf("failed to create match scout: %w", err)
	}
	return scout, nil
}

func (s *scoutService) Update(ctx context.Context, id string, input ScoutInput) (*models.MatchScout, error) {
	scout, err := scoutFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.scouts.Update(ctx, *scout); err != nil {
		return nil, fmt.Errorf("failed to update match scout %s: %w", id, err)
	}
	return scout, nil
}

func (s *scoutService) Delete(ctx context.Context, id string) error {
	if err := s.scouts.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match scout %s: %w", id, err)
	}
	return nil
}

func (s *scoutService) Heatmaps(ctx context.Context, goalkeeperID string, category models.Category) (*Heatmaps, error) {
	scouts := s.scouts.List()
	if goalkeeperID != "" {
		scouts = stats.FilterByGoalkeeper(scouts, goalkeeperID)
	}
	if category != "" {
		if !models.ValidCategory(category) {
			return nil, ErrInvalidCategory
		}
		scouts = stats.FilterByCategory(scouts, s.keepers.List(), category)
	}
	return &Heatmaps{
		Pitch: stats.PitchZoneHeatmap(scouts),
		Goal:  stats.GoalZoneHeatmap(scouts),
	}, nil
}

func (s *scoutService) Document(ctx context.Context, id string) (*ScoutDocument, error) {
	scout, ok := s.scouts.Get(id)
	if !ok {
		return nil, ErrScoutNotFound
	}

	keeperName := stats.PlaceholderKeeperName
	if keeper, ok := s.keepers.Get(scout.GoalkeeperID); ok {
		keeperName = keeper.Name
	}

	return &ScoutDocument{
		Scout:        scout,
		KeeperName:   keeperName,
		TotalSaves:   scout.SpecialActions.TotalSaves(),
		GoalsAgainst: stats.GoalsConceded(scout),
	}, nil
}

func scoutFromInput(id string, input ScoutInput) (*models.MatchScout, error) {
	if input.GoalkeeperID == "" {
		return nil, ErrGoalkeeperIDRequired
	}
	if input.Opponent == "" {
		return nil, ErrOpponentRequired
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if input.MatchPosition == "" {
		input.MatchPosition = models.PositionStarter
	}
	if input.MatchPosition != models.PositionStarter && input.MatchPosition != models.PositionBackup {
		return nil, ErrInvalidMatchPosition
	}
	if input.MinutesPlayed < 0 || input.Assists < 0 || input.GoalsScored < 0 {
		return nil, ErrNegativeCounter
	}

	sa := input.SpecialActions
	if sa.BasicSaves < 0 || sa.DifficultSaves < 0 || sa.SuperSaves < 0 || sa.CriticalErrors < 0 {
		return nil, ErrNegativeCounter
	}
	if input.Penalties != nil && (input.Penalties.Positive < 0 || input.Penalties.Negative < 0) {
		return nil, ErrNegativeCounter
	}

	known := make(map[string]bool, len(models.ScoutMetricIDs))
	for _, metric := range models.ScoutMetricIDs {
		known[metric] = true
	}
	for action, tally := range input.Actions {
		if !known[action] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScoutMetric, action)
		}
		if tally.Positive < 0 || tally.Negative < 0 {
			return nil, ErrNegativeCounter
		}
	}

	for zone := range input.PitchZones {
		if zone < 1 || zone > models.PitchZoneMax {
			return nil, fmt.Errorf("%w: pitch zone %d", ErrInvalidZone, zone)
		}
	}
	for zone := range input.GoalZones {
		if zone < 1 || zone > models.GoalZoneMax {
			return nil, fmt.Errorf("%w: goal zone %d", ErrInvalidZone, zone)
		}
	}

	return &models.MatchScout{
		ID:                id,
		GoalkeeperID:      input.GoalkeeperID,
		Opponent:          input.Opponent,
		Date:              input.Date,
		Competition:       input.Competition,
		Result:            input.Result,
		CleanSheet:        input.CleanSheet,
		GoalParticipation: input.GoalParticipation,
		Assists:           input.Assists,
		GoalsScored:       input.GoalsScored,
		Penalties:         input.Penalties,
		MinutesPlayed:     input.MinutesPlayed,
		MatchPosition:     input.MatchPosition,
		Actions:           input.Actions,
		SpecialActions:    input.SpecialActions,
		// Zone maps are normalized on every write so that cleared zones are
		// deleted, never stored as zero.
		PitchZones: input.PitchZones.Normalized(),
		GoalZones:  input.GoalZones.Normalized(),
	}, nil
}
