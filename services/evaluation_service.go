package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/repositories"
)

var (
	ErrEvaluationNotFound   = errors.New("evaluation not found")
	ErrGoalkeeperIDRequired = errors.New("goalkeeper id is required")
	ErrScoreOutOfRange      = errors.New("scores must be integers between 0 and 5")
	ErrUnknownCriterion     = errors.New("unknown evaluation criterion")
	ErrInvalidFrequency     = errors.New("unknown evaluation frequency")
)

type EvaluationService interface {
	List(ctx context.Context) []models.Evaluation
	ListByGoalkeeper(ctx context.Context, goalkeeperID string) []models.Evaluation
	Create(ctx context.Context, input EvaluationInput) (*models.Evaluation, error)
	Update(ctx context.Context, id string, input EvaluationInput) (*models.Evaluation, error)
	Delete(ctx context.Context, id string) error
}

// EvaluationInput carries one scoring session. Score maps are sparse: a
// criterion absent from a map was not scored, which is different from a
// score of 0.
type EvaluationInput struct {
	GoalkeeperID       string                     `json:"goalkeeper_id"`
	Date               string                     `json:"date"`
	TechnicalDefensive map[string]int             `json:"technical_defensive"`
	TechnicalOffensive map[string]int             `json:"technical_offensive"`
	Tactical           map[string]int             `json:"tactical"`
	Physical           map[string]int             `json:"physical"`
	Behavioral         map[string]int             `json:"behavioral"`
	Frequency          models.EvaluationFrequency `json:"frequency"`
	Observations       string                     `json:"observations"`
	HighlightsLink     string                     `json:"highlights_link"`
	ImprovementsLink   string                     `json:"improvements_link"`
}

type evaluationService struct {
	evaluations *repositories.Collection[models.Evaluation]
}

func NewEvaluationService(evaluations *repositories.Collection[models.Evaluation]) EvaluationService {
	return &evaluationService{evaluations: evaluations}
}

func (s *evaluationService) List(ctx context.Context) []models.Evaluation {
	return s.evaluations.List()
}

func (s *evaluationService) ListByGoalkeeper(ctx context.Context, goalkeeperID string) []models.Evaluation {
	all := s.evaluations.List()
	out := make([]models.Evaluation, 0)
	for _, e := range all {
		if e.GoalkeeperID == goalkeeperID {
			out = append(out, e)
		}
	}
	return out
}

func (s *evaluationService) Create(ctx context.Context, input EvaluationInput) (*models.Evaluation, error) {
	eval, err := evaluationFromInput(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}
	if err := s.evaluations.Add(ctx, *eval); err != nil {
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}
	return eval, nil
}

// Update exists on the repository contract even though the evaluation flow is
// append-only in the interface; an unknown id is silently ignored.
func (s *evaluationService) Update(ctx context.Context, id string, input EvaluationInput) (*models.Evaluation, error) {
	eval, err := evaluationFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.evaluations.Update(ctx, *eval); err != nil {
		return nil, fmt.Errorf("failed to update evaluation %s: %w", id, err)
	}
	return eval, nil
}

func (s *evaluationService) Delete(ctx context.Context, id string) error {
	if err := s.evaluations.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete evaluation %s: %w", id, err)
	}
	return nil
}

func evaluationFromInput(id string, input EvaluationInput) (*models.Evaluation, error) {
	if input.GoalkeeperID == "" {
		return nil, ErrGoalkeeperIDRequired
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if input.Frequency == "" {
		input.Frequency = models.FrequencyNone
	}
	if !models.ValidEvaluationFrequency(input.Frequency) {
		return nil, ErrInvalidFrequency
	}

	groups := []struct {
		scores map[string]int
		known  func(string) bool
	}{
		{input.TechnicalDefensive, models.ValidDefensiveCriterion},
		{input.TechnicalOffensive, models.ValidOffensiveCriterion},
		{input.Tactical, models.ValidTacticalCriterion},
		{input.Physical, models.ValidPhysicalCriterion},
		{input.Behavioral, models.ValidBehavioralCriterion},
	}
	for _, g := range groups {
		for criterion, score := range g.scores {
			if !g.known(criterion) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, criterion)
			}
			if score < models.ScoreMin || score > models.ScoreMax {
				return nil, fmt.Errorf("%w: %q = %d", ErrScoreOutOfRange, criterion, score)
			}
		}
	}

	return &models.Evaluation{
		ID:                 id,
		GoalkeeperID:       input.GoalkeeperID,
		Date:               input.Date,
		TechnicalDefensive: input.TechnicalDefensive,
		TechnicalOffensive: input.TechnicalOffensive,
		Tactical:           input.Tactical,
		Physical:           input.Physical,
		Behavioral:         input.Behavioral,
		Frequency:          input.Frequency,
		Observations:       input.Observations,
		HighlightsLink:     input.HighlightsLink,
		ImprovementsLink:   input.ImprovementsLink,
	}, nil
}
