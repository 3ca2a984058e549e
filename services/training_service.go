package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/repositories"
	"github.com/gbfmachado/gkpro-system/stats"
)

var (
	ErrTrainingNotFound   = errors.New("training session not found")
	ErrInvalidIntensity   = errors.New("unknown exercise intensity")
	ErrInvalidMonthFilter = errors.New("frequency filter requires a valid year and month")
)

type TrainingService interface {
	List(ctx context.Context) []models.Training
	Create(ctx context.Context, input TrainingInput) (*models.Training, error)
	Update(ctx context.Context, id string, input TrainingInput) (*models.Training, error)
	Delete(ctx context.Context, id string) error
	ContentFrequency(ctx context.Context, filter FrequencyInput) (*stats.MonthlyFrequency, error)
}

// TrainingInput carries one session. Objective tags are stored as plain
// strings and intentionally not validated against the vocabularies.
type TrainingInput struct {
	Date                string            `json:"date"`
	Category            models.Category   `json:"category"`
	Goalkeepers         []string          `json:"goalkeepers"`
	TechnicalObjective  []string          `json:"technical_objective"`
	TacticalObjective   []string          `json:"tactical_objective"`
	PhysicalObjective   []string          `json:"physical_objective"`
	BehavioralObjective []string          `json:"behavioral_objective"`
	Exercises           []TrainingExercise `json:"exercises"`
	VideoURL            string            `json:"video_url"`
}

type TrainingExercise struct {
	Description string           `json:"description"`
	Duration    string           `json:"duration"`
	Intensity   models.Intensity `json:"intensity"`
	Notes       string           `json:"notes"`
}

// FrequencyInput selects the mesocycle (calendar month) and optional
// category / participating goalkeeper narrowing.
type FrequencyInput struct {
	Year         int
	Month        int
	Category     models.Category
	GoalkeeperID string
}

type trainingService struct {
	trainings *repositories.Collection[models.Training]
}

func NewTrainingService(trainings *repositories.Collection[models.Training]) TrainingService {
	return &trainingService{trainings: trainings}
}

func (s *trainingService) List(ctx context.Context) []models.Training {
	return s.trainings.List()
}

func (s *trainingService) Create(ctx context.Context, input TrainingInput) (*models.Training, error) {
	training, err := trainingFromInput(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}
	if err := s.trainings.Add(ctx, *training); err != nil {
		return nil, fmt.Errorf("failed to create training session: %w", err)
	}
	return training, nil
}

func (s *trainingService) Update(ctx context.Context, id string, input TrainingInput) (*models.Training, error) {
	training, err := trainingFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.trainings.Update(ctx, *training); err != nil {
		return nil, fmt.Errorf("failed to update training session %s: %w", id, err)
	}
	return training, nil
}

func (s *trainingService) Delete(ctx context.Context, id string) error {
	if err := s.trainings.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete training session %s: %w", id, err)
	}
	return nil
}

func (s *trainingService) ContentFrequency(ctx context.Context, filter FrequencyInput) (*stats.MonthlyFrequency, error) {
	if filter.Year < 1900 || filter.Month < 1 || filter.Month > 12 {
		return nil, ErrInvalidMonthFilter
	}
	if filter.Category != "" && !models.ValidCategory(filter.Category) {
		return nil, ErrInvalidCategory
	}

	freq := stats.MonthlyContentFrequency(s.trainings.List(), stats.FrequencyFilter{
		Year:         filter.Year,
		Month:        time.Month(filter.Month),
		Category:     filter.Category,
		GoalkeeperID: filter.GoalkeeperID,
	})
	return &freq, nil
}

func trainingFromInput(id string, input TrainingInput) (*models.Training, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if !models.ValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	exercises := make([]models.Exercise, 0, len(input.Exercises))
	for _, ex := range input.Exercises {
		if ex.Intensity == "" {
			ex.Intensity = models.IntensityMedium
		}
		if !models.ValidIntensity(ex.Intensity) {
			return nil, ErrInvalidIntensity
		}
		exercises = append(exercises, models.Exercise{
			ID:          uuid.NewString(),
			Description: ex.Description,
			Duration:    ex.Duration,
			Intensity:   ex.Intensity,
			Notes:       ex.Notes,
		})
	}

	return &models.Training{
		ID:                  id,
		Date:                input.Date,
		Category:            input.Category,
		Goalkeepers:         input.Goalkeepers,
		TechnicalObjective:  input.TechnicalObjective,
		TacticalObjective:   input.TacticalObjective,
		PhysicalObjective:   input.PhysicalObjective,
		BehavioralObjective: input.BehavioralObjective,
		Exercises:           exercises,
		VideoURL:            input.VideoURL,
	}, nil
}
