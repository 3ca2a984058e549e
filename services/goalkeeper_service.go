package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/repositories"
	"github.com/gbfmachado/gkpro-system/storage"
)

var (
	ErrGoalkeeperNotFound     = errors.New("goalkeeper not found")
	ErrGoalkeeperNameRequired = errors.New("goalkeeper name is required")
	ErrInvalidCategory        = errors.New("unknown category")
	ErrInvalidPosition        = errors.New("unknown roster position")
	ErrInvalidDominantFoot    = errors.New("unknown dominant foot")
	ErrInvalidDate            = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMeasurement     = errors.New("height, weight and wingspan must not be negative")
	ErrPhotoUploadFailed      = errors.New("failed to upload photo")
)

type GoalkeeperService interface {
	List(ctx context.Context) []models.Goalkeeper
	GetByID(ctx context.Context, id string) (*models.Goalkeeper, error)
	Create(ctx context.Context, input GoalkeeperInput) (*models.Goalkeeper, error)
	Update(ctx context.Context, id string, input GoalkeeperInput) (*models.Goalkeeper, error)
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, contentType string, file io.Reader) (*models.Goalkeeper, error)
}

// GoalkeeperInput carries every profile field; updates are full-record
// replacement.
type GoalkeeperInput struct {
	Name         string              `json:"name"`
	BirthDate    string              `json:"birth_date"`
	Photo        string              `json:"photo"`
	Category     models.Category     `json:"category"`
	Position     models.Position     `json:"position"`
	Height       float64             `json:"height"`
	Weight       float64             `json:"weight"`
	Wingspan     float64             `json:"wingspan"`
	DominantFoot models.DominantFoot `json:"dominant_foot"`
	School       string              `json:"school"`
	ClubTime     string              `json:"club_time"`
	Notes        string              `json:"notes"`
}

type goalkeeperService struct {
	keepers  *repositories.Collection[models.Goalkeeper]
	uploader storage.FileUploader
}

func NewGoalkeeperService(keepers *repositories.Collection[models.Goalkeeper], uploader storage.FileUploader) GoalkeeperService {
	return &goalkeeperService{keepers: keepers, uploader: uploader}
}

func (s *goalkeeperService) List(ctx context.Context) []models.Goalkeeper {
	return s.keepers.List()
}

func (s *goalkeeperService) GetByID(ctx context.Context, id string) (*models.Goalkeeper, error) {
	keeper, ok := s.keepers.Get(id)
	if !ok {
		return nil, ErrGoalkeeperNotFound
	}
	return &keeper, nil
}

func (s *goalkeeperService) Create(ctx context.Context, input GoalkeeperInput) (*models.Goalkeeper, error) {
	keeper, err := goalkeeperFromInput(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}
	if err := s.keepers.Add(ctx, *keeper); err != nil {
		return nil, fmt.Errorf("failed to create goalkeeper: %w", err)
	}
	return keeper, nil
}

// Update replaces the whole record. An unknown id is silently ignored per the
// repository contract; the validated record is echoed back either way.
func (s *goalkeeperService) Update(ctx context.Context, id string, input GoalkeeperInput) (*models.Goalkeeper, error) {
	keeper, err := goalkeeperFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.keepers.Update(ctx, *keeper); err != nil {
		return nil, fmt.Errorf("failed to update goalkeeper %s: %w", id, err)
	}
	return keeper, nil
}

// Delete removes only the profile. Evaluations, scouts, trainings and support
// records that reference the id stay behind with a dangling reference.
func (s *goalkeeperService) Delete(ctx context.Context, id string) error {
	if err := s.keepers.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete goalkeeper %s: %w", id, err)
	}
	return nil
}

func (s *goalkeeperService) UploadPhoto(ctx context.Context, id string, contentType string, file io.Reader) (*models.Goalkeeper, error) {
	keeper, ok := s.keepers.Get(id)
	if !ok {
		return nil, ErrGoalkeeperNotFound
	}

	key := fmt.Sprintf("goalkeepers/%s%s", id, extensionForContentType(contentType))
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoUploadFailed, err)
	}

	keeper.Photo = result.Location
	if err := s.keepers.Update(ctx, keeper); err != nil {
		return nil, fmt.Errorf("failed to store photo reference: %w", err)
	}
	return &keeper, nil
}

func goalkeeperFromInput(id string, input GoalkeeperInput) (*models.Goalkeeper, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrGoalkeeperNameRequired
	}
	if !models.ValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}
	if !models.ValidPosition(input.Position) {
		return nil, ErrInvalidPosition
	}
	if !models.ValidDominantFoot(input.DominantFoot) {
		return nil, ErrInvalidDominantFoot
	}
	if err := validateDate(input.BirthDate); err != nil {
		return nil, err
	}
	if input.Height < 0 || input.Weight < 0 || input.Wingspan < 0 {
		return nil, ErrInvalidMeasurement
	}

	return &models.Goalkeeper{
		ID:           id,
		Name:         name,
		BirthDate:    input.BirthDate,
		Photo:        input.Photo,
		Category:     input.Category,
		Position:     input.Position,
		Height:       input.Height,
		Weight:       input.Weight,
		Wingspan:     input.Wingspan,
		DominantFoot: input.DominantFoot,
		School:       strings.TrimSpace(input.School),
		ClubTime:     strings.TrimSpace(input.ClubTime),
		Notes:        input.Notes,
	}, nil
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
