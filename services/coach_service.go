package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/repositories"
	"github.com/gbfmachado/gkpro-system/storage"
)

var (
	ErrCoachNotFound     = errors.New("coach not found")
	ErrCoachNameRequired = errors.New("coach name is required")
	ErrInvalidCoachRole  = errors.New("unknown coach role")
	ErrInvalidCoachState = errors.New("unknown coach status")
)

type CoachService interface {
	List(ctx context.Context) []models.Coach
	GetByID(ctx context.Context, id string) (*models.Coach, error)
	Create(ctx context.Context, input CoachInput) (*models.Coach, error)
	Update(ctx context.Context, id string, input CoachInput) (*models.Coach, error)
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, contentType string, file io.Reader) (*models.Coach, error)
}

type CoachInput struct {
	Name       string             `json:"name"`
	Role       string             `json:"role"`
	Categories []models.Category  `json:"categories"`
	Specialty  string             `json:"specialty"`
	License    string             `json:"license"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Status     models.CoachStatus `json:"status"`
	Photo      string             `json:"photo"`
}

type coachService struct {
	coaches  *repositories.Collection[models.Coach]
	uploader storage.FileUploader
}

func NewCoachService(coaches *repositories.Collection[models.Coach], uploader storage.FileUploader) CoachService {
	return &coachService{coaches: coaches, uploader: uploader}
}

func (s *coachService) List(ctx context.Context) []models.Coach {
	return s.coaches.List()
}

func (s *coachService) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	coach, ok := s.coaches.Get(id)
	if !ok {
		return nil, ErrCoachNotFound
	}
	return &coach, nil
}

func (s *coachService) Create(ctx context.Context, input CoachInput) (*models.Coach, error) {
	coach, err := coachFromInput(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}
	if err := s.coaches.Add(ctx, *coach); err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}
	return coach, nil
}

func (s *coachService) Update(ctx context.Context, id string, input CoachInput) (*models.Coach, error) {
	coach, err := coachFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.coaches.Update(ctx, *coach); err != nil {
		return nil, fmt.Errorf("failed to update coach %s: %w", id, err)
	}
	return coach, nil
}

func (s *coachService) Delete(ctx context.Context, id string) error {
	if err := s.coaches.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete coach %s: %w", id, err)
	}
	return nil
}

func (s *coachService) UploadPhoto(ctx context.Context, id string, contentType string, file io.Reader) (*models.Coach, error) {
	coach, ok := s.coaches.Get(id)
	if !ok {
		return nil, ErrCoachNotFound
	}

	key := fmt.Sprintf("coaches/%s%s", id, extensionForContentType(contentType))
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoUploadFailed, err)
	}

	coach.Photo = result.Location
	if err := s.coaches.Update(ctx, coach); err != nil {
		return nil, fmt.Errorf("failed to store photo reference: %w", err)
	}
	return &coach, nil
}

func coachFromInput(id string, input CoachInput) (*models.Coach, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCoachNameRequired
	}
	if !models.ValidCoachRole(input.Role) {
		return nil, ErrInvalidCoachRole
	}
	if input.Status == "" {
		input.Status = models.CoachActive
	}
	if !models.ValidCoachStatus(input.Status) {
		return nil, ErrInvalidCoachState
	}
	for _, cat := range input.Categories {
		if !models.ValidCategory(cat) {
			return nil, ErrInvalidCategory
		}
	}

	return &models.Coach{
		ID:         id,
		Name:       name,
		Role:       input.Role,
		Categories: input.Categories,
		Specialty:  strings.TrimSpace(input.Specialty),
		License:    strings.TrimSpace(input.License),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Status:     input.Status,
		Photo:      input.Photo,
	}, nil
}
