package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/repositories"
)

var (
	ErrSupportRecordNotFound = errors.New("support record not found")
	ErrSupportTitleRequired  = errors.New("support record title is required")
	ErrInvalidSupportArea    = errors.New("unknown support area")
	ErrInvalidSupportStatus  = errors.New("unknown availability status")
)

type SupportService interface {
	List(ctx context.Context) []models.SupportRecord
	ListByArea(ctx context.Context, area models.SupportArea, goalkeeperID string) ([]models.SupportRecord, error)
	Create(ctx context.Context, input SupportInput) (*models.SupportRecord, error)
	Update(ctx context.Context, id string, input SupportInput) (*models.SupportRecord, error)
	Delete(ctx context.Context, id string) error
}

type SupportInput struct {
	GoalkeeperID     string                    `json:"goalkeeper_id"`
	Date             string                    `json:"date"`
	Area             models.SupportArea        `json:"area"`
	ProfessionalName string                    `json:"professional_name"`
	Status           models.AvailabilityStatus `json:"status"`
	Title            string                    `json:"title"`
	Description      string                    `json:"description"`
}

type supportService struct {
	records *repositories.Collection[models.SupportRecord]
}

func NewSupportService(records *repositories.Collection[models.SupportRecord]) SupportService {
	return &supportService{records: records}
}

func (s *supportService) List(ctx context.Context) []models.SupportRecord {
	return s.records.List()
}

func (s *supportService) ListByArea(ctx context.Context, area models.SupportArea, goalkeeperID string) ([]models.SupportRecord, error) {
	if !models.ValidSupportArea(area) {
		return nil, ErrInvalidSupportArea
	}

	out := make([]models.SupportRecord, 0)
	for _, r := range s.records.List() {
		if r.Area != area {
			continue
		}
		if goalkeeperID != "" && r.GoalkeeperID != goalkeeperID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *supportService) Create(ctx context.Context, input SupportInput) (*models.SupportRecord, error) {
	record, err := supportFromInput(uuid.NewString(), input)
	if err != nil {
		return nil, err
	}
	if err := s.records.Add(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to create support record: %w", err)
	}
	return record, nil
}

func (s *supportService) Update(ctx context.Context, id string, input SupportInput) (*models.SupportRecord, error) {
	record, err := supportFromInput(id, input)
	if err != nil {
		return nil, err
	}
	if err := s.records.Update(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update support record %s: %w", id, err)
	}
	return record, nil
}

func (s *supportService) Delete(ctx context.Context, id string) error {
	if err := s.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete support record %s: %w", id, err)
	}
	return nil
}

func supportFromInput(id string, input SupportInput) (*models.SupportRecord, error) {
	if input.GoalkeeperID == "" {
		return nil, ErrGoalkeeperIDRequired
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if !models.ValidSupportArea(input.Area) {
		return nil, ErrInvalidSupportArea
	}
	if input.Status == "" {
		input.Status = models.StatusFit
	}
	if !models.ValidAvailabilityStatus(input.Status) {
		return nil, ErrInvalidSupportStatus
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrSupportTitleRequired
	}

	return &models.SupportRecord{
		ID:               id,
		GoalkeeperID:     input.GoalkeeperID,
		Date:             input.Date,
		Area:             input.Area,
		ProfessionalName: strings.TrimSpace(input.ProfessionalName),
		Status:           input.Status,
		Title:            title,
		Description:      input.Description,
	}, nil
}
