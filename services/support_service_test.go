package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbfmachado/gkpro-system/models"
)

func validSupportInput() SupportInput {
	return SupportInput{
		GoalkeeperID:     "1",
		Date:             "2025-07-01",
		Area:             models.AreaPhysiotherapy,
		ProfessionalName: "Dra. Fernanda Souza",
		Title:            "Fortalecimento de ombro",
	}
}

func TestSupportCreateDefaultsToFit(t *testing.T) {
	repo := newTestRepo()
	svc := NewSupportService(repo.SupportRecords)

	created, err := svc.Create(context.Background(), validSupportInput())
	require.NoError(t, err)
	assert.Equal(t, models.StatusFit, created.Status)
}

func TestSupportCreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewSupportService(repo.SupportRecords)

	input := validSupportInput()
	input.GoalkeeperID = ""
	_, err := svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrGoalkeeperIDRequired)

	input = validSupportInput()
	input.Title = "  "
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrSupportTitleRequired)

	input = validSupportInput()
	input.Area = "dentistry"
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrInvalidSupportArea)

	input = validSupportInput()
	input.Status = "injured"
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrInvalidSupportStatus)
}

func TestSupportListByArea(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewSupportService(repo.SupportRecords)

	physio := validSupportInput()
	_, err := svc.Create(ctx, physio)
	require.NoError(t, err)

	nutrition := validSupportInput()
	nutrition.Area = models.AreaNutrition
	nutrition.GoalkeeperID = "2"
	_, err = svc.Create(ctx, nutrition)
	require.NoError(t, err)

	records, err := svc.ListByArea(ctx, models.AreaPhysiotherapy, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AreaPhysiotherapy, records[0].Area)

	records, err = svc.ListByArea(ctx, models.AreaNutrition, "1")
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = svc.ListByArea(ctx, "dentistry", "")
	assert.ErrorIs(t, err, ErrInvalidSupportArea)
}
