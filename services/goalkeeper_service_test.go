package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbfmachado/gkpro-system/models"
)

func validGoalkeeperInput() GoalkeeperInput {
	return GoalkeeperInput{
		Name:         "Ederson Moraes",
		BirthDate:    "1993-08-17",
		Category:     models.CategoryProfessional,
		Position:     models.PositionBackup,
		Height:       188,
		Weight:       86,
		Wingspan:     194,
		DominantFoot: models.FootLeft,
	}
}

func TestGoalkeeperCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewGoalkeeperService(repo.Goalkeepers, &fakeUploader{})

	created, err := svc.Create(ctx, validGoalkeeperInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ederson Moraes", got.Name)

	// New records land first, before the seeded keeper.
	keepers := svc.List(ctx)
	require.NotEmpty(t, keepers)
	assert.Equal(t, created.ID, keepers[0].ID)
}

func TestGoalkeeperCreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewGoalkeeperService(repo.Goalkeepers, &fakeUploader{})

	tests := []struct {
		name    string
		mutate  func(*GoalkeeperInput)
		wantErr error
	}{
		{"blank name", func(in *GoalkeeperInput) { in.Name = "   " }, ErrGoalkeeperNameRequired},
		{"unknown category", func(in *GoalkeeperInput) { in.Category = "Sub-99" }, ErrInvalidCategory},
		{"unknown position", func(in *GoalkeeperInput) { in.Position = "bench" }, ErrInvalidPosition},
		{"unknown foot", func(in *GoalkeeperInput) { in.DominantFoot = "ambidextrous" }, ErrInvalidDominantFoot},
		{"bad date", func(in *GoalkeeperInput) { in.BirthDate = "17/08/1993" }, ErrInvalidDate},
		{"negative measurement", func(in *GoalkeeperInput) { in.Height = -1 }, ErrInvalidMeasurement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validGoalkeeperInput()
			tt.mutate(&input)
			_, err := svc.Create(ctx, input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGoalkeeperGetByIDNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewGoalkeeperService(repo.Goalkeepers, &fakeUploader{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrGoalkeeperNotFound)
}

func TestGoalkeeperDeleteLeavesDependents(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewGoalkeeperService(repo.Goalkeepers, &fakeUploader{})

	created, err := svc.Create(ctx, validGoalkeeperInput())
	require.NoError(t, err)

	require.NoError(t, repo.Scouts.Add(ctx, models.MatchScout{ID: "s1", GoalkeeperID: created.ID}))

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrGoalkeeperNotFound)

	// The scout keeps its dangling reference.
	scout, ok := repo.Scouts.Get("s1")
	require.True(t, ok)
	assert.Equal(t, created.ID, scout.GoalkeeperID)
}

func TestGoalkeeperUploadPhoto(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	uploader := &fakeUploader{}
	svc := NewGoalkeeperService(repo.Goalkeepers, uploader)

	created, err := svc.Create(ctx, validGoalkeeperInput())
	require.NoError(t, err)

	updated, err := svc.UploadPhoto(ctx, created.ID, "image/png", strings.NewReader("fake-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "goalkeepers/"+created.ID+".png", uploader.lastKey)
	assert.Equal(t, "https://cdn.example.com/goalkeepers/"+created.ID+".png", updated.Photo)

	stored, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Photo, stored.Photo)
}

func TestGoalkeeperUploadPhotoUnknownKeeper(t *testing.T) {
	repo := newTestRepo()
	svc := NewGoalkeeperService(repo.Goalkeepers, &fakeUploader{})

	_, err := svc.UploadPhoto(context.Background(), "missing", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrGoalkeeperNotFound)
}
