package repositories

import (
	"context"

	"github.com/gbfmachado/gkpro-system/models"
	"github.com/gbfmachado/gkpro-system/storage"
)

// Collection names as persisted in the store.
const (
	CollectionGoalkeepers    = "goalkeepers"
	CollectionCoaches        = "coaches"
	CollectionEvaluations    = "evaluations"
	CollectionScouts         = "match_scouts"
	CollectionTrainings      = "trainings"
	CollectionSupportRecords = "support_records"
)

// Repository owns the six collections. It is constructed once at startup and
// lives for the process lifetime; all consumers read snapshots via List and
// mutate through the typed collections.
type Repository struct {
	Goalkeepers    *Collection[models.Goalkeeper]
	Coaches        *Collection[models.Coach]
	Evaluations    *Collection[models.Evaluation]
	Scouts         *Collection[models.MatchScout]
	Trainings      *Collection[models.Training]
	SupportRecords *Collection[models.SupportRecord]
}

// New loads every collection from the store, seeding defaults where no usable
// state exists.
func New(ctx context.Context, store storage.CollectionStore) *Repository {
	return &Repository{
		Goalkeepers:    newCollection(ctx, store, CollectionGoalkeepers, seedGoalkeepers()),
		Coaches:        newCollection(ctx, store, CollectionCoaches, seedCoaches()),
		Evaluations:    newCollection[models.Evaluation](ctx, store, CollectionEvaluations, nil),
		Scouts:         newCollection[models.MatchScout](ctx, store, CollectionScouts, nil),
		Trainings:      newCollection[models.Training](ctx, store, CollectionTrainings, nil),
		SupportRecords: newCollection[models.SupportRecord](ctx, store, CollectionSupportRecords, nil),
	}
}

// Subscribe registers fn on every collection; fn receives the name of the
// collection that changed.
func (r *Repository) Subscribe(fn func(collection string)) {
	r.Goalkeepers.Subscribe(fn)
	r.Coaches.Subscribe(fn)
	r.Evaluations.Subscribe(fn)
	r.Scouts.Subscribe(fn)
	r.Trainings.Subscribe(fn)
	r.SupportRecords.Subscribe(fn)
}
