package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SchemaVersion is written with every collection payload. Loads tolerate any
// version; it exists so a future migration has something to key on.
const SchemaVersion = 1

var ErrCollectionNotFound = errors.New("collection not found")

// CollectionStore persists each collection as a single JSON document keyed by
// collection name. Every mutation rewrites the whole document.
type CollectionStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}

type sqliteCollectionStore struct {
	db *sql.DB
}

func NewSQLiteCollectionStore(db *sql.DB) CollectionStore {
	return &sqliteCollectionStore{db: db}
}

func (s *sqliteCollectionStore) Load(ctx context.Context, name string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, name).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to load collection %q: %w", name, err)
	}
	return []byte(data), nil
}

func (s *sqliteCollectionStore) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (name, version, data) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET version = excluded.version, data = excluded.data`,
		name, SchemaVersion, string(data))
	if err != nil {
		return fmt.Errorf("failed to save collection %q: %w", name, err)
	}
	return nil
}
