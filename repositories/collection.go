package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gbfmachado/gkpro-system/storage"
)

// Entity is anything with a stable string identifier.
type Entity interface {
	EntityID() string
}

// Collection is the in-memory mirror of one persisted collection. Mutations
// replace records wholesale (no in-place field mutation escapes this type),
// write the full collection through to the store before returning, then
// notify subscribers.
type Collection[T Entity] struct {
	name  string
	store storage.CollectionStore

	mu    sync.RWMutex
	items []T
	subs  []func(collection string)
}

// newCollection loads the persisted state for name. Absent or unparseable
// state falls back to seed; the fallback is never an error.
func newCollection[T Entity](ctx context.Context, store storage.CollectionStore, name string, seed []T) *Collection[T] {
	c := &Collection[T]{name: name, store: store}

	data, err := store.Load(ctx, name)
	if err == nil {
		var items []T
		if jsonErr := json.Unmarshal(data, &items); jsonErr == nil {
			c.items = items
			return c
		}
	}

	c.items = append([]T(nil), seed...)
	return c
}

// List returns a copy of the current records in stored order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Get looks a record up by id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add prepends the record, newest first.
func (c *Collection[T]) Add(ctx context.Context, item T) error {
	c.mu.Lock()
	c.items = append([]T{item}, c.items...)
	err := c.persistLocked(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.notify()
	return nil
}

// Update replaces the record with the same id. An unknown id is silently
// ignored, not an error.
func (c *Collection[T]) Update(ctx context.Context, item T) error {
	c.mu.Lock()
	replaced := false
	for i := range c.items {
		if c.items[i].EntityID() == item.EntityID() {
			c.items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		c.mu.Unlock()
		return nil
	}
	err := c.persistLocked(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.notify()
	return nil
}

// Delete removes the record with the given id; absent ids are a no-op.
// Nothing cascades: weak references in other collections are left to dangle.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	kept := c.items[:0:0]
	removed := false
	for _, item := range c.items {
		if item.EntityID() == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		c.mu.Unlock()
		return nil
	}
	c.items = kept
	err := c.persistLocked(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.notify()
	return nil
}

// Subscribe registers fn to run after every successful mutation.
func (c *Collection[T]) Subscribe(fn func(collection string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

func (c *Collection[T]) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", c.name, err)
	}
	return c.store.Save(ctx, c.name, data)
}

func (c *Collection[T]) notify() {
	c.mu.RLock()
	subs := append(([]func(string))(nil), c.subs...)
	c.mu.RUnlock()
	for _, fn := range subs {
		fn(c.name)
	}
}
