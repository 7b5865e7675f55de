package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/vantry/shopsearch/core"
)

// MemoryRepository is an in-memory CatalogRepository. It is the reference
// implementation used by the CLI, the gateway demo, and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[core.CatalogID]core.Catalog
	closed  bool
}

var _ CatalogRepository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an in-memory repository, optionally pre-seeded
// with catalog entries.
func NewMemoryRepository(seed ...core.Catalog) *MemoryRepository {
	entries := make(map[core.CatalogID]core.Catalog, len(seed))
	for _, entry := range seed {
		entries[entry.ID] = entry
	}
	return &MemoryRepository{entries: entries}
}

// List returns every entry ordered by ascending ID.
func (r *MemoryRepository) List(ctx context.Context) ([]core.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, ErrRepositoryClosed
	}

	entries := make([]core.Catalog, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Upsert stores the event's catalog projection under its ID.
func (r *MemoryRepository) Upsert(ctx context.Context, event core.CatalogEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRepositoryClosed
	}

	r.entries[event.ID] = event.Catalog()
	return nil
}

// Remove deletes the entry for the given ID, if present.
func (r *MemoryRepository) Remove(ctx context.Context, id core.CatalogID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRepositoryClosed
	}

	delete(r.entries, id)
	return nil
}

// Get retrieves a single entry by ID.
func (r *MemoryRepository) Get(ctx context.Context, id core.CatalogID) (core.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return core.Catalog{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return core.Catalog{}, ErrRepositoryClosed
	}

	entry, ok := r.entries[id]
	if !ok {
		return core.Catalog{}, ErrNotFound
	}
	return entry, nil
}

// Close marks the repository closed. Subsequent calls return
// ErrRepositoryClosed.
func (r *MemoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.entries = nil
	return nil
}
