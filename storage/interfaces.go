package storage

import (
	"context"

	"github.com/vantry/shopsearch/core"
)

// CatalogRepository is the current-state view of the catalog.
// Implementations must be safe for concurrent use.
type CatalogRepository interface {
	// List returns every stored catalog entry, ordered by ascending ID.
	List(ctx context.Context) ([]core.Catalog, error)

	// Upsert projects a mutation event onto the stored entry for its ID,
	// inserting or replacing it wholesale.
	Upsert(ctx context.Context, event core.CatalogEvent) error

	// Remove deletes the entry for the given ID.
	// Removing an absent ID is not an error.
	Remove(ctx context.Context, id core.CatalogID) error

	// Get retrieves a single entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	Get(ctx context.Context, id core.CatalogID) (core.Catalog, error)

	// Close releases resources held by the repository.
	Close() error
}
