package pipeline

import (
	"context"
	"fmt"

	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/index"
)

// NewIncrementalProcessor returns a listener that keeps the index writer in
// sync with each mutation: deletions drop the catalog's documents, everything
// else rebuilds and replaces them in place. The listener is purely reactive;
// it holds no state beyond its dependencies.
func NewIncrementalProcessor(writer index.Writer, builder *DocumentBuilder, locales, currencies []string) (Listener, error) {
	if writer == nil {
		return nil, ErrNilWriter
	}
	if builder == nil {
		return nil, ErrNilBuilder
	}

	return func(ctx context.Context, event core.CatalogEvent) error {
		if event.Deleted {
			if err := writer.DeleteCatalog(ctx, event.ID); err != nil {
				return fmt.Errorf("delete catalog %d: %w", event.ID, err)
			}
			return nil
		}

		documents := builder.Build(event, locales, currencies)
		if err := writer.ReplaceCatalogDocuments(ctx, event.ID, documents); err != nil {
			return fmt.Errorf("replace catalog %d documents: %w", event.ID, err)
		}
		return nil
	}, nil
}
