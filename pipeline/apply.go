package pipeline

import (
	"context"
	"fmt"

	"github.com/vantry/shopsearch/core"
	"github.com/vantry/shopsearch/storage"
)

// ApplyCatalogEvents applies a batch of events directly against the
// repository, bypassing the bus. Deletions remove the entry, everything else
// upserts. When a snapshot store is provided every event is mirrored into it.
// Events are validated first; the batch stops at the first failure.
func ApplyCatalogEvents(ctx context.Context, repo storage.CatalogRepository, events []core.CatalogEvent, snapshot *SnapshotStore) error {
	if repo == nil {
		return ErrNilRepository
	}

	for _, event := range events {
		if err := core.ValidateEvent(event); err != nil {
			return fmt.Errorf("apply event %d: %w", event.ID, err)
		}

		if event.Deleted {
			if err := repo.Remove(ctx, event.ID); err != nil {
				return fmt.Errorf("remove catalog %d: %w", event.ID, err)
			}
		} else {
			if err := repo.Upsert(ctx, event); err != nil {
				return fmt.Errorf("upsert catalog %d: %w", event.ID, err)
			}
		}

		if snapshot != nil {
			snapshot.Apply(event)
		}
	}
	return nil
}
