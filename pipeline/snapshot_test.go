package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantry/shopsearch/core"
)

func TestSnapshotStoreLatestPerID(t *testing.T) {
	store := NewSnapshotStore()

	store.Apply(core.CatalogEvent{ID: 1, Domain: core.DomainProduct, Name: "First"})
	store.Apply(core.CatalogEvent{ID: 2, Domain: core.DomainProduct, Name: "Second"})
	store.Apply(core.CatalogEvent{ID: 1, Domain: core.DomainProduct, Name: "First, revised"})

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "First, revised", snapshot[0].Name, "later event replaces, order stays first-seen")
	assert.Equal(t, "Second", snapshot[1].Name)
	assert.Equal(t, 2, store.Size())
}

func TestSnapshotStoreDeletionRemoves(t *testing.T) {
	store := NewSnapshotStore()

	store.Apply(core.CatalogEvent{ID: 1, Domain: core.DomainProduct, Name: "Keep"})
	store.Apply(core.CatalogEvent{ID: 2, Domain: core.DomainProduct, Name: "Drop"})
	store.Apply(core.CatalogEvent{ID: 2, Domain: core.DomainProduct, Deleted: true})

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, core.CatalogID(1), snapshot[0].ID)

	// Deleting an ID the store never saw is harmless.
	store.Apply(core.CatalogEvent{ID: 99, Domain: core.DomainProduct, Deleted: true})
	assert.Equal(t, 1, store.Size())
}
