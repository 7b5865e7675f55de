package pipeline

import (
	"sync"

	"github.com/vantry/shopsearch/core"
)

// SnapshotStore captures the latest non-deleted event for every catalog ID.
// Reindex jobs iterate the snapshot to rebuild the index without replaying
// the full event history. Safe for concurrent use.
type SnapshotStore struct {
	mu     sync.RWMutex
	events map[core.CatalogID]core.CatalogEvent
	order  []core.CatalogID
}

// NewSnapshotStore creates an empty snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		events: make(map[core.CatalogID]core.CatalogEvent),
	}
}

// Apply records the event as the latest state for its ID. A deletion event
// removes the ID from the snapshot.
func (s *SnapshotStore) Apply(event core.CatalogEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.Deleted {
		if _, ok := s.events[event.ID]; ok {
			delete(s.events, event.ID)
			for i, id := range s.order {
				if id == event.ID {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		}
		return
	}

	if _, ok := s.events[event.ID]; !ok {
		s.order = append(s.order, event.ID)
	}
	s.events[event.ID] = event
}

// Snapshot returns the retained events in first-seen order.
func (s *SnapshotStore) Snapshot() []core.CatalogEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]core.CatalogEvent, 0, len(s.order))
	for _, id := range s.order {
		events = append(events, s.events[id])
	}
	return events
}

// Size returns the number of retained events.
func (s *SnapshotStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
