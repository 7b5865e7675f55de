package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/vantry/shopsearch/core"
)

// Listener handles one catalog event. A returned error aborts the publish
// that delivered the event.
type Listener func(ctx context.Context, event core.CatalogEvent) error

// EventBus fans catalog events out to subscribed projections. Delivery is
// sequential in subscription order: each listener completes before the next
// is invoked, so no two listeners ever observe overlapping partial state for
// the same event. A slow listener delays everything behind it.
type EventBus struct {
	publishMu sync.Mutex

	mu          sync.Mutex
	subscribers []*subscription
}

type subscription struct {
	listener Listener
}

// NewEventBus creates an event bus with no subscribers.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers a listener and returns its unsubscribe function.
// Unsubscribing twice is harmless.
func (b *EventBus) Subscribe(listener Listener) (unsubscribe func()) {
	sub := &subscription{listener: listener}

	b.mu.Lock()
	b.subscribers = append(b.subscribers, sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subscribers {
			if s == sub {
				b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Publish validates the event and delivers it to every subscriber in
// subscription order. The first listener error aborts delivery and is
// returned; listeners behind the failing one never see the event.
func (b *EventBus) Publish(ctx context.Context, event core.CatalogEvent) error {
	b.publishMu.Lock()
	defer b.publishMu.Unlock()
	return b.deliver(ctx, event)
}

// PublishBatch publishes events one at a time, in order. Event i is fully
// delivered to all listeners before event i+1 is published.
func (b *EventBus) PublishBatch(ctx context.Context, events []core.CatalogEvent) error {
	b.publishMu.Lock()
	defer b.publishMu.Unlock()

	for _, event := range events {
		if err := b.deliver(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (b *EventBus) deliver(ctx context.Context, event core.CatalogEvent) error {
	if err := core.ValidateEvent(event); err != nil {
		return fmt.Errorf("publish event %d: %w", event.ID, err)
	}

	b.mu.Lock()
	subscribers := make([]*subscription, len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.mu.Unlock()

	for _, sub := range subscribers {
		if err := sub.listener(ctx, event); err != nil {
			return fmt.Errorf("deliver event %d: %w", event.ID, err)
		}
	}
	return nil
}
