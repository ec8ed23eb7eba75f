// Package eventbus carries domain events from the registry to simulated
// webhook subscribers. It is a bounded in-memory channel, not a broker:
// a full bus drops events rather than blocking a mutation.
package eventbus

import (
	"context"
	"sync"
	"time"

	"github.com/Rohannaa2m12/hackapp/pkg/metrics"
)

// Default bus configuration constants.
const defaultCapacity = 4096

// Kind names a domain event type.
type Kind string

// Domain event kinds.
const (
	KindGadgetRegistered Kind = "gadget.registered"
	KindShortcutClaimed  Kind = "shortcut.claimed"
	KindGadgetToggled    Kind = "gadget.toggled"
)

// Event is one domain event flowing through the bus.
type Event struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	User       string    `json:"user"`
	GadgetID   int64     `json:"gadget_id"`
	ShortcutID int64     `json:"shortcut_id,omitempty"`
	Score      int64     `json:"score,omitempty"`
	Active     bool      `json:"active,omitempty"`
	At         time.Time `json:"at"`
}

// Option applies a configuration option to the Bus.
type Option func(*Bus)

// WithCapacity bounds how many events may be in flight.
func WithCapacity(capacity int) Option {
	return func(b *Bus) {
		if capacity > 0 {
			b.capacity = capacity
		}
	}
}

// Bus is a bounded in-memory event queue.
type Bus struct {
	events   chan Event
	capacity int

	mu     sync.RWMutex
	closed bool
}

// New creates a bus with configuration options.
func New(opts ...Option) *Bus {
	b := &Bus{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(b)
	}
	b.events = make(chan Event, b.capacity)
	metrics.UpdateBusDepth(0)
	return b
}

// Publish offers an event to the bus. It never blocks; false means the bus
// is full or closed and the event was dropped.
func (b *Bus) Publish(ctx context.Context, e Event) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		metrics.RecordBusDropped()
		return false
	}
	select {
	case b.events <- e:
		metrics.RecordBusPublished()
		metrics.UpdateBusDepth(len(b.events))
		return true
	default:
		metrics.RecordBusDropped()
		return false
	}
}

// Events returns the channel consumers read from. The channel is closed
// when the bus is closed.
func (b *Bus) Events() <-chan Event {
	return b.events
}

// Len returns the current number of queued events.
func (b *Bus) Len() int {
	return len(b.events)
}

// Close shuts the bus down. Subsequent publishes are dropped.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.events)
	return nil
}

// IsClosed reports whether the bus has been closed.
func (b *Bus) IsClosed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.closed
}
