// Package audit keeps an append-only in-memory trail of engine mutations.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Rohannaa2m12/hackapp/internal/eventbus"
)

// Default trail configuration constants.
const defaultMaxEntries = 10000

// Entry is one audit record.
type Entry struct {
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
	Kind       string    `json:"kind"`
	User       string    `json:"user"`
	GadgetID   int64     `json:"gadget_id,omitempty"`
	ShortcutID int64     `json:"shortcut_id,omitempty"`
}

// Option applies a configuration option to the Trail.
type Option func(*Trail)

// WithMaxEntries bounds the trail; the oldest entries are discarded first.
func WithMaxEntries(n int) Option {
	return func(t *Trail) {
		if n > 0 {
			t.maxEntries = n
		}
	}
}

// Trail is a bounded append-only audit log. It implements webhook.Sink so
// it can subscribe to the event bus.
type Trail struct {
	mu         sync.RWMutex
	entries    []Entry
	maxEntries int
}

// NewTrail creates a trail with configuration options.
func NewTrail(opts ...Option) *Trail {
	t := &Trail{maxEntries: defaultMaxEntries}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name identifies the trail as an event sink.
func (t *Trail) Name() string { return "audit" }

// Deliver records a bus event as an audit entry. It never fails.
func (t *Trail) Deliver(_ context.Context, e eventbus.Event) error {
	t.append(Entry{
		ID:         uuid.NewString(),
		At:         e.At,
		Kind:       string(e.Kind),
		User:       e.User,
		GadgetID:   e.GadgetID,
		ShortcutID: e.ShortcutID,
	})
	return nil
}

func (t *Trail) append(e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, e)
	if len(t.entries) > t.maxEntries {
		t.entries = t.entries[len(t.entries)-t.maxEntries:]
	}
}

// Entries returns a copy of the recorded entries, oldest first.
func (t *Trail) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of retained entries.
func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
