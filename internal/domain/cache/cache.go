// Package cache provides a small bounded cache for computed user stats.
// UserStats is derived state; the cache only saves recomputation, never
// serves as a source of truth.
package cache

import (
	"sync"

	"github.com/Rohannaa2m12/hackapp/internal/domain/types"
)

// Default cache configuration constants.
const defaultMaxSize = 10000

// Option applies a configuration option to the StatsCache.
type Option func(*StatsCache)

// WithMaxSize bounds the number of cached users.
func WithMaxSize(n int) Option {
	return func(c *StatsCache) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// StatsCache caches UserStats projections keyed by user, with FIFO
// eviction once full. Mutating operations must invalidate the affected
// user.
type StatsCache struct {
	mu      sync.RWMutex
	entries map[string]types.UserStats
	order   []string
	maxSize int
}

// New creates a stats cache with configuration options.
func New(opts ...Option) *StatsCache {
	c := &StatsCache{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = make(map[string]types.UserStats, c.maxSize)
	return c
}

// Get returns the cached stats for user, if present.
func (c *StatsCache) Get(user string) (types.UserStats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats, ok := c.entries[user]
	return stats, ok
}

// Put stores stats for user, evicting the oldest entry when full.
func (c *StatsCache) Put(user string, stats types.UserStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[user]; !exists {
		if len(c.entries) >= c.maxSize && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, user)
	}
	c.entries[user] = stats
}

// Invalidate drops the cached stats for user.
func (c *StatsCache) Invalidate(user string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[user]; !ok {
		return
	}
	delete(c.entries, user)
	for i, u := range c.order {
		if u == user {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of cached users.
func (c *StatsCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
