// Package ratelimit provides a generic per-key token bucket. It is not
// domain-specific; the claim cooldown inside the engine is a separate,
// stricter invariant.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// Default limiter configuration constants.
const (
	defaultRatePerSec = 1.0
	defaultBurst      = 5
)

// Option applies a configuration option to the KeyedLimiter.
type Option func(*KeyedLimiter)

// WithRate sets the sustained refill rate in tokens per second.
func WithRate(perSec float64) Option {
	return func(l *KeyedLimiter) {
		if perSec > 0 {
			l.ratePerSec = perSec
		}
	}
}

// WithBurst sets the bucket capacity.
func WithBurst(burst int) Option {
	return func(l *KeyedLimiter) {
		if burst > 0 {
			l.burst = burst
		}
	}
}

// KeyedLimiter maintains one token bucket per key, created lazily.
type KeyedLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*rate.Limiter
	ratePerSec float64
	burst      int
}

// New creates a keyed limiter with configuration options.
func New(opts ...Option) *KeyedLimiter {
	l := &KeyedLimiter{
		buckets:    make(map[string]*rate.Limiter),
		ratePerSec: defaultRatePerSec,
		burst:      defaultBurst,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether key may proceed now, consuming one token if so.
func (l *KeyedLimiter) Allow(key string) bool {
	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(l.ratePerSec), l.burst)
		l.buckets[key] = bucket
	}
	l.mu.Unlock()
	return bucket.Allow()
}

// Size returns the number of keys tracked.
func (l *KeyedLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
