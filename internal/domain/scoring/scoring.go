// Package scoring computes the efficiency score awarded by a claim.
package scoring

import "time"

// Default scoring configuration constants.
const (
	defaultBase        = 10
	defaultVarianceMod = 5
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return ClockFunc(time.Now) }

// Option applies a configuration option to the ClaimScorer.
type Option func(*ClaimScorer)

// WithBase sets the base score awarded by every claim.
func WithBase(base int64) Option {
	return func(s *ClaimScorer) {
		if base > 0 {
			s.base = base
		}
	}
}

// WithVarianceMod sets the modulus of the time-derived variance component.
func WithVarianceMod(mod int64) Option {
	return func(s *ClaimScorer) {
		if mod > 0 {
			s.varianceMod = mod
		}
	}
}

// WithClock sets the clock used for the variance component.
func WithClock(clock Clock) Option {
	return func(s *ClaimScorer) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// ClaimScorer awards a base score plus a small time-derived variance:
// the current epoch second modulo the variance modulus. The variance is
// deliberate low-stakes flavor, not security-relevant.
type ClaimScorer struct {
	base        int64
	varianceMod int64
	clock       Clock
}

// NewClaimScorer creates a scorer with configuration options.
func NewClaimScorer(opts ...Option) *ClaimScorer {
	s := &ClaimScorer{
		base:        defaultBase,
		varianceMod: defaultVarianceMod,
		clock:       SystemClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns the points awarded by a claim made at the scorer's current
// clock reading. The result is always in [base, base+varianceMod).
func (s *ClaimScorer) Score() int64 {
	return s.base + s.clock.Now().Unix()%s.varianceMod
}
