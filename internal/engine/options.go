package engine

import (
	"time"

	"github.com/Rohannaa2m12/hackapp/internal/domain/scoring"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMaxGadgets caps the total number of gadgets ever registered.
func WithMaxGadgets(max int64) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxGadgets = max
		}
	}
}

// WithQuotaPerUser caps how many gadgets one owner may register.
func WithQuotaPerUser(quota int) Option {
	return func(e *Engine) {
		if quota > 0 {
			e.quotaPerUser = quota
		}
	}
}

// WithMinFee sets the minimum registration fee in wei.
func WithMinFee(wei int64) Option {
	return func(e *Engine) {
		if wei >= 0 {
			e.minFeeWei = wei
		}
	}
}

// WithMinClaimInterval sets the global per-user claim cooldown.
func WithMinClaimInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.minClaimInterval = d
		}
	}
}

// WithClock sets the clock used for timestamps, cooldowns and scoring.
func WithClock(clock scoring.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithScorer sets the claim scorer.
func WithScorer(s *scoring.ClaimScorer) Option {
	return func(e *Engine) {
		if s != nil {
			e.scorer = s
		}
	}
}
