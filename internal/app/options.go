package app

import (
	"time"

	"github.com/Rohannaa2m12/hackapp/internal/domain/scoring"
	"github.com/Rohannaa2m12/hackapp/internal/webhook"
	"github.com/Rohannaa2m12/hackapp/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the clock used by the engine and scorer.
func WithClock(clock scoring.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMaxGadgets caps total registrations.
func WithMaxGadgets(max int64) Option {
	return func(s *Service) {
		if max > 0 {
			s.maxGadgets = max
		}
	}
}

// WithQuotaPerUser caps registrations per owner.
func WithQuotaPerUser(quota int) Option {
	return func(s *Service) {
		if quota > 0 {
			s.quotaPerUser = quota
		}
	}
}

// WithMinFee sets the minimum registration fee in wei.
func WithMinFee(wei int64) Option {
	return func(s *Service) {
		if wei >= 0 {
			s.minFeeWei = wei
		}
	}
}

// WithMinClaimInterval sets the engine's global per-user cooldown.
func WithMinClaimInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.minClaimInterval = d
		}
	}
}

// WithBusSize bounds the domain event bus.
func WithBusSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.busSize = size
		}
	}
}

// WithDispatchWorkers sets the number of webhook delivery workers.
func WithDispatchWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.dispatchWorkers = n
		}
	}
}

// WithClaimsPerMin sets the per-user rate limiter allowance.
func WithClaimsPerMin(perMin float64) Option {
	return func(s *Service) {
		if perMin > 0 {
			s.claimsPerMin = perMin
		}
	}
}

// WithStatsCacheSize bounds the user stats cache.
func WithStatsCacheSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.statsCacheSize = n
		}
	}
}

// WithExportShortcutLimit windows shortcut exports to the most recent N.
func WithExportShortcutLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.exportShortcutLimit = n
		}
	}
}

// WithExtraSinks registers additional webhook sinks beside the audit trail
// and the default log sink.
func WithExtraSinks(sinks ...webhook.Sink) Option {
	return func(s *Service) {
		s.extraSinks = append(s.extraSinks, sinks...)
	}
}
