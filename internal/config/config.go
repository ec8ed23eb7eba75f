// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and HAX_* env vars.
// - External errors are wrapped via this package's error helpers.
package config

import (
	"github.com/Rohannaa2m12/hackapp/internal/engine"
	"github.com/Rohannaa2m12/hackapp/internal/export"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// MaxGadgets caps the total number of gadgets ever registered.
	MaxGadgets int64 `koanf:"max_gadgets"`

	// QuotaPerUser caps gadgets per owner.
	QuotaPerUser int `koanf:"quota_per_user"`

	// FeeWei is the minimum registration fee in wei.
	FeeWei int64 `koanf:"fee_wei"`

	// MinClaimIntervalSec is the global per-user claim cooldown in seconds.
	MinClaimIntervalSec int `koanf:"min_claim_interval_sec"`

	// BusSize bounds the in-memory domain event bus.
	BusSize int `koanf:"bus_size"`

	// DispatchWorkers sets the number of webhook delivery workers.
	DispatchWorkers int `koanf:"dispatch_workers"`

	// ExportShortcutLimit windows shortcut exports to the most recent N.
	ExportShortcutLimit int `koanf:"export_shortcut_limit"`

	// ClaimsPerMin is the per-user rate limiter's sustained allowance.
	ClaimsPerMin float64 `koanf:"claims_per_min"`

	// StatsCacheSize bounds the user stats cache.
	StatsCacheSize int `koanf:"stats_cache_size"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8090",
		MaxGadgets:          engine.DefaultMaxGadgets,
		QuotaPerUser:        engine.DefaultQuotaPerUser,
		FeeWei:              engine.DefaultMinFeeWei,
		MinClaimIntervalSec: int(engine.DefaultMinClaimInterval.Seconds()),
		BusSize:             4096,
		DispatchWorkers:     2,
		ExportShortcutLimit: export.DefaultShortcutLimit,
		ClaimsPerMin:        30,
		StatsCacheSize:      10000,
	}
}
