package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HAX_CONFIG is set; a missing file is not an error
//  3. env (prefix HAX_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HAX_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
			}
		}
	}

	// Environment variables: HAX_ADDR, HAX_MAX_GADGETS, ...
	// Map env keys like HAX_MAX_GADGETS -> max_gadgets (flat keys,
	// underscores preserved to match the koanf tags).
	envProvider := env.Provider("HAX_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "hax_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxGadgets <= 0:
		return fmt.Errorf("%w: max_gadgets must be positive", ErrInvalidConfig)
	case c.QuotaPerUser <= 0:
		return fmt.Errorf("%w: quota_per_user must be positive", ErrInvalidConfig)
	case c.FeeWei < 0:
		return fmt.Errorf("%w: fee_wei must not be negative", ErrInvalidConfig)
	case c.MinClaimIntervalSec <= 0:
		return fmt.Errorf("%w: min_claim_interval_sec must be positive", ErrInvalidConfig)
	}
	return nil
}
