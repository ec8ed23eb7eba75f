package simulate

import (
	"time"

	"github.com/Rohannaa2m12/hackapp/internal/engine"
)

// Config holds configuration for a simulation run.
type Config struct {
	Users       int           // Number of distinct users to simulate
	Gadgets     int           // Number of gadgets to register
	Claims      int           // Number of shortcut claims to attempt
	FeeWei      int64         // Fee attached to each registration
	TopN        int           // Number of leaderboard entries to print
	Verbose     bool          // Enable verbose logging
	ClaimJitter time.Duration // Advance the simulated clock between claims
}

// DefaultConfig returns a config suitable for a quick local run.
func DefaultConfig() *Config {
	return &Config{
		Users:       8,
		Gadgets:     40,
		Claims:      200,
		FeeWei:      engine.DefaultMinFeeWei,
		TopN:        10,
		ClaimJitter: 61 * time.Second,
	}
}

// Stats holds simulation statistics.
type Stats struct {
	StartTime        time.Time
	EndTime          time.Time
	GadgetsRegistered int
	GadgetsRejected   int
	ClaimsAccepted    int
	ClaimsRejected    int
}

// Duration returns the wall-clock duration of the run.
func (s *Stats) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}
