package app

import "errors"

// Sentinel kinds for service-level failures.
var (
	// ErrRateLimited marks a claim rejected by the per-user token bucket,
	// before the engine's cooldown is even consulted.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNotStarted marks use of a service that has not been started.
	ErrNotStarted = errors.New("service not started")
)
