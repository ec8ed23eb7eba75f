// Package types contains common read-side types used across the application.
package types

import (
	"time"

	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
)

// LeaderboardEntry represents one leaderboard row.
type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	User  string `json:"user"`
	Score int64  `json:"score"`
}

// UserStats is a derived projection of one user's aggregate standing.
// It is computed on demand and never stored.
type UserStats struct {
	User        string     `json:"user"`
	Gadgets     int        `json:"gadgets"`
	Shortcuts   int64      `json:"shortcuts"`
	Score       int64      `json:"score"`
	Tier        model.Tier `json:"tier"`
	LastClaimAt time.Time  `json:"last_claim_at,omitzero"`
}

// GlobalStats aggregates engine-wide counters.
type GlobalStats struct {
	TotalGadgets     int64 `json:"total_gadgets"`
	TotalShortcuts   int64 `json:"total_shortcuts"`
	FeesCollectedWei int64 `json:"fees_collected_wei"`
	DistinctOwners   int   `json:"distinct_owners"`
	DistinctClaimers int   `json:"distinct_claimers"`
}

// CategoryCount pairs a gadget category with the number of gadgets in it.
type CategoryCount struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
}
