package commands

// Response shapes mirrored from the server API.

type gadgetView struct {
	GadgetID     int64  `json:"gadget_id"`
	Owner        string `json:"owner"`
	GadgetHash   string `json:"gadget_hash"`
	Category     string `json:"category"`
	RegisteredAt string `json:"registered_at"`
	Active       bool   `json:"active"`
	ClaimCount   int64  `json:"claim_count"`
}

type shortcutView struct {
	ShortcutID int64  `json:"shortcut_id"`
	GadgetID   int64  `json:"gadget_id"`
	Claimer    string `json:"claimer"`
	ClaimedAt  string `json:"claimed_at"`
	ScoreAdded int64  `json:"score_added"`
}

type leaderboardEntryView struct {
	Rank  int    `json:"rank"`
	User  string `json:"user"`
	Score int64  `json:"score"`
}

type userStatsView struct {
	User        string `json:"user"`
	Gadgets     int    `json:"gadgets"`
	Shortcuts   int64  `json:"shortcuts"`
	Score       int64  `json:"score"`
	Tier        string `json:"tier"`
	LastClaimAt string `json:"last_claim_at,omitempty"`
}

type globalStatsView struct {
	TotalGadgets     int64 `json:"total_gadgets"`
	TotalShortcuts   int64 `json:"total_shortcuts"`
	FeesCollectedWei int64 `json:"fees_collected_wei"`
	DistinctOwners   int   `json:"distinct_owners"`
	DistinctClaimers int   `json:"distinct_claimers"`
}

type categoryCountView struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type importReportView struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
