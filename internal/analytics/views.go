package analytics

import (
	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	"github.com/Rohannaa2m12/hackapp/internal/domain/types"
	"github.com/Rohannaa2m12/hackapp/internal/engine"
)

// Leaderboard builds a fresh rank index from engine state and returns the
// top limit entries. Long-running callers should keep a Board updated
// incrementally instead of rebuilding per query.
func Leaderboard(eng *engine.Engine, limit int) []types.LeaderboardEntry {
	return NewBoardFromScores(eng.UserScores()).TopN(limit)
}

// CategoryDistribution counts gadgets per category, active or not. All
// categories are always present in the result, even at zero.
func CategoryDistribution(eng *engine.Engine) []types.CategoryCount {
	counts := make(map[model.Category]int, len(model.Categories()))
	for _, g := range eng.Gadgets() {
		counts[g.Category]++
	}
	out := make([]types.CategoryCount, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		out = append(out, types.CategoryCount{Category: c, Count: counts[c]})
	}
	return out
}

// ClaimsForGadget returns a gadget's claim count. The second return value
// distinguishes an unknown gadget from a known gadget with zero claims.
func ClaimsForGadget(eng *engine.Engine, gadgetID int64) (int64, bool) {
	g, ok := eng.Gadget(gadgetID)
	if !ok {
		return 0, false
	}
	return g.ClaimCount, true
}
