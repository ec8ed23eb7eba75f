package model

// Tier names a user's efficiency bracket.
type Tier string

// Efficiency tiers, ordered from lowest to highest.
const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
	TierLegend   Tier = "LEGEND"
)

// tierFloor pairs a tier with its inclusive lower score bound.
type tierFloor struct {
	tier  Tier
	floor int64
}

// Ordered descending so resolution finds the greatest floor <= score.
var tierFloors = []tierFloor{
	{TierLegend, 10000},
	{TierPlatinum, 2000},
	{TierGold, 500},
	{TierSilver, 100},
	{TierBronze, 0},
}

// TierForScore maps a cumulative score to its tier. Every non-negative score
// resolves to exactly one tier; anything outside the table falls through to
// LEGEND as a safety net.
func TierForScore(score int64) Tier {
	for _, tf := range tierFloors {
		if score >= tf.floor {
			return tf.tier
		}
	}
	return TierLegend
}

func (t Tier) String() string { return string(t) }
