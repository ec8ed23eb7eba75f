// Package analytics provides read-only projections over engine state:
// the leaderboard, the per-category distribution and per-gadget claim counts.
package analytics

import "github.com/Rohannaa2m12/hackapp/internal/domain/types"

// Board is a rank index over user efficiency scores, ordered score
// descending with a lexicographic user-id tie-break. The tie-break is a
// deliberate, documented choice: iteration order must be deterministic.
//
// Like the engine, the Board does no locking of its own; callers that share
// one across goroutines must synchronize externally.
type Board struct {
	root   *node
	byUser map[string]int64
}

// NewBoard returns an empty rank index.
func NewBoard() *Board {
	return &Board{byUser: make(map[string]int64)}
}

// NewBoardFromScores builds a rank index from a user -> score mapping,
// typically engine.UserScores().
func NewBoardFromScores(scores map[string]int64) *Board {
	b := NewBoard()
	for user, score := range scores {
		b.Update(user, score)
	}
	return b
}

// Update sets a user's current score, inserting the user on first sight.
// Users with a registration but no claims belong on the board with score 0.
func (b *Board) Update(user string, score int64) {
	if old, ok := b.byUser[user]; ok {
		if old == score {
			return
		}
		b.root = remove(b.root, user, old)
	}
	b.byUser[user] = score
	b.root = insert(b.root, user, score)
}

// Len returns the number of users on the board.
func (b *Board) Len() int { return len(b.byUser) }

// Score returns the indexed score for a user.
func (b *Board) Score(user string) (int64, bool) {
	score, ok := b.byUser[user]
	return score, ok
}

// TopN returns up to limit entries in rank order, ranks starting at 1.
func (b *Board) TopN(limit int) []types.LeaderboardEntry {
	if limit <= 0 {
		return nil
	}
	nodes := make([]*node, 0, limit)
	collect(b.root, limit, &nodes)
	out := make([]types.LeaderboardEntry, len(nodes))
	for i, n := range nodes {
		out[i] = types.LeaderboardEntry{Rank: i + 1, User: n.user, Score: n.score}
	}
	return out
}
