// Package engine implements the registry/claim engine: gadget registration,
// shortcut claims, activation toggling and the stats queries derived from
// them. The engine owns all entity state and enforces every invariant.
//
// The engine performs no locking of its own. It is designed for
// single-threaded, in-process use; callers that embed it in a concurrent
// context must serialize mutating operations externally (internal/app does).
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	"github.com/Rohannaa2m12/hackapp/internal/domain/scoring"
	"github.com/Rohannaa2m12/hackapp/internal/domain/types"
)

// DomainSeed is the fixed domain separator mixed into every content hash
// and stamped on exports.
const DomainSeed = "HackApp.GadgetSplash.v1.0x9f5b2d8e4a6c0f3b7d9e1a5c8f2b4d6e0a3c5f7b9"

// Default engine limits.
const (
	DefaultMaxGadgets       = 2048
	DefaultQuotaPerUser     = 32
	DefaultMinFeeWei        = 2_000_000_000_000_000 // 0.002 ether
	DefaultMinClaimInterval = 60 * time.Second
)

// Engine holds all registry state. Construct once with New and pass by
// reference to all callers; there is no ambient global instance.
type Engine struct {
	paused bool

	nextGadgetID   int64
	nextShortcutID int64

	gadgets   map[int64]model.Gadget
	shortcuts map[int64]model.Shortcut

	byOwner     map[string][]int64
	claimCounts map[string]int64
	scores      map[string]int64
	lastClaim   map[string]time.Time

	feesCollectedWei int64

	maxGadgets       int64
	quotaPerUser     int
	minFeeWei        int64
	minClaimInterval time.Duration

	clock  scoring.Clock
	scorer *scoring.ClaimScorer
}

// New constructs an empty engine with default limits.
func New(opts ...Option) *Engine {
	e := &Engine{
		gadgets:          make(map[int64]model.Gadget),
		shortcuts:        make(map[int64]model.Shortcut),
		byOwner:          make(map[string][]int64),
		claimCounts:      make(map[string]int64),
		scores:           make(map[string]int64),
		lastClaim:        make(map[string]time.Time),
		maxGadgets:       DefaultMaxGadgets,
		quotaPerUser:     DefaultQuotaPerUser,
		minFeeWei:        DefaultMinFeeWei,
		minClaimInterval: DefaultMinClaimInterval,
		clock:            scoring.SystemClock(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.scorer == nil {
		e.scorer = scoring.NewClaimScorer(scoring.WithClock(e.clock))
	}
	return e
}

// Pause halts all mutating operations until Resume.
func (e *Engine) Pause() { e.paused = true }

// Resume lifts a pause.
func (e *Engine) Resume() { e.paused = false }

// Paused reports whether the engine is halted.
func (e *Engine) Paused() bool { return e.paused }

// hashContent derives the content hash for a new gadget from the domain
// seed, the payload and the assigned id. Only uniqueness and
// determinism-per-input matter, not the exact digest layout.
func hashContent(payload string, id int64) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s:%d", DomainSeed, payload, id))
	return hex.EncodeToString(sum[:])
}

// RegisterGadget validates and creates a new gadget. Preconditions are
// checked in order and fail fast; no state is mutated on failure.
func (e *Engine) RegisterGadget(owner, payload string, category model.Category, feeWei int64) (model.Gadget, error) {
	if e.paused {
		return model.Gadget{}, ErrPaused
	}
	if feeWei < e.minFeeWei {
		return model.Gadget{}, &FeeRequiredError{MinimumWei: e.minFeeWei}
	}
	g, err := e.createGadget(owner, payload, category)
	if err != nil {
		return model.Gadget{}, err
	}
	e.feesCollectedWei += feeWei
	return g, nil
}

// ImportGadget is the registration path used by exports being read back in.
// The fee check is waived and no fee is accrued; quota and cap still hold.
func (e *Engine) ImportGadget(owner, payload string, category model.Category) (model.Gadget, error) {
	if e.paused {
		return model.Gadget{}, ErrPaused
	}
	return e.createGadget(owner, payload, category)
}

func (e *Engine) createGadget(owner, payload string, category model.Category) (model.Gadget, error) {
	if owned := len(e.byOwner[owner]); owned >= e.quotaPerUser {
		return model.Gadget{}, &QuotaExceededError{Owner: owner, Count: owned, Limit: e.quotaPerUser}
	}
	if e.nextGadgetID >= e.maxGadgets {
		return model.Gadget{}, &InvalidGadgetIDError{}
	}

	e.nextGadgetID++
	id := e.nextGadgetID
	g := model.Gadget{
		ID:           id,
		Owner:        owner,
		Hash:         hashContent(payload, id),
		Category:     category,
		RegisteredAt: e.clock.Now(),
		Active:       true,
		ClaimCount:   0,
	}
	e.gadgets[id] = g
	e.byOwner[owner] = append(e.byOwner[owner], id)
	return g, nil
}

// ClaimShortcut validates and records a claim of gadget by claimer.
// The cooldown is global per claimer, not per gadget.
func (e *Engine) ClaimShortcut(gadgetID int64, claimer string) (model.Shortcut, error) {
	if e.paused {
		return model.Shortcut{}, ErrPaused
	}
	g, ok := e.gadgets[gadgetID]
	if !ok {
		return model.Shortcut{}, &InvalidGadgetIDError{ID: gadgetID}
	}
	if !g.Active {
		return model.Shortcut{}, &GadgetInactiveError{ID: gadgetID}
	}
	now := e.clock.Now()
	if last, claimed := e.lastClaim[claimer]; claimed {
		ready := last.Add(e.minClaimInterval)
		if now.Before(ready) {
			wait := ready.Sub(now).Round(time.Second)
			if wait < ready.Sub(now) {
				wait += time.Second
			}
			return model.Shortcut{}, &ClaimTooSoonError{Claimer: claimer, Wait: wait}
		}
	}

	e.nextShortcutID++
	s := model.Shortcut{
		ID:         e.nextShortcutID,
		GadgetID:   gadgetID,
		Claimer:    claimer,
		ClaimedAt:  now,
		ScoreAdded: e.scorer.Score(),
	}
	e.shortcuts[s.ID] = s

	e.claimCounts[claimer]++
	e.scores[claimer] += s.ScoreAdded
	e.lastClaim[claimer] = now

	g.ClaimCount++
	e.gadgets[gadgetID] = g
	return s, nil
}

// SetGadgetActive flips a gadget's active flag. Only the recorded owner may
// do so.
func (e *Engine) SetGadgetActive(gadgetID int64, owner string, active bool) (model.Gadget, error) {
	g, ok := e.gadgets[gadgetID]
	if !ok {
		return model.Gadget{}, &InvalidGadgetIDError{ID: gadgetID}
	}
	if g.Owner != owner {
		return model.Gadget{}, &NotOperatorError{Actor: owner}
	}
	g.Active = active
	e.gadgets[gadgetID] = g
	return g, nil
}

// Gadget returns the gadget with the given id. Absence is not an error.
func (e *Engine) Gadget(id int64) (model.Gadget, bool) {
	g, ok := e.gadgets[id]
	return g, ok
}

// Shortcut returns the shortcut with the given id.
func (e *Engine) Shortcut(id int64) (model.Shortcut, bool) {
	s, ok := e.shortcuts[id]
	return s, ok
}

// GadgetsByOwner returns the ids registered by owner in insertion order.
// The result is a copy; mutating it does not affect engine state.
func (e *Engine) GadgetsByOwner(owner string) []int64 {
	ids := e.byOwner[owner]
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}

// Gadgets returns all gadgets ordered by ascending id.
func (e *Engine) Gadgets() []model.Gadget {
	out := make([]model.Gadget, 0, len(e.gadgets))
	for _, g := range e.gadgets {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RecentShortcuts returns up to n of the most recent shortcuts, oldest
// first. Shortcut ids are monotonic, so recency follows id order.
func (e *Engine) RecentShortcuts(n int) []model.Shortcut {
	if n <= 0 {
		return nil
	}
	out := make([]model.Shortcut, 0, n)
	lo := e.nextShortcutID - int64(n) + 1
	if lo < 1 {
		lo = 1
	}
	for id := lo; id <= e.nextShortcutID; id++ {
		if s, ok := e.shortcuts[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// UserStats computes a user's aggregate standing on demand. A never-seen
// user yields all-zero counts and the BRONZE tier.
func (e *Engine) UserStats(user string) types.UserStats {
	score := e.scores[user]
	return types.UserStats{
		User:        user,
		Gadgets:     len(e.byOwner[user]),
		Shortcuts:   e.claimCounts[user],
		Score:       score,
		Tier:        model.TierForScore(score),
		LastClaimAt: e.lastClaim[user],
	}
}

// GlobalStats returns engine-wide aggregate counters.
func (e *Engine) GlobalStats() types.GlobalStats {
	return types.GlobalStats{
		TotalGadgets:     e.nextGadgetID,
		TotalShortcuts:   e.nextShortcutID,
		FeesCollectedWei: e.feesCollectedWei,
		DistinctOwners:   len(e.byOwner),
		DistinctClaimers: len(e.claimCounts),
	}
}

// UserScores returns the cumulative score of every user that has either
// registered a gadget or claimed a shortcut. Owners with no claims appear
// with a zero score.
func (e *Engine) UserScores() map[string]int64 {
	out := make(map[string]int64, len(e.scores)+len(e.byOwner))
	for user := range e.byOwner {
		out[user] = 0
	}
	for user, score := range e.scores {
		out[user] = score
	}
	return out
}
