// Package batch runs bulk registrations and claims as sequential loops over
// the single-operation engine primitives. One item's failure never aborts
// the batch; every item gets an explicit per-item outcome so callers can
// tell partial failure from total success.
package batch

import (
	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	"github.com/Rohannaa2m12/hackapp/internal/engine"
)

// RegisterItem is one registration request in a batch.
type RegisterItem struct {
	Owner    string
	Payload  string
	Category model.Category
	FeeWei   int64
}

// RegisterOutcome is the per-item result of a batch registration.
type RegisterOutcome struct {
	Gadget model.Gadget
	Err    error
}

// ClaimItem is one claim request in a batch.
type ClaimItem struct {
	GadgetID int64
	Claimer  string
}

// ClaimOutcome is the per-item result of a batch claim.
type ClaimOutcome struct {
	Shortcut model.Shortcut
	Err      error
}

// RegisterAll registers every item in order, isolating failures per item.
func RegisterAll(eng *engine.Engine, items []RegisterItem) []RegisterOutcome {
	out := make([]RegisterOutcome, len(items))
	for i, item := range items {
		g, err := eng.RegisterGadget(item.Owner, item.Payload, item.Category, item.FeeWei)
		out[i] = RegisterOutcome{Gadget: g, Err: err}
	}
	return out
}

// ClaimAll claims every item in order, isolating failures per item.
func ClaimAll(eng *engine.Engine, items []ClaimItem) []ClaimOutcome {
	out := make([]ClaimOutcome, len(items))
	for i, item := range items {
		s, err := eng.ClaimShortcut(item.GadgetID, item.Claimer)
		out[i] = ClaimOutcome{Shortcut: s, Err: err}
	}
	return out
}

// CountRegistered returns how many outcomes in a register batch succeeded.
func CountRegistered(outcomes []RegisterOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// CountClaimed returns how many outcomes in a claim batch succeeded.
func CountClaimed(outcomes []ClaimOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}
