package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrPaused indicates the registry is globally halted; no mutation proceeds.
var ErrPaused = errors.New("registry is paused")

// FeeRequiredError indicates the submitted fee is below the minimum.
type FeeRequiredError struct {
	MinimumWei int64
}

func (e *FeeRequiredError) Error() string {
	return fmt.Sprintf("registration fee below minimum of %d wei", e.MinimumWei)
}

// QuotaExceededError indicates the per-owner gadget cap is reached.
type QuotaExceededError struct {
	Owner string
	Count int
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("owner %s has %d gadgets, quota is %d", e.Owner, e.Count, e.Limit)
}

// InvalidGadgetIDError indicates the referenced gadget id does not exist,
// or that the gadget id space is exhausted.
type InvalidGadgetIDError struct {
	ID int64
}

func (e *InvalidGadgetIDError) Error() string {
	if e.ID == 0 {
		return "gadget id space exhausted"
	}
	return fmt.Sprintf("gadget %d does not exist", e.ID)
}

// GadgetInactiveError indicates a claim against a deactivated gadget.
type GadgetInactiveError struct {
	ID int64
}

func (e *GadgetInactiveError) Error() string {
	return fmt.Sprintf("gadget %d is inactive", e.ID)
}

// ClaimTooSoonError indicates the claimer's global cooldown has not elapsed.
type ClaimTooSoonError struct {
	Claimer string
	Wait    time.Duration
}

func (e *ClaimTooSoonError) Error() string {
	return fmt.Sprintf("claimer %s must wait %ds before claiming again", e.Claimer, int64(e.Wait.Seconds()))
}

// NotOperatorError indicates the caller lacks ownership rights over a gadget.
type NotOperatorError struct {
	Actor string
}

func (e *NotOperatorError) Error() string {
	return fmt.Sprintf("%s is not the gadget owner", e.Actor)
}
