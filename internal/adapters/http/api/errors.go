package api

import (
	"errors"
	"net/http"

	"github.com/Rohannaa2m12/hackapp/internal/app"
	"github.com/Rohannaa2m12/hackapp/internal/engine"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// statusAndCode maps a service error to an HTTP status and a stable code
// string for clients.
func statusAndCode(err error) (int, string) {
	var (
		feeErr      *engine.FeeRequiredError
		quotaErr    *engine.QuotaExceededError
		idErr       *engine.InvalidGadgetIDError
		inactiveErr *engine.GadgetInactiveError
		soonErr     *engine.ClaimTooSoonError
		operatorErr *engine.NotOperatorError
	)
	switch {
	case errors.Is(err, engine.ErrPaused):
		return http.StatusServiceUnavailable, "paused"
	case errors.As(err, &feeErr):
		return http.StatusPaymentRequired, "fee_required"
	case errors.As(err, &quotaErr):
		return http.StatusConflict, "quota_exceeded"
	case errors.As(err, &idErr):
		return http.StatusNotFound, "invalid_gadget_id"
	case errors.As(err, &inactiveErr):
		return http.StatusConflict, "gadget_inactive"
	case errors.As(err, &soonErr):
		return http.StatusTooManyRequests, "claim_too_soon"
	case errors.As(err, &operatorErr):
		return http.StatusForbidden, "not_operator"
	case errors.Is(err, app.ErrRateLimited):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	}
	return http.StatusInternalServerError, "internal_error"
}

// writeServiceError renders a service error with its mapped status.
func writeServiceError(w http.ResponseWriter, err error) {
	status, code := statusAndCode(err)
	writeError(w, status, code, err)
}
