package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Rohannaa2m12/hackapp/internal/batch"
	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
)

// gadgetResponse is the serialized gadget shape shared by all endpoints.
type gadgetResponse struct {
	GadgetID     int64  `json:"gadget_id"`
	Owner        string `json:"owner"`
	GadgetHash   string `json:"gadget_hash"`
	Category     string `json:"category"`
	RegisteredAt string `json:"registered_at"`
	Active       bool   `json:"active"`
	ClaimCount   int64  `json:"claim_count"`
}

func toGadgetResponse(g model.Gadget) gadgetResponse {
	return gadgetResponse{
		GadgetID:     g.ID,
		Owner:        g.Owner,
		GadgetHash:   g.Hash,
		Category:     g.Category.String(),
		RegisteredAt: g.RegisteredAt.UTC().Format(time.RFC3339),
		Active:       g.Active,
		ClaimCount:   g.ClaimCount,
	}
}

type shortcutResponse struct {
	ShortcutID int64  `json:"shortcut_id"`
	GadgetID   int64  `json:"gadget_id"`
	Claimer    string `json:"claimer"`
	ClaimedAt  string `json:"claimed_at"`
	ScoreAdded int64  `json:"score_added"`
}

func toShortcutResponse(s model.Shortcut) shortcutResponse {
	return shortcutResponse{
		ShortcutID: s.ID,
		GadgetID:   s.GadgetID,
		Claimer:    s.Claimer,
		ClaimedAt:  s.ClaimedAt.UTC().Format(time.RFC3339),
		ScoreAdded: s.ScoreAdded,
	}
}

type registerRequest struct {
	Owner    string `json:"owner"`
	Payload  string `json:"payload"`
	Category string `json:"category"`
	FeeWei   int64  `json:"fee_wei"`
}

func (req registerRequest) validate() error {
	switch {
	case strings.TrimSpace(req.Owner) == "":
		return fmt.Errorf("%w: missing owner", ErrBadRequest)
	case strings.TrimSpace(req.Payload) == "":
		return fmt.Errorf("%w: missing payload", ErrBadRequest)
	case !model.Category(req.Category).Valid():
		return fmt.Errorf("%w: unknown category %q", ErrBadRequest, req.Category)
	case req.FeeWei < 0:
		return fmt.Errorf("%w: negative fee", ErrBadRequest)
	}
	return nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := req.validate(); err != nil {
		writeServiceError(w, err)
		return
	}
	g, err := s.deps.RegisterGadget(r.Context(), req.Owner, req.Payload, model.Category(req.Category), req.FeeWei)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGadgetResponse(g))
}

type registerBatchRequest struct {
	Items []registerRequest `json:"items"`
}

type batchOutcomeResponse struct {
	Gadget *gadgetResponse `json:"gadget,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func (s *Server) handleRegisterBatch(w http.ResponseWriter, r *http.Request) {
	var req registerBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	items := make([]batch.RegisterItem, len(req.Items))
	for i, item := range req.Items {
		if err := item.validate(); err != nil {
			writeServiceError(w, err)
			return
		}
		items[i] = batch.RegisterItem{
			Owner:    item.Owner,
			Payload:  item.Payload,
			Category: model.Category(item.Category),
			FeeWei:   item.FeeWei,
		}
	}
	outcomes := s.deps.RegisterBatch(r.Context(), items)
	out := make([]batchOutcomeResponse, len(outcomes))
	for i, o := range outcomes {
		if o.Err != nil {
			out[i] = batchOutcomeResponse{Error: o.Err.Error()}
			continue
		}
		resp := toGadgetResponse(o.Gadget)
		out[i] = batchOutcomeResponse{Gadget: &resp}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"registered": batch.CountRegistered(outcomes),
		"outcomes":   out,
	})
}

type claimRequest struct {
	Claimer string `json:"claimer"`
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	id, err := gadgetIDParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var req claimRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	if strings.TrimSpace(req.Claimer) == "" {
		writeServiceError(w, fmt.Errorf("%w: missing claimer", ErrBadRequest))
		return
	}
	sc, err := s.deps.ClaimShortcut(r.Context(), id, req.Claimer)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toShortcutResponse(sc))
}

type setActiveRequest struct {
	Owner  string `json:"owner"`
	Active bool   `json:"active"`
}

func (s *Server) handleSetActive(w http.ResponseWriter, r *http.Request) {
	id, err := gadgetIDParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var req setActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	if strings.TrimSpace(req.Owner) == "" {
		writeServiceError(w, fmt.Errorf("%w: missing owner", ErrBadRequest))
		return
	}
	g, err := s.deps.SetGadgetActive(r.Context(), id, req.Owner, req.Active)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGadgetResponse(g))
}

func (s *Server) handleGetGadget(w http.ResponseWriter, r *http.Request) {
	id, err := gadgetIDParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	g, ok := s.deps.Gadget(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "invalid_gadget_id", nil)
		return
	}
	writeJSON(w, http.StatusOK, toGadgetResponse(g))
}

func (s *Server) handleGadgetClaims(w http.ResponseWriter, r *http.Request) {
	id, err := gadgetIDParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	count, found := s.deps.ClaimsForGadget(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, "invalid_gadget_id", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"gadget_id": id, "claims": count})
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	if user == "" {
		writeServiceError(w, fmt.Errorf("%w: missing user", ErrBadRequest))
		return
	}
	writeJSON(w, http.StatusOK, s.deps.UserStats(r.Context(), user))
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeServiceError(w, fmt.Errorf("%w: invalid limit", ErrBadRequest))
			return
		}
		limit = n
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": s.deps.Leaderboard(r.Context(), limit),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": s.deps.CategoryDistribution(r.Context()),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.GetStats(r.Context()))
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": s.deps.AuditEntries(r.Context()),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExportGadgets(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("format") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		if err := s.deps.ExportGadgetsCSV(r.Context(), w); err != nil {
			writeServiceError(w, err)
		}
	case "", "json":
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := s.deps.ExportGadgetsJSON(r.Context(), w); err != nil {
			writeServiceError(w, err)
		}
	default:
		writeServiceError(w, fmt.Errorf("%w: unknown format", ErrBadRequest))
	}
}

func (s *Server) handleExportShortcuts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := s.deps.ExportShortcutsJSON(r.Context(), w); err != nil {
		writeServiceError(w, err)
	}
}

func (s *Server) handleImportGadgets(w http.ResponseWriter, r *http.Request) {
	report, err := s.deps.ImportGadgets(r.Context(), r.Body)
	if err != nil {
		writeServiceError(w, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"imported": report.Imported,
		"skipped":  report.Skipped,
	})
}
