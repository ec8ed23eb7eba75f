// Package api declares the HTTP surface over the registry service. It
// contains no domain logic; every handler validates input, calls the
// service, and renders the result.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rohannaa2m12/hackapp/internal/audit"
	"github.com/Rohannaa2m12/hackapp/internal/batch"
	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	"github.com/Rohannaa2m12/hackapp/internal/domain/types"
	"github.com/Rohannaa2m12/hackapp/internal/export"
	"github.com/Rohannaa2m12/hackapp/pkg/metrics"
)

// Default query limits.
const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// Dependencies bundles what the handlers need from the service layer.
type Dependencies interface {
	RegisterGadget(ctx context.Context, owner, payload string, category model.Category, feeWei int64) (model.Gadget, error)
	ClaimShortcut(ctx context.Context, gadgetID int64, claimer string) (model.Shortcut, error)
	SetGadgetActive(ctx context.Context, gadgetID int64, owner string, active bool) (model.Gadget, error)
	RegisterBatch(ctx context.Context, items []batch.RegisterItem) []batch.RegisterOutcome

	Gadget(ctx context.Context, id int64) (model.Gadget, bool)
	UserStats(ctx context.Context, user string) types.UserStats
	GlobalStats(ctx context.Context) types.GlobalStats
	Leaderboard(ctx context.Context, limit int) []types.LeaderboardEntry
	CategoryDistribution(ctx context.Context) []types.CategoryCount
	ClaimsForGadget(ctx context.Context, gadgetID int64) (int64, bool)

	ExportGadgetsJSON(ctx context.Context, w io.Writer) error
	ExportGadgetsCSV(ctx context.Context, w io.Writer) error
	ExportShortcutsJSON(ctx context.Context, w io.Writer) error
	ImportGadgets(ctx context.Context, r io.Reader) (export.ImportReport, error)
	AuditEntries(ctx context.Context) []audit.Entry
	GetStats(ctx context.Context) map[string]any
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps Dependencies
}

// NewServer creates the API server.
func NewServer(deps Dependencies) *Server {
	return &Server{deps: deps}
}

// Router builds the chi router with all routes attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", metricsMiddleware(s.handleHealth, "healthz"))
	r.Get("/stats", metricsMiddleware(s.handleStats, "stats"))
	r.Get("/leaderboard", metricsMiddleware(s.handleLeaderboard, "leaderboard"))
	r.Get("/categories", metricsMiddleware(s.handleCategories, "categories"))
	r.Get("/audit", metricsMiddleware(s.handleAudit, "audit"))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/gadgets", func(r chi.Router) {
		r.Post("/", metricsMiddleware(s.handleRegister, "register"))
		r.Post("/batch", metricsMiddleware(s.handleRegisterBatch, "register_batch"))
		r.Get("/export", metricsMiddleware(s.handleExportGadgets, "export_gadgets"))
		r.Post("/import", metricsMiddleware(s.handleImportGadgets, "import_gadgets"))
		r.Get("/{id}", metricsMiddleware(s.handleGetGadget, "get_gadget"))
		r.Get("/{id}/claims", metricsMiddleware(s.handleGadgetClaims, "gadget_claims"))
		r.Post("/{id}/claims", metricsMiddleware(s.handleClaim, "claim"))
		r.Patch("/{id}/active", metricsMiddleware(s.handleSetActive, "set_active"))
	})

	r.Get("/shortcuts/export", metricsMiddleware(s.handleExportShortcuts, "export_shortcuts"))
	r.Get("/users/{user}/stats", metricsMiddleware(s.handleUserStats, "user_stats"))

	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
