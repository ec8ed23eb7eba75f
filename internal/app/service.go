// Package app provides the core business service wiring the registry engine
// to its collaborators: the rank index, the event bus and webhook
// dispatcher, the audit trail, the stats cache and the rate limiter.
//
// The engine itself does no locking; this service is the required external
// mutual exclusion around its mutating operations.
package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Rohannaa2m12/hackapp/internal/analytics"
	"github.com/Rohannaa2m12/hackapp/internal/audit"
	"github.com/Rohannaa2m12/hackapp/internal/batch"
	"github.com/Rohannaa2m12/hackapp/internal/domain/cache"
	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	"github.com/Rohannaa2m12/hackapp/internal/domain/scoring"
	"github.com/Rohannaa2m12/hackapp/internal/domain/types"
	"github.com/Rohannaa2m12/hackapp/internal/engine"
	"github.com/Rohannaa2m12/hackapp/internal/eventbus"
	"github.com/Rohannaa2m12/hackapp/internal/export"
	"github.com/Rohannaa2m12/hackapp/internal/webhook"
	"github.com/Rohannaa2m12/hackapp/pkg/logger"
	"github.com/Rohannaa2m12/hackapp/pkg/metrics"
	"github.com/Rohannaa2m12/hackapp/pkg/ratelimit"
)

// Service implements the API dependencies for the registry system.
type Service struct {
	mu sync.RWMutex

	// Core components
	eng        *engine.Engine
	board      *analytics.Board
	bus        *eventbus.Bus
	dispatcher *webhook.Dispatcher
	trail      *audit.Trail
	stats      *cache.StatsCache
	limiter    *ratelimit.KeyedLimiter

	// Configuration
	clock               scoring.Clock
	maxGadgets          int64
	quotaPerUser        int
	minFeeWei           int64
	minClaimInterval    time.Duration
	busSize             int
	dispatchWorkers     int
	claimsPerMin        float64
	statsCacheSize      int
	exportShortcutLimit int
	extraSinks          []webhook.Sink

	// State
	started bool

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		clock:               scoring.SystemClock(),
		maxGadgets:          engine.DefaultMaxGadgets,
		quotaPerUser:        engine.DefaultQuotaPerUser,
		minFeeWei:           engine.DefaultMinFeeWei,
		minClaimInterval:    engine.DefaultMinClaimInterval,
		busSize:             4096,
		dispatchWorkers:     2,
		claimsPerMin:        30,
		statsCacheSize:      10000,
		exportShortcutLimit: export.DefaultShortcutLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.eng = engine.New(
		engine.WithClock(s.clock),
		engine.WithMaxGadgets(s.maxGadgets),
		engine.WithQuotaPerUser(s.quotaPerUser),
		engine.WithMinFee(s.minFeeWei),
		engine.WithMinClaimInterval(s.minClaimInterval),
	)
	s.board = analytics.NewBoard()
	s.stats = cache.New(cache.WithMaxSize(s.statsCacheSize))
	s.limiter = ratelimit.New(
		ratelimit.WithRate(s.claimsPerMin/60.0),
		ratelimit.WithBurst(1),
	)
	s.trail = audit.NewTrail()
	s.bus = eventbus.New(eventbus.WithCapacity(s.busSize))

	sinks := append([]webhook.Sink{
		s.trail,
		webhook.NewLogSink("simulated-webhook", s.logger.Named("sink")),
	}, s.extraSinks...)
	s.dispatcher = webhook.NewDispatcher(s.bus, sinks,
		webhook.WithWorkers(s.dispatchWorkers),
		webhook.WithLogger(s.logger.Named("webhook")),
	)
	s.dispatcher.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "registry service started",
		logger.Int64("max_gadgets", s.maxGadgets),
		logger.Int("quota_per_user", s.quotaPerUser),
		logger.Int64("min_fee_wei", s.minFeeWei),
		logger.Duration("min_claim_interval", s.minClaimInterval),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	_ = s.bus.Close()
	s.dispatcher.Stop()
	s.started = false
	s.logger.Info(context.Background(), "registry service stopped")
}

// publish offers a domain event to the bus; drops are already counted.
func (s *Service) publish(ctx context.Context, e eventbus.Event) {
	e.ID = uuid.NewString()
	s.bus.Publish(ctx, e)
}

// errorKind maps an engine error to its taxonomy name for metrics.
func errorKind(err error) string {
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
		return "paused"
	case errors.As(err, &feeErr):
		return "fee_required"
	case errors.As(err, &quotaErr):
		return "quota_exceeded"
	case errors.As(err, &idErr):
		return "invalid_gadget_id"
	case errors.As(err, &inactiveErr):
		return "gadget_inactive"
	case errors.As(err, &soonErr):
		return "claim_too_soon"
	case errors.As(err, &operatorErr):
		return "not_operator"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	}
	return "unknown"
}

// RegisterGadget registers a gadget and publishes the matching event.
func (s *Service) RegisterGadget(ctx context.Context, owner, payload string, category model.Category, feeWei int64) (model.Gadget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return model.Gadget{}, ErrNotStarted
	}

	g, err := s.eng.RegisterGadget(owner, payload, category, feeWei)
	if err != nil {
		metrics.RecordEngineError(errorKind(err))
		return model.Gadget{}, err
	}

	// Owners belong on the leaderboard even before their first claim.
	if _, on := s.board.Score(owner); !on {
		s.board.Update(owner, 0)
	}
	s.stats.Invalidate(owner)

	metrics.RecordRegistration()
	metrics.RecordFees(feeWei)
	metrics.UpdateGadgetsTracked(s.eng.GlobalStats().TotalGadgets)
	metrics.UpdateBoardUsers(s.board.Len())

	s.publish(ctx, eventbus.Event{
		Kind:     eventbus.KindGadgetRegistered,
		User:     owner,
		GadgetID: g.ID,
		At:       g.RegisteredAt,
	})
	return g, nil
}

// ClaimShortcut claims a gadget for claimer, subject to the rate limiter
// and the engine's cooldown.
func (s *Service) ClaimShortcut(ctx context.Context, gadgetID int64, claimer string) (model.Shortcut, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return model.Shortcut{}, ErrNotStarted
	}

	if !s.limiter.Allow(claimer) {
		metrics.RecordRateLimited()
		return model.Shortcut{}, ErrRateLimited
	}

	sc, err := s.eng.ClaimShortcut(gadgetID, claimer)
	if err != nil {
		metrics.RecordEngineError(errorKind(err))
		return model.Shortcut{}, err
	}

	s.board.Update(claimer, s.eng.UserStats(claimer).Score)
	s.stats.Invalidate(claimer)

	metrics.RecordClaim()
	metrics.UpdateBoardUsers(s.board.Len())

	s.publish(ctx, eventbus.Event{
		Kind:       eventbus.KindShortcutClaimed,
		User:       claimer,
		GadgetID:   gadgetID,
		ShortcutID: sc.ID,
		Score:      sc.ScoreAdded,
		At:         sc.ClaimedAt,
	})
	return sc, nil
}

// SetGadgetActive toggles a gadget's active flag on behalf of its owner.
func (s *Service) SetGadgetActive(ctx context.Context, gadgetID int64, owner string, active bool) (model.Gadget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return model.Gadget{}, ErrNotStarted
	}

	g, err := s.eng.SetGadgetActive(gadgetID, owner, active)
	if err != nil {
		metrics.RecordEngineError(errorKind(err))
		return model.Gadget{}, err
	}

	s.publish(ctx, eventbus.Event{
		Kind:     eventbus.KindGadgetToggled,
		User:     owner,
		GadgetID: g.ID,
		Active:   active,
		At:       s.clock.Now(),
	})
	return g, nil
}

// Pause halts all mutating engine operations.
func (s *Service) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.eng.Pause()
	}
}

// Resume lifts a pause.
func (s *Service) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.eng.Resume()
	}
}

// RegisterBatch registers items with per-item failure isolation.
func (s *Service) RegisterBatch(ctx context.Context, items []batch.RegisterItem) []batch.RegisterOutcome {
	out := make([]batch.RegisterOutcome, len(items))
	for i, item := range items {
		g, err := s.RegisterGadget(ctx, item.Owner, item.Payload, item.Category, item.FeeWei)
		out[i] = batch.RegisterOutcome{Gadget: g, Err: err}
	}
	return out
}

// ClaimBatch claims items with per-item failure isolation.
func (s *Service) ClaimBatch(ctx context.Context, items []batch.ClaimItem) []batch.ClaimOutcome {
	out := make([]batch.ClaimOutcome, len(items))
	for i, item := range items {
		sc, err := s.ClaimShortcut(ctx, item.GadgetID, item.Claimer)
		out[i] = batch.ClaimOutcome{Shortcut: sc, Err: err}
	}
	return out
}

// Gadget returns the gadget with the given id.
func (s *Service) Gadget(ctx context.Context, id int64) (model.Gadget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return model.Gadget{}, false
	}
	return s.eng.Gadget(id)
}

// GadgetsByOwner returns the gadget ids registered by owner, in order.
func (s *Service) GadgetsByOwner(ctx context.Context, owner string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil
	}
	return s.eng.GadgetsByOwner(owner)
}

// UserStats returns the (possibly cached) stats projection for user.
func (s *Service) UserStats(ctx context.Context, user string) types.UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return types.UserStats{User: user, Tier: model.TierForScore(0)}
	}
	if stats, ok := s.stats.Get(user); ok {
		metrics.RecordStatsCacheHit()
		return stats
	}
	metrics.RecordStatsCacheMiss()
	stats := s.eng.UserStats(user)
	s.stats.Put(user, stats)
	return stats
}

// GlobalStats returns engine-wide aggregate counters.
func (s *Service) GlobalStats(ctx context.Context) types.GlobalStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return types.GlobalStats{}
	}
	return s.eng.GlobalStats()
}

// Leaderboard returns the top limit users by score.
func (s *Service) Leaderboard(ctx context.Context, limit int) []types.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil
	}
	return s.board.TopN(limit)
}

// CategoryDistribution counts gadgets per category.
func (s *Service) CategoryDistribution(ctx context.Context) []types.CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil
	}
	return analytics.CategoryDistribution(s.eng)
}

// ClaimsForGadget returns a gadget's claim count and whether it exists.
func (s *Service) ClaimsForGadget(ctx context.Context, gadgetID int64) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return 0, false
	}
	return analytics.ClaimsForGadget(s.eng, gadgetID)
}

// ExportGadgetsJSON writes the gadget export document to w.
func (s *Service) ExportGadgetsJSON(ctx context.Context, w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return export.WriteGadgetsJSON(w, s.eng, s.clock)
}

// ExportGadgetsCSV writes one CSV row per gadget to w.
func (s *Service) ExportGadgetsCSV(ctx context.Context, w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return export.WriteGadgetsCSV(w, s.eng)
}

// ExportShortcutsJSON writes the windowed shortcut export document to w.
func (s *Service) ExportShortcutsJSON(ctx context.Context, w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return export.WriteShortcutsJSON(w, s.eng, s.exportShortcutLimit)
}

// ImportGadgets re-registers gadgets from an export document with the fee
// waived, skipping malformed entries.
func (s *Service) ImportGadgets(ctx context.Context, r io.Reader) (export.ImportReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return export.ImportReport{}, ErrNotStarted
	}
	report, err := export.ImportGadgets(s.eng, r)
	if err != nil {
		return report, err
	}
	for i := 0; i < report.Imported; i++ {
		metrics.RecordImport()
	}
	// Imported owners may be new to the board.
	for user, score := range s.eng.UserScores() {
		if _, on := s.board.Score(user); !on {
			s.board.Update(user, score)
			s.stats.Invalidate(user)
		}
	}
	metrics.UpdateGadgetsTracked(s.eng.GlobalStats().TotalGadgets)
	metrics.UpdateBoardUsers(s.board.Len())
	return report, nil
}

// AuditEntries returns a copy of the audit trail, oldest first.
func (s *Service) AuditEntries(ctx context.Context) []audit.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil
	}
	return s.trail.Entries()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]any{
		"started": s.started,
	}
	if s.started {
		global := s.eng.GlobalStats()
		out["total_gadgets"] = global.TotalGadgets
		out["total_shortcuts"] = global.TotalShortcuts
		out["fees_collected_wei"] = global.FeesCollectedWei
		out["distinct_owners"] = global.DistinctOwners
		out["distinct_claimers"] = global.DistinctClaimers
		out["board_users"] = s.board.Len()
		out["bus_depth"] = s.bus.Len()
		out["audit_entries"] = s.trail.Len()
		out["paused"] = s.eng.Paused()
	}
	return out
}
