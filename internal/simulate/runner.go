package simulate

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Rohannaa2m12/hackapp/internal/app"
	"github.com/Rohannaa2m12/hackapp/pkg/logger"
)

// steppingClock is a clock the runner advances manually so per-user
// claim cooldowns do not reject the bulk of a fast in-process run.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *steppingClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Run drives a fresh in-process service through a full register and
// claim scenario and logs a summary report.
func Run(ctx context.Context, cfg *Config) error {
	if cfg.Users < 1 || cfg.Gadgets < 1 {
		return errors.New("simulation needs at least one user and one gadget")
	}

	stats := &Stats{StartTime: time.Now()}
	clock := &steppingClock{now: time.Now()}

	svc := app.New(
		app.WithClock(clock),
		app.WithClaimsPerMin(1_000_000),
	)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	log := logger.Named("simulate")
	log.Info(ctx, "starting simulation",
		logger.Int("users", cfg.Users),
		logger.Int("gadgets", cfg.Gadgets),
		logger.Int("claims", cfg.Claims))

	regs := generateRegistrations(cfg)
	ids := make([]int64, 0, len(regs))
	owners := make(map[int64]string, len(regs))
	for _, r := range regs {
		g, err := svc.RegisterGadget(ctx, r.owner, r.payload, r.category, cfg.FeeWei)
		if err != nil {
			stats.GadgetsRejected++
			if cfg.Verbose {
				log.Warn(ctx, "registration rejected",
					logger.String("owner", r.owner), logger.Error(err))
			}
			continue
		}
		stats.GadgetsRegistered++
		ids = append(ids, g.ID)
		owners[g.ID] = g.Owner
	}
	if len(ids) == 0 {
		return errors.New("no gadgets registered, nothing to claim")
	}

	for i := 0; i < cfg.Claims; i++ {
		id := ids[rand.IntN(len(ids))]
		claimer := pickClaimer(cfg, owners[id])
		if _, err := svc.ClaimShortcut(ctx, id, claimer); err != nil {
			stats.ClaimsRejected++
			if cfg.Verbose {
				log.Warn(ctx, "claim rejected",
					logger.Int64("gadget_id", id),
					logger.String("claimer", claimer),
					logger.Error(err))
			}
		} else {
			stats.ClaimsAccepted++
		}
		clock.Advance(cfg.ClaimJitter)
	}

	stats.EndTime = time.Now()
	report(ctx, log, svc, cfg, stats)
	return nil
}

func report(ctx context.Context, log logger.Logger, svc *app.Service, cfg *Config, stats *Stats) {
	global := svc.GlobalStats(ctx)
	log.Info(ctx, "simulation finished",
		logger.Int("registered", stats.GadgetsRegistered),
		logger.Int("register_rejected", stats.GadgetsRejected),
		logger.Int("claims_accepted", stats.ClaimsAccepted),
		logger.Int("claims_rejected", stats.ClaimsRejected),
		logger.Int64("total_gadgets", global.TotalGadgets),
		logger.Int64("total_shortcuts", global.TotalShortcuts),
		logger.Int64("fees_wei", global.FeesCollectedWei),
		logger.Duration("took", stats.Duration()))

	for _, e := range svc.Leaderboard(ctx, cfg.TopN) {
		log.Info(ctx, "leaderboard entry",
			logger.Int("rank", e.Rank),
			logger.String("user", e.User),
			logger.Int64("score", e.Score))
	}
}
