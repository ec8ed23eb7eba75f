package simulate

import (
	"fmt"
	"math/rand/v2"

	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
)

// registration is a single gadget registration to replay.
type registration struct {
	owner    string
	payload  string
	category model.Category
}

func userName(i int) string {
	return fmt.Sprintf("user-%03d", i%1000)
}

// generateRegistrations spreads gadget ownership across the simulated
// users round-robin so nobody trips the per-user quota on small runs.
func generateRegistrations(cfg *Config) []registration {
	cats := model.Categories()
	regs := make([]registration, 0, cfg.Gadgets)
	for i := 0; i < cfg.Gadgets; i++ {
		regs = append(regs, registration{
			owner:    userName(i % cfg.Users),
			payload:  fmt.Sprintf("payload-%d-%d", i, rand.Uint64()),
			category: cats[rand.IntN(len(cats))],
		})
	}
	return regs
}

// pickClaimer returns a random user other than the gadget owner when
// more than one user exists.
func pickClaimer(cfg *Config, owner string) string {
	if cfg.Users <= 1 {
		return owner
	}
	for {
		c := userName(rand.IntN(cfg.Users))
		if c != owner {
			return c
		}
	}
}
