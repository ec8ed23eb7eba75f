package commands

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/printer"
)

var statsUser string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show global or per-user registry stats",
	Long: `Show registry-wide totals, or a single user's stats when --user is
given. Per-user output includes the user's efficiency tier.

Examples:
  hax stats
  hax stats --user alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if statsUser != "" {
			return showUserStats(statsUser)
		}
		return showGlobalStats()
	},
}

func showUserStats(user string) error {
	var s userStatsView
	if err := doJSON("GET", "/users/"+url.PathEscape(user)+"/stats", nil, &s); err != nil {
		return printer.Error("stats lookup failed", err.Error())
	}
	printer.Info("user:      %s\n", s.User)
	printer.Info("gadgets:   %d\n", s.Gadgets)
	printer.Info("shortcuts: %d\n", s.Shortcuts)
	printer.Info("score:     %d\n", s.Score)
	printer.Info("tier:      %s\n", s.Tier)
	if s.LastClaimAt != "" {
		printer.Info("last claim: %s\n", s.LastClaimAt)
	}
	return nil
}

func showGlobalStats() error {
	var s globalStatsView
	if err := doJSON("GET", "/stats", nil, &s); err != nil {
		return printer.Error("stats lookup failed", err.Error())
	}
	printer.Info("gadgets:           %d\n", s.TotalGadgets)
	printer.Info("shortcuts:         %d\n", s.TotalShortcuts)
	printer.Info("fees collected:    %d wei\n", s.FeesCollectedWei)
	printer.Info("distinct owners:   %d\n", s.DistinctOwners)
	printer.Info("distinct claimers: %d\n", s.DistinctClaimers)
	return nil
}

func init() {
	statsCmd.Flags().StringVar(&statsUser, "user", "", "show stats for this user only")
	rootCmd.AddCommand(statsCmd)
}
