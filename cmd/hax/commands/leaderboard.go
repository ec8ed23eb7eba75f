package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/printer"
)

var leaderboardLimit int

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top users by efficiency score",
	Long: `Show the top users ranked by efficiency score. Ties are broken by
user name so repeated queries return a stable order.

Examples:
  hax leaderboard
  hax leaderboard --limit 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Entries []leaderboardEntryView `json:"entries"`
		}
		path := fmt.Sprintf("/leaderboard?limit=%d", leaderboardLimit)
		if err := doJSON("GET", path, nil, &resp); err != nil {
			return printer.Error("leaderboard fetch failed", err.Error())
		}
		if len(resp.Entries) == 0 {
			printer.Info("no scores yet\n")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Rank", "User", "Score")
		for _, e := range resp.Entries {
			if err := table.Append(e.Rank, e.User, e.Score); err != nil {
				return err
			}
		}
		return table.Render()
	},
}

func init() {
	leaderboardCmd.Flags().IntVar(&leaderboardLimit, "limit", 10, "number of entries to show")
	rootCmd.AddCommand(leaderboardCmd)
}
