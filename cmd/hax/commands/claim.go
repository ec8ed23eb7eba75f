package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/printer"
)

var claimUser string

var claimCmd = &cobra.Command{
	Use:   "claim GADGET_ID",
	Short: "Claim a shortcut on a gadget",
	Long: `Claim a shortcut on an active gadget, adding to the claimer's
efficiency score. A user must wait out the per-user cooldown between
consecutive claims.

Examples:
  hax claim 7 --user bob`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id < 1 {
			return printer.Error("invalid gadget id", fmt.Sprintf("%q is not a positive integer", args[0]))
		}
		body := map[string]any{"claimer": claimUser}
		var sc shortcutView
		if err := doJSON("POST", fmt.Sprintf("/gadgets/%d/claims", id), body, &sc); err != nil {
			return printer.Error("claim failed", err.Error())
		}
		printer.Success("claimed shortcut %d on gadget %d (score +%d)\n", sc.ShortcutID, sc.GadgetID, sc.ScoreAdded)
		return nil
	},
}

func init() {
	claimCmd.Flags().StringVar(&claimUser, "user", "", "claiming user (required)")
	_ = claimCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(claimCmd)
}
