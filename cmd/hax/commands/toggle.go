package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/printer"
)

var (
	toggleOwner  string
	toggleActive bool
)

var toggleCmd = &cobra.Command{
	Use:   "toggle GADGET_ID",
	Short: "Enable or disable a gadget",
	Long: `Set a gadget's active flag. Only the gadget's owner may toggle it;
inactive gadgets reject new claims but keep their claim history.

Examples:
  hax toggle 7 --owner alice --active=false
  hax toggle 7 --owner alice --active=true`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id < 1 {
			return printer.Error("invalid gadget id", fmt.Sprintf("%q is not a positive integer", args[0]))
		}
		body := map[string]any{"owner": toggleOwner, "active": toggleActive}
		var g gadgetView
		if err := doJSON("PATCH", fmt.Sprintf("/gadgets/%d/active", id), body, &g); err != nil {
			return printer.Error("toggle failed", err.Error())
		}
		state := "disabled"
		if g.Active {
			state = "enabled"
		}
		printer.Success("gadget %d is now %s\n", g.GadgetID, state)
		return nil
	},
}

func init() {
	toggleCmd.Flags().StringVar(&toggleOwner, "owner", "", "gadget owner (required)")
	toggleCmd.Flags().BoolVar(&toggleActive, "active", true, "desired active state")
	_ = toggleCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(toggleCmd)
}
