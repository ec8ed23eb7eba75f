package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/printer"
)

var gadgetCmd = &cobra.Command{
	Use:   "gadget GADGET_ID",
	Short: "Show a single gadget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id < 1 {
			return printer.Error("invalid gadget id", fmt.Sprintf("%q is not a positive integer", args[0]))
		}
		var g gadgetView
		if err := doJSON("GET", fmt.Sprintf("/gadgets/%d", id), nil, &g); err != nil {
			return printer.Error("gadget lookup failed", err.Error())
		}
		printer.Info("id:         %d\n", g.GadgetID)
		printer.Info("owner:      %s\n", g.Owner)
		printer.Info("hash:       %s\n", g.GadgetHash)
		printer.Info("category:   %s\n", g.Category)
		printer.Info("registered: %s\n", g.RegisteredAt)
		printer.Info("active:     %t\n", g.Active)
		printer.Info("claims:     %d\n", g.ClaimCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gadgetCmd)
}
