package commands

import (
	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	"github.com/Rohannaa2m12/hackapp/internal/engine"
	"github.com/Rohannaa2m12/hackapp/internal/printer"
)

var (
	registerOwner    string
	registerCategory string
	registerFeeWei   int64
)

var registerCmd = &cobra.Command{
	Use:   "register PAYLOAD",
	Short: "Register a new gadget",
	Long: `Register a new gadget with the given content payload.

The payload is hashed server-side; the same payload registered twice
yields two distinct gadgets with distinct hashes.

Examples:
  hax register "ctrl+shift+p opens palette" --owner alice --category keyboard
  hax register "daily standup note" --owner bob --category snippet --fee 2000000000000000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{
			"owner":    registerOwner,
			"payload":  args[0],
			"category": registerCategory,
			"fee_wei":  registerFeeWei,
		}
		var g gadgetView
		if err := doJSON("POST", "/gadgets", body, &g); err != nil {
			return printer.Error("gadget registration failed",
				err.Error(),
				"check the fee amount and your remaining quota")
		}
		printer.Success("registered gadget %d (owner=%s category=%s)\n", g.GadgetID, g.Owner, g.Category)
		printer.Info("  hash: %s\n", g.GadgetHash)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerOwner, "owner", "", "owner address or handle (required)")
	registerCmd.Flags().StringVar(&registerCategory, "category", string(model.CategoryAutomation), "gadget category")
	registerCmd.Flags().Int64Var(&registerFeeWei, "fee", engine.DefaultMinFeeWei, "registration fee in wei")
	_ = registerCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(registerCmd)
}
