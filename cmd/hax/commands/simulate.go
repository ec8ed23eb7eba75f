package commands

import (
	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/printer"
	"github.com/Rohannaa2m12/hackapp/internal/simulate"
	"github.com/Rohannaa2m12/hackapp/pkg/logger"
)

var simCfg = simulate.DefaultConfig()

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a register-and-claim load scenario in process",
	Long: `Run a synthetic register-and-claim scenario against a fresh
in-process registry and print a summary report. No server is needed;
this exercises the full service stack locally.

Examples:
  hax simulate
  hax simulate --users 20 --gadgets 100 --claims 1000 --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(); err != nil {
			return printer.Error("logger init failed", err.Error())
		}
		if err := simulate.Run(cmd.Context(), simCfg); err != nil {
			return printer.Error("simulation failed", err.Error())
		}
		printer.Success("simulation complete\n")
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simCfg.Users, "users", simCfg.Users, "number of simulated users")
	simulateCmd.Flags().IntVar(&simCfg.Gadgets, "gadgets", simCfg.Gadgets, "number of gadgets to register")
	simulateCmd.Flags().IntVar(&simCfg.Claims, "claims", simCfg.Claims, "number of claims to attempt")
	simulateCmd.Flags().IntVar(&simCfg.TopN, "top", simCfg.TopN, "leaderboard entries to print")
	simulateCmd.Flags().BoolVar(&simCfg.Verbose, "verbose", false, "log each rejected operation")
	rootCmd.AddCommand(simulateCmd)
}
