package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/printer"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export {gadgets|shortcuts}",
	Short: "Download a registry snapshot",
	Long: `Download a snapshot of the registry.

"gadgets" exports every registered gadget as JSON or CSV.
"shortcuts" exports the most recent shortcut claims as JSON.

Examples:
  hax export gadgets --format csv -o gadgets.csv
  hax export shortcuts`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"gadgets", "shortcuts"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		switch args[0] {
		case "gadgets":
			path = "/gadgets/export?format=" + exportFormat
		case "shortcuts":
			if exportFormat != "json" {
				return printer.Error("shortcuts only export as json")
			}
			path = "/shortcuts/export"
		default:
			return printer.Error("unknown snapshot kind", "use \"gadgets\" or \"shortcuts\"")
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return printer.Error("cannot create output file", err.Error())
			}
			defer f.Close()
			out = f
		}

		if err := getRaw(path, out); err != nil {
			return printer.Error("export failed", err.Error())
		}
		if exportOutput != "" {
			printer.Success("wrote %s\n", exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or csv (gadgets only)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
