package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/printer"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import gadgets from a JSON export",
	Long: `Import gadgets from a JSON export file produced by "hax export
gadgets". Malformed entries are skipped; registration fees are waived
for imported gadgets.

Examples:
  hax import gadgets.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return printer.Error("cannot open import file", err.Error())
		}
		defer f.Close()

		req, err := http.NewRequest(http.MethodPost, serverAddr+"/gadgets/import", f)
		if err != nil {
			return printer.Error("import failed", err.Error())
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient().Do(req)
		if err != nil {
			return printer.Error("import failed", err.Error())
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			var e errorBody
			if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Message != "" {
				return printer.Error("import rejected", fmt.Sprintf("%s (%s)", e.Message, resp.Status))
			}
			return printer.Error("import rejected", resp.Status)
		}

		var report importReportView
		if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
			return printer.Error("import failed", err.Error())
		}
		printer.Success("imported %d gadgets (%d skipped)\n", report.Imported, report.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
