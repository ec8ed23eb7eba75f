package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Rohannaa2m12/hackapp/internal/printer"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show gadget counts per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Categories []categoryCountView `json:"categories"`
		}
		if err := doJSON("GET", "/categories", nil, &resp); err != nil {
			return printer.Error("category fetch failed", err.Error())
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Category", "Gadgets")
		for _, c := range resp.Categories {
			if err := table.Append(c.Category, c.Count); err != nil {
				return err
			}
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
