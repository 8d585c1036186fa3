package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kpeters/castdeck/internal/domain"
)

// genresCmd prints the static genre table.
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the known genre ids and titles",
	Run: func(cmd *cobra.Command, args []string) {
		tw := tablewriter.NewWriter(os.Stdout)
		tw.SetHeader([]string{"ID", "Title"})
		tw.SetBorder(true)
		tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		tw.SetAlignment(tablewriter.ALIGN_LEFT)
		tw.SetAutoWrapText(false)

		for _, g := range domain.AllGenres() {
			tw.Append([]string{fmt.Sprintf("%d", g.ID), g.Title})
		}
		tw.Render()
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}
