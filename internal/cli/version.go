package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the castdeck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("castdeck %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
