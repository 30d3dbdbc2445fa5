package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daymark/internal/updater"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the daymark version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("daymark %s\n", updater.Version)
	},
}
