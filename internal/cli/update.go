package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"daymark/internal/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update daymark to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Homebrew installs should be upgraded through brew
		if executable, err := os.Executable(); err == nil {
			resolved, _ := filepath.EvalSymlinks(executable)
			if strings.Contains(resolved, "/Cellar/") {
				cmd.Println("daymark is installed via Homebrew.")
				cmd.Println("Please run 'brew upgrade daymark' instead.")
				return nil
			}
		}

		return updater.Update(cmd.Context())
	},
}
