package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"daymark/config"
	"daymark/internal/calendar"
	"daymark/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "daymark",
	Short: "A month calendar with per-day labels in your terminal",
	Long:  "daymark - pick a month, tag any day with a label from a fixed list, and see tagged days highlighted.",
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadPlanner builds the planner from config. The catalog is fixed for
// the rest of the process.
func loadPlanner() (*calendar.Planner, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Warning: failed to load config, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	return calendar.NewPlannerWithCatalog(cfg.Labels), cfg
}

func runTUI() {
	planner, cfg := loadPlanner()

	p := tea.NewProgram(
		ui.NewApp(planner, cfg),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
