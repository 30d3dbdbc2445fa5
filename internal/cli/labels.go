package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var labelsCmd = &cobra.Command{
	Use:     "labels",
	Aliases: []string{"l"},
	Short:   "List the assignable labels",
	Run: func(cmd *cobra.Command, args []string) {
		planner, _ := loadPlanner()

		fmt.Println("Assignable labels:")
		fmt.Println()
		for _, label := range planner.Catalog() {
			fmt.Printf("  %s\n", label)
		}
		fmt.Println()
		fmt.Println("Override the list with 'labels:' in config.yml")
	},
}
