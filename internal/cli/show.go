package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daymark/internal/calendar"
)

var showCmd = &cobra.Command{
	Use:     "show [year month]",
	Aliases: []string{"s"},
	Short:   "Print a month grid",
	Long: `Print the grid for a month without opening the full view.

Examples:
  daymark show            (current month)
  daymark show 2024 2     (February 2024)`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		now := time.Now()
		year, month := now.Year(), now.Month()

		if len(args) >= 1 {
			y, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Invalid year %q\n", args[0])
				os.Exit(1)
			}
			year = y
		}
		if len(args) == 2 {
			mo, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Printf("Invalid month %q\n", args[1])
				os.Exit(1)
			}
			month = time.Month(mo)
		}

		planner, cfg := loadPlanner()
		out, err := renderMonth(planner, year, month, calendar.ParseWeekStart(cfg.WeekStart))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

// renderMonth formats a month grid as plain text, marking labeled days
// with an asterisk.
func renderMonth(planner *calendar.Planner, year int, month time.Month, weekStart time.Weekday) (string, error) {
	grid, err := calendar.MonthGrid(year, month, weekStart)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", month, year)
	for _, name := range grid.Weekdays() {
		fmt.Fprintf(&b, "%4s", name)
	}
	b.WriteString("\n")

	for _, week := range grid.Weeks {
		for _, day := range week {
			if day == 0 {
				b.WriteString("    ")
				continue
			}
			mark := " "
			if d, err := grid.Date(day); err == nil && planner.Highlighted(d) {
				mark = "*"
			}
			fmt.Fprintf(&b, "%3d%s", day, mark)
		}
		b.WriteString("\n")
	}

	for _, d := range planner.MonthEntries(year, month) {
		if label, ok := planner.Label(d); ok {
			fmt.Fprintf(&b, "  %s  %s\n", d, label)
		}
	}

	return b.String(), nil
}
