package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideContent string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the quickstart guide",
	Run: func(cmd *cobra.Command, args []string) {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			fmt.Print(guideContent)
			return
		}
		out, err := renderer.Render(guideContent)
		if err != nil {
			fmt.Print(guideContent)
			return
		}
		fmt.Print(out)
	},
}
