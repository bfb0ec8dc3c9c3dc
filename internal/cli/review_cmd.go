package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Review tasks interactively",
		Long:  "Browse all tasks and toggle completion with the space bar.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("review needs an interactive terminal")
			}
			p := tea.NewProgram(newReviewModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
