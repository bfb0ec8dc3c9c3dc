package cli

import (
	"context"
	"fmt"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the risk dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.Status.RiskReport(context.Background(), app.NewRiskRequest())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatRiskReport(report))
			return nil
		},
	}
}
