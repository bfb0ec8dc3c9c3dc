package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/cli/formatter"
	"github.com/midoradev/study-planner/internal/pdf"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	var week, icsPath, pdfPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate the weekly study plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var req app.PlanRequest
			if week != "" {
				start, err := time.Parse("2006-01-02", week)
				if err != nil {
					return fmt.Errorf("invalid week start %q: %w", week, err)
				}
				req.WeekStart = &start
			}

			plan, err := a.Plan.GeneratePlan(ctx, req)
			if err != nil {
				return err
			}

			if icsPath != "" {
				f, err := os.Create(icsPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", icsPath, err)
				}
				defer f.Close()
				if err := a.Calendar.ExportSchedule(ctx, plan, f); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", icsPath)
			}

			if pdfPath != "" {
				report, err := a.Status.RiskReport(ctx, app.NewRiskRequest())
				if err != nil {
					return err
				}
				data, err := pdf.WeekPlan(plan, report)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", pdfPath, err)
				}
				fmt.Printf("Wrote %s\n", pdfPath)
			}

			if icsPath == "" && pdfPath == "" {
				fmt.Printf("%s\n", formatter.FormatPlan(plan))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&icsPath, "ics", "", "Export the schedule to an iCalendar file")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Export the plan and risk list to a PDF file")

	return cmd
}
