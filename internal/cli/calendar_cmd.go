package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/midoradev/study-planner/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage imported busy time",
	}

	cmd.AddCommand(
		newCalendarImportCmd(app),
		newCalendarListCmd(app),
	)

	return cmd
}

func newCalendarImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE.ics",
		Short: "Replace busy intervals from an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			n, err := app.Calendar.ImportBusy(context.Background(), f)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d busy intervals.\n", n)
			return nil
		},
	}
}

func newCalendarListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List busy intervals",
		RunE: func(cmd *cobra.Command, args []string) error {
			busy, err := app.Calendar.ListBusy(context.Background())
			if err != nil {
				return err
			}
			if len(busy) == 0 {
				fmt.Println("No busy intervals imported.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatBusyList(busy))
			return nil
		},
	}
}
