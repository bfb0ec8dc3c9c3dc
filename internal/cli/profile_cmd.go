package cli

import (
	"fmt"

	"github.com/midoradev/study-planner/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage planning profiles",
		Long:  "Each profile is a separate database. Select one with STUDYPLAN_PROFILE.",
	}

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileRemoveCmd(app),
	)

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Profiles.List()
			if err != nil {
				return err
			}
			for _, n := range names {
				if n == app.ActiveProfile {
					fmt.Printf("* %s %s\n", formatter.Bold(n), formatter.Dim("(active)"))
				} else {
					fmt.Printf("  %s\n", n)
				}
			}
			return nil
		},
	}
}

func newProfileRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a profile and all its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted profile %s.\n", args[0])
			return nil
		},
	}
}
