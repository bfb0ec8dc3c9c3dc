package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/midoradev/study-planner/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage subjects",
	}

	cmd.AddCommand(
		newSubjectAddCmd(app),
		newSubjectListCmd(app),
		newSubjectUpdateCmd(app),
		newSubjectRemoveCmd(app),
	)

	return cmd
}

func newSubjectAddCmd(app *App) *cobra.Command {
	var name, notes string
	var target int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Without flags on a terminal, fall back to the form.
			if name == "" && app.IsInteractive != nil && app.IsInteractive() {
				return runSubjectAddForm(ctx, app)
			}

			s, err := app.Subjects.Create(ctx, name, target, notes)
			if err != nil {
				return err
			}
			fmt.Printf("Created subject %s (target %s/week)\n", s.Name, formatter.FormatMinutes(s.WeeklyTargetMin))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subject name")
	cmd.Flags().IntVar(&target, "target", 0, "Weekly target in minutes")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func runSubjectAddForm(ctx context.Context, app *App) error {
	var name, target, notes string
	if err := subjectAddForm(&name, &target, &notes).Run(); err != nil {
		return err
	}
	min, err := strconv.Atoi(strings.TrimSpace(target))
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", target, err)
	}
	s, err := app.Subjects.Create(ctx, strings.TrimSpace(name), min, strings.TrimSpace(notes))
	if err != nil {
		return err
	}
	fmt.Printf("Created subject %s (target %s/week)\n", s.Name, formatter.FormatMinutes(s.WeeklyTargetMin))
	return nil
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Subjects.List(context.Background())
			if err != nil {
				return err
			}
			if len(subjects) == 0 {
				fmt.Println("No subjects yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatSubjectList(subjects))
			return nil
		},
	}
}

func newSubjectUpdateCmd(app *App) *cobra.Command {
	var name, notes string
	var target int

	cmd := &cobra.Command{
		Use:   "update SUBJECT",
		Short: "Update a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Subjects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				s.Name = name
			}
			if cmd.Flags().Changed("target") {
				s.WeeklyTargetMin = target
			}
			if cmd.Flags().Changed("notes") {
				s.Notes = notes
			}
			if err := app.Subjects.Update(ctx, s); err != nil {
				return err
			}
			fmt.Printf("Updated subject %s\n", s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New subject name")
	cmd.Flags().IntVar(&target, "target", 0, "New weekly target in minutes")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")

	return cmd
}

func newSubjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SUBJECT",
		Short: "Delete a subject and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSubjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Subjects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Subject removed.")
			return nil
		},
	}
}
