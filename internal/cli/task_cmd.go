package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/midoradev/study-planner/internal/cli/formatter"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/repository"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskUndoneCmd(app),
		newTaskAdjustCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var subject, title, deadline, priority string
	var minutes int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Without flags on a terminal, fall back to the form.
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				return runTaskAddForm(ctx, app)
			}

			subjectID, err := resolveSubjectID(ctx, app, subject)
			if err != nil {
				return err
			}
			due, err := parseOptionalDate(deadline)
			if err != nil {
				return err
			}

			t, err := app.Tasks.Create(ctx, subjectID, title, minutes, due, domain.Priority(priority))
			if err != nil {
				return err
			}
			fmt.Printf("Created task %s (%s)\n", t.Title, formatter.FormatMinutes(t.EstimatedMin))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject name or ID")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Estimated effort in minutes")
	cmd.Flags().StringVar(&deadline, "due", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (low|medium|high)")

	return cmd
}

func runTaskAddForm(ctx context.Context, app *App) error {
	subjects, err := app.Subjects.List(ctx)
	if err != nil {
		return err
	}
	if len(subjects) == 0 {
		return fmt.Errorf("create a subject first: studyplan subject add")
	}

	var title, subjectID, minutes, deadline string
	priority := "medium"
	if err := taskAddForm(subjects, &title, &subjectID, &minutes, &deadline, &priority).Run(); err != nil {
		return err
	}

	est, err := strconv.Atoi(strings.TrimSpace(minutes))
	if err != nil {
		return fmt.Errorf("invalid minutes %q: %w", minutes, err)
	}
	due, err := parseOptionalDate(deadline)
	if err != nil {
		return err
	}

	t, err := app.Tasks.Create(ctx, subjectID, strings.TrimSpace(title), est, due, domain.Priority(priority))
	if err != nil {
		return err
	}
	fmt.Printf("Created task %s (%s)\n", t.Title, formatter.FormatMinutes(t.EstimatedMin))
	return nil
}

func newTaskListCmd(app *App) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if subject != "" {
				subjectID, err := resolveSubjectID(ctx, app, subject)
				if err != nil {
					return err
				}
				tasks, err := app.Tasks.ListBySubject(ctx, subjectID)
				if err != nil {
					return err
				}
				if len(tasks) == 0 {
					fmt.Println("No tasks for this subject.")
					return nil
				}
				s, err := app.Subjects.GetByID(ctx, subjectID)
				if err != nil {
					return err
				}
				joined := make([]repository.PendingTask, 0, len(tasks))
				for _, t := range tasks {
					joined = append(joined, repository.PendingTask{Task: *t, SubjectName: s.Name})
				}
				fmt.Printf("%s\n", formatter.FormatTaskList(joined))
				return nil
			}

			tasks, err := app.Tasks.ListAll(ctx)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Limit to one subject")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Progress.MarkDone(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Done: %s\n", t.Title)
			return nil
		},
	}
}

func newTaskUndoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undone ID",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Progress.MarkUndone(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Reopened: %s (%s left)\n", t.Title, formatter.FormatMinutes(t.RemainingMin))
			return nil
		},
	}
}

func newTaskAdjustCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "adjust ID MINUTES",
		Short: "Set a task's remaining effort",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[1], err)
			}
			t, err := app.Progress.AdjustEffort(ctx, id, minutes)
			if err != nil {
				return err
			}
			fmt.Printf("%s now has %s remaining\n", t.Title, formatter.FormatMinutes(t.RemainingMin))
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Task removed.")
			return nil
		},
	}
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &d, nil
}
