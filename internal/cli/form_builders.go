package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/midoradev/study-planner/internal/domain"
)

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// subjectAddForm collects the fields of a new subject interactively.
func subjectAddForm(name, target, notes *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject name").
				Value(name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Weekly target (minutes)").
				Placeholder("180").
				Value(target).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Notes (optional)").
				Value(notes),
		),
	).WithShowHelp(false)
}

// taskAddForm collects the fields of a new task interactively.
func taskAddForm(subjects []*domain.Subject, title, subjectID, minutes, deadline, priority *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(subjects))
	for _, s := range subjects {
		opts = append(opts, huh.NewOption(s.Name, s.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task title").
				Value(title).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Subject").
				Options(opts...).
				Value(subjectID),
			huh.NewInput().
				Title("Estimated minutes").
				Placeholder("60").
				Value(minutes).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD, blank for none)").
				Placeholder("2026-06-30").
				Value(deadline).
				Validate(validateOptionalDate),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("low", "low"),
					huh.NewOption("medium", "medium"),
					huh.NewOption("high", "high"),
				).
				Value(priority),
		),
	).WithShowHelp(false)
}
