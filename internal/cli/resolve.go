package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveSubjectID maps user input to a subject UUID. Accepts an exact
// name (case-insensitive), a full UUID, or a unique UUID prefix.
func resolveSubjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("subject is required")
	}

	subjects, err := app.Subjects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range subjects {
		if strings.EqualFold(s.Name, input) {
			return s.ID, nil
		}
	}
	for _, s := range subjects {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range subjects {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("subject not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("subject %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTaskID maps user input to a task UUID by exact match or unique
// UUID prefix across all tasks.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.ListAll(ctx)
	if err != nil {
		return "", err
	}

	for _, pt := range tasks {
		if pt.Task.ID == input {
			return pt.Task.ID, nil
		}
	}

	var matches []string
	for _, pt := range tasks {
		if strings.HasPrefix(pt.Task.ID, input) {
			matches = append(matches, pt.Task.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
