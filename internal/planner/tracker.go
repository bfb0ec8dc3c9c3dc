package planner

import (
	"fmt"
	"time"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/domain"
)

// MarkDone completes the task: the current remaining effort is snapshotted
// so MarkUndone can restore it, then zeroed, and the completion time is
// stamped. The task is untouched on failure.
func MarkDone(t *domain.Task, now time.Time) error {
	if t.Done {
		return &app.ValidationError{
			Code:    app.ValidationErrTaskDone,
			Message: fmt.Sprintf("task %q is already done", t.Title),
		}
	}
	t.SnapshotMin = t.RemainingMin
	t.RemainingMin = 0
	t.Done = true
	completed := now
	t.CompletedAt = &completed
	t.UpdatedAt = now
	return nil
}

// MarkUndone reverses MarkDone, restoring the snapshotted remaining
// effort and clearing the completion stamp.
func MarkUndone(t *domain.Task, now time.Time) error {
	if !t.Done {
		return &app.ValidationError{
			Code:    app.ValidationErrTaskNotDone,
			Message: fmt.Sprintf("task %q is not done", t.Title),
		}
	}
	t.RemainingMin = t.SnapshotMin
	t.SnapshotMin = 0
	t.Done = false
	t.CompletedAt = nil
	t.UpdatedAt = now
	return nil
}

// AdjustEffort manually corrects the remaining effort of an undone task.
func AdjustEffort(t *domain.Task, newRemainingMin int, now time.Time) error {
	if t.Done {
		return &app.ValidationError{
			Code:    app.ValidationErrTaskDone,
			Message: fmt.Sprintf("task %q is done; undo it before adjusting effort", t.Title),
		}
	}
	if newRemainingMin < 0 {
		return &app.ValidationError{
			Code:    app.ValidationErrNegativeEffort,
			Message: fmt.Sprintf("remaining effort must be >= 0, got %d", newRemainingMin),
		}
	}
	t.RemainingMin = newRemainingMin
	t.UpdatedAt = now
	return nil
}
