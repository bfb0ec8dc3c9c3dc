package domain

import "time"

type Task struct {
	ID        string
	SubjectID string
	Title     string

	// Effort, in minutes. RemainingMin starts equal to EstimatedMin and
	// only decreases while the task is undone. SnapshotMin holds the
	// remaining effort captured by MarkDone so MarkUndone can restore it.
	EstimatedMin int
	RemainingMin int
	SnapshotMin  int

	Deadline    *time.Time // date only, time-of-day is ignored
	Priority    Priority
	Done        bool
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pending reports whether the task still needs scheduling: undone with
// effort remaining.
func (t *Task) Pending() bool {
	return !t.Done && t.RemainingMin > 0
}

// Overdue reports whether the task has a deadline strictly before today
// while effort remains. Both dates are compared at day granularity.
func (t *Task) Overdue(today time.Time) bool {
	if t.Deadline == nil || t.RemainingMin <= 0 {
		return false
	}
	return DateOf(*t.Deadline).Before(DateOf(today))
}

// DateOf truncates a timestamp to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
