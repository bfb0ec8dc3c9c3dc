package app

import "time"

// PlanRequest asks for a fresh weekly schedule. Now defaults to the wall
// clock; WeekStart defaults to the day Now falls on. Both exist so tests
// and replans can pin the clock.
type PlanRequest struct {
	Now       *time.Time
	WeekStart *time.Time
}

// Session is one scheduled block of work for a single task. Sessions in a
// response are sorted by start time and never overlap; exporters rely on
// both without re-validating.
type Session struct {
	TaskID      string
	TaskTitle   string
	SubjectID   string
	SubjectName string
	Start       time.Time
	End         time.Time
	Minutes     int
}

// UnscheduledRemainder is effort that could not be placed into any slot.
// It is a reported outcome, not an error; the risk engine consumes it.
type UnscheduledRemainder struct {
	TaskID    string
	TaskTitle string
	Minutes   int
}

type PlanResponse struct {
	GeneratedAt time.Time
	WeekStart   time.Time
	SlotMin     int // total free capacity in the week
	Sessions    []Session
	Remainders  []UnscheduledRemainder
	Warnings    []string
}

// RemainderFor returns the unplaced minutes for a task, zero if fully
// scheduled.
func (r *PlanResponse) RemainderFor(taskID string) int {
	for _, rem := range r.Remainders {
		if rem.TaskID == taskID {
			return rem.Minutes
		}
	}
	return 0
}
