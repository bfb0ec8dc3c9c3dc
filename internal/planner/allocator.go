package planner

import (
	"sort"
	"time"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/domain"
)

// Schedule is the allocator's output: non-overlapping sessions sorted by
// start time, plus the effort that found no room.
type Schedule struct {
	Sessions   []app.Session
	Remainders []app.UnscheduledRemainder
}

// Allocate distributes pending task effort into free slots. Greedy and
// pure: tasks are walked in allocation order, each consuming slot
// capacity chronologically until its remaining effort is satisfied or no
// usable slot is left. A partially consumed slot is split; the free part
// stays in the pool for later tasks. Effort that cannot be placed before
// a task's deadline (or at all) is reported as an unscheduled remainder,
// not an error. Overdue tasks are not capped; their leftover effort is
// pushed forward into the week ahead of everything else.
//
// Identical inputs always produce an identical schedule, so regenerating
// a plan is safe and idempotent.
func Allocate(slots []Slot, candidates []Candidate, today time.Time) Schedule {
	pool := make([]Slot, len(slots))
	copy(pool, slots)
	sort.Slice(pool, func(i, j int) bool { return pool[i].Start.Before(pool[j].Start) })

	ordered := OrderForAllocation(candidates, today)

	var out Schedule
	for _, c := range ordered {
		t := c.Task
		if !t.Pending() {
			continue
		}

		// A deadline caps usable slots at end of the deadline day. Slots
		// never cross midnight, so the whole slot is either usable or not.
		// An already overdue task has no usable slot behind it; it is
		// rescheduled forward instead and claims the earliest free slots.
		var cutoff *time.Time
		if t.Deadline != nil && !t.Overdue(today) {
			end := domain.DateOf(*t.Deadline).AddDate(0, 0, 1)
			cutoff = &end
		}

		need := t.RemainingMin
		for i := range pool {
			if need <= 0 {
				break
			}
			free := pool[i].Minutes()
			if free <= 0 {
				continue
			}
			if cutoff != nil && pool[i].End.After(*cutoff) {
				continue
			}

			take := need
			if take > free {
				take = free
			}
			sessionEnd := pool[i].Start.Add(time.Duration(take) * time.Minute)
			out.Sessions = append(out.Sessions, app.Session{
				TaskID:      t.ID,
				TaskTitle:   t.Title,
				SubjectID:   t.SubjectID,
				SubjectName: c.SubjectName,
				Start:       pool[i].Start,
				End:         sessionEnd,
				Minutes:     take,
			})
			pool[i].Start = sessionEnd // leftover stays available
			need -= take
		}

		if need > 0 {
			out.Remainders = append(out.Remainders, app.UnscheduledRemainder{
				TaskID:    t.ID,
				TaskTitle: t.Title,
				Minutes:   need,
			})
		}
	}

	// Later tasks may fill earlier leftover capacity, so restore global
	// chronological order before returning.
	sort.SliceStable(out.Sessions, func(i, j int) bool {
		return out.Sessions[i].Start.Before(out.Sessions[j].Start)
	})
	return out
}
