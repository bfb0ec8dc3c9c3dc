package planner

import (
	"sort"
	"time"

	"github.com/midoradev/study-planner/internal/domain"
)

// Candidate is a task joined with the subject context the schedule and
// its exporters need.
type Candidate struct {
	Task        domain.Task
	SubjectName string
}

// OrderForAllocation returns a copy of candidates sorted by the
// deterministic allocation key:
//  1. overdue tasks first
//  2. ascending deadline (no deadline sorts last)
//  3. descending priority
//  4. original input order (stable)
func OrderForAllocation(candidates []Candidate, today time.Time) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := &out[i].Task, &out[j].Task

		// 1. Overdue first
		overA, overB := a.Overdue(today), b.Overdue(today)
		if overA != overB {
			return overA
		}

		// 2. Deadline (earliest first, nil last)
		if (a.Deadline == nil) != (b.Deadline == nil) {
			return a.Deadline != nil
		}
		if a.Deadline != nil && b.Deadline != nil {
			da, db := domain.DateOf(*a.Deadline), domain.DateOf(*b.Deadline)
			if !da.Equal(db) {
				return da.Before(db)
			}
		}

		// 3. Priority (higher first)
		return domain.PriorityRank(a.Priority) > domain.PriorityRank(b.Priority)
	})
	return out
}
