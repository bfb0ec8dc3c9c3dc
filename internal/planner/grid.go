package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/domain"
)

// Slot is a maximal contiguous free interval within the planning week.
// Slots never cross midnight because availability rules are bounded to a
// single weekday.
type Slot struct {
	Start time.Time
	End   time.Time
}

func (s Slot) Minutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// BuildSlots materializes each availability rule within the 7-day window
// starting at weekStart, subtracts every overlapping busy interval, merges
// adjacent free time, and returns the week's slots sorted by start.
//
// Rules are handled independently before subtraction; overlapping rules
// produce duplicate free time that the final merge pass deduplicates.
func BuildSlots(rules []domain.AvailabilityRule, busy []domain.BusyInterval, weekStart time.Time) ([]Slot, error) {
	for i := range rules {
		if err := checkRule(&rules[i]); err != nil {
			return nil, err
		}
	}

	day := domain.DateOf(weekStart)
	var slots []Slot
	for i := 0; i < 7; i++ {
		d := day.AddDate(0, 0, i)
		for _, r := range rules {
			if r.Weekday != d.Weekday() {
				continue
			}
			window := Slot{
				Start: d.Add(time.Duration(r.StartMin) * time.Minute),
				End:   d.Add(time.Duration(r.EndMin) * time.Minute),
			}
			slots = append(slots, subtractBusy(window, busy)...)
		}
	}

	return mergeSlots(slots), nil
}

// ValidateRules rejects any rule set in which two rules share time on the
// same weekday. Used at rule creation; BuildSlots assumes it has run but
// does not require it.
func ValidateRules(rules []domain.AvailabilityRule) error {
	for i := range rules {
		if err := checkRule(&rules[i]); err != nil {
			return err
		}
		for j := i + 1; j < len(rules); j++ {
			if rules[i].Overlaps(&rules[j]) {
				return &app.ConfigError{
					Code: app.ConfigErrRuleOverlap,
					Message: fmt.Sprintf("%s %s-%s overlaps %s-%s",
						rules[i].Weekday,
						domain.FormatClock(rules[i].StartMin), domain.FormatClock(rules[i].EndMin),
						domain.FormatClock(rules[j].StartMin), domain.FormatClock(rules[j].EndMin)),
				}
			}
		}
	}
	return nil
}

func checkRule(r *domain.AvailabilityRule) error {
	if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
		return &app.ConfigError{
			Code:    app.ConfigErrInvalidWeekday,
			Message: fmt.Sprintf("weekday %d is not a valid day", r.Weekday),
		}
	}
	if r.StartMin < 0 || r.EndMin > 24*60 || r.EndMin <= r.StartMin {
		return &app.ConfigError{
			Code: app.ConfigErrInvalidWindow,
			Message: fmt.Sprintf("window %s-%s on %s is not a valid rule",
				domain.FormatClock(r.StartMin), domain.FormatClock(r.EndMin), r.Weekday),
		}
	}
	return nil
}

// subtractBusy removes every overlapping busy interval from the window,
// producing zero, one, or two residual slots per overlap.
func subtractBusy(window Slot, busy []domain.BusyInterval) []Slot {
	free := []Slot{window}
	for _, b := range busy {
		if !b.End.After(b.Start) {
			continue
		}
		var next []Slot
		for _, s := range free {
			// No overlap: keep as-is.
			if !b.Start.Before(s.End) || !b.End.After(s.Start) {
				next = append(next, s)
				continue
			}
			if b.Start.After(s.Start) {
				next = append(next, Slot{Start: s.Start, End: b.Start})
			}
			if b.End.Before(s.End) {
				next = append(next, Slot{Start: b.End, End: s.End})
			}
		}
		free = next
	}
	return free
}

// mergeSlots sorts by start and coalesces overlapping or adjacent slots,
// dropping zero-length ones.
func mergeSlots(slots []Slot) []Slot {
	var nonEmpty []Slot
	for _, s := range slots {
		if s.End.After(s.Start) {
			nonEmpty = append(nonEmpty, s)
		}
	}
	sort.Slice(nonEmpty, func(i, j int) bool {
		if !nonEmpty[i].Start.Equal(nonEmpty[j].Start) {
			return nonEmpty[i].Start.Before(nonEmpty[j].Start)
		}
		return nonEmpty[i].End.Before(nonEmpty[j].End)
	})

	var merged []Slot
	for _, s := range nonEmpty {
		if len(merged) > 0 && !s.Start.After(merged[len(merged)-1].End) {
			if s.End.After(merged[len(merged)-1].End) {
				merged[len(merged)-1].End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
