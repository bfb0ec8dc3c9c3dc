package domain

import (
	"fmt"
	"time"
)

// AvailabilityRule is a weekly recurring free-time window, expressed as
// minutes from midnight on one weekday.
type AvailabilityRule struct {
	ID        string
	Weekday   time.Weekday
	StartMin  int
	EndMin    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *AvailabilityRule) Validate() error {
	if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
		return fmt.Errorf("invalid weekday %d", r.Weekday)
	}
	if r.StartMin < 0 || r.EndMin > 24*60 {
		return fmt.Errorf("rule window must fall within the day, got %d-%d", r.StartMin, r.EndMin)
	}
	if r.EndMin <= r.StartMin {
		return fmt.Errorf("rule end (%s) must be after start (%s)",
			FormatClock(r.EndMin), FormatClock(r.StartMin))
	}
	return nil
}

// Overlaps reports whether two rules share any time on the same weekday.
func (r *AvailabilityRule) Overlaps(other *AvailabilityRule) bool {
	if r.Weekday != other.Weekday {
		return false
	}
	return r.StartMin < other.EndMin && other.StartMin < r.EndMin
}

// FormatClock renders minutes-from-midnight as HH:MM.
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// BusyInterval is an absolute blocked period imported from an external
// calendar snapshot.
type BusyInterval struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}
