package planner

import (
	"time"

	"github.com/midoradev/study-planner/internal/domain"
)

// RiskConfig tunes the deadline heuristic. DailyStudyMin is a rough
// estimate of minutes available per day, used to judge whether the
// remaining effort still fits before the deadline.
type RiskConfig struct {
	NearTermWindowDays int
	DailyStudyMin      int
}

func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		NearTermWindowDays: 3,
		DailyStudyMin:      90,
	}
}

// Classify maps a task to exactly one risk level. Pure and total: it
// never fails, and identical inputs always yield the same level.
//
// hadUnscheduledRemainder is the allocator's signal that some of the
// task's effort found no room in the current week.
func Classify(task domain.Task, today time.Time, hadUnscheduledRemainder bool, cfg RiskConfig) domain.RiskLevel {
	if task.Done || task.RemainingMin <= 0 {
		return domain.RiskNone
	}
	if task.Deadline == nil {
		return domain.RiskNone
	}

	daysLeft := DaysUntil(today, *task.Deadline)
	if daysLeft < 0 {
		return domain.RiskOverdue
	}

	capacity := daysLeft * cfg.DailyStudyMin
	if hadUnscheduledRemainder || capacity < task.RemainingMin {
		return domain.RiskHigh
	}
	if daysLeft <= cfg.NearTermWindowDays {
		return domain.RiskMedium
	}
	return domain.RiskLow
}

// DaysUntil returns whole days from today to the deadline at day
// granularity. Zero means due today; negative means past due.
func DaysUntil(today, deadline time.Time) int {
	d := domain.DateOf(deadline).Sub(domain.DateOf(today))
	return int(d.Hours() / 24)
}
