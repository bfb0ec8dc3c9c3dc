package planner

import (
	"testing"
	"time"

	"github.com/midoradev/study-planner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func riskTask(remainingMin int, deadline *time.Time) domain.Task {
	return domain.Task{
		ID:           "t-1",
		Title:        "Essay",
		EstimatedMin: remainingMin,
		RemainingMin: remainingMin,
		Deadline:     deadline,
		Priority:     domain.PriorityMedium,
	}
}

func TestClassify_Levels(t *testing.T) {
	cfg := DefaultRiskConfig()
	pastDue := monday.AddDate(0, 0, -1)
	dueSoon := monday.AddDate(0, 0, 2)
	dueLater := monday.AddDate(0, 0, 20)

	tests := []struct {
		name      string
		task      domain.Task
		remainder bool
		want      domain.RiskLevel
	}{
		{"no deadline", riskTask(60, nil), false, domain.RiskNone},
		{"nothing remaining", riskTask(0, &dueSoon), false, domain.RiskNone},
		{"past due with work left", riskTask(60, &pastDue), false, domain.RiskOverdue},
		{"capacity short of remaining", riskTask(10000, &dueLater), false, domain.RiskHigh},
		{"unscheduled remainder forces high", riskTask(30, &dueLater), true, domain.RiskHigh},
		{"near-term window", riskTask(60, &dueSoon), false, domain.RiskMedium},
		{"comfortable", riskTask(60, &dueLater), false, domain.RiskLow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.task, monday, tc.remainder, cfg))
		})
	}
}

func TestClassify_DoneTaskAlwaysNone(t *testing.T) {
	pastDue := monday.AddDate(0, 0, -30)
	task := riskTask(0, &pastDue)
	task.Done = true

	for i := 0; i < 5; i++ {
		today := monday.AddDate(0, 0, i*30)
		assert.Equal(t, domain.RiskNone, Classify(task, today, false, DefaultRiskConfig()),
			"done tasks carry no risk regardless of the date")
	}
}

func TestClassify_NoDeadlineDoneIsNone(t *testing.T) {
	task := riskTask(0, nil)
	task.Done = true
	assert.Equal(t, domain.RiskNone, Classify(task, monday, false, DefaultRiskConfig()))
}

func TestClassify_DueTodayWithWorkLeftIsHigh(t *testing.T) {
	today := monday
	task := riskTask(30, &today)
	assert.Equal(t, domain.RiskHigh, Classify(task, monday, false, DefaultRiskConfig()))
}

// Shrinking the days to deadline must never lower the risk level.
func TestClassify_MonotoneAsDeadlineApproaches(t *testing.T) {
	cfg := DefaultRiskConfig()
	deadline := monday.AddDate(0, 0, 30)
	task := riskTask(240, &deadline)

	prevRank := -1
	for offset := 0; offset <= 35; offset++ {
		today := monday.AddDate(0, 0, offset)
		level := Classify(task, today, false, cfg)
		rank := domain.RiskRank(level)
		assert.GreaterOrEqual(t, rank, prevRank,
			"risk dropped from rank %d to %d at %d days before deadline", prevRank, rank, 30-offset)
		prevRank = rank
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(monday, monday))
	assert.Equal(t, 3, DaysUntil(monday, monday.AddDate(0, 0, 3)))
	assert.Equal(t, -2, DaysUntil(monday, monday.AddDate(0, 0, -2)))
	// Time-of-day is ignored.
	assert.Equal(t, 1, DaysUntil(at(monday, 23, 59), monday.AddDate(0, 0, 1)))
}
