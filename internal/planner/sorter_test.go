package planner

import (
	"testing"
	"time"

	"github.com/midoradev/study-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCandidate(taskID string, deadline *time.Time, priority domain.Priority) Candidate {
	return Candidate{
		Task: domain.Task{
			ID:           taskID,
			SubjectID:    "subj-1",
			Title:        taskID,
			EstimatedMin: 60,
			RemainingMin: 60,
			Deadline:     deadline,
			Priority:     priority,
		},
		SubjectName: "Algebra",
	}
}

func TestOrderForAllocation_OverdueFirst(t *testing.T) {
	past := monday.AddDate(0, 0, -2)
	future := monday.AddDate(0, 0, 5)

	ordered := OrderForAllocation([]Candidate{
		makeCandidate("future", &future, domain.PriorityHigh),
		makeCandidate("overdue", &past, domain.PriorityLow),
	}, monday)

	assert.Equal(t, "overdue", ordered[0].Task.ID)
	assert.Equal(t, "future", ordered[1].Task.ID)
}

func TestOrderForAllocation_DeadlineAscendingNilLast(t *testing.T) {
	early := monday.AddDate(0, 0, 2)
	late := monday.AddDate(0, 0, 9)

	ordered := OrderForAllocation([]Candidate{
		makeCandidate("none", nil, domain.PriorityHigh),
		makeCandidate("late", &late, domain.PriorityHigh),
		makeCandidate("early", &early, domain.PriorityLow),
	}, monday)

	assert.Equal(t, "early", ordered[0].Task.ID)
	assert.Equal(t, "late", ordered[1].Task.ID)
	assert.Equal(t, "none", ordered[2].Task.ID, "no deadline sorts last")
}

func TestOrderForAllocation_PriorityBreaksDeadlineTie(t *testing.T) {
	due := monday.AddDate(0, 0, 3)

	ordered := OrderForAllocation([]Candidate{
		makeCandidate("low", &due, domain.PriorityLow),
		makeCandidate("high", &due, domain.PriorityHigh),
		makeCandidate("med", &due, domain.PriorityMedium),
	}, monday)

	assert.Equal(t, "high", ordered[0].Task.ID)
	assert.Equal(t, "med", ordered[1].Task.ID)
	assert.Equal(t, "low", ordered[2].Task.ID)
}

func TestOrderForAllocation_StableOnFullTie(t *testing.T) {
	due := monday.AddDate(0, 0, 3)

	ordered := OrderForAllocation([]Candidate{
		makeCandidate("first", &due, domain.PriorityMedium),
		makeCandidate("second", &due, domain.PriorityMedium),
		makeCandidate("third", &due, domain.PriorityMedium),
	}, monday)

	require.Len(t, ordered, 3)
	assert.Equal(t, "first", ordered[0].Task.ID, "full ties keep original input order")
	assert.Equal(t, "second", ordered[1].Task.ID)
	assert.Equal(t, "third", ordered[2].Task.ID)
}

func TestOrderForAllocation_InputUntouched(t *testing.T) {
	early := monday.AddDate(0, 0, 1)
	in := []Candidate{
		makeCandidate("b", nil, domain.PriorityLow),
		makeCandidate("a", &early, domain.PriorityHigh),
	}

	OrderForAllocation(in, monday)

	assert.Equal(t, "b", in[0].Task.ID, "sorting must not mutate the input slice")
	assert.Equal(t, "a", in[1].Task.ID)
}
