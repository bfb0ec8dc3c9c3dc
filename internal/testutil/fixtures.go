package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/midoradev/study-planner/internal/domain"
)

// Subject options

type SubjectOption func(*domain.Subject)

func WithWeeklyTarget(min int) SubjectOption {
	return func(s *domain.Subject) {
		s.WeeklyTargetMin = min
	}
}

func NewTestSubject(name string, opts ...SubjectOption) *domain.Subject {
	now := time.Now().UTC()
	s := &domain.Subject{
		ID:              uuid.New().String(),
		Name:            name,
		WeeklyTargetMin: 180,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Task options

type TaskOption func(*domain.Task)

func WithEffort(estimatedMin int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMin = estimatedMin
		t.RemainingMin = estimatedMin
	}
}

func WithRemaining(min int) TaskOption {
	return func(t *domain.Task) {
		t.RemainingMin = min
	}
}

func WithDeadline(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Deadline = &d
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func NewTestTask(subjectID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:           uuid.New().String(),
		SubjectID:    subjectID,
		Title:        title,
		EstimatedMin: 60,
		RemainingMin: 60,
		Priority:     domain.PriorityMedium,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Rule and busy-interval fixtures

func NewTestRule(wd time.Weekday, startMin, endMin int) *domain.AvailabilityRule {
	now := time.Now().UTC()
	return &domain.AvailabilityRule{
		ID:        uuid.New().String(),
		Weekday:   wd,
		StartMin:  startMin,
		EndMin:    endMin,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestBusy(title string, start, end time.Time) *domain.BusyInterval {
	return &domain.BusyInterval{
		ID:        uuid.New().String(),
		Title:     title,
		Start:     start,
		End:       end,
		CreatedAt: time.Now().UTC(),
	}
}
