package repository

import (
	"context"

	"github.com/midoradev/study-planner/internal/domain"
)

// PendingTask is a task joined with its subject's display name, the shape
// the allocator and risk report need.
type PendingTask struct {
	Task        domain.Task
	SubjectName string
}

type SubjectRepo interface {
	Create(ctx context.Context, s *domain.Subject) error
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	GetByName(ctx context.Context, name string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.Task, error)
	ListAll(ctx context.Context) ([]PendingTask, error)
	ListPending(ctx context.Context) ([]PendingTask, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type RuleRepo interface {
	Create(ctx context.Context, r *domain.AvailabilityRule) error
	List(ctx context.Context) ([]domain.AvailabilityRule, error)
	Delete(ctx context.Context, id string) error
}

type BusyRepo interface {
	Create(ctx context.Context, b *domain.BusyInterval) error
	List(ctx context.Context) ([]domain.BusyInterval, error)
	DeleteAll(ctx context.Context) error
}
