package service

import (
	"context"
	"io"
	"time"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/repository"
)

type SubjectService interface {
	Create(ctx context.Context, name string, weeklyTargetMin int, notes string) (*domain.Subject, error)
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
	Update(ctx context.Context, s *domain.Subject) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, subjectID, title string, estimatedMin int, deadline *time.Time, priority domain.Priority) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListBySubject(ctx context.Context, subjectID string) ([]*domain.Task, error)
	ListAll(ctx context.Context) ([]repository.PendingTask, error)
	Delete(ctx context.Context, id string) error
}

type RuleService interface {
	Add(ctx context.Context, weekday time.Weekday, startMin, endMin int) (*domain.AvailabilityRule, error)
	List(ctx context.Context) ([]domain.AvailabilityRule, error)
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	GeneratePlan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error)
}

type StatusService interface {
	RiskReport(ctx context.Context, req app.RiskRequest) (*app.RiskReport, error)
}

type ProgressService interface {
	MarkDone(ctx context.Context, taskID string) (*domain.Task, error)
	MarkUndone(ctx context.Context, taskID string) (*domain.Task, error)
	AdjustEffort(ctx context.Context, taskID string, newRemainingMin int) (*domain.Task, error)
}

type CalendarService interface {
	ImportBusy(ctx context.Context, r io.Reader) (int, error)
	ExportSchedule(ctx context.Context, plan *app.PlanResponse, w io.Writer) error
	ListBusy(ctx context.Context) ([]domain.BusyInterval, error)
}
