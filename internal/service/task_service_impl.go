package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	subjects repository.SubjectRepo
}

func NewTaskService(tasks repository.TaskRepo, subjects repository.SubjectRepo) TaskService {
	return &taskService{tasks: tasks, subjects: subjects}
}

func (s *taskService) Create(ctx context.Context, subjectID, title string, estimatedMin int, deadline *time.Time, priority domain.Priority) (*domain.Task, error) {
	if title == "" {
		return nil, &app.ValidationError{
			Code:    app.ValidationErrInvalidField,
			Message: "task title is required",
		}
	}
	if estimatedMin <= 0 {
		return nil, &app.ValidationError{
			Code:    app.ValidationErrInvalidField,
			Message: fmt.Sprintf("estimated effort must be positive, got %d", estimatedMin),
		}
	}
	if !domain.ValidPriorities[string(priority)] {
		return nil, &app.ValidationError{
			Code:    app.ValidationErrInvalidField,
			Message: fmt.Sprintf("priority must be low, medium, or high, got %q", priority),
		}
	}
	if _, err := s.subjects.GetByID(ctx, subjectID); err != nil {
		return nil, fmt.Errorf("resolving subject: %w", err)
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:           uuid.New().String(),
		SubjectID:    subjectID,
		Title:        title,
		EstimatedMin: estimatedMin,
		RemainingMin: estimatedMin,
		Deadline:     deadline,
		Priority:     priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListBySubject(ctx context.Context, subjectID string) ([]*domain.Task, error) {
	return s.tasks.ListBySubject(ctx, subjectID)
}

func (s *taskService) ListAll(ctx context.Context) ([]repository.PendingTask, error) {
	return s.tasks.ListAll(ctx)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
