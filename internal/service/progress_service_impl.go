package service

import (
	"context"
	"fmt"
	"time"

	"github.com/midoradev/study-planner/internal/db"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/planner"
	"github.com/midoradev/study-planner/internal/repository"
)

// progressService is the single writer of task done/effort state. Reads
// and the write happen inside one transaction so a rejected mutation
// leaves nothing behind.
type progressService struct {
	uow db.UnitOfWork
}

func NewProgressService(uow db.UnitOfWork) ProgressService {
	return &progressService{uow: uow}
}

func (s *progressService) MarkDone(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		return planner.MarkDone(t, now)
	})
}

func (s *progressService) MarkUndone(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		return planner.MarkUndone(t, now)
	})
}

func (s *progressService) AdjustEffort(ctx context.Context, taskID string, newRemainingMin int) (*domain.Task, error) {
	return s.mutate(ctx, taskID, func(t *domain.Task, now time.Time) error {
		return planner.AdjustEffort(t, newRemainingMin, now)
	})
}

func (s *progressService) mutate(ctx context.Context, taskID string, apply func(*domain.Task, time.Time) error) (*domain.Task, error) {
	var task *domain.Task
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks := repository.NewTaskRepo(tx)

		loaded, err := tasks.GetByID(ctx, taskID)
		if err != nil {
			return fmt.Errorf("loading task: %w", err)
		}
		if err := apply(loaded, time.Now().UTC()); err != nil {
			return err
		}
		if err := tasks.Update(ctx, loaded); err != nil {
			return fmt.Errorf("saving task: %w", err)
		}
		task = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}
