package service

import (
	"context"
	"fmt"
	"io"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/db"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/ics"
	"github.com/midoradev/study-planner/internal/repository"
)

type calendarService struct {
	busy repository.BusyRepo
	uow  db.UnitOfWork
}

func NewCalendarService(busy repository.BusyRepo, uow db.UnitOfWork) CalendarService {
	return &calendarService{busy: busy, uow: uow}
}

// ImportBusy replaces the stored snapshot with the events decoded from
// r. Replace-not-merge keeps the store in step with the user's calendar;
// the swap is transactional so a bad import leaves the old snapshot
// intact.
func (s *calendarService) ImportBusy(ctx context.Context, r io.Reader) (int, error) {
	intervals, err := ics.ParseBusy(r)
	if err != nil {
		return 0, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		busy := repository.NewBusyRepo(tx)
		if err := busy.DeleteAll(ctx); err != nil {
			return err
		}
		for i := range intervals {
			if err := busy.Create(ctx, &intervals[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("storing busy intervals: %w", err)
	}
	return len(intervals), nil
}

func (s *calendarService) ExportSchedule(ctx context.Context, plan *app.PlanResponse, w io.Writer) error {
	return ics.WriteSchedule(plan, w)
}

func (s *calendarService) ListBusy(ctx context.Context) ([]domain.BusyInterval, error) {
	return s.busy.List(ctx)
}
