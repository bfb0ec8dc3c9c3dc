package service

import (
	"context"
	"fmt"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/planner"
	"github.com/midoradev/study-planner/internal/repository"
)

type planService struct {
	rules    repository.RuleRepo
	busy     repository.BusyRepo
	tasks    repository.TaskRepo
	subjects repository.SubjectRepo
}

func NewPlanService(
	rules repository.RuleRepo,
	busy repository.BusyRepo,
	tasks repository.TaskRepo,
	subjects repository.SubjectRepo,
) PlanService {
	return &planService{rules: rules, busy: busy, tasks: tasks, subjects: subjects}
}

// GeneratePlan builds the week's free slots and allocates all pending
// effort into them. Pure over its loaded inputs: calling it again without
// data changes yields the identical schedule.
func (s *planService) GeneratePlan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error) {
	now := resolveNow(req.Now)
	weekStart := domain.DateOf(now)
	if req.WeekStart != nil {
		weekStart = domain.DateOf(*req.WeekStart)
	}

	rules, err := s.rules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading availability rules: %w", err)
	}
	busy, err := s.busy.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading busy intervals: %w", err)
	}
	pending, err := s.tasks.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pending tasks: %w", err)
	}

	slots, err := planner.BuildSlots(rules, busy, weekStart)
	if err != nil {
		return nil, err
	}

	candidates := make([]planner.Candidate, len(pending))
	for i, p := range pending {
		candidates[i] = planner.Candidate{Task: p.Task, SubjectName: p.SubjectName}
	}

	sched := planner.Allocate(slots, candidates, now)

	capacity := 0
	for _, slot := range slots {
		capacity += slot.Minutes()
	}

	resp := &app.PlanResponse{
		GeneratedAt: now,
		WeekStart:   weekStart,
		SlotMin:     capacity,
		Sessions:    sched.Sessions,
		Remainders:  sched.Remainders,
	}
	resp.Warnings, err = s.targetWarnings(ctx, pending)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// targetWarnings flags subjects whose open effort exceeds their weekly
// target. The target is advisory, so this warns instead of failing.
func (s *planService) targetWarnings(ctx context.Context, pending []repository.PendingTask) ([]string, error) {
	openMin := map[string]int{}
	for _, p := range pending {
		openMin[p.Task.SubjectID] += p.Task.RemainingMin
	}

	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading subjects: %w", err)
	}

	var warnings []string
	for _, subject := range subjects {
		if subject.WeeklyTargetMin > 0 && openMin[subject.ID] > subject.WeeklyTargetMin {
			warnings = append(warnings, fmt.Sprintf(
				"%s has %d min of open work against a %d min weekly target",
				subject.Name, openMin[subject.ID], subject.WeeklyTargetMin))
		}
	}
	return warnings, nil
}
