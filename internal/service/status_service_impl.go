package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/planner"
	"github.com/midoradev/study-planner/internal/repository"
)

type statusService struct {
	plan  PlanService
	tasks repository.TaskRepo
	cfg   planner.RiskConfig
}

func NewStatusService(plan PlanService, tasks repository.TaskRepo) StatusService {
	return &statusService{plan: plan, tasks: tasks, cfg: planner.DefaultRiskConfig()}
}

// RiskReport classifies every task. A fresh plan is generated first so
// the classifier sees which tasks could not be fully placed this week.
func (s *statusService) RiskReport(ctx context.Context, req app.RiskRequest) (*app.RiskReport, error) {
	now := resolveNow(req.Now)

	plan, err := s.plan.GeneratePlan(ctx, app.PlanRequest{Now: &now})
	if err != nil {
		return nil, fmt.Errorf("generating plan for risk input: %w", err)
	}

	all, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	report := &app.RiskReport{GeneratedAt: now}
	for _, row := range all {
		t := row.Task
		unplaced := plan.RemainderFor(t.ID)
		level := planner.Classify(t, now, unplaced > 0, s.cfg)

		view := app.TaskRiskView{
			TaskID:         t.ID,
			TaskTitle:      t.Title,
			SubjectID:      t.SubjectID,
			SubjectName:    row.SubjectName,
			Priority:       t.Priority,
			Level:          level,
			RemainingMin:   t.RemainingMin,
			UnscheduledMin: unplaced,
		}
		if t.Deadline != nil {
			ds := t.Deadline.Format("2006-01-02")
			view.Deadline = &ds
			days := planner.DaysUntil(now, *t.Deadline)
			view.DaysLeft = &days
			if t.RemainingMin > 0 {
				view.SuggestedTodayMin = suggestedToday(t.RemainingMin, days)
			}
		}
		report.Tasks = append(report.Tasks, view)

		switch level {
		case domain.RiskOverdue:
			report.CountsOverdue++
		case domain.RiskHigh:
			report.CountsHigh++
		case domain.RiskMedium:
			report.CountsMedium++
		case domain.RiskLow:
			report.CountsLow++
		default:
			report.CountsNone++
		}
	}

	sortRiskViews(report.Tasks)
	return report, nil
}

// suggestedToday spreads the remaining effort evenly over the days left.
func suggestedToday(remainingMin, daysLeft int) int {
	if daysLeft < 1 {
		daysLeft = 1
	}
	return (remainingMin + daysLeft - 1) / daysLeft
}

func sortRiskViews(views []app.TaskRiskView) {
	sort.SliceStable(views, func(i, j int) bool {
		ri, rj := domain.RiskRank(views[i].Level), domain.RiskRank(views[j].Level)
		if ri != rj {
			return ri > rj
		}
		if (views[i].Deadline == nil) != (views[j].Deadline == nil) {
			return views[i].Deadline != nil
		}
		if views[i].Deadline != nil && views[j].Deadline != nil && *views[i].Deadline != *views[j].Deadline {
			return *views[i].Deadline < *views[j].Deadline
		}
		return views[i].TaskTitle < views[j].TaskTitle
	})
}
