package service_test

import (
	"testing"

	"github.com/midoradev/study-planner/internal/db"
	"github.com/midoradev/study-planner/internal/repository"
	"github.com/midoradev/study-planner/internal/service"
	"github.com/midoradev/study-planner/internal/testutil"
)

// stack wires every service over one in-memory database.
type stack struct {
	subjects service.SubjectService
	tasks    service.TaskService
	rules    service.RuleService
	plan     service.PlanService
	status   service.StatusService
	progress service.ProgressService
	calendar service.CalendarService

	busyRepo repository.BusyRepo
}

func newStack(t *testing.T) *stack {
	t.Helper()
	database := testutil.NewTestDB(t)

	subjectRepo := repository.NewSubjectRepo(database)
	taskRepo := repository.NewTaskRepo(database)
	ruleRepo := repository.NewRuleRepo(database)
	busyRepo := repository.NewBusyRepo(database)
	uow := db.NewUnitOfWork(database)

	plan := service.NewPlanService(ruleRepo, busyRepo, taskRepo, subjectRepo)

	return &stack{
		subjects: service.NewSubjectService(subjectRepo),
		tasks:    service.NewTaskService(taskRepo, subjectRepo),
		rules:    service.NewRuleService(ruleRepo),
		plan:     plan,
		status:   service.NewStatusService(plan, taskRepo),
		progress: service.NewProgressService(uow),
		calendar: service.NewCalendarService(busyRepo, uow),
		busyRepo: busyRepo,
	}
}
