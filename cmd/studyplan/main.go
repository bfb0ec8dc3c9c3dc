package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/midoradev/study-planner/internal/cli"
	"github.com/midoradev/study-planner/internal/db"
	"github.com/midoradev/study-planner/internal/profile"
	"github.com/midoradev/study-planner/internal/repository"
	"github.com/midoradev/study-planner/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Data dir: env var or default ~/.studyplan
	dataDir := os.Getenv("STUDYPLAN_DATA")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".studyplan")
	}

	profiles := profile.NewManager(dataDir)
	active := profile.Sanitize(os.Getenv("STUDYPLAN_PROFILE"))

	database, err := db.Open(profiles.Path(active))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	subjectRepo := repository.NewSubjectRepo(database)
	taskRepo := repository.NewTaskRepo(database)
	ruleRepo := repository.NewRuleRepo(database)
	busyRepo := repository.NewBusyRepo(database)
	uow := db.NewUnitOfWork(database)

	planSvc := service.NewPlanService(ruleRepo, busyRepo, taskRepo, subjectRepo)

	app := &cli.App{
		Subjects: service.NewSubjectService(subjectRepo),
		Tasks:    service.NewTaskService(taskRepo, subjectRepo),
		Rules:    service.NewRuleService(ruleRepo),
		Plan:     planSvc,
		Status:   service.NewStatusService(planSvc, taskRepo),
		Progress: service.NewProgressService(uow),
		Calendar: service.NewCalendarService(busyRepo, uow),

		Profiles:      profiles,
		ActiveProfile: active,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
