package cli

import (
	"github.com/midoradev/study-planner/internal/profile"
	"github.com/midoradev/study-planner/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Subjects service.SubjectService
	Tasks    service.TaskService
	Rules    service.RuleService
	Plan     service.PlanService
	Status   service.StatusService
	Progress service.ProgressService
	Calendar service.CalendarService

	Profiles      *profile.Manager
	ActiveProfile string

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms and the review TUI require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyplan",
		Short: "Weekly study planner and risk tracker",
	}

	root.AddCommand(
		newSubjectCmd(app),
		newTaskCmd(app),
		newRuleCmd(app),
		newPlanCmd(app),
		newStatusCmd(app),
		newCalendarCmd(app),
		newProfileCmd(app),
		newReviewCmd(app),
	)

	return root
}
