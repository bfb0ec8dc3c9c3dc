package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/midoradev/study-planner/internal/app"
)

// FormatPlan renders a weekly plan grouped by day, followed by
// unplaced work and warnings.
func FormatPlan(plan *app.PlanResponse) string {
	var b strings.Builder

	weekEnd := plan.WeekStart.AddDate(0, 0, 6)
	b.WriteString(Header(fmt.Sprintf("Week %s - %s", ShortDate(plan.WeekStart), ShortDate(weekEnd))))
	b.WriteString("\n")

	scheduled := 0
	for _, s := range plan.Sessions {
		scheduled += s.Minutes
	}
	b.WriteString(Dim(fmt.Sprintf("Capacity %s, scheduled %s",
		FormatMinutes(plan.SlotMin), FormatMinutes(scheduled))))
	b.WriteString("\n\n")

	if len(plan.Sessions) == 0 {
		b.WriteString(Dim("Nothing to schedule."))
		b.WriteString("\n")
	}

	for i := 0; i < 7; i++ {
		day := plan.WeekStart.AddDate(0, 0, i)
		var rows [][]string
		for _, s := range plan.Sessions {
			if !sameDate(s.Start, day) {
				continue
			}
			rows = append(rows, []string{
				fmt.Sprintf("%s-%s", s.Start.Format("15:04"), s.End.Format("15:04")),
				Bold(s.SubjectName),
				StyleFg.Render(s.TaskTitle),
				FormatMinutes(s.Minutes),
			})
		}
		if len(rows) == 0 {
			continue
		}
		b.WriteString(StyleBlue.Render(day.Format("Monday Jan 2")))
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"TIME", "SUBJECT", "TASK", "LEN"}, rows))
		b.WriteString("\n\n")
	}

	if len(plan.Remainders) > 0 {
		b.WriteString(StyleYellow.Render("Did not fit this week:"))
		b.WriteString("\n")
		for _, rem := range plan.Remainders {
			b.WriteString(fmt.Sprintf("  %s %s unplaced\n", rem.TaskTitle, FormatMinutes(rem.Minutes)))
		}
	}

	for _, w := range plan.Warnings {
		b.WriteString(StyleYellow.Render("! " + w))
		b.WriteString("\n")
	}

	return b.String()
}

func sameDate(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
