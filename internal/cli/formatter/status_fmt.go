package formatter

import (
	"fmt"
	"strings"

	"github.com/midoradev/study-planner/internal/app"
)

// FormatRiskReport renders the risk dashboard table and a summary line.
func FormatRiskReport(report *app.RiskReport) string {
	var b strings.Builder

	if len(report.Tasks) == 0 {
		return Dim("No tasks.")
	}

	headers := []string{"TASK", "SUBJECT", "PRI", "DUE", "LEFT", "RISK", "TODAY"}
	rows := make([][]string, 0, len(report.Tasks))
	for _, v := range report.Tasks {
		due := Dim("--")
		if v.Deadline != nil && v.DaysLeft != nil {
			due = fmt.Sprintf("%s %s", StyleFg.Render(*v.Deadline), RelativeDays(*v.DaysLeft))
		}
		today := Dim("--")
		if v.SuggestedTodayMin > 0 {
			today = StyleGreen.Render(FormatMinutes(v.SuggestedTodayMin))
		}
		rows = append(rows, []string{
			Bold(v.TaskTitle),
			StyleFg.Render(v.SubjectName),
			PriorityPill(v.Priority),
			due,
			FormatMinutes(v.RemainingMin),
			RiskIndicator(v.Level),
			today,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n\n")

	parts := []string{
		StyleRed.Render(fmt.Sprintf("%d overdue", report.CountsOverdue)),
		StyleRed.Render(fmt.Sprintf("%d high", report.CountsHigh)),
		StyleYellow.Render(fmt.Sprintf("%d medium", report.CountsMedium)),
		StyleBlue.Render(fmt.Sprintf("%d low", report.CountsLow)),
		StyleDim.Render(fmt.Sprintf("%d none", report.CountsNone)),
	}
	b.WriteString(strings.Join(parts, Dim(" | ")))

	return b.String()
}
