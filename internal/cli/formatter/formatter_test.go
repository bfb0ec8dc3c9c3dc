package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/domain"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h30m", FormatMinutes(90))
	assert.Equal(t, "0m", FormatMinutes(0))
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"A", "BB"},
		[][]string{{"longer", "x"}, {"y", "z"}},
	)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[2], "longer")
}

func TestFormatPlanGroupsByDay(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	plan := &app.PlanResponse{
		GeneratedAt: monday,
		WeekStart:   monday,
		SlotMin:     120,
		Sessions: []app.Session{
			{
				TaskID: "t1", TaskTitle: "Essay draft", SubjectName: "History",
				Start:   monday.Add(18 * time.Hour),
				End:     monday.Add(19 * time.Hour),
				Minutes: 60,
			},
		},
		Remainders: []app.UnscheduledRemainder{
			{TaskID: "t2", TaskTitle: "Problem set", Minutes: 30},
		},
		Warnings: []string{"History: weekly target exceeded"},
	}

	out := FormatPlan(plan)
	assert.Contains(t, out, "Monday Jan 5")
	assert.Contains(t, out, "18:00-19:00")
	assert.Contains(t, out, "Essay draft")
	assert.Contains(t, out, "Problem set")
	assert.Contains(t, out, "weekly target exceeded")
}

func TestFormatRiskReportCounts(t *testing.T) {
	deadline := "2026-01-07"
	days := 2
	report := &app.RiskReport{
		Tasks: []app.TaskRiskView{
			{
				TaskTitle: "Essay draft", SubjectName: "History",
				Priority: domain.PriorityHigh, Level: domain.RiskHigh,
				Deadline: &deadline, DaysLeft: &days,
				RemainingMin: 120, SuggestedTodayMin: 60,
			},
		},
		CountsHigh: 1,
	}

	out := FormatRiskReport(report)
	assert.Contains(t, out, "Essay draft")
	assert.Contains(t, out, "2026-01-07")
	assert.Contains(t, out, "1 high")
	assert.Contains(t, out, "0 overdue")
}

func TestFormatRuleList(t *testing.T) {
	out := FormatRuleList([]domain.AvailabilityRule{
		{ID: "abc12345-rest", Weekday: time.Monday, StartMin: 18 * 60, EndMin: 20 * 60},
	})
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "18:00-20:00")
	assert.Contains(t, out, "2h")
}
