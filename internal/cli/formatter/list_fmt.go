package formatter

import (
	"fmt"
	"strings"

	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/repository"
)

// FormatSubjectList renders subjects with their weekly targets.
func FormatSubjectList(subjects []*domain.Subject) string {
	rows := make([][]string, 0, len(subjects))
	for _, s := range subjects {
		notes := Dim("--")
		if s.Notes != "" {
			notes = StyleFg.Render(s.Notes)
		}
		rows = append(rows, []string{
			Dim(shortID(s.ID)),
			Bold(s.Name),
			FormatMinutes(s.WeeklyTargetMin) + Dim("/wk"),
			notes,
		})
	}
	return RenderTable([]string{"ID", "NAME", "TARGET", "NOTES"}, rows)
}

// FormatTaskList renders tasks joined with their subject names.
func FormatTaskList(tasks []repository.PendingTask) string {
	rows := make([][]string, 0, len(tasks))
	for _, pt := range tasks {
		t := pt.Task
		state := StyleGreen.Render("✓ done")
		if !t.Done {
			state = FormatMinutes(t.RemainingMin) + Dim(" left")
		}
		due := Dim("--")
		if t.Deadline != nil {
			due = StyleFg.Render(ShortDate(*t.Deadline))
		}
		rows = append(rows, []string{
			Dim(shortID(t.ID)),
			Bold(t.Title),
			StyleFg.Render(pt.SubjectName),
			PriorityPill(t.Priority),
			due,
			state,
		})
	}
	return RenderTable([]string{"ID", "TASK", "SUBJECT", "PRI", "DUE", "STATE"}, rows)
}

// FormatRuleList renders weekly availability windows.
func FormatRuleList(rules []domain.AvailabilityRule) string {
	rows := make([][]string, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, []string{
			Dim(shortID(r.ID)),
			Bold(r.Weekday.String()),
			fmt.Sprintf("%s-%s", domain.FormatClock(r.StartMin), domain.FormatClock(r.EndMin)),
			FormatMinutes(r.EndMin - r.StartMin),
		})
	}
	return RenderTable([]string{"ID", "DAY", "WINDOW", "LEN"}, rows)
}

// FormatBusyList renders imported calendar blocks.
func FormatBusyList(busy []domain.BusyInterval) string {
	rows := make([][]string, 0, len(busy))
	for _, b := range busy {
		rows = append(rows, []string{
			StyleFg.Render(b.Start.Format("2006-01-02 15:04")),
			StyleFg.Render(b.End.Format("15:04")),
			Bold(b.Title),
		})
	}
	return RenderTable([]string{"START", "END", "TITLE"}, rows)
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
