// Package pdf renders a finalized weekly plan as a printable document.
// It consumes the schedule and risk report as-is and owns no planning
// logic.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/midoradev/study-planner/internal/app"
)

// WeekPlan renders the schedule and risk list for one week.
func WeekPlan(plan *app.PlanResponse, report *app.RiskReport) ([]byte, error) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(15, 15, 15)
	doc.AddPage()

	weekEnd := plan.WeekStart.AddDate(0, 0, 6)
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, fmt.Sprintf("Study Plan: %s - %s",
		plan.WeekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02")),
		"", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, fmt.Sprintf("Free capacity: %s | Generated: %s",
		formatMinutes(plan.SlotMin), plan.GeneratedAt.Format("2006-01-02 15:04")),
		"", 1, "L", false, 0, "")
	doc.Ln(4)

	if report != nil && len(report.Tasks) > 0 {
		writeRiskTable(doc, report)
	}
	writeScheduleTables(doc, plan)

	if len(plan.Remainders) > 0 {
		doc.Ln(4)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(0, 7, "Did not fit this week", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 9)
		for _, rem := range plan.Remainders {
			doc.CellFormat(0, 6, fmt.Sprintf("%s: %s unplaced", rem.TaskTitle, formatMinutes(rem.Minutes)),
				"", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRiskTable(doc *fpdf.Fpdf, report *app.RiskReport) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 7, "Risk list", "", 1, "L", false, 0, "")

	widths := []float64{40, 55, 25, 20, 25, 20}
	headers := []string{"Subject", "Task", "Deadline", "Days", "Remaining", "Level"}

	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(230, 230, 230)
	for i, h := range headers {
		doc.CellFormat(widths[i], 6, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 8)
	for _, v := range report.Tasks {
		deadline, days := "-", "-"
		if v.Deadline != nil {
			deadline = *v.Deadline
		}
		if v.DaysLeft != nil {
			days = strconv.Itoa(*v.DaysLeft)
		}
		cells := []string{v.SubjectName, v.TaskTitle, deadline, days, formatMinutes(v.RemainingMin), string(v.Level)}
		for i, c := range cells {
			doc.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(4)
}

func writeScheduleTables(doc *fpdf.Fpdf, plan *app.PlanResponse) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 7, "Schedule", "", 1, "L", false, 0, "")

	byDay := map[string][]app.Session{}
	for _, s := range plan.Sessions {
		key := s.Start.Format("2006-01-02")
		byDay[key] = append(byDay[key], s)
	}

	for i := 0; i < 7; i++ {
		day := plan.WeekStart.AddDate(0, 0, i)
		sessions := byDay[day.Format("2006-01-02")]
		if len(sessions) == 0 {
			continue
		}

		doc.SetFont("Helvetica", "B", 9)
		doc.CellFormat(0, 6, day.Format("Monday 2006-01-02"), "", 1, "L", false, 0, "")

		doc.SetFont("Helvetica", "", 8)
		for _, s := range sessions {
			doc.CellFormat(30, 6, fmt.Sprintf("%s-%s", s.Start.Format("15:04"), s.End.Format("15:04")),
				"1", 0, "L", false, 0, "")
			doc.CellFormat(45, 6, s.SubjectName, "1", 0, "L", false, 0, "")
			doc.CellFormat(75, 6, s.TaskTitle, "1", 0, "L", false, 0, "")
			doc.CellFormat(20, 6, formatMinutes(s.Minutes), "1", 0, "R", false, 0, "")
			doc.Ln(-1)
		}
		doc.Ln(2)
	}

	if len(plan.Sessions) == 0 {
		doc.SetFont("Helvetica", "I", 9)
		doc.CellFormat(0, 6, "Nothing scheduled.", "", 1, "L", false, 0, "")
	}
}

func formatMinutes(min int) string {
	if min >= 60 && min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	if min >= 60 {
		return fmt.Sprintf("%dh%02dm", min/60, min%60)
	}
	return fmt.Sprintf("%dm", min)
}
