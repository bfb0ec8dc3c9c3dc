package ics

import (
	"fmt"
	"io"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/midoradev/study-planner/internal/app"
)

const (
	productID    = "-//Study Planner//Local//"
	calendarName = "Study Plan"
)

// WriteSchedule serializes a generated plan as an iCalendar file, one
// VEVENT per session. Sessions arrive sorted and non-overlapping from
// the allocator, so they are emitted as-is.
func WriteSchedule(plan *app.PlanResponse, w io.Writer) error {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetVersion("2.0")
	cal.SetXWRCalName(calendarName)

	for _, session := range plan.Sessions {
		event := cal.AddEvent(uuid.New().String())
		event.SetDtStampTime(plan.GeneratedAt)
		event.SetStartAt(session.Start)
		event.SetEndAt(session.End)
		event.SetSummary(fmt.Sprintf("Study: %s", session.SubjectName))
		event.SetDescription(session.TaskTitle)
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serializing calendar: %w", err)
	}
	return nil
}
