package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midoradev/study-planner/internal/app"
	"github.com/midoradev/study-planner/internal/domain"
)

const busyCalendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Example Corp//Calendar//EN
BEGIN:VEVENT
UID:evt-1
DTSTAMP:20260101T000000Z
DTSTART:20260105T190000Z
DTEND:20260105T193000Z
SUMMARY:Dentist
END:VEVENT
END:VCALENDAR
`

func TestImportBusyReplacesSnapshot(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	n, err := s.calendar.ImportBusy(ctx, strings.NewReader(busyCalendar))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	busy, err := s.calendar.ListBusy(ctx)
	require.NoError(t, err)
	require.Len(t, busy, 1)
	assert.Equal(t, "Dentist", busy[0].Title)

	// A second import replaces rather than appends.
	n, err = s.calendar.ImportBusy(ctx, strings.NewReader(busyCalendar))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	busy, err = s.calendar.ListBusy(ctx)
	require.NoError(t, err)
	assert.Len(t, busy, 1)
}

func TestImportBusyBadInputKeepsOldSnapshot(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	_, err := s.calendar.ImportBusy(ctx, strings.NewReader(busyCalendar))
	require.NoError(t, err)

	_, err = s.calendar.ImportBusy(ctx, strings.NewReader("not a calendar"))
	require.Error(t, err)

	busy, err := s.calendar.ListBusy(ctx)
	require.NoError(t, err)
	assert.Len(t, busy, 1)
}

func TestExportScheduleEndToEnd(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	subj, err := s.subjects.Create(ctx, "History", 300, "")
	require.NoError(t, err)
	_, err = s.tasks.Create(ctx, subj.ID, "Essay draft", 60, nil, domain.PriorityMedium)
	require.NoError(t, err)
	_, err = s.rules.Add(ctx, time.Monday, 18*60, 20*60)
	require.NoError(t, err)

	plan, err := s.plan.GeneratePlan(ctx, app.PlanRequest{Now: &monday})
	require.NoError(t, err)
	require.NotEmpty(t, plan.Sessions)

	var buf bytes.Buffer
	require.NoError(t, s.calendar.ExportSchedule(ctx, plan, &buf))
	assert.Contains(t, buf.String(), "SUMMARY:Study: History")
}
