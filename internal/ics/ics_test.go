package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midoradev/study-planner/internal/app"
)

const sampleCalendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Example Corp//Calendar//EN
BEGIN:VEVENT
UID:evt-2
DTSTAMP:20260101T000000Z
DTSTART:20260105T190000Z
DTEND:20260105T193000Z
SUMMARY:Dentist
END:VEVENT
BEGIN:VEVENT
UID:evt-1
DTSTAMP:20260101T000000Z
DTSTART:20260105T090000Z
DTEND:20260105T100000Z
SUMMARY:Standup
END:VEVENT
BEGIN:VEVENT
UID:evt-zero-length
DTSTAMP:20260101T000000Z
DTSTART:20260106T090000Z
DTEND:20260106T090000Z
SUMMARY:Instant
END:VEVENT
BEGIN:VEVENT
UID:evt-untitled
DTSTAMP:20260101T000000Z
DTSTART:20260106T100000Z
DTEND:20260106T110000Z
END:VEVENT
END:VCALENDAR
`

func TestParseBusy(t *testing.T) {
	intervals, err := ParseBusy(strings.NewReader(sampleCalendar))
	require.NoError(t, err)
	require.Len(t, intervals, 3)

	// Sorted by start; the zero-length event is dropped.
	assert.Equal(t, "Standup", intervals[0].Title)
	assert.Equal(t, "Dentist", intervals[1].Title)
	assert.Equal(t, "Untitled", intervals[2].Title)

	want := time.Date(2026, 1, 5, 19, 0, 0, 0, time.UTC)
	assert.True(t, intervals[1].Start.Equal(want))
	assert.Equal(t, 30*time.Minute, intervals[1].End.Sub(intervals[1].Start))
}

func TestParseBusyRejectsGarbage(t *testing.T) {
	_, err := ParseBusy(strings.NewReader("not a calendar"))
	assert.Error(t, err)
}

func TestWriteSchedule(t *testing.T) {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	plan := &app.PlanResponse{
		GeneratedAt: monday,
		WeekStart:   monday,
		Sessions: []app.Session{
			{
				TaskID:      "t1",
				TaskTitle:   "Essay draft",
				SubjectName: "History",
				Start:       monday.Add(18 * time.Hour),
				End:         monday.Add(19 * time.Hour),
				Minutes:     60,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(plan, &buf))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Study: History")
	assert.Contains(t, out, "DESCRIPTION:Essay draft")
	assert.Contains(t, out, "DTSTART:20260105T180000Z")

	// The output parses back into the same interval shape.
	parsed, err := ParseBusy(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.True(t, parsed[0].Start.Equal(plan.Sessions[0].Start))
}
