// Package ics converts between iCalendar data and the planner's busy
// interval / session types. The planner core never sees the wire format;
// it consumes and produces plain interval lists.
package ics

import (
	"fmt"
	"io"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/midoradev/study-planner/internal/domain"
)

// ParseBusy decodes an .ics snapshot into busy intervals. Events without
// usable start/end times, and zero or negative length events, are
// skipped rather than failing the whole import. The result is sorted by
// start time.
func ParseBusy(r io.Reader) ([]domain.BusyInterval, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	now := time.Now().UTC()
	var out []domain.BusyInterval
	for _, event := range cal.Events() {
		start, err := event.GetStartAt()
		if err != nil {
			continue
		}
		end, err := event.GetEndAt()
		if err != nil {
			continue
		}
		if !end.After(start) {
			continue
		}

		title := "Untitled"
		if prop := event.GetProperty(ical.ComponentPropertySummary); prop != nil && prop.Value != "" {
			title = prop.Value
		}

		out = append(out, domain.BusyInterval{
			ID:        uuid.New().String(),
			Title:     title,
			Start:     start,
			End:       end,
			CreatedAt: now,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}
