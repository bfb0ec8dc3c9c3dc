package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// timestampLayout is a fixed-width nanosecond RFC 3339 variant. Unlike
// time.RFC3339Nano it never trims trailing zeros, so stored UTC
// timestamps sort lexicographically in chronological order and ORDER BY
// on them is safe.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// parseTimestamp reads a stored timestamp, accepting the second-granular
// RFC 3339 form written by earlier schema versions.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Parse(time.RFC3339, s)
	}
	return t, nil
}

// parseNullableTime parses a sql.NullString into a *time.Time using the
// given layout. NULL, empty, and unparseable values all map to nil.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func parseNullableTimestamp(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := parseTimestamp(s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite-storable value,
// nil pointer becoming SQL NULL.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
