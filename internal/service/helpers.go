package service

import "time"

// resolveNow unwraps an optional pinned clock, falling back to UTC wall
// time. Request structs carry the clock so plans and risk reports are
// reproducible in tests.
func resolveNow(pinned *time.Time) time.Time {
	if pinned != nil {
		return *pinned
	}
	return time.Now().UTC()
}
