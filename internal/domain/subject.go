package domain

import (
	"fmt"
	"time"
)

type Subject struct {
	ID              string
	Name            string
	WeeklyTargetMin int
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the user-editable fields. The weekly target is advisory
// (tasks may exceed it), but it must not be negative.
func (s *Subject) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("subject name is required")
	}
	if s.WeeklyTargetMin < 0 {
		return fmt.Errorf("weekly target must be >= 0 minutes, got %d", s.WeeklyTargetMin)
	}
	return nil
}
