package app

import (
	"time"

	"github.com/midoradev/study-planner/internal/domain"
)

type RiskRequest struct {
	Now *time.Time
}

func NewRiskRequest() RiskRequest {
	return RiskRequest{}
}

type TaskRiskView struct {
	TaskID            string
	TaskTitle         string
	SubjectID         string
	SubjectName       string
	Priority          domain.Priority
	Level             domain.RiskLevel
	Deadline          *string // YYYY-MM-DD
	DaysLeft          *int
	RemainingMin      int
	UnscheduledMin    int
	SuggestedTodayMin int
}

type RiskReport struct {
	GeneratedAt   time.Time
	Tasks         []TaskRiskView
	CountsOverdue int
	CountsHigh    int
	CountsMedium  int
	CountsLow     int
	CountsNone    int
}
