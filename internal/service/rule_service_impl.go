package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/planner"
	"github.com/midoradev/study-planner/internal/repository"
)

type ruleService struct {
	rules repository.RuleRepo
}

func NewRuleService(rules repository.RuleRepo) RuleService {
	return &ruleService{rules: rules}
}

// Add validates the new rule against the stored set before persisting.
// A rule that overlaps an existing one on the same weekday is rejected
// whole; nothing is written.
func (s *ruleService) Add(ctx context.Context, weekday time.Weekday, startMin, endMin int) (*domain.AvailabilityRule, error) {
	now := time.Now().UTC()
	rule := domain.AvailabilityRule{
		ID:        uuid.New().String(),
		Weekday:   weekday,
		StartMin:  startMin,
		EndMin:    endMin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	existing, err := s.rules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading availability rules: %w", err)
	}
	if err := planner.ValidateRules(append(existing, rule)); err != nil {
		return nil, err
	}

	if err := s.rules.Create(ctx, &rule); err != nil {
		return nil, fmt.Errorf("creating availability rule: %w", err)
	}
	return &rule, nil
}

func (s *ruleService) List(ctx context.Context) ([]domain.AvailabilityRule, error) {
	return s.rules.List(ctx)
}

func (s *ruleService) Delete(ctx context.Context, id string) error {
	return s.rules.Delete(ctx, id)
}
