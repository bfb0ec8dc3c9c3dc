package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/midoradev/study-planner/internal/db"
	"github.com/midoradev/study-planner/internal/domain"
)

// SQLiteRuleRepo implements RuleRepo on a SQLite database or transaction.
type SQLiteRuleRepo struct {
	db db.DBTX
}

func NewRuleRepo(dbtx db.DBTX) *SQLiteRuleRepo {
	return &SQLiteRuleRepo{db: dbtx}
}

func (r *SQLiteRuleRepo) Create(ctx context.Context, rule *domain.AvailabilityRule) error {
	query := `INSERT INTO availability_rules (id, weekday, start_min, end_min, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rule.ID, int(rule.Weekday), rule.StartMin, rule.EndMin,
		rule.CreatedAt.Format(time.RFC3339), rule.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting availability rule: %w", err)
	}
	return nil
}

func (r *SQLiteRuleRepo) List(ctx context.Context) ([]domain.AvailabilityRule, error) {
	query := `SELECT id, weekday, start_min, end_min, created_at, updated_at
		FROM availability_rules ORDER BY weekday, start_min`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing availability rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.AvailabilityRule
	for rows.Next() {
		var rule domain.AvailabilityRule
		var weekday int
		var createdAt, updatedAt string
		if err := rows.Scan(&rule.ID, &weekday, &rule.StartMin, &rule.EndMin, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning availability rule: %w", err)
		}
		rule.Weekday = time.Weekday(weekday)
		if rule.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing rule created_at: %w", err)
		}
		if rule.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing rule updated_at: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *SQLiteRuleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM availability_rules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting availability rule: %w", err)
	}
	return requireRow(res, "availability rule", id)
}
