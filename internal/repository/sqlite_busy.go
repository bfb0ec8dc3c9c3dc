package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/midoradev/study-planner/internal/db"
	"github.com/midoradev/study-planner/internal/domain"
)

// SQLiteBusyRepo stores imported calendar snapshots. A reimport replaces
// the whole set (DeleteAll then Create inside one transaction).
type SQLiteBusyRepo struct {
	db db.DBTX
}

func NewBusyRepo(dbtx db.DBTX) *SQLiteBusyRepo {
	return &SQLiteBusyRepo{db: dbtx}
}

func (r *SQLiteBusyRepo) Create(ctx context.Context, b *domain.BusyInterval) error {
	query := `INSERT INTO busy_intervals (id, title, start_at, end_at, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.Title,
		b.Start.Format(time.RFC3339), b.End.Format(time.RFC3339),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting busy interval: %w", err)
	}
	return nil
}

func (r *SQLiteBusyRepo) List(ctx context.Context) ([]domain.BusyInterval, error) {
	query := `SELECT id, title, start_at, end_at, created_at FROM busy_intervals ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing busy intervals: %w", err)
	}
	defer rows.Close()

	var intervals []domain.BusyInterval
	for rows.Next() {
		var b domain.BusyInterval
		var startAt, endAt, createdAt string
		if err := rows.Scan(&b.ID, &b.Title, &startAt, &endAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning busy interval: %w", err)
		}
		if b.Start, err = time.Parse(time.RFC3339, startAt); err != nil {
			return nil, fmt.Errorf("parsing busy start: %w", err)
		}
		if b.End, err = time.Parse(time.RFC3339, endAt); err != nil {
			return nil, fmt.Errorf("parsing busy end: %w", err)
		}
		if b.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing busy created_at: %w", err)
		}
		intervals = append(intervals, b)
	}
	return intervals, rows.Err()
}

func (r *SQLiteBusyRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM busy_intervals`); err != nil {
		return fmt.Errorf("clearing busy intervals: %w", err)
	}
	return nil
}
