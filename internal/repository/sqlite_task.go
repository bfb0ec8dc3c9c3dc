package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/midoradev/study-planner/internal/db"
	"github.com/midoradev/study-planner/internal/domain"
)

const taskColumns = `id, subject_id, title, estimated_min, remaining_min, snapshot_min,
		deadline, priority, done, completed_at, created_at, updated_at`

const taskColumnsAliased = `t.id, t.subject_id, t.title, t.estimated_min, t.remaining_min,
		t.snapshot_min, t.deadline, t.priority, t.done, t.completed_at, t.created_at, t.updated_at`

// SQLiteTaskRepo implements TaskRepo on a SQLite database or transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.SubjectID, t.Title, t.EstimatedMin, t.RemainingMin, t.SnapshotMin,
		nullableTimeToString(t.Deadline, dateLayout),
		string(t.Priority),
		boolToInt(t.Done),
		nullableTimeToString(t.CompletedAt, timestampLayout),
		t.CreatedAt.Format(timestampLayout),
		t.UpdatedAt.Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) ListBySubject(ctx context.Context, subjectID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE subject_id = ? ORDER BY created_at, id`, subjectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by subject: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteTaskRepo) ListAll(ctx context.Context) ([]PendingTask, error) {
	return r.listJoined(ctx, ``)
}

// ListPending returns undone tasks with effort remaining, in creation
// order. That order is the allocator's stable tie-break, so it must not
// change.
func (r *SQLiteTaskRepo) ListPending(ctx context.Context) ([]PendingTask, error) {
	return r.listJoined(ctx, `WHERE t.done = 0 AND t.remaining_min > 0`)
}

func (r *SQLiteTaskRepo) listJoined(ctx context.Context, where string) ([]PendingTask, error) {
	query := `SELECT ` + taskColumnsAliased + `, s.name
		FROM tasks t
		JOIN subjects s ON t.subject_id = s.id
		` + where + `
		ORDER BY t.created_at, t.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var out []PendingTask
	for rows.Next() {
		var t domain.Task
		var priorityStr string
		var deadlineStr, completedAtStr sql.NullString
		var doneInt int
		var createdAt, updatedAt, subjectName string

		err := rows.Scan(
			&t.ID, &t.SubjectID, &t.Title, &t.EstimatedMin, &t.RemainingMin,
			&t.SnapshotMin, &deadlineStr, &priorityStr, &doneInt, &completedAtStr,
			&createdAt, &updatedAt, &subjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		t.Priority = domain.Priority(priorityStr)
		t.Done = intToBool(doneInt)
		t.Deadline = parseNullableTime(deadlineStr, dateLayout)
		t.CompletedAt = parseNullableTimestamp(completedAtStr)
		if t.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("parsing task created_at: %w", err)
		}
		if t.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
			return nil, fmt.Errorf("parsing task updated_at: %w", err)
		}

		out = append(out, PendingTask{Task: t, SubjectName: subjectName})
	}
	return out, rows.Err()
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET subject_id = ?, title = ?, estimated_min = ?, remaining_min = ?,
		snapshot_min = ?, deadline = ?, priority = ?, done = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.SubjectID, t.Title, t.EstimatedMin, t.RemainingMin, t.SnapshotMin,
		nullableTimeToString(t.Deadline, dateLayout),
		string(t.Priority),
		boolToInt(t.Done),
		nullableTimeToString(t.CompletedAt, timestampLayout),
		t.UpdatedAt.Format(timestampLayout),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRow(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRow(res, "task", id)
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var priorityStr string
	var deadlineStr, completedAtStr sql.NullString
	var doneInt int
	var createdAt, updatedAt string

	err := row.Scan(
		&t.ID, &t.SubjectID, &t.Title, &t.EstimatedMin, &t.RemainingMin,
		&t.SnapshotMin, &deadlineStr, &priorityStr, &doneInt, &completedAtStr,
		&createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Priority = domain.Priority(priorityStr)
	t.Done = intToBool(doneInt)
	t.Deadline = parseNullableTime(deadlineStr, dateLayout)
	t.CompletedAt = parseNullableTimestamp(completedAtStr)
	if t.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", err)
	}
	if t.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing task updated_at: %w", err)
	}
	return &t, nil
}
