package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations run in order on every open. Statements must be idempotent;
// ALTER TABLE additions are tolerated via the duplicate-column check in
// Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL UNIQUE,
		weekly_target_min INTEGER NOT NULL DEFAULT 0,
		notes             TEXT NOT NULL DEFAULT '',
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		subject_id    TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		estimated_min INTEGER NOT NULL,
		remaining_min INTEGER NOT NULL,
		snapshot_min  INTEGER NOT NULL DEFAULT 0,
		deadline      TEXT,
		priority      TEXT NOT NULL DEFAULT 'medium'
		              CHECK(priority IN ('low','medium','high')),
		done          INTEGER NOT NULL DEFAULT 0,
		completed_at  TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_subject ON tasks(subject_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline)`,

	`CREATE TABLE IF NOT EXISTS availability_rules (
		id         TEXT PRIMARY KEY,
		weekday    INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		start_min  INTEGER NOT NULL,
		end_min    INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS busy_intervals (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL DEFAULT '',
		start_at   TEXT NOT NULL,
		end_at     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_busy_start ON busy_intervals(start_at)`,
}

// Migrate applies all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
