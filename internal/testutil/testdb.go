package testutil

import (
	"database/sql"
	"testing"

	"github.com/midoradev/study-planner/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied, closed automatically when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
