package testutil

import (
	"database/sql"
	"os"
	"testing"

	"github.com/alexanderramin/phasewise/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestPostgres connects to PHASEWISE_TEST_POSTGRES_DSN, skipping the test
// when it is unset. Snapshot tables are emptied before and after the test.
func NewTestPostgres(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("PHASEWISE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PHASEWISE_TEST_POSTGRES_DSN not set")
	}
	database, err := db.OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test postgres: %v", err)
	}
	truncate := func() {
		_, _ = database.Exec(`TRUNCATE snapshot_schedule, snapshot_tasks, snapshots`)
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewUnitOfWork(database)
}
