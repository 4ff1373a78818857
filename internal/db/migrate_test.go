package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, SQLite))
	require.NoError(t, Migrate(db, SQLite))

	v, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&rows))
	assert.Equal(t, len(migrations), rows, "each version recorded once")
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"snapshots", "snapshot_tasks", "snapshot_schedule", "schema_version"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	var idx string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_snapshot_schedule_date'`).Scan(&idx)
	require.NoError(t, err)
}

func TestMigrate_ResumesFromRecordedVersion(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	// Pretend only the first migration ran.
	require.NoError(t, apply(db, SQLite, migrations[0]))
	v, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, Migrate(db, SQLite))
	v, err = SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)
}

func TestMigrate_CycleDayCheck(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO snapshots (user_id, cycle_day, updated_at) VALUES ('u', 29, 'now')`)
	assert.Error(t, err, "cycle_day outside 1..28 must be rejected")
}

func TestMigrate_CascadesOnSnapshotDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO snapshots (user_id, cycle_day, updated_at) VALUES ('u', 3, 'now')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO snapshot_schedule (user_id, seq, id, title, date, start_time, end_time) VALUES ('u', 0, 'x', 'Yoga', '2025-03-10', '09:00', '10:00')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM snapshots WHERE user_id = 'u'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM snapshot_schedule`).Scan(&n))
	assert.Zero(t, n)
}

func TestOpenDB_FileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "phasewise.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestRebind(t *testing.T) {
	q := `SELECT * FROM t WHERE a = ? AND b IN (?, ?)`
	assert.Equal(t, q, Rebind(SQLite, q))
	assert.Equal(t, `SELECT * FROM t WHERE a = $1 AND b IN ($2, $3)`, Rebind(Postgres, q))
	assert.Equal(t, `SELECT 1`, Rebind(Postgres, `SELECT 1`))
}
