package db

import (
	"database/sql"
	"errors"
	"fmt"
)

type migration struct {
	version int
	name    string
	stmts   []string
}

// migrations use SQL both SQLite and PostgreSQL accept. Append only.
var migrations = []migration{
	{1, "snapshots", []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			user_id          TEXT PRIMARY KEY,
			cycle_day        INTEGER NOT NULL CHECK (cycle_day BETWEEN 1 AND 28),
			last_period_date TEXT NOT NULL DEFAULT '',
			cycle_length     INTEGER NOT NULL DEFAULT 28,
			updated_at       TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS snapshot_tasks (
			user_id          TEXT NOT NULL REFERENCES snapshots(user_id) ON DELETE CASCADE,
			seq              INTEGER NOT NULL,
			id               TEXT NOT NULL,
			title            TEXT NOT NULL,
			category         TEXT NOT NULL DEFAULT '',
			is_fixed         BOOLEAN NOT NULL DEFAULT FALSE,
			duration         TEXT NOT NULL DEFAULT '',
			date             TEXT NOT NULL DEFAULT '',
			start_time       TEXT NOT NULL DEFAULT '',
			end_time         TEXT NOT NULL DEFAULT '',
			deadline         TEXT NOT NULL DEFAULT '',
			repeat_frequency TEXT NOT NULL DEFAULT '',
			is_project       BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (user_id, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS snapshot_schedule (
			user_id      TEXT NOT NULL REFERENCES snapshots(user_id) ON DELETE CASCADE,
			seq          INTEGER NOT NULL,
			id           TEXT NOT NULL,
			task_id      TEXT NOT NULL DEFAULT '',
			title        TEXT NOT NULL,
			category     TEXT NOT NULL DEFAULT '',
			date         TEXT NOT NULL,
			start_time   TEXT NOT NULL,
			end_time     TEXT NOT NULL,
			phase        TEXT NOT NULL DEFAULT '',
			energy_level TEXT NOT NULL DEFAULT '',
			energy_type  TEXT NOT NULL DEFAULT '',
			is_project   BOOLEAN NOT NULL DEFAULT FALSE,
			repeats      BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (user_id, seq)
		)`,
	}},
	{2, "schedule date index", []string{
		`CREATE INDEX IF NOT EXISTS idx_snapshot_schedule_date ON snapshot_schedule(user_id, date)`,
	}},
}

// LatestVersion is the schema version a fully migrated database reports.
func LatestVersion() int {
	return migrations[len(migrations)-1].version
}

// Migrate applies every migration newer than the recorded schema version,
// each in its own transaction.
func Migrate(db *sql.DB, d Dialect) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`); err != nil {
		return fmt.Errorf("creating schema_version: %w", err)
	}
	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := apply(db, d, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
	}
	return nil
}

// SchemaVersion returns the recorded schema version, 0 for a fresh database.
func SchemaVersion(db *sql.DB) (int, error) {
	var v sql.NullInt64
	err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return int(v.Int64), nil
}

func apply(db *sql.DB, d Dialect, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range m.stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(Rebind(d, `INSERT INTO schema_version (version) VALUES (?)`), m.version); err != nil {
		return err
	}
	return tx.Commit()
}
