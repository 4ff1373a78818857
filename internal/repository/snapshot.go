package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/phasewise/internal/db"
	"github.com/alexanderramin/phasewise/internal/domain"
)

// snapshotStore holds the queries shared by both dialects. They are written
// with '?' placeholders and rebound per dialect.
type snapshotStore struct {
	db      db.DBTX
	dialect db.Dialect
}

// SQLiteSnapshotRepo implements SnapshotRepo on SQLite.
type SQLiteSnapshotRepo struct{ snapshotStore }

func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{snapshotStore{db: conn, dialect: db.SQLite}}
}

// PostgresSnapshotRepo implements SnapshotRepo on PostgreSQL.
type PostgresSnapshotRepo struct{ snapshotStore }

func NewPostgresSnapshotRepo(conn db.DBTX) *PostgresSnapshotRepo {
	return &PostgresSnapshotRepo{snapshotStore{db: conn, dialect: db.Postgres}}
}

func (r *snapshotStore) q(query string) string {
	return db.Rebind(r.dialect, query)
}

func (r *snapshotStore) Get(ctx context.Context, userID string) (*domain.Snapshot, error) {
	s := &domain.Snapshot{UserID: userID, Tasks: []domain.Task{}, Schedule: []domain.ScheduledTask{}}

	err := r.db.QueryRowContext(ctx,
		r.q(`SELECT cycle_day, last_period_date, cycle_length FROM snapshots WHERE user_id = ?`), userID,
	).Scan(&s.CycleDay, &s.LastPeriodDate, &s.CycleLength)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot %q: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	if s.Tasks, err = r.listTasks(ctx, userID); err != nil {
		return nil, err
	}
	if s.Schedule, err = r.listSchedule(ctx, userID); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *snapshotStore) listTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, r.q(`SELECT id, title, category, is_fixed, duration, date,
		start_time, end_time, deadline, repeat_frequency, is_project
		FROM snapshot_tasks WHERE user_id = ? ORDER BY seq`), userID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshot tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Category, &t.IsFixed, &t.Duration, &t.Date,
			&t.StartTime, &t.EndTime, &t.Deadline, &t.RepeatFrequency, &t.IsProject); err != nil {
			return nil, fmt.Errorf("scanning snapshot task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *snapshotStore) listSchedule(ctx context.Context, userID string) ([]domain.ScheduledTask, error) {
	rows, err := r.db.QueryContext(ctx, r.q(`SELECT id, task_id, title, category, date, start_time,
		end_time, phase, energy_level, energy_type, is_project, repeats
		FROM snapshot_schedule WHERE user_id = ? ORDER BY seq`), userID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshot schedule: %w", err)
	}
	defer rows.Close()

	schedule := []domain.ScheduledTask{}
	for rows.Next() {
		var t domain.ScheduledTask
		if err := rows.Scan(&t.ID, &t.TaskID, &t.Title, &t.Category, &t.Date, &t.StartTime,
			&t.EndTime, &t.Phase, &t.EnergyLevel, &t.EnergyType, &t.IsProject, &t.Repeats); err != nil {
			return nil, fmt.Errorf("scanning scheduled task: %w", err)
		}
		schedule = append(schedule, t)
	}
	return schedule, rows.Err()
}

func (r *snapshotStore) Save(ctx context.Context, s *domain.Snapshot) error {
	_, err := r.db.ExecContext(ctx, r.q(`INSERT INTO snapshots (user_id, cycle_day, last_period_date, cycle_length, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			cycle_day = excluded.cycle_day,
			last_period_date = excluded.last_period_date,
			cycle_length = excluded.cycle_length,
			updated_at = excluded.updated_at`),
		s.UserID, s.CycleDay, s.LastPeriodDate, cycleLengthOrDefault(s.CycleLength), nowUTC())
	if err != nil {
		return fmt.Errorf("upserting snapshot: %w", err)
	}

	if err := r.clearChildren(ctx, s.UserID); err != nil {
		return err
	}

	for i, t := range s.Tasks {
		_, err := r.db.ExecContext(ctx, r.q(`INSERT INTO snapshot_tasks (user_id, seq, id, title, category,
			is_fixed, duration, date, start_time, end_time, deadline, repeat_frequency, is_project)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			s.UserID, i, t.ID, t.Title, t.Category, t.IsFixed, t.Duration, t.Date,
			t.StartTime, t.EndTime, t.Deadline, string(t.RepeatFrequency), t.IsProject)
		if err != nil {
			return fmt.Errorf("inserting snapshot task %q: %w", t.ID, err)
		}
	}

	for i, t := range s.Schedule {
		_, err := r.db.ExecContext(ctx, r.q(`INSERT INTO snapshot_schedule (user_id, seq, id, task_id, title,
			category, date, start_time, end_time, phase, energy_level, energy_type, is_project, repeats)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			s.UserID, i, t.ID, t.TaskID, t.Title, t.Category, t.Date, t.StartTime, t.EndTime,
			string(t.Phase), string(t.EnergyLevel), string(t.EnergyType), t.IsProject, t.Repeats)
		if err != nil {
			return fmt.Errorf("inserting scheduled task %q: %w", t.ID, err)
		}
	}
	return nil
}

func (r *snapshotStore) clearChildren(ctx context.Context, userID string) error {
	for _, table := range []string{"snapshot_tasks", "snapshot_schedule"} {
		if _, err := r.db.ExecContext(ctx, r.q(`DELETE FROM `+table+` WHERE user_id = ?`), userID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

func (r *snapshotStore) Delete(ctx context.Context, userID string) error {
	if err := r.clearChildren(ctx, userID); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, r.q(`DELETE FROM snapshots WHERE user_id = ?`), userID)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("snapshot %q: %w", userID, ErrNotFound)
	}
	return nil
}
