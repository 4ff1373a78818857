package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alexanderramin/phasewise/internal/db"
	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/alexanderramin/phasewise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

func retryBusy(fn func() error) error {
	var err error
	for attempt := 0; attempt < 20; attempt++ {
		err = fn()
		if err == nil || !isBusy(err) {
			return err
		}
	}
	return err
}

func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

// snapshotForRound stores round+1 schedule entries so readers can check that
// the cycle day and the schedule come from the same save.
func snapshotForRound(round int) *domain.Snapshot {
	s := testutil.NewTestSnapshot("ana", testutil.WithCycleDay(round%28+1))
	for i := 0; i <= round%28; i++ {
		s.Schedule = append(s.Schedule,
			testutil.NewTestScheduledTask(fmt.Sprintf("Task-%d", i), monday, "09:00", "10:00"))
	}
	return s
}

// TestConcurrentAccess_ReadersSeeWholeSaves verifies that readers running in
// a transaction never observe a half-written snapshot while saves happen.
func TestConcurrentAccess_ReadersSeeWholeSaves(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	uow := db.NewUnitOfWork(database)

	require.NoError(t, NewSQLiteSnapshotRepo(database).Save(ctx, snapshotForRound(0)))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for round := 1; round < 30; round++ {
			err := retryBusy(func() error {
				return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
					return NewSQLiteSnapshotRepo(tx).Save(ctx, snapshotForRound(round))
				})
			})
			if err != nil {
				t.Errorf("writer round %d: %v", round, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				var got *domain.Snapshot
				err := retryBusy(func() error {
					return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
						var err error
						got, err = NewSQLiteSnapshotRepo(tx).Get(ctx, "ana")
						return err
					})
				})
				if err != nil {
					t.Errorf("reader %d: %v", reader, err)
					return
				}
				if len(got.Schedule) != got.CycleDay {
					t.Errorf("reader %d: cycle day %d with %d schedule rows", reader, got.CycleDay, len(got.Schedule))
				}
			}
		}(r)
	}

	wg.Wait()

	final, err := NewSQLiteSnapshotRepo(database).Get(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, 29%28+1, final.CycleDay)
}
