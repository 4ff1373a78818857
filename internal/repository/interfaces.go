package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/phasewise/internal/db"
	"github.com/alexanderramin/phasewise/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// SnapshotRepo stores one snapshot per user: cycle data, task list and
// accepted schedule. Save replaces the previous snapshot wholesale and
// issues several statements, so callers run it inside a UnitOfWork.
type SnapshotRepo interface {
	Get(ctx context.Context, userID string) (*domain.Snapshot, error)
	Save(ctx context.Context, s *domain.Snapshot) error
	Delete(ctx context.Context, userID string) error
}

// NewSnapshotRepo returns the implementation for dialect d.
func NewSnapshotRepo(d db.Dialect, conn db.DBTX) SnapshotRepo {
	if d == db.Postgres {
		return NewPostgresSnapshotRepo(conn)
	}
	return NewSQLiteSnapshotRepo(conn)
}
