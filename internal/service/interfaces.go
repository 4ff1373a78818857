package service

import (
	"context"
	"time"

	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/domain"
)

// Preview is a generated plan converted into schedule entries, together with
// the overlaps found among them.
type Preview struct {
	Schedule  []domain.ScheduledTask
	Conflicts []domain.ScheduleConflict
}

// ResolveResult reports what Resolve removed and what still overlaps.
type ResolveResult struct {
	Snapshot  *domain.Snapshot
	Removed   int
	Conflicts []domain.ScheduleConflict
}

type PlanService interface {
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.HormonalAgentResponse, error)
	Preview(ctx context.Context, resp *contract.HormonalAgentResponse) (*Preview, error)
	Accept(ctx context.Context, userID string, cycleDay int, schedule []domain.ScheduledTask) (*domain.Snapshot, error)
	Resolve(ctx context.Context, userID string, removeIDs []string) (*ResolveResult, error)
	Snapshot(ctx context.Context, userID string) (*domain.Snapshot, error)
	// CycleDay is the stored user's day on the 28-day model, so longer
	// stored cycles fold back onto 1..28.
	CycleDay(s *domain.Snapshot, today time.Time) int
}
