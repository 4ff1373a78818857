package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/phasewise/internal/conflict"
	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/db"
	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/alexanderramin/phasewise/internal/intelligence"
	"github.com/alexanderramin/phasewise/internal/repository"
	"github.com/alexanderramin/phasewise/internal/scheduler"
)

// ErrNothingToResolve is returned by Resolve when none of the ids are in
// the stored schedule.
var ErrNothingToResolve = errors.New("no schedule entries match the given ids")

type planService struct {
	agent    intelligence.ScheduleAgent
	dialect  db.Dialect
	conn     db.DBTX
	uow      db.UnitOfWork
	ids      domain.IDGenerator
	observer UseCaseObserver
}

// NewPlanService wires plan generation to snapshot storage. A nil agent
// uses the rule-based generator.
func NewPlanService(
	agent intelligence.ScheduleAgent,
	dialect db.Dialect,
	conn db.DBTX,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	if agent == nil {
		agent = intelligence.NewRuleBasedAgent()
	}
	return &planService{
		agent:    agent,
		dialect:  dialect,
		conn:     conn,
		uow:      uow,
		ids:      domain.DeterministicIDs{},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *planService) Generate(ctx context.Context, req contract.GenerateRequest) (resp *contract.HormonalAgentResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"cycle_day": req.Input.CycleDay,
		"date":      req.ReferenceDate.Format(domain.DateFormat),
	}
	defer func() { s.observe(ctx, "generate-plan", startedAt, err, fields) }()

	req.Input = req.Input.Canonical()
	if err = req.Input.Validate(); err != nil {
		return nil, err
	}
	resp, err = s.agent.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}
	fields["activities"] = len(resp.Activities)
	fields["unscheduled"] = len(resp.UnscheduledActivities)
	return resp, nil
}

func (s *planService) Preview(_ context.Context, resp *contract.HormonalAgentResponse) (*Preview, error) {
	if resp == nil {
		return nil, errors.New("preview: nil response")
	}
	schedule := scheduler.ToScheduledTasks(resp.Activities, s.ids)
	return &Preview{
		Schedule:  schedule,
		Conflicts: conflict.FindConflicts(schedule),
	}, nil
}

func (s *planService) Accept(ctx context.Context, userID string, cycleDay int, schedule []domain.ScheduledTask) (snap *domain.Snapshot, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"user":      userID,
		"cycle_day": cycleDay,
		"entries":   len(schedule),
	}
	defer func() { s.observe(ctx, "accept-schedule", startedAt, err, fields) }()

	if cycleDay < 1 || cycleDay > domain.DefaultCycleLength {
		return nil, &contract.AgentError{
			Code:    contract.ErrInvalidCycleDay,
			Message: fmt.Sprintf("cycle day %d is outside 1..%d", cycleDay, domain.DefaultCycleLength),
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSnapshotRepo(s.dialect, tx)

		current, err := s.loadOrEmpty(ctx, repo, userID)
		if err != nil {
			return err
		}

		merged := mergeSchedule(current.Schedule, schedule)
		if conflicts := conflict.FindConflicts(merged); len(conflicts) > 0 {
			fields["conflicts"] = len(conflicts)
			return &ConflictError{Conflicts: conflicts}
		}

		current.CycleDay = cycleDay
		current.Schedule = merged
		current.Tasks = appendMissingTasks(current.Tasks, schedule)
		if err := repo.Save(ctx, current); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		snap = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *planService) Resolve(ctx context.Context, userID string, removeIDs []string) (res *ResolveResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"user": userID,
		"ids":  len(removeIDs),
	}
	defer func() { s.observe(ctx, "resolve-conflicts", startedAt, err, fields) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSnapshotRepo(s.dialect, tx)

		current, err := repo.Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}

		kept := conflict.RemoveByIDs(current.Schedule, removeIDs)
		removed := len(current.Schedule) - len(kept)
		if removed == 0 {
			return ErrNothingToResolve
		}
		current.Schedule = kept
		if err := repo.Save(ctx, current); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}

		res = &ResolveResult{
			Snapshot:  current,
			Removed:   removed,
			Conflicts: conflict.FindConflicts(kept),
		}
		fields["removed"] = removed
		fields["remaining_conflicts"] = len(res.Conflicts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *planService) Snapshot(ctx context.Context, userID string) (*domain.Snapshot, error) {
	return s.loadOrEmpty(ctx, repository.NewSnapshotRepo(s.dialect, s.conn), userID)
}

func (s *planService) CycleDay(snap *domain.Snapshot, today time.Time) int {
	if snap == nil {
		return 1
	}
	return cycle.Normalize(cycle.DayFromSnapshot(*snap, today))
}

func (s *planService) loadOrEmpty(ctx context.Context, repo repository.SnapshotRepo, userID string) (*domain.Snapshot, error) {
	snap, err := repo.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return emptySnapshot(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return snap, nil
}

func emptySnapshot(userID string) *domain.Snapshot {
	return &domain.Snapshot{
		UserID:      userID,
		CycleDay:    1,
		CycleLength: domain.DefaultCycleLength,
		Tasks:       []domain.Task{},
		Schedule:    []domain.ScheduledTask{},
	}
}

// mergeSchedule drops stored entries on any date incoming covers, then
// appends incoming. The result is ordered by date and start time.
func mergeSchedule(stored, incoming []domain.ScheduledTask) []domain.ScheduledTask {
	dates := make(map[string]bool, len(incoming))
	for _, t := range incoming {
		dates[t.Date] = true
	}
	merged := make([]domain.ScheduledTask, 0, len(stored)+len(incoming))
	for _, t := range stored {
		if !dates[t.Date] {
			merged = append(merged, t)
		}
	}
	merged = append(merged, incoming...)
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Date != merged[j].Date {
			return merged[i].Date < merged[j].Date
		}
		return merged[i].StartTime < merged[j].StartTime
	})
	return merged
}

// appendMissingTasks adds a task-list entry for every scheduled task whose
// TaskID is not yet listed.
func appendMissingTasks(tasks []domain.Task, schedule []domain.ScheduledTask) []domain.Task {
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		seen[t.ID] = true
	}
	for _, st := range schedule {
		if st.TaskID == "" || seen[st.TaskID] {
			continue
		}
		seen[st.TaskID] = true
		tasks = append(tasks, domain.Task{
			ID:        st.TaskID,
			Title:     st.Title,
			Category:  st.Category,
			Duration:  entryDuration(st),
			IsProject: st.IsProject,
		})
	}
	return tasks
}

func entryDuration(t domain.ScheduledTask) string {
	start, err1 := domain.ParseClock(t.StartTime)
	end, err2 := domain.ParseClock(t.EndTime)
	if err1 != nil || err2 != nil || end <= start {
		return ""
	}
	return domain.FormatClock(end - start)
}
