package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/domain"
)

// SnapshotOption customises NewTestSnapshot.
type SnapshotOption func(*domain.Snapshot)

func WithCycleDay(day int) SnapshotOption {
	return func(s *domain.Snapshot) { s.CycleDay = day }
}

func WithLastPeriod(date string) SnapshotOption {
	return func(s *domain.Snapshot) { s.LastPeriodDate = date }
}

func WithSchedule(tasks ...domain.ScheduledTask) SnapshotOption {
	return func(s *domain.Snapshot) { s.Schedule = append(s.Schedule, tasks...) }
}

func WithTasks(tasks ...domain.Task) SnapshotOption {
	return func(s *domain.Snapshot) { s.Tasks = append(s.Tasks, tasks...) }
}

// NewTestSnapshot returns an empty snapshot on cycle day 1.
func NewTestSnapshot(userID string, opts ...SnapshotOption) *domain.Snapshot {
	s := &domain.Snapshot{
		UserID:      userID,
		CycleDay:    1,
		CycleLength: domain.DefaultCycleLength,
		Tasks:       []domain.Task{},
		Schedule:    []domain.ScheduledTask{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScheduledTaskOption customises NewTestScheduledTask.
type ScheduledTaskOption func(*domain.ScheduledTask)

func WithCategory(c string) ScheduledTaskOption {
	return func(t *domain.ScheduledTask) { t.Category = c }
}

func WithID(id string) ScheduledTaskOption {
	return func(t *domain.ScheduledTask) { t.ID = id }
}

// NewTestScheduledTask builds a task on date between start and end. The id
// is derived the same way the generator derives it.
func NewTestScheduledTask(title string, date time.Time, start, end string, opts ...ScheduledTaskOption) domain.ScheduledTask {
	d := date.Format(domain.DateFormat)
	phase := domain.PhaseFollicular
	t := domain.ScheduledTask{
		ID:          domain.DeterministicIDs{}.NewID(d, start, title),
		TaskID:      domain.TaskIDFromTitle(title),
		Title:       title,
		Category:    "general",
		Date:        d,
		StartTime:   start,
		EndTime:     end,
		Phase:       phase,
		EnergyLevel: cycle.EnergyFor(phase),
		EnergyType:  domain.EnergyDeepWork,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestTask builds a task-list entry.
func NewTestTask(n int, title string) domain.Task {
	return domain.Task{
		ID:              fmt.Sprintf("task-%d", n),
		Title:           title,
		Category:        "general",
		Duration:        "01:00",
		RepeatFrequency: domain.RepeatNone,
	}
}
