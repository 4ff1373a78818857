// Package conflict detects time overlaps in a schedule.
package conflict

import (
	"github.com/alexanderramin/phasewise/internal/domain"
)

// timed is a parsed task. idx is its position within the date group, so
// tasks with empty or repeated ids stay distinct.
type timed struct {
	idx        int
	task       domain.ScheduledTask
	start, end int
}

type cluster struct {
	date       string
	start, end int
	members    []domain.ScheduledTask
	order      []int
	has        map[int]bool
}

func (c *cluster) add(t timed) {
	if c.has[t.idx] {
		return
	}
	c.has[t.idx] = true
	c.order = append(c.order, t.idx)
	c.members = append(c.members, t.task)
}

// FindConflicts groups same-date tasks whose [start, end) windows overlap.
// Tasks that merely touch (one ends when the next starts) do not conflict.
// Dates are reported in first-appearance order and tasks with unparseable
// times are ignored.
func FindConflicts(schedule []domain.ScheduledTask) []domain.ScheduleConflict {
	var dates []string
	byDate := make(map[string][]timed)
	for _, t := range schedule {
		start, err := domain.ParseClock(t.StartTime)
		if err != nil {
			continue
		}
		end, err := domain.ParseClock(t.EndTime)
		if err != nil {
			continue
		}
		if _, seen := byDate[t.Date]; !seen {
			dates = append(dates, t.Date)
		}
		byDate[t.Date] = append(byDate[t.Date], timed{idx: len(byDate[t.Date]), task: t, start: start, end: end})
	}

	var conflicts []domain.ScheduleConflict
	for _, date := range dates {
		for _, c := range clustersFor(date, byDate[date]) {
			conflicts = append(conflicts, domain.ScheduleConflict{
				Tasks:     c.members,
				Date:      c.date,
				TimeRange: domain.FormatClock(c.start) + " - " + domain.FormatClock(c.end),
			})
		}
	}
	return conflicts
}

func clustersFor(date string, tasks []timed) []*cluster {
	var clusters []*cluster
	for i := 0; i < len(tasks); i++ {
		for j := i + 1; j < len(tasks); j++ {
			a, b := tasks[i], tasks[j]
			if !(a.start < b.end && a.end > b.start) {
				continue
			}
			clusters = join(clusters, date, tasks, a, b)
		}
	}
	return clusters
}

// join folds the overlapping pair a, b into the first cluster holding
// either of them, absorbing any later cluster the pair bridges. Without a
// match it opens a cluster spanning the pair.
func join(clusters []*cluster, date string, byIdx []timed, a, b timed) []*cluster {
	var target *cluster
	kept := clusters[:0]
	for _, c := range clusters {
		if !c.has[a.idx] && !c.has[b.idx] {
			kept = append(kept, c)
			continue
		}
		if target == nil {
			target = c
			kept = append(kept, c)
			continue
		}
		for _, idx := range c.order {
			target.add(byIdx[idx])
		}
	}
	if target == nil {
		target = &cluster{
			date:  date,
			start: min(a.start, b.start),
			end:   max(a.end, b.end),
			has:   make(map[int]bool),
		}
		kept = append(kept, target)
	}
	target.add(a)
	target.add(b)
	return kept
}

// HasConflicts reports whether schedule contains any overlap.
func HasConflicts(schedule []domain.ScheduledTask) bool {
	return len(FindConflicts(schedule)) > 0
}

// RemoveByIDs returns schedule without the entries whose id is listed. The
// input slice is not modified.
func RemoveByIDs(schedule []domain.ScheduledTask, ids []string) []domain.ScheduledTask {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make([]domain.ScheduledTask, 0, len(schedule))
	for _, t := range schedule {
		if !drop[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
