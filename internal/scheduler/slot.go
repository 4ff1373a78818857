package scheduler

import (
	"sort"

	"github.com/alexanderramin/phasewise/internal/domain"
)

// Slot is a free window in minutes from midnight, [Start, End).
type Slot struct {
	Start int
	End   int
}

func (s Slot) StartTime() string { return domain.FormatClock(s.Start) }
func (s Slot) EndTime() string   { return domain.FormatClock(s.End) }

type interval struct {
	start, end int
}

// FindSlot returns the earliest window of durationHours on date that starts
// at or after startHour, avoids every busy interval and ends by 22:00.
//
// Busy intervals are the fixed activities that carry a start time (they
// recur on every date) and the placed activities dated on date. Intervals
// are swept in start order with a cursor that never moves backward.
func FindSlot(date string, durationHours float64, placed []domain.GeneratedActivity, fixed []domain.FixedActivity, startHour int) (Slot, bool) {
	dur := domain.HoursToMinutes(durationHours)
	if dur <= 0 {
		return Slot{}, false
	}

	busy := busyIntervals(date, placed, fixed)
	cursor := startHour * 60
	for _, b := range busy {
		if cursor+dur <= b.start {
			return Slot{Start: cursor, End: cursor + dur}, true
		}
		cursor = max(cursor, b.end)
	}
	if cursor+dur <= domain.DayEndMinute {
		return Slot{Start: cursor, End: cursor + dur}, true
	}
	return Slot{}, false
}

func busyIntervals(date string, placed []domain.GeneratedActivity, fixed []domain.FixedActivity) []interval {
	var busy []interval
	for _, f := range fixed {
		if f.StartTime == "" {
			continue
		}
		start, err := domain.ParseClock(f.StartTime)
		if err != nil {
			continue
		}
		busy = append(busy, interval{start: start, end: start + domain.HoursToMinutes(f.DurationHours)})
	}
	for _, a := range placed {
		if a.Date != date {
			continue
		}
		start, err := domain.ParseClock(a.StartTime)
		if err != nil {
			continue
		}
		end, err := domain.ParseClock(a.EndTime)
		if err != nil {
			continue
		}
		busy = append(busy, interval{start: start, end: end})
	}
	sort.SliceStable(busy, func(i, j int) bool { return busy[i].start < busy[j].start })
	return busy
}
