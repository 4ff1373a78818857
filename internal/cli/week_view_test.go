package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/alexanderramin/phasewise/internal/teatest"
	"github.com/alexanderramin/phasewise/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func weekSchedule() []domain.ScheduledTask {
	return []domain.ScheduledTask{
		testutil.NewTestScheduledTask("Yoga", monday, "07:00", "08:00"),
		testutil.NewTestScheduledTask("Gym", monday.AddDate(0, 0, 2), "18:00", "19:00"),
		testutil.NewTestScheduledTask("Reading", monday, "06:00", "06:30"),
	}
}

func TestWeekView_RendersSevenDays(t *testing.T) {
	d := teatest.New(t, newWeekModel(weekSchedule(), monday, 10), teatest.WithSize(100, 40))

	d.ViewContains("WEEK OF MON 10 MAR", "Mon 10 Mar", "Sun 16 Mar", "Follicular", "day 10", "Gym", "nothing scheduled")

	view := d.View()
	assert.Less(t, strings.Index(view, "Reading"), strings.Index(view, "Yoga"), "entries are ordered by start time")
	assert.Contains(t, view, "day 14")
	assert.Contains(t, view, "Ovulatory")
}

func TestWeekView_NavigatesWeeks(t *testing.T) {
	d := teatest.New(t, newWeekModel(weekSchedule(), monday, 10), teatest.WithSize(100, 40))

	d.Press("n")
	d.ViewContains("WEEK OF MON 17 MAR", "day 17", "Luteal")
	assert.NotContains(t, d.View(), "Gym")

	d.Press("left")
	d.Press("p")
	d.ViewContains("WEEK OF MON 03 MAR", "day 3", "Menstrual")

	d.Press("right")
	d.ViewContains("WEEK OF MON 10 MAR", "Gym")
}

func TestWeekView_WrapsCycle(t *testing.T) {
	d := teatest.New(t, newWeekModel(nil, monday, 26), teatest.WithSize(100, 40))

	d.ViewContains("day 26", "day 28", "day 1", "day 4", "Menstrual")
	assert.NotContains(t, d.View(), "day 29")
}

func TestWeekView_ScrollsSmallWindow(t *testing.T) {
	d := teatest.New(t, newWeekModel(weekSchedule(), monday, 10), teatest.WithSize(80, 8))

	assert.NotContains(t, d.View(), "Sun 16 Mar")
	for i := 0; i < 10; i++ {
		d.Press("pgdown")
	}
	d.ViewContains("Sun 16 Mar")
	assert.NotContains(t, d.View(), "Reading")
}

func TestWeekView_Quit(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			d := teatest.New(t, newWeekModel(nil, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 1))
			d.Press(key)
			assert.True(t, d.Quitting)
		})
	}
}
