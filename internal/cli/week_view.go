package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/phasewise/internal/cli/formatter"
	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	weekDays     = 7
	weekChrome   = 4
	weekDefaultW = 80
	weekDefaultH = 24
)

// weekModel is a scrollable seven-day view of the stored schedule with the
// cycle phase of each day.
type weekModel struct {
	byDate   map[string][]domain.ScheduledTask
	start    time.Time
	cycleDay int
	viewport viewport.Model
}

func newWeekModel(schedule []domain.ScheduledTask, start time.Time, cycleDay int) weekModel {
	byDate := make(map[string][]domain.ScheduledTask)
	for _, t := range schedule {
		byDate[t.Date] = append(byDate[t.Date], t)
	}
	for _, tasks := range byDate {
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].StartTime < tasks[j].StartTime })
	}

	m := weekModel{
		byDate:   byDate,
		start:    start,
		cycleDay: cycle.Normalize(cycleDay),
		viewport: viewport.New(weekDefaultW, weekDefaultH-weekChrome),
	}
	m.render()
	return m
}

func (m weekModel) Init() tea.Cmd {
	return nil
}

func (m weekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-weekChrome, 1)
		m.render()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n", "right":
			m.shift(weekDays)
			return m, nil
		case "p", "left":
			m.shift(-weekDays)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *weekModel) shift(days int) {
	m.start = m.start.AddDate(0, 0, days)
	m.cycleDay = cycle.Normalize(m.cycleDay + days)
	m.render()
	m.viewport.GotoTop()
}

func (m weekModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Week of " + formatter.DayLabel(m.start.Format(domain.DateFormat))))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("↑/↓ scroll · n/p next/previous week · q quit"))
	return b.String()
}

func (m *weekModel) render() {
	var b strings.Builder
	for i := 0; i < weekDays; i++ {
		date := m.start.AddDate(0, 0, i).Format(domain.DateFormat)
		day := cycle.Normalize(m.cycleDay + i)
		phase := cycle.PhaseOf(day)

		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			formatter.Bold(formatter.DayLabel(date)),
			formatter.PhaseColor(phase).Render(string(phase)),
			formatter.Dim(fmt.Sprintf("day %d", day))))

		tasks := m.byDate[date]
		if len(tasks) == 0 {
			b.WriteString("  " + formatter.Dim("nothing scheduled") + "\n")
		}
		for _, t := range tasks {
			b.WriteString(fmt.Sprintf("  %s  %s %s\n",
				formatter.TimeRange(t.StartTime, t.EndTime), formatter.EnergyIcon(t.EnergyType), t.Title))
		}
		if i < weekDays-1 {
			b.WriteString("\n")
		}
	}
	m.viewport.SetContent(b.String())
}
