package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DayLabel renders a schedule date as "Mon 10 Mar". Unparseable dates are
// returned unchanged.
func DayLabel(date string) string {
	t, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format("Mon 02 Jan")
}

// TimeRange renders "09:00–10:30".
func TimeRange(start, end string) string {
	return start + "–" + end
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatHours renders a fractional hour count as "1h 30m".
func FormatHours(hours float64) string {
	min := domain.HoursToMinutes(hours)
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// groupByDate splits entries by date, preserving first-seen date order.
func groupByDate(tasks []domain.ScheduledTask) ([]string, map[string][]domain.ScheduledTask) {
	var dates []string
	byDate := make(map[string][]domain.ScheduledTask)
	for _, t := range tasks {
		if _, ok := byDate[t.Date]; !ok {
			dates = append(dates, t.Date)
		}
		byDate[t.Date] = append(byDate[t.Date], t)
	}
	return dates, byDate
}
