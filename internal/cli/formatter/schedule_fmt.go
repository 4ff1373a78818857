package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/phasewise/internal/domain"
)

// FormatSchedule renders stored schedule entries grouped by day, with the
// short ids that resolve accepts.
func FormatSchedule(tasks []domain.ScheduledTask) string {
	if len(tasks) == 0 {
		return Dim("No schedule stored. Run 'phasewise plan --accept' to create one.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Schedule"))
	b.WriteString("\n\n")

	dates, byDate := groupByDate(tasks)
	for _, d := range dates {
		b.WriteString(Bold(DayLabel(d)))
		b.WriteString("\n")
		rows := make([][]string, 0, len(byDate[d]))
		for _, t := range byDate[d] {
			rows = append(rows, []string{
				TruncID(t.ID),
				TimeRange(t.StartTime, t.EndTime),
				t.Title,
				EnergyTypeBadge(t.EnergyType),
			})
		}
		b.WriteString(RenderTable([]string{"ID", "TIME", "TASK", "ENERGY"}, rows))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatConflicts renders overlap clusters. An empty list renders a short
// all-clear line.
func FormatConflicts(conflicts []domain.ScheduleConflict) string {
	if len(conflicts) == 0 {
		return StyleGreen.Render("✔ No conflicts") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("▲ %d conflict(s)", len(conflicts))))
	b.WriteString("\n")
	for _, c := range conflicts {
		b.WriteString(fmt.Sprintf("  %s %s\n", Bold(DayLabel(c.Date)), StyleRed.Render(c.TimeRange)))
		for _, t := range c.Tasks {
			b.WriteString(fmt.Sprintf("    %s  %s  %s\n", TruncID(t.ID), TimeRange(t.StartTime, t.EndTime), t.Title))
		}
	}
	b.WriteString(Dim("Remove entries with 'phasewise resolve <id>...'"))
	b.WriteString("\n")
	return b.String()
}
