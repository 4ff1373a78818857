package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/domain"
)

// FormatPhaseCard renders the phase of a cycle day with its energy profile.
func FormatPhaseCard(day int) string {
	phase := cycle.PhaseOf(day)
	accent := PhaseColor(phase)

	var b strings.Builder
	b.WriteString(accent.Bold(true).Render(string(phase)))
	b.WriteString("  " + Dim(cycle.Subtitle(phase)) + "\n\n")
	b.WriteString(fmt.Sprintf("Cycle day   %d of %d\n", cycle.Normalize(day), cycle.ModelLength))
	b.WriteString(fmt.Sprintf("Energy      %s\n", EnergyIndicator(cycle.EnergyFor(phase))))
	b.WriteString(fmt.Sprintf("Day starts  %02d:00\n\n", cycle.DayStartHour(phase)))
	b.WriteString(cycle.Guidance(phase))

	return RenderBox("Cycle phase", b.String())
}

// FormatPhaseStrip renders the four phases in order, marking the one day
// falls in.
func FormatPhaseStrip(day int) string {
	current := cycle.PhaseOf(day)
	parts := make([]string, 0, len(domain.AllPhases))
	for _, p := range domain.AllPhases {
		if p == current {
			parts = append(parts, PhaseColor(p).Bold(true).Render("["+string(p)+"]"))
			continue
		}
		parts = append(parts, Dim(string(p)))
	}
	return strings.Join(parts, Dim(" → "))
}
