package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/domain"
)

// FormatPlan renders a generated weekly plan: placed activities by day,
// declined activities, recommendations and the energy forecast.
func FormatPlan(resp *contract.HormonalAgentResponse, cycleDay int, phase domain.CyclePhase) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Weekly plan · day %d · %s", cycleDay, phase)))
	b.WriteString("\n\n")

	if len(resp.Activities) == 0 {
		b.WriteString(Dim("No activities could be placed this week."))
		b.WriteString("\n")
	} else {
		dates, byDate := groupActivities(resp.Activities)
		for _, d := range dates {
			b.WriteString(Bold(DayLabel(d)))
			b.WriteString("\n")
			rows := make([][]string, 0, len(byDate[d]))
			for _, a := range byDate[d] {
				rows = append(rows, []string{
					TimeRange(a.StartTime, a.EndTime),
					a.Title,
					StyleBlue.Render(a.Category),
					EnergyIndicator(a.EnergyLevel),
				})
			}
			b.WriteString(RenderTable([]string{"TIME", "ACTIVITY", "CATEGORY", "ENERGY"}, rows))
			b.WriteString("\n")
		}
	}

	if len(resp.UnscheduledActivities) > 0 {
		b.WriteString(FormatUnscheduled(resp.UnscheduledActivities))
		b.WriteString("\n")
	}

	if len(resp.Recommendations) > 0 {
		b.WriteString(Header("Recommendations"))
		b.WriteString("\n")
		for _, r := range resp.Recommendations {
			b.WriteString("  • " + r + "\n")
		}
		b.WriteString("\n")
	}

	if resp.PhaseInsights != "" {
		b.WriteString(PhaseColor(phase).Render(resp.PhaseInsights))
		b.WriteString("\n\n")
	}

	f := resp.EnergyForecast
	b.WriteString(fmt.Sprintf("%s  today %s  tomorrow %s  week %s\n",
		Dim("Energy"), EnergyIndicator(f.Today), EnergyIndicator(f.Tomorrow), EnergyIndicator(f.Week)))

	if resp.RestRecommendation != "" {
		b.WriteString(Dim(resp.RestRecommendation))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatUnscheduled lists the activities the rules declined to place.
func FormatUnscheduled(items []domain.UnscheduledActivity) string {
	var b strings.Builder
	b.WriteString(Header("Not scheduled"))
	b.WriteString("\n")
	for _, u := range items {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleYellow.Render("○"), Bold(u.Title), Dim("("+u.Category+")")))
		b.WriteString("    " + u.Reason + "\n")
		action := string(u.SuggestedAction)
		if u.AlternativeSuggestion != "" {
			action += ": " + u.AlternativeSuggestion
		}
		b.WriteString("    " + Dim("→ "+action) + "\n")
	}
	return b.String()
}

func groupActivities(activities []domain.GeneratedActivity) ([]string, map[string][]domain.GeneratedActivity) {
	var dates []string
	byDate := make(map[string][]domain.GeneratedActivity)
	for _, a := range activities {
		if _, ok := byDate[a.Date]; !ok {
			dates = append(dates, a.Date)
		}
		byDate[a.Date] = append(byDate[a.Date], a)
	}
	return dates, byDate
}
