package intelligence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/domain"
)

// scheduleSystemPrompt instructs the model to produce a weekly plan in the
// HormonalAgentResponse wire shape.
const scheduleSystemPrompt = `You are a planning assistant that builds activity calendars around the phases of the hormonal cycle.
Your task is to generate a realistic daily plan for the next 7 days based on the cycle day, the current phase, reported symptoms, goals, fixed and variable activities and the user's preferences.

You must output ONLY a JSON object with these fields:
- activities: array of objects, each with:
  - title: activity name
  - category: category such as fitness, wellness or work
  - date: "YYYY-MM-DD"
  - startTime: "HH:MM"
  - endTime: "HH:MM"
  - duration: "HH:MM"
  - phase: "Menstrual" | "Follicular" | "Ovulatory" | "Luteal"
  - energyLevel: "high" | "medium" | "low"
  - reason: short explanation of why the activity is recommended
  - repeatFrequency: "none" | "daily" | "weekdays" | "weekly" | "monthly"
  - isFixed: boolean
  - priority: "high" | "medium" | "low"
- recommendations: array of short general recommendations
- phaseInsights: one or two sentences about the current phase
- energyForecast: { today, tomorrow, week } each "high" | "medium" | "low"
- unscheduledActivities: optional array of {title, category, reason, suggestedAction, alternativeSuggestion} where suggestedAction is "skip" | "postpone" | "modify"
- restRecommendation: optional string when the week calls for recovery

CRITICAL RULES:
1. Never schedule anything on top of a fixed activity and never duplicate fixed activities
2. Keep every activity between its day's start and 22:00
3. Spread variable activities across the week according to the phase of each day
4. Lower the intensity when symptoms point to low energy or pain
5. Output ONLY the JSON object, no markdown, no explanation`

// buildSchedulePrompt renders the per-request prompt from the agent input.
func buildSchedulePrompt(input contract.HormonalAgentInput, phase domain.CyclePhase, referenceDate string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate an activity calendar starting on %s.\n\n", referenceDate)
	fmt.Fprintf(&b, "Cycle day: %d\n", input.CycleDay)
	fmt.Fprintf(&b, "Hormonal phase: %s - %s\n\n", phase, cycle.Description(phase))

	b.WriteString("Reported symptoms: ")
	b.WriteString(joinOr(symptomStrings(input.Symptoms), "none"))
	b.WriteString("\nGoals: ")
	b.WriteString(joinOr(goalStrings(input.Goals), "none"))
	b.WriteString("\n\n")

	b.WriteString("Fixed activities (already scheduled):\n")
	if len(input.FixedActivities) == 0 {
		b.WriteString("None\n")
	}
	for _, a := range input.FixedActivities {
		fmt.Fprintf(&b, "- %s (%sh", a.Title, formatHours(a.DurationHours))
		if a.StartTime != "" {
			fmt.Fprintf(&b, " at %s", a.StartTime)
		}
		b.WriteString(")\n")
	}

	b.WriteString("\nVariable activities (to schedule):\n")
	if len(input.VariableActivities) == 0 {
		b.WriteString("None\n")
	}
	for _, a := range input.VariableActivities {
		fmt.Fprintf(&b, "- %s (%s", a.Title, a.Category)
		if a.DurationHours != nil {
			fmt.Fprintf(&b, ", %sh", formatHours(*a.DurationHours))
		}
		if a.PreferredTime != "" {
			fmt.Fprintf(&b, ", %s", a.PreferredTime)
		}
		b.WriteString(")\n")
	}

	p := input.Preferences
	b.WriteString("\nPreferences:\n")
	fmt.Fprintf(&b, "- Preferred intensity: %s\n", domain.CoalesceStr(string(p.Intensity), string(domain.IntensityMedium)))
	fmt.Fprintf(&b, "- Time available: %s hours/day\n", formatHours(p.TimeAvailability))
	if len(p.PreferredCategories) > 0 {
		fmt.Fprintf(&b, "- Preferred categories: %s\n", strings.Join(p.PreferredCategories, ", "))
	}
	if len(p.AvoidCategories) > 0 {
		fmt.Fprintf(&b, "- Categories to avoid: %s\n", strings.Join(p.AvoidCategories, ", "))
	}

	b.WriteString("\nGenerate activities for the next 7 days, spreading them according to the hormonal phase, symptoms and goals.")
	return b.String()
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

func symptomStrings(s domain.Symptoms) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = string(v)
	}
	return out
}

func goalStrings(g domain.Goals) []string {
	out := make([]string, len(g))
	for i, v := range g {
		out[i] = string(v)
	}
	return out
}
