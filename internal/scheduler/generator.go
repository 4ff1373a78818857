package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/phasewise/internal/classifier"
	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/domain"
)

// ErrInvalidCycleDay matches, via errors.Is, the error Generate returns for
// a cycle day outside 1..28.
var ErrInvalidCycleDay = &contract.AgentError{Code: contract.ErrInvalidCycleDay}

const (
	lowEnergyNote = "Consider lowering the intensity of your activities because of the low energy you reported."
	stressNote    = "Include relaxation and mindfulness activities in your routine."
)

// Generate builds the rule-based plan for the 7 days starting on
// referenceDate.
//
// Each day takes its phase from the input cycle day advanced by the day
// offset. Variable activities are tried in input order, so earlier ones win
// contested capacity. Denied activities are reported once per title;
// activities with no free slot are dropped without a record.
func Generate(input contract.HormonalAgentInput, referenceDate time.Time) (*contract.HormonalAgentResponse, error) {
	if input.CycleDay < 1 || input.CycleDay > cycle.ModelLength {
		return nil, &contract.AgentError{
			Code:    contract.ErrInvalidCycleDay,
			Message: fmt.Sprintf("cycle day %d is outside 1..%d", input.CycleDay, cycle.ModelLength),
		}
	}

	activities := []domain.GeneratedActivity{}
	var unscheduled []domain.UnscheduledActivity
	denied := make(map[string]bool)

	for day := 0; day < domain.HorizonDays; day++ {
		date := referenceDate.AddDate(0, 0, day).Format(domain.DateFormat)
		phase := cycle.PhaseOf(input.CycleDay + day)
		energy := cycle.EnergyFor(phase)
		startHour := cycle.DayStartHour(phase)

		for _, va := range input.VariableActivities {
			decision := classifier.ShouldSchedule(va, phase, input.Symptoms)
			if !decision.Allow {
				if !denied[va.Title] {
					denied[va.Title] = true
					unscheduled = append(unscheduled, domain.UnscheduledActivity{
						Title:                 va.Title,
						Category:              va.Category,
						Reason:                decision.Reason,
						SuggestedAction:       decision.SuggestedAction,
						AlternativeSuggestion: classifier.AlternativeSuggestion(va.Title, decision.SuggestedAction),
					})
				}
				continue
			}

			hours := va.Hours()
			slot, ok := FindSlot(date, hours, activities, input.FixedActivities, startHour)
			if !ok {
				continue
			}
			activities = append(activities, domain.GeneratedActivity{
				Title:           va.Title,
				Category:        va.Category,
				Date:            date,
				StartTime:       slot.StartTime(),
				EndTime:         slot.EndTime(),
				Duration:        domain.FormatDuration(hours),
				Phase:           phase,
				EnergyLevel:     energy,
				RepeatFrequency: domain.RepeatNone,
				IsFixed:         false,
				Priority:        domain.PriorityMedium,
			})
		}
	}

	currentPhase := cycle.PhaseOf(input.CycleDay)
	return &contract.HormonalAgentResponse{
		Activities:            activities,
		UnscheduledActivities: unscheduled,
		Recommendations:       Recommendations(currentPhase, input.Symptoms, input.Goals),
		PhaseInsights:         cycle.Insight(currentPhase),
		EnergyForecast:        Forecast(input.CycleDay),
		RestRecommendation:    restRecommendation(currentPhase, input.Symptoms, unscheduled),
	}, nil
}

// Recommendations returns the phase guidance followed by the symptom and
// goal notes that apply.
func Recommendations(phase domain.CyclePhase, symptoms domain.Symptoms, goals domain.Goals) []string {
	recs := []string{cycle.Guidance(phase)}
	if symptoms.LowEnergy() {
		recs = append(recs, lowEnergyNote)
	}
	if goals.Has(domain.GoalReduceStress) {
		recs = append(recs, stressNote)
	}
	return recs
}

// Forecast derives today's and tomorrow's energy from the cycle day. The
// weekly value is not modelled and is always medium.
func Forecast(cycleDay int) contract.EnergyForecast {
	return contract.EnergyForecast{
		Today:    cycle.EnergyFor(cycle.PhaseOf(cycleDay)),
		Tomorrow: cycle.EnergyFor(cycle.PhaseOf(cycle.Next(cycleDay))),
		Week:     domain.EnergyMedium,
	}
}

// NeedsRest reports whether the week starting in phase calls for recovery.
func NeedsRest(phase domain.CyclePhase, symptoms domain.Symptoms) bool {
	return phase == domain.PhaseMenstrual || (phase == domain.PhaseLuteal && symptoms.LowEnergy())
}

func restRecommendation(phase domain.CyclePhase, symptoms domain.Symptoms, unscheduled []domain.UnscheduledActivity) string {
	if !NeedsRest(phase, symptoms) {
		return ""
	}
	heavy := 0
	for _, u := range unscheduled {
		if classifier.IsHighIntensity(u.Title, u.Category) {
			heavy++
		}
	}
	if heavy == 0 {
		return ""
	}
	noun := "activity was"
	if heavy > 1 {
		noun = "activities were"
	}
	return fmt.Sprintf("This week is better spent resting. %d physical %s not scheduled because your phase and symptoms point to recovery. You can revisit them or add gentler alternatives.", heavy, noun)
}
