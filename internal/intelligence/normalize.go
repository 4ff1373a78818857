package intelligence

import (
	"fmt"
	"time"

	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/alexanderramin/phasewise/internal/llm"
)

// Defaults applied to fields the model leaves out.
const (
	defaultTitle     = "untitled activity"
	defaultCategory  = "general"
	defaultStartTime = "09:00"
	defaultEndTime   = "10:00"
	defaultDuration  = "01:00"
)

// NormalizeResult is either a complete response or the reason the candidate
// was rejected.
type NormalizeResult struct {
	Response *contract.HormonalAgentResponse
	Err      error
}

// OK reports whether the candidate was accepted.
func (r NormalizeResult) OK() bool { return r.Err == nil && r.Response != nil }

// rawActivity mirrors GeneratedActivity with every field optional.
type rawActivity struct {
	Title           *string `json:"title"`
	Category        *string `json:"category"`
	Date            *string `json:"date"`
	StartTime       *string `json:"startTime"`
	EndTime         *string `json:"endTime"`
	Duration        *string `json:"duration"`
	Phase           *string `json:"phase"`
	EnergyLevel     *string `json:"energyLevel"`
	Reason          *string `json:"reason"`
	RepeatFrequency *string `json:"repeatFrequency"`
	IsFixed         *bool   `json:"isFixed"`
	Priority        *string `json:"priority"`
}

type rawUnscheduled struct {
	Title                 *string `json:"title"`
	Category              *string `json:"category"`
	Reason                *string `json:"reason"`
	SuggestedAction       *string `json:"suggestedAction"`
	AlternativeSuggestion *string `json:"alternativeSuggestion"`
}

type rawForecast struct {
	Today    *string `json:"today"`
	Tomorrow *string `json:"tomorrow"`
	Week     *string `json:"week"`
}

type rawResponse struct {
	Activities            []rawActivity    `json:"activities"`
	UnscheduledActivities []rawUnscheduled `json:"unscheduledActivities"`
	Recommendations       []string         `json:"recommendations"`
	PhaseInsights         *string          `json:"phaseInsights"`
	EnergyForecast        *rawForecast     `json:"energyForecast"`
	RestRecommendation    *string          `json:"restRecommendation"`
}

// Normalize parses a model-produced candidate and fills every missing field
// with its default. A missing activities array reads as empty. A candidate
// that is not a JSON object, or whose dates and times do not parse, is
// rejected.
func Normalize(input contract.HormonalAgentInput, raw string, referenceDate time.Time) NormalizeResult {
	parsed, err := llm.ExtractJSON[rawResponse](raw, validateRawResponse)
	if err != nil {
		return NormalizeResult{Err: err}
	}

	phase := inputPhase(input)
	date := referenceDate.Format(domain.DateFormat)

	resp := &contract.HormonalAgentResponse{
		Activities:      make([]domain.GeneratedActivity, 0, len(parsed.Activities)),
		Recommendations: parsed.Recommendations,
		PhaseInsights:   str(parsed.PhaseInsights, ""),
		EnergyForecast:  normalizeForecast(parsed.EnergyForecast),
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []string{}
	}
	if parsed.RestRecommendation != nil {
		resp.RestRecommendation = *parsed.RestRecommendation
	}

	for _, a := range parsed.Activities {
		resp.Activities = append(resp.Activities, domain.GeneratedActivity{
			Title:           str(a.Title, defaultTitle),
			Category:        str(a.Category, defaultCategory),
			Date:            str(a.Date, date),
			StartTime:       str(a.StartTime, defaultStartTime),
			EndTime:         str(a.EndTime, defaultEndTime),
			Duration:        str(a.Duration, defaultDuration),
			Phase:           normalizePhase(a.Phase, phase),
			EnergyLevel:     normalizeEnergy(a.EnergyLevel),
			Reason:          str(a.Reason, ""),
			RepeatFrequency: normalizeRepeat(a.RepeatFrequency),
			IsFixed:         domain.BoolFromPtrWithDefault(false, a.IsFixed),
			Priority:        normalizePriority(a.Priority),
		})
	}

	for _, u := range parsed.UnscheduledActivities {
		if str(u.Title, "") == "" {
			continue
		}
		resp.UnscheduledActivities = append(resp.UnscheduledActivities, domain.UnscheduledActivity{
			Title:                 *u.Title,
			Category:              str(u.Category, defaultCategory),
			Reason:                str(u.Reason, ""),
			SuggestedAction:       normalizeAction(u.SuggestedAction),
			AlternativeSuggestion: str(u.AlternativeSuggestion, ""),
		})
	}

	return NormalizeResult{Response: resp}
}

func validateRawResponse(r rawResponse) error {
	for i, a := range r.Activities {
		if a.Date != nil && *a.Date != "" {
			if _, err := time.Parse(domain.DateFormat, *a.Date); err != nil {
				return fmt.Errorf("activities[%d].date %q is not YYYY-MM-DD", i, *a.Date)
			}
		}
		for field, v := range map[string]*string{"startTime": a.StartTime, "endTime": a.EndTime} {
			if v == nil || *v == "" {
				continue
			}
			if _, err := domain.ParseClock(*v); err != nil {
				return fmt.Errorf("activities[%d].%s: %w", i, field, err)
			}
		}
	}
	return nil
}

// inputPhase prefers the declared phase and derives it from the cycle day
// when the declaration is missing or unknown.
func inputPhase(input contract.HormonalAgentInput) domain.CyclePhase {
	if cycle.Valid(input.HormonalPhase) {
		return input.HormonalPhase
	}
	return cycle.PhaseOf(input.CycleDay)
}

func str(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

func normalizePhase(p *string, fallback domain.CyclePhase) domain.CyclePhase {
	if ph := domain.CyclePhase(str(p, "")); cycle.Valid(ph) {
		return ph
	}
	return fallback
}

func normalizeEnergy(p *string) domain.EnergyLevel {
	switch e := domain.EnergyLevel(str(p, "")); e {
	case domain.EnergyHigh, domain.EnergyMedium, domain.EnergyLow:
		return e
	}
	return domain.EnergyMedium
}

func normalizeRepeat(p *string) domain.RepeatFrequency {
	if r := domain.RepeatFrequency(str(p, "")); domain.ValidRepeatFrequencies[r] {
		return r
	}
	return domain.RepeatNone
}

func normalizePriority(p *string) domain.Priority {
	switch pr := domain.Priority(str(p, "")); pr {
	case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		return pr
	}
	return domain.PriorityMedium
}

func normalizeAction(p *string) domain.SuggestedAction {
	switch a := domain.SuggestedAction(str(p, "")); a {
	case domain.ActionSkip, domain.ActionPostpone, domain.ActionModify:
		return a
	}
	return domain.ActionSkip
}

func normalizeForecast(f *rawForecast) contract.EnergyForecast {
	if f == nil {
		f = &rawForecast{}
	}
	return contract.EnergyForecast{
		Today:    normalizeEnergy(f.Today),
		Tomorrow: normalizeEnergy(f.Tomorrow),
		Week:     normalizeEnergy(f.Week),
	}
}
