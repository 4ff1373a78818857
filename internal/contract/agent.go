package contract

import (
	"fmt"
	"time"

	"github.com/alexanderramin/phasewise/internal/domain"
)

// HormonalAgentInput is the request for one weekly plan.
type HormonalAgentInput struct {
	CycleDay           int                       `json:"cycleDay" yaml:"cycleDay"`
	HormonalPhase      domain.CyclePhase         `json:"hormonalPhase,omitempty" yaml:"hormonalPhase,omitempty"`
	Symptoms           domain.Symptoms           `json:"symptoms" yaml:"symptoms"`
	Goals              domain.Goals              `json:"goals" yaml:"goals"`
	FixedActivities    []domain.FixedActivity    `json:"fixedActivities" yaml:"fixedActivities"`
	VariableActivities []domain.VariableActivity `json:"variableActivities" yaml:"variableActivities"`
	Preferences        domain.UserPreferences    `json:"preferences" yaml:"preferences"`
	ExistingTasks      []domain.Task             `json:"existingTasks,omitempty" yaml:"existingTasks,omitempty"`
}

type EnergyForecast struct {
	Today    domain.EnergyLevel `json:"today"`
	Tomorrow domain.EnergyLevel `json:"tomorrow"`
	Week     domain.EnergyLevel `json:"week"`
}

// HormonalAgentResponse is a generated weekly plan.
type HormonalAgentResponse struct {
	Activities            []domain.GeneratedActivity   `json:"activities"`
	UnscheduledActivities []domain.UnscheduledActivity `json:"unscheduledActivities,omitempty"`
	Recommendations       []string                     `json:"recommendations"`
	PhaseInsights         string                       `json:"phaseInsights"`
	EnergyForecast        EnergyForecast               `json:"energyForecast"`
	RestRecommendation    string                       `json:"restRecommendation,omitempty"`
}

// Canonical returns a copy of in with symptom, goal and intensity aliases
// mapped onto the stored tags. Unknown intensities are left as given.
func (in HormonalAgentInput) Canonical() HormonalAgentInput {
	out := in
	if in.Symptoms != nil {
		out.Symptoms = make(domain.Symptoms, len(in.Symptoms))
		for i, s := range in.Symptoms {
			out.Symptoms[i] = domain.ParseSymptom(string(s))
		}
	}
	if in.Goals != nil {
		out.Goals = make(domain.Goals, len(in.Goals))
		for i, g := range in.Goals {
			out.Goals[i] = domain.ParseGoal(string(g))
		}
	}
	if v, ok := domain.ParseIntensity(string(in.Preferences.Intensity)); ok {
		out.Preferences.Intensity = v
	}
	return out
}

// Validate rejects activity durations too short for the minute grid.
// Missing or non-positive variable durations are left to the default.
func (in HormonalAgentInput) Validate() error {
	for _, f := range in.FixedActivities {
		if domain.SubMinute(f.DurationHours) {
			return &AgentError{Code: ErrInvalidInput, Message: fmt.Sprintf("fixed activity %q is shorter than one minute", f.Title)}
		}
	}
	for _, v := range in.VariableActivities {
		if v.DurationHours != nil && domain.SubMinute(*v.DurationHours) {
			return &AgentError{Code: ErrInvalidInput, Message: fmt.Sprintf("activity %q is shorter than one minute", v.Title)}
		}
	}
	return nil
}

// GenerateRequest pairs an input with the date the horizon starts on.
type GenerateRequest struct {
	Input         HormonalAgentInput
	ReferenceDate time.Time
}

func NewGenerateRequest(input HormonalAgentInput, referenceDate time.Time) GenerateRequest {
	return GenerateRequest{Input: input, ReferenceDate: referenceDate}
}

type AgentErrorCode string

const (
	ErrInvalidCycleDay AgentErrorCode = "INVALID_CYCLE_DAY"
	ErrInvalidInput    AgentErrorCode = "INVALID_INPUT"
	ErrInternalError   AgentErrorCode = "INTERNAL_ERROR"
)

type AgentError struct {
	Code    AgentErrorCode
	Message string
}

func (e *AgentError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Is matches any *AgentError with the same code, so sentinels declared as
// &AgentError{Code: ...} work with errors.Is.
func (e *AgentError) Is(target error) bool {
	t, ok := target.(*AgentError)
	return ok && t.Code == e.Code
}
