package domain

import "strings"

type CyclePhase string

const (
	PhaseMenstrual  CyclePhase = "Menstrual"
	PhaseFollicular CyclePhase = "Follicular"
	PhaseOvulatory  CyclePhase = "Ovulatory"
	PhaseLuteal     CyclePhase = "Luteal"
)

// AllPhases lists the phases in cycle order.
var AllPhases = []CyclePhase{PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal}

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

type EnergyType string

const (
	EnergyDeepWork EnergyType = "deep-work"
	EnergyAdmin    EnergyType = "admin"
	EnergySocial   EnergyType = "social"
	EnergyRest     EnergyType = "rest"
)

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

var intensityAliases = map[string]Intensity{
	"low": IntensityLow, "baja": IntensityLow,
	"medium": IntensityMedium, "media": IntensityMedium,
	"high": IntensityHigh, "alta": IntensityHigh,
}

// ParseIntensity accepts the English values and the Spanish ones stored by
// older clients. Unknown values return false.
func ParseIntensity(s string) (Intensity, bool) {
	v, ok := intensityAliases[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

type SuggestedAction string

const (
	ActionSkip     SuggestedAction = "skip"
	ActionPostpone SuggestedAction = "postpone"
	ActionModify   SuggestedAction = "modify"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type RepeatFrequency string

const (
	RepeatNone     RepeatFrequency = "none"
	RepeatDaily    RepeatFrequency = "daily"
	RepeatWeekdays RepeatFrequency = "weekdays"
	RepeatWeekly   RepeatFrequency = "weekly"
	RepeatMonthly  RepeatFrequency = "monthly"
)

// ValidRepeatFrequencies is the canonical set of accepted repeat strings.
var ValidRepeatFrequencies = map[RepeatFrequency]bool{
	RepeatNone: true, RepeatDaily: true, RepeatWeekdays: true,
	RepeatWeekly: true, RepeatMonthly: true,
}
