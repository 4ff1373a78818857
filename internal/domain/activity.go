package domain

// FixedActivity is a commitment that occupies the same time window on every
// day of the horizon. Without a StartTime it never blocks a slot.
type FixedActivity struct {
	Title         string  `json:"title" yaml:"title"`
	DurationHours float64 `json:"duration" yaml:"duration"`
	StartTime     string  `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	Category      string  `json:"category,omitempty" yaml:"category,omitempty"`
}

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

// VariableActivity is a flexible activity the generator may place.
type VariableActivity struct {
	Title         string    `json:"title" yaml:"title"`
	Category      string    `json:"category" yaml:"category"`
	PreferredTime TimeOfDay `json:"preferredTime,omitempty" yaml:"preferredTime,omitempty"`
	DurationHours *float64  `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// DefaultActivityHours is used when a variable activity carries no duration.
const DefaultActivityHours = 1.0

// Hours returns the activity duration, defaulting to one hour when the value
// is missing or not positive.
func (v VariableActivity) Hours() float64 {
	h := Float64FromPtrWithDefault(DefaultActivityHours, v.DurationHours)
	if h <= 0 {
		return DefaultActivityHours
	}
	return h
}

type UserPreferences struct {
	Intensity           Intensity `json:"intensity" yaml:"intensity"`
	TimeAvailability    float64   `json:"timeAvailability" yaml:"timeAvailability"`
	PreferredCategories []string  `json:"preferredCategories,omitempty" yaml:"preferredCategories,omitempty"`
	AvoidCategories     []string  `json:"avoidCategories,omitempty" yaml:"avoidCategories,omitempty"`
	RestDays            []int     `json:"restDays,omitempty" yaml:"restDays,omitempty"`
}

// GeneratedActivity is an activity placed on a concrete date and time window.
type GeneratedActivity struct {
	Title           string          `json:"title"`
	Category        string          `json:"category"`
	Date            string          `json:"date"`
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	Duration        string          `json:"duration"`
	Phase           CyclePhase      `json:"phase"`
	EnergyLevel     EnergyLevel     `json:"energyLevel"`
	Reason          string          `json:"reason,omitempty"`
	RepeatFrequency RepeatFrequency `json:"repeatFrequency,omitempty"`
	IsFixed         bool            `json:"isFixed"`
	Priority        Priority        `json:"priority,omitempty"`
}

// UnscheduledActivity records a variable activity the rules declined to place.
type UnscheduledActivity struct {
	Title                 string          `json:"title"`
	Category              string          `json:"category"`
	Reason                string          `json:"reason"`
	SuggestedAction       SuggestedAction `json:"suggestedAction"`
	AlternativeSuggestion string          `json:"alternativeSuggestion,omitempty"`
}
