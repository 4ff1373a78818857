// Package classifier decides whether a variable activity may be scheduled
// on a day, given that day's phase and the reported symptoms.
package classifier

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/phasewise/internal/domain"
)

// highIntensityKeywords are matched as lowercase substrings of an
// activity's title or category.
var highIntensityKeywords = []string{
	"fitness", "deporte", "ejercicio", "exercise", "gym", "correr", "running",
	"cardio", "entrenamiento", "workout", "crossfit", "pesas", "weights",
	"strength training", "hiit", "natación", "swimming", "ciclismo", "cycling",
	"bicicleta", "yoga intenso", "pilates intenso",
}

// IsHighIntensity reports whether title or category names a physically
// demanding activity.
func IsHighIntensity(title, category string) bool {
	t := strings.ToLower(title)
	c := strings.ToLower(category)
	for _, kw := range highIntensityKeywords {
		if strings.Contains(t, kw) || strings.Contains(c, kw) {
			return true
		}
	}
	return false
}

// Decision is the outcome of ShouldSchedule. Reason and SuggestedAction are
// set only when Allow is false.
type Decision struct {
	Allow           bool
	Rule            string
	Reason          string
	SuggestedAction domain.SuggestedAction
}

type facts struct {
	phase     domain.CyclePhase
	heavy     bool
	lowEnergy bool
	cramps    bool
	pain      bool
}

type rule struct {
	name   string
	match  func(f facts) bool
	action domain.SuggestedAction
	reason func(f facts, title string) string
}

// rules are evaluated in order; the first match wins. The symptom-specific
// menstrual rule and the low-energy modify rule are shadowed by the phase
// rules above them for every input.
var rules = []rule{
	{
		name:   "menstrual-heavy",
		match:  func(f facts) bool { return f.phase == domain.PhaseMenstrual && f.heavy },
		action: domain.ActionSkip,
		reason: func(_ facts, title string) string {
			return fmt.Sprintf("During the menstrual phase it is better to avoid intense physical activity like %q. Your body needs rest and recovery.", title)
		},
	},
	{
		name: "menstrual-symptoms-heavy",
		match: func(f facts) bool {
			return f.phase == domain.PhaseMenstrual && (f.cramps || f.pain) && f.heavy
		},
		action: domain.ActionSkip,
		reason: func(f facts, title string) string {
			return fmt.Sprintf("With the symptoms you report (%s), it is better to rest this week and avoid %q.", symptomSummary(f), title)
		},
	},
	{
		name: "luteal-low-energy-heavy",
		match: func(f facts) bool {
			return f.phase == domain.PhaseLuteal && f.lowEnergy && f.heavy
		},
		action: domain.ActionPostpone,
		reason: func(_ facts, title string) string {
			return fmt.Sprintf("With the low energy you report during the luteal phase, it is better to avoid intense physical activity like %q this week.", title)
		},
	},
	{
		name: "low-energy-heavy",
		match: func(f facts) bool {
			return f.lowEnergy && f.heavy && (f.phase == domain.PhaseMenstrual || f.phase == domain.PhaseLuteal)
		},
		action: domain.ActionModify,
		reason: func(_ facts, title string) string {
			return fmt.Sprintf("With the low energy you report, consider resting this week instead of doing %q.", title)
		},
	},
}

// ShouldSchedule applies the ordered rule table to activity. Anything no rule
// denies is allowed.
func ShouldSchedule(activity domain.VariableActivity, phase domain.CyclePhase, symptoms domain.Symptoms) Decision {
	f := facts{
		phase:     phase,
		heavy:     IsHighIntensity(activity.Title, activity.Category),
		lowEnergy: symptoms.LowEnergy(),
		cramps:    symptoms.Has(domain.SymptomCramps),
		pain:      symptoms.HasAny(domain.SymptomHeadache, domain.SymptomBackPain),
	}
	for _, r := range rules {
		if r.match(f) {
			return Decision{
				Allow:           false,
				Rule:            r.name,
				Reason:          r.reason(f, activity.Title),
				SuggestedAction: r.action,
			}
		}
	}
	return Decision{Allow: true}
}

// AlternativeSuggestion returns the follow-up hint recorded for a denied
// activity. Skipped activities get none.
func AlternativeSuggestion(title string, action domain.SuggestedAction) string {
	switch action {
	case domain.ActionModify:
		return fmt.Sprintf("Consider a gentler version of %q or replace it with a restful activity such as gentle yoga, meditation or a light walk.", title)
	case domain.ActionPostpone:
		return fmt.Sprintf("You can postpone %q to next week when you have more energy.", title)
	default:
		return ""
	}
}

func symptomSummary(f facts) string {
	switch {
	case f.cramps && f.pain:
		return "cramps and pain"
	case f.cramps:
		return "cramps"
	default:
		return "pain"
	}
}
