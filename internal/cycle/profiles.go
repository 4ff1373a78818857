package cycle

import "github.com/alexanderramin/phasewise/internal/domain"

type phaseProfile struct {
	energy      domain.EnergyLevel
	startHour   int
	description string
	subtitle    string
	guidance    string
	insight     string
}

var phaseProfiles = map[domain.CyclePhase]phaseProfile{
	domain.PhaseMenstrual: {
		energy:      domain.EnergyLow,
		startHour:   14,
		description: "Rest and reflection, time for gentle self-care",
		subtitle:    "Rest & reflect: time for gentle self-care",
		guidance:    "During the Menstrual phase it is best to rest and keep activities gentle.",
		insight:     "You are in the Menstrual phase of your cycle. It is a time for rest and self-care.",
	},
	domain.PhaseFollicular: {
		energy:      domain.EnergyHigh,
		startHour:   9,
		description: "Rising energy, ideal for deep work and learning",
		subtitle:    "Energy rising: best for deep work",
		guidance:    "During the Follicular phase, use the rising energy for important tasks.",
		insight:     "You are in the Follicular phase of your cycle. Your energy is increasing, ideal for new projects.",
	},
	domain.PhaseOvulatory: {
		energy:      domain.EnergyHigh,
		startHour:   9,
		description: "Peak energy, perfect for important meetings and creative work",
		subtitle:    "Peak energy: perfect for important meetings",
		guidance:    "During the Ovulatory phase, schedule the activities that need the most energy.",
		insight:     "You are in the Ovulatory phase of your cycle. You are at peak energy, make room for important activities.",
	},
	domain.PhaseLuteal: {
		energy:      domain.EnergyMedium,
		startHour:   10,
		description: "Energy declining, focus on finishing and organizing",
		subtitle:    "Protect your focus: soft tasks and admin",
		guidance:    "During the Luteal phase, focus on finishing projects and getting organized.",
		insight:     "You are in the Luteal phase of your cycle. Your energy is decreasing, focus on wrapping up pending tasks.",
	},
}

// profileOf falls back to the Follicular profile for unknown phases.
func profileOf(phase domain.CyclePhase) phaseProfile {
	if p, ok := phaseProfiles[phase]; ok {
		return p
	}
	return phaseProfiles[domain.PhaseFollicular]
}

// Valid reports whether phase is one of the four model phases.
func Valid(phase domain.CyclePhase) bool {
	_, ok := phaseProfiles[phase]
	return ok
}
