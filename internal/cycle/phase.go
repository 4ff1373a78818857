// Package cycle maps cycle days onto the four-phase model and the energy
// profile the scheduler plans against.
package cycle

import (
	"time"

	"github.com/alexanderramin/phasewise/internal/domain"
)

// ModelLength is the cycle length the phase boundaries are defined against.
const ModelLength = 28

// Normalize folds any integer day onto 1..28 with a non-negative modulus.
func Normalize(day int) int {
	m := (day - 1) % ModelLength
	if m < 0 {
		m += ModelLength
	}
	return m + 1
}

// PhaseOf returns the phase of a cycle day. Days outside 1..28 are folded
// with Normalize first, so PhaseOf(d) == PhaseOf(d+28) for every d.
func PhaseOf(day int) domain.CyclePhase {
	d := Normalize(day)
	switch {
	case d <= 5:
		return domain.PhaseMenstrual
	case d <= 13:
		return domain.PhaseFollicular
	case d <= 17:
		return domain.PhaseOvulatory
	default:
		return domain.PhaseLuteal
	}
}

// Next returns the cycle day following day, wrapping 28 back to 1.
func Next(day int) int {
	return Normalize(day + 1)
}

// EnergyFor returns the energy level expected during phase.
func EnergyFor(phase domain.CyclePhase) domain.EnergyLevel {
	return profileOf(phase).energy
}

// DayStartHour returns the hour at which the scheduler starts looking for
// free time during phase.
func DayStartHour(phase domain.CyclePhase) int {
	return profileOf(phase).startHour
}

// Description is the one-line phase description used in prompts.
func Description(phase domain.CyclePhase) string {
	return profileOf(phase).description
}

// Subtitle is the short tagline shown next to the phase name.
func Subtitle(phase domain.CyclePhase) string {
	return profileOf(phase).subtitle
}

// Guidance is the recommendation sentence for the phase.
func Guidance(phase domain.CyclePhase) string {
	return profileOf(phase).guidance
}

// Insight summarizes what the phase means for the week ahead.
func Insight(phase domain.CyclePhase) string {
	return profileOf(phase).insight
}

// DayFromLastPeriod computes the cycle day on today given the first day of
// the last period. Both dates are compared at calendar-day granularity.
// A non-positive cycleLength falls back to the default length; a last period
// date in the future yields day 1.
func DayFromLastPeriod(lastPeriod, today time.Time, cycleLength int) int {
	if cycleLength <= 0 {
		cycleLength = domain.DefaultCycleLength
	}
	diff := daysBetween(dateOnly(lastPeriod), dateOnly(today))
	if diff < 0 {
		return 1
	}
	return diff%cycleLength + 1
}

// DayFromSnapshot returns the current cycle day for s, preferring the last
// period date when one is stored and parseable.
func DayFromSnapshot(s domain.Snapshot, today time.Time) int {
	if s.LastPeriodDate != "" {
		if lp, err := time.ParseInLocation(domain.DateFormat, s.LastPeriodDate, today.Location()); err == nil {
			return DayFromLastPeriod(lp, today, s.CycleLength)
		}
	}
	if s.CycleDay < 1 {
		return 1
	}
	return s.CycleDay
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
