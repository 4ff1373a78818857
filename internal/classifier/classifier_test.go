package classifier

import (
	"testing"

	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func act(title, category string) domain.VariableActivity {
	return domain.VariableActivity{Title: title, Category: category}
}

func TestIsHighIntensity(t *testing.T) {
	assert.True(t, IsHighIntensity("Running 5k", "fitness"))
	assert.True(t, IsHighIntensity("Morning GYM", ""))
	assert.True(t, IsHighIntensity("Sesión", "Deporte"))
	assert.True(t, IsHighIntensity("Clase de natación", "bienestar"))
	assert.True(t, IsHighIntensity("Yoga Intenso", "bienestar"))
	assert.False(t, IsHighIntensity("Yoga suave", "bienestar"))
	assert.False(t, IsHighIntensity("Deep work", "work"))
	assert.False(t, IsHighIntensity("", ""))
}

func TestShouldSchedule_MenstrualHeavySkips(t *testing.T) {
	d := ShouldSchedule(act("Running 5k", "fitness"), domain.PhaseMenstrual, nil)

	assert.False(t, d.Allow)
	assert.Equal(t, domain.ActionSkip, d.SuggestedAction)
	assert.Contains(t, d.Reason, "Running 5k")
}

func TestShouldSchedule_MenstrualHeavyWithCrampsStillFirstRule(t *testing.T) {
	d := ShouldSchedule(act("Running 5k", "fitness"), domain.PhaseMenstrual,
		domain.Symptoms{domain.SymptomCramps})

	assert.False(t, d.Allow)
	assert.Equal(t, domain.ActionSkip, d.SuggestedAction)
	assert.Contains(t, d.Reason, "rest and recovery")
}

func TestShouldSchedule_LutealLowEnergyPostpones(t *testing.T) {
	for _, s := range []domain.Symptom{domain.SymptomLowEnergy, domain.SymptomFatigue} {
		d := ShouldSchedule(act("Crossfit", "sport"), domain.PhaseLuteal, domain.Symptoms{s})
		assert.False(t, d.Allow, "symptom %s", s)
		assert.Equal(t, domain.ActionPostpone, d.SuggestedAction, "symptom %s", s)
	}
}

func TestShouldSchedule_LutealWithoutSymptomsAllows(t *testing.T) {
	d := ShouldSchedule(act("Crossfit", "sport"), domain.PhaseLuteal, nil)
	assert.True(t, d.Allow)
	assert.Empty(t, d.Reason)
}

func TestShouldSchedule_HighEnergyPhasesAlwaysAllow(t *testing.T) {
	symptoms := domain.Symptoms{domain.SymptomLowEnergy, domain.SymptomCramps, domain.SymptomBackPain}
	for _, p := range []domain.CyclePhase{domain.PhaseFollicular, domain.PhaseOvulatory} {
		d := ShouldSchedule(act("Running", "fitness"), p, symptoms)
		assert.True(t, d.Allow, "phase %s", p)
	}
}

func TestShouldSchedule_LightActivityAlwaysAllowed(t *testing.T) {
	symptoms := domain.Symptoms{domain.SymptomLowEnergy, domain.SymptomCramps}
	for _, p := range domain.AllPhases {
		d := ShouldSchedule(act("Read a book", "ocio"), p, symptoms)
		assert.True(t, d.Allow, "phase %s", p)
	}
}

func TestRules_SymptomRuleShadowedByBroaderRule(t *testing.T) {
	require.GreaterOrEqual(t, len(rules), 2)
	f := facts{phase: domain.PhaseMenstrual, heavy: true, cramps: true}

	assert.True(t, rules[0].match(f))
	assert.True(t, rules[1].match(f))
	assert.Contains(t, rules[1].reason(f, "Gym"), "cramps")

	f.pain = true
	assert.Contains(t, rules[1].reason(f, "Gym"), "cramps and pain")
	f.cramps = false
	assert.Contains(t, rules[1].reason(f, "Gym"), "(pain)")
}

func TestRules_LowEnergyModifyShadowed(t *testing.T) {
	for _, p := range []domain.CyclePhase{domain.PhaseMenstrual, domain.PhaseLuteal} {
		f := facts{phase: p, heavy: true, lowEnergy: true}
		assert.True(t, rules[3].match(f), "phase %s", p)

		d := ShouldSchedule(act("Gym", ""), p, domain.Symptoms{domain.SymptomFatigue})
		assert.NotEqual(t, domain.ActionModify, d.SuggestedAction, "phase %s", p)
	}
	assert.Equal(t, domain.ActionModify, rules[3].action)
}

func TestAlternativeSuggestion(t *testing.T) {
	assert.Contains(t, AlternativeSuggestion("Gym", domain.ActionModify), "gentler version")
	assert.Contains(t, AlternativeSuggestion("Gym", domain.ActionPostpone), "next week")
	assert.Empty(t, AlternativeSuggestion("Gym", domain.ActionSkip))
}
