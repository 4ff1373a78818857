package domain

import "strings"

// Symptom is a self-reported symptom tag. Values on the wire are the Spanish
// tags stored by existing clients; English aliases are accepted on input.
type Symptom string

const (
	SymptomLowEnergy    Symptom = "baja energía"
	SymptomHighEnergy   Symptom = "alta energía"
	SymptomHeadache     Symptom = "dolor de cabeza"
	SymptomMildHeadache Symptom = "ligero dolor de cabeza"
	SymptomCramps       Symptom = "cólicos"
	SymptomBloating     Symptom = "hinchazón"
	SymptomMoodSwings   Symptom = "cambios de humor"
	SymptomAnxiety      Symptom = "ansiedad"
	SymptomFatigue      Symptom = "fatiga"
	SymptomInsomnia     Symptom = "insomnio"
	SymptomBackPain     Symptom = "dolor de espalda"
	SymptomBreastTender Symptom = "sensibilidad mamaria"
	SymptomAcne         Symptom = "acné"
	SymptomFoodCravings Symptom = "ansiedad por comida"
	SymptomNausea       Symptom = "nauseas"
	SymptomOther        Symptom = "otros"
)

// KnownSymptoms is the picker vocabulary in display order.
var KnownSymptoms = []Symptom{
	SymptomLowEnergy, SymptomHighEnergy, SymptomHeadache, SymptomMildHeadache,
	SymptomCramps, SymptomBloating, SymptomMoodSwings, SymptomAnxiety,
	SymptomFatigue, SymptomInsomnia, SymptomBackPain, SymptomBreastTender,
	SymptomAcne, SymptomFoodCravings, SymptomNausea, SymptomOther,
}

var symptomAliases = map[string]Symptom{
	"low-energy":    SymptomLowEnergy,
	"low energy":    SymptomLowEnergy,
	"baja energia":  SymptomLowEnergy,
	"fatigue":       SymptomFatigue,
	"cramps":        SymptomCramps,
	"colicos":       SymptomCramps,
	"headache":      SymptomHeadache,
	"mild-headache": SymptomMildHeadache,
	"back-pain":     SymptomBackPain,
	"back pain":     SymptomBackPain,
	"bloating":      SymptomBloating,
	"mood-swings":   SymptomMoodSwings,
	"anxiety":       SymptomAnxiety,
	"insomnia":      SymptomInsomnia,
	"high-energy":   SymptomHighEnergy,
	"nausea":        SymptomNausea,
	"náuseas":       SymptomNausea,
}

// ParseSymptom returns the canonical tag for s. Tags that are neither
// canonical nor a known alias are returned trimmed and lowercased as-is.
func ParseSymptom(s string) Symptom {
	key := strings.ToLower(strings.TrimSpace(s))
	if v, ok := symptomAliases[key]; ok {
		return v
	}
	return Symptom(key)
}

// Symptoms is a reported symptom set. Only membership is meaningful.
type Symptoms []Symptom

func (s Symptoms) Has(tag Symptom) bool {
	for _, v := range s {
		if v == tag {
			return true
		}
	}
	return false
}

func (s Symptoms) HasAny(tags ...Symptom) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// LowEnergy reports whether any low-energy signal (low energy or fatigue) is present.
func (s Symptoms) LowEnergy() bool {
	return s.HasAny(SymptomLowEnergy, SymptomFatigue)
}

// Goal is a free-text goal tag.
type Goal string

const (
	GoalEndurance      Goal = "mejorar resistencia"
	GoalReduceStress   Goal = "bajar estrés"
	GoalProductivity   Goal = "aumentar productividad"
	GoalEmotional      Goal = "mejorar bienestar emocional"
	GoalFitness        Goal = "fitness"
	GoalMentalHealth   Goal = "salud mental"
	GoalWorkLife       Goal = "equilibrio trabajo-vida"
	GoalPersonalGrowth Goal = "crecimiento personal"
	GoalRest           Goal = "descanso y recuperación"
	GoalOther          Goal = "otros"
)

// KnownGoals is the picker vocabulary in display order.
var KnownGoals = []Goal{
	GoalEndurance, GoalReduceStress, GoalProductivity, GoalEmotional, GoalFitness,
	GoalMentalHealth, GoalWorkLife, GoalPersonalGrowth, GoalRest, GoalOther,
}

var goalAliases = map[string]Goal{
	"stress-reduction": GoalReduceStress,
	"reduce stress":    GoalReduceStress,
	"bajar estres":     GoalReduceStress,
	"endurance":        GoalEndurance,
	"productivity":     GoalProductivity,
	"mental-health":    GoalMentalHealth,
	"work-life":        GoalWorkLife,
	"rest":             GoalRest,
}

// ParseGoal mirrors ParseSymptom for goal tags.
func ParseGoal(s string) Goal {
	key := strings.ToLower(strings.TrimSpace(s))
	if v, ok := goalAliases[key]; ok {
		return v
	}
	return Goal(key)
}

type Goals []Goal

func (g Goals) Has(tag Goal) bool {
	for _, v := range g {
		if v == tag {
			return true
		}
	}
	return false
}
