package scheduler

import (
	"strings"

	"github.com/alexanderramin/phasewise/internal/domain"
)

// EnergyTypeFor maps an energy level onto the kind of work it suits.
func EnergyTypeFor(level domain.EnergyLevel, phase domain.CyclePhase) domain.EnergyType {
	switch level {
	case domain.EnergyHigh:
		return domain.EnergyDeepWork
	case domain.EnergyMedium:
		if phase == domain.PhaseLuteal {
			return domain.EnergyAdmin
		}
		return domain.EnergySocial
	default:
		return domain.EnergyRest
	}
}

// ToScheduledTasks converts generated activities into schedule entries,
// assigning ids with ids.
func ToScheduledTasks(activities []domain.GeneratedActivity, ids domain.IDGenerator) []domain.ScheduledTask {
	if ids == nil {
		ids = domain.DeterministicIDs{}
	}
	tasks := make([]domain.ScheduledTask, 0, len(activities))
	for _, a := range activities {
		category := strings.ToLower(a.Category)
		tasks = append(tasks, domain.ScheduledTask{
			ID:          ids.NewID(a.Date, a.StartTime, a.Title),
			TaskID:      domain.TaskIDFromTitle(a.Title),
			Title:       a.Title,
			Category:    a.Category,
			Date:        a.Date,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			Phase:       a.Phase,
			EnergyLevel: a.EnergyLevel,
			EnergyType:  EnergyTypeFor(a.EnergyLevel, a.Phase),
			IsProject:   strings.Contains(category, "proyecto") || strings.Contains(category, "project"),
			Repeats:     a.RepeatFrequency != "" && a.RepeatFrequency != domain.RepeatNone,
		})
	}
	return tasks
}
