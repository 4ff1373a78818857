package service

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/phasewise/internal/domain"
)

// ConflictError blocks acceptance of a schedule that contains overlapping
// entries. Conflicts holds every cluster found.
type ConflictError struct {
	Conflicts []domain.ScheduleConflict
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s %s (%d tasks)", c.Date, c.TimeRange, len(c.Tasks)))
	}
	return fmt.Sprintf("schedule has %d conflict(s): %s", len(e.Conflicts), strings.Join(parts, "; "))
}
