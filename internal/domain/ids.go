package domain

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator assigns identifiers to scheduled entries.
type IDGenerator interface {
	NewID(date, startTime, title string) string
}

// scheduleNamespace seeds the name-based identifiers of DeterministicIDs.
var scheduleNamespace = uuid.MustParse("6f1d7a52-3c1e-4b8e-9a57-2f0c8e4d9b31")

// DeterministicIDs derives a UUIDv5 from date, start time and title, so the
// same placement always gets the same id.
type DeterministicIDs struct{}

func (DeterministicIDs) NewID(date, startTime, title string) string {
	return uuid.NewSHA1(scheduleNamespace, []byte(date+"|"+startTime+"|"+title)).String()
}

// RandomIDs returns a fresh UUIDv4 for every call.
type RandomIDs struct{}

func (RandomIDs) NewID(string, string, string) string {
	return uuid.New().String()
}

// TaskIDFromTitle slugs a title into the stable task reference stored on
// scheduled entries.
func TaskIDFromTitle(title string) string {
	return "task-" + strings.Join(strings.Fields(strings.ToLower(title)), "-")
}
