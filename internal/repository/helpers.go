package repository

import (
	"time"

	"github.com/alexanderramin/phasewise/internal/domain"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// cycleLengthOrDefault stores the model length when none was given.
func cycleLengthOrDefault(n int) int {
	if n <= 0 {
		return domain.DefaultCycleLength
	}
	return n
}
