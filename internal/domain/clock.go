package domain

import (
	"fmt"
	"strings"
	"time"
)

// ParseClock converts "HH:MM" to minutes from midnight. A full datetime such
// as "2025-03-10T09:30" or "2025-03-10T09:30:00Z" contributes its time part.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[i+1:]
		if len(s) > 5 {
			s = s[:5]
		}
	}
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("parsing clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// HoursToMinutes truncates a fractional hour count to whole minutes.
func HoursToMinutes(hours float64) int {
	return int(hours * 60)
}

// SubMinute reports whether a positive duration truncates to zero minutes
// and so can never be placed.
func SubMinute(hours float64) bool {
	return hours > 0 && HoursToMinutes(hours) < 1
}

// FormatDuration renders a fractional hour count as "HH:MM".
func FormatDuration(hours float64) string {
	return FormatClock(HoursToMinutes(hours))
}
