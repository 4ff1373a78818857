package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/domain"
	"gopkg.in/yaml.v3"
)

// dateValue is a pflag.Value holding an optional YYYY-MM-DD date.
type dateValue struct {
	t   time.Time
	set bool
}

func (d *dateValue) String() string {
	if !d.set {
		return ""
	}
	return d.t.Format(domain.DateFormat)
}

func (d *dateValue) Set(s string) error {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	d.t, d.set = t, true
	return nil
}

func (d *dateValue) Type() string { return "date" }

// orToday returns the date, or the calendar day of now when unset.
func (d *dateValue) orToday(now time.Time) time.Time {
	if d.set {
		return d.t
	}
	y, m, day := now.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// loadInputFile reads a plan input from YAML or JSON.
func loadInputFile(path string) (contract.HormonalAgentInput, error) {
	var in contract.HormonalAgentInput
	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("reading input: %w", err)
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parsing %s: %w", path, err)
	}
	return in.Canonical(), nil
}

// parseFixed reads "Title,HH:MM,hours". The start time may be empty.
func parseFixed(s string) (domain.FixedActivity, error) {
	parts := splitFields(s)
	if len(parts) != 3 || parts[0] == "" {
		return domain.FixedActivity{}, fmt.Errorf("fixed activity %q: want \"title,HH:MM,hours\"", s)
	}
	hours, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || hours <= 0 {
		return domain.FixedActivity{}, fmt.Errorf("fixed activity %q: hours must be a positive number", s)
	}
	if domain.SubMinute(hours) {
		return domain.FixedActivity{}, fmt.Errorf("fixed activity %q: must last at least one minute", s)
	}
	if parts[1] != "" {
		if _, err := domain.ParseClock(parts[1]); err != nil {
			return domain.FixedActivity{}, fmt.Errorf("fixed activity %q: %w", s, err)
		}
	}
	return domain.FixedActivity{Title: parts[0], StartTime: parts[1], DurationHours: hours}, nil
}

// parseActivity reads "Title,category[,hours[,morning|afternoon|evening]]".
func parseActivity(s string) (domain.VariableActivity, error) {
	parts := splitFields(s)
	if len(parts) < 2 || len(parts) > 4 || parts[0] == "" {
		return domain.VariableActivity{}, fmt.Errorf("activity %q: want \"title,category[,hours[,time of day]]\"", s)
	}
	a := domain.VariableActivity{Title: parts[0], Category: parts[1]}
	if len(parts) > 2 && parts[2] != "" {
		hours, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || hours <= 0 {
			return domain.VariableActivity{}, fmt.Errorf("activity %q: hours must be a positive number", s)
		}
		if domain.SubMinute(hours) {
			return domain.VariableActivity{}, fmt.Errorf("activity %q: must last at least one minute", s)
		}
		a.DurationHours = &hours
	}
	if len(parts) > 3 {
		switch tod := domain.TimeOfDay(strings.ToLower(parts[3])); tod {
		case domain.TimeMorning, domain.TimeAfternoon, domain.TimeEvening:
			a.PreferredTime = tod
		default:
			return domain.VariableActivity{}, fmt.Errorf("activity %q: unknown time of day %q", s, parts[3])
		}
	}
	return a, nil
}

func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// loadScheduleFile reads schedule entries from YAML or JSON. The document
// is either a list of entries or an object with a "schedule" list, the
// shape a stored snapshot has.
func loadScheduleFile(path string) ([]domain.ScheduledTask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		var tasks []domain.ScheduledTask
		if err := root.Decode(&tasks); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return tasks, nil
	case yaml.MappingNode:
		var snap struct {
			Schedule []domain.ScheduledTask `yaml:"schedule"`
		}
		if err := root.Decode(&snap); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return snap.Schedule, nil
	default:
		return nil, fmt.Errorf("parsing %s: expected a list of entries or an object with \"schedule\"", path)
	}
}
