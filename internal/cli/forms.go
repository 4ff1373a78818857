package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/phasewise/internal/cli/formatter"
	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// phasewiseHuhTheme matches the formatter palette.
func phasewiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planFormValues are the string-typed fields the plan form edits.
type planFormValues struct {
	CycleDay   string
	Symptoms   []string
	Goals      []string
	Intensity  string
	Hours      string
	Fixed      string
	Activities string
}

func newPlanFormValues(in contract.HormonalAgentInput) planFormValues {
	v := planFormValues{Intensity: string(in.Preferences.Intensity)}
	if in.CycleDay > 0 {
		v.CycleDay = strconv.Itoa(in.CycleDay)
	}
	for _, s := range in.Symptoms {
		v.Symptoms = append(v.Symptoms, string(s))
	}
	for _, g := range in.Goals {
		v.Goals = append(v.Goals, string(g))
	}
	if in.Preferences.TimeAvailability > 0 {
		v.Hours = strconv.FormatFloat(in.Preferences.TimeAvailability, 'f', -1, 64)
	}

	lines := make([]string, 0, len(in.FixedActivities))
	for _, f := range in.FixedActivities {
		lines = append(lines, fmt.Sprintf("%s,%s,%s", f.Title, f.StartTime, strconv.FormatFloat(f.DurationHours, 'f', -1, 64)))
	}
	v.Fixed = strings.Join(lines, "\n")

	lines = lines[:0]
	for _, a := range in.VariableActivities {
		line := a.Title + "," + a.Category
		var hours string
		if a.DurationHours != nil {
			hours = strconv.FormatFloat(*a.DurationHours, 'f', -1, 64)
		}
		switch {
		case a.PreferredTime != "":
			line += "," + hours + "," + string(a.PreferredTime)
		case hours != "":
			line += "," + hours
		}
		lines = append(lines, line)
	}
	v.Activities = strings.Join(lines, "\n")
	return v
}

func planForm(v *planFormValues) *huh.Form {
	symptoms := make([]huh.Option[string], 0, len(domain.KnownSymptoms))
	for _, s := range domain.KnownSymptoms {
		symptoms = append(symptoms, huh.NewOption(string(s), string(s)))
	}
	goals := make([]huh.Option[string], 0, len(domain.KnownGoals))
	for _, g := range domain.KnownGoals {
		goals = append(goals, huh.NewOption(string(g), string(g)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cycle day (1-28, blank to use the stored day)").
				Value(&v.CycleDay).
				Validate(validateOptionalCycleDay),
			huh.NewMultiSelect[string]().
				Title("Symptoms").
				Options(symptoms...).
				Value(&v.Symptoms),
			huh.NewMultiSelect[string]().
				Title("Goals").
				Options(goals...).
				Value(&v.Goals),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Preferred intensity").
				Options(
					huh.NewOption("Low", string(domain.IntensityLow)),
					huh.NewOption("Medium", string(domain.IntensityMedium)),
					huh.NewOption("High", string(domain.IntensityHigh)),
				).
				Value(&v.Intensity),
			huh.NewInput().
				Title("Hours available per day").
				Placeholder("2").
				Value(&v.Hours).
				Validate(validateOptionalHours),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Fixed commitments").
				Description("One per line: title,HH:MM,hours").
				Value(&v.Fixed).
				Validate(validateLines(func(s string) error { _, err := parseFixed(s); return err })),
			huh.NewText().
				Title("Flexible activities").
				Description("One per line: title,category[,hours[,morning|afternoon|evening]]").
				Value(&v.Activities).
				Validate(validateLines(func(s string) error { _, err := parseActivity(s); return err })),
		),
	).WithTheme(phasewiseHuhTheme()).WithShowHelp(false)
}

// apply writes the form values over in. List fields are replaced.
func (v planFormValues) apply(in *contract.HormonalAgentInput) error {
	if v.CycleDay != "" {
		day, err := strconv.Atoi(v.CycleDay)
		if err != nil {
			return fmt.Errorf("cycle day: %w", err)
		}
		in.CycleDay = day
		in.HormonalPhase = ""
	}

	in.Symptoms = make(domain.Symptoms, 0, len(v.Symptoms))
	for _, s := range v.Symptoms {
		in.Symptoms = append(in.Symptoms, domain.ParseSymptom(s))
	}
	in.Goals = make(domain.Goals, 0, len(v.Goals))
	for _, g := range v.Goals {
		in.Goals = append(in.Goals, domain.ParseGoal(g))
	}
	if iv, ok := domain.ParseIntensity(v.Intensity); ok {
		in.Preferences.Intensity = iv
	}
	if v.Hours != "" {
		h, err := strconv.ParseFloat(v.Hours, 64)
		if err != nil {
			return fmt.Errorf("hours: %w", err)
		}
		in.Preferences.TimeAvailability = h
	}

	in.FixedActivities = nil
	for _, line := range nonEmptyLines(v.Fixed) {
		f, err := parseFixed(line)
		if err != nil {
			return err
		}
		in.FixedActivities = append(in.FixedActivities, f)
	}
	in.VariableActivities = nil
	for _, line := range nonEmptyLines(v.Activities) {
		a, err := parseActivity(line)
		if err != nil {
			return err
		}
		in.VariableActivities = append(in.VariableActivities, a)
	}
	return nil
}

func runPlanForm(in *contract.HormonalAgentInput) error {
	v := newPlanFormValues(*in)
	if err := planForm(&v).Run(); err != nil {
		return err
	}
	return v.apply(in)
}

func validateOptionalCycleDay(s string) error {
	if s == "" {
		return nil
	}
	d, err := strconv.Atoi(s)
	if err != nil || d < 1 || d > domain.DefaultCycleLength {
		return fmt.Errorf("enter a day between 1 and %d", domain.DefaultCycleLength)
	}
	return nil
}

func validateOptionalHours(s string) error {
	if s == "" {
		return nil
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || h < 0 || h > 24 {
		return fmt.Errorf("enter a number of hours between 0 and 24")
	}
	return nil
}

func validateLines(check func(string) error) func(string) error {
	return func(s string) error {
		for _, line := range nonEmptyLines(s) {
			if err := check(line); err != nil {
				return err
			}
		}
		return nil
	}
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// secretForm asks for a value without echoing it.
func secretForm(title string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(value),
		),
	).WithTheme(phasewiseHuhTheme()).WithShowHelp(false)
}
