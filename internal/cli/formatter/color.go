package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

type energyStyle struct {
	color lipgloss.Color
	icon  string
	label string
}

// energyStyles is keyed by the kind of work an entry suits.
var energyStyles = map[domain.EnergyType]energyStyle{
	domain.EnergyDeepWork: {color: lipgloss.Color("#16697A"), icon: "💡", label: "deep work"},
	domain.EnergyAdmin:    {color: lipgloss.Color("#82C0CC"), icon: "🗂", label: "admin"},
	domain.EnergySocial:   {color: lipgloss.Color("#FFA62B"), icon: "🤝", label: "social"},
	domain.EnergyRest:     {color: lipgloss.Color("#EDE7E3"), icon: "🌙", label: "rest"},
}

var fallbackEnergyStyle = energyStyle{color: lipgloss.Color("#EDE7E3"), icon: "📋", label: "task"}

func energyStyleFor(t domain.EnergyType) energyStyle {
	if s, ok := energyStyles[t]; ok {
		return s
	}
	return fallbackEnergyStyle
}

// EnergyIcon returns the icon shown next to entries of energy type t.
func EnergyIcon(t domain.EnergyType) string {
	return energyStyleFor(t).icon
}

// EnergyTypeBadge renders the icon and label of t in its color.
func EnergyTypeBadge(t domain.EnergyType) string {
	s := energyStyleFor(t)
	return lipgloss.NewStyle().Foreground(s.color).Render(s.icon + " " + s.label)
}

// EnergyLevelColor returns the style for an energy level.
func EnergyLevelColor(level domain.EnergyLevel) lipgloss.Style {
	switch level {
	case domain.EnergyHigh:
		return StyleGreen
	case domain.EnergyMedium:
		return StyleYellow
	case domain.EnergyLow:
		return StyleRed
	default:
		return StyleDim
	}
}

// EnergyIndicator returns a colored indicator such as "● HIGH".
func EnergyIndicator(level domain.EnergyLevel) string {
	if level == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return EnergyLevelColor(level).Render("● " + strings.ToUpper(string(level)))
}

// PhaseColor returns the accent style for a cycle phase.
func PhaseColor(phase domain.CyclePhase) lipgloss.Style {
	switch phase {
	case domain.PhaseMenstrual:
		return StyleRed
	case domain.PhaseFollicular:
		return StyleGreen
	case domain.PhaseOvulatory:
		return StyleYellow
	case domain.PhaseLuteal:
		return StylePurple
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
