package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary = lipgloss.Color("#ff9d00") // hub orange
	ColorText    = lipgloss.Color("#d7d9da") // main text
	ColorMuted   = lipgloss.Color("#9ba0bf") // muted text
	ColorError   = lipgloss.Color("#c75454") // red
	ColorBorder  = lipgloss.Color("#273540") // border

	// Per-type dot colors, mirroring the hub's category palette.
	typeColors = map[string]lipgloss.Color{
		"model":   lipgloss.Color("#ff9d00"),
		"dataset": lipgloss.Color("#2396ed"),
		"space":   lipgloss.Color("#8b5cf6"),
		"user":    lipgloss.Color("#10b981"),
		"org":     lipgloss.Color("#f43f5e"),
	}
)

// --- Reusable Styles ---

var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Bold(true)

	ChipActiveStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	ChipInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Faint(true)

	DropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			PaddingLeft(1).
			PaddingRight(1)
)

// typeDot renders the colored category dot for a type key.
func typeDot(typ string) string {
	color, ok := typeColors[typ]
	if !ok {
		color = ColorMuted
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}
