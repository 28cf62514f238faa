package ui

import "github.com/charmbracelet/lipgloss"

// Theme is a lipgloss palette selected through the colorTheme preference.
type Theme struct {
	Subtle    lipgloss.TerminalColor
	Highlight lipgloss.TerminalColor
	Special   lipgloss.TerminalColor
	Text      lipgloss.TerminalColor
	Muted     lipgloss.TerminalColor
	Danger    lipgloss.TerminalColor
}

var (
	lightTheme = Theme{
		Subtle:    lipgloss.Color("#D9DCCF"),
		Highlight: lipgloss.Color("#874BFD"),
		Special:   lipgloss.Color("#43BF6D"),
		Text:      lipgloss.Color("#1a1a1a"),
		Muted:     lipgloss.Color("#666666"),
		Danger:    lipgloss.Color("#CC0000"),
	}
	darkTheme = Theme{
		Subtle:    lipgloss.Color("#383838"),
		Highlight: lipgloss.Color("#7D56F4"),
		Special:   lipgloss.Color("#73F59F"),
		Text:      lipgloss.Color("#fafafa"),
		Muted:     lipgloss.Color("#888888"),
		Danger:    lipgloss.Color("#FF5555"),
	}
	systemTheme = Theme{
		Subtle:    lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"},
		Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
		Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
		Text:      lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"},
		Muted:     lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"},
		Danger:    lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},
	}
)

// ThemeFor maps the colorTheme preference to a palette; unknown values fall
// back to light, matching the preference default.
func ThemeFor(name string) Theme {
	switch name {
	case "dark":
		return darkTheme
	case "system":
		return systemTheme
	default:
		return lightTheme
	}
}

// Styles carries every style the views use, derived from one Theme.
type Styles struct {
	Header           lipgloss.Style
	Panel            lipgloss.Style
	ActivePanel      lipgloss.Style
	Title            lipgloss.Style
	Selected         lipgloss.Style
	Muted            lipgloss.Style
	StatusBar        lipgloss.Style
	Label            lipgloss.Style
	Tag              lipgloss.Style
	Error            lipgloss.Style
	Dialog           lipgloss.Style
	ListItem         lipgloss.Style
	SelectedListItem lipgloss.Style
	KeyHint          lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Highlight).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Subtle).
			MarginBottom(1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Subtle).
			Padding(1, 2),

		ActivePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Highlight).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			MarginBottom(1),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Special),

		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1).
			MarginTop(1),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Highlight),

		Tag: lipgloss.NewStyle().
			Foreground(t.Special).
			Padding(0, 1).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(t.Danger).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Highlight).
			Padding(2, 3).
			Align(lipgloss.Center),

		ListItem: lipgloss.NewStyle().
			Padding(0, 1),

		SelectedListItem: lipgloss.NewStyle().
			Padding(0, 1).
			Background(t.Highlight).
			Foreground(lipgloss.Color("#000000")),

		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted),
	}
}
