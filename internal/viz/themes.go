package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the live field view.
type Theme struct {
	Name   string
	Balls  lipgloss.Color
	Border lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

var Themes = []Theme{
	{
		Name:   "neon",
		Balls:  lipgloss.Color("#00ffff"),
		Border: lipgloss.Color("#444466"),
		Accent: lipgloss.Color("#ff00ff"),
		Muted:  lipgloss.Color("#666688"),
	},
	{
		Name:   "retro",
		Balls:  lipgloss.Color("#00ff00"), // green phosphor
		Border: lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#008800"),
	},
	{
		Name:   "ocean",
		Balls:  lipgloss.Color("#00a8cc"),
		Border: lipgloss.Color("#0077be"),
		Accent: lipgloss.Color("#ffd700"),
		Muted:  lipgloss.Color("#4488aa"),
	},
	{
		Name:   "minimal",
		Balls:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#888888"),
	},
}

// GetTheme returns a theme by name, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme cycles through Themes.
func NextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
