package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Faint   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Accent  lipgloss.Color
}

var (
	ThemeVacuum = Theme{
		Name:    "vacuum",
		Primary: lipgloss.Color("86"),
		Text:    lipgloss.Color("255"),
		Muted:   lipgloss.Color("242"),
		Faint:   lipgloss.Color("238"),
		Success: lipgloss.Color("82"),
		Warning: lipgloss.Color("220"),
		Accent:  lipgloss.Color("213"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#00aa00"),
		Faint:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Accent:  lipgloss.Color("#00cc00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Faint:   lipgloss.Color("#444444"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
		Accent:  lipgloss.Color("#0088ff"),
	}

	Themes = []Theme{ThemeVacuum, ThemeRetro, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeVacuum
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

type palette struct {
	primary, text, dim, dimmer, good, warn, accent lipgloss.Style
	label                                          lipgloss.Style
}

func newPalette(t Theme) palette {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return palette{
		primary: fg(t.Primary).Bold(true),
		text:    fg(t.Text),
		dim:     fg(t.Muted),
		dimmer:  fg(t.Faint),
		good:    fg(t.Success),
		warn:    fg(t.Warning),
		accent:  fg(t.Accent),
		label:   fg(t.Muted).Width(14),
	}
}
