package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the scale shell. Stable, Near and Far color the three
// stabilization bands; Left and Right tint the per-side totals.
type Theme struct {
	Name      string
	Title     lipgloss.Color
	Beam      lipgloss.Color
	Left      lipgloss.Color
	Right     lipgloss.Color
	Highlight lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Stable    lipgloss.Color
	Near      lipgloss.Color
	Far       lipgloss.Color
}

var (
	ThemeBrass = Theme{
		Name:      "brass",
		Title:     lipgloss.Color("#d4a017"), // polished brass
		Beam:      lipgloss.Color("#b08d57"), // bronze
		Left:      lipgloss.Color("#7fb3d5"),
		Right:     lipgloss.Color("#e59866"),
		Highlight: lipgloss.Color("#f7dc6f"),
		Text:      lipgloss.Color("#f5efe0"),
		Muted:     lipgloss.Color("#7d6e57"),
		Stable:    lipgloss.Color("#58d68d"),
		Near:      lipgloss.Color("#f4d03f"),
		Far:       lipgloss.Color("#ec7063"),
	}

	ThemeLab = Theme{
		Name:      "lab",
		Title:     lipgloss.Color("#00ff00"), // green phosphor
		Beam:      lipgloss.Color("#00cc00"),
		Left:      lipgloss.Color("#88ff88"),
		Right:     lipgloss.Color("#88ff88"),
		Highlight: lipgloss.Color("#ccffcc"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Stable:    lipgloss.Color("#88ff88"),
		Near:      lipgloss.Color("#ffff00"),
		Far:       lipgloss.Color("#ff3333"),
	}

	ThemeChalk = Theme{
		Name:      "chalk",
		Title:     lipgloss.Color("#ffffff"),
		Beam:      lipgloss.Color("#dddddd"),
		Left:      lipgloss.Color("#bbbbbb"),
		Right:     lipgloss.Color("#bbbbbb"),
		Highlight: lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Stable:    lipgloss.Color("#00ff00"),
		Near:      lipgloss.Color("#ffaa00"),
		Far:       lipgloss.Color("#ff0000"),
	}

	ThemeNeon = Theme{
		Name:      "neon",
		Title:     lipgloss.Color("#ff00ff"),
		Beam:      lipgloss.Color("#00ffff"),
		Left:      lipgloss.Color("#00ffff"),
		Right:     lipgloss.Color("#ff00ff"),
		Highlight: lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Stable:    lipgloss.Color("#00ff00"),
		Near:      lipgloss.Color("#ff8800"),
		Far:       lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{
		ThemeBrass,
		ThemeLab,
		ThemeChalk,
		ThemeNeon,
	}
)

// GetTheme returns a theme by name, brass if unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeBrass
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
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
