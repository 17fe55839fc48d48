package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a colour scheme for results and exponent badges. Numerator and
// Denominator colour positive and negative base exponents.
type Theme struct {
	Name        string
	Title       lipgloss.Color
	Focus       lipgloss.Color
	Border      lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Numerator   lipgloss.Color
	Denominator lipgloss.Color
	Error       lipgloss.Color
}

var (
	ThemeSlate = Theme{
		Name:        "slate",
		Title:       lipgloss.Color("#7aa2f7"),
		Focus:       lipgloss.Color("#bb9af7"),
		Border:      lipgloss.Color("#3b4261"),
		Text:        lipgloss.Color("#c0caf5"),
		Muted:       lipgloss.Color("#565f89"),
		Numerator:   lipgloss.Color("#9ece6a"),
		Denominator: lipgloss.Color("#e0af68"),
		Error:       lipgloss.Color("#f7768e"),
	}

	ThemePaper = Theme{
		Name:        "paper",
		Title:       lipgloss.Color("#1f4e79"),
		Focus:       lipgloss.Color("#8b3a62"),
		Border:      lipgloss.Color("#a0a0a0"),
		Text:        lipgloss.Color("#202020"),
		Muted:       lipgloss.Color("#7a7a7a"),
		Numerator:   lipgloss.Color("#2e7d32"),
		Denominator: lipgloss.Color("#c62828"),
		Error:       lipgloss.Color("#b71c1c"),
	}

	ThemeSolar = Theme{
		Name:        "solar",
		Title:       lipgloss.Color("#268bd2"),
		Focus:       lipgloss.Color("#d33682"),
		Border:      lipgloss.Color("#586e75"),
		Text:        lipgloss.Color("#eee8d5"),
		Muted:       lipgloss.Color("#657b83"),
		Numerator:   lipgloss.Color("#859900"),
		Denominator: lipgloss.Color("#cb4b16"),
		Error:       lipgloss.Color("#dc322f"),
	}

	// ThemeMono uses 256-colour greys only; exponent signs differ by shade.
	ThemeMono = Theme{
		Name:        "mono",
		Title:       lipgloss.Color("255"),
		Focus:       lipgloss.Color("255"),
		Border:      lipgloss.Color("240"),
		Text:        lipgloss.Color("252"),
		Muted:       lipgloss.Color("243"),
		Numerator:   lipgloss.Color("255"),
		Denominator: lipgloss.Color("248"),
		Error:       lipgloss.Color("255"),
	}

	Themes = []Theme{ThemeSlate, ThemePaper, ThemeSolar, ThemeMono}
)

// GetTheme returns the named theme, or slate when name is unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSlate
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
