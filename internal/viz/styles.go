package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dimvar/internal/units"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title  lipgloss.Style
	Panel  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Unit   lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
	Focus  lipgloss.Style
	Pos    lipgloss.Style
	Neg    lipgloss.Style
	Zero   lipgloss.Style
	Active lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Label:  lipgloss.NewStyle().Foreground(t.Muted),
		Value:  lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Unit:   lipgloss.NewStyle().Foreground(t.Title),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Hint:   lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		Focus:  lipgloss.NewStyle().Bold(true).Foreground(t.Focus),
		Pos:    lipgloss.NewStyle().Bold(true).Foreground(t.Numerator),
		Neg:    lipgloss.NewStyle().Bold(true).Foreground(t.Denominator),
		Zero:   lipgloss.NewStyle().Faint(true).Foreground(t.Muted),
		Active: lipgloss.NewStyle().Underline(true).Foreground(t.Focus),
	}
}

// ExponentBar renders one badge per base dimension, e.g. "m¹ kg¹ s⁻² ...",
// coloured by sign.
func (s Styles) ExponentBar(vec units.Vector) string {
	parts := make([]string, len(vec))
	for i, e := range vec {
		text := units.BaseSymbols[i] + superscript(e)
		switch {
		case e > 0:
			parts[i] = s.Pos.Render(text)
		case e < 0:
			parts[i] = s.Neg.Render(text)
		default:
			parts[i] = s.Zero.Render(text)
		}
	}
	return strings.Join(parts, " ")
}

var superDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻', '.': '·',
}

func superscript(e float64) string {
	var b strings.Builder
	for _, r := range strconv.FormatFloat(e, 'f', -1, 64) {
		if sr, ok := superDigits[r]; ok {
			b.WriteRune(sr)
		}
	}
	return b.String()
}
