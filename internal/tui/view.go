package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/dimvar/internal/dimvar"
	"github.com/san-kum/dimvar/internal/viz"
)

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConvert:
		return m.viewConvert()
	}
	return ""
}

func (m model) viewMenu() string {
	s := m.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("    " + s.Title.Render("d i m v a r") + "  " + s.Hint.Render(viz.Themes[m.theme].Name) + "\n\n")

	for i, entry := range m.entries {
		if i == m.cursor {
			b.WriteString("    " + s.Focus.Render("▸ ") + s.Value.Render(entry) + "\n")
		} else {
			b.WriteString("      " + s.Label.Render(entry) + "\n")
		}
	}

	b.WriteString("\n" + s.Hint.Render("    ↑↓ select   enter open   t theme   q quit") + "\n")
	return b.String()
}

func (m model) viewConvert() string {
	s := m.styles
	var b strings.Builder

	for i, name := range fieldNames {
		f := field(i)
		val := m.fields[f]
		if m.editing && f == m.focus {
			val = m.editBuf + "▋"
		}
		label := fmt.Sprintf("%-6s", name)
		if f == m.focus {
			b.WriteString(s.Focus.Render("▸ ") + s.Value.Render(label) + " " + s.Active.Render(val) + "\n")
		} else {
			b.WriteString("  " + s.Label.Render(label) + " " + s.Unit.Render(val) + "\n")
		}
	}
	b.WriteString("\n")

	v, out, err := m.result()
	if err != nil {
		b.WriteString(s.Error.Render(err.Error()) + "\n")
	} else {
		b.WriteString(s.Value.Render(strconv.FormatFloat(out, 'f', m.prec, 64)) + " " + s.Unit.Render(m.currentTo()) + "\n")
		b.WriteString(s.Label.Render("= ") + v.FormatPrec(m.prec) + "\n")
	}
	if err == nil || errors.Is(err, dimvar.ErrDimensionMismatch) {
		b.WriteString(s.ExponentBar(v.Unit()) + "\n")
	}

	panel := s.Panel.Render(strings.TrimRight(b.String(), "\n"))
	hint := s.Hint.Render("↑↓ field  enter edit  s swap  t theme  esc back")
	return "\n" + panel + "\n" + hint + "\n"
}

func (m model) currentTo() string {
	if m.editing && m.focus == fieldTo {
		return m.editBuf
	}
	return m.fields[fieldTo]
}
