// Package tui is an interactive unit converter built on bubbletea.
package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dimvar/internal/config"
	"github.com/san-kum/dimvar/internal/dimvar"
	"github.com/san-kum/dimvar/internal/viz"
)

type state int

const (
	stateMenu state = iota
	stateConvert
)

const customEntry = "custom"

type field int

const (
	fieldValue field = iota
	fieldFrom
	fieldTo
	fieldCount
)

var fieldNames = [fieldCount]string{"value", "from", "to"}

type model struct {
	state   state
	cursor  int
	entries []string

	fields  [fieldCount]string
	focus   field
	editing bool
	editBuf string

	theme  int
	styles viz.Styles
	prec   int

	width  int
	height int
}

// New returns the converter model. theme selects the starting colour scheme.
func New(theme string, prec int) *model {
	entries := []string{customEntry}
	for _, cat := range config.Categories() {
		for _, name := range config.ListPresets(cat) {
			entries = append(entries, cat+"/"+name)
		}
	}

	idx := 0
	for i, name := range viz.ThemeNames() {
		if name == theme {
			idx = i
		}
	}

	return &model{
		state:   stateMenu,
		entries: entries,
		fields:  [fieldCount]string{"1", "m", "ft"},
		theme:   idx,
		styles:  viz.NewStyles(viz.Themes[idx]),
		prec:    prec,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConvert:
		return m.convertKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "t":
		m.cycleTheme()
	case "enter", " ":
		m.selectEntry(m.entries[m.cursor])
		m.state = stateConvert
		m.focus = fieldValue
	}
	return m, nil
}

func (m model) convertKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.Type {
		case tea.KeyEnter:
			m.fields[m.focus] = strings.TrimSpace(m.editBuf)
			m.editing = false
			m.editBuf = ""
		case tea.KeyEsc:
			m.editing = false
			m.editBuf = ""
		case tea.KeyBackspace:
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		case tea.KeySpace:
			m.editBuf += " "
		case tea.KeyRunes:
			m.editBuf += m.acceptRunes(msg.Runes)
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.focus > fieldValue {
			m.focus--
		}
	case "down", "j", "tab":
		if m.focus < fieldCount-1 {
			m.focus++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = m.fields[m.focus]
	case "s":
		m.fields[fieldFrom], m.fields[fieldTo] = m.fields[fieldTo], m.fields[fieldFrom]
	case "t":
		m.cycleTheme()
	}
	return m, nil
}

// acceptRunes filters typed input for the focused field.
func (m model) acceptRunes(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if m.focus == fieldValue {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == 'e' || r == '+' {
				b.WriteRune(r)
			}
			continue
		}
		if r >= ' ' && r <= '~' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m *model) selectEntry(entry string) {
	if entry == customEntry {
		return
	}
	cat, name, _ := strings.Cut(entry, "/")
	if p := config.GetPreset(cat, name); p != nil {
		m.fields = [fieldCount]string{
			strconv.FormatFloat(p.Value, 'g', -1, 64),
			p.From,
			p.To,
		}
	}
}

func (m *model) cycleTheme() {
	m.theme = (m.theme + 1) % len(viz.Themes)
	m.styles = viz.NewStyles(viz.Themes[m.theme])
}

// result converts the current fields, using the edit buffer for the
// focused field while it is being edited.
func (m model) result() (dimvar.Variable, float64, error) {
	f := m.fields
	if m.editing {
		f[m.focus] = m.editBuf
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(f[fieldValue]), 64)
	if err != nil {
		return dimvar.Variable{}, 0, err
	}
	v, err := dimvar.New(value, f[fieldFrom])
	if err != nil {
		return dimvar.Variable{}, 0, err
	}
	out, err := v.ValueIn(f[fieldTo])
	if err != nil {
		return v, 0, err
	}
	return v, out, nil
}

// Run starts the converter in the alternate screen.
func Run(theme string, prec int) error {
	p := tea.NewProgram(New(theme, prec), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
