// Package tui provides the interactive fuzzy selector used to pick a
// request from a profile.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ideaspaper/xcurl/internal/constants"
	"github.com/ideaspaper/xcurl/internal/stringutil"
	"github.com/ideaspaper/xcurl/pkg/errors"
)

// Choice is one selectable profile request.
type Choice struct {
	Name   string
	Method string
	URL    string
}

// filterValue is what the query is matched against.
func (c Choice) filterValue() string {
	return c.Name + " " + c.Method + " " + c.URL
}

// Styles holds the styling configuration for the selector
type Styles struct {
	Prompt    lipgloss.Style
	Cursor    lipgloss.Style
	Name      lipgloss.Style
	Selected  lipgloss.Style
	Matched   lipgloss.Style
	URL       lipgloss.Style
	Help      lipgloss.Style
	NoResults lipgloss.Style
	Methods   map[string]lipgloss.Style
	Method    lipgloss.Style
}

// DefaultStyles returns the coloured selector styles.
func DefaultStyles() Styles {
	bold := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true) }
	return Styles{
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Cursor:    bold("212"),
		Name:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:  bold("212"),
		Matched:   bold("214"),
		URL:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		NoResults: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Methods: map[string]lipgloss.Style{
			constants.MethodGET:    bold("34"),
			constants.MethodPOST:   bold("214"),
			constants.MethodPUT:    bold("33"),
			constants.MethodDELETE: bold("196"),
			constants.MethodPATCH:  bold("135"),
		},
		Method: bold("252"),
	}
}

// NoColorStyles returns styles that only use bold and italics.
func NoColorStyles() Styles {
	plain := lipgloss.NewStyle()
	bold := lipgloss.NewStyle().Bold(true)
	return Styles{
		Prompt:    plain,
		Cursor:    bold,
		Name:      plain,
		Selected:  bold,
		Matched:   bold,
		URL:       plain,
		Help:      plain,
		NoResults: plain.Italic(true),
		Methods:   map[string]lipgloss.Style{},
		Method:    bold,
	}
}

func (s Styles) method(m string) lipgloss.Style {
	if st, ok := s.Methods[m]; ok {
		return st
	}
	return s.Method
}

type match struct {
	index   int
	matched []int
}

// Model is the Bubbletea model for the selector
type Model struct {
	choices   []Choice
	matches   []match
	cursor    int
	offset    int
	height    int
	width     int
	input     textinput.Model
	styles    Styles
	chosen    int
	cancelled bool
}

// NewModel creates a selector over choices.
func NewModel(choices []Choice, useColors bool) Model {
	ti := textinput.New()
	ti.Placeholder = "request name, method or url"
	ti.CharLimit = 100
	ti.Width = 50
	ti.Focus()

	styles := DefaultStyles()
	if !useColors {
		styles = NoColorStyles()
	}

	m := Model{
		choices: choices,
		input:   ti,
		styles:  styles,
		height:  15,
		width:   80,
		chosen:  -1,
	}
	m.refilter()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if len(m.matches) > 0 {
				m.chosen = m.matches[m.cursor].index
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			m.move(-1)
			return m, nil
		case "down", "ctrl+n":
			m.move(1)
			return m, nil
		case "pgup":
			m.move(-m.height)
			return m, nil
		case "pgdown":
			m.move(m.height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

// move shifts the cursor by delta, clamped to the matches, and scrolls the
// window so the cursor stays visible.
func (m *Model) move(delta int) {
	m.cursor = max(0, min(m.cursor+delta, len(m.matches)-1))
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m *Model) refilter() {
	query := m.input.Value()
	m.matches = make([]match, 0, len(m.choices))

	if query == "" {
		for i := range m.choices {
			m.matches = append(m.matches, match{index: i})
		}
	} else {
		values := make([]string, len(m.choices))
		for i, c := range m.choices {
			values[i] = c.filterValue()
		}
		for _, fm := range fuzzy.Find(query, values) {
			m.matches = append(m.matches, match{index: fm.Index, matched: fm.MatchedIndexes})
		}
	}

	m.cursor = 0
	m.offset = 0
}

// View renders the selector
func (m Model) View() string {
	if m.cancelled {
		return ""
	}
	if m.chosen >= 0 {
		c := m.choices[m.chosen]
		return fmt.Sprintf("%s %s\n", m.styles.method(c.Method).Render(c.Method), c.Name)
	}

	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render("Request: "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(m.styles.NoResults.Render("  no matching requests"))
		b.WriteString("\n")
	}

	end := min(m.offset+m.height, len(m.matches))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderLine(m.matches[i], i == m.cursor))
		b.WriteString("\n")
	}
	if end < len(m.matches) {
		b.WriteString(m.styles.Help.Render(fmt.Sprintf("  … %d more", len(m.matches)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move  enter run  esc cancel"))
	return b.String()
}

func (m Model) renderLine(mt match, current bool) string {
	c := m.choices[mt.index]

	var line strings.Builder
	if current {
		line.WriteString(m.styles.Cursor.Render("> "))
	} else {
		line.WriteString("  ")
	}
	line.WriteString(m.styles.method(c.Method).Render(fmt.Sprintf("%-7s", c.Method)))
	line.WriteString(" ")

	nameStyle := m.styles.Name
	if current {
		nameStyle = m.styles.Selected
	}
	// matched indexes refer to filterValue, whose prefix is the name
	hits := make(map[int]bool, len(mt.matched))
	for _, idx := range mt.matched {
		hits[idx] = true
	}
	for i, r := range c.Name {
		if hits[i] {
			line.WriteString(m.styles.Matched.Render(string(r)))
		} else {
			line.WriteString(nameStyle.Render(string(r)))
		}
	}

	urlWidth := max(m.width-lipgloss.Width(line.String())-4, 10)
	line.WriteString("  ")
	line.WriteString(m.styles.URL.Render(stringutil.TruncateMiddle(c.URL, urlWidth)))
	return line.String()
}

// Chosen returns the index of the chosen request, or -1.
func (m Model) Chosen() int {
	return m.chosen
}

// Cancelled returns true if the selection was cancelled
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Run shows the selector on out and returns the chosen index. Cancelling
// returns errors.ErrCanceled.
func Run(choices []Choice, useColors bool, in io.Reader, out io.Writer) (int, error) {
	if len(choices) == 0 {
		return -1, errors.NewConfigError("profile", "", "has no requests")
	}

	p := tea.NewProgram(NewModel(choices, useColors), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return -1, errors.Wrap(err, "failed to run selector")
	}

	m := final.(Model)
	if m.Cancelled() || m.Chosen() < 0 {
		return -1, errors.ErrCanceled
	}
	return m.Chosen(), nil
}
