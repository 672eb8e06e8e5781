package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ideaspaper/xcurl/pkg/errors"
)

func sampleChoices() []Choice {
	return []Choice{
		{Name: "create", Method: "POST", URL: "example.test/items"},
		{Name: "list", Method: "GET", URL: "example.test/items"},
		{Name: "remove", Method: "DELETE", URL: "example.test/items/1"},
	}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func TestNewModel(t *testing.T) {
	m := NewModel(sampleChoices(), true)

	if len(m.matches) != 3 {
		t.Errorf("expected 3 matches, got %d", len(m.matches))
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", m.cursor)
	}
	if m.Chosen() != -1 {
		t.Errorf("expected Chosen() -1, got %d", m.Chosen())
	}
	if m.Cancelled() {
		t.Error("expected cancelled to be false")
	}

	empty := NewModel(nil, false)
	if len(empty.matches) != 0 {
		t.Errorf("expected no matches, got %d", len(empty.matches))
	}
}

func TestModelKeys(t *testing.T) {
	t.Run("escape cancels", func(t *testing.T) {
		m, cmd := press(NewModel(sampleChoices(), true), tea.KeyEsc)
		if !m.Cancelled() {
			t.Error("expected cancelled after Esc")
		}
		if cmd == nil {
			t.Error("expected quit command")
		}
		if m.View() != "" {
			t.Errorf("cancelled view should be empty, got %q", m.View())
		}
	})

	t.Run("ctrl+c cancels", func(t *testing.T) {
		m, _ := press(NewModel(sampleChoices(), true), tea.KeyCtrlC)
		if !m.Cancelled() {
			t.Error("expected cancelled after Ctrl+C")
		}
	})

	t.Run("enter chooses current", func(t *testing.T) {
		m, _ := press(NewModel(sampleChoices(), true), tea.KeyDown)
		m, cmd := press(m, tea.KeyEnter)
		if m.Chosen() != 1 {
			t.Errorf("Chosen() = %d, want 1", m.Chosen())
		}
		if cmd == nil {
			t.Error("expected quit command")
		}
		if !strings.Contains(m.View(), "list") {
			t.Errorf("final view should name the request, got %q", m.View())
		}
	})

	t.Run("cursor is clamped", func(t *testing.T) {
		m, _ := press(NewModel(sampleChoices(), true), tea.KeyUp)
		if m.cursor != 0 {
			t.Errorf("cursor = %d, want 0", m.cursor)
		}
		for range 5 {
			m, _ = press(m, tea.KeyDown)
		}
		if m.cursor != 2 {
			t.Errorf("cursor = %d, want 2", m.cursor)
		}
		m, _ = press(m, tea.KeyPgUp)
		if m.cursor != 0 {
			t.Errorf("cursor after pgup = %d, want 0", m.cursor)
		}
	})

	t.Run("enter with no matches chooses nothing", func(t *testing.T) {
		m := typeText(NewModel(sampleChoices(), true), "zzzz")
		m, _ = press(m, tea.KeyEnter)
		if m.Chosen() != -1 {
			t.Errorf("Chosen() = %d, want -1", m.Chosen())
		}
	})
}

func TestModelFilter(t *testing.T) {
	m := typeText(NewModel(sampleChoices(), false), "rem")
	if len(m.matches) == 0 || m.choices[m.matches[0].index].Name != "remove" {
		t.Fatalf("expected remove to match first, got %v", m.matches)
	}

	m, _ = press(m, tea.KeyEnter)
	if m.Chosen() != 2 {
		t.Errorf("Chosen() = %d, want 2", m.Chosen())
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(sampleChoices(), false)
	view := m.View()

	for _, want := range []string{"Request:", "> ", "create", "list", "example.test/items/1", "esc cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m = typeText(m, "zzzz")
	if !strings.Contains(m.View(), "no matching requests") {
		t.Errorf("expected no-results message:\n%s", m.View())
	}
}

func TestModelScroll(t *testing.T) {
	var choices []Choice
	for i := range 30 {
		choices = append(choices, Choice{Name: strings.Repeat("r", i+1), Method: "GET", URL: "x.test"})
	}
	m := NewModel(choices, false)
	for range 20 {
		m, _ = press(m, tea.KeyDown)
	}
	if m.cursor != 20 || m.offset != 20-m.height+1 {
		t.Errorf("cursor=%d offset=%d", m.cursor, m.offset)
	}
	if !strings.Contains(m.View(), "more") {
		t.Error("expected overflow indicator")
	}
}

func TestRunWithoutChoices(t *testing.T) {
	_, err := Run(nil, false, strings.NewReader(""), &bytes.Buffer{})
	if !errors.Is(err, errors.ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}
