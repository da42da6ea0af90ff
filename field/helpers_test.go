package field

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inputmask/mask"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func mustNew(t *testing.T, cfg Config) Model {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func assertField(t *testing.T, m Model, value string, sel mask.Selection) {
	t.Helper()
	if got := m.Editor().Value(); got != value {
		t.Fatalf("value: got %q, want %q", got, value)
	}
	if got := m.Editor().Selection(); got != sel {
		t.Fatalf("selection: got %v, want %v", got, sel)
	}
}
