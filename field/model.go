package field

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inputmask/internal/grapheme"
	"github.com/iw2rmb/inputmask/mask"
)

// Model is a Bubble Tea component that renders and edits a masked value.
type Model struct {
	cfg Config
	ed  *mask.Editor

	focused bool

	// anchor and head track a keyboard-extended selection.
	anchor, head int

	lastVersion uint64
}

// New builds the editor from cfg.Mask and places the cursor on a valid
// position.
func New(cfg Config) (Model, error) {
	ed, err := mask.New(cfg.Mask)
	if err != nil {
		return Model{}, fmt.Errorf("field: %w", err)
	}
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	ed.SetSelection(ed.Selection())

	sel := ed.Selection()
	return Model{
		cfg:         cfg,
		ed:          ed,
		focused:     true,
		anchor:      sel.Start,
		head:        sel.End,
		lastVersion: ed.Version(),
	}, nil
}

func (m Model) Editor() *mask.Editor { return m.ed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// Width returns the display width of the field, including the cell kept
// for a cursor past the last slot.
func (m Model) Width() int {
	return grapheme.Width(m.cfg.Prompt) + grapheme.Width(m.ed.Value()) + 1
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		m = m.updateKey(msg)
	}
	// Hosts may also drive the editor directly.
	m.emitChange()
	return m, nil
}
