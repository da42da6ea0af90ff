package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inputmask/internal/grapheme"
	"github.com/iw2rmb/inputmask/mask"
	"github.com/iw2rmb/inputmask/pattern"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused || m.ed == nil {
		return m
	}

	// Paste events should always go through Paste and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.ed.Paste(singleLine(string(msg.Runes)))
		}
		return m
	}

	km := m.cfg.KeyMap
	sel := m.ed.Selection()

	switch {
	case key.Matches(msg, km.Left):
		if sel.IsCollapsed() {
			m.ed.SetSelection(mask.Cursor(sel.Start - 1))
		} else {
			m.ed.SetSelection(mask.Cursor(sel.Start))
		}
	case key.Matches(msg, km.Right):
		if sel.IsCollapsed() {
			m.moveRight(sel.Start)
		} else {
			m.ed.SetSelection(mask.Cursor(sel.End))
		}

	case key.Matches(msg, km.ShiftLeft):
		m.extend(-1)
	case key.Matches(msg, km.ShiftRight):
		m.extend(1)

	case key.Matches(msg, km.Home):
		m.ed.SetSelection(mask.Cursor(0))
	case key.Matches(msg, km.End):
		m.ed.SetSelection(mask.Cursor(m.ed.Pattern().Len()))
	case key.Matches(msg, km.SelectAll):
		m.ed.SetSelection(mask.Selection{Start: 0, End: m.ed.Pattern().Len()})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.ed.Backspace()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.ed.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.ed.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if m.cfg.ReadOnly {
			return m
		}
		if msg.Type == tea.KeySpace {
			m.ed.Input(" ")
			return m
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			for _, ch := range grapheme.Split(string(msg.Runes)) {
				if !m.ed.Input(ch) {
					break
				}
			}
		}
	}

	return m
}

// moveRight advances the cursor to the next position past from that
// SetSelection keeps, stepping over literals.
func (m *Model) moveRight(from int) {
	for i := from + 1; i <= m.ed.Pattern().Len(); i++ {
		m.ed.SetSelection(mask.Cursor(i))
		if m.ed.Selection().Start > from {
			return
		}
	}
}

// extend moves the selection head by delta, keeping the anchor.
func (m *Model) extend(delta int) {
	sel := m.ed.Selection()
	if sel != m.span() {
		m.anchor, m.head = sel.Start, sel.End
	}
	m.head = min(max(m.head+delta, 0), m.ed.Pattern().Len())
	m.ed.SetSelection(m.span())
}

func (m Model) span() mask.Selection {
	return mask.Selection{Start: min(m.anchor, m.head), End: max(m.anchor, m.head)}
}

func (m Model) selectedText() string {
	sel := m.ed.Selection()
	if sel.IsCollapsed() {
		return ""
	}
	cells := m.ed.Cells()
	return pattern.JoinCells(cells[sel.Start:min(sel.End, len(cells))])
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.selectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.ed.Selection().IsCollapsed() {
		return
	}
	if s := m.selectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	m.ed.Backspace()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.ed.Paste(singleLine(s))
}

// singleLine drops line breaks from external text.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", "", "\r", "", "\n", "").Replace(s)
}
