package field

import (
	"strings"

	"github.com/iw2rmb/inputmask/pattern"
)

func (m Model) View() string {
	if m.ed == nil {
		return ""
	}
	st := m.cfg.Style
	cells := m.ed.Cells()
	sel := m.ed.Selection()
	p := m.ed.Pattern()

	// The cursor sits on the next visible cell; hidden cells take no room.
	cursor := -1
	if m.focused && sel.IsCollapsed() {
		cursor = sel.Start
		for cursor < len(cells) && cells[cursor].String() == "" {
			cursor++
		}
	}

	var sb strings.Builder
	if m.cfg.Prompt != "" {
		sb.WriteString(st.Prompt.Render(m.cfg.Prompt))
	}
	for i, c := range cells {
		if c.String() == "" {
			continue
		}
		style := st.Text
		switch {
		case i == cursor:
			style = st.Cursor
		case i >= sel.Start && i < sel.End:
			style = st.Selection
		case c.Kind == pattern.CellPlaceholder:
			style = st.Placeholder
		case !p.IsEditable(i):
			style = st.Static
		}
		sb.WriteString(style.Render(c.Char))
	}
	// Cursor past the last visible cell is rendered as a 1-cell placeholder space.
	if cursor == len(cells) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}
