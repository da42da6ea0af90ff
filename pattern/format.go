package pattern

import (
	"strings"

	"github.com/iw2rmb/inputmask/internal/grapheme"
)

// CellKind describes what a formatted position holds.
type CellKind uint8

const (
	// CellEmpty is an absent position: a pending optional slot, or a slot a
	// revealing mask keeps hidden.
	CellEmpty CellKind = iota
	// CellPlaceholder is an editable slot still waiting for a value.
	CellPlaceholder
	// CellValue holds an entered character or a static literal.
	CellValue
)

// Cell is one formatted position.
type Cell struct {
	Kind CellKind
	Char string
}

// String renders the cell; empty cells render as nothing.
func (c Cell) String() string {
	if c.Kind == CellEmpty {
		return ""
	}
	return c.Char
}

// ValueCell returns a cell holding ch.
func ValueCell(ch string) Cell { return Cell{Kind: CellValue, Char: ch} }

// PlaceholderCell returns the placeholder cell of p.
func (p *Pattern) PlaceholderCell() Cell {
	return Cell{Kind: CellPlaceholder, Char: p.placeholder}
}

// JoinCells renders cells into a string.
func JoinCells(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Format formats value and renders the result.
func (p *Pattern) Format(value string) string {
	return JoinCells(p.FormatValue(grapheme.Split(value)))
}

type optionalMark struct {
	valueIndex   int
	patternIndex int
	pending      bool
}

// FormatValue lays value out over the slots.
//
// value may or may not contain the pattern's static literals; a literal that
// appears where the pattern expects it is consumed, any other input is held
// for the next editable slot. Optional slots start out empty and are only
// taken back once the last editable slot is reached with input still left
// over, most recent optional first. A revealing pattern stops at the first
// missing or invalid value and never shows slots past the furthest value,
// except for the static literals that directly follow it.
//
// The result is shorter than Len when a revealing pattern stopped early.
func (p *Pattern) FormatValue(value []string) []Cell {
	if p.revealing && len(value) == 0 {
		return nil
	}

	out := make([]Cell, 0, len(p.Slots))
	has := func(i int) bool { return i >= 0 && i < len(value) && value[i] != "" }

	var marks map[int]*optionalMark
	pendingTop := func() *optionalMark {
		var top *optionalMark
		for _, m := range marks {
			if m.pending && (top == nil || m.patternIndex > top.patternIndex) {
				top = m
			}
		}
		return top
	}

	vi := 0
	for i := 0; i < len(p.Slots); i++ {
		ch, ok := "", has(vi)
		if ok {
			ch = value[vi]
		}

		if p.IsOptional(i) && marks[i] == nil {
			if marks == nil {
				marks = make(map[int]*optionalMark)
			}
			marks[i] = &optionalMark{valueIndex: vi, patternIndex: i, pending: true}
			out = append(out, Cell{})
			vi--
		} else if top := pendingTop(); top != nil && has(vi+1) && i == p.lastEditable {
			// More input than fits: the optional slot was needed after all.
			out = out[:top.patternIndex]
			vi = top.valueIndex - 1
			i = top.patternIndex - 1
			top.pending = false
		} else if p.IsEditable(i) {
			valid := ok && p.IsValidAt(ch, i)
			if p.revealing && !valid {
				break
			}
			if valid {
				out = append(out, ValueCell(p.Transform(ch, i)))
			} else {
				out = append(out, p.PlaceholderCell())
			}
		} else {
			out = append(out, ValueCell(p.Slots[i].Char))
			if !ok || ch != p.Slots[i].Char {
				vi--
			}
		}

		if p.revealing && !has(vi+1) && i < p.lastEditable {
			if i >= 0 && i < len(out) && out[i].Kind == CellValue {
				out = p.revealStatics(out, i+1)
			}
			break
		}

		vi++
	}

	return out
}

// revealStatics appends the run of static slots starting at i.
func (p *Pattern) revealStatics(out []Cell, i int) []Cell {
	for ; i < len(p.Slots) && p.Slots[i].Kind == Static && !p.Slots[i].Optional; i++ {
		out = append(out, ValueCell(p.Slots[i].Char))
	}
	return out
}
