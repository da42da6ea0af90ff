package mask

import "github.com/iw2rmb/inputmask/pattern"

// Selection is a cursor (Start == End) or a range [Start, End) over slots.
type Selection struct {
	Start int
	End   int
}

// Cursor returns a collapsed selection at i.
func Cursor(i int) Selection { return Selection{Start: i, End: i} }

func (s Selection) IsCollapsed() bool { return s.Start == s.End }

func (s Selection) Len() int { return s.End - s.Start }

// clampSelection orders s and clamps it into [0, n].
func clampSelection(s Selection, n int) Selection {
	if s.End < s.Start {
		s.Start, s.End = s.End, s.Start
	}
	s.Start = min(max(s.Start, 0), n)
	s.End = min(max(s.End, 0), n)
	return s
}

// SetSelection sets the selection and reports whether the request was
// adjusted.
//
// A cursor before the first editable slot moves onto it. Any other cursor
// moves back to just after the nearest entered value, or to the first
// editable slot when nothing precedes it. Ranges are kept as given.
func (e *Editor) SetSelection(sel Selection) bool {
	want := sel
	sel = clampSelection(sel, e.pat.Len())

	if !sel.IsCollapsed() {
		e.setSel(sel)
		return sel != want
	}

	first := e.pat.FirstEditable()
	if sel.Start < first {
		e.setSel(Cursor(first))
		return true
	}

	for i := sel.Start; i >= first; i-- {
		if i == first || (e.pat.IsEditable(i-1) && e.cells[i-1].Kind == pattern.CellValue) {
			sel = Cursor(i)
			break
		}
	}
	e.setSel(sel)
	return sel != want
}

func (e *Editor) setSel(sel Selection) {
	if sel == e.sel {
		return
	}
	e.sel = sel
	e.version++
}
