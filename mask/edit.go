package mask

import (
	"github.com/iw2rmb/inputmask/internal/grapheme"
	"github.com/iw2rmb/inputmask/pattern"
)

// Input applies one character at the selection.
//
// The character goes into the next required editable slot at or after the
// cursor that accepts it, or onto a static slot whose literal it matches.
// Static slots skipped on the way are filled in. A selected range is cleared
// behind the new character. Returns false, leaving the editor untouched,
// when ch is not a single character or no slot accepts it.
func (e *Editor) Input(ch string) bool {
	if !grapheme.IsSingle(ch) {
		return false
	}
	p := e.pat

	var undo *state
	if e.sel.IsCollapsed() && e.sel.Start > p.LastEditable() {
		if e.pendingOptional() < 0 {
			return false
		}
		s := e.snapshot()
		undo = &s
		e.fillOptional()
		e.sel = Cursor(e.sel.Start - 1)
	}
	reject := func() bool {
		if undo != nil {
			e.restore(*undo)
		}
		return false
	}

	before := e.sel
	valueBefore := e.Value()

	at := e.sel.Start
	next := at
	for !p.IsEditable(next) || p.IsOptional(next) {
		if !p.IsEditable(next) && p.IsValidAt(ch, next) {
			break
		}
		if next > p.LastEditable() {
			return reject()
		}
		next++
	}
	if !p.IsValidAt(ch, next) {
		return reject()
	}

	if p.Revealing() {
		e.revealBefore(at)
	}
	for ; at < next; at++ {
		if p.IsOptional(at) {
			e.cells[at] = pattern.Cell{}
		} else {
			e.cells[at] = pattern.ValueCell(p.CharAt(at))
		}
	}
	e.cells[at] = pattern.ValueCell(p.Transform(ch, at))

	if at == p.LastEditable() && e.pendingOptional() < 0 {
		for i := at + 1; i < p.Len(); i++ {
			e.cells[i] = pattern.ValueCell(p.CharAt(i))
		}
	}

	if at+1 < e.sel.End {
		e.clearSelected(at+1, e.sel.End)
	}
	if p.Revealing() {
		e.revealAfter(at)
	}

	e.sel = Cursor(at + 1)
	e.hist.record(OpInput, valueBefore, before, e.sel)
	e.version++
	return true
}

// Backspace deletes the selected range, or the editable slot before the
// cursor. Returns false when the cursor is at position 0.
func (e *Editor) Backspace() bool {
	if e.sel == (Selection{}) {
		return false
	}
	p := e.pat

	before := e.sel
	valueBefore := e.Value()

	if e.sel.IsCollapsed() {
		prev := e.sel.Start - 1
		for !p.IsEditable(prev) && prev > 0 {
			prev--
		}
		if p.Revealing() {
			e.compact(prev, e.sel.End)
		} else {
			e.blank(prev, e.sel.End)
		}
		e.sel = Cursor(prev)
	} else {
		e.clearSelected(e.sel.Start, e.sel.End)
		e.sel = Cursor(e.sel.Start)
	}

	e.hist.record(OpBackspace, valueBefore, before, e.sel)
	e.version++
	return true
}

// Paste applies Input for each character of text, all or nothing.
//
// text may include the pattern's static literals. A paste starting inside
// the static prefix must repeat that prefix. Characters left over once the
// editable slots are used up are ignored.
func (e *Editor) Paste(text string) bool {
	initial := e.snapshot()
	p := e.pat
	chars := grapheme.Split(text)

	if e.sel.Start < p.FirstEditable() {
		n := p.FirstEditable() - e.sel.Start
		for i := 0; i < n; i++ {
			if i >= len(chars) || chars[i] != p.CharAt(e.sel.Start+i) {
				e.log.Debug("mask paste rejected", "reason", "static prefix mismatch", "pattern", p.Source)
				return false
			}
		}
		chars = chars[n:]
		e.sel.Start = p.FirstEditable()
		e.sel.End = max(e.sel.End, e.sel.Start)
	}

	for i := 0; i < len(chars) && e.sel.Start <= p.LastEditable(); i++ {
		if e.Input(chars[i]) {
			continue
		}
		// A literal the cursor already stepped over.
		if at := e.sel.Start; at > 0 && !p.IsEditable(at) && chars[i] == p.CharAt(at) {
			continue
		}
		e.restore(initial)
		e.log.Debug("mask paste rejected", "reason", "invalid character", "char", chars[i], "offset", i, "pattern", p.Source)
		return false
	}

	if e.sel != initial.sel && e.version == initial.version {
		e.version++
	}
	return true
}

// clearSelected clears the slots of a selected range [start, end).
func (e *Editor) clearSelected(start, end int) {
	if e.pat.Revealing() {
		e.compact(start, end)
		return
	}
	e.blank(start, end-1)
}

// blank resets the editable slots in [start, last] to the placeholder.
// Optional slots become pending again.
func (e *Editor) blank(start, last int) {
	for i := min(last, len(e.cells)-1); i >= start; i-- {
		switch {
		case e.pat.IsEditable(i) && e.pat.IsOptional(i):
			e.cells[i] = pattern.Cell{}
		case e.pat.IsEditable(i):
			e.cells[i] = e.pat.PlaceholderCell()
		}
	}
}

// compact deletes the values in [start, end) of a revealing mask, slides the
// values after the gap back and hides everything past the last value.
func (e *Editor) compact(start, end int) {
	var raw []string
	for i, c := range e.cells {
		if (i < start || i >= end) && e.pat.IsEditable(i) && c.Kind == pattern.CellValue {
			raw = append(raw, c.Char)
		}
	}
	e.setValue(grapheme.Join(raw))
}

// revealBefore shows the hidden static literals in front of slot i.
func (e *Editor) revealBefore(i int) {
	for j := 0; j < i; j++ {
		if !e.pat.IsEditable(j) && !e.pat.IsOptional(j) && e.cells[j].Kind == pattern.CellEmpty {
			e.cells[j] = pattern.ValueCell(e.pat.CharAt(j))
		}
	}
}

// revealAfter shows the static literals directly after slot i.
func (e *Editor) revealAfter(i int) {
	for j := i + 1; j < len(e.cells) && !e.pat.IsEditable(j) && !e.pat.IsOptional(j); j++ {
		e.cells[j] = pattern.ValueCell(e.pat.CharAt(j))
	}
}

// fillOptional moves the values after the highest pending optional slot
// back by one, the optional slot taking the first of them.
func (e *Editor) fillOptional() {
	p := e.pat
	at := e.pendingOptional()

	var values []pattern.Cell
	for i := at + 1; i < len(e.cells); i++ {
		if p.IsEditable(i) && e.cells[i].Kind == pattern.CellValue {
			values = append(values, e.cells[i])
		}
	}
	for i := at; i < len(e.cells); i++ {
		e.cells[i] = pattern.Cell{}
	}

	for _, v := range values {
		for at < len(e.cells) && !p.IsEditable(at) {
			e.cells[at] = pattern.ValueCell(p.CharAt(at))
			at++
		}
		if at < len(e.cells) && p.IsValidAt(v.Char, at) {
			e.cells[at] = v
			at++
		}
	}
}
