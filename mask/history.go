package mask

import (
	"fmt"
	"slices"
)

const defaultHistoryLimit = 1000

// Op is the kind of edit a history step was recorded for.
type Op uint8

const (
	OpNone Op = iota
	OpInput
	OpBackspace
)

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpInput:
		return "input"
	case OpBackspace:
		return "backspace"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

type historyEntry struct {
	value     string
	sel       Selection
	lastOp    Op
	startUndo bool
}

type history struct {
	entries []historyEntry
	// index is the entry last restored by Undo/Redo, -1 when not undoing.
	index   int
	lastOp  Op
	lastSel Selection
	limit   int
}

// continues reports whether op, starting from before, extends the run of
// edits that ended with last at cursor lastSel.
func continues(last, op Op, before, lastSel Selection) bool {
	return last == op && before.IsCollapsed() && before.Start == lastSel.Start
}

func (h *history) reset(sel Selection) {
	h.entries = nil
	h.index = -1
	h.lastOp = OpNone
	h.lastSel = sel
}

func (h *history) clone() history {
	c := *h
	c.entries = slices.Clone(h.entries)
	return c
}

// record notes an edit of kind op that took the editor from (value, before)
// to a selection of after. Editing after an undo drops the redo branch.
func (h *history) record(op Op, value string, before, after Selection) {
	if h.index >= 0 {
		h.entries = h.entries[:h.index]
		h.index = -1
		// The restored state was dropped with the branch and must be saved again.
		h.lastOp = OpNone
	}
	if h.limit > 0 && !continues(h.lastOp, op, before, h.lastSel) {
		h.entries = append(h.entries, historyEntry{value: value, sel: before, lastOp: h.lastOp})
		if len(h.entries) > h.limit {
			h.entries = slices.Delete(h.entries, 0, len(h.entries)-h.limit)
		}
	}
	h.lastOp = op
	h.lastSel = after
}

func (e *Editor) CanUndo() bool {
	return len(e.hist.entries) > 0 && e.hist.index != 0
}

func (e *Editor) CanRedo() bool {
	return e.hist.index >= 0 && e.hist.index+1 < len(e.hist.entries)
}

// Undo steps back one history entry.
//
// The first Undo after editing also saves the current state, so that Redo
// can return to it.
func (e *Editor) Undo() bool {
	h := &e.hist
	if len(h.entries) == 0 || h.index == 0 {
		return false
	}

	var item historyEntry
	if h.index < 0 {
		h.index = len(h.entries) - 1
		item = h.entries[h.index]
		if value := e.Value(); item.value != value || item.sel != e.sel {
			h.entries = append(h.entries, historyEntry{value: value, sel: e.sel, lastOp: h.lastOp, startUndo: true})
		}
	} else {
		h.index--
		item = h.entries[h.index]
	}

	e.apply(item)
	return true
}

// Redo steps forward one history entry. Reaching the newest entry ends
// undoing.
func (e *Editor) Redo() bool {
	h := &e.hist
	if len(h.entries) == 0 || h.index < 0 {
		return false
	}
	if h.index+1 >= len(h.entries) {
		h.index = -1
		return false
	}

	h.index++
	item := h.entries[h.index]
	if h.index == len(h.entries)-1 {
		h.index = -1
		if item.startUndo {
			h.entries = h.entries[:len(h.entries)-1]
		}
	}

	e.apply(item)
	return true
}

// apply restores a history entry without recording anything.
func (e *Editor) apply(item historyEntry) {
	e.setValue(item.value)
	e.sel = clampSelection(item.sel, e.pat.Len())
	e.hist.lastOp = item.lastOp
	e.version++
}
