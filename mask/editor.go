package mask

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/iw2rmb/inputmask/internal/grapheme"
	"github.com/iw2rmb/inputmask/pattern"
)

// ErrNoPattern reports Options without a pattern.
var ErrNoPattern = errors.New("mask: a pattern is required")

// Options configures New.
type Options struct {
	// Pattern is the mask definition. Required.
	Pattern string

	// FormatChars is merged over the defaults; a nil entry removes one.
	FormatChars pattern.FormatChars

	// Placeholder defaults to "_". HidePlaceholder selects the empty
	// placeholder.
	Placeholder     string
	HidePlaceholder bool

	Revealing bool
	Value     string
	Selection Selection

	HistoryLimit int // default: 1000; negative disables history

	// Logger receives debug records. Defaults to discarding.
	Logger *slog.Logger
}

// PatternOptions configures SetPattern.
type PatternOptions struct {
	Value     string
	Selection Selection
	Revealing bool
}

// Editor is the mutable edit state of one masked input. It is not safe for
// concurrent use.
type Editor struct {
	formatChars     pattern.FormatChars
	placeholder     string
	hidePlaceholder bool
	log             *slog.Logger

	pat   *pattern.Pattern
	cells []pattern.Cell
	sel   Selection
	empty string

	hist    history
	version uint64
}

// New builds an Editor from opt.
func New(opt Options) (*Editor, error) {
	if opt.Pattern == "" {
		return nil, ErrNoPattern
	}
	if !opt.HidePlaceholder && opt.Placeholder != "" && !grapheme.IsSingle(opt.Placeholder) {
		return nil, fmt.Errorf("%w: %q", pattern.ErrInvalidPlaceholder, opt.Placeholder)
	}

	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	limit := opt.HistoryLimit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	e := &Editor{
		formatChars:     pattern.MergeFormatChars(opt.FormatChars),
		placeholder:     opt.Placeholder,
		hidePlaceholder: opt.HidePlaceholder,
		log:             log,
		hist:            history{limit: limit, index: -1},
	}
	err := e.SetPattern(opt.Pattern, PatternOptions{
		Value:     opt.Value,
		Selection: opt.Selection,
		Revealing: opt.Revealing,
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// SetPattern replaces the pattern, rebuilds the value from opt.Value and
// resets selection and history. On error the editor is unchanged.
func (e *Editor) SetPattern(source string, opt PatternOptions) error {
	p, err := pattern.Compile(source, pattern.Options{
		FormatChars:     e.formatChars,
		Placeholder:     e.placeholder,
		HidePlaceholder: e.hidePlaceholder,
		Revealing:       opt.Revealing,
	})
	if err != nil {
		return err
	}

	e.pat = p
	e.cells = make([]pattern.Cell, p.Len())
	e.setValue(opt.Value)
	e.empty = pattern.JoinCells(p.FormatValue(nil))
	e.sel = clampSelection(opt.Selection, p.Len())
	e.hist.reset(e.sel)
	e.version++

	e.log.Debug("mask pattern set", "pattern", source, "revealing", opt.Revealing, "slots", p.Len())
	return nil
}

func (e *Editor) Pattern() *pattern.Pattern { return e.pat }

// Version increments on every change to value or selection.
func (e *Editor) Version() uint64 { return e.version }

func (e *Editor) Selection() Selection { return e.sel }

// SetValue formats value into the cells. Selection and history are kept.
func (e *Editor) SetValue(value string) {
	e.setValue(value)
	e.version++
}

func (e *Editor) setValue(value string) {
	formatted := e.pat.FormatValue(grapheme.Split(value))
	for i := range e.cells {
		if i < len(formatted) {
			e.cells[i] = formatted[i]
		} else {
			e.cells[i] = pattern.Cell{}
		}
	}
}

// Value returns the formatted value, placeholders included.
func (e *Editor) Value() string { return pattern.JoinCells(e.cells) }

// RawValue returns the editable cells only, static literals stripped.
func (e *Editor) RawValue() string {
	var raw []pattern.Cell
	for i, c := range e.cells {
		if e.pat.IsEditable(i) {
			raw = append(raw, c)
		}
	}
	return pattern.JoinCells(raw)
}

// EmptyValue returns the formatted value of empty input.
func (e *Editor) EmptyValue() string { return e.empty }

// Cells returns a copy of the cells.
func (e *Editor) Cells() []pattern.Cell { return slices.Clone(e.cells) }

// Complete reports whether every required editable slot holds a value.
func (e *Editor) Complete() bool {
	for i, c := range e.cells {
		if e.pat.IsEditable(i) && !e.pat.IsOptional(i) && c.Kind != pattern.CellValue {
			return false
		}
	}
	return true
}

// pendingOptional returns the highest optional slot still empty, or -1.
func (e *Editor) pendingOptional() int {
	for i := len(e.cells) - 1; i >= 0; i-- {
		if e.pat.IsOptional(i) && e.cells[i].Kind == pattern.CellEmpty {
			return i
		}
	}
	return -1
}

type state struct {
	cells   []pattern.Cell
	sel     Selection
	hist    history
	version uint64
}

func (e *Editor) snapshot() state {
	return state{
		cells:   slices.Clone(e.cells),
		sel:     e.sel,
		hist:    e.hist.clone(),
		version: e.version,
	}
}

func (e *Editor) restore(s state) {
	e.cells = s.cells
	e.sel = s.sel
	e.hist = s.hist
	e.version = s.version
}
