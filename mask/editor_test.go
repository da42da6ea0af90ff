package mask

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/iw2rmb/inputmask/pattern"
)

func mustNew(t *testing.T, opt Options) *Editor {
	t.Helper()
	e, err := New(opt)
	if err != nil {
		t.Fatalf("new editor: %v", err)
	}
	return e
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		opt  Options
		want error
	}{
		{name: "no pattern", opt: Options{}, want: ErrNoPattern},
		{name: "long placeholder", opt: Options{Pattern: "11", Placeholder: "ab"}, want: pattern.ErrInvalidPlaceholder},
		{name: "all static", opt: Options{Pattern: `\1\A\*\*`}, want: pattern.ErrEmptyPattern},
		{name: "trailing escape", opt: Options{Pattern: `1\`}, want: pattern.ErrMalformedPattern},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opt); !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

func TestNew_InitialValueIsFormatted(t *testing.T) {
	e := mustNew(t, Options{Pattern: "1a**A#", Value: "9f9fzz"})
	if got, want := e.Value(), "9f9fZZ"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}

	e = mustNew(t, Options{Pattern: "#### #### #### ####"})
	if got, want := e.Value(), "____ ____ ____ ____"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if got, want := e.EmptyValue(), "____ ____ ____ ____"; got != want {
		t.Fatalf("empty value=%q, want %q", got, want)
	}
	if got := e.Selection(); got != (Selection{}) {
		t.Fatalf("selection=%v, want zero", got)
	}
}

func TestNew_PlaceholderOptions(t *testing.T) {
	e := mustNew(t, Options{Pattern: "11-11", Placeholder: "*", Value: "1"})
	if got, want := e.Value(), "1*-**"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}

	e = mustNew(t, Options{Pattern: "11-11", HidePlaceholder: true, Value: "1"})
	if got, want := e.Value(), "1-"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}

func TestNew_FormatCharsMergedOverDefaults(t *testing.T) {
	hex, err := pattern.MatchFormatChar("[0-9a-fA-F]", "upper")
	if err != nil {
		t.Fatalf("format char: %v", err)
	}
	e := mustNew(t, Options{
		Pattern:     `\#hhhhhh`,
		FormatChars: pattern.FormatChars{"h": hex},
		Value:       "ff00aa",
	})
	if got, want := e.Value(), "#FF00AA"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}

	if _, err := New(Options{Pattern: "111", FormatChars: pattern.FormatChars{"1": nil}}); !errors.Is(err, pattern.ErrEmptyPattern) {
		t.Fatalf("err=%v, want %v", err, pattern.ErrEmptyPattern)
	}
}

func TestEditor_RawValue(t *testing.T) {
	e := mustNew(t, Options{Pattern: "(111) 111-1111", Value: "5551234567"})
	if got, want := e.RawValue(), "5551234567"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}

	e = mustNew(t, Options{Pattern: "11/11/1111", Value: "12"})
	if got, want := e.RawValue(), "12______"; got != want {
		t.Fatalf("raw=%q, want %q", got, want)
	}
}

func TestEditor_SetValueKeepsSelection(t *testing.T) {
	e := mustNew(t, Options{Pattern: "11/11/1111", Selection: Cursor(3)})
	v := e.Version()
	e.SetValue("01022024")
	if got, want := e.Value(), "01/02/2024"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if got := e.Selection(); got != Cursor(3) {
		t.Fatalf("selection=%v, want %v", got, Cursor(3))
	}
	if e.Version() == v {
		t.Fatalf("expected version bump")
	}
}

func TestEditor_Complete(t *testing.T) {
	cases := []struct {
		pattern string
		value   string
		want    bool
	}{
		{pattern: "(111) 111-1111", value: "5551234567", want: true},
		{pattern: "(111) 111-1111", value: "555123456", want: false},
		{pattern: "11?-11", value: "123", want: true},
		{pattern: "11?-11", value: "12", want: false},
	}
	for _, tc := range cases {
		e := mustNew(t, Options{Pattern: tc.pattern, Value: tc.value})
		if got := e.Complete(); got != tc.want {
			t.Fatalf("Complete() %q with %q: got %v, want %v", tc.pattern, tc.value, got, tc.want)
		}
	}
}

func TestEditor_SetPattern(t *testing.T) {
	e := mustNew(t, Options{Pattern: "1111"})
	for _, ch := range []string{"1", "2"} {
		e.Input(ch)
	}

	if err := e.SetPattern("AA-11", PatternOptions{Value: "ab12", Selection: Cursor(2)}); err != nil {
		t.Fatalf("set pattern: %v", err)
	}
	if got, want := e.Value(), "AB-12"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if got := e.Selection(); got != Cursor(2) {
		t.Fatalf("selection=%v, want %v", got, Cursor(2))
	}
	if e.CanUndo() {
		t.Fatalf("expected history reset")
	}
	if got, want := e.EmptyValue(), "__-__"; got != want {
		t.Fatalf("empty value=%q, want %q", got, want)
	}
}

func TestEditor_SetPatternErrorLeavesEditorUnchanged(t *testing.T) {
	e := mustNew(t, Options{Pattern: "11-11", Value: "12"})
	v := e.Version()
	err := e.SetPattern("--", PatternOptions{Value: "99"})
	if !errors.Is(err, pattern.ErrEmptyPattern) {
		t.Fatalf("err=%v, want %v", err, pattern.ErrEmptyPattern)
	}
	if got, want := e.Value(), "12-__"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if e.Version() != v {
		t.Fatalf("version changed on failed SetPattern")
	}
}

func TestEditor_LoggerReceivesPasteRejection(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := mustNew(t, Options{Pattern: "1111", Logger: log})
	if e.Paste("12x4") {
		t.Fatalf("expected paste rejection")
	}
	if !strings.Contains(buf.String(), "mask paste rejected") {
		t.Fatalf("log output %q missing rejection record", buf.String())
	}
}

func TestEditor_CellsIsACopy(t *testing.T) {
	e := mustNew(t, Options{Pattern: "11", Value: "12"})
	cells := e.Cells()
	cells[0] = pattern.ValueCell("9")
	if got, want := e.Value(), "12"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}
