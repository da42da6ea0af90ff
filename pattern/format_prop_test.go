package pattern

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var digitPatterns = []string{
	"11/11/1111",
	"(111) 111-1111",
	"1111 1111 1111 1111",
	"111-1111 x 111",
	"1--1",
}

func editableCount(p *Pattern) int {
	n := 0
	for _, s := range p.Slots {
		if s.Kind == Editable {
			n++
		}
	}
	return n
}

func TestFormat_FullDigitValueInterposesLiterals(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		source := rapid.SampledFrom(digitPatterns).Draw(rt, "pattern")
		p := MustCompile(source, Options{})
		n := editableCount(p)
		raw := rapid.StringMatching(fmt.Sprintf(`[0-9]{%d}`, n)).Draw(rt, "raw")

		got := p.Format(raw)
		if len(got) != p.Len() {
			rt.Fatalf("Format(%q)=%q, want length %d", raw, got, p.Len())
		}
		var digits strings.Builder
		for i, s := range p.Slots {
			if s.Kind == Static {
				if got[i:i+1] != s.Char {
					rt.Fatalf("Format(%q)=%q, literal %q missing at %d", raw, got, s.Char, i)
				}
				continue
			}
			digits.WriteByte(got[i])
		}
		if digits.String() != raw {
			rt.Fatalf("Format(%q)=%q, editable content %q", raw, got, digits.String())
		}
	})
}

func TestFormat_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		source := rapid.SampledFrom(digitPatterns).Draw(rt, "pattern")
		revealing := rapid.Bool().Draw(rt, "revealing")
		p := MustCompile(source, Options{Revealing: revealing})
		n := editableCount(p)
		raw := rapid.StringMatching(fmt.Sprintf(`[0-9]{0,%d}`, n)).Draw(rt, "raw")

		once := p.Format(raw)
		twice := p.Format(strings.ReplaceAll(once, DefaultPlaceholder, ""))
		if once != twice {
			rt.Fatalf("Format(%q)=%q, reformatted=%q", raw, once, twice)
		}
	})
}
