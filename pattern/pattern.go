package pattern

import (
	"fmt"

	"github.com/iw2rmb/inputmask/internal/grapheme"
)

const (
	// EscapeChar makes the next source character static.
	EscapeChar = `\`
	// OptionalChar marks the preceding slot optional.
	OptionalChar = "?"
	// DefaultPlaceholder is shown for empty editable slots.
	DefaultPlaceholder = "_"
)

// Kind distinguishes literal slots from editable ones.
type Kind uint8

const (
	Static Kind = iota
	Editable
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Editable:
		return "editable"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Slot is one position of a compiled pattern.
//
// Char is the literal for static slots and the format character key for
// editable ones.
type Slot struct {
	Char     string
	Kind     Kind
	Index    int
	Optional bool
}

// Options configures Compile.
type Options struct {
	// FormatChars defaults to DefaultFormatChars when nil.
	FormatChars FormatChars

	// Placeholder defaults to DefaultPlaceholder. HidePlaceholder renders
	// empty editable slots as nothing instead.
	Placeholder     string
	HidePlaceholder bool

	// Revealing shows the pattern only up to the furthest entered value.
	Revealing bool
}

// Pattern is an immutable compiled mask definition.
type Pattern struct {
	// Source is the definition the pattern was compiled from.
	Source string
	// Slots holds one entry per position, escapes and optional markers
	// already consumed.
	Slots []Slot

	formatChars   FormatChars
	placeholder   string
	revealing     bool
	firstEditable int
	lastEditable  int
}

// Compile parses source into a Pattern.
func Compile(source string, opt Options) (*Pattern, error) {
	placeholder, err := placeholderFor(opt)
	if err != nil {
		return nil, err
	}
	fc := opt.FormatChars
	if fc == nil {
		fc = DefaultFormatChars()
	}

	p := &Pattern{
		Source:        source,
		formatChars:   fc,
		placeholder:   placeholder,
		revealing:     opt.Revealing,
		firstEditable: -1,
		lastEditable:  -1,
	}

	chars := grapheme.Split(source)
	slots := make([]Slot, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		ch := chars[i]
		kind := Static

		switch {
		case ch == EscapeChar:
			if i == len(chars)-1 {
				return nil, fmt.Errorf("%w: pattern \"%s\" ends with an escape", ErrMalformedPattern, source)
			}
			i++
			ch = chars[i]
		case ch == OptionalChar:
			if len(slots) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrOrphanOptional, source)
			}
			slots[len(slots)-1].Optional = true
			continue
		default:
			if _, ok := fc[ch]; ok {
				if p.firstEditable < 0 {
					p.firstEditable = len(slots)
				}
				p.lastEditable = len(slots)
				kind = Editable
			}
		}

		slots = append(slots, Slot{Char: ch, Kind: kind, Index: len(slots)})
	}

	if p.firstEditable < 0 {
		return nil, fmt.Errorf("%w: pattern \"%s\" does not contain any editable characters", ErrEmptyPattern, source)
	}

	p.Slots = slots
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(source string, opt Options) *Pattern {
	p, err := Compile(source, opt)
	if err != nil {
		panic(err)
	}
	return p
}

func placeholderFor(opt Options) (string, error) {
	if opt.HidePlaceholder {
		return "", nil
	}
	if opt.Placeholder == "" {
		return DefaultPlaceholder, nil
	}
	if !grapheme.IsSingle(opt.Placeholder) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlaceholder, opt.Placeholder)
	}
	return opt.Placeholder, nil
}

func (p *Pattern) Len() int { return len(p.Slots) }

func (p *Pattern) FirstEditable() int { return p.firstEditable }

func (p *Pattern) LastEditable() int { return p.lastEditable }

func (p *Pattern) Placeholder() string { return p.placeholder }

func (p *Pattern) Revealing() bool { return p.revealing }

func (p *Pattern) IsEditable(i int) bool {
	return i >= 0 && i < len(p.Slots) && p.Slots[i].Kind == Editable
}

func (p *Pattern) IsOptional(i int) bool {
	return i >= 0 && i < len(p.Slots) && p.Slots[i].Optional
}

// IsValidAt reports whether ch may occupy slot i. Static slots accept only
// their own literal.
func (p *Pattern) IsValidAt(ch string, i int) bool {
	if i < 0 || i >= len(p.Slots) {
		return false
	}
	s := p.Slots[i]
	if s.Kind == Editable {
		return p.formatChars[s.Char].valid(ch)
	}
	return s.Char == ch
}

// Transform applies the slot's transform to ch. Static slots return ch.
func (p *Pattern) Transform(ch string, i int) string {
	if !p.IsEditable(i) {
		return ch
	}
	return p.formatChars[p.Slots[i].Char].transform(ch)
}

// CharAt returns the source character of slot i.
func (p *Pattern) CharAt(i int) string { return p.Slots[i].Char }
