package pattern

import (
	"fmt"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatChar defines an editable character class.
//
// Validate reports whether a single grapheme cluster is accepted; a nil
// Validate accepts anything. Transform, when set, normalizes an accepted
// cluster before it is stored.
type FormatChar struct {
	Validate  func(ch string) bool
	Transform func(ch string) string
}

// FormatChars maps pattern source characters to their definitions.
type FormatChars map[string]*FormatChar

var (
	digitRE        = regexp.MustCompile(`^\d$`)
	letterRE       = regexp.MustCompile(`^[A-Za-z]$`)
	alphanumericRE = regexp.MustCompile(`^[\dA-Za-z]$`)
)

// DefaultFormatChars returns a fresh copy of the builtin table:
//
//	*  alphanumeric
//	1  digit
//	a  letter
//	A  letter, uppercased
//	#  alphanumeric, uppercased
func DefaultFormatChars() FormatChars {
	return FormatChars{
		"*": {Validate: alphanumericRE.MatchString},
		"1": {Validate: digitRE.MatchString},
		"a": {Validate: letterRE.MatchString},
		"A": {Validate: letterRE.MatchString, Transform: Upper},
		"#": {Validate: alphanumericRE.MatchString, Transform: Upper},
	}
}

// MergeFormatChars returns the defaults with overrides applied. A nil
// definition removes the key.
func MergeFormatChars(overrides FormatChars) FormatChars {
	merged := DefaultFormatChars()
	for k, def := range overrides {
		if def == nil {
			delete(merged, k)
			continue
		}
		merged[k] = def
	}
	return merged
}

// Upper uppercases ch without regard to locale.
func Upper(ch string) string { return cases.Upper(language.Und).String(ch) }

// Lower lowercases ch without regard to locale.
func Lower(ch string) string { return cases.Lower(language.Und).String(ch) }

// TransformByName resolves "", "upper" or "lower".
func TransformByName(name string) (func(string) string, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "upper":
		return Upper, nil
	case "lower":
		return Lower, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
}

// MatchFormatChar builds a definition that accepts a cluster matching expr
// in full and applies the named transform.
func MatchFormatChar(expr, transform string) (*FormatChar, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("pattern: format character %q: %w", expr, err)
	}
	tf, err := TransformByName(transform)
	if err != nil {
		return nil, err
	}
	return &FormatChar{Validate: re.MatchString, Transform: tf}, nil
}

func (d *FormatChar) valid(ch string) bool {
	if d.Validate == nil {
		return true
	}
	return d.Validate(ch)
}

func (d *FormatChar) transform(ch string) string {
	if d.Transform == nil {
		return ch
	}
	return d.Transform(ch)
}
