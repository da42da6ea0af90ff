// Package inputmask formats free-form input into fixed-shape masked strings.
//
// Patterns are compiled by the pattern package. The live edit state of one
// masked input lives in package mask; package field hosts it in a Bubble Tea
// program.
package inputmask

import "github.com/iw2rmb/inputmask/pattern"

// Format formats value against the pattern source using the default format
// characters and placeholder.
func Format(source, value string) (string, error) {
	p, err := pattern.Compile(source, pattern.Options{})
	if err != nil {
		return "", err
	}
	return p.Format(value), nil
}
