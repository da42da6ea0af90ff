package pattern

import "errors"

var (
	// ErrMalformedPattern reports a pattern ending with an unconsumed escape.
	ErrMalformedPattern = errors.New("pattern: pattern ends with a raw " + EscapeChar)
	// ErrEmptyPattern reports a pattern without editable slots.
	ErrEmptyPattern = errors.New("pattern: no editable characters")
	// ErrInvalidPlaceholder reports a placeholder longer than one character.
	ErrInvalidPlaceholder = errors.New("pattern: placeholder must be a single character or empty")
	// ErrOrphanOptional reports an optional marker with no slot before it.
	ErrOrphanOptional = errors.New("pattern: optional marker has no preceding character")
	// ErrUnknownTransform reports an unsupported transform name.
	ErrUnknownTransform = errors.New("pattern: unknown transform")
)
