package field

import "github.com/iw2rmb/inputmask/mask"

// Config configures the field Model.
type Config struct {
	// Mask configures the underlying editor.
	Mask mask.Options

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap
	Style  Style
	Prompt string

	// ReadOnly ignores editing keys. Movement and copy still work.
	ReadOnly bool

	// Clipboard is optional; without it copy, cut and paste keys do nothing.
	// Bracketed paste from the terminal works either way.
	Clipboard Clipboard

	// OnChange is called after an update that changed value or selection.
	OnChange func(ChangeEvent)
}
