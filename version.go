package inputmask

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the module version without the leading v.
func Version() string { return strings.TrimSpace(version) }

// VersionTag returns Version in git tag form.
func VersionTag() string { return "v" + Version() }
