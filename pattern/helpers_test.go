package pattern

import "github.com/iw2rmb/inputmask/internal/grapheme"

func split(s string) []string { return grapheme.Split(s) }
