// Package grapheme splits text into the user-perceived characters that mask
// slots, values and pasted text are measured in.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// IsSingle reports whether s is exactly one grapheme cluster.
func IsSingle(s string) bool {
	if s == "" {
		return false
	}
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return rest == ""
}

// Join concatenates clusters.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of s.
//
// Zero-width results from runewidth fall back to uniseg so that emoji
// sequences runewidth does not know still occupy their cells.
func Width(s string) int {
	w := runewidth.StringWidth(s)
	if w < 0 {
		w = 0
	}
	if w == 0 && s != "" {
		if fallback := uniseg.StringWidth(s); fallback > w {
			w = fallback
		}
	}
	return w
}
