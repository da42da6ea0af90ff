package field

import "github.com/charmbracelet/lipgloss"

// Style controls the field's rendering.
type Style struct {
	Prompt lipgloss.Style

	// Text styles entered values, Static the pattern's literals and
	// Placeholder the editable slots still empty.
	Text        lipgloss.Style
	Static      lipgloss.Style
	Placeholder lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Text:        lipgloss.NewStyle(),
		Static:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}
