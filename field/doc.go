// Package field provides a Bubble Tea masked input component backed by the
// mask package.
//
// The package maps key messages onto editor operations, renders the cells
// with lipgloss styles, and reports effective changes to the host.
package field
