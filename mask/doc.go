// Package mask implements the live edit state of a masked input.
//
// An Editor holds one cell per pattern slot plus a selection, and applies
// single-character input, backspace and paste as transitions over those
// cells. Rejected edits are not errors: they return false and leave the
// editor exactly as it was. Edits are recorded in a linear undo/redo history
// in which runs of the same operation continuing from the same cursor
// collapse into a single step.
//
// Positions are 0-based slot indices. Selections are half-open: [Start, End).
package mask
