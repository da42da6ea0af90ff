// Package pattern compiles mask definitions into slots and formats raw input
// against them.
//
// A pattern source is read one grapheme cluster at a time. Clusters that are
// keys of the format character table become editable slots; everything else
// is a static literal. A backslash makes the following cluster static
// whatever it is, and a question mark marks the preceding slot optional.
package pattern
