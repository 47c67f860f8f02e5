// Package field implements the edit buffer behind a calculator input.
//
// Offsets are 0-based and count grapheme clusters, so "⁻" and "¹" take one
// offset each and a grouping separator takes one.
// Selections are half-open ranges: [Start, End). Start == End is a caret.
//
// Every mutation reformats the text through a format.Formatter and leaves the
// caret at a position the CursorFixer accepts.
package field
