// Package calcview provides a Bubble Tea component for a calculator input
// backed by a calc.Session.
//
// The component owns key and mouse handling and renders three lines: the
// right-aligned expression with its caret, the live result, and a status line.
package calcview
