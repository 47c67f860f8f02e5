package field

import "github.com/iw2rmb/calcfield/internal/grapheme"

// Insert replaces the selection with symbols and reformats the text. The
// characters after the selection stay the last characters of the text, so the
// caret keeps its distance to the end even when grouping separators move.
func (f *Field) Insert(symbols string) {
	f.mutate(mutationEdit, func() {
		f.insertLocked(symbols)
	})
}

// Paste inserts symbols after dropping everything the field does not accept.
func (f *Field) Paste(symbols string) {
	f.Insert(f.fmt.FilterUnknownSymbols(symbols))
}

func (f *Field) insertLocked(symbols string) {
	c := f.clusters
	sel := f.sel
	tail := len(c) - sel.End

	raw := symbols
	if len(c) > 0 {
		raw = grapheme.Join(c, 0, sel.Start) + symbols + grapheme.Join(c, sel.End, len(c))
	}

	formatted := f.fmt.Reformat(raw)
	next := grapheme.Split(formatted)
	pos := clampInt(len(next)-tail, 0, len(next))

	caret, ok := f.fixRange(next, Caret(pos))
	if !ok {
		caret = Caret(pos)
	}
	f.setLocked(formatted, caret)
}

// Delete applies backspace semantics. A selection is removed as a whole. A
// caret removes one character, a whole function token when it sits right
// after one, or the digit in front of a grouping separator when it sits right
// after a separator. Delete at offset 0 is a no-op.
func (f *Field) Delete() {
	f.mutate(mutationEdit, f.deleteLocked)
}

func (f *Field) deleteLocked() {
	c := f.clusters
	sel := f.sel
	if sel.End == 0 {
		return
	}

	start := sel.Start
	if sel.IsCaret() {
		width := 1
		if n, ok := f.fixer.tokenLengthInFront(c, sel.End); ok {
			width = n
		} else if sel.End >= 2 && c[sel.End-1] == f.fixer.grouping {
			// Not reachable through the exported API, which never leaves a
			// caret right after a separator.
			width = 2
		}
		start = clampInt(sel.End-width, 0, sel.End)
	}

	distanceFromEnd := len(c) - sel.End
	formatted := f.fmt.Reformat(grapheme.Join(c, 0, start) + grapheme.Join(c, sel.End, len(c)))
	next := grapheme.Split(formatted)

	pos := len(next) - distanceFromEnd
	if pos < 0 {
		pos = 0
	}
	pos = f.fixer.fix(next, clampInt(pos, 0, len(next)))
	f.setLocked(formatted, Caret(pos))
}

// Clear empties the field.
func (f *Field) Clear() {
	f.mutate(mutationEdit, func() {
		f.setLocked("", Selection{})
	})
}

// SetText replaces the whole text and puts the caret at the end.
func (f *Field) SetText(text string) {
	f.mutate(mutationEdit, func() {
		formatted := f.fmt.Reformat(text)
		f.setLocked(formatted, Caret(grapheme.Count(formatted)))
	})
}
