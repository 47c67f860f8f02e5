package field

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome
	DirEnd
)

type Move struct {
	Dir MoveDir
	// Extend moves the end of the selection away from where it started
	// instead of collapsing it.
	Extend bool
}

// MoveCursor sets the selection to r after moving both endpoints to legal
// positions. Ranges outside the text are ignored.
func (f *Field) MoveCursor(r Selection) {
	f.mutate(mutationMove, func() {
		fixed, ok := f.fixRange(f.clusters, r)
		if !ok {
			return
		}
		f.sel = fixed
	})
}

func (f *Field) fixRange(c []string, r Selection) (Selection, bool) {
	r = r.Normalize()
	if r.Start < 0 || r.End > len(c) {
		return Selection{}, false
	}
	return Selection{
		Start: f.fixer.fix(c, r.Start),
		End:   f.fixer.fix(c, r.End),
	}.Normalize(), true
}

// selectionAnchor remembers the fixed end of a keyboard selection. It is
// only valid while the field still shows the selection it produced.
type selectionAnchor struct {
	pos  int
	sel  Selection
	text string
	ok   bool
}

// Move steps the caret for keyboard navigation. Left and right skip over
// grouping separators and function tokens in the direction of travel.
// Extending moves keep the end where the selection started and move the
// other one, so shift+right then shift+left returns to a caret.
func (f *Field) Move(m Move) {
	f.mutate(mutationMove, func() {
		if !m.Extend {
			f.anchor = selectionAnchor{}
			f.sel = f.moveLocked(m)
			return
		}
		f.sel = f.extendLocked(m)
	})
}

func (f *Field) moveLocked(m Move) Selection {
	sel := f.sel

	switch m.Dir {
	case DirLeft:
		if !sel.IsCaret() {
			return Caret(sel.Start)
		}
		return Caret(f.stepLeft(sel.Start))
	case DirRight:
		if !sel.IsCaret() {
			return Caret(sel.End)
		}
		return Caret(f.stepRight(sel.End))
	case DirHome:
		return Caret(0)
	case DirEnd:
		return Caret(len(f.clusters))
	default:
		return sel
	}
}

func (f *Field) extendLocked(m Move) Selection {
	sel := f.sel

	// Without a live anchor, left and home grow the selection at Start and
	// right and end grow it at End.
	anchor, head := sel.End, sel.Start
	if m.Dir == DirRight || m.Dir == DirEnd {
		anchor, head = sel.Start, sel.End
	}
	if a := f.anchor; a.ok && a.sel == sel && a.text == f.text {
		anchor = a.pos
		head = sel.Start
		if anchor == sel.Start {
			head = sel.End
		}
	}

	switch m.Dir {
	case DirLeft:
		head = f.stepLeft(head)
	case DirRight:
		head = f.stepRight(head)
	case DirHome:
		head = 0
	case DirEnd:
		head = len(f.clusters)
	default:
		return sel
	}

	next := Selection{Start: anchor, End: head}.Normalize()
	f.anchor = selectionAnchor{pos: anchor, sel: next, text: f.text, ok: true}
	return next
}

func (f *Field) stepLeft(pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for f.fixer.illegal(f.clusters, pos) {
		pos--
	}
	return pos
}

func (f *Field) stepRight(pos int) int {
	if pos >= len(f.clusters) {
		return len(f.clusters)
	}
	pos++
	for f.fixer.illegal(f.clusters, pos) {
		pos++
	}
	return pos
}

// SelectAll selects the whole text.
func (f *Field) SelectAll() {
	f.mutate(mutationMove, func() {
		f.sel = Selection{Start: 0, End: len(f.clusters)}
	})
}
