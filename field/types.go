package field

// Selection is a range of character offsets into the field text.
// Start <= End; Start == End is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns a zero-width selection at pos.
func Caret(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

func (s Selection) Len() int {
	return s.End - s.Start
}

// Normalize swaps reversed endpoints.
func (s Selection) Normalize() Selection {
	if s.Start <= s.End {
		return s
	}
	return Selection{Start: s.End, End: s.Start}
}

// Snapshot is an immutable copy of the field state.
type Snapshot struct {
	Text      string
	Selection Selection
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
