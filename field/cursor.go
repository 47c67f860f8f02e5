package field

import (
	"strings"

	"github.com/iw2rmb/calcfield/internal/grapheme"
	"github.com/iw2rmb/calcfield/token"
)

type illegalToken struct {
	text string
	len  int
}

// CursorFixer decides where a caret may sit in formatted text.
//
// A position is illegal when it is right after a grouping separator or
// strictly inside a function token such as "sin(". Offset 0 and the end of the
// text are always legal.
type CursorFixer struct {
	grouping string
	tokens   []illegalToken
}

func NewCursorFixer(grouping string) *CursorFixer {
	fx := &CursorFixer{grouping: grouping}
	for _, t := range token.IllegalInterior() {
		fx.tokens = append(fx.tokens, illegalToken{text: t, len: grapheme.Count(t)})
	}
	return fx
}

// Fix returns the legal position nearest to pos. When the nearest legal
// positions on both sides are equally far, the left one wins.
func (fx *CursorFixer) Fix(text string, pos int) int {
	return fx.fix(grapheme.Split(text), pos)
}

// TokenLengthInFront returns the length of the function token that ends
// exactly at pos, if any.
func (fx *CursorFixer) TokenLengthInFront(text string, pos int) (int, bool) {
	return fx.tokenLengthInFront(grapheme.Split(text), pos)
}

// Illegal reports whether a caret at pos must be moved.
func (fx *CursorFixer) Illegal(text string, pos int) bool {
	return fx.illegal(grapheme.Split(text), pos)
}

func (fx *CursorFixer) fix(c []string, pos int) int {
	left := pos
	for fx.illegal(c, left) {
		left--
	}
	right := pos
	for fx.illegal(c, right) {
		right++
	}
	if absInt(right-pos) < absInt(left-pos) {
		return right
	}
	return left
}

func (fx *CursorFixer) tokenLengthInFront(c []string, pos int) (int, bool) {
	for _, t := range fx.tokens {
		if endsWithAt(c, pos, t.text, t.len) {
			return t.len, true
		}
	}
	return 0, false
}

func (fx *CursorFixer) illegal(c []string, pos int) bool {
	if pos <= 0 || pos >= len(c) {
		return false
	}
	// "123,|456"
	if c[pos-1] == fx.grouping {
		return true
	}
	// "123+c|os(8)"
	for _, t := range fx.tokens {
		bound := t.len - 1
		if bound < 1 {
			bound = 1
		}
		if strings.Contains(grapheme.Window(c, pos, bound, bound), t.text) {
			return true
		}
	}
	return false
}

func endsWithAt(c []string, pos int, tok string, n int) bool {
	if pos-n < 0 || pos > len(c) {
		return false
	}
	return grapheme.Join(c, pos-n, pos) == tok
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
