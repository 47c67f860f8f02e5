// Package format applies and removes the presentation formatting of the
// calculator input: digit grouping and the locale decimal separator.
//
// A Formatter is configured once with a Separators value and never consults
// ambient locale state.
package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/calcfield/internal/grapheme"
	"github.com/iw2rmb/calcfield/token"
)

var ErrInvalidSeparators = errors.New("format: invalid separators")

// Separators is the pair of presentation symbols used for numbers.
type Separators struct {
	Grouping string
	Decimal  string
}

// DefaultSeparators groups with a comma and uses a dot for fractions.
var DefaultSeparators = Separators{Grouping: token.Comma, Decimal: token.Dot}

// Validate reports whether s can be used by a Formatter. Each separator must be
// a single character that cannot be confused with a digit, a letter or an
// operator.
func (s Separators) Validate() error {
	if err := validSeparator(s.Grouping); err != nil {
		return fmt.Errorf("%w: grouping %q: %v", ErrInvalidSeparators, s.Grouping, err)
	}
	if err := validSeparator(s.Decimal); err != nil {
		return fmt.Errorf("%w: decimal %q: %v", ErrInvalidSeparators, s.Decimal, err)
	}
	if s.Grouping == s.Decimal {
		return fmt.Errorf("%w: grouping and decimal are both %q", ErrInvalidSeparators, s.Grouping)
	}
	return nil
}

func validSeparator(sep string) error {
	if grapheme.Count(sep) != 1 {
		return errors.New("must be exactly one character")
	}
	for _, r := range sep {
		if unicode.IsDigit(r) || unicode.IsLetter(r) {
			return errors.New("must not be a digit or a letter")
		}
	}
	for _, sym := range token.Symbols() {
		if sep == sym {
			return errors.New("collides with an operator")
		}
	}
	return nil
}

// Formatter reformats expression text for display and strips it back to the
// canonical form the evaluator accepts.
type Formatter struct {
	sep Separators

	// candidates holds every accepted paste token, longest first.
	candidates []string
}

func New(sep Separators) (*Formatter, error) {
	if err := sep.Validate(); err != nil {
		return nil, err
	}
	f := &Formatter{sep: sep}
	f.candidates = f.buildCandidates()
	return f, nil
}

// MustNew is like New but panics on invalid separators.
func MustNew(sep Separators) *Formatter {
	f, err := New(sep)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Separators() Separators { return f.sep }

// Reformat removes all grouping separators from raw and groups the integer
// part of every number in threes. Fraction digits and exponent digits are
// left as they are. Reformat(Reformat(s)) == Reformat(s).
func (f *Formatter) Reformat(raw string) string {
	if raw == "" {
		return ""
	}
	clusters := f.withoutGrouping(grapheme.Split(raw))

	var sb strings.Builder
	sb.Grow(len(raw) + len(raw)/3*len(f.sep.Grouping))

	inFraction := false
	inExponent := false
	for i := 0; i < len(clusters); {
		c := clusters[i]
		switch {
		case token.IsDigit(c):
			if inFraction || inExponent {
				sb.WriteString(c)
				i++
				continue
			}
			j := i
			for j < len(clusters) && token.IsDigit(clusters[j]) {
				j++
			}
			f.writeGrouped(&sb, clusters[i:j])
			i = j
			continue
		case c == f.sep.Decimal:
			inFraction = true
			inExponent = false
		case c == token.Engineering:
			inExponent = true
			inFraction = false
		case inExponent && i > 0 && clusters[i-1] == token.Engineering &&
			(c == token.Plus || c == token.Minus || c == token.MinusASCII):
			// Exponent sign.
		default:
			inFraction = false
			inExponent = false
		}
		sb.WriteString(c)
		i++
	}
	return sb.String()
}

func (f *Formatter) writeGrouped(sb *strings.Builder, digits []string) {
	n := len(digits)
	for k, d := range digits {
		if k > 0 && (n-k)%3 == 0 {
			sb.WriteString(f.sep.Grouping)
		}
		sb.WriteString(d)
	}
}

// Strip removes grouping separators and replaces the decimal separator with a
// dot.
func (f *Formatter) Strip(formatted string) string {
	if formatted == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(formatted))
	for _, c := range grapheme.Split(formatted) {
		switch c {
		case f.sep.Grouping:
		case f.sep.Decimal:
			sb.WriteString(token.Dot)
		default:
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// FilterUnknownSymbols keeps only the tokens the field accepts from pasted
// text. Whitespace is dropped, ASCII operators and alternate function names
// are mapped to their display tokens, and a dot is read as the decimal
// separator unless the dot is the grouping separator.
func (f *Formatter) FilterUnknownSymbols(pasted string) string {
	if pasted == "" {
		return ""
	}
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) && string(r) != f.sep.Grouping {
			return -1
		}
		return r
	}, pasted)

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		cand, ok := f.longestMatch(s[i:])
		if !ok {
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
			continue
		}
		sb.WriteString(f.displayFor(cand))
		i += len(cand)
	}
	return sb.String()
}

func (f *Formatter) longestMatch(s string) (string, bool) {
	for _, c := range f.candidates {
		if strings.HasPrefix(s, c) {
			return c, true
		}
	}
	return "", false
}

func (f *Formatter) displayFor(cand string) string {
	if cand == token.Dot && f.sep.Grouping != token.Dot {
		return f.sep.Decimal
	}
	if to, ok := token.Aliases[cand]; ok {
		return to
	}
	return cand
}

func (f *Formatter) buildCandidates() []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	for _, d := range token.Digits {
		add(string(d))
	}
	for _, s := range token.Symbols() {
		add(s)
	}
	for _, s := range token.Functions() {
		add(s)
	}
	for alias := range token.Aliases {
		add(alias)
	}
	add(f.sep.Grouping)
	add(f.sep.Decimal)
	add(token.Dot)

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

func (f *Formatter) withoutGrouping(clusters []string) []string {
	out := clusters[:0:0]
	for _, c := range clusters {
		if c != f.sep.Grouping {
			out = append(out, c)
		}
	}
	return out
}
