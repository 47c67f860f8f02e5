// Package eval evaluates canonical calculator expressions.
//
// The input is the field's canonical text: no grouping separators, a dot as
// decimal separator, display operators (× ÷ −) or their ASCII forms, and
// function tokens such as "sin(" and "sin⁻¹(". Domain failures (log of a
// negative number, division by zero) are not errors: they produce NaN or an
// infinity.
package eval

import (
	"errors"
	"strings"

	"github.com/iw2rmb/calcfield/token"
)

var (
	ErrEmpty  = errors.New("eval: empty expression")
	ErrSyntax = errors.New("eval: syntax error")
)

// Evaluator turns a canonical expression into a number.
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

type AngleMode uint8

const (
	Degrees AngleMode = iota
	Radians
)

func (a AngleMode) String() string {
	switch a {
	case Degrees:
		return "deg"
	case Radians:
		return "rad"
	default:
		return "unknown"
	}
}

// Toggle returns the other angle mode.
func (a AngleMode) Toggle() AngleMode {
	if a == Radians {
		return Degrees
	}
	return Radians
}

// Engine is the built-in Evaluator. The zero value evaluates in degrees.
type Engine struct {
	Angle AngleMode
}

var _ Evaluator = Engine{}

func (e Engine) Evaluate(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, ErrEmpty
	}
	p := newParser(expr, e.Angle)
	return p.parse()
}

// CheckSyntax reports whether expr parses, without regard to its value.
func CheckSyntax(expr string) error {
	_, err := Engine{}.Evaluate(expr)
	return err
}

// Clean prepares typed input for evaluation: the display minus becomes an
// ASCII minus and unclosed brackets are closed at the end.
func Clean(expr string) string {
	expr = strings.ReplaceAll(expr, token.Minus, token.MinusASCII)
	missing := strings.Count(expr, token.LeftBracket) - strings.Count(expr, token.RightBracket)
	if missing > 0 {
		expr += strings.Repeat(token.RightBracket, missing)
	}
	return expr
}
