package eval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/calcfield/token"
)

type function struct {
	name string
	fn   func(p *parser, x float64) float64
}

// functions is ordered so that longer names sharing a prefix come first.
var functions = []function{
	{name: token.ArSin, fn: func(p *parser, x float64) float64 { return p.fromRadians(math.Asin(x)) }},
	{name: token.ArCos, fn: func(p *parser, x float64) float64 { return p.fromRadians(math.Acos(x)) }},
	{name: token.ArTan, fn: func(p *parser, x float64) float64 { return p.fromRadians(math.Atan(x)) }},
	{name: "asin(", fn: func(p *parser, x float64) float64 { return p.fromRadians(math.Asin(x)) }},
	{name: "acos(", fn: func(p *parser, x float64) float64 { return p.fromRadians(math.Acos(x)) }},
	{name: "atan(", fn: func(p *parser, x float64) float64 { return p.fromRadians(math.Atan(x)) }},
	{name: token.Sin, fn: func(p *parser, x float64) float64 { return p.sin(x) }},
	{name: token.Cos, fn: func(p *parser, x float64) float64 { return p.cos(x) }},
	{name: token.Tan, fn: func(p *parser, x float64) float64 { return p.tan(x) }},
	{name: token.Exp, fn: func(_ *parser, x float64) float64 { return math.Exp(x) }},
	{name: token.Ln, fn: func(_ *parser, x float64) float64 { return math.Log(x) }},
	{name: token.Log, fn: func(_ *parser, x float64) float64 { return math.Log10(x) }},
	{name: "sqrt(", fn: func(_ *parser, x float64) float64 { return math.Sqrt(x) }},
}

// parser is a recursive-descent evaluator. Precedence from low to high:
//
//	+ -
//	× ÷ * / # and implicit multiplication
//	unary + -
//	^ (right associative)
//	postfix ! %
//	numbers, constants, brackets, functions, prefix √
type parser struct {
	src   string
	pos   int
	angle AngleMode
}

func newParser(src string, angle AngleMode) *parser {
	return &parser{src: strings.TrimSpace(src), angle: angle}
}

func (p *parser) parse() (float64, error) {
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos < len(p.src) {
		return 0, p.unexpected()
	}
	return v, nil
}

func (p *parser) rest() string { return p.src[p.pos:] }

func (p *parser) eof() bool { return p.pos >= len(p.src) }

// accept consumes the first of syms that prefixes the remaining input.
func (p *parser) accept(syms ...string) (string, bool) {
	for _, s := range syms {
		if strings.HasPrefix(p.rest(), s) {
			p.pos += len(s)
			return s, true
		}
	}
	return "", false
}

func (p *parser) unexpected() error {
	if p.eof() {
		return fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	r, _ := utf8.DecodeRuneInString(p.rest())
	return fmt.Errorf("%w: unexpected %q at byte %d", ErrSyntax, r, p.pos)
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.accept(token.Plus, token.Minus, token.MinusASCII)
		if !ok {
			return v, nil
		}
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == token.Plus {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.accept(token.Multiply, token.MultiplyASCII, token.Divide, token.DivideASCII, token.Modulo)
		if !ok {
			if !p.startsOperand() {
				return v, nil
			}
			op = token.Multiply
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch op {
		case token.Multiply, token.MultiplyASCII:
			v *= rhs
		case token.Divide, token.DivideASCII:
			v /= rhs
		case token.Modulo:
			v = math.Mod(v, rhs)
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	if op, ok := p.accept(token.Minus, token.MinusASCII, token.Plus); ok {
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == token.Plus {
			return v, nil
		}
		return -v, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return 0, err
	}
	if _, ok := p.accept(token.Exponent); !ok {
		return base, nil
	}
	exp, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *parser) parsePostfix() (float64, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.accept(token.Factorial, token.Percent)
		if !ok {
			return v, nil
		}
		if op == token.Factorial {
			v = factorial(v)
		} else {
			v /= 100
		}
	}
}

func (p *parser) parsePrimary() (float64, error) {
	if p.eof() {
		return 0, p.unexpected()
	}
	if c := p.src[p.pos]; (c >= '0' && c <= '9') || c == '.' {
		return p.parseNumber()
	}
	if _, ok := p.accept(token.LeftBracket); ok {
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if _, ok := p.accept(token.RightBracket); !ok {
			return 0, p.unexpected()
		}
		return v, nil
	}
	for _, f := range functions {
		if _, ok := p.accept(f.name); !ok {
			continue
		}
		arg, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if _, ok := p.accept(token.RightBracket); !ok {
			return 0, p.unexpected()
		}
		return f.fn(p, arg), nil
	}
	if _, ok := p.accept(token.Pi); ok {
		return math.Pi, nil
	}
	if _, ok := p.accept(token.E); ok {
		return math.E, nil
	}
	if _, ok := p.accept(token.Sqrt); ok {
		v, err := p.parsePostfix()
		if err != nil {
			return 0, err
		}
		return math.Sqrt(v), nil
	}
	return 0, p.unexpected()
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	dots := 0
	digits := 0
	for !p.eof() {
		c := p.src[p.pos]
		if c == '.' {
			dots++
		} else if c >= '0' && c <= '9' {
			digits++
		} else {
			break
		}
		p.pos++
	}
	if dots > 1 || digits == 0 {
		p.pos = start
		return 0, fmt.Errorf("%w: malformed number at byte %d", ErrSyntax, start)
	}
	mantissa := p.src[start:p.pos]

	exponent := ""
	if _, ok := p.accept(token.Engineering); ok {
		sign := ""
		if s, ok := p.accept(token.Plus, token.Minus, token.MinusASCII); ok && s != token.Plus {
			sign = "-"
		}
		expStart := p.pos
		for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		if p.pos == expStart {
			return 0, fmt.Errorf("%w: missing exponent at byte %d", ErrSyntax, expStart)
		}
		exponent = "e" + sign + p.src[expStart:p.pos]
	}

	v, err := strconv.ParseFloat(mantissa+exponent, 64)
	if err != nil {
		// Out-of-range literals parse to ±Inf with a range error.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return v, nil
}

// startsOperand reports whether the remaining input begins an operand that
// can follow another operand with an implied multiplication, as in "2π".
func (p *parser) startsOperand() bool {
	if p.eof() {
		return false
	}
	c := p.src[p.pos]
	if (c >= '0' && c <= '9') || c == '.' {
		return true
	}
	rest := p.rest()
	for _, s := range []string{token.LeftBracket, token.Pi, token.E, token.Sqrt} {
		if strings.HasPrefix(rest, s) {
			return true
		}
	}
	for _, f := range functions {
		if strings.HasPrefix(rest, f.name) {
			return true
		}
	}
	return false
}

func (p *parser) toRadians(x float64) float64 {
	if p.angle == Degrees {
		return x * math.Pi / 180
	}
	return x
}

func (p *parser) fromRadians(x float64) float64 {
	if p.angle == Degrees {
		return x * 180 / math.Pi
	}
	return x
}

func (p *parser) sin(x float64) float64 {
	if p.angle == Degrees && math.Mod(x, 180) == 0 {
		return 0
	}
	return math.Sin(p.toRadians(x))
}

func (p *parser) cos(x float64) float64 {
	if p.angle == Degrees && math.Mod(x-90, 180) == 0 {
		return 0
	}
	return math.Cos(p.toRadians(x))
}

func (p *parser) tan(x float64) float64 {
	if p.angle == Degrees {
		if math.Mod(x, 180) == 0 {
			return 0
		}
		if math.Mod(x-90, 180) == 0 {
			return math.NaN()
		}
	}
	return math.Tan(p.toRadians(x))
}

func factorial(v float64) float64 {
	if v == math.Trunc(v) && v >= 0 && v <= 170 {
		r := 1.0
		for i := 2.0; i <= v; i++ {
			r *= i
		}
		return r
	}
	if v == math.Trunc(v) && v < 0 {
		return math.NaN()
	}
	return math.Gamma(v + 1)
}
