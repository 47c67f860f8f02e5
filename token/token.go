// Package token defines the symbol alphabet of the calculator input field.
//
// Display tokens are what the field shows and stores. Function tokens carry
// their opening bracket, so "sin(" is one token of four characters.
package token

const (
	Digits = "0123456789"

	Plus     = "+"
	Minus    = "−"
	Multiply = "×"
	Divide   = "÷"

	// ASCII forms accepted on paste and by the evaluator.
	MinusASCII    = "-"
	MultiplyASCII = "*"
	DivideASCII   = "/"

	LeftBracket  = "("
	RightBracket = ")"

	Exponent  = "^"
	Factorial = "!"
	Modulo    = "#"
	Percent   = "%"

	Sqrt = "√"
	Pi   = "π"
	E    = "e"

	Sin   = "sin("
	Cos   = "cos("
	Tan   = "tan("
	ArSin = "sin⁻¹("
	ArCos = "cos⁻¹("
	ArTan = "tan⁻¹("
	Exp   = "exp("
	Ln    = "ln("
	Log   = "log("

	// Engineering is the exponent marker in results such as "1.5E+30".
	Engineering = "E"

	Dot   = "."
	Comma = ","
)

var illegalInterior = []string{ArSin, ArCos, ArTan, Cos, Sin, Exp, Ln, Log, Tan}

// IllegalInterior returns the multi-character tokens whose interior offsets
// must never host a caret. Longer tokens that share a suffix come first.
func IllegalInterior() []string {
	return append([]string(nil), illegalInterior...)
}

var symbols = []string{
	Plus, Minus, Multiply, Divide,
	LeftBracket, RightBracket,
	Exponent, Factorial, Modulo, Percent,
	Sqrt, Pi, E, Engineering,
}

// Functions returns all function tokens.
func Functions() []string {
	return IllegalInterior()
}

// Symbols returns the single-character operator and constant tokens.
func Symbols() []string {
	return append([]string(nil), symbols...)
}

// Aliases maps alternate spellings accepted on paste to display tokens.
var Aliases = map[string]string{
	MinusASCII:    Minus,
	MultiplyASCII: Multiply,
	DivideASCII:   Divide,
	"asin(":       ArSin,
	"acos(":       ArCos,
	"atan(":       ArTan,
	"arcsin(":     ArSin,
	"arccos(":     ArCos,
	"arctan(":     ArTan,
	"lg(":         Log,
}

// IsDigit reports whether s is a single ASCII digit.
func IsDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
