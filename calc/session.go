// Package calc ties an input field to an evaluator and renders results the
// way a calculator display shows them.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iw2rmb/calcfield/eval"
	"github.com/iw2rmb/calcfield/field"
	"github.com/iw2rmb/calcfield/format"
	"github.com/iw2rmb/calcfield/token"
)

var ErrInvalidPrecision = errors.New("calc: invalid precision")

// MaxPrecision bounds the number of fraction digits in results.
const MaxPrecision = 1000

type OutputFormat uint8

const (
	// FormatPlain never uses engineering notation.
	FormatPlain OutputFormat = iota
	// FormatAllowEngineering switches to engineering notation for very large
	// or very small magnitudes.
	FormatAllowEngineering
	// FormatForceEngineering always uses engineering notation.
	FormatForceEngineering
)

func (f OutputFormat) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatAllowEngineering:
		return "allow-engineering"
	case FormatForceEngineering:
		return "force-engineering"
	default:
		return "unknown"
	}
}

// ParseOutputFormat is the inverse of OutputFormat.String.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range []OutputFormat{FormatPlain, FormatAllowEngineering, FormatForceEngineering} {
		if f.String() == s {
			return f, nil
		}
	}
	return FormatPlain, fmt.Errorf("calc: unknown output format %q", s)
}

type Config struct {
	// Separators defaults to format.DefaultSeparators.
	Separators format.Separators

	// Precision is the number of fraction digits kept in results (default: 3).
	Precision int
	Format    OutputFormat
	Angle     eval.AngleMode

	// Evaluator replaces the built-in engine. Angle is ignored when set.
	Evaluator eval.Evaluator

	HistoryLimit int
	OnChange     func(field.Change)
}

// Session is one calculator: an input field plus evaluation settings.
type Session struct {
	mu    sync.RWMutex
	angle eval.AngleMode

	cfg   Config
	fmt   *format.Formatter
	field *field.Field
}

func New(cfg Config) (*Session, error) {
	if cfg.Separators == (format.Separators{}) {
		cfg.Separators = format.DefaultSeparators
	}
	if cfg.Precision == 0 {
		cfg.Precision = 3
	}
	if cfg.Precision < 0 || cfg.Precision > MaxPrecision {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidPrecision, cfg.Precision, MaxPrecision)
	}
	f, err := format.New(cfg.Separators)
	if err != nil {
		return nil, fmt.Errorf("calc: %w", err)
	}
	return &Session{
		angle: cfg.Angle,
		cfg:   cfg,
		fmt:   f,
		field: field.New(f, field.Options{HistoryLimit: cfg.HistoryLimit, OnChange: cfg.OnChange}),
	}, nil
}

func (s *Session) Field() *field.Field { return s.field }

func (s *Session) Formatter() *format.Formatter { return s.fmt }

func (s *Session) Angle() eval.AngleMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.angle
}

func (s *Session) SetAngle(a eval.AngleMode) {
	s.mu.Lock()
	s.angle = a
	s.mu.Unlock()
}

// ToggleAngle switches between degrees and radians and returns the new mode.
func (s *Session) ToggleAngle() eval.AngleMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.angle = s.angle.Toggle()
	return s.angle
}

func (s *Session) evaluator() eval.Evaluator {
	if s.cfg.Evaluator != nil {
		return s.cfg.Evaluator
	}
	return eval.Engine{Angle: s.Angle()}
}

// Output evaluates the field and returns the display form of the result.
// It is empty when the field is empty, does not parse yet, or already shows
// the result (a plain number).
func (s *Session) Output() string {
	canonical := s.field.CanonicalText()
	if canonical == "" {
		return ""
	}
	v, err := s.evaluator().Evaluate(eval.Clean(canonical))
	if err != nil {
		return ""
	}
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	d := decimal.NewFromFloat(v).Round(int32(s.cfg.Precision))
	if in, err := decimal.NewFromString(canonical); err == nil && in.Equal(d) {
		return ""
	}
	return s.display(d)
}

// Evaluate replaces the field with its result, like the "=" key, as a single
// undoable edit. It returns false and leaves the field alone when there is
// nothing finite to show.
func (s *Session) Evaluate() bool {
	out := s.Output()
	switch out {
	case "", "NaN", "Infinity", "-Infinity":
		return false
	}
	s.field.SetText(out)
	return true
}

func (s *Session) display(d decimal.Decimal) string {
	var plain string
	switch s.cfg.Format {
	case FormatForceEngineering:
		plain = engineering(d)
	case FormatAllowEngineering:
		if needsEngineering(d) {
			plain = engineering(d)
		} else {
			plain = d.String()
		}
	default:
		plain = d.String()
	}

	plain = strings.ReplaceAll(plain, token.Dot, s.fmt.Separators().Decimal)
	plain = strings.ReplaceAll(plain, token.MinusASCII, token.Minus)
	return s.fmt.Reformat(plain)
}

var (
	engineeringHigh = decimal.New(1, 16)
	engineeringLow  = decimal.New(1, -8)
)

func needsEngineering(d decimal.Decimal) bool {
	a := d.Abs()
	if a.IsZero() {
		return false
	}
	return a.GreaterThanOrEqual(engineeringHigh) || a.LessThan(engineeringLow)
}

// engineering renders d as mantissa, "E", signed exponent: 1.5E+30.
func engineering(d decimal.Decimal) string {
	s := strconv.FormatFloat(d.InexactFloat64(), 'E', -1, 64)
	mantissa, exp, ok := strings.Cut(s, token.Engineering)
	if !ok {
		return s
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	sign := "+"
	if n < 0 {
		sign = "-"
		n = -n
	}
	return mantissa + token.Engineering + sign + strconv.Itoa(n)
}
