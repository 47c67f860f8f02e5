package eval

import (
	"errors"
	"math"
	"testing"
)

func TestEngine_Evaluate(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{expr: "2+3×4", want: 14},
		{expr: "2+3*4", want: 14},
		{expr: "(2+3)×4", want: 20},
		{expr: "10÷4", want: 2.5},
		{expr: "10/4", want: 2.5},
		{expr: "7−10", want: -3},
		{expr: "−2^2", want: -4},
		{expr: "2^−1", want: 0.5},
		{expr: "2^3^2", want: 512},
		{expr: "5!", want: 120},
		{expr: "0!", want: 1},
		{expr: "50%", want: 0.5},
		{expr: "10#4", want: 2},
		{expr: "√16", want: 4},
		{expr: "√4!", want: math.Sqrt(24)},
		{expr: "2π", want: 2 * math.Pi},
		{expr: "2(3+1)", want: 8},
		{expr: "(1+1)(2+2)", want: 8},
		{expr: "e", want: math.E},
		{expr: "exp(0)", want: 1},
		{expr: "ln(e)", want: 1},
		{expr: "log(1000)", want: 3},
		{expr: "1.5E+3", want: 1500},
		{expr: "1.5E−3", want: 0.0015},
		{expr: ".5+5.", want: 5.5},
		{expr: "sqrt(9)", want: 3},
		{expr: " 1 + 1 ", want: 2},
	}
	for _, tc := range cases {
		got, err := Engine{}.Evaluate(tc.expr)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", tc.expr, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Evaluate(%q)=%v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestEngine_AngleModes(t *testing.T) {
	deg := Engine{Angle: Degrees}
	rad := Engine{Angle: Radians}

	cases := []struct {
		e    Engine
		expr string
		want float64
	}{
		{e: deg, expr: "sin(30)", want: 0.5},
		{e: deg, expr: "sin(180)", want: 0},
		{e: deg, expr: "cos(90)", want: 0},
		{e: deg, expr: "tan(45)", want: 1},
		{e: deg, expr: "sin⁻¹(1)", want: 90},
		{e: deg, expr: "asin(1)", want: 90},
		{e: deg, expr: "tan⁻¹(1)", want: 45},
		{e: rad, expr: "sin(π÷2)", want: 1},
		{e: rad, expr: "cos(π)", want: -1},
		{e: rad, expr: "cos⁻¹(−1)", want: math.Pi},
	}
	for _, tc := range cases {
		got, err := tc.e.Evaluate(tc.expr)
		if err != nil {
			t.Fatalf("%s Evaluate(%q): %v", tc.e.Angle, tc.expr, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s Evaluate(%q)=%v, want %v", tc.e.Angle, tc.expr, got, tc.want)
		}
	}
}

func TestEngine_DegenerateResults(t *testing.T) {
	for _, expr := range []string{"1÷0", "ln(0)", "1E999"} {
		got, err := Engine{}.Evaluate(expr)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", expr, err)
		}
		if !math.IsInf(got, 0) {
			t.Fatalf("Evaluate(%q)=%v, want infinity", expr, got)
		}
	}
	for _, expr := range []string{"√(−1)", "ln(−1)", "(−3)!", "tan(90)"} {
		got, err := Engine{}.Evaluate(Clean(expr))
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", expr, err)
		}
		if !math.IsNaN(got) {
			t.Fatalf("Evaluate(%q)=%v, want NaN", expr, got)
		}
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := (Engine{}).Evaluate("  "); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err=%v, want ErrEmpty", err)
	}
	for _, expr := range []string{"2+", "×3", "(1+2", "1..2", "sin(", "1E", "2)", "abc", "."} {
		if _, err := (Engine{}).Evaluate(expr); !errors.Is(err, ErrSyntax) {
			t.Fatalf("Evaluate(%q): err=%v, want ErrSyntax", expr, err)
		}
	}
}

func TestClean(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "2−1", want: "2-1"},
		{in: "sin(30", want: "sin(30)"},
		{in: "((1+2)", want: "((1+2))"},
		{in: "1)", want: "1)"},
	}
	for _, tc := range cases {
		if got := Clean(tc.in); got != tc.want {
			t.Fatalf("Clean(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCheckSyntax(t *testing.T) {
	if err := CheckSyntax(Clean("2×(3+sin(4")); err != nil {
		t.Fatalf("CheckSyntax: %v", err)
	}
	if err := CheckSyntax("2×"); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestAngleMode_Toggle(t *testing.T) {
	if Degrees.Toggle() != Radians || Radians.Toggle() != Degrees {
		t.Fatalf("toggle must swap modes")
	}
	if Degrees.String() != "deg" || Radians.String() != "rad" {
		t.Fatalf("unexpected names %q %q", Degrees, Radians)
	}
}
