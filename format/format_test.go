package format

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestSeparators_Validate(t *testing.T) {
	cases := []struct {
		sep Separators
		ok  bool
	}{
		{sep: DefaultSeparators, ok: true},
		{sep: Separators{Grouping: ".", Decimal: ","}, ok: true},
		{sep: Separators{Grouping: " ", Decimal: ","}, ok: true},
		{sep: Separators{Grouping: ",", Decimal: ","}, ok: false},
		{sep: Separators{Grouping: "", Decimal: "."}, ok: false},
		{sep: Separators{Grouping: ",,", Decimal: "."}, ok: false},
		{sep: Separators{Grouping: "1", Decimal: "."}, ok: false},
		{sep: Separators{Grouping: "x", Decimal: "."}, ok: false},
		{sep: Separators{Grouping: "+", Decimal: "."}, ok: false},
	}
	for _, tc := range cases {
		err := tc.sep.Validate()
		if (err == nil) != tc.ok {
			t.Fatalf("Validate(%+v): err=%v, want ok=%v", tc.sep, err, tc.ok)
		}
		if err != nil && !errors.Is(err, ErrInvalidSeparators) {
			t.Fatalf("Validate(%+v): err=%v, want ErrInvalidSeparators", tc.sep, err)
		}
	}
}

func TestNew_RejectsInvalidSeparators(t *testing.T) {
	if _, err := New(Separators{Grouping: ".", Decimal: "."}); !errors.Is(err, ErrInvalidSeparators) {
		t.Fatalf("err=%v, want ErrInvalidSeparators", err)
	}
}

func TestReformat(t *testing.T) {
	f := MustNew(DefaultSeparators)
	cases := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "123", want: "123"},
		{in: "1234", want: "1,234"},
		{in: "12345", want: "12,345"},
		{in: "1234567", want: "1,234,567"},
		{in: "1,2,3,4", want: "1,234"},
		{in: "1234.56789", want: "1,234.56789"},
		{in: "1234.", want: "1,234."},
		{in: ".12345", want: ".12345"},
		{in: "1234+5678", want: "1,234+5,678"},
		{in: "sin(12345)×1000", want: "sin(12,345)×1,000"},
		{in: "1.5E+30000", want: "1.5E+30000"},
		{in: "2E1234", want: "2E1234"},
		{in: "1234.5−6789", want: "1,234.5−6,789"},
	}
	for _, tc := range cases {
		if got := f.Reformat(tc.in); got != tc.want {
			t.Fatalf("Reformat(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestReformat_DotGrouping(t *testing.T) {
	f := MustNew(Separators{Grouping: ".", Decimal: ","})
	if got, want := f.Reformat("1234567,891"), "1.234.567,891"; got != want {
		t.Fatalf("Reformat=%q, want %q", got, want)
	}
	if got, want := f.Strip("1.234.567,891"), "1234567.891"; got != want {
		t.Fatalf("Strip=%q, want %q", got, want)
	}
}

func TestReformat_Idempotent(t *testing.T) {
	f := MustNew(DefaultSeparators)
	alphabet := []string{"0", "1", "2", "5", "9", ".", ",", "+", "−", "×", "(", ")", "sin(", "E", "π"}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		var sb strings.Builder
		n := rng.Intn(20)
		for k := 0; k < n; k++ {
			sb.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		s := sb.String()
		once := f.Reformat(s)
		if twice := f.Reformat(once); twice != once {
			t.Fatalf("Reformat not idempotent for %q: %q then %q", s, once, twice)
		}
		if got, want := strings.ReplaceAll(once, ",", ""), strings.ReplaceAll(s, ",", ""); got != want {
			t.Fatalf("Reformat(%q) changed non-separator characters: %q", s, once)
		}
	}
}

func TestStrip_PreservesValue(t *testing.T) {
	f := MustNew(DefaultSeparators)
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		v := rng.Float64() * float64(rng.Int63n(1_000_000_000))
		s := strconv.FormatFloat(v, 'f', rng.Intn(6), 64)
		got, err := strconv.ParseFloat(f.Strip(f.Reformat(s)), 64)
		if err != nil {
			t.Fatalf("Strip(Reformat(%q)) not parseable: %v", s, err)
		}
		want, _ := strconv.ParseFloat(f.Strip(s), 64)
		if got != want {
			t.Fatalf("value changed for %q: got %v, want %v", s, got, want)
		}
	}
}

func TestFilterUnknownSymbols(t *testing.T) {
	f := MustNew(DefaultSeparators)
	cases := []struct {
		in, want string
	}{
		{in: "", want: ""},
		{in: "1 + 2", want: "1+2"},
		{in: "3*4/5-6", want: "3×4÷5−6"},
		{in: "abc12xyz", want: "12"},
		{in: "asin(1)", want: "sin⁻¹(1)"},
		{in: "arctan(1)+lg(10)", want: "tan⁻¹(1)+log(10)"},
		{in: "1,234.5", want: "1,234.5"},
		{in: "sin(π)", want: "sin(π)"},
		{in: "sin π", want: "π"},
		{in: "√2^3!", want: "√2^3!"},
		{in: "$100", want: "100"},
	}
	for _, tc := range cases {
		if got := f.FilterUnknownSymbols(tc.in); got != tc.want {
			t.Fatalf("FilterUnknownSymbols(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFilterUnknownSymbols_DotBecomesLocaleDecimal(t *testing.T) {
	f := MustNew(Separators{Grouping: " ", Decimal: ","})
	if got, want := f.FilterUnknownSymbols("1.5"), "1,5"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := f.FilterUnknownSymbols("1 234,5"), "1 234,5"; got != want {
		t.Fatalf("grouping dropped: got %q, want %q", got, want)
	}

	g := MustNew(Separators{Grouping: ".", Decimal: ","})
	if got, want := g.FilterUnknownSymbols("1.234,5"), "1.234,5"; got != want {
		t.Fatalf("dot grouping: got %q, want %q", got, want)
	}
	if got, want := g.FilterUnknownSymbols("3.14"), "3.14"; got != want {
		t.Fatalf("dot stays grouping: got %q, want %q", got, want)
	}
	if got, want := g.Reformat("3.14"), "314"; got != want {
		t.Fatalf("reformat drops misplaced grouping: got %q, want %q", got, want)
	}
}

func TestSeparatorsFor(t *testing.T) {
	if got := SeparatorsFor(language.English); got != DefaultSeparators {
		t.Fatalf("en: got %+v, want %+v", got, DefaultSeparators)
	}
	if got, want := SeparatorsFor(language.German), (Separators{Grouping: ".", Decimal: ","}); got != want {
		t.Fatalf("de: got %+v, want %+v", got, want)
	}
	fr := SeparatorsFor(language.French)
	if fr.Decimal != "," || fr.Grouping == fr.Decimal {
		t.Fatalf("fr: got %+v", fr)
	}
	if err := fr.Validate(); err != nil {
		t.Fatalf("fr: %v", err)
	}
}
