package grapheme

import "testing"

func TestSplitAndCount_CalculatorSymbols(t *testing.T) {
	text := "12×sin⁻¹(π)"
	got := Split(text)
	if len(got) != 11 {
		t.Fatalf("split len=%d, want %d (%q)", len(got), 11, got)
	}
	if got[2] != "×" {
		t.Fatalf("split[2]=%q, want %q", got[2], "×")
	}
	if got[6] != "⁻" || got[7] != "¹" {
		t.Fatalf("superscripts split as %q %q", got[6], got[7])
	}
	if c := Count(text); c != 11 {
		t.Fatalf("count=%d, want %d", c, 11)
	}
	if Split("") != nil {
		t.Fatalf("split of empty text should be nil")
	}
}

func TestSplit_CombiningMarkStaysWithBase(t *testing.T) {
	got := Split("éx")
	if len(got) != 2 || got[0] != "é" {
		t.Fatalf("split=%q, want [é x]", got)
	}
}

func TestJoinAndWindow_Clamp(t *testing.T) {
	c := Split("1,234")
	if got, want := Join(c, 1, 3), ",2"; got != want {
		t.Fatalf("join=%q, want %q", got, want)
	}
	if got, want := Join(c, -4, 99), "1,234"; got != want {
		t.Fatalf("join clamped=%q, want %q", got, want)
	}
	if got := Join(c, 3, 1); got != "" {
		t.Fatalf("join reversed=%q, want empty", got)
	}
	if got, want := Window(c, 1, 3, 2), "1,"; got != want {
		t.Fatalf("window=%q, want %q", got, want)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\u00a0") {
		t.Fatalf("nbsp should be space")
	}
	if IsSpace("1") {
		t.Fatalf("digit should not be space")
	}
	if !IsDigit("7") || IsDigit("٧") || IsDigit("12") {
		t.Fatalf("IsDigit classifies only single ASCII digits")
	}
}
