package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters[start:end) into a single string. Bounds are
// clamped into [0, len(clusters)].
func Join(clusters []string, start, end int) string {
	start = clamp(start, 0, len(clusters))
	end = clamp(end, start, len(clusters))
	if start == end {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters[start:end] {
		sb.WriteString(c)
	}
	return sb.String()
}

// Window returns the text of clusters in [pos-before, pos+after), clamped into
// bounds.
func Window(clusters []string, pos, before, after int) string {
	return Join(clusters, pos-before, pos+after)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsDigit reports whether cluster is a single ASCII digit.
func IsDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
