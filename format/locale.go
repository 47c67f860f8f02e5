package format

import (
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iw2rmb/calcfield/token"
)

// probe has a grouped integer part and a fraction in every CLDR locale.
const probe = 1234567.5

// SeparatorsFor derives the grouping and decimal separators of tag from CLDR
// number data. Locales that print non-ASCII digits, or whose output cannot be
// read back, yield DefaultSeparators.
func SeparatorsFor(tag language.Tag) Separators {
	printed := message.NewPrinter(tag).Sprintf("%.1f", probe)

	var runs []string
	var cur []rune
	for _, r := range printed {
		if unicode.IsDigit(r) {
			if r > unicode.MaxASCII {
				return DefaultSeparators
			}
			if len(cur) > 0 {
				runs = append(runs, string(cur))
				cur = cur[:0]
			}
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		runs = append(runs, string(cur))
	}

	var sep Separators
	switch len(runs) {
	case 0:
		return DefaultSeparators
	case 1:
		sep.Decimal = runs[0]
		sep.Grouping = token.Comma
		if sep.Decimal == token.Comma {
			sep.Grouping = token.Dot
		}
	default:
		sep.Grouping = runs[0]
		sep.Decimal = runs[len(runs)-1]
	}
	if sep.Validate() != nil {
		return DefaultSeparators
	}
	return sep
}
