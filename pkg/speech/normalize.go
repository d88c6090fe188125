package speech

import (
	"strconv"
	"strings"
	"unicode"
)

var ones = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// Normalize canonicalizes a raw transcription for comparison: lower-cased,
// punctuation stripped, integers spelled out, whitespace collapsed.
//
// Transcription engines are inconsistent about casing, commas, and whether
// "one" comes back as a digit; scores should not hinge on any of that.
func Normalize(text string) string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '\'' || r == '’':
			// Drop apostrophes entirely: "don't" -> "dont".
		default:
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	out := make([]string, 0, len(words))
	for _, w := range words {
		if n, err := strconv.Atoi(w); err == nil {
			out = append(out, spellNumber(n)...)
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// spellNumber spells a non-negative integer below one million as words.
// Larger or negative values are passed through as digits.
func spellNumber(n int) []string {
	switch {
	case n < 0 || n >= 1000000:
		return []string{strconv.Itoa(n)}
	case n < 20:
		return []string{ones[n]}
	case n < 100:
		w := []string{tens[n/10]}
		if n%10 != 0 {
			w = append(w, ones[n%10])
		}
		return w
	case n < 1000:
		w := []string{ones[n/100], "hundred"}
		if n%100 != 0 {
			w = append(w, spellNumber(n%100)...)
		}
		return w
	default:
		w := append(spellNumber(n/1000), "thousand")
		if n%1000 != 0 {
			w = append(w, spellNumber(n%1000)...)
		}
		return w
	}
}
