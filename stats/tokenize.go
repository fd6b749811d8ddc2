package stats

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r can appear inside a word. Words are maximal
// runs of letters, digits, hyphens and apostrophes; everything else is a
// word break.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '\''
}

// Words splits s into lowercase words.
func Words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isWordRune(r)
	})
}

// wordCounts tokenizes s and returns per-word occurrence counts plus the
// total number of words.
func wordCounts(s string) (map[string]int, int) {
	words := Words(s)
	if len(words) == 0 {
		return nil, 0
	}
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts, len(words)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
