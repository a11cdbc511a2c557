package readability

import "strings"

// syllableOverrides covers common words the vowel-group heuristic gets
// wrong. It stands in for a full pronunciation dictionary; the heuristic
// handles everything else.
var syllableOverrides = map[string]int{
	"simple":    2,
	"people":    2,
	"little":    2,
	"table":     2,
	"able":      2,
	"every":     3,
	"business":  2,
	"camera":    3,
	"chocolate": 3,
	"different": 3,
	"evening":   3,
	"family":    3,
	"favorite":  3,
	"interest":  3,
	"science":   2,
	"area":      3,
	"idea":      3,
	"being":     2,
	"create":    2,
	"quiet":     2,
}

const vowels = "aeiouy"

// CountSyllables estimates the syllable count of a word. A lookup table
// of common exceptions is consulted first; otherwise vowel-group
// transitions are counted, a silent trailing "e" is discounted and the
// result is floored at one. The estimate is approximate.
func CountSyllables(word string) int {
	word = strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	if word == "" {
		return 0
	}
	if n, ok := syllableOverrides[word]; ok {
		return n
	}

	count := 0
	if strings.ContainsRune(vowels, rune(word[0])) {
		count++
	}
	for i := 1; i < len(word); i++ {
		if strings.ContainsRune(vowels, rune(word[i])) && !strings.ContainsRune(vowels, rune(word[i-1])) {
			count++
		}
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
