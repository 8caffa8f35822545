// Package textproc provides the text normalization and keyword extraction
// primitives shared by every scorer in the matching pipeline.
package textproc

import (
	"strings"
	"unicode"
)

// Normalize lowercases the input, strips punctuation, removes English
// stopwords and lemmatizes the remaining tokens, rejoined with single spaces.
// Empty or whitespace-only input yields "". Normalize is idempotent.
func Normalize(text string) string {
	return strings.Join(Tokens(text), " ")
}

// Tokens returns the normalized token sequence for the input, in order.
func Tokens(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, text)

	fields := strings.Fields(cleaned)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsStopword(f) {
			continue
		}
		lemma := Lemmatize(f)
		if lemma == "" || IsStopword(lemma) {
			continue
		}
		out = append(out, lemma)
	}
	return out
}

// WordCount returns the number of normalized tokens in the input.
func WordCount(text string) int {
	return len(Tokens(text))
}
