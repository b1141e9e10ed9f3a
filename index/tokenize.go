// Package index builds the read-only keyword, n-gram, identifier, and
// category indices over a catalog.
package index

import (
	"strings"
	"unicode"
)

// minTokenLen is the minimum length for a token to qualify for indexing.
const minTokenLen = 3

// maxNgramTokens is the widest n-gram window (1 to 3 consecutive tokens).
const maxNgramTokens = 3

// Tokenize lowercases text, splits it on non-alphanumeric boundaries, and
// keeps only tokens of at least three characters. This rule is shared by
// index construction and query-side matching; both sides must tokenize
// identically for lookups to be reproducible.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Ngrams slides a window of 1 to 3 consecutive tokens over the token slice
// and returns every joined phrase of at least three characters.
func Ngrams(tokens []string) []string {
	var phrases []string
	for i := range tokens {
		for n := 1; n <= maxNgramTokens && i+n <= len(tokens); n++ {
			phrase := strings.Join(tokens[i:i+n], " ")
			if len(phrase) >= minTokenLen {
				phrases = append(phrases, phrase)
			}
		}
	}
	return phrases
}
