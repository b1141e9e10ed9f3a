// Package fuzzy provides the approximate string-similarity capability used
// by the fuzzy scorer.
package fuzzy

import "math"

// Ratio scores approximate string similarity on a 0-100 scale. The score is
// symmetric: Ratio(a, b) == Ratio(b, a).
type Ratio interface {
	Ratio(a, b string) int
}

// Levenshtein implements Ratio using edit distance: 100 means identical,
// 0 means no character in common at the extreme.
type Levenshtein struct{}

// NewLevenshtein returns the default edit-distance based ratio.
func NewLevenshtein() Levenshtein {
	return Levenshtein{}
}

// Ratio returns 100 * (1 - distance/maxLen), rounded.
func (Levenshtein) Ratio(a, b string) int {
	if a == b {
		return 100
	}
	runesA := []rune(a)
	runesB := []rune(b)
	maxLen := len(runesA)
	if len(runesB) > maxLen {
		maxLen = len(runesB)
	}
	if maxLen == 0 {
		return 100
	}
	d := distance(runesA, runesB)
	return int(math.Round(100 * (1 - float64(d)/float64(maxLen))))
}

// distance calculates the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to change one string
// into another. Only two rows of the distance matrix are kept.
func distance(runesA, runesB []rune) int {
	lenA := len(runesA)
	lenB := len(runesB)
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)
	for j := 0; j <= lenB; j++ {
		prev[j] = j
	}

	for i := 1; i <= lenA; i++ {
		curr[0] = i
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}
			curr[j] = minOf(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[lenB]
}

func minOf(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
