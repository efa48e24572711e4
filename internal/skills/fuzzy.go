package skills

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// fuzzyThreshold is the minimum similarity accepted as a fuzzy match
	fuzzyThreshold        = 0.7
	// substringConfidence is the similarity assigned when one term contains
	// the other as whole words
	substringConfidence   = 0.8
	// minEditDistanceLength keeps short terms like "rust" and "rest" apart
	minEditDistanceLength = 5
	maxPrefixBonusChars   = 4
	prefixBonusPerChar    = 0.025
)

// FuzzyScore returns the similarity of two lowercased terms in [0,1].
// A term contained in the other at word boundaries scores substringConfidence;
// otherwise the score is the normalized Levenshtein similarity plus a small
// common-prefix bonus. Terms shorter than minEditDistanceLength only match
// exactly or as whole-word substrings.
func FuzzyScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if containsWord(a, b) || containsWord(b, a) {
		return substringConfidence
	}
	if len(a) < minEditDistanceLength || len(b) < minEditDistanceLength {
		return 0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	dist := levenshtein.ComputeDistance(a, b)
	score := 1 - float64(dist)/float64(maxLen)

	prefix := commonPrefixLength(a, b)
	if prefix > maxPrefixBonusChars {
		prefix = maxPrefixBonusChars
	}
	score += float64(prefix) * prefixBonusPerChar

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// IsFuzzyMatch reports whether FuzzyScore reaches the acceptance threshold.
func IsFuzzyMatch(a, b string) bool {
	return FuzzyScore(a, b) >= fuzzyThreshold
}

// bestFuzzy returns the candidate most similar to term, scanning candidates in order.
func bestFuzzy(term string, candidates []string) (string, float64) {
	best, bestScore := "", 0.0
	for _, candidate := range candidates {
		if candidate == term {
			continue
		}
		score := FuzzyScore(term, candidate)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < fuzzyThreshold {
		return "", 0
	}
	return best, bestScore
}

// containsWord reports whether needle occurs in haystack delimited by
// non-alphanumeric characters, so "java" is not found in "javascript".
func containsWord(haystack, needle string) bool {
	if len(needle) >= len(haystack) {
		return false
	}
	for offset := 0; ; {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(needle)
		if (start == 0 || !isWordChar(haystack[start-1])) && (end == len(haystack) || !isWordChar(haystack[end])) {
			return true
		}
		offset = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '+' || c == '#'
}

func commonPrefixLength(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
