// Package lexical turns raw text into stemmed unigrams and word n-grams.
package lexical

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Result is the preprocessed form of a text. Unigrams are stemmed; Bigrams and
// Trigrams join the unstemmed, stopword-filtered tokens with a single space.
type Result struct {
	Tokens   []string `json:"tokens"`
	Unigrams []string `json:"unigrams"`
	Bigrams  []string `json:"bigrams"`
	Trigrams []string `json:"trigrams"`
}

// tokenPattern keeps '+', '#' and '.' inside tokens so c++, c# and node.js survive
var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9+#.\-/]*`)

var alphaOnly = regexp.MustCompile(`^[a-z]+$`)

// Tokenize lowercases text and splits it into word tokens.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.TrimRight(tok, ".-/")
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Stem reduces an alphabetic token to its English stem. Tokens carrying digits
// or symbols are returned unchanged.
func Stem(token string) string {
	if !alphaOnly.MatchString(token) {
		return token
	}
	return english.Stem(token, false)
}

// Preprocess tokenizes text, removes stop words, stems unigrams and builds
// contiguous bigrams and trigrams from the filtered tokens.
func Preprocess(text string, tables *vocabulary.Tables) Result {
	tokens := Tokenize(text)

	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tables.IsStopWord(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}

	unigrams := make([]string, 0, len(filtered))
	for _, tok := range filtered {
		unigrams = append(unigrams, Stem(tok))
	}

	return Result{
		Tokens:   filtered,
		Unigrams: unigrams,
		Bigrams:  NGrams(filtered, 2),
		Trigrams: NGrams(filtered, 3),
	}
}

// NGrams returns the contiguous n-token sequences of tokens joined by a space.
func NGrams(tokens []string, n int) []string {
	if n <= 0 || len(tokens) < n {
		return []string{}
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return grams
}

// CountWords counts whitespace separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
