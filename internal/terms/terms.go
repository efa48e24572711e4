// Package terms extracts curated technical vocabulary and free-form technical
// keywords from text.
package terms

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexical"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

var hasLetter = regexp.MustCompile(`[a-z]`)

// ExtractTechnical finds every curated technical term in text, bucketed by
// category, plus multi-word compound terms. Matching is case-insensitive and
// respects token boundaries.
func ExtractTechnical(text string, tables *vocabulary.Tables) types.TermSet {
	set := types.TermSet{}
	all := make(map[string]bool)

	for _, category := range types.Categories {
		found := make([]string, 0)
		for _, term := range tables.Technical(category) {
			if tables.ContainsTerm(text, term) {
				found = append(found, term)
				all[term] = true
			}
		}
		sort.Strings(found)
		set.SetCategory(category, found)
	}

	compound := make([]string, 0)
	for _, phrase := range tables.Compound() {
		if tables.ContainsTerm(text, phrase) {
			compound = append(compound, phrase)
			all[phrase] = true
		}
	}
	sort.Strings(compound)
	set.Compound = compound

	set.AllTerms = sortedKeys(all)
	return set
}

// KeywordTokens returns the lowercased tokens of text that may serve as
// free-form technical keywords, in order and with repetitions. Stop words,
// blocklisted common words, pure numbers and single characters are dropped.
func KeywordTokens(text string, tables *vocabulary.Tables) []string {
	tokens := lexical.Tokenize(text)
	out := make([]string, 0, len(tokens))
	curatedPresent := make(map[string]bool)
	for _, tok := range tokens {
		if tables.IsCurated(tok) {
			// Curated terms like "go" carry their own case rules.
			present, checked := curatedPresent[tok]
			if !checked {
				present = tables.ContainsTerm(text, tok)
				curatedPresent[tok] = present
			}
			if present {
				out = append(out, tok)
			}
			continue
		}
		if !isKeywordCandidate(tok, tables) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// ExtractTechnicalKeywords returns the distinct free-form technical keywords of
// text in first-seen order.
func ExtractTechnicalKeywords(text string, tables *vocabulary.Tables) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, tok := range KeywordTokens(text, tables) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

func isKeywordCandidate(tok string, tables *vocabulary.Tables) bool {
	if len(tok) < 3 || !hasLetter.MatchString(tok) {
		return false
	}
	if tables.IsStopWord(tok) || tables.IsCommonWord(tok) {
		return false
	}
	return strings.Count(tok, "/") <= 1
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
