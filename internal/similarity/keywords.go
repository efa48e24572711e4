package similarity

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/terms"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const (
	// importanceScale maps single-document term frequency onto a 0-100 range
	importanceScale = 100.0
	maxImportance   = 100.0

	// partialMatchCredit is the weight credited when a job keyword only
	// partially matches a resume keyword
	partialMatchCredit = 0.7
	minPartialLength   = 3
)

// ExtractKeywords ranks the technical keywords of a single document by term
// frequency and returns the topN. Compound technical phrases count as one term.
// Ties are broken alphabetically.
func ExtractKeywords(text string, tables *vocabulary.Tables, topN int) []types.Keyword {
	tokens := terms.KeywordTokens(text, tables)
	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok]++
	}
	total := len(tokens)

	for _, phrase := range tables.Compound() {
		n := len(tables.Pattern(phrase).FindAllStringIndex(text, -1))
		if n > 0 {
			counts[phrase] += n
			total += n
		}
	}
	if total == 0 {
		return []types.Keyword{}
	}

	keywords := make([]types.Keyword, 0, len(counts))
	for term, count := range counts {
		importance := float64(count) / float64(total) * importanceScale
		if importance > maxImportance {
			importance = maxImportance
		}
		keywords = append(keywords, types.Keyword{Term: term, Importance: importance})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Importance != keywords[j].Importance {
			return keywords[i].Importance > keywords[j].Importance
		}
		return keywords[i].Term < keywords[j].Term
	})

	if topN > 0 && len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

// KeywordSet returns every technical keyword and compound phrase present in text.
func KeywordSet(text string, tables *vocabulary.Tables) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range terms.KeywordTokens(text, tables) {
		set[tok] = true
	}
	for _, phrase := range tables.Compound() {
		if tables.ContainsTerm(text, phrase) {
			set[phrase] = true
		}
	}
	return set
}

// WeightedKeywordMatch scores how much of the job keyword weight the resume
// covers. Exact matches earn full weight; a keyword that contains, or is
// contained in, a resume keyword earns partialMatchCredit of its weight.
// The score is 0 when the job keywords carry no weight.
func WeightedKeywordMatch(jobKeywords []types.Keyword, resumeKeywords map[string]bool) types.KeywordMatch {
	result := types.KeywordMatch{
		Matched: []string{},
		Partial: []string{},
		Missing: []string{},
	}

	resumeList := make([]string, 0, len(resumeKeywords))
	for kw := range resumeKeywords {
		resumeList = append(resumeList, kw)
	}
	sort.Strings(resumeList)

	var total, earned float64
	for _, kw := range jobKeywords {
		total += kw.Importance
		switch {
		case resumeKeywords[kw.Term]:
			earned += kw.Importance
			result.Matched = append(result.Matched, kw.Term)
		case hasPartialMatch(kw.Term, resumeList):
			earned += kw.Importance * partialMatchCredit
			result.Partial = append(result.Partial, kw.Term)
		default:
			result.Missing = append(result.Missing, kw.Term)
		}
	}

	if total > 0 {
		result.Score = earned / total * 100
	}
	return result
}

func hasPartialMatch(term string, candidates []string) bool {
	if len(term) < minPartialLength {
		return false
	}
	for _, candidate := range candidates {
		if len(candidate) < minPartialLength || candidate == term {
			continue
		}
		if strings.Contains(candidate, term) || strings.Contains(term, candidate) {
			return true
		}
	}
	return false
}
