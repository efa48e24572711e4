package skills

import (
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Skill relevance sources
const (
	SourceFullText = "fullText"
	SourceCategory = "category"
	SourceNone     = "none"
)

// Result carries both strategies and the skill relevance chosen from them
type Result struct {
	Technical types.TechnicalMatch
	FullText  *types.SkillsMatch
	// Relevance is in [0,1]. The full-text score wins whenever it could be
	// computed; the category score is the fallback.
	Relevance float64
	Source    string
}

// Matcher runs both skill strategies against one set of vocabulary tables
type Matcher struct {
	tables *vocabulary.Tables
}

// NewMatcher creates a Matcher; nil tables selects the defaults.
func NewMatcher(tables *vocabulary.Tables) *Matcher {
	if tables == nil {
		tables = vocabulary.Default()
	}
	return &Matcher{tables: tables}
}

// Match runs the category and full-text strategies and picks the skill relevance.
func (m *Matcher) Match(jobText, resumeText string, jobTerms, resumeTerms types.TermSet) Result {
	result := Result{
		Technical: MatchTechnical(jobTerms, resumeTerms, m.tables),
		FullText:  MatchFullText(jobText, resumeText, jobTerms, resumeTerms, m.tables),
		Source:    SourceNone,
	}

	switch {
	case result.FullText != nil:
		result.Relevance = result.FullText.OverallMatchScore / 100
		result.Source = SourceFullText
	case HasRequirements(jobTerms):
		result.Relevance = result.Technical.OverallScore / 100
		result.Source = SourceCategory
	}
	return result
}
