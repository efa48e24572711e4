package skills

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/terms"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const (
	contextRadius       = 50
	variationConfidence = 0.9
)

// MatchFullText checks every skill the job requires against the raw resume
// text, trying an exact match, then known variations, then a fuzzy match
// against the resume's technical terms and keywords. It returns nil when the
// job requires no identifiable skills. The overall score is the share of
// target weight that was found, so a missing technical term costs more than a
// missing catalog skill.
func MatchFullText(jobText, resumeText string, jobTerms, resumeTerms types.TermSet, tables *vocabulary.Tables) *types.SkillsMatch {
	targets := buildTargets(jobText, jobTerms, tables)
	if len(targets) == 0 {
		return nil
	}

	candidates := fuzzyCandidates(resumeText, resumeTerms, tables)

	result := &types.SkillsMatch{
		Matched:       []types.SkillMatch{},
		Missing:       []string{},
		TotalRequired: len(targets),
	}

	var found, total float64
	for _, t := range targets {
		total += t.Weight
		if match, ok := findSkill(t.Name, resumeText, candidates, tables); ok {
			result.Matched = append(result.Matched, match)
			found += t.Weight
			continue
		}
		result.Missing = append(result.Missing, t.Name)
	}

	if total > 0 {
		result.OverallMatchScore = found / total * 100
	}
	return result
}

func findSkill(skill, resumeText string, candidates []string, tables *vocabulary.Tables) (types.SkillMatch, bool) {
	if loc := tables.FindTerm(resumeText, skill); loc != nil {
		return types.SkillMatch{
			Skill:       skill,
			MatchType:   types.MatchExact,
			MatchedText: resumeText[loc[0]:loc[1]],
			Confidence:  1.0,
			Context:     snippet(resumeText, loc[0], loc[1]),
		}, true
	}

	for _, variation := range tables.Variations(skill) {
		if loc := tables.FindTerm(resumeText, variation); loc != nil {
			return types.SkillMatch{
				Skill:       skill,
				MatchType:   types.MatchVariation,
				MatchedText: resumeText[loc[0]:loc[1]],
				Confidence:  variationConfidence,
				Context:     snippet(resumeText, loc[0], loc[1]),
			}, true
		}
	}

	if found, score := bestFuzzy(skill, candidates); found != "" {
		match := types.SkillMatch{
			Skill:       skill,
			MatchType:   types.MatchFuzzy,
			MatchedText: found,
			Confidence:  score,
		}
		if loc := tables.FindTerm(resumeText, found); loc != nil {
			match.MatchedText = resumeText[loc[0]:loc[1]]
			match.Context = snippet(resumeText, loc[0], loc[1])
		}
		return match, true
	}

	return types.SkillMatch{}, false
}

// fuzzyCandidates lists the resume's technical terms followed by its other
// distinct keywords, a stable order so fuzzy picks are deterministic.
func fuzzyCandidates(resumeText string, resumeTerms types.TermSet, tables *vocabulary.Tables) []string {
	seen := make(map[string]bool)
	candidates := make([]string, 0, len(resumeTerms.AllTerms))
	for _, term := range resumeTerms.AllTerms {
		if !seen[term] {
			seen[term] = true
			candidates = append(candidates, term)
		}
	}
	for _, kw := range terms.ExtractTechnicalKeywords(resumeText, tables) {
		if !seen[kw] {
			seen[kw] = true
			candidates = append(candidates, kw)
		}
	}
	return candidates
}

// snippet returns up to contextRadius bytes either side of [start,end) on one line
func snippet(text string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(text) {
		to = len(text)
	}
	// Avoid cutting through a multi-byte rune.
	for from > 0 && !isRuneStart(text[from]) {
		from--
	}
	for to < len(text) && !isRuneStart(text[to]) {
		to++
	}
	return strings.Join(strings.Fields(text[from:to]), " ")
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
