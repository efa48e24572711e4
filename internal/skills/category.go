package skills

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// categoryWeights weight each category's match rate in the overall technical
// score. Categories the job does not mention are left out and the remaining
// weights renormalized.
var categoryWeights = map[types.Category]float64{
	types.CategoryProgrammingLanguages: 0.25,
	types.CategoryFrameworks:           0.20,
	types.CategoryTools:                0.15,
	types.CategoryDatabases:            0.15,
	types.CategoryPlatforms:            0.10,
	types.CategoryMethodologies:        0.15,
}

// categorySeverity decides how a missing term of each category is reported
var categorySeverity = map[types.Category]string{
	types.CategoryProgrammingLanguages: types.SeverityCritical,
	types.CategoryFrameworks:           types.SeverityImportant,
	types.CategoryDatabases:            types.SeverityImportant,
	types.CategoryPlatforms:            types.SeverityImportant,
	types.CategoryTools:                types.SeverityNiceToHave,
	types.CategoryMethodologies:        types.SeverityNiceToHave,
}

// requirementTypes name a missing term's category in the singular
var requirementTypes = map[types.Category]string{
	types.CategoryProgrammingLanguages: "programmingLanguage",
	types.CategoryFrameworks:           "framework",
	types.CategoryTools:                "tool",
	types.CategoryPlatforms:            "platform",
	types.CategoryDatabases:            "database",
	types.CategoryMethodologies:        "methodology",
}

// MatchTechnical compares the technical terms required by a job against the
// terms found in a resume, category by category. A required term counts as
// matched when the resume has it exactly or a fuzzy equivalent. Terms only
// covered by a related technology are reported in RelatedMatches and stay missing.
func MatchTechnical(jobTerms, resumeTerms types.TermSet, tables *vocabulary.Tables) types.TechnicalMatch {
	result := types.TechnicalMatch{
		Categories: make(map[types.Category]types.CategoryMatch, len(types.Categories)),
		MissingRequirements: types.MissingRequirements{
			Critical:   []types.MissingRequirement{},
			Important:  []types.MissingRequirement{},
			NiceToHave: []types.MissingRequirement{},
		},
		RelatedMatches: []types.RelatedMatch{},
	}

	resumeAll := make(map[string]bool, len(resumeTerms.AllTerms))
	for _, term := range resumeTerms.AllTerms {
		resumeAll[term] = true
	}

	var weighted, totalWeight float64
	for _, category := range types.Categories {
		required := jobTerms.ByCategory(category)
		cm := types.CategoryMatch{
			Required: append([]string{}, required...),
			Matched:  []types.TermMatch{},
			Missing:  []string{},
		}

		candidates := resumeTerms.ByCategory(category)
		for _, term := range required {
			if match, ok := matchTerm(term, candidates); ok {
				cm.Matched = append(cm.Matched, match)
				continue
			}

			cm.Missing = append(cm.Missing, term)
			addMissing(&result.MissingRequirements, category, term)

			for _, related := range tables.Family(term) {
				if resumeAll[related] {
					result.RelatedMatches = append(result.RelatedMatches, types.RelatedMatch{
						RequiredTerm: term,
						FoundTerm:    related,
						Relationship: "related",
					})
					break
				}
			}
		}

		if len(required) > 0 {
			cm.MatchRate = float64(len(cm.Matched)) / float64(len(required)) * 100
			weighted += categoryWeights[category] * cm.MatchRate
			totalWeight += categoryWeights[category]
		}
		result.Categories[category] = cm
	}

	if totalWeight > 0 {
		result.OverallScore = weighted / totalWeight
	}

	sort.SliceStable(result.RelatedMatches, func(i, j int) bool {
		return result.RelatedMatches[i].RequiredTerm < result.RelatedMatches[j].RequiredTerm
	})
	return result
}

// matchTerm looks for term among the resume terms of the same category,
// exactly first and then by FuzzyScore.
func matchTerm(term string, candidates []string) (types.TermMatch, bool) {
	for _, candidate := range candidates {
		if candidate == term {
			return types.TermMatch{RequiredTerm: term, FoundTerm: candidate, MatchType: types.MatchExact, Confidence: 1}, true
		}
	}
	found, score := bestFuzzy(term, candidates)
	if found == "" {
		return types.TermMatch{}, false
	}
	return types.TermMatch{RequiredTerm: term, FoundTerm: found, MatchType: types.MatchFuzzy, Confidence: score}, true
}

// HasRequirements reports whether the job named any technical term.
func HasRequirements(jobTerms types.TermSet) bool {
	for _, category := range types.Categories {
		if len(jobTerms.ByCategory(category)) > 0 {
			return true
		}
	}
	return false
}

func addMissing(missing *types.MissingRequirements, category types.Category, term string) {
	req := types.MissingRequirement{Type: requirementTypes[category], Term: parsing.NormalizeSkillName(term)}
	switch categorySeverity[category] {
	case types.SeverityCritical:
		missing.Critical = append(missing.Critical, req)
	case types.SeverityImportant:
		missing.Important = append(missing.Important, req)
	default:
		missing.NiceToHave = append(missing.NiceToHave, req)
	}
}
