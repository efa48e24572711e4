// Package ats scores a resume against ATS best practices, section by section.
package ats

import "sort"

// Section names used as keys of ATSBestPractices.Sections
const (
	SectionContact      = "contact"
	SectionSummary      = "summary"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionLocation     = "location"
	SectionLength       = "length"
	SectionKeywords     = "keywords"
	SectionAchievements = "achievements"
	SectionActionVerbs  = "actionVerbs"
	SectionFormat       = "format"
	SectionOverall      = "overall"
)

// SectionWeights are the fixed weights of the sections that make up the
// overall best-practices score
var SectionWeights = map[string]float64{
	SectionContact:    0.15,
	SectionSummary:    0.15,
	SectionExperience: 0.25,
	SectionEducation:  0.15,
	SectionSkills:     0.15,
	SectionLocation:   0.05,
	SectionLength:     0.05,
}

// WeightedScore combines the weighted sections found in scores. Sections that
// are absent from the map drop out of both numerator and denominator, so the
// weights of the remaining sections are renormalized. Returns 0 when no
// weighted section is present.
func WeightedScore(scores map[string]float64) float64 {
	names := make([]string, 0, len(SectionWeights))
	for name := range SectionWeights {
		names = append(names, name)
	}
	sort.Strings(names)

	var total, weights float64
	for _, name := range names {
		score, ok := scores[name]
		if !ok {
			continue
		}
		total += score * SectionWeights[name]
		weights += SectionWeights[name]
	}
	if weights == 0 {
		return 0
	}
	return total / weights
}
