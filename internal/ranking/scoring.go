// Package ranking aggregates the analysis signals into the job-description
// match score.
package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Weights for the base score components
const (
	semanticWeight   = 0.30
	keywordWeight    = 0.35
	skillWeight      = 0.20
	experienceWeight = 0.10
	educationWeight  = 0.05
)

// SkillSourceKeywords marks a skill relevance borrowed from the keyword match
// because the job named no skills at all
const SkillSourceKeywords = "keywords"

// Inputs are the stage results the aggregator combines
type Inputs struct {
	Similarity   types.SimilarityScores
	KeywordMatch types.KeywordMatch
	Skills       skills.Result
	Experience   ExperienceMatch
	Education    EducationMatch
	Boost        BoostSignals
}

// Outcome is the final match score with the breakdown that explains it
type Outcome struct {
	FinalScore float64
	BaseScore  float64
	Breakdown  types.ScoreBreakdown
}

// Aggregate combines the weighted components into the base score, applies the
// distribution skew and the boost, and rounds to one decimal place.
func Aggregate(in Inputs) Outcome {
	skillValue, skillSource := skillRelevance(in)
	in.Boost.SkillRatio = skillValue

	components := []types.ScoreComponent{
		component("semanticSimilarity", clamp01(in.Similarity.Combined), semanticWeight,
			fmt.Sprintf("Combined text similarity %.0f%% (Jaccard %.2f, cosine %.2f, bigram %.2f)",
				in.Similarity.Combined*100, in.Similarity.Jaccard, in.Similarity.Cosine, in.Similarity.BigramOverlap)),
		component("keywordMatch", clamp01(in.KeywordMatch.Score/100), keywordWeight,
			fmt.Sprintf("%d of %d job keywords matched, %d partially",
				len(in.KeywordMatch.Matched), len(in.KeywordMatch.Matched)+len(in.KeywordMatch.Partial)+len(in.KeywordMatch.Missing), len(in.KeywordMatch.Partial))),
		component("skillRelevance", skillValue, skillWeight, skillExplanation(in.Skills, skillSource, skillValue)),
		component("experienceMatch", clamp01(in.Experience.Score), experienceWeight, experienceExplanation(in.Experience)),
		component("educationMatch", clamp01(in.Education.Score), educationWeight, educationExplanation(in.Education)),
	}

	base := 0.0
	for _, c := range components {
		base += c.Contribution
	}
	base = math.Min(100, base)

	skewed := ApplyDistributionSkew(base)
	final, boost, reasons := ApplyIntelligentBoost(skewed, in.Boost)

	return Outcome{
		FinalScore: round1(final),
		BaseScore:  round1(base),
		Breakdown: types.ScoreBreakdown{
			Components:   components,
			BaseScore:    round1(base),
			SkewedScore:  round1(skewed),
			Boost:        round1(boost),
			SkillSource:  skillSource,
			BoostReasons: reasons,
			ExperienceYears: types.ExperienceYears{
				Required: in.Experience.Required,
				Stated:   in.Experience.Stated,
			},
			EducationLevels: types.EducationLevels{
				Required: in.Education.Required,
				Attained: in.Education.Attained,
			},
		},
	}
}

// CountBoostSignals counts the fixed co-occurrence keywords present in both
// texts and the certification keywords present in the resume.
func CountBoostSignals(jobText, resumeText string, tables *vocabulary.Tables) BoostSignals {
	if tables == nil {
		tables = vocabulary.Default()
	}
	var signals BoostSignals
	for _, kw := range tables.CoOccurrenceKeywords() {
		if tables.ContainsTerm(jobText, kw) && tables.ContainsTerm(resumeText, kw) {
			signals.CoOccurrences++
		}
	}
	for _, cert := range tables.Certifications() {
		if tables.ContainsTerm(resumeText, cert) {
			signals.Certifications++
		}
	}
	return signals
}

// skillRelevance follows the matcher's choice and falls back to the keyword
// match ratio when neither strategy had anything to compare.
func skillRelevance(in Inputs) (float64, string) {
	if in.Skills.Source == skills.SourceNone || in.Skills.Source == "" {
		return clamp01(in.KeywordMatch.Score / 100), SkillSourceKeywords
	}
	return clamp01(in.Skills.Relevance), in.Skills.Source
}

func component(name string, value, weight float64, explanation string) types.ScoreComponent {
	return types.ScoreComponent{
		Name:         name,
		Value:        round3(value),
		Weight:       weight,
		Contribution: value * weight * 100,
		Explanation:  explanation,
	}
}

func skillExplanation(result skills.Result, source string, value float64) string {
	switch source {
	case skills.SourceFullText:
		fm := result.FullText
		return fmt.Sprintf("%d of %d required skills found in the resume text", len(fm.Matched), fm.TotalRequired)
	case skills.SourceCategory:
		return fmt.Sprintf("Technical categories matched at %.0f%%", result.Technical.OverallScore)
	}
	return fmt.Sprintf("No skills named in the job; using keyword match %.0f%%", value*100)
}

func experienceExplanation(m ExperienceMatch) string {
	switch {
	case m.Required == 0:
		return "No years of experience required; neutral score"
	case m.Stated == 0:
		return fmt.Sprintf("%d years required; none stated", m.Required)
	}
	return fmt.Sprintf("%d years stated against %d required", m.Stated, m.Required)
}

func educationExplanation(m EducationMatch) string {
	switch {
	case m.Required == 0:
		return "No degree required; neutral score"
	case m.Attained == 0:
		return fmt.Sprintf("Degree level %d required; none found", m.Required)
	}
	return fmt.Sprintf("Degree level %d attained against %d required", m.Attained, m.Required)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
