package ranking

import (
	"fmt"
	"math"
)

// Distribution skew constants
const (
	lowScoreThreshold  = 50.0
	highScoreThreshold = 80.0
	lowScoreFactor     = 0.95
	highScoreFactor    = 1.05
)

// Boost constants
const (
	strongSkillRatio   = 0.7
	goodSkillRatio     = 0.5
	strongSkillBoost   = 5.0
	goodSkillBoost     = 3.0
	coOccurrenceBoost  = 1.0
	maxCoOccurrence    = 8.0
	certificationBoost = 2.0
)

// ApplyDistributionSkew spreads scores apart: below 50 shrinks by 5%, 80 and
// above grows by 5% capped at 100, the middle band is unchanged.
func ApplyDistributionSkew(score float64) float64 {
	switch {
	case score < lowScoreThreshold:
		return score * lowScoreFactor
	case score >= highScoreThreshold:
		return math.Min(100, score*highScoreFactor)
	}
	return score
}

// BoostSignals are the resume signals that earn bonus points
type BoostSignals struct {
	SkillRatio     float64 // 0-1
	CoOccurrences  int     // fixed tech keywords present in both job and resume
	Certifications int     // certification keywords present in the resume
}

// ApplyIntelligentBoost adds bonus points for strong skill coverage, shared
// core technologies and certifications. The result never exceeds 100. It
// returns the boosted score, the points actually added and the reasons.
func ApplyIntelligentBoost(score float64, signals BoostSignals) (float64, float64, []string) {
	var boost float64
	reasons := []string{}

	switch {
	case signals.SkillRatio > strongSkillRatio:
		boost += strongSkillBoost
		reasons = append(reasons, fmt.Sprintf("+%.0f strong skill match (%.0f%%)", strongSkillBoost, signals.SkillRatio*100))
	case signals.SkillRatio > goodSkillRatio:
		boost += goodSkillBoost
		reasons = append(reasons, fmt.Sprintf("+%.0f good skill match (%.0f%%)", goodSkillBoost, signals.SkillRatio*100))
	}

	if signals.CoOccurrences > 0 {
		points := math.Min(maxCoOccurrence, coOccurrenceBoost*float64(signals.CoOccurrences))
		boost += points
		reasons = append(reasons, fmt.Sprintf("+%.0f shared core technologies (%d)", points, signals.CoOccurrences))
	}

	if signals.Certifications > 0 {
		points := certificationBoost * float64(signals.Certifications)
		boost += points
		reasons = append(reasons, fmt.Sprintf("+%.0f certifications (%d)", points, signals.Certifications))
	}

	boosted := math.Min(100, score+boost)
	return boosted, boosted - score, reasons
}
