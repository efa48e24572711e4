package ranking

import (
	"regexp"
	"strconv"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// neutralScore is used when the job states no requirement
	neutralScore = 0.5
	// floorScore is the minimum for a resume that states anything at all
	floorScore = 0.2
	// maxPlausibleYears rejects numbers such as "100 years of history"
	maxPlausibleYears = 40
)

var yearsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)

// ExperienceMatch compares required and stated years of experience
type ExperienceMatch struct {
	Score    float64 `json:"score"` // 0-1
	Required int     `json:"required"`
	Stated   int     `json:"stated"`
}

// RequiredYears returns the first "N years" requirement in the job text, or 0.
func RequiredYears(jobText string) int {
	for _, m := range yearsPattern.FindAllStringSubmatch(jobText, -1) {
		n, _ := strconv.Atoi(m[1])
		if n > 0 && n <= maxPlausibleYears {
			return n
		}
	}
	return 0
}

// StatedYears returns the largest "N years" claim in the resume text. Without
// one, it falls back to the span covered by the dated positions, where an open
// range ends at the latest year mentioned anywhere in the resume.
func StatedYears(resumeText string, positions []types.WorkExperience) int {
	stated := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(resumeText, -1) {
		n, _ := strconv.Atoi(m[1])
		if n <= maxPlausibleYears && n > stated {
			stated = n
		}
	}
	if stated > 0 {
		return stated
	}
	return spanYears(resumeText, positions)
}

func spanYears(resumeText string, positions []types.WorkExperience) int {
	earliest, latest := 0, 0
	for _, p := range positions {
		r, ok := parsing.ParseDateRange(p.Dates)
		if !ok {
			continue
		}
		end := r.End
		if r.Open {
			end = max(parsing.LatestYear(resumeText), r.Start)
		}
		if earliest == 0 || r.Start < earliest {
			earliest = r.Start
		}
		latest = max(latest, end)
	}
	if earliest == 0 || latest < earliest {
		return 0
	}
	return latest - earliest
}

// MatchExperience scores stated against required years: the ratio capped at
// 1, at least floorScore when any experience is stated, and neutralScore when
// the job sets no requirement.
func MatchExperience(jobText, resumeText string, positions []types.WorkExperience) ExperienceMatch {
	m := ExperienceMatch{
		Required: RequiredYears(jobText),
		Stated:   StatedYears(resumeText, positions),
	}
	m.Score = ratioScore(m.Stated, m.Required)
	return m
}

func ratioScore(have, need int) float64 {
	switch {
	case need == 0:
		return neutralScore
	case have == 0:
		return 0
	}
	return max(floorScore, min(float64(have)/float64(need), 1))
}
