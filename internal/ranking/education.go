package ranking

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// EducationMatch compares the required degree level with the attained one
type EducationMatch struct {
	Score    float64 `json:"score"` // 0-1
	Required int     `json:"required"`
	Attained int     `json:"attained"`
}

type degreeMatcher struct {
	pattern *regexp.Regexp
	level   int
	short   bool
}

func degreeMatchers(tables *vocabulary.Tables) []degreeMatcher {
	levels := tables.DegreeLevels()
	keys := make([]string, 0, len(levels))
	for k := range levels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	matchers := make([]degreeMatcher, 0, len(keys))
	for _, key := range keys {
		short := len(key) <= 3 && !strings.Contains(key, ".")
		matchers = append(matchers, degreeMatcher{
			pattern: tables.Pattern(key),
			level:   levels[key],
			short:   short,
		})
	}
	return matchers
}

// DegreeLevels returns the levels (1 diploma .. 5 doctorate) of every degree
// keyword mentioned in text, lowest first.
func DegreeLevels(text string, tables *vocabulary.Tables) []int {
	seen := make(map[int]bool)
	for _, m := range degreeMatchers(tables) {
		for _, loc := range m.pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2], loc[3]
			if m.short && !parsing.IsDegreeAbbreviation(text, start, end) {
				continue
			}
			seen[m.level] = true
			break
		}
	}

	levels := make([]int, 0, len(seen))
	for level := range seen {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// RequiredLevel is the lowest degree level the job mentions, or 0.
func RequiredLevel(jobText string, tables *vocabulary.Tables) int {
	levels := DegreeLevels(jobText, tables)
	if len(levels) == 0 {
		return 0
	}
	return levels[0]
}

// AttainedLevel is the highest degree level in the parsed education entries,
// falling back to the whole resume text when none were parsed.
func AttainedLevel(resumeText string, education []types.Education, tables *vocabulary.Tables) int {
	var levels []int
	for _, e := range education {
		levels = append(levels, DegreeLevels(e.Degree, tables)...)
	}
	if len(levels) == 0 {
		levels = DegreeLevels(resumeText, tables)
	}
	best := 0
	for _, l := range levels {
		best = max(best, l)
	}
	return best
}

// MatchEducation scores the attained against the required degree level the
// same way MatchExperience scores years.
func MatchEducation(jobText, resumeText string, education []types.Education, tables *vocabulary.Tables) EducationMatch {
	if tables == nil {
		tables = vocabulary.Default()
	}
	m := EducationMatch{
		Required: RequiredLevel(jobText, tables),
		Attained: AttainedLevel(resumeText, education, tables),
	}
	m.Score = ratioScore(m.Attained, m.Required)
	return m
}
