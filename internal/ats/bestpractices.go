package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexical"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/terms"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/validation"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const strengthThreshold = 80

// quantifiedPattern matches numbers that usually signal a measurable result
var quantifiedPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s*%|[$€£]\s?\d|\b\d+(?:\.\d+)?[xX]\b|\b\d{2,}(?:,\d{3})*\+?\s+(?:users|customers|clients|requests|transactions|employees|engineers|people|projects|servers|services)\b`)

var headingKeys = []string{
	parsing.SectionSummary,
	parsing.SectionExperience,
	parsing.SectionEducation,
	parsing.SectionSkills,
	parsing.SectionCertifications,
	parsing.SectionProjects,
}

type scorer struct {
	text      string
	lower     string
	lines     []string
	resume    types.StructuredResume
	tables    *vocabulary.Tables
	wordCount int
}

// AnalyzeBestPractices scores each resume section against ATS best practices
// and combines the weighted sections into the overall score.
func AnalyzeBestPractices(text string, resume types.StructuredResume, tables *vocabulary.Tables) types.ATSBestPractices {
	if tables == nil {
		tables = vocabulary.Default()
	}
	s := &scorer{
		text:      text,
		lower:     strings.ToLower(text),
		lines:     strings.Split(text, "\n"),
		resume:    resume,
		tables:    tables,
		wordCount: lexical.CountWords(text),
	}

	sections := map[string]types.SectionScore{
		SectionContact:      s.contact(),
		SectionSummary:      s.summary(),
		SectionExperience:   s.experience(),
		SectionEducation:    s.education(),
		SectionSkills:       s.skills(),
		SectionLocation:     s.location(),
		SectionLength:       s.length(),
		SectionKeywords:     s.keywords(),
		SectionAchievements: s.achievements(),
		SectionActionVerbs:  s.actionVerbs(),
		SectionFormat:       s.format(),
	}

	scores := make(map[string]float64, len(sections))
	for name, sec := range sections {
		scores[name] = sec.Score
	}
	overall := round1(WeightedScore(scores))
	sections[SectionOverall] = types.SectionScore{
		Score:           overall,
		Present:         true,
		Issues:          []string{},
		Recommendations: []string{},
	}

	return types.ATSBestPractices{
		OverallScore:     overall,
		Sections:         sections,
		Strengths:        strengths(sections),
		ATSCompatibility: compatibility(sections),
	}
}

func newSection(present bool) types.SectionScore {
	return types.SectionScore{Present: present, Issues: []string{}, Recommendations: []string{}}
}

func (s *scorer) contact() types.SectionScore {
	c := s.resume.ContactInfo
	sec := newSection(c.Email != "" || c.Phone != "" || c.Name != "")
	score := 0.0
	if c.Email != "" {
		score += 40
	} else {
		sec.Issues = append(sec.Issues, "Missing email address")
		sec.Recommendations = append(sec.Recommendations, "Add a professional email address at the top of the resume")
	}
	if c.Phone != "" {
		score += 30
	} else {
		sec.Issues = append(sec.Issues, "Missing phone number")
		sec.Recommendations = append(sec.Recommendations, "Add a phone number recruiters can reach you on")
	}
	if c.Name != "" {
		score += 15
	} else {
		sec.Issues = append(sec.Issues, "Name not detected in the first lines")
		sec.Recommendations = append(sec.Recommendations, "Put your full name on the first line")
	}
	if c.LinkedIn != "" {
		score += 10
	} else {
		sec.Recommendations = append(sec.Recommendations, "Add your LinkedIn profile URL")
	}
	if c.Address != "" {
		score += 5
	}
	sec.Score = score
	return sec
}

func (s *scorer) summary() types.SectionScore {
	summary := s.resume.Summary
	sec := newSection(summary != "")
	if summary == "" {
		sec.Issues = append(sec.Issues, "No professional summary")
		sec.Recommendations = append(sec.Recommendations, "Add a 2-4 sentence summary targeted at the role")
		return sec
	}

	score := 60.0
	switch n := len(summary); {
	case n >= 150 && n <= 600:
		score += 20
	case n < 150:
		sec.Issues = append(sec.Issues, "Summary is very short")
		sec.Recommendations = append(sec.Recommendations, "Expand the summary with your focus area and strongest results")
	default:
		sec.Issues = append(sec.Issues, "Summary is long")
		sec.Recommendations = append(sec.Recommendations, "Trim the summary to under 600 characters")
	}
	if len(terms.ExtractTechnical(summary, s.tables).AllTerms) > 0 || quantifiedPattern.MatchString(summary) {
		score += 20
	} else {
		sec.Recommendations = append(sec.Recommendations, "Mention key technologies or a measurable result in the summary")
	}
	sec.Score = score
	return sec
}

func (s *scorer) experience() types.SectionScore {
	entries := s.resume.WorkExperience
	sec := newSection(len(entries) > 0)
	if len(entries) == 0 {
		sec.Issues = append(sec.Issues, "No work experience detected")
		sec.Recommendations = append(sec.Recommendations, "Add an Experience section with titles, companies and dates")
		return sec
	}

	dated, bullets, quantified := 0, 0, 0
	for _, e := range entries {
		if e.Dates != "" {
			dated++
		}
		bullets += len(e.Description)
		for _, d := range e.Description {
			if quantifiedPattern.MatchString(d) {
				quantified++
			}
		}
	}

	score := 40.0
	if dated == len(entries) {
		score += 20
	} else {
		sec.Issues = append(sec.Issues, fmt.Sprintf("%d of %d positions have no dates", len(entries)-dated, len(entries)))
		sec.Recommendations = append(sec.Recommendations, "Give every position a start and end date")
	}
	if float64(bullets)/float64(len(entries)) >= 2 {
		score += 20
	} else {
		sec.Issues = append(sec.Issues, "Positions have few descriptive bullet points")
		sec.Recommendations = append(sec.Recommendations, "Describe each role with 3-5 bullet points")
	}
	if quantified > 0 {
		score += 20
	} else {
		sec.Recommendations = append(sec.Recommendations, "Quantify results with numbers, percentages or amounts")
	}
	sec.Score = score
	return sec
}

func (s *scorer) education() types.SectionScore {
	entries := s.resume.Education
	sec := newSection(len(entries) > 0)
	if len(entries) == 0 {
		sec.Issues = append(sec.Issues, "No education detected")
		sec.Recommendations = append(sec.Recommendations, "Add an Education section with degree and institution")
		return sec
	}

	score := 60.0
	first := entries[0]
	if first.Degree != "" {
		score += 20
	} else {
		sec.Issues = append(sec.Issues, "Degree not stated")
	}
	if first.Institution != "" {
		score += 20
	} else {
		sec.Issues = append(sec.Issues, "Institution not stated")
	}
	sec.Score = score
	return sec
}

func (s *scorer) skills() types.SectionScore {
	count := len(s.resume.Skills.All())
	hasHeading := parsing.HasSection(s.text, parsing.SectionSkills)
	sec := newSection(count > 0 || hasHeading)

	switch {
	case count >= 10:
		sec.Score = 100
	case count >= 5:
		sec.Score = 80
	case count >= 1:
		sec.Score = 50
	}
	if !hasHeading {
		sec.Score = math.Max(0, sec.Score-20)
		sec.Issues = append(sec.Issues, "No dedicated Skills section")
		sec.Recommendations = append(sec.Recommendations, "Add a Skills section listing tools and technologies")
	}
	if count < 5 {
		sec.Issues = append(sec.Issues, fmt.Sprintf("Only %d recognizable skills", count))
		sec.Recommendations = append(sec.Recommendations, "List more of the specific skills the job asks for")
	}
	return sec
}

func (s *scorer) location() types.SectionScore {
	sec := newSection(s.resume.ContactInfo.Address != "")
	if sec.Present {
		sec.Score = 100
		return sec
	}
	sec.Issues = append(sec.Issues, "No location found")
	sec.Recommendations = append(sec.Recommendations, "Add your city and state so location filters include you")
	return sec
}

func (s *scorer) length() types.SectionScore {
	sec := newSection(true)
	words := s.wordCount
	switch {
	case words >= 400 && words <= 800:
		sec.Score = 100
	case (words >= 300 && words < 400) || (words > 800 && words <= 1000):
		sec.Score = 75
	case (words >= 200 && words < 300) || (words > 1000 && words <= 1200):
		sec.Score = 50
	default:
		sec.Score = 25
	}
	if words < 300 {
		sec.Issues = append(sec.Issues, fmt.Sprintf("Resume is short (%d words)", words))
		sec.Recommendations = append(sec.Recommendations, "Add detail about projects and results")
	} else if words > 1000 {
		sec.Issues = append(sec.Issues, fmt.Sprintf("Resume is long (%d words)", words))
		sec.Recommendations = append(sec.Recommendations, "Cut older or less relevant content to stay within two pages")
	}
	return sec
}

func (s *scorer) keywords() types.SectionScore {
	count := len(terms.ExtractTechnical(s.text, s.tables).AllTerms)
	sec := newSection(count > 0)
	switch {
	case count >= 15:
		sec.Score = 100
	case count >= 10:
		sec.Score = 80
	case count >= 5:
		sec.Score = 60
	case count >= 1:
		sec.Score = 40
	}
	if count < 10 {
		sec.Issues = append(sec.Issues, fmt.Sprintf("Only %d technical keywords", count))
		sec.Recommendations = append(sec.Recommendations, "Name the specific technologies you used in each role")
	}
	return sec
}

func (s *scorer) achievements() types.SectionScore {
	count := CountQuantified(s.text)
	sec := newSection(count > 0)
	switch {
	case count >= 5:
		sec.Score = 100
	case count >= 3:
		sec.Score = 75
	case count >= 1:
		sec.Score = 50
	}
	if count < 3 {
		sec.Issues = append(sec.Issues, fmt.Sprintf("Only %d quantified achievements", count))
		sec.Recommendations = append(sec.Recommendations, "Add numbers: percentages, revenue, users, time saved")
	}
	return sec
}

func (s *scorer) actionVerbs() types.SectionScore {
	verbs := validation.CountActionVerbs(s.lower, s.tables)
	weak := validation.CountWeakPhrases(s.lower, s.tables)
	sec := newSection(verbs > 0)

	switch {
	case verbs >= 8:
		sec.Score = 100
	case verbs >= 5:
		sec.Score = 80
	case verbs >= 2:
		sec.Score = 50
	default:
		sec.Score = 20
	}
	sec.Score = math.Max(0, sec.Score-float64(10*weak))

	if verbs < 5 {
		sec.Issues = append(sec.Issues, fmt.Sprintf("Only %d strong action verbs", verbs))
		sec.Recommendations = append(sec.Recommendations, "Start bullets with verbs such as led, built, reduced")
	}
	if weak > 0 {
		sec.Issues = append(sec.Issues, fmt.Sprintf("%d weak phrases", weak))
		sec.Recommendations = append(sec.Recommendations, "Replace phrases like \"responsible for\" with what you achieved")
	}
	return sec
}

func (s *scorer) format() types.SectionScore {
	sec := newSection(true)
	score := 100.0

	bullets := 0
	for _, line := range s.lines {
		if parsing.IsBullet(line) {
			bullets++
		}
	}
	if bullets == 0 {
		score -= 30
		sec.Issues = append(sec.Issues, "No bullet points")
		sec.Recommendations = append(sec.Recommendations, "Use simple bullet points for accomplishments")
	}

	headings := 0
	for _, key := range headingKeys {
		if parsing.HasSection(s.text, key) {
			headings++
		}
	}
	if headings < 3 {
		score -= 30
		sec.Issues = append(sec.Issues, fmt.Sprintf("Only %d standard section headings", headings))
		sec.Recommendations = append(sec.Recommendations, "Use standard headings: Summary, Experience, Education, Skills")
	}

	if strings.Count(s.text, "\t") > 10 {
		score -= 20
		sec.Issues = append(sec.Issues, "Tab-aligned columns detected")
		sec.Recommendations = append(sec.Recommendations, "Replace tables and columns with a single-column layout")
	}
	sec.Score = math.Max(0, score)
	return sec
}

// CountQuantified counts lines that contain a measurable result.
func CountQuantified(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if quantifiedPattern.MatchString(line) {
			count++
		}
	}
	return count
}

var sectionLabels = map[string]string{
	SectionContact:      "Complete contact information",
	SectionSummary:      "Targeted professional summary",
	SectionExperience:   "Well-structured work experience",
	SectionEducation:    "Clear education details",
	SectionSkills:       "Comprehensive skills section",
	SectionLocation:     "Location included",
	SectionLength:       "Appropriate length",
	SectionKeywords:     "Rich technical keywords",
	SectionAchievements: "Quantified achievements",
	SectionActionVerbs:  "Strong action verbs",
	SectionFormat:       "ATS-friendly format",
}

var strengthOrder = []string{
	SectionContact, SectionSummary, SectionExperience, SectionEducation, SectionSkills,
	SectionLocation, SectionLength, SectionKeywords, SectionAchievements, SectionActionVerbs, SectionFormat,
}

func strengths(sections map[string]types.SectionScore) []string {
	out := []string{}
	for _, name := range strengthOrder {
		if sec, ok := sections[name]; ok && sec.Score >= strengthThreshold {
			out = append(out, sectionLabels[name])
		}
	}
	return out
}

// compatibility rates machine readability from the format, keyword and
// contact sections
func compatibility(sections map[string]types.SectionScore) types.ATSCompatibility {
	parts := []string{SectionFormat, SectionKeywords, SectionContact}
	total := 0.0
	factors := []string{}
	for _, name := range parts {
		sec := sections[name]
		total += sec.Score
		if sec.Score >= strengthThreshold {
			factors = append(factors, sectionLabels[name])
		} else {
			factors = append(factors, "Improve: "+sectionLabels[name])
		}
	}
	return types.ATSCompatibility{Score: round1(total / float64(len(parts))), Factors: factors}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
