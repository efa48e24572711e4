// Package parsing turns plain resume text into a best-effort StructuredResume.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const (
	summaryHeadingLines  = 10
	summaryFallbackLines = 5
	maxSummaryLines      = 3
	minSummaryLineLength = 20
	minSummaryLength     = 50
	maxSummaryLength     = 500
	maxCertifications    = 10
	maxProjects          = 10
	maxCertificationLine = 120
)

var certificationHint = regexp.MustCompile(`(?i)\b(?:certified|certification|certificate)\b`)

// Parse extracts a StructuredResume from resume text. It never fails: fields
// that cannot be found are left empty.
func Parse(text string, tables *vocabulary.Tables) types.StructuredResume {
	if tables == nil {
		tables = vocabulary.Default()
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	sections := splitSections(lines)

	return types.StructuredResume{
		ContactInfo:    parseContact(text, lines),
		Summary:        parseSummary(lines, sections),
		WorkExperience: parseWorkExperience(lines, sections),
		Education:      parseEducation(lines, sections),
		Skills:         parseSkills(text, tables),
		Certifications: parseCertifications(lines, sections, tables),
		Projects:       parseProjects(lines, sections),
	}
}

// parseSummary takes up to three substantial lines after a summary heading
// near the top. Without such a heading the opening lines are used when their
// combined length looks like a paragraph rather than a header block.
// Contact lines and anything after the first heading are skipped.
func parseSummary(lines []string, sections map[string]section) string {
	if sec, ok := sections[SectionSummary]; ok && sec.heading < summaryHeadingLines {
		parts := make([]string, 0, maxSummaryLines)
		for _, line := range lines[sec.start:sec.end] {
			trimmed := stripBullet(line)
			if len(trimmed) < minSummaryLineLength {
				continue
			}
			parts = append(parts, trimmed)
			if len(parts) == maxSummaryLines {
				break
			}
		}
		return strings.Join(parts, " ")
	}
	if _, ok := sections[SectionSummary]; ok {
		return ""
	}

	parts := make([]string, 0, summaryFallbackLines)
	for i := 0; i < len(lines) && i < summaryFallbackLines; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if headingKey(trimmed) != "" {
			break
		}
		if trimmed == "" || looksLikeContactLine(trimmed) {
			continue
		}
		parts = append(parts, trimmed)
	}
	summary := strings.Join(parts, " ")
	if len(summary) < minSummaryLength || len(summary) > maxSummaryLength {
		return ""
	}
	return summary
}

func looksLikeContactLine(line string) bool {
	if emailPattern.MatchString(line) || linkedInPattern.MatchString(line) || gitHubPattern.MatchString(line) {
		return true
	}
	for _, pattern := range phonePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return cityStatePattern.MatchString(line) && len(line) < 60
}

// parseSkills checks the fixed skill lists against the lowercased text by
// substring containment.
func parseSkills(text string, tables *vocabulary.Tables) types.ResumeSkills {
	lower := strings.ToLower(text)
	lists := tables.ResumeSkillLists()
	return types.ResumeSkills{
		Technical: containedIn(lower, lists.Technical),
		Soft:      containedIn(lower, lists.Soft),
		Tools:     containedIn(lower, lists.Tools),
		Languages: containedIn(lower, lists.Languages),
	}
}

func containedIn(lower string, list []string) []string {
	found := make([]string, 0)
	for _, skill := range list {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// parseCertifications reads the certifications section, or failing that any
// short line that names a certification.
func parseCertifications(lines []string, sections map[string]section, tables *vocabulary.Tables) []string {
	certs := make([]string, 0)
	if sec, ok := sections[SectionCertifications]; ok {
		for _, line := range lines[sec.start:sec.end] {
			if c := stripBullet(line); c != "" {
				certs = append(certs, c)
			}
		}
	} else {
		for _, line := range lines {
			c := stripBullet(line)
			if c == "" || len(c) > maxCertificationLine || headingKey(c) != "" {
				continue
			}
			if certificationHint.MatchString(c) || mentionsCertification(c, tables) {
				certs = append(certs, c)
			}
		}
	}
	if len(certs) > maxCertifications {
		certs = certs[:maxCertifications]
	}
	return certs
}

func mentionsCertification(line string, tables *vocabulary.Tables) bool {
	for _, keyword := range tables.Certifications() {
		if tables.ContainsTerm(line, keyword) {
			return true
		}
	}
	return false
}

// parseProjects reads the projects section. A non-bullet line starts a project;
// "Name: description" and "Name - description" split on the separator, and
// bullet lines extend the current description.
func parseProjects(lines []string, sections map[string]section) []types.Project {
	sec, ok := sections[SectionProjects]
	if !ok {
		return []types.Project{}
	}

	projects := make([]types.Project, 0)
	for _, line := range lines[sec.start:sec.end] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if IsBullet(line) && len(projects) > 0 {
			current := &projects[len(projects)-1]
			current.Description = strings.TrimSpace(current.Description + " " + stripBullet(line))
			continue
		}
		name, description := splitProject(stripBullet(trimmed))
		projects = append(projects, types.Project{Name: name, Description: description})
	}
	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}
	return projects
}

func splitProject(line string) (string, string) {
	for _, sep := range []string{": ", " - ", " – ", " | "} {
		if idx := strings.Index(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return line, ""
}
