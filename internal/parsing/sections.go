package parsing

import (
	"regexp"
	"strings"
)

// Section keys
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionOther          = "other"
)

// sectionHeadings maps normalized heading text to a section key
var sectionHeadings = map[string]string{
	"summary":                     SectionSummary,
	"professional summary":        SectionSummary,
	"executive summary":           SectionSummary,
	"profile":                     SectionSummary,
	"professional profile":        SectionSummary,
	"objective":                   SectionSummary,
	"career objective":            SectionSummary,
	"about me":                    SectionSummary,
	"experience":                  SectionExperience,
	"work experience":             SectionExperience,
	"professional experience":     SectionExperience,
	"relevant experience":         SectionExperience,
	"employment":                  SectionExperience,
	"employment history":          SectionExperience,
	"work history":                SectionExperience,
	"career history":              SectionExperience,
	"education":                   SectionEducation,
	"academic background":         SectionEducation,
	"education and training":      SectionEducation,
	"academic qualifications":     SectionEducation,
	"skills":                      SectionSkills,
	"technical skills":            SectionSkills,
	"core competencies":           SectionSkills,
	"key skills":                  SectionSkills,
	"competencies":                SectionSkills,
	"skills and abilities":        SectionSkills,
	"technologies":                SectionSkills,
	"certifications":              SectionCertifications,
	"certificates":                SectionCertifications,
	"licenses and certifications": SectionCertifications,
	"certifications and licenses": SectionCertifications,
	"projects":                    SectionProjects,
	"personal projects":           SectionProjects,
	"key projects":                SectionProjects,
	"selected projects":           SectionProjects,
	"awards":                      SectionOther,
	"honors":                      SectionOther,
	"achievements":                SectionOther,
	"publications":                SectionOther,
	"volunteer":                   SectionOther,
	"volunteer experience":        SectionOther,
	"interests":                   SectionOther,
	"languages":                   SectionOther,
	"references":                  SectionOther,
}

var headingNoise = regexp.MustCompile(`^[#*\s]+|[:*\s]+$`)

// section is a half-open range of line indices following a heading
type section struct {
	heading int
	start   int
	end     int
}

// headingKey returns the section key a line introduces, or "" if it is not a heading.
func headingKey(line string) string {
	cleaned := strings.ToLower(headingNoise.ReplaceAllString(strings.TrimSpace(line), ""))
	cleaned = strings.ReplaceAll(cleaned, "&", "and")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" || len(cleaned) > 40 {
		return ""
	}
	return sectionHeadings[cleaned]
}

// splitSections locates the first occurrence of every known section. Each
// section runs until the next heading of any kind.
func splitSections(lines []string) map[string]section {
	headings := make([]int, 0)
	keys := make([]string, 0)
	for i, line := range lines {
		if key := headingKey(line); key != "" {
			headings = append(headings, i)
			keys = append(keys, key)
		}
	}

	sections := make(map[string]section)
	for n, idx := range headings {
		end := len(lines)
		if n+1 < len(headings) {
			end = headings[n+1]
		}
		if _, exists := sections[keys[n]]; exists {
			continue
		}
		sections[keys[n]] = section{heading: idx, start: idx + 1, end: end}
	}
	return sections
}

// HasSection reports whether text contains a heading for the given section key.
func HasSection(text, key string) bool {
	for _, line := range strings.Split(text, "\n") {
		if headingKey(line) == key {
			return true
		}
	}
	return false
}

var bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•·▪◦‣○●■□➢➤►✓✔]|\d+[.)])\s+`)

// IsBullet reports whether a line starts with a bullet marker.
func IsBullet(line string) bool {
	return bulletPrefix.MatchString(line)
}

// stripBullet removes a leading bullet marker and surrounding space.
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
}
