package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const resumeHeader = `Jane Doe
jane.doe@example.com | (555) 123-4567

EXPERIENCE
Senior Engineer, Acme
2019 - Present
`

const resumeFooter = `
EDUCATION
Bachelor of Science in Computer Science, University of Texas

SKILLS
Go, Python, Kubernetes, PostgreSQL
`

// buildResume pads a well-formed resume with distinct bullet lines until it
// holds roughly the requested number of words.
func buildResume(words int) string {
	var b strings.Builder
	b.WriteString(resumeHeader)
	verbs := []string{"Built", "Led", "Designed", "Improved", "Reduced", "Automated", "Delivered"}
	current := len(strings.Fields(resumeHeader)) + len(strings.Fields(resumeFooter))
	for i := 0; current < words; i++ {
		line := fmt.Sprintf("- %s service %d for the payments platform team", verbs[i%len(verbs)], i)
		current += len(strings.Fields(line))
		b.WriteString(line + "\n")
	}
	b.WriteString(resumeFooter)
	return b.String()
}

func issueChecks(result types.FormattingResult) []string {
	checks := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		checks = append(checks, issue.Check)
	}
	return checks
}

func TestAnalyzeFormatting_WellFormedResume(t *testing.T) {
	result := AnalyzeFormatting(nil, buildResume(500), vocabulary.Default())

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 2, result.PageCount)
	assert.Equal(t, PageSourceEstimated, result.PageCountSource)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Contains(t, result.Strengths, "Experience section found")
	assert.Contains(t, result.Strengths, "Email address found")
}

func TestAnalyzeFormatting_TooLongResume(t *testing.T) {
	short := AnalyzeFormatting(nil, buildResume(500), nil)
	long := AnalyzeFormatting(nil, buildResume(3000), nil)

	require.GreaterOrEqual(t, long.PageCount, 10)
	assert.Contains(t, issueChecks(long), CheckPageCount)
	assert.Condition(t, func() bool {
		for _, w := range long.Warnings {
			if strings.HasPrefix(w, "Resume too long") {
				return true
			}
		}
		return false
	}, "expected a resume too long warning, got %v", long.Warnings)
	assert.Less(t, long.Score, short.Score)
}

func TestAnalyzeFormatting_MissingSectionsAndContact(t *testing.T) {
	text := "Some person\nI write code and like computers.\nWorked on many things over the years."
	result := AnalyzeFormatting(nil, text, nil)

	checks := issueChecks(result)
	assert.Contains(t, checks, CheckSections)
	assert.Contains(t, checks, CheckContact)
	assert.Contains(t, checks, CheckWordCount)
	assert.Equal(t, 0.0, result.Score)
}

func TestAnalyzeFormatting_EmailWeighsMoreThanPhone(t *testing.T) {
	base := buildResume(500)
	noPhone := AnalyzeFormatting(nil, strings.Replace(base, " | (555) 123-4567", "", 1), nil)
	noEmail := AnalyzeFormatting(nil, strings.Replace(base, "jane.doe@example.com | ", "", 1), nil)

	assert.Greater(t, noPhone.QualityPoints-noPhone.PenaltyPoints, noEmail.QualityPoints-noEmail.PenaltyPoints)
}

func TestAnalyzeFormatting_LayoutRisks(t *testing.T) {
	text := buildResume(500)
	text += strings.Repeat("Name\tRole\tYears\n", 6)
	text += "Page 1 of 2\nPage 1 of 2\nPage 1 of 2\n[image]\nDesigned in Comic Sans\n"

	result := AnalyzeFormatting(nil, text, nil)

	checks := issueChecks(result)
	assert.Contains(t, checks, CheckTables)
	assert.Contains(t, checks, CheckHeaderFooter)
	assert.Contains(t, checks, CheckImages)
	assert.Contains(t, checks, CheckFonts)
}

func TestAnalyzeFormatting_ImageMarkerInBytes(t *testing.T) {
	data := []byte("%PDF-1.4\n1 0 obj << /Type /XObject /Subtype /Image >> endobj")
	result := AnalyzeFormatting(data, buildResume(500), nil)

	assert.Contains(t, issueChecks(result), CheckImages)
	assert.Equal(t, PageSourceEstimated, result.PageCountSource)
}

func TestAnalyzeFormatting_SpecialCharacters(t *testing.T) {
	text := buildResume(500) + strings.Repeat("★✦☎✉ ", 200)
	result := AnalyzeFormatting(nil, text, nil)

	assert.Contains(t, issueChecks(result), CheckSpecialCharacters)
}

func TestAnalyzeFormatting_AccentedNamesAreFine(t *testing.T) {
	text := strings.Replace(buildResume(500), "Jane Doe", "José Núñez Müller", 1)
	result := AnalyzeFormatting(nil, text, nil)

	assert.NotContains(t, issueChecks(result), CheckSpecialCharacters)
}

func TestAnalyzeFormatting_WeakPhrases(t *testing.T) {
	text := buildResume(500) + "- Responsible for deploys\n- Helped with support\n- Assisted the team\n"
	result := AnalyzeFormatting(nil, text, nil)

	assert.Contains(t, issueChecks(result), CheckWeakPhrases)
}

func TestAnalyzeFormatting_ScoreBounds(t *testing.T) {
	inputs := []string{"", "x", buildResume(100), buildResume(5000), strings.Repeat("\t", 500)}
	for _, in := range inputs {
		result := AnalyzeFormatting([]byte(in), in, nil)
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 100.0)
	}
}

func TestAnalyzeFormatting_Deterministic(t *testing.T) {
	text := buildResume(800)
	first := AnalyzeFormatting(nil, text, nil)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, AnalyzeFormatting(nil, text, nil))
	}
}

func TestCountActionVerbs(t *testing.T) {
	tables := vocabulary.Default()

	assert.Equal(t, 3, CountActionVerbs("led a team, built apis and built tools, reduced costs", tables))
	assert.Equal(t, 0, CountActionVerbs("", tables))
}
