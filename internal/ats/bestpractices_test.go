package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const strongResume = `Jane Doe
Austin, TX 78701
jane.doe@example.com | (555) 123-4567 | linkedin.com/in/janedoe

SUMMARY
Backend engineer with 8 years of experience designing payment systems in Go and PostgreSQL, leading teams that cut processing latency by 40% while scaling to 2 million users.

EXPERIENCE
Staff Engineer, Acme Payments
2019 - Present
- Led a team of 6 engineers building a Kubernetes-based ledger, reducing costs by 30%
- Built fraud detection APIs in Go serving 1,000,000 users
- Designed event pipelines on Kafka that improved throughput 3x
Software Engineer, Initech
2015 - 2019
- Developed Django services on AWS handling $2M in monthly transactions
- Automated deployments with Terraform and Jenkins, saving 10 hours per week
- Mentored 4 junior engineers and launched an internal Python training

EDUCATION
Bachelor of Science in Computer Science
University of Texas, 2015

SKILLS
Go, Python, Java, PostgreSQL, Redis, Kafka, Docker, Kubernetes, AWS, Terraform, Jenkins, Git, Linux, communication, leadership
`

func analyze(text string) (result map[string]float64, overall float64) {
	tables := vocabulary.Default()
	bp := AnalyzeBestPractices(text, parsing.Parse(text, tables), tables)
	result = make(map[string]float64, len(bp.Sections))
	for name, sec := range bp.Sections {
		result[name] = sec.Score
	}
	return result, bp.OverallScore
}

func TestAnalyzeBestPractices_StrongResume(t *testing.T) {
	tables := vocabulary.Default()
	bp := AnalyzeBestPractices(strongResume, parsing.Parse(strongResume, tables), tables)

	for _, name := range []string{
		SectionContact, SectionSummary, SectionExperience, SectionEducation, SectionSkills,
		SectionLocation, SectionLength, SectionKeywords, SectionAchievements, SectionActionVerbs,
		SectionFormat, SectionOverall,
	} {
		require.Contains(t, bp.Sections, name)
	}
	assert.Equal(t, 100.0, bp.Sections[SectionContact].Score)
	assert.Equal(t, 100.0, bp.Sections[SectionExperience].Score)
	assert.Equal(t, 100.0, bp.Sections[SectionEducation].Score)
	assert.Equal(t, 100.0, bp.Sections[SectionLocation].Score)
	assert.Equal(t, 100.0, bp.Sections[SectionFormat].Score)
	assert.Equal(t, bp.OverallScore, bp.Sections[SectionOverall].Score)
	assert.Greater(t, bp.OverallScore, 80.0)
	assert.Contains(t, bp.Strengths, "Complete contact information")
	assert.Contains(t, bp.Strengths, "Quantified achievements")
}

func TestAnalyzeBestPractices_NoEmailNoPhone(t *testing.T) {
	text := strings.Replace(strongResume, "jane.doe@example.com | (555) 123-4567 | ", "", 1)
	tables := vocabulary.Default()
	bp := AnalyzeBestPractices(text, parsing.Parse(text, tables), tables)

	contact := bp.Sections[SectionContact]
	assert.LessOrEqual(t, contact.Score, 30.0)
	assert.Contains(t, contact.Issues, "Missing email address")
	assert.Contains(t, contact.Issues, "Missing phone number")
}

func TestAnalyzeBestPractices_MissingLocation(t *testing.T) {
	text := strings.Replace(strongResume, "Austin, TX 78701\n", "", 1)
	scores, _ := analyze(text)

	assert.Equal(t, 0.0, scores[SectionLocation])
}

func TestAnalyzeBestPractices_EmptyText(t *testing.T) {
	tables := vocabulary.Default()
	bp := AnalyzeBestPractices("", parsing.Parse("", tables), tables)

	assert.False(t, bp.Sections[SectionExperience].Present)
	assert.Equal(t, 0.0, bp.Sections[SectionContact].Score)
	assert.GreaterOrEqual(t, bp.OverallScore, 0.0)
	assert.LessOrEqual(t, bp.OverallScore, 100.0)
}

func TestAnalyzeBestPractices_WeakPhrasesLowerActionVerbs(t *testing.T) {
	weak := strongResume + "- Responsible for on-call\n- Helped with audits\n"
	strong, _ := analyze(strongResume)
	weaker, _ := analyze(weak)

	assert.Less(t, weaker[SectionActionVerbs], strong[SectionActionVerbs])
}

func TestAnalyzeBestPractices_Deterministic(t *testing.T) {
	tables := vocabulary.Default()
	resume := parsing.Parse(strongResume, tables)
	first := AnalyzeBestPractices(strongResume, resume, tables)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, AnalyzeBestPractices(strongResume, resume, tables))
	}
}

func TestCountQuantified(t *testing.T) {
	text := "Cut costs by 30%\nSaved $2M\nServed 500 users\nImproved speed 3x\nWrote docs"
	assert.Equal(t, 4, CountQuantified(text))
	assert.Equal(t, 0, CountQuantified(""))
}
