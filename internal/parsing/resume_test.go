package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const sampleResume = `Jane Doe
San Francisco, CA 94105
jane.doe@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe

PROFESSIONAL SUMMARY
Backend engineer with 6 years of experience building payment platforms in Go and Python.

EXPERIENCE
Senior Software Engineer, Acme Payments
Jan 2020 - Present
- Led migration of billing services to Kubernetes, reducing costs by 30%
- Built fraud scoring APIs in Go
Software Engineer | Initech
2017 - 2019
- Developed Django services backed by PostgreSQL

EDUCATION
Bachelor of Science in Computer Science, 2017
University of Texas
GPA: 3.8

SKILLS
Go, Python, Docker, Kubernetes, PostgreSQL, communication, leadership, English, Spanish

CERTIFICATIONS
AWS Certified Solutions Architect
Certified Kubernetes Administrator (CKA)

PROJECTS
Ledger: open source double-entry accounting library
- Written in Go with property tests
Dashboards - Grafana boards for payment metrics
`

func TestParse_SampleResume(t *testing.T) {
	r := Parse(sampleResume, vocabulary.Default())

	assert.Equal(t, "Jane Doe", r.ContactInfo.Name)
	assert.Equal(t, "jane.doe@example.com", r.ContactInfo.Email)
	assert.Equal(t, "(555) 123-4567", r.ContactInfo.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", r.ContactInfo.LinkedIn)
	assert.Equal(t, "github.com/janedoe", r.ContactInfo.GitHub)
	assert.Equal(t, "San Francisco, CA 94105", r.ContactInfo.Address)

	assert.Equal(t, "Backend engineer with 6 years of experience building payment platforms in Go and Python.", r.Summary)

	require.Len(t, r.WorkExperience, 2)
	assert.Equal(t, "Senior Software Engineer", r.WorkExperience[0].Title)
	assert.Equal(t, "Acme Payments", r.WorkExperience[0].Company)
	assert.Equal(t, "Jan 2020 - Present", r.WorkExperience[0].Dates)
	assert.Equal(t, []string{
		"Led migration of billing services to Kubernetes, reducing costs by 30%",
		"Built fraud scoring APIs in Go",
	}, r.WorkExperience[0].Description)
	assert.Equal(t, "Software Engineer", r.WorkExperience[1].Title)
	assert.Equal(t, "Initech", r.WorkExperience[1].Company)
	assert.Equal(t, "2017 - 2019", r.WorkExperience[1].Dates)
	assert.Equal(t, []string{"Developed Django services backed by PostgreSQL"}, r.WorkExperience[1].Description)

	require.Len(t, r.Education, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science", r.Education[0].Degree)
	assert.Equal(t, "University of Texas", r.Education[0].Institution)
	assert.Equal(t, "2017", r.Education[0].Dates)
	assert.Equal(t, "3.8", r.Education[0].GPA)

	assert.Contains(t, r.Skills.Technical, "python")
	assert.Contains(t, r.Skills.Soft, "communication")
	assert.Contains(t, r.Skills.Tools, "docker")
	assert.Equal(t, []string{"english", "spanish"}, r.Skills.Languages)

	assert.Equal(t, []string{"AWS Certified Solutions Architect", "Certified Kubernetes Administrator (CKA)"}, r.Certifications)

	require.Len(t, r.Projects, 2)
	assert.Equal(t, "Ledger", r.Projects[0].Name)
	assert.Equal(t, "open source double-entry accounting library Written in Go with property tests", r.Projects[0].Description)
	assert.Equal(t, "Dashboards", r.Projects[1].Name)
}

func TestParse_EmptyText(t *testing.T) {
	r := Parse("", nil)

	assert.Empty(t, r.ContactInfo.Name)
	assert.Empty(t, r.ContactInfo.Email)
	assert.Empty(t, r.Summary)
	assert.Empty(t, r.WorkExperience)
	assert.Empty(t, r.Education)
	assert.Empty(t, r.Skills.All())
	assert.Empty(t, r.Certifications)
	assert.Empty(t, r.Projects)
}

func TestParse_ShortSummaryIgnored(t *testing.T) {
	r := Parse("SUMMARY\nGo developer.\n\nSKILLS\nGo", nil)
	assert.Empty(t, r.Summary)
}

func TestParse_Deterministic(t *testing.T) {
	first := Parse(sampleResume, nil)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Parse(sampleResume, nil))
	}
}

func TestParseCertifications_WithoutSection(t *testing.T) {
	text := "John Smith\nExperience\nEngineer at Foo 2019 - 2020\nPMP, 2021\nSix Sigma Green Belt"
	r := Parse(text, nil)
	assert.Equal(t, []string{"PMP, 2021", "Six Sigma Green Belt"}, r.Certifications)
}

func TestParseSummary_FallsBackToOpeningParagraph(t *testing.T) {
	text := "Maria Lopez\nmaria@example.com | 555-123-4567\nData engineer focused on streaming pipelines and\nwarehouse modeling for retail analytics teams.\n\nEXPERIENCE\nData Engineer, Shopco\n2019 - Present"
	r := Parse(text, nil)

	assert.Equal(t, "Maria Lopez Data engineer focused on streaming pipelines and warehouse modeling for retail analytics teams.", r.Summary)
}

func TestParseSummary_HeadingTakesAtMostThreeLines(t *testing.T) {
	text := "Sam Lee\nSUMMARY\nPlatform engineer with a decade of experience.\nRuns reliable Kubernetes fleets at scale.\nShort\nMentors engineers across several product teams.\nSpeaks at conferences about incident response.\n\nSKILLS\nGo"
	r := Parse(text, nil)

	assert.Equal(t, "Platform engineer with a decade of experience. Runs reliable Kubernetes fleets at scale. Mentors engineers across several product teams.", r.Summary)
}
