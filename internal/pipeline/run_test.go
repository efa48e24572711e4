package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

const backendJob = `Backend Engineer
We are looking for a backend engineer with 3+ years of experience building
Go and Python services. You will run workloads on Kubernetes and Docker and
design schemas in PostgreSQL. A Bachelor's degree in Computer Science is required.`

const shortResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

EXPERIENCE
Senior Engineer, Acme
2019 - Present
- Built Go services for the payments team
- Led the Kubernetes migration
- Reduced infrastructure costs by 30%

EDUCATION
Bachelor of Science in Computer Science, University of Texas

SKILLS
{{skills}}
`

func resumeWithSkills(skillLines ...string) string {
	return strings.Replace(shortResume, "{{skills}}", strings.Join(skillLines, "\n"), 1)
}

func TestResumeWithSkills_KeepsFixtureText(t *testing.T) {
	resume := resumeWithSkills("Go, Python", "Docker")

	assert.Contains(t, resume, "Reduced infrastructure costs by 30%\n")
	assert.Contains(t, resume, "SKILLS\nGo, Python\nDocker\n")
	assert.NotContains(t, resume, "%!")
}

func buildLongResume(words int) string {
	var b strings.Builder
	b.WriteString("Jane Doe\njane.doe@example.com | (555) 123-4567\n\nEXPERIENCE\nSenior Engineer, Acme\n2019 - Present\n")
	footer := "\nEDUCATION\nBachelor of Science in Computer Science, University of Texas\n\nSKILLS\nGo, Python, Kubernetes, PostgreSQL\n"
	verbs := []string{"Built", "Led", "Designed", "Improved", "Reduced", "Automated", "Delivered"}
	current := len(strings.Fields(b.String())) + len(strings.Fields(footer))
	for i := 0; current < words; i++ {
		line := fmt.Sprintf("- %s service %d for the payments platform team", verbs[i%len(verbs)], i)
		current += len(strings.Fields(line))
		b.WriteString(line + "\n")
	}
	b.WriteString(footer)
	return b.String()
}

func findRecommendation(recs []types.Recommendation, title string) (types.Recommendation, bool) {
	for _, r := range recs {
		if r.Title == title {
			return r, true
		}
	}
	return types.Recommendation{}, false
}

func TestAnalyzeText_ExperienceAndCategories(t *testing.T) {
	job := "We are hiring a frontend engineer with 3+ years JavaScript and React experience."
	resume := "John Smith\nSoftware engineer with 5 years of experience with JavaScript, React, and Node.js."

	result, err := NewAnalyzer(Options{}).AnalyzeText(context.Background(), resume, job)
	require.NoError(t, err)

	langs := result.TechnicalMatch.Categories[types.CategoryProgrammingLanguages]
	assert.Equal(t, 100.0, langs.MatchRate)
	assert.Contains(t, langs.Matched, types.TermMatch{RequiredTerm: "javascript", FoundTerm: "javascript", MatchType: types.MatchExact, Confidence: 1})
	assert.Contains(t, result.TechnicalMatch.Categories[types.CategoryFrameworks].Matched,
		types.TermMatch{RequiredTerm: "react", FoundTerm: "react", MatchType: types.MatchExact, Confidence: 1})
	assert.Equal(t, 1.0, result.ExperienceMatch)
	assert.Equal(t, 3, result.Breakdown.ExperienceYears.Required)
	assert.Equal(t, 5, result.Breakdown.ExperienceYears.Stated)
}

func TestAnalyzeText_MissingContact(t *testing.T) {
	resume := strings.Replace(resumeWithSkills("Go, Python"), "jane.doe@example.com | (555) 123-4567\n", "", 1)

	result, err := NewAnalyzer(Options{}).AnalyzeText(context.Background(), resume, backendJob)
	require.NoError(t, err)

	assert.LessOrEqual(t, result.ATSBestPractices.Sections[ats.SectionContact].Score, 30.0)
	rec, ok := findRecommendation(result.Recommendations, "Complete Contact Information")
	require.True(t, ok)
	assert.Contains(t, []string{types.PriorityCritical, types.PriorityHigh}, rec.Priority)
}

func TestAnalyzeText_JavaIsNotJavaScript(t *testing.T) {
	job := "Required: 4 years of Java development on large distributed systems."
	resume := "Jane Doe\nFrontend developer writing JavaScript every day."

	result, err := NewAnalyzer(Options{}).AnalyzeText(context.Background(), resume, job)
	require.NoError(t, err)

	assert.Contains(t, result.TechnicalMatch.MissingRequirements.Critical,
		types.MissingRequirement{Type: "programmingLanguage", Term: "Java"})
}

func TestAnalyzeText_IdenticalTexts(t *testing.T) {
	text := "Senior Go engineer with 5 years of experience building Python and Go services on AWS " +
		"with Docker and Kubernetes. Bachelor's degree in Computer Science. Migrated billing to PostgreSQL " +
		"and reduced latency by 40%."

	result, err := NewAnalyzer(Options{}).AnalyzeText(context.Background(), text, text)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Similarity.Combined, 1e-9)
	assert.InDelta(t, 1.0, result.Similarity.Cosine, 1e-9)
	assert.InDelta(t, 1.0, result.Similarity.Jaccard, 1e-9)
	assert.GreaterOrEqual(t, result.JDMatchScore, 90.0)
	assert.LessOrEqual(t, result.JDMatchScore, 100.0)
}

func TestAnalyzeText_LongResumePenalized(t *testing.T) {
	analyzer := NewAnalyzer(Options{})
	long, err := analyzer.AnalyzeText(context.Background(), buildLongResume(3000), backendJob)
	require.NoError(t, err)
	normal, err := analyzer.AnalyzeText(context.Background(), buildLongResume(500), backendJob)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, long.PageCount, 11)
	assert.Less(t, long.ATSReadabilityScore, normal.ATSReadabilityScore)

	found := false
	for _, w := range long.Formatting.Warnings {
		if strings.Contains(w, "Resume too long") {
			found = true
		}
	}
	assert.True(t, found, "expected a resume too long warning, got %v", long.Formatting.Warnings)
	_, ok := findRecommendation(long.Recommendations, "Shorten Your Resume")
	assert.True(t, ok)
}

func TestAnalyzeText_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer(Options{})
	resume := resumeWithSkills("Go, Python, Kubernetes, PostgreSQL")

	first, err := analyzer.AnalyzeText(context.Background(), resume, backendJob)
	require.NoError(t, err)
	second, err := analyzer.AnalyzeText(context.Background(), resume, backendJob)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeText_ScoreBounds(t *testing.T) {
	result, err := NewAnalyzer(Options{}).AnalyzeText(context.Background(), resumeWithSkills("Go"), backendJob)
	require.NoError(t, err)

	for name, v := range map[string]float64{
		"jdMatchScore":        result.JDMatchScore,
		"atsReadabilityScore": result.ATSReadabilityScore,
		"baseScore":           result.BaseScore,
		"keywordMatch":        result.KeywordMatch.Score,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
	for category, m := range result.TechnicalMatch.Categories {
		assert.GreaterOrEqual(t, m.MatchRate, 0.0, string(category))
		assert.LessOrEqual(t, m.MatchRate, 100.0, string(category))
	}
}

func TestAnalyze_KeywordsMoveOnlyMatchScore(t *testing.T) {
	analyzer := NewAnalyzer(Options{})
	matching, err := analyzer.AnalyzeText(context.Background(), resumeWithSkills("Go, Python, Kubernetes, PostgreSQL"), backendJob)
	require.NoError(t, err)
	unrelated, err := analyzer.AnalyzeText(context.Background(), resumeWithSkills("Ruby, Perl, Puppet, Oracle"), backendJob)
	require.NoError(t, err)

	assert.Equal(t, matching.ATSReadabilityScore, unrelated.ATSReadabilityScore)
	assert.Greater(t, matching.JDMatchScore, unrelated.JDMatchScore)
}

func TestAnalyze_LayoutMovesOnlyReadability(t *testing.T) {
	analyzer := NewAnalyzer(Options{})
	skillLines := []string{"Go Python Docker", "Kubernetes Terraform Helm", "PostgreSQL Redis Kafka",
		"Linux Bash Git", "AWS GCP Azure", "React TypeScript GraphQL"}
	plain := resumeWithSkills(skillLines...)
	tabbed := strings.NewReplacer(
		"Go Python Docker", "Go\tPython\tDocker",
		"Kubernetes Terraform Helm", "Kubernetes\tTerraform\tHelm",
		"PostgreSQL Redis Kafka", "PostgreSQL\tRedis\tKafka",
		"Linux Bash Git", "Linux\tBash\tGit",
		"AWS GCP Azure", "AWS\tGCP\tAzure",
		"React TypeScript GraphQL", "React\tTypeScript\tGraphQL",
	).Replace(plain)

	plainResult, err := analyzer.Analyze(context.Background(), []byte(plain), types.FormatText, "plain.txt", backendJob)
	require.NoError(t, err)
	tabbedResult, err := analyzer.Analyze(context.Background(), []byte(tabbed), types.FormatText, "tabbed.txt", backendJob)
	require.NoError(t, err)

	assert.Equal(t, plainResult.JDMatchScore, tabbedResult.JDMatchScore)
	assert.Less(t, tabbedResult.ATSReadabilityScore, plainResult.ATSReadabilityScore)
}

func TestAnalyze_InputErrors(t *testing.T) {
	analyzer := NewAnalyzer(Options{})
	ctx := context.Background()

	t.Run("job description checked before extraction", func(t *testing.T) {
		_, err := analyzer.Analyze(ctx, []byte("{\\rtf1}"), "rtf", "resume.rtf", "Go developer")
		var shortErr *InsufficientJobDescriptionError
		require.True(t, errors.As(err, &shortErr))
		assert.Equal(t, 12, shortErr.Length)
		assert.Equal(t, DefaultMinJobDescriptionLength, shortErr.Minimum)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := analyzer.Analyze(ctx, []byte("{\\rtf1}"), "rtf", "resume.rtf", backendJob)
		var formatErr *ingestion.UnsupportedFormatError
		assert.True(t, errors.As(err, &formatErr))
	})

	t.Run("empty resume", func(t *testing.T) {
		_, err := analyzer.AnalyzeText(ctx, "   \n\n  ", backendJob)
		var emptyErr *ingestion.EmptyDocumentError
		assert.True(t, errors.As(err, &emptyErr))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := analyzer.AnalyzeText(cancelled, resumeWithSkills("Go"), backendJob)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewAnalyzer_CustomMinimum(t *testing.T) {
	analyzer := NewAnalyzer(Options{MinJobDescriptionLength: 10})
	_, err := analyzer.AnalyzeText(context.Background(), resumeWithSkills("Go"), "Go developer")
	assert.NoError(t, err)
}

func TestAnalyze_LogsStageTimings(t *testing.T) {
	var buf bytes.Buffer
	analyzer := NewAnalyzer(Options{Logger: log.New(&buf, "", 0)})

	_, err := analyzer.AnalyzeText(context.Background(), resumeWithSkills("Go"), backendJob)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[analyze ")
	assert.Contains(t, out, "aggregate completed")
	assert.Contains(t, out, "recommend completed")
}
