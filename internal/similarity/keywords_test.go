package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

func TestExtractKeywords_RanksByFrequency(t *testing.T) {
	text := "Kafka pipelines. Kafka consumers. Terraform modules. Machine learning features."
	keywords := ExtractKeywords(text, vocabulary.Default(), 3)

	require.Len(t, keywords, 3)
	assert.Equal(t, "kafka", keywords[0].Term)
	assert.Greater(t, keywords[0].Importance, keywords[1].Importance)
	for _, kw := range keywords {
		assert.LessOrEqual(t, kw.Importance, 100.0)
		assert.Greater(t, kw.Importance, 0.0)
	}
}

func TestExtractKeywords_IncludesCompoundTerms(t *testing.T) {
	keywords := ExtractKeywords("Machine learning platform for fraud detection", vocabulary.Default(), 0)
	termsFound := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		termsFound = append(termsFound, kw.Term)
	}
	assert.Contains(t, termsFound, "machine learning")
}

func TestExtractKeywords_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractKeywords("", vocabulary.Default(), 10))
	assert.Empty(t, ExtractKeywords("the and with we are looking", vocabulary.Default(), 10))
}

func TestExtractKeywords_TieBreakIsAlphabetical(t *testing.T) {
	keywords := ExtractKeywords("terraform kafka", vocabulary.Default(), 0)
	require.Len(t, keywords, 2)
	assert.Equal(t, "kafka", keywords[0].Term)
	assert.Equal(t, "terraform", keywords[1].Term)
}

func TestWeightedKeywordMatch(t *testing.T) {
	job := []types.Keyword{
		{Term: "kafka", Importance: 50},
		{Term: "java", Importance: 30},
		{Term: "terraform", Importance: 20},
	}
	resume := map[string]bool{"kafka": true, "javascript": true}

	match := WeightedKeywordMatch(job, resume)

	assert.Equal(t, []string{"kafka"}, match.Matched)
	assert.Equal(t, []string{"java"}, match.Partial)
	assert.Equal(t, []string{"terraform"}, match.Missing)
	assert.InDelta(t, (50+30*0.7)/100*100, match.Score, 1e-9)
}

func TestWeightedKeywordMatch_NoJobKeywords(t *testing.T) {
	match := WeightedKeywordMatch(nil, map[string]bool{"kafka": true})
	assert.Equal(t, 0.0, match.Score)
	assert.Empty(t, match.Matched)
}

func TestWeightedKeywordMatch_MonotonicInResumeContent(t *testing.T) {
	tables := vocabulary.Default()
	jobText := "Kafka, Terraform, Kubernetes and Snowflake for our data platform"
	resumeText := "Built Kafka streaming jobs"
	jobKeywords := ExtractKeywords(jobText, tables, 30)

	before := WeightedKeywordMatch(jobKeywords, KeywordSet(resumeText, tables))
	for _, missing := range before.Missing {
		after := WeightedKeywordMatch(jobKeywords, KeywordSet(resumeText+" "+missing, tables))
		assert.GreaterOrEqual(t, after.Score, before.Score, "adding %q must not lower the score", missing)
	}
	assert.NotEmpty(t, before.Missing)
}

func TestKeywordSet(t *testing.T) {
	set := KeywordSet("Deep learning with PyTorch and Kafka", vocabulary.Default())
	assert.True(t, set["deep learning"])
	assert.True(t, set["pytorch"])
	assert.True(t, set["kafka"])
	assert.False(t, set["with"])
}
