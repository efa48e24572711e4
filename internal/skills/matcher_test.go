package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/terms"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

func TestMatcher_FullTextWins(t *testing.T) {
	tables := vocabulary.Default()
	job := "We need Kubernetes and Python"
	resume := "Operated K8s with Python tooling"

	result := NewMatcher(tables).Match(job, resume, terms.ExtractTechnical(job, tables), terms.ExtractTechnical(resume, tables))

	require.NotNil(t, result.FullText)
	assert.Equal(t, SourceFullText, result.Source)
	assert.Equal(t, 1.0, result.Relevance)
	// The category strategy only sees extracted terms, so K8s is missed there.
	assert.Less(t, result.Technical.OverallScore, 100.0)
}

func TestMatcher_NoRequirements(t *testing.T) {
	tables := vocabulary.Default()
	job := "A friendly and welcoming place"

	result := NewMatcher(nil).Match(job, "Python", terms.ExtractTechnical(job, tables), terms.ExtractTechnical("Python", tables))

	assert.Nil(t, result.FullText)
	assert.Equal(t, SourceNone, result.Source)
	assert.Zero(t, result.Relevance)
}
