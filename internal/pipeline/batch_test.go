package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestAnalyzeBatch_RanksAndIsolatesFailures(t *testing.T) {
	inputs := []BatchInput{
		{FileName: "broken.rtf", Format: "rtf", Data: []byte("{\\rtf1}")},
		{FileName: "weak.txt", Format: types.FormatText, Data: []byte(resumeWithSkills("Ruby, Perl, Puppet, Oracle"))},
		{FileName: "strong.txt", Format: types.FormatText, Data: []byte(resumeWithSkills("Go, Python, Kubernetes, Docker, PostgreSQL"))},
	}

	results, err := NewAnalyzer(Options{}).AnalyzeBatch(context.Background(), inputs, backendJob, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "strong.txt", results[0].FileName)
	assert.Equal(t, "weak.txt", results[1].FileName)
	assert.Equal(t, "broken.rtf", results[2].FileName)

	require.NotNil(t, results[0].Result)
	assert.Greater(t, results[0].Result.JDMatchScore, results[1].Result.JDMatchScore)

	var formatErr *ingestion.UnsupportedFormatError
	assert.Nil(t, results[2].Result)
	assert.True(t, errors.As(results[2].Err, &formatErr))
	assert.Contains(t, results[2].Err.Error(), "broken.rtf")
}

func TestAnalyzeBatch_ShortJobFailsWholeBatch(t *testing.T) {
	inputs := []BatchInput{{FileName: "a.txt", Format: types.FormatText, Data: []byte("Jane Doe")}}
	_, err := NewAnalyzer(Options{}).AnalyzeBatch(context.Background(), inputs, "too short", 0)

	var shortErr *InsufficientJobDescriptionError
	assert.True(t, errors.As(err, &shortErr))
}

func TestRankResults(t *testing.T) {
	results := []BatchResult{
		{FileName: "failed", Err: errors.New("boom")},
		{FileName: "low", Result: &types.AnalysisResult{JDMatchScore: 40}},
		{FileName: "high", Result: &types.AnalysisResult{JDMatchScore: 80}},
		{FileName: "low-2", Result: &types.AnalysisResult{JDMatchScore: 40}},
	}
	RankResults(results)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.FileName)
	}
	assert.Equal(t, []string{"high", "low", "low-2", "failed"}, names)
}
