package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

func sampleReport() Report {
	strong := &types.AnalysisResult{
		JDMatchScore: 84.5,
		ATSScore:     95,
		KeywordMatch: types.KeywordMatch{Score: 72},
		Breakdown: types.ScoreBreakdown{Components: []types.ScoreComponent{
			{Name: "skillRelevance", Value: 0.8},
			{Name: "experienceMatch", Value: 1},
			{Name: "educationMatch", Value: 0.5},
		}},
		Recommendations: []types.Recommendation{
			{Priority: types.PriorityMedium, Title: "Add Your Location", Action: "Add city and state"},
		},
	}
	weak := &types.AnalysisResult{
		JDMatchScore: 31.5,
		ATSScore:     70,
		TechnicalMatch: types.TechnicalMatch{MissingRequirements: types.MissingRequirements{
			Critical: []types.MissingRequirement{
				{Type: "programmingLanguage", Term: "Java"},
				{Type: "programmingLanguage", Term: "Go"},
			},
		}},
		Recommendations: []types.Recommendation{
			{Priority: types.PriorityCritical, Title: "Add Required Programming Languages", Action: "List Java"},
			{Priority: types.PriorityHigh, Title: "Increase Keyword Alignment", Action: "Mirror the job wording"},
		},
	}

	return Report{
		JobTitle:  "Backend Engineer",
		Generated: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		Results: []pipeline.BatchResult{
			{FileName: "alice.pdf", Result: strong},
			{FileName: "bob.docx", Result: weak},
			{FileName: "broken.pdf", Err: errors.New("broken.pdf: failed to decode pdf document")},
		},
	}
}

func openWorkbook(t *testing.T, report Report) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(report, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	require.NoError(t, err)
	return v
}

func TestWriteExcel_Sheets(t *testing.T) {
	f := openWorkbook(t, sampleReport())
	assert.Equal(t, []string{SummarySheet, RankedSheet, RecommendationsSheet}, f.GetSheetList())
}

func TestWriteExcel_Summary(t *testing.T) {
	f := openWorkbook(t, sampleReport())

	assert.Equal(t, "Resume Match Report", cell(t, f, SummarySheet, "A1"))
	assert.Equal(t, "Backend Engineer", cell(t, f, SummarySheet, "B3"))
	assert.Equal(t, "2026-03-01 09:30:00", cell(t, f, SummarySheet, "B4"))
	assert.Equal(t, "2", cell(t, f, SummarySheet, "B5"))
	assert.Equal(t, "1", cell(t, f, SummarySheet, "B6"))
	assert.Equal(t, "58.0", cell(t, f, SummarySheet, "B7"))
	assert.Equal(t, "84.5", cell(t, f, SummarySheet, "B8"))
	assert.Equal(t, "31.5", cell(t, f, SummarySheet, "B9"))
}

func TestWriteExcel_Ranked(t *testing.T) {
	f := openWorkbook(t, sampleReport())

	assert.Equal(t, "Rank", cell(t, f, RankedSheet, "A1"))
	assert.Equal(t, "alice.pdf", cell(t, f, RankedSheet, "B2"))
	assert.Equal(t, "84.5", cell(t, f, RankedSheet, "C2"))
	assert.Equal(t, "80", cell(t, f, RankedSheet, "F2"))
	assert.Equal(t, "100", cell(t, f, RankedSheet, "G2"))

	assert.Equal(t, "bob.docx", cell(t, f, RankedSheet, "B3"))
	assert.Equal(t, "Java, Go", cell(t, f, RankedSheet, "I3"))

	assert.Equal(t, "3", cell(t, f, RankedSheet, "A4"))
	assert.Contains(t, cell(t, f, RankedSheet, "J4"), "failed to decode")
	assert.Empty(t, cell(t, f, RankedSheet, "C4"))
}

func TestWriteExcel_Recommendations(t *testing.T) {
	f := openWorkbook(t, sampleReport())

	rows, err := f.GetRows(RecommendationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"alice.pdf", "medium", "Add Your Location", "Add city and state"}, rows[1])
	assert.Equal(t, "bob.docx", rows[2][0])
	assert.Equal(t, types.PriorityCritical, rows[2][1])
}

func TestWriteExcel_Empty(t *testing.T) {
	f := openWorkbook(t, Report{JobTitle: "Nothing"})

	assert.Equal(t, "0", cell(t, f, SummarySheet, "B5"))
	assert.Empty(t, cell(t, f, SummarySheet, "A7"))
}

func TestSaveExcel_AddsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report")

	saved, err := SaveExcel(sampleReport(), path)
	require.NoError(t, err)
	assert.Equal(t, path+".xlsx", saved)

	info, err := os.Stat(saved)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "excellent"},
		{80, "excellent"},
		{79.9, "good"},
		{60, "good"},
		{45, "fair"},
		{39.9, "poor"},
		{0, "poor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, band(tt.score), "score %v", tt.score)
	}
}
