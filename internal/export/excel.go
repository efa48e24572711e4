// Package export writes analysis results to spreadsheet reports.
package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Sheet names
const (
	SummarySheet         = "Summary"
	RankedSheet          = "Ranked Resumes"
	RecommendationsSheet = "Recommendations"
)

// Score bands used for color coding, lower bounds on the 0-100 scale
const (
	excellentScore = 80
	goodScore      = 60
	fairScore      = 40
)

var bandColors = map[string]string{
	"excellent": "C6EFCE",
	"good":      "FFEB9C",
	"fair":      "FFC7CE",
	"poor":      "FF9999",
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// Report describes one batch of analyses against a single job description
type Report struct {
	JobTitle  string
	Generated time.Time
	// Results are expected in rank order, as returned by pipeline.AnalyzeBatch
	Results []pipeline.BatchResult
}

// SaveExcel writes the report to path, adding the .xlsx extension when missing.
func SaveExcel(report Report, path string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	if err := WriteExcel(report, out); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close report file: %w", err)
	}
	return path, nil
}

// WriteExcel renders the report as an XLSX workbook into w.
func WriteExcel(report Report, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{RankedSheet, RecommendationsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	styles, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	if err := writeSummary(f, styles, report); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeRanked(f, styles, report.Results); err != nil {
		return fmt.Errorf("failed to create ranked sheet: %w", err)
	}
	if err := writeRecommendations(f, styles, report.Results); err != nil {
		return fmt.Errorf("failed to create recommendations sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type styles struct {
	title  int
	header int
	label  int
	wrap   int
	bands  map[string]int
}

func newStyles(f *excelize.File) (*styles, error) {
	var (
		s   = &styles{bands: make(map[string]int, len(bandColors))}
		err error
	)

	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return nil, err
	}
	s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	s.wrap, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    thinBorder,
	})
	if err != nil {
		return nil, err
	}
	for band, color := range bandColors {
		s.bands[band], err = f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Border: thinBorder,
		})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// band classifies a match score for color coding
func band(score float64) string {
	switch {
	case score >= excellentScore:
		return "excellent"
	case score >= goodScore:
		return "good"
	case score >= fairScore:
		return "fair"
	default:
		return "poor"
	}
}

// sheetWriter collects the first error from a run of cell writes
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (sw *sheetWriter) set(col, row int, value any) {
	if sw.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		sw.err = err
		return
	}
	sw.err = sw.f.SetCellValue(sw.sheet, cell, value)
}

func (sw *sheetWriter) style(fromCol, toCol, row, style int) {
	if sw.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		sw.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		sw.err = err
		return
	}
	sw.err = sw.f.SetCellStyle(sw.sheet, from, to, style)
}

func (sw *sheetWriter) header(s *styles, headers ...string) {
	for col, h := range headers {
		sw.set(col+1, 1, h)
	}
	sw.style(1, len(headers), 1, s.header)
}

func (sw *sheetWriter) widths(widths ...float64) {
	for i, width := range widths {
		if sw.err != nil {
			return
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			sw.err = err
			return
		}
		sw.err = sw.f.SetColWidth(sw.sheet, col, col, width)
	}
}

func (sw *sheetWriter) freezeHeader() {
	if sw.err != nil {
		return
	}
	sw.err = sw.f.SetPanes(sw.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummary(f *excelize.File, s *styles, report Report) error {
	sw := &sheetWriter{f: f, sheet: SummarySheet}
	sw.widths(28, 50)

	generated := report.Generated
	if generated.IsZero() {
		generated = time.Now()
	}

	sw.set(1, 1, "Resume Match Report")
	sw.style(1, 2, 1, s.title)
	if sw.err == nil {
		sw.err = f.MergeCell(SummarySheet, "A1", "B1")
	}

	analyzed, failed := 0, 0
	counts := map[string]int{}
	var total, best, worst float64
	for _, r := range report.Results {
		if r.Err != nil || r.Result == nil {
			failed++
			continue
		}
		score := r.Result.JDMatchScore
		if analyzed == 0 || score > best {
			best = score
		}
		if analyzed == 0 || score < worst {
			worst = score
		}
		analyzed++
		total += score
		counts[band(score)]++
	}

	rows := [][2]any{
		{"Job:", report.JobTitle},
		{"Generated:", generated.Format("2006-01-02 15:04:05")},
		{"Resumes analyzed:", analyzed},
		{"Resumes failed:", failed},
	}
	if analyzed > 0 {
		rows = append(rows,
			[2]any{"Average match score:", fmt.Sprintf("%.1f", total/float64(analyzed))},
			[2]any{"Highest match score:", fmt.Sprintf("%.1f", best)},
			[2]any{"Lowest match score:", fmt.Sprintf("%.1f", worst)},
			[2]any{"Excellent (80-100):", counts["excellent"]},
			[2]any{"Good (60-79):", counts["good"]},
			[2]any{"Fair (40-59):", counts["fair"]},
			[2]any{"Poor (<40):", counts["poor"]},
		)
	}

	row := 3
	for _, kv := range rows {
		sw.set(1, row, kv[0])
		sw.style(1, 1, row, s.label)
		sw.set(2, row, kv[1])
		row++
	}
	return sw.err
}

func writeRanked(f *excelize.File, s *styles, results []pipeline.BatchResult) error {
	sw := &sheetWriter{f: f, sheet: RankedSheet}
	sw.widths(8, 30, 12, 12, 12, 12, 12, 12, 40, 40)
	headers := []string{"Rank", "Resume", "Match Score", "ATS Score", "Keywords", "Skills", "Experience", "Education", "Missing Critical", "Error"}
	sw.header(s, headers...)

	for i, r := range results {
		row := i + 2
		sw.set(1, row, i+1)
		sw.set(2, row, r.FileName)

		if r.Err != nil || r.Result == nil {
			if r.Err != nil {
				sw.set(10, row, r.Err.Error())
			}
			sw.style(1, len(headers), row, s.bands["poor"])
			continue
		}

		res := r.Result
		sw.set(3, row, res.JDMatchScore)
		sw.set(4, row, res.ATSScore)
		sw.set(5, row, res.KeywordMatch.Score)
		sw.set(6, row, componentPercent(res, "skillRelevance"))
		sw.set(7, row, componentPercent(res, "experienceMatch"))
		sw.set(8, row, componentPercent(res, "educationMatch"))
		sw.set(9, row, missingCritical(res))
		sw.style(1, len(headers), row, s.bands[band(res.JDMatchScore)])
	}

	if len(results) > 0 && sw.err == nil {
		sw.err = f.AutoFilter(RankedSheet, fmt.Sprintf("A1:J%d", len(results)+1), nil)
	}
	sw.freezeHeader()
	return sw.err
}

func writeRecommendations(f *excelize.File, s *styles, results []pipeline.BatchResult) error {
	sw := &sheetWriter{f: f, sheet: RecommendationsSheet}
	sw.widths(30, 12, 35, 70)
	sw.header(s, "Resume", "Priority", "Title", "Action")

	row := 2
	for _, r := range results {
		if r.Result == nil {
			continue
		}
		for _, rec := range r.Result.Recommendations {
			sw.set(1, row, r.FileName)
			sw.set(2, row, rec.Priority)
			sw.set(3, row, rec.Title)
			sw.set(4, row, rec.Action)
			sw.style(1, 4, row, s.wrap)
			row++
		}
	}
	sw.freezeHeader()
	return sw.err
}

// componentPercent returns a breakdown component's value on the 0-100 scale
func componentPercent(res *types.AnalysisResult, name string) float64 {
	for _, c := range res.Breakdown.Components {
		if c.Name == name {
			return math.Round(c.Value*1000) / 10
		}
	}
	return 0
}

func missingCritical(res *types.AnalysisResult) string {
	terms := make([]string, 0, len(res.TechnicalMatch.MissingRequirements.Critical))
	for _, m := range res.TechnicalMatch.MissingRequirements.Critical {
		terms = append(terms, m.Term)
	}
	return strings.Join(terms, ", ")
}
