// Package validation scores how safely a resume survives ATS parsing:
// layout risks, section headings, length and writing signals.
package validation

import (
	"bytes"
	"math"

	"github.com/jonathan/resume-matcher/internal/ingestion"
)

// WordsPerPage is the density used to estimate pages from a word count
const WordsPerPage = 275

// Page count sources
const (
	PageSourceDocument  = "document"
	PageSourceEstimated = "estimated"
)

// CountPages reads the page count from the document bytes when the container
// records it and otherwise estimates it from the word count. The estimate is
// never below one page.
func CountPages(data []byte, wordCount int) (int, string) {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		if count, ok := ingestion.CountPDFPages(data); ok && count > 0 {
			return count, PageSourceDocument
		}
	case bytes.HasPrefix(data, []byte("PK")):
		if count := ingestion.CountDOCXPages(data); count > 0 {
			return count, PageSourceDocument
		}
	}
	return EstimatePages(wordCount), PageSourceEstimated
}

// EstimatePages converts a word count into pages at WordsPerPage.
func EstimatePages(wordCount int) int {
	if wordCount <= 0 {
		return 1
	}
	return int(math.Ceil(float64(wordCount) / WordsPerPage))
}
