package ingestion

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlTagPattern = regexp.MustCompile(`(?i)<\s*(html|body|div|p|br|ul|ol|li|h[1-6]|span|section|article|strong|b|em|table)\b[^>]*>`)

// jobPostingSelectors are tried in order to locate the posting body
var jobPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// blockElements get a line break after their text so list items and
// paragraphs stay on separate lines
const blockElements = "p, div, li, h1, h2, h3, h4, h5, h6, tr, section, article, ul, ol"

// NormalizeJobDescription turns a pasted job description into clean text.
// HTML input is reduced to the text of its main content first.
func NormalizeJobDescription(raw string) string {
	if LooksLikeHTML(raw) {
		if text, err := ExtractMainText(raw); err == nil && strings.TrimSpace(text) != "" {
			return CleanText(text)
		}
	}
	return CleanText(raw)
}

// LooksLikeHTML reports whether the text contains common HTML markup
func LooksLikeHTML(text string) bool {
	return htmlTagPattern.MatchString(text)
}

// ExtractMainText extracts the main text content from an HTML job posting
func ExtractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &DecodeError{Format: "html", Cause: err}
	}

	// Remove common unwanted elements (nav, footer, scripts, ads, etc.)
	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockElements).AppendHtml("\n")
	doc.Find("li").PrependHtml("- ")

	var mainContent *goquery.Selection
	for _, selector := range jobPostingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}

	// Fallback to body if no selector matched
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
