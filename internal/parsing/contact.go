package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	nameSearchLines    = 5
	addressSearchLines = 8
	maxNameWords       = 3
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phonePatterns are tried in order; the first hit wins
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\b[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}\b`),
		regexp.MustCompile(`\+[0-9]{1,3}[-.\s]?[0-9]{1,4}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}\b`),
		regexp.MustCompile(`\b0[0-9]{2,4}[-.\s][0-9]{3,4}[-.\s][0-9]{3,4}\b`),
	}

	linkedInPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)
	gitHubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+`)

	streetAddressPattern = regexp.MustCompile(`\b\d{1,6}\s+(?:[A-Z][A-Za-z0-9.]*\s+){1,4}(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Way|Place|Pl)\b\.?(?:,?\s+[A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*)?(?:,\s*[A-Z]{2})?(?:\s+\d{5}(?:-\d{4})?)?`)
	cityStatePattern     = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s[A-Z][a-zA-Z]+)*,\s*[A-Z]{2}\b(?:\s+\d{5}(?:-\d{4})?)?`)

	nameStopWords = map[string]bool{"resume": true, "cv": true, "curriculum": true, "vitae": true}
)

// ParseContact extracts contact fields from resume text.
func ParseContact(text string) types.ContactInfo {
	return parseContact(text, strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}

// parseContact extracts contact fields. Missing fields are left empty.
func parseContact(text string, lines []string) types.ContactInfo {
	contact := types.ContactInfo{
		Email:    emailPattern.FindString(text),
		LinkedIn: strings.TrimRight(linkedInPattern.FindString(text), "/"),
		GitHub:   gitHubPattern.FindString(text),
		Name:     parseName(lines),
		Address:  parseAddress(text, lines),
	}

	for _, pattern := range phonePatterns {
		if phone := pattern.FindString(text); phone != "" {
			contact.Phone = strings.TrimSpace(phone)
			break
		}
	}

	return contact
}

// parseName takes the leading capitalized words of the first plausible line
// near the top of the resume.
func parseName(lines []string) string {
	checked := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if checked >= nameSearchLines {
			break
		}
		checked++

		if headingKey(line) != "" || strings.Contains(line, "@") || strings.ContainsAny(line, "0123456789") ||
			strings.Contains(strings.ToLower(line), "http") || strings.Contains(strings.ToLower(line), "linkedin") {
			continue
		}

		words := make([]string, 0, maxNameWords)
		for _, word := range strings.Fields(line) {
			if len(words) == maxNameWords || !isCapitalizedWord(word) {
				break
			}
			if nameStopWords[strings.ToLower(word)] {
				words = words[:0]
				break
			}
			words = append(words, word)
		}
		if len(words) > 0 {
			return strings.Join(words, " ")
		}
	}
	return ""
}

func isCapitalizedWord(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '.' && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

// parseAddress looks for a street address anywhere, then a "City, ST" pair in
// the header lines.
func parseAddress(text string, lines []string) string {
	if addr := streetAddressPattern.FindString(text); addr != "" {
		return strings.TrimSpace(addr)
	}

	limit := addressSearchLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if headingKey(line) != "" {
			break
		}
		if addr := cityStatePattern.FindString(line); addr != "" {
			return strings.TrimSpace(addr)
		}
	}
	return ""
}
