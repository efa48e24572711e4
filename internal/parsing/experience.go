package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	maxWorkEntries     = 10
	maxTitleLineLength = 80
)

const monthPattern = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?`

var (
	// dateRangePattern matches "Jan 2019 - Present", "2018 – 2021", "03/2020 to 05/2022"
	dateRangePattern = regexp.MustCompile(`(?i)(?:\b` + monthPattern + `\s+|\b\d{1,2}/)?\b((?:19|20)\d{2})\s*(?:-|–|—|to)\s*(?:(?:` + monthPattern + `\s+|\d{1,2}/)?((?:19|20)\d{2})\b|(present|current|now)\b)`)

	yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	jobTitlePattern = regexp.MustCompile(`(?i)\b(?:(?:senior|junior|lead|principal|staff|chief|head)\s+)?(?:(?:software|data|frontend|front-end|backend|back-end|full[- ]stack|devops|cloud|product|project|program|marketing|sales|operations|qa|test|machine learning|security|systems?|network|web|mobile|ux|ui)\s+)?(?:engineer|developer|manager|analyst|designer|consultant|architect|scientist|administrator|specialist|director|intern|coordinator)\b`)

	titleCompanySeparators = []string{" at ", " @ ", " | ", " – ", " — ", " - ", ", "}
)

// DateRange is a parsed span of years. Open ranges ("Present") set Open and
// leave End at 0.
type DateRange struct {
	Start int
	End   int
	Open  bool
}

// ParseDateRange parses the first date range in s.
func ParseDateRange(s string) (DateRange, bool) {
	m := dateRangePattern.FindStringSubmatch(s)
	if m == nil {
		return DateRange{}, false
	}
	start, _ := strconv.Atoi(m[1])
	r := DateRange{Start: start}
	if m[2] != "" {
		r.End, _ = strconv.Atoi(m[2])
	} else {
		r.Open = true
	}
	return r, true
}

// LatestYear returns the largest four-digit year in text, or 0.
func LatestYear(text string) int {
	latest := 0
	for _, y := range yearPattern.FindAllString(text, -1) {
		if n, _ := strconv.Atoi(y); n > latest {
			latest = n
		}
	}
	return latest
}

// parseWorkExperience reads positions from the experience section, or from the
// whole text when no experience heading exists. A date range starts a position;
// the short line before it is the title and the lines after it, up to the next
// position, are its description.
func parseWorkExperience(lines []string, sections map[string]section) []types.WorkExperience {
	block := lines
	if sec, ok := sections[SectionExperience]; ok {
		block = lines[sec.start:sec.end]
	}

	entries := entriesFromDates(block)
	if len(entries) == 0 {
		entries = entriesFromTitles(block)
	}
	if len(entries) > maxWorkEntries {
		entries = entries[:maxWorkEntries]
	}
	return entries
}

func entriesFromDates(block []string) []types.WorkExperience {
	dateLines := make([]int, 0)
	for i, line := range block {
		if headingKey(line) != "" {
			continue
		}
		if dateRangePattern.MatchString(line) {
			dateLines = append(dateLines, i)
		}
	}
	if len(dateLines) == 0 {
		return nil
	}

	// titleLine[n] is the line used as the title of position n, or -1
	titleLine := make([]int, len(dateLines))
	for n, idx := range dateLines {
		titleLine[n] = -1
		prevBoundary := -1
		if n > 0 {
			prevBoundary = dateLines[n-1]
		}
		if cand := previousNonBlank(block, idx); cand > prevBoundary && isTitleCandidate(block[cand]) {
			titleLine[n] = cand
		}
	}

	entries := make([]types.WorkExperience, 0, len(dateLines))
	for n, idx := range dateLines {
		line := strings.TrimSpace(block[idx])
		loc := dateRangePattern.FindStringIndex(line)
		dates := strings.TrimSpace(line[loc[0]:loc[1]])
		remainder := cleanRemainder(line[:loc[0]] + " " + line[loc[1]:])

		entry := types.WorkExperience{Dates: dates, Description: []string{}}

		switch {
		case titleLine[n] >= 0:
			entry.Title, entry.Company = splitTitleCompany(stripBullet(block[titleLine[n]]))
			if entry.Company == "" {
				entry.Company = remainder
			}
		case remainder != "":
			entry.Title, entry.Company = splitTitleCompany(remainder)
		}

		end := len(block)
		if n+1 < len(dateLines) {
			end = dateLines[n+1]
			if titleLine[n+1] >= 0 {
				end = titleLine[n+1]
			}
		}
		for _, desc := range block[idx+1 : end] {
			if headingKey(desc) != "" {
				break
			}
			if d := stripBullet(desc); d != "" {
				entry.Description = append(entry.Description, d)
			}
		}

		entries = append(entries, entry)
	}
	return entries
}

// entriesFromTitles is the fallback when no date ranges exist: short lines
// shaped like job titles become title-only positions.
func entriesFromTitles(block []string) []types.WorkExperience {
	entries := make([]types.WorkExperience, 0)
	for _, line := range block {
		trimmed := stripBullet(line)
		if trimmed == "" || len(trimmed) > maxTitleLineLength || headingKey(trimmed) != "" {
			continue
		}
		if !jobTitlePattern.MatchString(trimmed) {
			continue
		}
		title, company := splitTitleCompany(trimmed)
		entries = append(entries, types.WorkExperience{Title: title, Company: company, Description: []string{}})
	}
	return entries
}

func previousNonBlank(block []string, idx int) int {
	for i := idx - 1; i >= 0; i-- {
		if strings.TrimSpace(block[i]) != "" {
			return i
		}
	}
	return -1
}

func isTitleCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && len(trimmed) <= maxTitleLineLength && !IsBullet(line) && headingKey(trimmed) == ""
}

func splitTitleCompany(s string) (string, string) {
	s = strings.TrimSpace(s)
	for _, sep := range titleCompanySeparators {
		if idx := strings.Index(s, sep); idx > 0 {
			return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+len(sep):])
		}
	}
	return s, ""
}

var remainderTrim = regexp.MustCompile(`^[\s|,–—()-]+|[\s|,–—()-]+$`)

func cleanRemainder(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return remainderTrim.ReplaceAllString(s, "")
}
