package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	maxEducationEntries = 5
	// pairingWindow is how many lines apart a degree and an institution may be
	// and still be treated as one entry
	pairingWindow = 2
)

var (
	degreePattern = regexp.MustCompile(`(?i)\b(?:` +
		`bachelor(?:'s|s)?(?:\s+of\s+[a-z]+)?(?:\s+(?:in|of)\s+[a-z][a-z &]*)?` +
		`|master(?:'s|s)?(?:\s+of\s+[a-z]+)?(?:\s+(?:in|of)\s+[a-z][a-z &]*)?` +
		`|associate(?:'s)?\s+(?:degree|of\s+[a-z]+)(?:\s+in\s+[a-z][a-z &]*)?` +
		`|ph\.?d\.?(?:\s+in\s+[a-z][a-z &]*)?` +
		`|doctor(?:ate)?\s+of\s+[a-z]+(?:\s+in\s+[a-z][a-z &]*)?` +
		`|m\.?b\.?a\.?` +
		`|b\.s\.|b\.a\.|m\.s\.|b\.sc\.?|m\.sc\.?` +
		`|(?:bs|ba|ms|bsc|msc)(?:\s+in\s+[a-z][a-z &]*)?` +
		`|high school diploma|ged` +
		`)`)

	institutionPattern = regexp.MustCompile(`(?:[A-Z][A-Za-z.&'-]*\s+)*(?:University|College|Institute|School|Academy|Polytechnic)(?:\s+of(?:\s+[A-Z][A-Za-z.&'-]*)+)?`)

	gpaPattern = regexp.MustCompile(`(?i)\bGPA\s*:?\s*([0-4]\.\d{1,2})`)

	singleYearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

type lineMatch struct {
	line  int
	text  string
	start int
	end   int
}

// parseEducation finds degrees and institutions and pairs each degree with the
// nearest unused institution no more than pairingWindow lines away. Degrees and
// institutions that find no partner become entries of their own.
func parseEducation(lines []string, sections map[string]section) []types.Education {
	block := lines
	if sec, ok := sections[SectionEducation]; ok {
		block = lines[sec.start:sec.end]
	}

	degrees := make([]lineMatch, 0)
	institutions := make([]lineMatch, 0)
	for i, line := range block {
		if headingKey(line) != "" {
			continue
		}
		var degree *lineMatch
		if loc := findDegree(line); loc != nil {
			degree = &lineMatch{line: i, start: loc[0], end: loc[1]}
		}
		if loc := institutionPattern.FindStringIndex(line); loc != nil {
			inst := lineMatch{line: i, start: loc[0], end: loc[1]}
			if degree != nil && inst.start < degree.end && inst.end > degree.start {
				// "High School" inside "High School Diploma" is not an institution
				if inst.start <= degree.start {
					inst.start = -1
				} else {
					// the field of study ran into the institution name
					inst.start = skipFieldWords(line, inst.start, inst.end)
					degree.end = inst.start
				}
			}
			if inst.start >= 0 {
				inst.text = strings.TrimSpace(line[inst.start:inst.end])
				institutions = append(institutions, inst)
			}
		}
		if degree != nil {
			degree.text = degreeText(line, []int{degree.start, degree.end})
			degrees = append(degrees, *degree)
		}
	}

	degreeLines := make(map[int]bool, len(degrees))
	for _, d := range degrees {
		degreeLines[d.line] = true
	}

	used := make([]bool, len(institutions))
	type entryAt struct {
		line  int
		entry types.Education
	}
	entries := make([]entryAt, 0, len(degrees)+len(institutions))

	for _, d := range degrees {
		best := -1
		for i, inst := range institutions {
			if used[i] {
				continue
			}
			dist := abs(inst.line - d.line)
			if dist > pairingWindow {
				continue
			}
			if best < 0 || dist < abs(institutions[best].line-d.line) {
				best = i
			}
		}

		entry := types.Education{Degree: d.text}
		nearby := []int{d.line}
		if best >= 0 {
			used[best] = true
			entry.Institution = institutions[best].text
			nearby = append(nearby, institutions[best].line)
		}
		// Lines after the degree belong to it until the window ends or another degree starts.
		for i := d.line + 1; i < len(block) && i <= d.line+pairingWindow && !degreeLines[i]; i++ {
			nearby = append(nearby, i)
		}
		entry.Dates = findDates(block, nearby)
		entry.GPA = findGPA(block, nearby)
		entries = append(entries, entryAt{line: d.line, entry: entry})
	}

	for i, inst := range institutions {
		if used[i] {
			continue
		}
		entry := types.Education{Institution: inst.text}
		entry.Dates = findDates(block, []int{inst.line})
		entry.GPA = findGPA(block, []int{inst.line})
		entries = append(entries, entryAt{line: inst.line, entry: entry})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].line < entries[j].line })

	out := make([]types.Education, 0, len(entries))
	for _, e := range entries {
		if len(out) == maxEducationEntries {
			break
		}
		out = append(out, e.entry)
	}
	return out
}

// fieldWords are words of a field of study that can precede an institution
// name on the same line, as in "BS in Computer Science Georgia Institute of Technology"
var fieldWords = map[string]bool{
	"accounting": true, "administration": true, "applied": true, "art": true, "arts": true,
	"biology": true, "business": true, "chemical": true, "chemistry": true, "civil": true,
	"communications": true, "computer": true, "data": true, "design": true, "economics": true,
	"education": true, "electrical": true, "engineering": true, "english": true, "finance": true,
	"history": true, "information": true, "management": true, "marketing": true, "mathematics": true,
	"mechanical": true, "nursing": true, "philosophy": true, "physics": true, "political": true,
	"psychology": true, "science": true, "sciences": true, "software": true, "statistics": true,
	"studies": true, "systems": true, "technology": true, "and": true, "&": true,
}

// skipFieldWords moves start past leading field-of-study words of the
// institution match line[start:end], keeping at least the institution keyword.
func skipFieldWords(line string, start, end int) int {
	for {
		rest := line[start:end]
		space := strings.IndexByte(rest, ' ')
		if space < 0 || !fieldWords[strings.ToLower(rest[:space])] {
			return start
		}
		next := start + space + 1
		if !institutionPattern.MatchString(line[next:end]) {
			return start
		}
		start = next
	}
}

// shortDegreeFollowers rules out abbreviations such as "MS" that collide with
// product names ("MS Office")
var shortDegreeFollowers = regexp.MustCompile(`(?i)^\s+(?:office|word|excel|teams|sql|access|project|outlook|azure|dos)\b`)

// shortDegrees are the abbreviations that need IsDegreeAbbreviation
var shortDegrees = map[string]bool{"bs": true, "ba": true, "ms": true, "bsc": true, "msc": true, "mba": true}

// IsDegreeAbbreviation accepts a short degree like "MS" only when it is
// written with capitals and is not part of a product name, so "200 ms" and
// "MS Office" are not degrees.
func IsDegreeAbbreviation(text string, start, end int) bool {
	word := text[start:end]
	if word == strings.ToLower(word) {
		return false
	}
	return !shortDegreeFollowers.MatchString(text[end:])
}

// findDegree returns the first degree phrase in line that is neither a
// certification title nor a lowercase or product-name abbreviation.
func findDegree(line string) []int {
	for _, loc := range degreePattern.FindAllStringIndex(line, -1) {
		if isCertificationTitle(line[:loc[0]]) {
			continue
		}
		wordEnd := loc[0]
		for wordEnd < loc[1] && line[wordEnd] != ' ' {
			wordEnd++
		}
		if shortDegrees[strings.ToLower(strings.ReplaceAll(line[loc[0]:wordEnd], ".", ""))] &&
			!IsDegreeAbbreviation(line, loc[0], wordEnd) {
			continue
		}
		return loc
	}
	return nil
}

// isCertificationTitle catches "Scrum Master" style titles that are not degrees
func isCertificationTitle(prefix string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(prefix)), "scrum")
}

// degreeText cuts the degree phrase at the first clause separator
func degreeText(line string, loc []int) string {
	text := line[loc[0]:loc[1]]
	for _, sep := range []string{",", "|", " - ", " – ", " at ", " from ", "("} {
		if idx := strings.Index(text, sep); idx > 0 {
			text = text[:idx]
		}
	}
	return strings.TrimSpace(text)
}

func findDates(block []string, lineIdx []int) string {
	for _, i := range lineIdx {
		if loc := dateRangePattern.FindStringIndex(block[i]); loc != nil {
			return strings.TrimSpace(block[i][loc[0]:loc[1]])
		}
	}
	for _, i := range lineIdx {
		if year := singleYearPattern.FindString(block[i]); year != "" {
			return year
		}
	}
	return ""
}

func findGPA(block []string, lineIdx []int) string {
	for _, i := range lineIdx {
		if m := gpaPattern.FindStringSubmatch(block[i]); m != nil {
			return m[1]
		}
	}
	return ""
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
