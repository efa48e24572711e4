package validation

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/lexical"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// BaseScore is the starting point every formatting assessment is adjusted from
const BaseScore = 50

// Check names reported in FormattingIssue.Check
const (
	CheckFonts             = "fonts"
	CheckTables            = "tables"
	CheckHeaderFooter      = "headerFooter"
	CheckImages            = "images"
	CheckSections          = "sections"
	CheckSpecialCharacters = "specialCharacters"
	CheckPageCount         = "pageCount"
	CheckContact           = "contact"
	CheckBullets           = "bullets"
	CheckWordCount         = "wordCount"
	CheckActionVerbs       = "actionVerbs"
	CheckWeakPhrases       = "weakPhrases"
)

// requiredSection is a heading ATS parsers look for, with the points it earns
// when present and costs when missing
type requiredSection struct {
	key     string
	label   string
	quality int
	penalty int
}

var requiredSections = []requiredSection{
	{key: parsing.SectionExperience, label: "Experience", quality: 10, penalty: 15},
	{key: parsing.SectionEducation, label: "Education", quality: 8, penalty: 10},
	{key: parsing.SectionSkills, label: "Skills", quality: 7, penalty: 8},
	{key: sectionContact, label: "Contact", quality: 5, penalty: 5},
}

const sectionContact = "contact"

const (
	tabThreshold        = 10
	repeatedLineMinimum = 3
	nonASCIIThreshold   = 0.05
	minBullets          = 5
	minActionVerbs      = 5
	weakPhraseLimit     = 3
	maxFontPenalty      = 20
	maxPagePenalty      = 20
)

var (
	imageMarkers = [][]byte{
		[]byte("/Subtype /Image"),
		[]byte("/Subtype/Image"),
		[]byte("word/media/"),
	}
	textImagePattern = regexp.MustCompile(`(?i)\[(?:image|photo|picture|logo)\]|<img\b`)
	wordPattern      = regexp.MustCompile(`[a-z]+`)

	// typographic characters that are common in resumes and harmless to parsers
	allowedNonASCII = map[rune]bool{
		'•': true, '·': true, '–': true, '—': true, '’': true,
		'‘': true, '“': true, '”': true, '…': true, '\u00a0': true,
	}
)

type formattingAnalysis struct {
	result types.FormattingResult
}

func (a *formattingAnalysis) quality(points int, strength string) {
	a.result.QualityPoints += points
	if strength != "" {
		a.result.Strengths = append(a.result.Strengths, strength)
	}
}

func (a *formattingAnalysis) penalize(check, severity string, points int, message string) {
	a.result.PenaltyPoints += points
	a.result.Issues = append(a.result.Issues, types.FormattingIssue{
		Check:    check,
		Severity: severity,
		Message:  message,
		Penalty:  points,
	})
}

func (a *formattingAnalysis) warn(message string) {
	a.result.Warnings = append(a.result.Warnings, message)
}

// AnalyzeFormatting scores the ATS readability of a resume from its raw bytes
// and extracted text. data may be nil when only text is available; layout
// checks that need the container then fall back to the text.
func AnalyzeFormatting(data []byte, text string, tables *vocabulary.Tables) types.FormattingResult {
	if tables == nil {
		tables = vocabulary.Default()
	}

	a := &formattingAnalysis{result: types.FormattingResult{
		Issues:    []types.FormattingIssue{},
		Strengths: []string{},
		Warnings:  []string{},
	}}
	lines := strings.Split(text, "\n")
	lower := strings.ToLower(text)
	wordCount := lexical.CountWords(text)
	contact := parsing.ParseContact(text)

	a.result.WordCount = wordCount
	a.result.PageCount, a.result.PageCountSource = CountPages(data, wordCount)

	a.checkFonts(data, lower, tables)
	a.checkTables(data, text)
	a.checkHeaderFooter(lines)
	a.checkImages(data, text)
	a.checkSections(text, contact)
	a.checkSpecialCharacters(text)
	a.checkPageCount()
	a.checkContact(contact)
	a.checkBullets(lines)
	a.checkWordCount(wordCount)
	a.checkActionVerbs(lower, tables)
	a.checkWeakPhrases(lower, tables)

	score := BaseScore + a.result.QualityPoints - a.result.PenaltyPoints
	a.result.Score = float64(max(0, min(100, score)))
	return a.result
}

func (a *formattingAnalysis) checkFonts(data []byte, lower string, tables *vocabulary.Tables) {
	// font names are embedded without spaces, e.g. /BaseFont /ComicSansMS
	compactData := bytes.ToLower(data)
	penalty := 0
	for _, font := range tables.ProblemFonts() {
		compact := strings.ReplaceAll(font, " ", "")
		if strings.Contains(lower, font) || (len(compactData) > 0 && bytes.Contains(compactData, []byte(compact))) {
			penalty += 10
			a.warn(fmt.Sprintf("Font %q may not be parsed correctly by ATS systems", font))
		}
	}
	if penalty > 0 {
		a.penalize(CheckFonts, "medium", min(penalty, maxFontPenalty), "Resume uses fonts that ATS systems handle poorly")
	}
}

func (a *formattingAnalysis) checkTables(data []byte, text string) {
	tabs := strings.Count(text, "\t")
	if len(data) > 0 && !bytes.HasPrefix(data, []byte("%PDF-")) && !bytes.HasPrefix(data, []byte("PK")) {
		tabs = max(tabs, bytes.Count(data, []byte("\t")))
	}
	if tabs > tabThreshold {
		a.penalize(CheckTables, "high", 10, fmt.Sprintf("Found %d tab characters; tables and columns often scramble ATS parsing", tabs))
	}
}

func (a *formattingAnalysis) checkHeaderFooter(lines []string) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < 3 || len(trimmed) > 60 || parsing.IsBullet(trimmed) {
			continue
		}
		key := strings.ToLower(trimmed)
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	for _, key := range order {
		if counts[key] >= repeatedLineMinimum {
			a.penalize(CheckHeaderFooter, "medium", 5, fmt.Sprintf("Text %q repeats %d times, likely a header or footer", key, counts[key]))
			return
		}
	}
}

func (a *formattingAnalysis) checkImages(data []byte, text string) {
	found := textImagePattern.MatchString(text)
	for _, marker := range imageMarkers {
		if bytes.Contains(data, marker) {
			found = true
			break
		}
	}
	if found {
		a.penalize(CheckImages, "high", 10, "Images or graphics detected; ATS systems cannot read them")
	}
}

func (a *formattingAnalysis) checkSections(text string, contact types.ContactInfo) {
	for _, sec := range requiredSections {
		present := false
		if sec.key == sectionContact {
			present = contact.Email != "" || contact.Phone != ""
		} else {
			present = parsing.HasSection(text, sec.key)
		}

		if present {
			a.quality(sec.quality, fmt.Sprintf("%s section found", sec.label))
			continue
		}
		a.penalize(CheckSections, "high", sec.penalty, fmt.Sprintf("Missing %s section", sec.label))
	}
}

func (a *formattingAnalysis) checkSpecialCharacters(text string) {
	total, unusual := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r > unicode.MaxASCII && !unicode.IsLetter(r) && !allowedNonASCII[r] {
			unusual++
		}
	}
	if total == 0 {
		return
	}
	if ratio := float64(unusual) / float64(total); ratio > nonASCIIThreshold {
		a.penalize(CheckSpecialCharacters, "medium", 5, fmt.Sprintf("%.0f%% of characters are special symbols that may not parse", ratio*100))
	}
}

func (a *formattingAnalysis) checkPageCount() {
	pages := a.result.PageCount
	switch {
	case pages <= 2:
		a.quality(10, fmt.Sprintf("Length of %d page(s) is ideal", pages))
	case pages == 3:
		a.penalize(CheckPageCount, "medium", 5, "Resume runs to 3 pages")
		a.warn("Resume is longer than the recommended 1-2 pages")
	default:
		a.penalize(CheckPageCount, "high", min(10+2*(pages-3), maxPagePenalty), fmt.Sprintf("Resume runs to %d pages", pages))
		a.warn(fmt.Sprintf("Resume too long: %d pages, recommended 1-2", pages))
	}
}

func (a *formattingAnalysis) checkContact(contact types.ContactInfo) {
	if contact.Email != "" {
		a.quality(5, "Email address found")
	} else {
		a.penalize(CheckContact, "high", 10, "No email address found")
	}
	if contact.Phone != "" {
		a.quality(3, "Phone number found")
	} else {
		a.penalize(CheckContact, "medium", 5, "No phone number found")
	}
}

func (a *formattingAnalysis) checkBullets(lines []string) {
	bullets, content := 0, 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		content++
		if parsing.IsBullet(line) {
			bullets++
		}
	}
	switch {
	case bullets >= minBullets:
		a.quality(5, fmt.Sprintf("%d bullet points make achievements scannable", bullets))
	case bullets == 0 && content > 10:
		a.penalize(CheckBullets, "low", 5, "No bullet points; dense paragraphs are harder to scan")
	}
}

func (a *formattingAnalysis) checkWordCount(words int) {
	switch {
	case words >= 400 && words <= 700:
		a.quality(10, fmt.Sprintf("Word count of %d is in the optimal range", words))
	case (words >= 300 && words < 400) || (words > 700 && words <= 900):
		a.quality(5, "")
	case words < 200:
		a.penalize(CheckWordCount, "medium", 10, fmt.Sprintf("Only %d words; resume looks too short", words))
		a.warn("Resume is too short to show relevant experience")
	case words > 1000:
		a.penalize(CheckWordCount, "medium", 5, fmt.Sprintf("%d words; consider trimming to under 700", words))
	}
}

func (a *formattingAnalysis) checkActionVerbs(lower string, tables *vocabulary.Tables) {
	count := CountActionVerbs(lower, tables)
	switch {
	case count >= minActionVerbs:
		a.quality(5, fmt.Sprintf("Uses %d strong action verbs", count))
	case count >= 2:
		a.quality(2, "")
	case count == 0:
		a.penalize(CheckActionVerbs, "low", 5, "No strong action verbs found")
	}
}

func (a *formattingAnalysis) checkWeakPhrases(lower string, tables *vocabulary.Tables) {
	count := CountWeakPhrases(lower, tables)
	if count >= weakPhraseLimit {
		a.penalize(CheckWeakPhrases, "low", 5, fmt.Sprintf("%d weak phrases such as \"responsible for\"", count))
	}
}

// CountActionVerbs counts distinct action verbs used in lowercased text.
func CountActionVerbs(lower string, tables *vocabulary.Tables) int {
	words := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(lower, -1) {
		words[w] = true
	}
	count := 0
	for _, verb := range tables.ActionVerbs() {
		if words[verb] {
			count++
		}
	}
	return count
}

// CountWeakPhrases counts occurrences of weak phrasing in lowercased text.
func CountWeakPhrases(lower string, tables *vocabulary.Tables) int {
	count := 0
	for _, phrase := range tables.WeakPhrases() {
		count += len(tables.Pattern(phrase).FindAllStringIndex(lower, -1))
	}
	return count
}
