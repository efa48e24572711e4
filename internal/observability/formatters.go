// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads line to the box's inner width, counting runes
func pad(line string) string {
	width := boxWidth - 4
	n := utf8.RuneCountInString(line)
	if n > width {
		runes := []rune(line)
		return string(runes[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-n)
}

// writeList writes up to limit items with a trailing "and N more" line
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + "\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintAnalysis prints every section of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintScores(result)
	p.PrintResume(&result.StructuredResume)
	p.PrintSkills(result)
	p.PrintFormatting(&result.Formatting)
	p.PrintRecommendations(result.Recommendations)
}

// PrintScores outputs the headline scores and the weighted breakdown.
func (p *Printer) PrintScores(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.FileName != "" {
		sb.WriteString(fmt.Sprintf("Resume:        %s (%s)\n", result.FileName, result.Format))
	}
	sb.WriteString(fmt.Sprintf("Match score:   %.1f / 100\n", result.JDMatchScore))
	sb.WriteString(fmt.Sprintf("ATS score:     %.1f / 100\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("Base score:    %.1f\n", result.BaseScore))
	sb.WriteString("\n")

	for _, c := range result.Breakdown.Components {
		sb.WriteString(fmt.Sprintf("%-20s %5.1f%% x %.2f = %5.1f\n", c.Name, c.Value*100, c.Weight, c.Contribution))
	}
	if result.Breakdown.Boost > 0 {
		sb.WriteString(fmt.Sprintf("Boost: +%.0f (%s)\n", result.Breakdown.Boost, strings.Join(result.Breakdown.BoostReasons, ", ")))
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResume outputs what the parser recovered from the resume.
func (p *Printer) PrintResume(resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	contact := resume.ContactInfo
	sb.WriteString(fmt.Sprintf("Name:      %s\n", orDash(contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", orDash(contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:     %s\n", orDash(contact.Phone)))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", orDash(contact.Address)))
	sb.WriteString(fmt.Sprintf("Positions: %d   Education: %d   Certifications: %d\n",
		len(resume.WorkExperience), len(resume.Education), len(resume.Certifications)))

	roles := make([]string, 0, len(resume.WorkExperience))
	for _, job := range resume.WorkExperience {
		role := job.Title
		if job.Company != "" {
			role += ", " + job.Company
		}
		roles = append(roles, role)
	}
	if len(roles) > 0 {
		sb.WriteString("\n")
	}
	writeList(&sb, "Experience:", roles, 3)

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs matched and missing skills.
func (p *Printer) PrintSkills(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var matched, missing []string
	if result.SkillsMatch != nil {
		for _, m := range result.SkillsMatch.Matched {
			matched = append(matched, m.Skill)
		}
		missing = result.SkillsMatch.Missing
	}

	critical := make([]string, 0, len(result.TechnicalMatch.MissingRequirements.Critical))
	for _, m := range result.TechnicalMatch.MissingRequirements.Critical {
		critical = append(critical, fmt.Sprintf("%s (%s)", m.Term, m.Type))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill source: %s\n\n", result.Breakdown.SkillSource))
	writeList(&sb, "Matched skills:", parsing.DisplaySkills(matched), maxItemsToShow)
	writeList(&sb, "Missing skills:", parsing.DisplaySkills(missing), maxItemsToShow)
	writeList(&sb, "Missing critical requirements:", critical, maxItemsToShow)
	writeList(&sb, "Missing keywords:", result.KeywordMatch.Missing, maxItemsToShow)

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFormatting outputs the readability assessment.
func (p *Printer) PrintFormatting(formatting *types.FormattingResult) {
	if formatting == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.1f   Pages: %d (%s)   Words: %d\n",
		formatting.Score, formatting.PageCount, formatting.PageCountSource, formatting.WordCount))

	issues := make([]string, 0, len(formatting.Issues))
	for _, issue := range formatting.Issues {
		issues = append(issues, fmt.Sprintf("[%s] %s", issue.Severity, issue.Message))
	}
	if len(issues) > 0 || len(formatting.Warnings) > 0 {
		sb.WriteString("\n")
	}
	writeList(&sb, "Issues:", issues, maxItemsToShow)
	writeList(&sb, "Warnings:", formatting.Warnings, 3)

	p.printBox("ATS READABILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the recommendations in priority order.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, strings.ToUpper(rec.Priority), rec.Title))
		sb.WriteString(fmt.Sprintf("   %s\n", rec.Action))
	}
	if len(recs) > count {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(recs)-count))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs one line per analyzed resume, in the given order.
func (p *Printer) PrintRanking(results []pipeline.BatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for i, r := range results {
		if r.Err != nil || r.Result == nil {
			sb.WriteString(fmt.Sprintf("#%d  %s  failed: %v\n", i+1, r.FileName, r.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("#%d  %-30s %5.1f\n", i+1, r.FileName, r.Result.JDMatchScore))
	}

	p.printBox("RANKED RESUMES", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
