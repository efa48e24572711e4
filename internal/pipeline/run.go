// Package pipeline provides the high-level orchestration of a resume against
// job description analysis.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/pipeline/steps"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/recommend"
	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/terms"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/validation"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Defaults for Options
const (
	DefaultTopKeywords             = 30
	DefaultMinJobDescriptionLength = 50
)

// Options configures an Analyzer
type Options struct {
	Tables                  *vocabulary.Tables
	TopKeywords             int
	MinJobDescriptionLength int
	// Logger receives stage timings when set
	Logger *log.Logger
}

// Analyzer runs the analysis pipeline. It holds no per-request state and is
// safe for concurrent use.
type Analyzer struct {
	tables      *vocabulary.Tables
	matcher     *skills.Matcher
	topKeywords int
	minJobChars int
	logger      *log.Logger
}

// NewAnalyzer creates an Analyzer, filling unset options with defaults.
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Tables == nil {
		opts.Tables = vocabulary.Default()
	}
	if opts.TopKeywords <= 0 {
		opts.TopKeywords = DefaultTopKeywords
	}
	if opts.MinJobDescriptionLength <= 0 {
		opts.MinJobDescriptionLength = DefaultMinJobDescriptionLength
	}
	return &Analyzer{
		tables:      opts.Tables,
		matcher:     skills.NewMatcher(opts.Tables),
		topKeywords: opts.TopKeywords,
		minJobChars: opts.MinJobDescriptionLength,
		logger:      opts.Logger,
	}
}

// Analyze extracts the resume text from data and analyzes it against the job
// description. The job description is checked before any extraction happens.
func (a *Analyzer) Analyze(ctx context.Context, data []byte, format types.DocumentFormat, fileName, jobText string) (*types.AnalysisResult, error) {
	if err := a.checkJobDescription(jobText); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	run := steps.NewRun()
	var doc *types.ExtractedDocument
	err := run.Execute(steps.StepExtractResume, func() error {
		var err error
		doc, err = ingestion.Extract(data, format, fileName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a.analyze(run, doc, jobText)
}

// AnalyzeText analyzes resume text that has already been extracted.
func (a *Analyzer) AnalyzeText(ctx context.Context, resumeText, jobText string) (*types.AnalysisResult, error) {
	if err := a.checkJobDescription(jobText); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	run := steps.NewRun()
	var doc *types.ExtractedDocument
	err := run.Execute(steps.StepExtractResume, func() error {
		var err error
		doc, err = ingestion.Extract([]byte(resumeText), types.FormatText, "")
		return err
	})
	if err != nil {
		return nil, err
	}
	// the text did not come from a container, so page counts are estimated
	doc.Bytes = nil
	return a.analyze(run, doc, jobText)
}

func (a *Analyzer) checkJobDescription(jobText string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(jobText))
	if length < a.minJobChars {
		return &InsufficientJobDescriptionError{Length: length, Minimum: a.minJobChars}
	}
	return nil
}

// analysis holds the intermediate results of one run
type analysis struct {
	doc         *types.ExtractedDocument
	jobText     string
	jobTerms    types.TermSet
	resumeTerms types.TermSet
	similarity  types.SimilarityScores
	jobKeywords []types.Keyword
	keywords    types.KeywordMatch
	structured  types.StructuredResume
	skills      skills.Result
	formatting  types.FormattingResult
	practices   types.ATSBestPractices
	experience  ranking.ExperienceMatch
	education   ranking.EducationMatch
	outcome     ranking.Outcome
	recs        []types.Recommendation
}

func (a *Analyzer) analyze(run *steps.Run, doc *types.ExtractedDocument, jobText string) (*types.AnalysisResult, error) {
	st := &analysis{doc: doc}
	resumeText := doc.Text

	stages := []struct {
		name string
		fn   func()
	}{
		{steps.StepNormalizeJob, func() { st.jobText = ingestion.NormalizeJobDescription(jobText) }},
		{steps.StepExtractTerms, func() {
			st.jobTerms = terms.ExtractTechnical(st.jobText, a.tables)
			st.resumeTerms = terms.ExtractTechnical(resumeText, a.tables)
		}},
		{steps.StepParseResume, func() { st.structured = parsing.Parse(resumeText, a.tables) }},
		{steps.StepSimilarity, func() { st.similarity = similarity.Compute(resumeText, st.jobText, a.tables) }},
		{steps.StepKeywords, func() {
			st.jobKeywords = similarity.ExtractKeywords(st.jobText, a.tables, a.topKeywords)
			st.keywords = similarity.WeightedKeywordMatch(st.jobKeywords, similarity.KeywordSet(resumeText, a.tables))
		}},
		{steps.StepMatchSkills, func() {
			st.skills = a.matcher.Match(st.jobText, resumeText, st.jobTerms, st.resumeTerms)
		}},
		{steps.StepAnalyzeFormatting, func() { st.formatting = validation.AnalyzeFormatting(doc.Bytes, resumeText, a.tables) }},
		{steps.StepBestPractices, func() { st.practices = ats.AnalyzeBestPractices(resumeText, st.structured, a.tables) }},
		{steps.StepScoreExperience, func() {
			st.experience = ranking.MatchExperience(st.jobText, resumeText, st.structured.WorkExperience)
		}},
		{steps.StepScoreEducation, func() {
			st.education = ranking.MatchEducation(st.jobText, resumeText, st.structured.Education, a.tables)
		}},
		{steps.StepAggregate, func() {
			st.outcome = ranking.Aggregate(ranking.Inputs{
				Similarity:   st.similarity,
				KeywordMatch: st.keywords,
				Skills:       st.skills,
				Experience:   st.experience,
				Education:    st.education,
				Boost:        ranking.CountBoostSignals(st.jobText, resumeText, a.tables),
			})
		}},
		{steps.StepRecommend, func() {
			st.recs = recommend.Generate(recommend.Input{
				Resume:        st.structured,
				Formatting:    st.formatting,
				BestPractices: st.practices,
				Technical:     st.skills.Technical,
				Keywords:      st.keywords,
				Experience:    st.outcome.Breakdown.ExperienceYears,
				Education:     st.outcome.Breakdown.EducationLevels,
			})
		}},
	}

	for _, stage := range stages {
		fn := stage.fn
		if err := run.Execute(stage.name, func() error { fn(); return nil }); err != nil {
			a.logRun(run)
			return nil, fmt.Errorf("analysis stage failed: %w", err)
		}
	}
	a.logRun(run)
	// every registered step must have run
	if pending := run.AvailableSteps(); len(pending) > 0 {
		return nil, fmt.Errorf("analysis incomplete, pending steps: %s", strings.Join(pending, ", "))
	}

	return st.result(), nil
}

func (st *analysis) result() *types.AnalysisResult {
	return &types.AnalysisResult{
		JDMatchScore:        st.outcome.FinalScore,
		ATSScore:            st.formatting.Score,
		ATSReadabilityScore: st.formatting.Score,
		BaseScore:           st.outcome.BaseScore,
		Breakdown:           st.outcome.Breakdown,
		Similarity:          st.similarity,
		KeywordMatch:        st.keywords,
		TechnicalMatch:      st.skills.Technical,
		SkillsMatch:         st.skills.FullText,
		ExperienceMatch:     st.experience.Score,
		EducationMatch:      st.education.Score,
		StructuredResume:    st.structured,
		Formatting:          st.formatting,
		ATSBestPractices:    st.practices,
		Recommendations:     st.recs,
		ResumeTerms:         st.resumeTerms,
		JobTerms:            st.jobTerms,
		JobKeywords:         st.jobKeywords,
		WordCount:           st.doc.WordCount,
		PageCount:           st.formatting.PageCount,
		FileName:            st.doc.FileName,
		Format:              st.doc.Format,
	}
}

func (a *Analyzer) logRun(run *steps.Run) {
	if a.logger == nil {
		return
	}
	for _, r := range run.Results {
		a.logger.Printf("[analyze %s] %s %s in %v", run.ID.String()[:8], r.Step, r.Status, r.Duration)
	}
	if blocked := run.BlockedSteps(); len(blocked) > 0 {
		a.logger.Printf("[analyze %s] skipped: %s", run.ID.String()[:8], strings.Join(blocked, ", "))
	}
}
