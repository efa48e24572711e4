// Package steps provides stage definitions, dependency validation and stage
// execution tracking for the analysis pipeline.
package steps

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Stage categories
const (
	CategoryIngestion = "ingestion"
	CategoryAnalysis  = "analysis"
	CategoryScoring   = "scoring"
	CategoryReporting = "reporting"
)

// Stage names
const (
	StepExtractResume     = "extract_resume"
	StepNormalizeJob      = "normalize_job"
	StepExtractTerms      = "extract_terms"
	StepParseResume       = "parse_resume"
	StepSimilarity        = "similarity"
	StepKeywords          = "keywords"
	StepMatchSkills       = "match_skills"
	StepAnalyzeFormatting = "analyze_formatting"
	StepBestPractices     = "best_practices"
	StepScoreExperience   = "score_experience"
	StepScoreEducation    = "score_education"
	StepAggregate         = "aggregate"
	StepRecommend         = "recommend"
)

// Step statuses
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// StepDefinition defines metadata for a pipeline stage
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepResult represents the result of executing a stage
type StepResult struct {
	Step     string
	Status   string
	Duration time.Duration
	Error    error
}

// StepRegistry holds all stage definitions
var StepRegistry = map[string]StepDefinition{
	StepExtractResume: {
		Name:         StepExtractResume,
		Category:     CategoryIngestion,
		Dependencies: []string{},
	},
	StepNormalizeJob: {
		Name:         StepNormalizeJob,
		Category:     CategoryIngestion,
		Dependencies: []string{},
	},
	StepExtractTerms: {
		Name:         StepExtractTerms,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepExtractResume, StepNormalizeJob},
	},
	StepParseResume: {
		Name:         StepParseResume,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepExtractResume},
	},
	StepSimilarity: {
		Name:         StepSimilarity,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepExtractResume, StepNormalizeJob},
	},
	StepKeywords: {
		Name:         StepKeywords,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepExtractResume, StepNormalizeJob},
	},
	StepMatchSkills: {
		Name:         StepMatchSkills,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepExtractTerms},
	},
	StepAnalyzeFormatting: {
		Name:         StepAnalyzeFormatting,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepExtractResume},
	},
	StepBestPractices: {
		Name:         StepBestPractices,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepParseResume},
	},
	StepScoreExperience: {
		Name:         StepScoreExperience,
		Category:     CategoryScoring,
		Dependencies: []string{StepParseResume, StepNormalizeJob},
	},
	StepScoreEducation: {
		Name:         StepScoreEducation,
		Category:     CategoryScoring,
		Dependencies: []string{StepParseResume, StepNormalizeJob},
	},
	StepAggregate: {
		Name:         StepAggregate,
		Category:     CategoryScoring,
		Dependencies: []string{StepSimilarity, StepKeywords, StepMatchSkills, StepScoreExperience, StepScoreEducation},
	},
	StepRecommend: {
		Name:         StepRecommend,
		Category:     CategoryReporting,
		Dependencies: []string{StepAggregate, StepAnalyzeFormatting, StepBestPractices},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// Run tracks the stages executed for one analysis
type Run struct {
	ID        uuid.UUID
	Results   []StepResult
	completed map[string]bool
}

// NewRun starts tracking a new analysis run.
func NewRun() *Run {
	return &Run{ID: uuid.New(), completed: make(map[string]bool)}
}

// ValidateDependencies checks if all required dependencies for a stage are completed
func (r *Run) ValidateDependencies(stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !r.completed[dep] {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return &DependencyError{Step: stepName, MissingDependencies: missing}
	}
	return nil
}

// Execute runs fn as stepName once its dependencies have completed and
// records the outcome.
func (r *Run) Execute(stepName string, fn func() error) error {
	if err := r.ValidateDependencies(stepName); err != nil {
		return err
	}

	start := time.Now()
	err := fn()
	result := StepResult{Step: stepName, Status: StatusCompleted, Duration: time.Since(start)}
	if err != nil {
		result.Status = StatusFailed
		result.Error = err
	} else {
		r.completed[stepName] = true
	}
	r.Results = append(r.Results, result)
	return err
}

// Completed reports whether stepName finished successfully.
func (r *Run) Completed(stepName string) bool {
	return r.completed[stepName]
}

// AvailableSteps returns the pending stages whose dependencies are met, sorted by name
func (r *Run) AvailableSteps() []string {
	var available []string
	for name := range StepRegistry {
		if r.completed[name] {
			continue
		}
		if r.ValidateDependencies(name) == nil {
			available = append(available, name)
		}
	}
	sort.Strings(available)
	return available
}

// BlockedSteps returns the pending stages whose dependencies are not met, sorted by name
func (r *Run) BlockedSteps() []string {
	var blocked []string
	for name := range StepRegistry {
		if r.completed[name] {
			continue
		}
		if r.ValidateDependencies(name) != nil {
			blocked = append(blocked, name)
		}
	}
	sort.Strings(blocked)
	return blocked
}
