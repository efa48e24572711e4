package types

// SimilarityScores holds the lexical similarity measures between two texts, each in [0,1]
type SimilarityScores struct {
	Jaccard       float64 `json:"jaccard"`
	Cosine        float64 `json:"cosine"`
	BigramOverlap float64 `json:"bigramOverlap"`
	Combined      float64 `json:"combined"`
}

// Keyword is a term with its importance in a single document
type Keyword struct {
	Term       string  `json:"term"`
	Importance float64 `json:"importance"`
}

// KeywordMatch reports how well resume keywords cover the job's top keywords
type KeywordMatch struct {
	Score   float64  `json:"score"` // 0-100
	Matched []string `json:"matched"`
	Partial []string `json:"partial"`
	Missing []string `json:"missing"`
}

// TermMatch records how a required term was found among the resume terms of
// its category. MatchType is MatchExact or MatchFuzzy.
type TermMatch struct {
	RequiredTerm string  `json:"requiredTerm"`
	FoundTerm    string  `json:"foundTerm"`
	MatchType    string  `json:"matchType"`
	Confidence   float64 `json:"confidence"` // 0-1
}

// CategoryMatch is the per-category result of the category strategy
type CategoryMatch struct {
	Required  []string    `json:"required"`
	Matched   []TermMatch `json:"matched"`
	Missing   []string    `json:"missing"`
	MatchRate float64     `json:"matchRate"` // 0-100
}

// Requirement severities for missing technical terms
const (
	SeverityCritical   = "critical"
	SeverityImportant  = "important"
	SeverityNiceToHave = "niceToHave"
)

// MissingRequirement is a job term the resume lacks
type MissingRequirement struct {
	Type string `json:"type"` // category name
	Term string `json:"term"`
}

// MissingRequirements buckets missing job terms by severity
type MissingRequirements struct {
	Critical   []MissingRequirement `json:"critical"`
	Important  []MissingRequirement `json:"important"`
	NiceToHave []MissingRequirement `json:"niceToHave"`
}

// RelatedMatch records a required term satisfied through a technology family
type RelatedMatch struct {
	RequiredTerm string `json:"requiredTerm"`
	FoundTerm    string `json:"foundTerm"`
	Relationship string `json:"relationship"`
}

// TechnicalMatch is the output of the category strategy
type TechnicalMatch struct {
	Categories          map[Category]CategoryMatch `json:"categories"`
	MissingRequirements MissingRequirements        `json:"missingRequirements"`
	RelatedMatches      []RelatedMatch             `json:"relatedMatches"`
	OverallScore        float64                    `json:"overallScore"` // 0-100
}

// Skill match types
const (
	MatchExact     = "exact"
	MatchVariation = "variation"
	MatchFuzzy     = "fuzzy"
)

// SkillMatch is one required skill found in the resume
type SkillMatch struct {
	Skill       string  `json:"skill"`
	MatchType   string  `json:"matchType"`
	MatchedText string  `json:"matchedText"`
	Confidence  float64 `json:"confidence"`
	Context     string  `json:"context,omitempty"`
}

// SkillsMatch is the output of the full-text strategy
type SkillsMatch struct {
	Matched           []SkillMatch `json:"matched"`
	Missing           []string     `json:"missing"`
	TotalRequired     int          `json:"totalRequired"`
	OverallMatchScore float64      `json:"overallMatchScore"` // 0-100
}

// FormattingIssue is a single formatting problem found in the resume
type FormattingIssue struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Penalty  int    `json:"penalty"`
}

// FormattingResult is the ATS readability assessment of a resume
type FormattingResult struct {
	Score           float64           `json:"score"` // 0-100
	PageCount       int               `json:"pageCount"`
	PageCountSource string            `json:"pageCountSource"` // "document" or "estimated"
	WordCount       int               `json:"wordCount"`
	Issues          []FormattingIssue `json:"issues"`
	Strengths       []string          `json:"strengths"`
	Warnings        []string          `json:"warnings"`
	QualityPoints   int               `json:"qualityPoints"`
	PenaltyPoints   int               `json:"penaltyPoints"`
}

// SectionScore is the best-practices assessment of one resume section
type SectionScore struct {
	Score           float64  `json:"score"` // 0-100
	Present         bool     `json:"present"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// ATSCompatibility summarises machine-readability factors
type ATSCompatibility struct {
	Score   float64  `json:"score"`
	Factors []string `json:"factors"`
}

// ATSBestPractices is the per-section best-practices report
type ATSBestPractices struct {
	OverallScore     float64                 `json:"overallScore"`
	Sections         map[string]SectionScore `json:"sections"`
	Strengths        []string                `json:"strengths"`
	ATSCompatibility ATSCompatibility        `json:"atsCompatibility"`
}

// Recommendation priorities, highest first
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Recommendation is an actionable suggestion for improving the resume
type Recommendation struct {
	Priority    string   `json:"priority"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Impact      string   `json:"impact"`
	Examples    []string `json:"examples,omitempty"`
}

// ScoreComponent is one weighted input to the match score
type ScoreComponent struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"` // 0-1
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"` // points on the 0-100 scale
	Explanation  string  `json:"explanation"`
}

// ScoreBreakdown explains how jdMatchScore was assembled
type ScoreBreakdown struct {
	Components      []ScoreComponent `json:"components"`
	BaseScore       float64          `json:"baseScore"`
	SkewedScore     float64          `json:"skewedScore"`
	Boost           float64          `json:"boost"`
	SkillSource     string           `json:"skillSource"` // "fullText" or "category"
	BoostReasons    []string         `json:"boostReasons"`
	ExperienceYears ExperienceYears  `json:"experienceYears"`
	EducationLevels EducationLevels  `json:"educationLevels"`
}

// ExperienceYears records stated and required years of experience
type ExperienceYears struct {
	Required int `json:"required"`
	Stated   int `json:"stated"`
}

// EducationLevels records degree levels (0 none, 1 diploma .. 5 doctorate)
type EducationLevels struct {
	Required int `json:"required"`
	Attained int `json:"attained"`
}

// AnalysisResult is the full resume against job description report
type AnalysisResult struct {
	JDMatchScore        float64          `json:"jdMatchScore"`
	ATSScore            float64          `json:"atsScore"`
	ATSReadabilityScore float64          `json:"atsReadabilityScore"`
	BaseScore           float64          `json:"baseScore"`
	Breakdown           ScoreBreakdown   `json:"breakdown"`
	Similarity          SimilarityScores `json:"similarity"`
	KeywordMatch        KeywordMatch     `json:"keywordMatch"`
	TechnicalMatch      TechnicalMatch   `json:"technicalMatch"`
	SkillsMatch         *SkillsMatch     `json:"skillsMatch"`
	ExperienceMatch     float64          `json:"experienceMatch"`
	EducationMatch      float64          `json:"educationMatch"`
	StructuredResume    StructuredResume `json:"structuredResume"`
	Formatting          FormattingResult `json:"formatting"`
	ATSBestPractices    ATSBestPractices `json:"atsBestPractices"`
	Recommendations     []Recommendation `json:"recommendations"`
	ResumeTerms         TermSet          `json:"resumeTerms"`
	JobTerms            TermSet          `json:"jobTerms"`
	JobKeywords         []Keyword        `json:"jobKeywords"`
	WordCount           int              `json:"wordCount"`
	PageCount           int              `json:"pageCount"`
	FileName            string           `json:"fileName,omitempty"`
	Format              DocumentFormat   `json:"format"`
}
