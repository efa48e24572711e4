// Package recommend turns the gaps found by the analyzers into prioritised,
// actionable recommendations.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Thresholds that trigger rules
const (
	lowKeywordScore      = 50.0
	moderateKeywordScore = 70.0
	weakSectionScore     = 60.0
	poorFormattingScore  = 60.0
	maxRecommendedPages  = 2
	minRecommendedWords  = 300
	maxExamples          = 5
)

// priorityRank orders priorities for the final sort, highest first
var priorityRank = map[string]int{
	types.PriorityCritical: 4,
	types.PriorityHigh:     3,
	types.PriorityMedium:   2,
	types.PriorityLow:      1,
}

// Input is everything the rules look at
type Input struct {
	Resume        types.StructuredResume
	Formatting    types.FormattingResult
	BestPractices types.ATSBestPractices
	Technical     types.TechnicalMatch
	Keywords      types.KeywordMatch
	Experience    types.ExperienceYears
	Education     types.EducationLevels
}

// rule inspects the input and reports one recommendation, or false when the
// gap it looks for is absent
type rule func(in Input) (types.Recommendation, bool)

// rules run in this order; ties in priority keep it
var rules = []rule{
	contactRule,
	criticalSkillsRule,
	experienceSectionRule,
	importantSkillsRule,
	keywordRule,
	skillsSectionRule,
	experienceYearsRule,
	summaryRule,
	educationRule,
	achievementsRule,
	actionVerbsRule,
	lengthRule,
	formattingRule,
	locationRule,
}

// Generate applies every rule independently and returns the recommendations
// sorted by priority, highest first. Recommendations of equal priority keep
// the order in which they were found.
func Generate(in Input) []types.Recommendation {
	recs := []types.Recommendation{}
	for _, r := range rules {
		if rec, ok := r(in); ok {
			recs = append(recs, rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] > priorityRank[recs[j].Priority]
	})
	return recs
}

func section(in Input, name string) (types.SectionScore, bool) {
	s, ok := in.BestPractices.Sections[name]
	return s, ok
}

func contactRule(in Input) (types.Recommendation, bool) {
	c := in.Resume.ContactInfo
	var missing []string
	if c.Email == "" {
		missing = append(missing, "email address")
	}
	if c.Phone == "" {
		missing = append(missing, "phone number")
	}
	if len(missing) == 0 {
		return types.Recommendation{}, false
	}
	priority := types.PriorityHigh
	if len(missing) == 2 {
		priority = types.PriorityCritical
	}
	return types.Recommendation{
		Priority:    priority,
		Category:    "contact",
		Title:       "Complete Contact Information",
		Message:     "Your resume is missing: " + strings.Join(missing, ", "),
		Description: "Recruiters and ATS systems need a way to reach you. Resumes without an email or phone number are often discarded.",
		Action:      "Add your " + strings.Join(missing, " and ") + " to the header of your resume",
		Impact:      "Ensures recruiters can contact you",
		Examples:    []string{"jane.doe@email.com | (555) 123-4567 | linkedin.com/in/janedoe"},
	}, true
}

func criticalSkillsRule(in Input) (types.Recommendation, bool) {
	missing := in.Technical.MissingRequirements.Critical
	if len(missing) == 0 {
		return types.Recommendation{}, false
	}
	terms := requirementTerms(missing)
	return types.Recommendation{
		Priority:    types.PriorityCritical,
		Category:    "skills",
		Title:       "Add Required Programming Languages",
		Message:     fmt.Sprintf("The job requires %d programming language(s) not found in your resume", len(missing)),
		Description: "Programming languages are usually hard requirements and are the first terms an ATS filters on.",
		Action:      "If you have experience with " + strings.Join(terms, ", ") + ", name it explicitly in your skills and experience",
		Impact:      "Directly raises the technical match score",
		Examples:    limit(terms),
	}, true
}

func importantSkillsRule(in Input) (types.Recommendation, bool) {
	missing := in.Technical.MissingRequirements.Important
	if len(missing) == 0 {
		return types.Recommendation{}, false
	}
	terms := requirementTerms(missing)
	return types.Recommendation{
		Priority:    types.PriorityHigh,
		Category:    "skills",
		Title:       "Cover Key Technologies",
		Message:     fmt.Sprintf("%d framework, database or platform requirement(s) are missing", len(missing)),
		Description: "Frameworks, databases and platforms named in the job description weigh heavily in keyword screening.",
		Action:      "Mention the technologies you have used from: " + strings.Join(limit(terms), ", "),
		Impact:      "Improves the skills and keyword match",
		Examples:    limit(terms),
	}, true
}

func experienceSectionRule(in Input) (types.Recommendation, bool) {
	if len(in.Resume.WorkExperience) > 0 {
		return types.Recommendation{}, false
	}
	if s, ok := section(in, ats.SectionExperience); ok && s.Present {
		return types.Recommendation{}, false
	}
	return types.Recommendation{
		Priority:    types.PriorityCritical,
		Category:    "experience",
		Title:       "Add Work Experience",
		Message:     "No work experience section was found",
		Description: "ATS systems look for a clearly labelled experience section with titles, companies and dates.",
		Action:      "Add an \"Experience\" section listing each position with dates and 3-5 bullet points",
		Impact:      "Makes your history visible to ATS parsing",
		Examples:    []string{"Software Engineer, Acme Corp | Jan 2020 - Present"},
	}, true
}

func keywordRule(in Input) (types.Recommendation, bool) {
	score := in.Keywords.Score
	if score >= moderateKeywordScore {
		return types.Recommendation{}, false
	}
	priority := types.PriorityMedium
	if score < lowKeywordScore {
		priority = types.PriorityHigh
	}
	return types.Recommendation{
		Priority:    priority,
		Category:    "keywords",
		Title:       "Increase Keyword Alignment",
		Message:     fmt.Sprintf("Only %.0f%% of the job's key terms appear in your resume", score),
		Description: "ATS ranking relies on the overlap between your wording and the job description.",
		Action:      "Mirror the job description's terminology where it honestly describes your experience",
		Impact:      "Raises the keyword and semantic match scores",
		Examples:    limit(in.Keywords.Missing),
	}, true
}

func skillsSectionRule(in Input) (types.Recommendation, bool) {
	s, ok := section(in, ats.SectionSkills)
	if !ok || (s.Present && s.Score >= weakSectionScore) {
		return types.Recommendation{}, false
	}
	title := "Strengthen Your Skills Section"
	if !s.Present {
		title = "Add a Skills Section"
	}
	return types.Recommendation{
		Priority:    types.PriorityHigh,
		Category:    "skills",
		Title:       title,
		Message:     fmt.Sprintf("Skills section scored %.0f/100", s.Score),
		Description: "A dedicated skills section is the easiest place for an ATS to find your technologies.",
		Action:      "Add a \"Skills\" section grouping languages, frameworks and tools",
		Impact:      "Improves skill detection",
		Examples:    []string{"Languages: Go, Python, SQL", "Tools: Docker, Kubernetes, Terraform"},
	}, true
}

func experienceYearsRule(in Input) (types.Recommendation, bool) {
	if in.Experience.Required == 0 || in.Experience.Stated >= in.Experience.Required {
		return types.Recommendation{}, false
	}
	return types.Recommendation{
		Priority:    types.PriorityMedium,
		Category:    "experience",
		Title:       "Highlight Relevant Experience",
		Message:     fmt.Sprintf("The job asks for %d years; your resume shows %d", in.Experience.Required, in.Experience.Stated),
		Description: "Screeners compare stated years of experience with the requirement.",
		Action:      "State your total years of relevant experience in the summary and include internships or freelance work",
		Impact:      "Improves the experience match",
		Examples:    []string{fmt.Sprintf("%d+ years of experience building ...", max(in.Experience.Stated, 1))},
	}, true
}

func summaryRule(in Input) (types.Recommendation, bool) {
	if in.Resume.Summary != "" {
		return types.Recommendation{}, false
	}
	return types.Recommendation{
		Priority:    types.PriorityMedium,
		Category:    "summary",
		Title:       "Add a Professional Summary",
		Message:     "No professional summary was found",
		Description: "A short summary at the top gives recruiters and ATS systems your focus and key skills at a glance.",
		Action:      "Write 2-4 sentences naming your role, years of experience and strongest technologies",
		Impact:      "Adds keyword-rich context at the top of the resume",
		Examples:    []string{"Backend engineer with 6 years of experience building Go services on AWS."},
	}, true
}

func educationRule(in Input) (types.Recommendation, bool) {
	gap := in.Education.Required > 0 && in.Education.Attained < in.Education.Required
	listed := len(in.Resume.Education) > 0
	if s, ok := section(in, ats.SectionEducation); ok && s.Present {
		listed = true
	}
	if listed && !gap {
		return types.Recommendation{}, false
	}
	priority := types.PriorityMedium
	message := "No education entries were found"
	if gap {
		priority = types.PriorityHigh
		message = "The job mentions a degree your resume does not show"
	}
	return types.Recommendation{
		Priority:    priority,
		Category:    "education",
		Title:       "Clarify Your Education",
		Message:     message,
		Description: "Degree filters are common in ATS screening; list degree, field and institution on separate, clear lines.",
		Action:      "Add an \"Education\" section with degree, institution and graduation year, plus relevant certifications",
		Impact:      "Prevents being filtered out on education requirements",
		Examples:    []string{"B.S. Computer Science, State University, 2018"},
	}, true
}

func achievementsRule(in Input) (types.Recommendation, bool) {
	s, ok := section(in, ats.SectionAchievements)
	if !ok || s.Score >= weakSectionScore {
		return types.Recommendation{}, false
	}
	return types.Recommendation{
		Priority:    types.PriorityMedium,
		Category:    "achievements",
		Title:       "Quantify Your Achievements",
		Message:     "Few of your bullet points include measurable results",
		Description: "Numbers make impact concrete and stand out to both ATS ranking and human reviewers.",
		Action:      "Add percentages, amounts, counts or time saved to your strongest bullets",
		Impact:      "Makes accomplishments more persuasive",
		Examples:    []string{"Reduced API latency by 40%", "Grew active users from 10K to 50K in 6 months"},
	}, true
}

func actionVerbsRule(in Input) (types.Recommendation, bool) {
	s, ok := section(in, ats.SectionActionVerbs)
	if !ok || s.Score >= weakSectionScore {
		return types.Recommendation{}, false
	}
	return types.Recommendation{
		Priority:    types.PriorityMedium,
		Category:    "language",
		Title:       "Use Stronger Action Verbs",
		Message:     "Your bullets rely on passive or weak phrasing",
		Description: "Phrases like \"responsible for\" or \"helped with\" hide what you achieved.",
		Action:      "Start each bullet with a strong verb and state the outcome",
		Impact:      "Makes your contributions clearer",
		Examples:    []string{"Responsible for deployments -> Automated deployments, cutting release time by 60%"},
	}, true
}

func lengthRule(in Input) (types.Recommendation, bool) {
	f := in.Formatting
	switch {
	case f.PageCount > maxRecommendedPages:
		priority := types.PriorityMedium
		if f.PageCount > maxRecommendedPages+1 {
			priority = types.PriorityHigh
		}
		return types.Recommendation{
			Priority:    priority,
			Category:    "length",
			Title:       "Shorten Your Resume",
			Message:     fmt.Sprintf("Your resume is %d pages; 1-2 pages is recommended", f.PageCount),
			Description: "Long resumes dilute your strongest points and some ATS systems truncate them.",
			Action:      "Cut older roles to one line each and remove content unrelated to the job",
			Impact:      "Keeps reviewers focused on relevant experience",
		}, true
	case f.WordCount > 0 && f.WordCount < minRecommendedWords:
		return types.Recommendation{
			Priority:    types.PriorityMedium,
			Category:    "length",
			Title:       "Expand Your Resume",
			Message:     fmt.Sprintf("Your resume has only %d words", f.WordCount),
			Description: "Very short resumes give the ATS too few terms to match against the job.",
			Action:      "Describe projects, responsibilities and results in more detail",
			Impact:      "Gives the ATS more relevant content to match",
		}, true
	}
	return types.Recommendation{}, false
}

func formattingRule(in Input) (types.Recommendation, bool) {
	f := in.Formatting
	if f.Score >= poorFormattingScore {
		return types.Recommendation{}, false
	}
	var problems []string
	for _, issue := range f.Issues {
		problems = append(problems, issue.Message)
	}
	return types.Recommendation{
		Priority:    types.PriorityHigh,
		Category:    "formatting",
		Title:       "Simplify Formatting",
		Message:     fmt.Sprintf("ATS readability scored %.0f/100", f.Score),
		Description: "Tables, images, unusual fonts and repeated headers can scramble ATS parsing.",
		Action:      "Use a single-column layout with standard headings and simple bullets",
		Impact:      "Improves how reliably an ATS reads your resume",
		Examples:    limit(problems),
	}, true
}

func locationRule(in Input) (types.Recommendation, bool) {
	if in.Resume.ContactInfo.Address != "" {
		return types.Recommendation{}, false
	}
	return types.Recommendation{
		Priority:    types.PriorityLow,
		Category:    "contact",
		Title:       "Add Your Location",
		Message:     "No city or state was found",
		Description: "Many ATS searches filter candidates by location.",
		Action:      "Add your city and state (or \"Remote\") next to your contact details",
		Impact:      "Keeps you in location-filtered searches",
		Examples:    []string{"Austin, TX"},
	}, true
}

func requirementTerms(reqs []types.MissingRequirement) []string {
	terms := make([]string, 0, len(reqs))
	for _, r := range reqs {
		terms = append(terms, r.Term)
	}
	return terms
}

func limit(items []string) []string {
	if len(items) > maxExamples {
		return items[:maxExamples]
	}
	return items
}
