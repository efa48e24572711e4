package types

// DocumentFormat identifies the container format of an uploaded resume
type DocumentFormat string

// Supported document formats
const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
	FormatDOC  DocumentFormat = "doc"
	FormatText DocumentFormat = "txt"
)

// ExtractedDocument is the plain text recovered from a resume file
type ExtractedDocument struct {
	Text      string         `json:"text"`
	Format    DocumentFormat `json:"format"`
	FileName  string         `json:"fileName,omitempty"`
	PageCount int            `json:"pageCount,omitempty"` // 0 when the container does not expose pages
	WordCount int            `json:"wordCount"`
	Bytes     []byte         `json:"-"`
}

// StructuredResume is the best-effort structured view of a resume
type StructuredResume struct {
	ContactInfo    ContactInfo      `json:"contactInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         ResumeSkills     `json:"skills"`
	Certifications []string         `json:"certifications"`
	Projects       []Project        `json:"projects"`
}

// ContactInfo holds contact fields; empty strings mean absent
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Address  string `json:"address"`
}

// WorkExperience is one position parsed from the experience section
type WorkExperience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Dates       string   `json:"dates"`
	Description []string `json:"description"`
}

// Education is one degree or institution entry
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       string `json:"dates"`
	GPA         string `json:"gpa,omitempty"`
}

// ResumeSkills groups skills found by fixed skill lists
type ResumeSkills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
	Languages []string `json:"languages"`
}

// All returns every skill across the four groups.
func (s ResumeSkills) All() []string {
	all := make([]string, 0, len(s.Technical)+len(s.Soft)+len(s.Tools)+len(s.Languages))
	all = append(all, s.Technical...)
	all = append(all, s.Soft...)
	all = append(all, s.Tools...)
	all = append(all, s.Languages...)
	return all
}

// Project is one entry from a projects section
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
