package vocabulary

// skillCatalog lists common non-technical and general professional skills
var skillCatalog = []string{
	"communication", "leadership", "teamwork", "problem solving", "project management",
	"time management", "critical thinking", "collaboration", "analytical skills",
	"attention to detail", "customer service", "mentoring", "stakeholder management",
	"presentation", "negotiation", "budgeting", "strategic planning", "data analysis",
	"excel", "powerpoint", "sales", "marketing", "seo", "content writing", "copywriting",
	"research", "troubleshooting", "debugging", "documentation", "technical writing",
	"quality assurance", "security", "networking", "system administration", "ui design",
	"ux design", "product management", "business analysis", "requirements gathering",
	"risk management", "compliance", "accounting", "financial analysis", "recruiting",
	"training", "public speaking", "adaptability", "creativity", "organization",
	"multitasking", "decision making", "conflict resolution", "supply chain", "operations",
	"logistics", "machine learning", "data science", "cloud computing", "microservices",
	"api development",
}

// skillVariations maps a canonical skill to alternate spellings and close forms
var skillVariations = map[string][]string{
	"javascript":              {"js", "es6", "ecmascript", "node.js"},
	"typescript":              {"ts"},
	"python":                  {"py", "python3"},
	"go":                      {"golang"},
	"kubernetes":              {"k8s"},
	"postgresql":              {"postgres", "psql"},
	"mongodb":                 {"mongo"},
	"react":                   {"react.js", "reactjs"},
	"vue":                     {"vue.js", "vuejs"},
	"node.js":                 {"node", "nodejs"},
	"c#":                      {"csharp", "c sharp"},
	"c++":                     {"cpp"},
	"machine learning":        {"ml"},
	"artificial intelligence": {"ai"},
	"aws":                     {"amazon web services"},
	"gcp":                     {"google cloud", "google cloud platform"},
	"ci/cd":                   {"continuous integration", "continuous delivery", "continuous deployment"},
	"communication":           {"communicate", "communicating", "verbal", "written"},
	"leadership":              {"led", "leading", "managed team", "team lead"},
	"teamwork":                {"team player", "collaborative", "collaborated"},
	"problem solving":         {"problem-solving", "solve problems", "solved"},
	"project management":      {"managed projects", "pmp", "project manager"},
	"quality assurance":       {"qa"},
	"ux design":               {"user experience", "ux"},
	"ui design":               {"user interface", "ui"},
	"excel":                   {"spreadsheets", "microsoft excel"},
	"sql":                     {"structured query language", "mysql", "postgresql"},
	"mentoring":               {"mentored", "coached"},
	"public speaking":         {"presented", "presentations"},
	"api development":         {"rest api", "restful", "graphql"},
}

// techFamilies groups related technologies; a required term is partially
// satisfied by another member of its family.
var techFamilies = map[string][]string{
	"javascript":       {"typescript", "node.js", "react", "angular", "vue"},
	"python":           {"django", "flask", "fastapi", "pandas", "numpy"},
	"java":             {"spring", "spring boot", "kotlin", "scala", "hibernate"},
	"aws":              {"ec2", "s3", "lambda", "dynamodb"},
	"docker":           {"kubernetes", "helm", "openshift"},
	"sql":              {"mysql", "postgresql", "sql server", "oracle", "sqlite"},
	"react":            {"next.js", "redux", "react native"},
	"c#":               {".net", "asp.net"},
	"ruby":             {"rails", "ruby on rails"},
	"machine learning": {"tensorflow", "pytorch", "scikit-learn", "keras"},
	"gcp":              {"bigquery", "firebase", "google cloud"},
}

// Fixed lists used by the structured parser, matched by substring containment
var (
	resumeTechnicalSkills = []string{
		"javascript", "typescript", "python", "java", "c++", "c#", "golang", "ruby", "php",
		"swift", "kotlin", "scala", "rust", "sql", "html", "css", "react", "angular", "vue",
		"node.js", "django", "flask", "spring", "machine learning", "data analysis",
		"tensorflow", "pytorch", "pandas", "graphql", "rest api", "microservices",
	}
	resumeSoftSkills = []string{
		"communication", "leadership", "teamwork", "problem solving", "problem-solving",
		"critical thinking", "time management", "collaboration", "adaptability", "creativity",
		"mentoring", "negotiation", "presentation", "attention to detail", "organization",
	}
	resumeToolSkills = []string{
		"git", "docker", "kubernetes", "jenkins", "jira", "aws", "azure", "gcp", "terraform",
		"ansible", "linux", "excel", "tableau", "figma", "postman", "webpack", "grafana",
		"mysql", "postgresql", "mongodb", "redis",
	}
	resumeLanguageSkills = []string{
		"english", "spanish", "french", "german", "mandarin", "chinese", "japanese", "korean",
		"portuguese", "italian", "arabic", "hindi", "russian", "dutch",
	}
)
