package vocabulary

// stopWords are removed before stemming and n-gram construction
var stopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but",
	"by", "can", "could", "did", "do", "does", "doing", "down", "during", "each", "few", "for",
	"from", "further", "had", "has", "have", "having", "he", "her", "here", "hers", "herself",
	"him", "himself", "his", "how", "i", "if", "in", "into", "is", "it", "its", "itself", "just",
	"me", "more", "most", "my", "myself", "no", "nor", "not", "now", "of", "off", "on", "once",
	"only", "or", "other", "our", "ours", "ourselves", "out", "over", "own", "same", "she",
	"should", "so", "some", "such", "than", "that", "the", "their", "theirs", "them",
	"themselves", "then", "there", "these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what", "when", "where", "which",
	"while", "who", "whom", "why", "will", "with", "would", "you", "your", "yours", "yourself",
	"yourselves", "shall", "may", "might", "must", "also", "etc", "via", "per",
}

// commonWords is the blocklist of ordinary English and job-posting filler words
// that must never be reported as technical keywords.
var commonWords = []string{
	// job-posting boilerplate
	"experience", "experienced", "years", "year", "work", "working", "worked", "team", "teams",
	"strong", "ability", "able", "skills", "skill", "knowledge", "role", "position", "job",
	"company", "candidate", "candidates", "looking", "seeking", "join", "opportunity",
	"responsibilities", "responsibility", "requirements", "required", "requirement",
	"preferred", "plus", "bonus", "including", "include", "includes", "etc", "new", "good",
	"great", "excellent", "well", "based", "using", "use", "used", "help", "helping", "helped",
	"make", "making", "made", "within", "across", "like", "least", "minimum", "must", "will",
	"need", "needs", "needed", "want", "environment", "environments", "business", "day",
	"days", "time", "full", "part", "high", "level", "levels", "related", "relevant", "degree",
	"equivalent", "field", "fields", "apply", "applicants", "benefits", "salary", "remote",
	"office", "hybrid", "location", "culture", "values", "mission", "world", "people",
	"customers", "customer", "clients", "client", "products", "product", "services",
	"service", "solutions", "solution", "support", "supporting", "provide", "providing",
	"ensure", "ensuring", "develop", "developing", "developed", "development", "build",
	"building", "built", "create", "creating", "created", "design", "designing", "designed",
	"implement", "implementing", "implemented", "maintain", "maintaining", "maintained",
	"manage", "managing", "managed", "lead", "leading", "led", "drive", "driving", "own",
	"ownership", "collaborate", "collaborating", "communicate", "understanding",
	"understand", "familiarity", "familiar", "proficiency", "proficient", "expertise",
	"hands", "hands-on", "background", "track", "record", "proven", "demonstrated",
	"successful", "success", "quality", "best", "practices", "practice", "processes",
	"process", "systems", "system", "application", "applications", "software", "technology",
	"technologies", "tools", "tool", "platform", "platforms", "data", "code", "engineer",
	"engineers", "engineering", "developer", "developers", "senior", "junior", "staff",
	"principal", "manager", "management", "other", "others", "one", "two", "three", "four",
	"five", "first", "second", "key", "core", "various", "multiple", "several", "many",
	"every", "each", "all", "any", "new", "current", "currently", "future", "large",
	"small", "fast", "paced", "fast-paced", "dynamic", "passionate", "motivated", "self",
	"detail", "oriented", "detail-oriented", "problem", "problems", "solving", "solve",
	"complex", "scalable", "reliable", "robust", "efficient", "performance", "features",
	"feature", "projects", "project", "stakeholders", "partners", "cross", "functional",
	"cross-functional", "responsible", "duties", "tasks", "task", "including", "ideal",
	"ideally", "bachelor", "bachelors", "master", "masters", "phd", "university", "college",
	"equal", "employer", "opportunity", "gender", "race", "religion", "age", "status",
	"veteran", "disability", "please", "send", "resume", "cover", "letter", "contact",
	"email", "phone", "apply", "today", "us", "our", "we", "you", "your", "they", "get",
	"got", "take", "taking", "give", "given", "see", "know", "think", "way", "ways", "thing",
	"things", "still", "even", "much", "better", "well-versed", "end", "start", "started",
	"grow", "growth", "growing", "learn", "learning", "improve", "improving", "improved",
	"increase", "increased", "reduce", "reduced", "results", "result", "impact", "goals",
	"goal", "needs", "write", "writing", "written", "clean", "test", "testing", "tests",
}
