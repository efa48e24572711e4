// Package vocabulary holds the curated, versioned data tables the analyzers match against.
package vocabulary

import "github.com/jonathan/resume-matcher/internal/types"

// DefaultVersion identifies the built-in tables
const DefaultVersion = "2025.1"

// technicalTerms is the curated technical vocabulary, per category
var technicalTerms = map[types.Category][]string{
	types.CategoryProgrammingLanguages: {
		"javascript", "typescript", "python", "java", "c++", "c#", "go", "ruby", "php",
		"swift", "kotlin", "scala", "rust", "r", "matlab", "perl", "objective-c", "dart",
		"elixir", "haskell", "lua", "clojure", "groovy", "sql", "bash", "shell", "powershell",
		"html", "css", "sass", "vba", "fortran", "cobol", "julia", "f#", "erlang", "solidity",
	},
	types.CategoryFrameworks: {
		"react", "angular", "vue", "svelte", "next.js", "nuxt", "node.js", "express", "django",
		"flask", "fastapi", "spring", "spring boot", "rails", "ruby on rails", "laravel",
		"symfony", ".net", "asp.net", "jquery", "bootstrap", "tailwind", "redux", "tensorflow",
		"pytorch", "keras", "scikit-learn", "pandas", "numpy", "hibernate", "flutter",
		"react native", "electron", "ember", "nestjs", "jest", "mocha", "junit", "pytest",
		"selenium", "cypress",
	},
	types.CategoryTools: {
		"git", "github", "gitlab", "bitbucket", "jenkins", "docker", "kubernetes", "terraform",
		"ansible", "chef", "puppet", "jira", "confluence", "webpack", "babel", "npm", "yarn",
		"maven", "gradle", "circleci", "github actions", "grafana", "prometheus", "datadog",
		"splunk", "kibana", "logstash", "postman", "swagger", "figma", "tableau", "power bi",
		"airflow", "kafka", "rabbitmq", "nginx", "linux", "unix", "graphql", "grpc", "helm",
		"vagrant", "sonarqube",
	},
	types.CategoryPlatforms: {
		"aws", "azure", "gcp", "google cloud", "heroku", "vercel", "netlify", "firebase",
		"digitalocean", "salesforce", "shopify", "wordpress", "android", "ios", "openshift",
		"cloudflare", "lambda", "ec2", "s3", "databricks", "hadoop", "spark",
	},
	types.CategoryDatabases: {
		"mysql", "postgresql", "postgres", "mongodb", "redis", "sqlite", "oracle", "sql server",
		"mariadb", "cassandra", "dynamodb", "elasticsearch", "neo4j", "couchdb", "firestore",
		"snowflake", "bigquery", "redshift", "memcached", "influxdb", "cockroachdb",
	},
	types.CategoryMethodologies: {
		"agile", "scrum", "kanban", "waterfall", "devops", "ci/cd", "tdd", "bdd",
		"microservices", "lean", "six sigma", "pair programming", "code review", "oop",
		"functional programming", "mvc", "domain-driven design", "sre", "itil", "rest",
	},
}

// termPatterns overrides the default boundary pattern for terms that collide with
// ordinary English words. These patterns are case-sensitive.
var termPatterns = map[string]string{
	"go":      `\b(?:Go|Golang|golang)\b`,
	"r":       `(?:^|[\s,(/])(R)(?:$|[\s,)/.;])`,
	"rest":    `\b(?:REST|RESTful|restful)\b`,
	"spark":   `\b(?:Spark|Apache Spark)\b`,
	"lean":    `\bLean\b`,
	"swift":   `\bSwift\b`,
	"shell":   `\b(?:Shell|shell scripting|Shell scripting)\b`,
	"chef":    `\bChef\b`,
	"puppet":  `\bPuppet\b`,
	"oracle":  `\bOracle\b`,
	"lambda":  `\b(?:AWS Lambda|Lambda)\b`,
	"ember":   `\bEmber(?:\.js)?\b`,
	"express": `\b(?:Express|Express\.js|express\.js)\b`,
	"spring":  `\bSpring\b`,
	"rails":   `\bRails\b`,
}

// compoundTerms are multi-word technical phrases matched as a unit
var compoundTerms = []string{
	"machine learning", "deep learning", "artificial intelligence", "natural language processing",
	"computer vision", "data science", "data engineering", "data analysis", "big data",
	"cloud computing", "continuous integration", "continuous delivery", "continuous deployment",
	"test driven development", "object oriented programming", "version control",
	"distributed systems", "system design", "web development", "mobile development",
	"full stack", "front end", "back end", "user experience", "user interface",
	"project management", "software development", "software engineering", "unit testing",
	"integration testing", "api design", "rest api", "event driven", "infrastructure as code",
	"site reliability", "information security", "cyber security", "data structures",
	"data visualization", "quality assurance",
}

// techCoOccurrence is the fixed keyword list used by the score boost
var techCoOccurrence = []string{
	"javascript", "python", "java", "react", "node.js", "aws", "docker", "kubernetes",
	"sql", "typescript", "git", "agile",
}

// certificationKeywords mark professional certifications in resume text
var certificationKeywords = []string{
	"aws certified", "pmp", "cissp", "comptia", "ccna", "cka", "ckad", "certified scrum master",
	"csm", "itil", "six sigma", "google cloud certified", "azure certified", "oracle certified",
	"cpa", "cfa",
}
