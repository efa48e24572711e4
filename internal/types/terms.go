// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category names a technical vocabulary bucket
type Category string

// Technical vocabulary categories
const (
	CategoryProgrammingLanguages Category = "programmingLanguages"
	CategoryFrameworks           Category = "frameworks"
	CategoryTools                Category = "tools"
	CategoryPlatforms            Category = "platforms"
	CategoryDatabases            Category = "databases"
	CategoryMethodologies        Category = "methodologies"
)

// Categories lists every technical category in reporting order.
var Categories = []Category{
	CategoryProgrammingLanguages,
	CategoryFrameworks,
	CategoryTools,
	CategoryPlatforms,
	CategoryDatabases,
	CategoryMethodologies,
}

// TermSet holds the technical terms found in a text, bucketed by category.
// Every slice is sorted and free of duplicates.
type TermSet struct {
	ProgrammingLanguages []string `json:"programmingLanguages"`
	Frameworks           []string `json:"frameworks"`
	Tools                []string `json:"tools"`
	Platforms            []string `json:"platforms"`
	Databases            []string `json:"databases"`
	Methodologies        []string `json:"methodologies"`
	Compound             []string `json:"compound"`
	AllTerms             []string `json:"allTerms"`
}

// ByCategory returns the terms recorded for a category.
func (t *TermSet) ByCategory(c Category) []string {
	switch c {
	case CategoryProgrammingLanguages:
		return t.ProgrammingLanguages
	case CategoryFrameworks:
		return t.Frameworks
	case CategoryTools:
		return t.Tools
	case CategoryPlatforms:
		return t.Platforms
	case CategoryDatabases:
		return t.Databases
	case CategoryMethodologies:
		return t.Methodologies
	default:
		return nil
	}
}

// SetCategory replaces the terms recorded for a category.
func (t *TermSet) SetCategory(c Category, terms []string) {
	switch c {
	case CategoryProgrammingLanguages:
		t.ProgrammingLanguages = terms
	case CategoryFrameworks:
		t.Frameworks = terms
	case CategoryTools:
		t.Tools = terms
	case CategoryPlatforms:
		t.Platforms = terms
	case CategoryDatabases:
		t.Databases = terms
	case CategoryMethodologies:
		t.Methodologies = terms
	}
}

// Contains reports whether term is in AllTerms.
func (t *TermSet) Contains(term string) bool {
	for _, existing := range t.AllTerms {
		if existing == term {
			return true
		}
	}
	return false
}
