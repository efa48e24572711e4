// Package skills matches job requirements against resume content. It offers a
// category strategy over extracted technical terms and a full-text strategy that
// scans the raw resume text.
package skills

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

const (
	// Weight constants for skill sources
	weightTechnical = 1.0
	weightCompound  = 0.8
	weightCatalog   = 0.5

	// Source constants
	sourceTechnical = "technical"
	sourceCompound  = "compound"
	sourceCatalog   = "catalog"
)

// target is a required skill derived from the job description
type target struct {
	Name   string
	Weight float64
	Source string
}

// buildTargets collects the skills a job description requires: its curated
// technical terms, its compound phrases and catalog skills mentioned in the text.
// Skills are deduplicated (taking the max weight) and sorted by weight, then name.
func buildTargets(jobText string, jobTerms types.TermSet, tables *vocabulary.Tables) []target {
	skillMap := make(map[string]*skillInfo)

	for _, category := range types.Categories {
		for _, term := range jobTerms.ByCategory(category) {
			addOrUpdateSkill(skillMap, term, weightTechnical, sourceTechnical)
		}
	}

	for _, phrase := range jobTerms.Compound {
		addOrUpdateSkill(skillMap, phrase, weightCompound, sourceCompound)
	}

	for _, skill := range tables.SkillCatalog() {
		if tables.ContainsTerm(jobText, skill) {
			addOrUpdateSkill(skillMap, skill, weightCatalog, sourceCatalog)
		}
	}

	targets := make([]target, 0, len(skillMap))
	for name, info := range skillMap {
		targets = append(targets, target{Name: name, Weight: info.weight, Source: info.source})
	}

	sort.Slice(targets, func(i, j int) bool {
		if targets[i].Weight != targets[j].Weight {
			return targets[i].Weight > targets[j].Weight
		}
		return targets[i].Name < targets[j].Name
	})

	return targets
}

// skillInfo holds temporary information about a skill during building
type skillInfo struct {
	weight float64
	source string
}

// addOrUpdateSkill adds a skill to the map or updates it if it exists,
// taking the maximum weight when duplicates are found.
func addOrUpdateSkill(skillMap map[string]*skillInfo, skillName string, weight float64, source string) {
	if existing, exists := skillMap[skillName]; exists {
		if weight > existing.weight {
			existing.weight = weight
			existing.source = source
		}
		// If weights are equal, prioritize source by: technical > compound > catalog
		if weight == existing.weight && getSourcePriority(source) > getSourcePriority(existing.source) {
			existing.source = source
		}
	} else {
		skillMap[skillName] = &skillInfo{
			weight: weight,
			source: source,
		}
	}
}

// getSourcePriority returns a numeric priority for source types.
// Higher numbers indicate higher priority.
func getSourcePriority(source string) int {
	switch source {
	case sourceTechnical:
		return 3
	case sourceCompound:
		return 2
	case sourceCatalog:
		return 1
	default:
		return 0
	}
}
