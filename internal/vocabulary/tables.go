package vocabulary

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Tables is an immutable, versioned set of vocabularies. A Tables value is safe
// for concurrent use once built.
type Tables struct {
	Version string

	technical      map[types.Category][]string
	compound       []string
	stopWords      map[string]struct{}
	commonWords    map[string]struct{}
	skillCatalog   []string
	variations     map[string][]string
	families       map[string][]string
	actionVerbs    []string
	weakPhrases    []string
	certifications []string
	coOccurrence   []string
	degreeLevels   map[string]int
	problemFonts   []string
	resumeSkills   types.ResumeSkills
	patterns       map[string]*regexp.Regexp
	curatedTerms   map[string]struct{}
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the built-in tables. The returned value is shared and must not be modified.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = build(DefaultVersion, technicalTerms, compoundTerms, skillCatalog, skillVariations, techFamilies)
	})
	return defaultTables
}

func build(
	version string,
	technical map[types.Category][]string,
	compound []string,
	catalog []string,
	variations map[string][]string,
	families map[string][]string,
) *Tables {
	t := &Tables{
		Version:        version,
		technical:      make(map[types.Category][]string, len(technical)),
		compound:       dedupe(compound),
		stopWords:      toSet(stopWords),
		commonWords:    toSet(commonWords),
		skillCatalog:   dedupe(catalog),
		variations:     make(map[string][]string, len(variations)),
		families:       make(map[string][]string, len(families)),
		actionVerbs:    actionVerbs,
		weakPhrases:    weakPhrases,
		certifications: certificationKeywords,
		coOccurrence:   techCoOccurrence,
		degreeLevels:   degreeLevels,
		problemFonts:   problemFonts,
		resumeSkills: types.ResumeSkills{
			Technical: resumeTechnicalSkills,
			Soft:      resumeSoftSkills,
			Tools:     resumeToolSkills,
			Languages: resumeLanguageSkills,
		},
		patterns:     make(map[string]*regexp.Regexp),
		curatedTerms: make(map[string]struct{}),
	}

	for _, category := range types.Categories {
		terms := dedupe(technical[category])
		t.technical[category] = terms
		for _, term := range terms {
			t.curatedTerms[term] = struct{}{}
		}
	}
	for skill, alts := range variations {
		t.variations[normalizeTerm(skill)] = dedupe(alts)
	}
	for root, members := range families {
		t.families[normalizeTerm(root)] = dedupe(members)
	}

	// Precompile every pattern the analyzers will ask for so lookups never write.
	for term := range t.curatedTerms {
		t.compile(term)
	}
	for _, term := range t.compound {
		t.compile(term)
	}
	for _, skill := range t.skillCatalog {
		t.compile(skill)
	}
	for skill, alts := range t.variations {
		t.compile(skill)
		for _, alt := range alts {
			t.compile(alt)
		}
	}
	for _, list := range [][]string{t.certifications, t.coOccurrence, t.actionVerbs, t.weakPhrases} {
		for _, term := range list {
			t.compile(term)
		}
	}
	for term := range t.degreeLevels {
		t.compile(term)
	}
	return t
}

func (t *Tables) compile(term string) {
	if _, ok := t.patterns[term]; ok {
		return
	}
	t.patterns[term] = compileTermPattern(term)
}

// compileTermPattern builds a case-insensitive pattern that matches term only at
// token boundaries. Characters such as '+', '#' and '.' count as part of a token
// so that "java" never matches inside "javascript" and "c" never matches "c++".
func compileTermPattern(term string) *regexp.Regexp {
	if override, ok := termPatterns[term]; ok {
		return regexp.MustCompile(override)
	}
	quoted := regexp.QuoteMeta(term)
	quoted = strings.ReplaceAll(quoted, " ", `[\s-]+`)
	return regexp.MustCompile(`(?i)(?:^|[^a-z0-9+#.])(` + quoted + `)(?:$|[^a-z0-9+#])`)
}

// Pattern returns the boundary-aware pattern for term.
func (t *Tables) Pattern(term string) *regexp.Regexp {
	if re, ok := t.patterns[term]; ok {
		return re
	}
	return compileTermPattern(term)
}

// FindTerm returns the first occurrence of term in text as a [start, end) pair
// covering the term itself, or nil when absent.
func (t *Tables) FindTerm(text, term string) []int {
	loc := t.Pattern(term).FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	if len(loc) >= 4 && loc[2] >= 0 {
		return []int{loc[2], loc[3]}
	}
	return []int{loc[0], loc[1]}
}

// ContainsTerm reports whether term occurs in text at token boundaries.
func (t *Tables) ContainsTerm(text, term string) bool {
	return t.Pattern(term).MatchString(text)
}

// Technical returns the curated terms for a category.
func (t *Tables) Technical(c types.Category) []string { return t.technical[c] }

// IsCurated reports whether term is an entry of the technical vocabulary.
func (t *Tables) IsCurated(term string) bool {
	_, ok := t.curatedTerms[term]
	return ok
}

// Compound returns the multi-word technical phrases.
func (t *Tables) Compound() []string { return t.compound }

// IsStopWord reports whether word is an English stop word.
func (t *Tables) IsStopWord(word string) bool {
	_, ok := t.stopWords[word]
	return ok
}

// IsCommonWord reports whether word is on the common-English blocklist.
func (t *Tables) IsCommonWord(word string) bool {
	_, ok := t.commonWords[word]
	return ok
}

// SkillCatalog returns the general skills list.
func (t *Tables) SkillCatalog() []string { return t.skillCatalog }

// Variations returns the alternate forms of skill.
func (t *Tables) Variations(skill string) []string { return t.variations[skill] }

// Family returns the technologies related to term, in both directions: members
// of term's own family and the roots of families term belongs to.
func (t *Tables) Family(term string) []string {
	related := append([]string(nil), t.families[term]...)
	roots := make([]string, 0)
	for root, members := range t.families {
		for _, member := range members {
			if member == term {
				roots = append(roots, root)
				break
			}
		}
	}
	sort.Strings(roots)
	return dedupe(append(related, roots...))
}

// ActionVerbs returns the strong action verbs.
func (t *Tables) ActionVerbs() []string { return t.actionVerbs }

// WeakPhrases returns the passive resume phrases.
func (t *Tables) WeakPhrases() []string { return t.weakPhrases }

// Certifications returns the certification keywords.
func (t *Tables) Certifications() []string { return t.certifications }

// CoOccurrenceKeywords returns the fixed technology list used by the score boost.
func (t *Tables) CoOccurrenceKeywords() []string { return t.coOccurrence }

// DegreeLevels returns degree keyword ranks.
func (t *Tables) DegreeLevels() map[string]int { return t.degreeLevels }

// ProblemFonts returns fonts that render poorly in ATS parsers.
func (t *Tables) ProblemFonts() []string { return t.problemFonts }

// ResumeSkillLists returns the fixed lists used to populate StructuredResume.Skills.
func (t *Tables) ResumeSkillLists() types.ResumeSkills { return t.resumeSkills }

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// dedupe normalizes and removes duplicates while preserving first-seen order
func dedupe(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		n := normalizeTerm(term)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// String describes the tables for logs.
func (t *Tables) String() string {
	total := 0
	for _, terms := range t.technical {
		total += len(terms)
	}
	return fmt.Sprintf("vocabulary %s (%d technical terms, %d compound, %d catalog skills)",
		t.Version, total, len(t.compound), len(t.skillCatalog))
}
