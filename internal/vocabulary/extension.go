package vocabulary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Extension is a YAML document that adds entries to the built-in tables.
//
//	version: "acme-2025.2"
//	technical:
//	  frameworks: [htmx, remix]
//	compound: [platform engineering]
//	skill_catalog: [incident response]
//	skill_variations:
//	  kubernetes: [kube]
//	tech_families:
//	  rust: [tokio, actix]
type Extension struct {
	Version         string                      `yaml:"version"`
	Technical       map[types.Category][]string `yaml:"technical"`
	Compound        []string                    `yaml:"compound"`
	SkillCatalog    []string                    `yaml:"skill_catalog"`
	SkillVariations map[string][]string         `yaml:"skill_variations"`
	TechFamilies    map[string][]string         `yaml:"tech_families"`
}

// ExtensionLoadError is returned when an extension file cannot be read or parsed
type ExtensionLoadError struct {
	Path  string
	Cause error
}

func (e *ExtensionLoadError) Error() string {
	return fmt.Sprintf("failed to load vocabulary extension %s: %v", e.Path, e.Cause)
}

func (e *ExtensionLoadError) Unwrap() error {
	return e.Cause
}

// LoadExtension reads an extension YAML file.
func LoadExtension(path string) (*Extension, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtensionLoadError{Path: path, Cause: err}
	}
	return ParseExtension(path, data)
}

// ParseExtension decodes extension YAML; name is used in error messages only.
func ParseExtension(name string, data []byte) (*Extension, error) {
	var ext Extension
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, &ExtensionLoadError{Path: name, Cause: err}
	}
	for category := range ext.Technical {
		if !isKnownCategory(category) {
			return nil, &ExtensionLoadError{Path: name, Cause: fmt.Errorf("unknown category %q", category)}
		}
	}
	return &ext, nil
}

// Merge returns new tables holding t's entries plus ext's. t is not modified.
func (t *Tables) Merge(ext *Extension) *Tables {
	if ext == nil {
		return t
	}

	technical := make(map[types.Category][]string, len(t.technical))
	for category, terms := range t.technical {
		technical[category] = append(append([]string(nil), terms...), ext.Technical[category]...)
	}

	version := t.Version
	if ext.Version != "" {
		version = t.Version + "+" + ext.Version
	}

	return build(
		version,
		technical,
		append(append([]string(nil), t.compound...), ext.Compound...),
		append(append([]string(nil), t.skillCatalog...), ext.SkillCatalog...),
		mergeLists(t.variations, ext.SkillVariations),
		mergeLists(t.families, ext.TechFamilies),
	)
}

func mergeLists(base, extra map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(base)+len(extra))
	for key, values := range base {
		merged[key] = append([]string(nil), values...)
	}
	for key, values := range extra {
		k := normalizeTerm(key)
		merged[k] = append(merged[k], values...)
	}
	return merged
}

func isKnownCategory(c types.Category) bool {
	for _, known := range types.Categories {
		if known == c {
			return true
		}
	}
	return false
}
