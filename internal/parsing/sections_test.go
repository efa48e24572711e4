package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingKey(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"EXPERIENCE", SectionExperience},
		{"Work Experience:", SectionExperience},
		{"## Education", SectionEducation},
		{"Skills & Abilities", SectionSkills},
		{"**Projects**", SectionProjects},
		{"Licenses & Certifications", SectionCertifications},
		{"Objective", SectionSummary},
		{"Experience with Go and Kubernetes", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, headingKey(tt.line))
		})
	}
}

func TestSplitSections(t *testing.T) {
	lines := strings.Split("Name\nSUMMARY\ntext\nSKILLS\nGo\nSKILLS\nagain", "\n")
	sections := splitSections(lines)

	require.Contains(t, sections, SectionSummary)
	assert.Equal(t, section{heading: 1, start: 2, end: 3}, sections[SectionSummary])
	// Only the first occurrence of a repeated heading is kept.
	assert.Equal(t, section{heading: 3, start: 4, end: 5}, sections[SectionSkills])
}

func TestHasSection(t *testing.T) {
	assert.True(t, HasSection("Intro\nEducation\nBS", SectionEducation))
	assert.False(t, HasSection("Intro\nmy education was great", SectionEducation))
}

func TestIsBullet(t *testing.T) {
	assert.True(t, IsBullet("- item"))
	assert.True(t, IsBullet("  • item"))
	assert.True(t, IsBullet("1. item"))
	assert.False(t, IsBullet("-item"))
	assert.False(t, IsBullet("plain"))
	assert.Equal(t, "item", stripBullet("  ▪ item "))
}
