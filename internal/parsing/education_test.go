package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func educationOf(text string) []string {
	lines := strings.Split(text, "\n")
	entries := parseEducation(lines, splitSections(lines))
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Degree + " @ " + e.Institution
	}
	return out
}

func TestParseEducation_PairsByProximityNotOrder(t *testing.T) {
	// An institution listed without a degree comes first. Pairing the n-th
	// degree with the n-th institution would credit the bachelor's degree to
	// the community college.
	text := `EDUCATION
Springfield Community College, coursework only, 2010

Relevant coursework: statistics

Bachelor of Science in Economics, 2014
University of Chicago`

	entries := educationOf(text)

	require.Len(t, entries, 2)
	assert.Equal(t, " @ Springfield Community College", entries[0])
	assert.Equal(t, "Bachelor of Science in Economics @ University of Chicago", entries[1])
}

func TestParseEducation_InstitutionBeforeDegree(t *testing.T) {
	text := `Education
Massachusetts Institute of Technology
Master of Science in Computer Science, 2019 - 2021
Stanford University
BS in Mathematics, 2015 - 2019`

	entries := educationOf(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "Master of Science in Computer Science @ Massachusetts Institute of Technology", entries[0])
	assert.Equal(t, "BS in Mathematics @ Stanford University", entries[1])
}

func TestParseEducation_DegreeOnlyAndDates(t *testing.T) {
	lines := strings.Split("EDUCATION\nPh.D. in Physics, 2012 - 2017", "\n")
	entries := parseEducation(lines, splitSections(lines))

	require.Len(t, entries, 1)
	assert.Equal(t, "Ph.D. in Physics", entries[0].Degree)
	assert.Empty(t, entries[0].Institution)
	assert.Equal(t, "2012 - 2017", entries[0].Dates)
}

func TestParseEducation_HighSchoolIsNotInstitution(t *testing.T) {
	entries := educationOf("EDUCATION\nHigh School Diploma, 2008")
	assert.Equal(t, []string{"High School Diploma @ "}, entries)
}

func TestParseEducation_ScrumMasterIsNotADegree(t *testing.T) {
	entries := educationOf("Certified Scrum Master, 2020")
	assert.Empty(t, entries)
}

func TestParseEducation_CapsEntries(t *testing.T) {
	var b strings.Builder
	b.WriteString("EDUCATION\n")
	for i := 0; i < 8; i++ {
		b.WriteString("MBA\n\n\n\n")
	}
	lines := strings.Split(b.String(), "\n")
	assert.Len(t, parseEducation(lines, splitSections(lines)), maxEducationEntries)
}

func TestParseEducation_SingleLineEntries(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"at separator", "Master of Science in Computer Science at Stanford University", "Master of Science in Computer Science @ Stanford University"},
		{"from separator", "Bachelor of Science in Physics from Ohio State University, 2015", "Bachelor of Science in Physics @ Ohio State University"},
		{"no separator", "BS in Computer Science Georgia Institute of Technology 2012 - 2016", "BS in Computer Science @ Georgia Institute of Technology"},
		{"field before university of", "Bachelor of Arts in Economics University of Chicago", "Bachelor of Arts in Economics @ University of Chicago"},
		{"comma separator", "Bachelor of Science in Computer Science, University of Texas", "Bachelor of Science in Computer Science @ University of Texas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, educationOf("EDUCATION\n"+tt.line))
		})
	}
}

func TestParseEducation_SingleLineKeepsDates(t *testing.T) {
	lines := strings.Split("EDUCATION\nBS in Computer Science Georgia Institute of Technology 2012 - 2016", "\n")
	entries := parseEducation(lines, splitSections(lines))

	require.Len(t, entries, 1)
	assert.Equal(t, "Georgia Institute of Technology", entries[0].Institution)
	assert.Equal(t, "2012 - 2016", entries[0].Dates)
}

func TestParseEducation_LowercaseAbbreviationsAreNotDegrees(t *testing.T) {
	tests := []string{
		"Jane Doe\nBuilt APIs with 200 ms latency and ba testing",
		"Jane Doe\nAdvanced MS Office user",
		"Jane Doe\nmigrated bs scripts to Go",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Empty(t, Parse(text, nil).Education)
		})
	}
}

func TestParseEducation_CapitalAbbreviationIsDegree(t *testing.T) {
	assert.Equal(t, []string{"MS in Data Science @ "}, educationOf("Jane Doe\nReduced latency to 200 ms\nMS in Data Science"))
}

func TestIsDegreeAbbreviation(t *testing.T) {
	text := "MS Office, 200 ms, MS degree"
	assert.False(t, IsDegreeAbbreviation(text, 0, 2))
	assert.False(t, IsDegreeAbbreviation(text, 15, 17))
	assert.True(t, IsDegreeAbbreviation(text, 19, 21))
}
