package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

func TestTokenize_KeepsTechnicalSymbols(t *testing.T) {
	tokens := Tokenize("Built C++ and C# services with Node.js, CI/CD.")
	assert.Equal(t, []string{"built", "c++", "and", "c#", "services", "with", "node.js", "ci/cd"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  --- !!! "))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "develop", Stem("developing"))
	assert.Equal(t, "develop", Stem("developed"))
	assert.Equal(t, "node.js", Stem("node.js"))
	assert.Equal(t, "c++", Stem("c++"))
}

func TestPreprocess(t *testing.T) {
	result := Preprocess("The engineer is developing scalable APIs", vocabulary.Default())

	assert.Equal(t, []string{"engineer", "developing", "scalable", "apis"}, result.Tokens)
	assert.Len(t, result.Unigrams, 4)
	assert.Equal(t, "develop", result.Unigrams[1])
	assert.Equal(t, "api", result.Unigrams[3])
	assert.Equal(t, []string{"engineer developing", "developing scalable", "scalable apis"}, result.Bigrams)
	assert.Equal(t, []string{"engineer developing scalable", "developing scalable apis"}, result.Trigrams)
}

func TestPreprocess_Empty(t *testing.T) {
	result := Preprocess("", vocabulary.Default())
	assert.Empty(t, result.Unigrams)
	assert.Empty(t, result.Bigrams)
	assert.Empty(t, result.Trigrams)
}

func TestNGrams(t *testing.T) {
	assert.Empty(t, NGrams([]string{"one"}, 2))
	assert.Empty(t, NGrams([]string{"one", "two"}, 0))
	assert.Equal(t, []string{"one two"}, NGrams([]string{"one", "two"}, 2))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords("   "))
	assert.Equal(t, 4, CountWords("one two\nthree\tfour"))
}
