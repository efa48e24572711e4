// Package similarity computes lexical similarity and keyword coverage between
// a resume and a job description.
package similarity

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexical"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Combined similarity weights
const (
	jaccardWeight = 0.3
	cosineWeight  = 0.5
	bigramWeight  = 0.2

	// bigramContribution is added to a unigram's vector component for every
	// bigram that contains it
	bigramContribution = 0.5
)

// Compute returns the lexical similarity between two texts.
// Every measure is symmetric and lies in [0,1]. Two identical non-blank texts
// score 1 even when preprocessing leaves no tokens, such as stopword-only text.
func Compute(a, b string, tables *vocabulary.Tables) types.SimilarityScores {
	pa := lexical.Preprocess(a, tables)
	pb := lexical.Preprocess(b, tables)

	if len(pa.Unigrams) == 0 && len(pb.Unigrams) == 0 {
		if na := foldSpace(a); na != "" && na == foldSpace(b) {
			return types.SimilarityScores{Jaccard: 1, Cosine: 1, BigramOverlap: 1, Combined: 1}
		}
	}

	scores := types.SimilarityScores{
		Jaccard:       Jaccard(pa, pb),
		Cosine:        Cosine(pa, pb),
		BigramOverlap: BigramOverlap(pa, pb),
	}
	scores.Combined = clamp01(jaccardWeight*scores.Jaccard + cosineWeight*scores.Cosine + bigramWeight*scores.BigramOverlap)
	return scores
}

// Jaccard is |A∩B| / |A∪B| over the sets of stemmed unigrams and bigrams.
func Jaccard(a, b lexical.Result) float64 {
	setA := toSet(a.Unigrams, a.Bigrams)
	setB := toSet(b.Unigrams, b.Bigrams)
	return jaccardOfSets(setA, setB)
}

// BigramOverlap is the Jaccard index of the two bigram sets.
func BigramOverlap(a, b lexical.Result) float64 {
	return jaccardOfSets(toSet(a.Bigrams), toSet(b.Bigrams))
}

// Cosine compares term vectors built over the shared unigram vocabulary. Each
// component is the unigram count plus bigramContribution per bigram whose
// stemmed tokens include the unigram.
func Cosine(a, b lexical.Result) float64 {
	vocab := make(map[string]bool)
	for _, u := range a.Unigrams {
		vocab[u] = true
	}
	for _, u := range b.Unigrams {
		vocab[u] = true
	}
	if len(vocab) == 0 {
		return 0
	}

	terms := make([]string, 0, len(vocab))
	for term := range vocab {
		terms = append(terms, term)
	}
	// Fixed summation order keeps Cosine(a,b) == Cosine(b,a) bit for bit.
	sort.Strings(terms)

	va := termVector(a)
	vb := termVector(b)

	var dot, magA, magB float64
	for _, term := range terms {
		x, y := va[term], vb[term]
		dot += x * y
		magA += x * x
		magB += y * y
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return clamp01(dot / math.Sqrt(magA*magB))
}

func termVector(r lexical.Result) map[string]float64 {
	vec := make(map[string]float64, len(r.Unigrams))
	for _, u := range r.Unigrams {
		vec[u]++
	}
	for _, bigram := range r.Bigrams {
		seen := make(map[string]bool, 2)
		for _, tok := range strings.Fields(bigram) {
			stem := lexical.Stem(tok)
			if seen[stem] {
				continue
			}
			seen[stem] = true
			if _, ok := vec[stem]; ok {
				vec[stem] += bigramContribution
			}
		}
	}
	return vec
}

// foldSpace lowercases text and collapses whitespace runs.
func foldSpace(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

func toSet(lists ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, list := range lists {
		for _, item := range list {
			set[item] = true
		}
	}
	return set
}

func jaccardOfSets(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for item := range a {
		if b[item] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
