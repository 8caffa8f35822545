package ats

import (
	"math"
	"sort"
)

// maxVocabulary caps the TF-IDF vocabulary at the most frequent terms across
// both documents.
const maxVocabulary = 500

// cosineSimilarity vectorizes the two normalized token sequences with
// smoothed TF-IDF weighting and returns the cosine of the angle between them,
// in [0,1]. Either side empty yields 0.
func cosineSimilarity(resumeTokens, jobTokens []string) float64 {
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}

	vocab := buildVocabulary(resumeTokens, jobTokens)
	if len(vocab) == 0 {
		return 0
	}

	resumeCounts := countTokens(resumeTokens)
	jobCounts := countTokens(jobTokens)

	var dot, resumeNorm, jobNorm float64
	for term := range vocab {
		// Smoothed IDF over the two-document corpus.
		df := 0
		if resumeCounts[term] > 0 {
			df++
		}
		if jobCounts[term] > 0 {
			df++
		}
		idf := math.Log(float64(1+2)/float64(1+df)) + 1

		rw := float64(resumeCounts[term]) / float64(len(resumeTokens)) * idf
		jw := float64(jobCounts[term]) / float64(len(jobTokens)) * idf

		dot += rw * jw
		resumeNorm += rw * rw
		jobNorm += jw * jw
	}

	if resumeNorm == 0 || jobNorm == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(resumeNorm) * math.Sqrt(jobNorm))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// buildVocabulary returns the term set to vectorize, capped at maxVocabulary
// terms ranked by combined frequency (ties alphabetical for determinism).
// Stopwords never reach this point: textproc.Tokens drops them.
func buildVocabulary(docs ...[]string) map[string]struct{} {
	totals := make(map[string]int)
	for _, doc := range docs {
		for _, tok := range doc {
			totals[tok]++
		}
	}

	if len(totals) <= maxVocabulary {
		vocab := make(map[string]struct{}, len(totals))
		for term := range totals {
			vocab[term] = struct{}{}
		}
		return vocab
	}

	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(a, b int) bool {
		if totals[terms[a]] != totals[terms[b]] {
			return totals[terms[a]] > totals[terms[b]]
		}
		return terms[a] < terms[b]
	})

	vocab := make(map[string]struct{}, maxVocabulary)
	for _, term := range terms[:maxVocabulary] {
		vocab[term] = struct{}{}
	}
	return vocab
}

func countTokens(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}
