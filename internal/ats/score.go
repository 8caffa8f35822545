// Package ats computes the lexical match score between a resume and a job
// description. The score composes TF-IDF cosine similarity with length and
// section-presence heuristics and is always an integer in [0,100].
package ats

import (
	"math"
	"strings"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/textproc"
)

const (
	keywordComponentMax = 70
	sectionComponentMax = 20
	sectionPoints       = 5
)

// sectionLabels are the resume sections rewarded by the section component.
// They are normalized with the same pipeline as the resume text so that
// plural and index forms line up ("skills" matches "skill").
var sectionLabels = []string{"experience", "education", "skills", "projects"}

// Score returns the ATS match score for a resume against a job description.
// Empty input on either side scores 0. Any internal failure degrades to 0
// rather than surfacing an error.
func Score(resumeText, jobDescription string) (score int) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Error("ats.score.panic", map[string]any{"cause": r})
			score = 0
		}
	}()

	resumeTokens := textproc.Tokens(resumeText)
	jobTokens := textproc.Tokens(jobDescription)
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}

	keyword := keywordComponent(resumeTokens, jobTokens)
	length := lengthComponent(resumeText)
	sections := sectionComponent(resumeText)

	score = int(math.Ceil(keyword)) + length + sections
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// keywordComponent is the cosine similarity scaled onto [0,70].
func keywordComponent(resumeTokens, jobTokens []string) float64 {
	sim := cosineSimilarity(resumeTokens, jobTokens)
	component := sim * keywordComponentMax
	if component > keywordComponentMax {
		component = keywordComponentMax
	}
	return component
}

// lengthComponent rewards substantive resumes by normalized word count, after
// stopword filtering and lemmatization.
func lengthComponent(resumeText string) int {
	words := textproc.WordCount(resumeText)
	switch {
	case words > 500:
		return 10
	case words > 300:
		return 7
	case words > 100:
		return 5
	default:
		return 0
	}
}

// sectionComponent grants sectionPoints for each canonical section label
// found in the normalized resume text, capped at sectionComponentMax.
func sectionComponent(resumeText string) int {
	normalized := textproc.Normalize(resumeText)
	total := 0
	for _, label := range sectionLabels {
		needle := textproc.Normalize(label)
		if needle == "" {
			continue
		}
		if strings.Contains(normalized, needle) {
			total += sectionPoints
		}
	}
	if total > sectionComponentMax {
		total = sectionComponentMax
	}
	return total
}
