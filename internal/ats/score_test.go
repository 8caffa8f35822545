package ats

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/textproc"
)

func TestScoreEmptyInputs(t *testing.T) {
	cases := []struct {
		name   string
		resume string
		job    string
	}{
		{"both empty", "", ""},
		{"empty resume", "", "python developer"},
		{"empty job", "experienced python developer", ""},
		{"whitespace resume", "   \n\t ", "python developer"},
		{"stopword-only resume", "the and of a an", "python developer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.resume, tc.job); got != 0 {
				t.Fatalf("Score(%q, %q) = %d, want 0", tc.resume, tc.job, got)
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	pairs := [][2]string{
		{"python developer with flask experience", "looking for python developer"},
		{"accountant ledger audit", "senior golang engineer kubernetes"},
		{"a", "b"},
		{strings.Repeat("go developer microservices ", 200), "go developer"},
	}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 100 {
			t.Fatalf("Score out of range: %d for %q vs %q", got, p[0], p[1])
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	resume := "Experienced Python developer. Skills: Python, Flask, SQL. Education: MCA. Projects: resume analyzer."
	job := "We need a Python developer with Flask and SQL experience."
	first := Score(resume, job)
	for i := 0; i < 5; i++ {
		if got := Score(resume, job); got != first {
			t.Fatalf("run %d: Score = %d, want %d", i, got, first)
		}
	}
}

func TestScoreIdenticalLongResumeHitsCeiling(t *testing.T) {
	// A resume over 500 words containing every rewarded section, scored
	// against itself: 70 (cosine 1) + 10 (length) + 20 (sections) = 100.
	var b strings.Builder
	b.WriteString("Experience with software. Education in computing. Skills in programming. Projects delivered. ")
	for i := 0; i < 600; i++ {
		fmt.Fprintf(&b, "term%d ", i)
	}
	doc := b.String()
	if wc := textproc.WordCount(doc); wc <= 500 {
		t.Fatalf("fixture too short: %d words", wc)
	}
	if got := Score(doc, doc); got != 100 {
		t.Fatalf("Score(doc, doc) = %d, want 100", got)
	}
}

func TestScoreRelatedBeatsUnrelated(t *testing.T) {
	resume := "python developer flask sql rest api experience education skills projects"
	related := "python developer with flask and sql"
	unrelated := "forklift operator warehouse night shift"
	if rel, unrel := Score(resume, related), Score(resume, unrelated); rel <= unrel {
		t.Fatalf("related score %d should exceed unrelated %d", rel, unrel)
	}
}

func TestLengthComponent(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{50, 0},
		{101, 5},
		{301, 7},
		{501, 10},
	}
	for _, tc := range cases {
		text := strings.Repeat("word ", tc.words)
		if got := lengthComponent(text); got != tc.want {
			t.Fatalf("lengthComponent(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestSectionComponent(t *testing.T) {
	cases := []struct {
		name   string
		resume string
		want   int
	}{
		{"none", "plain text with no headers", 0},
		{"one", "Experience: five years", 5},
		{"plural forms", "Skills and Projects", 10},
		{"all four", "Experience Education Skills Projects", 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sectionComponent(tc.resume); got != tc.want {
				t.Fatalf("sectionComponent(%q) = %d, want %d", tc.resume, got, tc.want)
			}
		})
	}
}

func TestCosineSimilarityBounds(t *testing.T) {
	a := textproc.Tokens("python developer flask")
	b := textproc.Tokens("python developer flask")
	if sim := cosineSimilarity(a, b); sim < 0.999 {
		t.Fatalf("identical token sets: sim = %f, want ~1", sim)
	}
	c := textproc.Tokens("warehouse forklift")
	if sim := cosineSimilarity(a, c); sim != 0 {
		t.Fatalf("disjoint token sets: sim = %f, want 0", sim)
	}
	if sim := cosineSimilarity(nil, a); sim != 0 {
		t.Fatalf("empty side: sim = %f, want 0", sim)
	}
}

func TestVocabularyCap(t *testing.T) {
	tokens := make([]string, 0, maxVocabulary+100)
	for i := 0; i < maxVocabulary+100; i++ {
		tokens = append(tokens, fmt.Sprintf("term%d", i))
	}
	vocab := buildVocabulary(tokens, nil)
	if len(vocab) != maxVocabulary {
		t.Fatalf("vocabulary size = %d, want %d", len(vocab), maxVocabulary)
	}
}
