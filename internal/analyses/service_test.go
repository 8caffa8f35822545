package analyses

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/jobs"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/resumes"
)

func okAnalyzer() *Analyzer {
	return NewAnalyzer(llm.Func(func(ctx context.Context, prompt string) (string, error) {
		return `{"matching_score": 80, "matched_skills": ["python"], "missing_skills": ["docker"],
			"recommendation": "Add Docker.", "suggestions": ["Quantify impact"]}`, nil
	}))
}

func TestAnalyzeResumeValidation(t *testing.T) {
	svc := NewService(resumes.NewMemoryRepo(), okAnalyzer(), 0)

	cases := []struct {
		name     string
		fileName string
		data     []byte
		job      string
		wantMsg  string
	}{
		{"missing file", "", nil, "job", "resume file required"},
		{"missing job description", "resume.txt", []byte("text"), "  ", "job description required"},
		{"unparseable file", "resume.pdf", []byte("not a pdf"), "job", "failed to parse resume"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AnalyzeResume(context.Background(), "user-1", tc.fileName, tc.data, tc.job)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if verr.Message != tc.wantMsg {
				t.Fatalf("message = %q, want %q", verr.Message, tc.wantMsg)
			}
		})
	}
}

func TestAnalyzeResumeHappyPath(t *testing.T) {
	repo := resumes.NewMemoryRepo()
	svc := NewService(repo, okAnalyzer(), 0)

	resume := "Experienced Python developer with Flask and SQL. Experience Education Skills Projects."
	job := "Looking for a Python developer with Flask experience and SQL knowledge."

	result, err := svc.AnalyzeResume(context.Background(), "user-1", "resume.txt", []byte(resume), job)
	if err != nil {
		t.Fatalf("AnalyzeResume: %v", err)
	}
	if result.ATSScore < 1 || result.ATSScore > 100 {
		t.Fatalf("ATSScore = %d, want in [1,100]", result.ATSScore)
	}
	if result.AIMatchScore != 80 {
		t.Fatalf("AIMatchScore = %d, want 80", result.AIMatchScore)
	}
	found := false
	for _, kw := range result.Keywords {
		if kw == "python" {
			found = true
		}
	}
	if !found {
		t.Fatalf("keywords %v should contain python", result.Keywords)
	}

	records, err := repo.ListByOwner(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].ATSScore != result.ATSScore {
		t.Fatalf("persisted score %d, want %d", records[0].ATSScore, result.ATSScore)
	}
}

func TestAnalyzeResumeDegradedAnalyzerStillSucceeds(t *testing.T) {
	svc := NewService(resumes.NewMemoryRepo(), NewAnalyzer(llm.Disabled{}), 0)

	result, err := svc.AnalyzeResume(context.Background(), "user-1", "resume.txt",
		[]byte("Experienced Python developer"), "Python developer role")
	if err != nil {
		t.Fatalf("AnalyzeResume: %v", err)
	}
	if result.AIMatchScore != 0 || result.Recommendation != DefaultRecommendation {
		t.Fatalf("degraded analysis should carry safe defaults: %+v", result)
	}
	if result.ATSScore <= 0 {
		t.Fatalf("lexical score should still be computed, got %d", result.ATSScore)
	}
}

type failingRepo struct{}

func (failingRepo) Insert(ctx context.Context, record resumes.Record) error {
	return errors.New("connection refused")
}

func (failingRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]resumes.Record, error) {
	return nil, errors.New("connection refused")
}

func TestAnalyzeResumePersistenceFailureIsNotFatal(t *testing.T) {
	svc := NewService(failingRepo{}, okAnalyzer(), 0)

	result, err := svc.AnalyzeResume(context.Background(), "user-1", "resume.txt",
		[]byte("Python developer resume text"), "Python developer")
	if err != nil {
		t.Fatalf("AnalyzeResume: %v", err)
	}
	if result.AIMatchScore != 80 {
		t.Fatalf("result should still be returned, got %+v", result)
	}
}

func TestScoreAgainstListingsPreservesOrder(t *testing.T) {
	svc := NewService(resumes.NewMemoryRepo(), okAnalyzer(), 2)

	listings := []jobs.Listing{
		{Title: "Job A", Description: "python flask"},
		{Title: "Job B", Description: "golang kubernetes"},
		{Title: "Job C", Description: "python data"},
		{Title: "Job D", Description: "java spring"},
		{Title: "Job E", Description: "python sql"},
	}
	matches, err := svc.ScoreAgainstListings(context.Background(), "user-1", "resume.txt",
		[]byte("python flask sql developer"), listings)
	if err != nil {
		t.Fatalf("ScoreAgainstListings: %v", err)
	}
	if len(matches) != len(listings) {
		t.Fatalf("got %d matches, want %d", len(matches), len(listings))
	}
	for i, m := range matches {
		if m.Listing.Title != listings[i].Title {
			t.Fatalf("match %d is %q, want %q", i, m.Listing.Title, listings[i].Title)
		}
	}
}

func TestScoreAgainstListingsEmptyListings(t *testing.T) {
	svc := NewService(resumes.NewMemoryRepo(), okAnalyzer(), 0)

	matches, err := svc.ScoreAgainstListings(context.Background(), "user-1", "resume.txt",
		[]byte("python developer"), nil)
	if err != nil {
		t.Fatalf("ScoreAgainstListings: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("got %d matches, want 0", len(matches))
	}
}

func TestPipelineEndToEndExample(t *testing.T) {
	// A realistic pairing: strong keyword overlap, full section coverage.
	resume := strings.Repeat("python flask sql rest api docker developer ", 20) +
		"Experience Education Skills Projects"
	job := "Hiring a Python developer with Flask, SQL and REST API experience. Docker a plus."

	svc := NewService(resumes.NewMemoryRepo(), NewAnalyzer(llm.Disabled{}), 0)
	result, err := svc.AnalyzeResume(context.Background(), "guest:abc", "resume.txt", []byte(resume), job)
	if err != nil {
		t.Fatalf("AnalyzeResume: %v", err)
	}
	if result.ATSScore < 50 {
		t.Fatalf("strongly matching resume scored %d", result.ATSScore)
	}
	if len(result.Keywords) == 0 {
		t.Fatal("expected shared keywords")
	}
	for _, kw := range result.MissingKeywords {
		for _, have := range result.Keywords {
			if kw == have {
				t.Fatalf("keyword %q is both matched and missing", kw)
			}
		}
	}
}
