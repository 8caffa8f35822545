package courses

import (
	"context"
	"errors"
	"testing"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm"
)

func TestRecommendParsesModelReply(t *testing.T) {
	svc := NewService(llm.Func(func(ctx context.Context, prompt string) (string, error) {
		return `Sure, here you go:
{"courses": [{"title": "Go Fundamentals", "platform": "Coursera",
 "description": "Core Go", "skill_category": "Backend", "duration": "6 weeks",
 "url": "https://example.com/go"}]}`, nil
	}))

	got := svc.Recommend(context.Background(), "golang backend resume")
	if !got.Success {
		t.Fatalf("Success = false: %+v", got)
	}
	if len(got.Courses) != 1 || got.Courses[0].Title != "Go Fundamentals" {
		t.Fatalf("courses = %+v", got.Courses)
	}
}

func TestRecommendFailureYieldsDefaults(t *testing.T) {
	for _, client := range []llm.Client{
		llm.Func(func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("timeout")
		}),
		llm.Func(func(ctx context.Context, prompt string) (string, error) {
			return "no json here", nil
		}),
		llm.Func(func(ctx context.Context, prompt string) (string, error) {
			return `{"courses": []}`, nil
		}),
	} {
		got := NewService(client).Recommend(context.Background(), "resume")
		if got.Success {
			t.Fatalf("Success should be false: %+v", got)
		}
		if len(got.Courses) != len(DefaultCourses()) {
			t.Fatalf("expected default courses, got %+v", got.Courses)
		}
	}
}
