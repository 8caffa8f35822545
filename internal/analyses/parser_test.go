package analyses

import (
	"reflect"
	"testing"
)

func TestParseAIReplyStrictJSON(t *testing.T) {
	raw := `{"matching_score": 85, "matched_skills": ["python", "flask"],
		"missing_skills": ["docker"], "recommendation": "Add Docker experience.",
		"suggestions": ["Quantify achievements"]}`

	analysis, err := parseAIReply(raw)
	if err != nil {
		t.Fatalf("parseAIReply: %v", err)
	}
	if analysis.MatchScore != 85 {
		t.Fatalf("MatchScore = %d, want 85", analysis.MatchScore)
	}
	if !reflect.DeepEqual(analysis.MatchedSkills, []string{"python", "flask"}) {
		t.Fatalf("MatchedSkills = %v", analysis.MatchedSkills)
	}
	if analysis.Recommendation != "Add Docker experience." {
		t.Fatalf("Recommendation = %q", analysis.Recommendation)
	}
}

func TestParseAIReplyFencedJSON(t *testing.T) {
	raw := "```json\n{\"matching_score\": 42, \"matched_skills\": [], \"missing_skills\": [], \"recommendation\": \"ok\"}\n```"
	analysis, err := parseAIReply(raw)
	if err != nil {
		t.Fatalf("parseAIReply: %v", err)
	}
	if analysis.MatchScore != 42 {
		t.Fatalf("MatchScore = %d, want 42", analysis.MatchScore)
	}
}

func TestParseAIReplyClampsScore(t *testing.T) {
	analysis, err := parseAIReply(`{"matching_score": 250}`)
	if err != nil {
		t.Fatalf("parseAIReply: %v", err)
	}
	if analysis.MatchScore != 100 {
		t.Fatalf("MatchScore = %d, want 100", analysis.MatchScore)
	}
}

func TestParseAIReplyLenientLabeledText(t *testing.T) {
	raw := `Here is my assessment.
Matching score: 67
Matched skills: python, sql
Missing skills: kubernetes
Recommendation: Learn Kubernetes basics.`

	analysis, err := parseAIReply(raw)
	if err != nil {
		t.Fatalf("parseAIReply: %v", err)
	}
	if analysis.MatchScore != 67 {
		t.Fatalf("MatchScore = %d, want 67", analysis.MatchScore)
	}
	if !reflect.DeepEqual(analysis.MatchedSkills, []string{"python", "sql"}) {
		t.Fatalf("MatchedSkills = %v", analysis.MatchedSkills)
	}
	if !reflect.DeepEqual(analysis.MissingSkills, []string{"kubernetes"}) {
		t.Fatalf("MissingSkills = %v", analysis.MissingSkills)
	}
	if analysis.Recommendation != "Learn Kubernetes basics." {
		t.Fatalf("Recommendation = %q", analysis.Recommendation)
	}
}

func TestParseAIReplyGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "no structure here at all", "{broken json"} {
		if _, err := parseAIReply(raw); err == nil {
			t.Fatalf("parseAIReply(%q) should fail", raw)
		}
	}
}

func TestParseAIReplyNilListsBecomeEmpty(t *testing.T) {
	analysis, err := parseAIReply(`{"matching_score": 10}`)
	if err != nil {
		t.Fatalf("parseAIReply: %v", err)
	}
	if analysis.MatchedSkills == nil || analysis.MissingSkills == nil || analysis.Suggestions == nil {
		t.Fatalf("lists must be non-nil: %+v", analysis)
	}
	if analysis.Recommendation != DefaultRecommendation {
		t.Fatalf("missing recommendation should default, got %q", analysis.Recommendation)
	}
}

func TestCleanJSONFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"{}", "{}"},
		{"  {} ", "{}"},
	}
	for _, tc := range cases {
		if got := cleanJSONFences(tc.in); got != tc.want {
			t.Fatalf("cleanJSONFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
