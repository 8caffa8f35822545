// Package feedback analyzes free-text professional feedback with the model
// and degrades to a neutral default when it cannot.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
)

// Analysis is the fixed-shape feedback assessment.
type Analysis struct {
	Sentiment        string   `json:"sentiment"`
	SentimentScore   int      `json:"sentiment_score"`
	KeyInsights      []string `json:"key_insights"`
	ImprovementAreas []string `json:"improvement_areas"`
	Recommendations  string   `json:"recommendations"`
}

// DefaultAnalysis is substituted when the model call or parsing fails.
func DefaultAnalysis() Analysis {
	return Analysis{
		Sentiment:        "Neutral",
		SentimentScore:   50,
		KeyInsights:      []string{"Unable to generate insights"},
		ImprovementAreas: []string{"Unable to determine improvement areas"},
		Recommendations:  "Please try again or provide more detailed feedback.",
	}
}

type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.Disabled{}
	}
	return &Service{LLM: client}
}

// Analyze returns the model's assessment of the feedback text. It never
// fails: all trouble funnels to DefaultAnalysis.
func (s *Service) Analyze(ctx context.Context, feedbackText string) Analysis {
	reply, err := s.LLM.Generate(ctx, buildPrompt(feedbackText))
	if err != nil {
		telemetry.Warn("feedback.degraded", map[string]any{"cause": err.Error()})
		return DefaultAnalysis()
	}

	analysis, err := parseReply(reply)
	if err != nil {
		telemetry.Warn("feedback.degraded", map[string]any{"cause": err.Error()})
		return DefaultAnalysis()
	}
	return analysis
}

func buildPrompt(feedbackText string) string {
	return fmt.Sprintf(`Analyze the following professional feedback comprehensively:
%s

Provide a detailed analysis as JSON with these fields:
{
    "sentiment": "Positive|Neutral|Negative",
    "sentiment_score": 0-100,
    "key_insights": ["insight1", "insight2", "insight3"],
    "improvement_areas": ["area1", "area2"],
    "recommendations": "Actionable professional recommendations"
}`, feedbackText)
}

var jsonBlobPattern = regexp.MustCompile(`(?s)\{.*\}`)

func parseReply(raw string) (Analysis, error) {
	blob := jsonBlobPattern.FindString(raw)
	if blob == "" {
		return sentimentFromText(raw)
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(blob), &analysis); err != nil {
		return sentimentFromText(raw)
	}
	if analysis.Sentiment == "" {
		analysis.Sentiment = "Neutral"
	}
	if analysis.SentimentScore < 0 {
		analysis.SentimentScore = 0
	}
	if analysis.SentimentScore > 100 {
		analysis.SentimentScore = 100
	}
	if analysis.KeyInsights == nil {
		analysis.KeyInsights = []string{}
	}
	if analysis.ImprovementAreas == nil {
		analysis.ImprovementAreas = []string{}
	}
	return analysis, nil
}

// sentimentFromText salvages a sentiment label from an unstructured reply.
func sentimentFromText(raw string) (Analysis, error) {
	analysis := DefaultAnalysis()
	switch {
	case strings.Contains(raw, "Positive"):
		analysis.Sentiment = "Positive"
		analysis.SentimentScore = 75
	case strings.Contains(raw, "Negative"):
		analysis.Sentiment = "Negative"
		analysis.SentimentScore = 25
	case strings.Contains(raw, "Neutral"):
		analysis.Sentiment = "Neutral"
	default:
		return Analysis{}, fmt.Errorf("no sentiment found in reply")
	}
	return analysis, nil
}
