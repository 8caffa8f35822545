// Package chatbot answers career questions and serves a static list of
// learning resources.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm"
)

// ErrEmptyQuestion rejects blank questions before the model is called.
var ErrEmptyQuestion = errors.New("question is required")

// Resources are curated free learning playlists, keyed by topic.
var Resources = map[string]string{
	"dsa":             "https://youtube.com/playlist?list=PL9gnSGHSqcnr_DxHsP7AW9ftq0AtAyYqJ",
	"web_dev":         "https://youtube.com/playlist?list=PLfqMhTWNBTe3H6c9OGXb5_6wcc1Mca52n",
	"resume_tips":     "https://youtube.com/playlist?list=PLOGE4peqBpeuIW1V7KkQ3HqfJ6jQjUQwS",
	"interview_prep":  "https://youtube.com/playlist?list=PLDzeHZWIZsTrhXYYtx4z8-u8zA-DzuVsj",
	"career_guidance": "https://youtube.com/playlist?list=PL-Jc9J83PIiFj7YSPl2ulcpwy-mwj1SSk",
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

// Ask returns the model's answer to a career question. Unlike the analysis
// pipeline there is no useful fallback answer, so failures surface as errors.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	answer, err := s.LLM.Generate(ctx, buildPrompt(question))
	if err != nil {
		return "", fmt.Errorf("chatbot: %w", err)
	}
	return answer, nil
}

func buildPrompt(question string) string {
	return fmt.Sprintf(`Act as a friendly career advisor (like an elder sibling). The user is asking: %s

Respond with:
1. Helpful career advice in simple language
2. If resume-related, include ATS score tips
3. Relevant free YouTube playlist links
4. Motivational support

Format your response with clear sections using markdown.`, question)
}
