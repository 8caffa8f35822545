// Package coverletter generates cover letters from a resume and a job
// description, with a fixed fallback letter when the model cannot.
package coverletter

import (
	"context"
	"regexp"
	"strings"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
)

// FallbackLetter is returned whenever generation or cleanup fails.
const FallbackLetter = `Dear Hiring Manager,

I am writing to express my strong interest in the position outlined in the job description.
After carefully reviewing the requirements, I believe my skills and experience make me an
excellent candidate for this role.

My background has equipped me with relevant skills that align with the job's requirements.
I am confident in my ability to contribute effectively to your team and organization.

Thank you for considering my application. I look forward to the opportunity to discuss
how my background can benefit your team.

Sincerely,
[Your Name]`

type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	if client == nil {
		client = llm.Disabled{}
	}
	return &Service{LLM: client}
}

// Generate returns a cover letter for the resume and job description. It
// never fails: model trouble yields FallbackLetter.
func (s *Service) Generate(ctx context.Context, resumeText, jobDescription string) string {
	reply, err := s.LLM.Generate(ctx, buildPrompt(resumeText, jobDescription))
	if err != nil {
		telemetry.Warn("coverletter.degraded", map[string]any{"cause": err.Error()})
		return FallbackLetter
	}
	letter := cleanLetter(reply)
	if letter == "" {
		telemetry.Warn("coverletter.degraded", map[string]any{"cause": "empty after cleanup"})
		return FallbackLetter
	}
	return letter
}

func buildPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString("Generate a professional cover letter based on the following:\n\n")
	b.WriteString("Resume:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\nJob Description:\n")
	b.WriteString(jobDescription)
	b.WriteString(`

Guidelines:
- Highlight 2-3 key skills from the resume that match the job description
- Create a compelling narrative that connects the candidate's experience to the role
- Use a professional and enthusiastic tone
- Include:
  1. Strong opening paragraph
  2. 1-2 paragraphs showcasing relevant skills and achievements
  3. Closing paragraph expressing interest

Format the cover letter in a clear, readable format.`)
	return b.String()
}

var (
	codeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	jsonBlobPattern  = regexp.MustCompile(`(?s)\{.*?\}`)
)

// cleanLetter strips code blocks and stray JSON the model sometimes wraps
// around the letter.
func cleanLetter(text string) string {
	text = codeBlockPattern.ReplaceAllString(text, "")
	text = jsonBlobPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
