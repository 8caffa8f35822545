package analyses

import (
	"context"
	"fmt"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/metrics"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
)

// Prompt inputs are truncated to respect model input limits.
const (
	maxResumePromptChars = 5000
	maxJobPromptChars    = 2000
)

// Analyzer asks the model to compare a resume with a job description. It is
// the only non-deterministic component in the pipeline, so every failure
// mode funnels to DefaultAIAnalysis rather than an error.
type Analyzer struct {
	LLM llm.Client
}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer(client llm.Client) *Analyzer {
	if client == nil {
		client = llm.Disabled{}
	}
	return &Analyzer{LLM: client}
}

// Analyze returns the model's match assessment, or the safe default when the
// call or its reply cannot be used. It never panics and never returns an
// error.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (analysis AIAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Error("analyzer.panic", map[string]any{"cause": r})
			metrics.IncOracleDegraded()
			analysis = DefaultAIAnalysis()
		}
	}()

	prompt := buildPrompt(resumeText, jobDescription)
	reply, err := a.LLM.Generate(ctx, prompt)
	if err != nil {
		telemetry.Warn("analyzer.degraded", map[string]any{
			"stage": "generate",
			"cause": err.Error(),
		})
		metrics.IncOracleDegraded()
		return DefaultAIAnalysis()
	}

	analysis, err = parseAIReply(reply)
	if err != nil {
		telemetry.Warn("analyzer.degraded", map[string]any{
			"stage": "parse",
			"cause": err.Error(),
		})
		metrics.IncOracleDegraded()
		return DefaultAIAnalysis()
	}
	return analysis
}

func buildPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Analyze this resume: %s
Against this job description: %s
Provide the following in JSON format:
{
    "matching_score": 0-100,
    "matched_skills": ["skill1", "skill2"],
    "missing_skills": ["skill3", "skill4"],
    "recommendation": "Your recommendation here",
    "suggestions": ["improvement1", "improvement2"]
}`,
		truncate(resumeText, maxResumePromptChars),
		truncate(jobDescription, maxJobPromptChars),
	)
}

// truncate cuts at a rune boundary so a multibyte character is never split.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
