// Package courses recommends upskilling courses for a resume, with a fixed
// default list when the model cannot produce one.
package courses

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
)

// Course is one recommended course or certification.
type Course struct {
	Title         string `json:"title"`
	Platform      string `json:"platform"`
	Description   string `json:"description"`
	SkillCategory string `json:"skill_category"`
	Duration      string `json:"duration"`
	URL           string `json:"url"`
}

// Recommendation carries the course list plus whether it came from the model
// or the fallback table.
type Recommendation struct {
	Success bool     `json:"success"`
	Courses []Course `json:"courses"`
}

// DefaultCourses is the fallback recommendation list.
func DefaultCourses() []Course {
	return []Course{
		{
			Title:         "Professional Skills Enhancement",
			Platform:      "Coursera",
			Description:   "A comprehensive course to improve professional skills",
			SkillCategory: "Professional Development",
			Duration:      "3-4 months",
			URL:           "https://www.coursera.org/professional-skills",
		},
		{
			Title:         "Technical Skills Masterclass",
			Platform:      "Udemy",
			Description:   "Advanced technical skills for modern professionals",
			SkillCategory: "Technical Skills",
			Duration:      "2-3 months",
			URL:           "https://www.udemy.com/technical-skills",
		},
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

// Recommend returns tailored courses for the resume, or the defaults with
// Success=false when generation or parsing fails.
func (s *Service) Recommend(ctx context.Context, resumeText string) Recommendation {
	reply, err := s.LLM.Generate(ctx, buildPrompt(resumeText))
	if err != nil {
		telemetry.Warn("courses.degraded", map[string]any{"cause": err.Error()})
		return Recommendation{Success: false, Courses: DefaultCourses()}
	}

	courses, err := parseCourses(reply)
	if err != nil {
		telemetry.Warn("courses.degraded", map[string]any{"cause": err.Error()})
		return Recommendation{Success: false, Courses: DefaultCourses()}
	}
	return Recommendation{Success: true, Courses: courses}
}

func buildPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze the following resume and recommend 3-4 online courses or certifications
that can help improve the candidate's skills and career prospects:

Resume: %s

Please provide recommendations in the following JSON format:
{
    "courses": [
        {
            "title": "Course Title",
            "platform": "Course Platform",
            "description": "Brief course description",
            "skill_category": "Relevant Skill Category",
            "duration": "Course Duration",
            "url": "Course URL"
        }
    ]
}

Ensure the recommendations are tailored to the skills and experience in the resume.`, resumeText)
}

var jsonBlobPattern = regexp.MustCompile(`(?s)\{.*\}`)

func parseCourses(raw string) ([]Course, error) {
	blob := jsonBlobPattern.FindString(raw)
	if blob == "" {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var parsed struct {
		Courses []Course `json:"courses"`
	}
	if err := json.Unmarshal([]byte(blob), &parsed); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	if len(parsed.Courses) == 0 {
		return nil, fmt.Errorf("no courses in reply")
	}
	return parsed.Courses, nil
}
