package analyses

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Models frequently wrap JSON replies in markdown fences or lead with prose.
// parseAIReply tries a strict decode of the cleaned reply first and falls
// back to pulling labeled fields out of free text.
func parseAIReply(raw string) (AIAnalysis, error) {
	cleaned := cleanJSONFences(raw)
	if cleaned == "" {
		return AIAnalysis{}, errors.New("empty reply")
	}

	if analysis, err := parseStrict(cleaned); err == nil {
		return analysis, nil
	}
	return parseLenient(raw)
}

// cleanJSONFences strips a surrounding markdown code fence, if any.
func cleanJSONFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

type aiReply struct {
	MatchingScore  *float64 `json:"matching_score"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Recommendation string   `json:"recommendation"`
	Suggestions    []string `json:"suggestions"`
}

func parseStrict(cleaned string) (AIAnalysis, error) {
	var reply aiReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return AIAnalysis{}, err
	}
	if reply.MatchingScore == nil {
		return AIAnalysis{}, errors.New("matching_score missing")
	}
	analysis := AIAnalysis{
		MatchScore:     clampScore(int(*reply.MatchingScore)),
		MatchedSkills:  orEmpty(reply.MatchedSkills),
		MissingSkills:  orEmpty(reply.MissingSkills),
		Recommendation: strings.TrimSpace(reply.Recommendation),
		Suggestions:    orEmpty(reply.Suggestions),
	}
	if analysis.Recommendation == "" {
		analysis.Recommendation = DefaultRecommendation
	}
	return analysis, nil
}

var (
	scorePattern   = regexp.MustCompile(`(?i)matching[ _]?score\D{0,10}(\d{1,3})`)
	matchedPattern = regexp.MustCompile(`(?i)matched[ _]?skills?\s*[:\-]\s*(.+)`)
	missingPattern = regexp.MustCompile(`(?i)missing[ _]?skills?\s*[:\-]\s*(.+)`)
	recomPattern   = regexp.MustCompile(`(?i)recommendation\s*[:\-]\s*(.+)`)
)

// parseLenient scans the raw reply line by line for labeled fields. It
// needs at least a labeled score to salvage anything.
func parseLenient(raw string) (AIAnalysis, error) {
	scoreMatch := scorePattern.FindStringSubmatch(raw)
	if scoreMatch == nil {
		return AIAnalysis{}, errors.New("no labeled score found")
	}
	score, err := strconv.Atoi(scoreMatch[1])
	if err != nil {
		return AIAnalysis{}, err
	}

	analysis := DefaultAIAnalysis()
	analysis.MatchScore = clampScore(score)

	if m := matchedPattern.FindStringSubmatch(raw); m != nil {
		analysis.MatchedSkills = splitSkillList(m[1])
	}
	if m := missingPattern.FindStringSubmatch(raw); m != nil {
		analysis.MissingSkills = splitSkillList(m[1])
	}
	if m := recomPattern.FindStringSubmatch(raw); m != nil {
		if rec := strings.TrimSpace(strings.Trim(m[1], `"`)); rec != "" {
			analysis.Recommendation = rec
		}
	}
	return analysis, nil
}

func splitSkillList(raw string) []string {
	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if skill := strings.Trim(strings.TrimSpace(part), `"'`); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
