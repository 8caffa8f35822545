package analyses

import "github.com/Aryaagasti/FinalYearMcaBackend/internal/jobs"

// AIAnalysis is the fixed-shape output of the AI match analyzer. Every field
// has a safe default so callers never see a partial or missing result.
type AIAnalysis struct {
	MatchScore     int      `json:"matchingScore"`
	MatchedSkills  []string `json:"matchedSkills"`
	MissingSkills  []string `json:"missingSkills"`
	Recommendation string   `json:"recommendation"`
	Suggestions    []string `json:"suggestions"`
}

// Result is the combined per-request analysis output. ATSScore and
// AIMatchScore are computed independently and are never reconciled.
type Result struct {
	ATSScore        int      `json:"atsScore"`
	AIMatchScore    int      `json:"aiMatchScore"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendation  string   `json:"recommendation"`
	Keywords        []string `json:"keywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions"`
}

// ListingMatch pairs a job listing with the analysis of a resume against it.
type ListingMatch struct {
	Listing jobs.Listing `json:"listing"`
	Result  Result       `json:"result"`
}
