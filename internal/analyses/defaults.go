package analyses

// Fallback values for every degradable step of the pipeline. Degraded steps
// substitute these silently so the request as a whole still succeeds;
// validation failures are the only terminal errors.

// DefaultRecommendation is returned when the AI analyzer cannot produce one.
const DefaultRecommendation = "Unable to analyze resume."

// DefaultAIAnalysis is the fixed result substituted when the AI call fails,
// times out, or returns something unparseable.
func DefaultAIAnalysis() AIAnalysis {
	return AIAnalysis{
		MatchScore:     0,
		MatchedSkills:  []string{},
		MissingSkills:  []string{},
		Recommendation: DefaultRecommendation,
		Suggestions:    []string{},
	}
}

// The lexical scorer's fallback is 0 and the keyword extractor's is an empty
// list; both are enforced inside their own packages.
