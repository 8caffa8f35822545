package resumes

import "time"

// Record is one persisted resume analysis. Records are append-only: created
// once per successful analysis and never updated.
type Record struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	RawText         string    `json:"-"`
	ATSScore        int       `json:"atsScore"`
	MatchedKeywords []string  `json:"matchedKeywords"`
	Suggestions     []string  `json:"suggestions"`
	CreatedAt       time.Time `json:"createdAt"`
}
