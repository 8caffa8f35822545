// Package jobs fetches job listings from an external search provider with an
// optional Redis cache in front.
package jobs

import "context"

// Listing is one job posting from the search provider. Read-only.
type Listing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Searcher finds job listings for a query. Implementations may return an
// empty slice with a nil error when the upstream is unavailable; callers
// must tolerate zero listings.
type Searcher interface {
	Search(ctx context.Context, query, location string) ([]Listing, error)
}

// SearcherFunc adapts a function to a Searcher.
type SearcherFunc func(ctx context.Context, query, location string) ([]Listing, error)

func (f SearcherFunc) Search(ctx context.Context, query, location string) ([]Listing, error) {
	return f(ctx, query, location)
}
