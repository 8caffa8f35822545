package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultLocation is used when a match request does not name one.
const DefaultLocation = "India"

// SerpAPIClient queries the SerpAPI google_jobs engine.
type SerpAPIClient struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// NewSerpAPIClient builds a client for the given key and base URL. The
// timeout bounds each search call.
func NewSerpAPIClient(apiKey, baseURL string, timeout time.Duration) *SerpAPIClient {
	if baseURL == "" {
		baseURL = "https://serpapi.com/search"
	}
	return &SerpAPIClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type serpAPIResponse struct {
	JobsResults []serpAPIJob `json:"jobs_results"`
}

type serpAPIJob struct {
	Title        string `json:"title"`
	CompanyName  string `json:"company_name"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	RelatedLinks []struct {
		Link string `json:"link"`
	} `json:"related_links"`
}

// Search returns listings for the query via the google_jobs engine.
func (c *SerpAPIClient) Search(ctx context.Context, query, location string) ([]Listing, error) {
	if c.APIKey == "" {
		return nil, errors.New("serpapi: api key not configured")
	}
	if location == "" {
		location = DefaultLocation
	}

	params := url.Values{}
	params.Set("engine", "google_jobs")
	params.Set("q", query)
	params.Set("location", location)
	params.Set("api_key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi: search: unexpected status %d", resp.StatusCode)
	}

	var body serpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("serpapi: decode response: %w", err)
	}

	listings := make([]Listing, 0, len(body.JobsResults))
	for _, job := range body.JobsResults {
		listing := Listing{
			Title:       job.Title,
			Company:     job.CompanyName,
			Location:    job.Location,
			Description: job.Description,
		}
		if len(job.RelatedLinks) > 0 {
			listing.URL = job.RelatedLinks[0].Link
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
