// Package jsearch is a small client for the JSearch job-search API on RapidAPI.
// It builds the search request from a skill list and reduces the postings to
// the summaries the browser client shows.
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/upstream"
)

const (
	// DefaultBaseURL is the RapidAPI endpoint for JSearch.
	DefaultBaseURL = "https://jsearch.p.rapidapi.com"
	// DefaultHost is sent as X-RapidAPI-Host.
	DefaultHost = "jsearch.p.rapidapi.com"
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// ServiceName names JSearch in upstream errors.
	ServiceName = "JSearch"

	// MaxQuerySkills is how many skills make it into the search query.
	MaxQuerySkills = 5
	// MaxJobs is how many upstream postings are considered per search.
	MaxJobs = 10

	employmentTypes = "FULLTIME,PARTTIME,CONTRACTOR"
	jobRequirements = "under_3_years_experience,more_than_3_years_experience,no_experience"

	maxResponseBytes = 10 << 20
)

// Options configures the client.
type Options struct {
	BaseURL    string
	Host       string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// DefaultOptions returns the production endpoint and timeout.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Host:    DefaultHost,
		Timeout: DefaultTimeout,
	}
}

// Client calls the JSearch search endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	host       string
	httpClient *http.Client
}

// NewClient creates a client authenticating with apiKey. Zero-valued option
// fields fall back to the defaults.
func NewClient(apiKey string, opts *Options) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	host := opts.Host
	if host == "" {
		host = DefaultHost
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		host:       host,
		httpClient: httpClient,
	}, nil
}

// BuildQuery returns the search parameters for skills in country. Only the
// first MaxQuerySkills skills are used, joined with " OR ".
func BuildQuery(skills []string, country string) url.Values {
	if len(skills) > MaxQuerySkills {
		skills = skills[:MaxQuerySkills]
	}

	q := url.Values{}
	q.Set("query", strings.Join(skills, " OR "))
	q.Set("page", "1")
	q.Set("num_pages", "1")
	q.Set("date_posted", "all")
	q.Set("remote_jobs_only", "false")
	q.Set("employment_types", employmentTypes)
	q.Set("job_requirements", jobRequirements)
	q.Set("country", strings.ToUpper(country))
	return q
}

// Search runs one search and returns at most MaxJobs summaries. A non-200
// status is returned as *upstream.APIError carrying the upstream status and the
// top-level "message" of the error body.
func (c *Client) Search(ctx context.Context, skills []string, country string) ([]types.JobSummary, error) {
	endpoint := c.baseURL + "/search?" + BuildQuery(skills, country).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &upstream.APIError{
			Service:    ServiceName,
			StatusCode: resp.StatusCode,
			Message:    upstream.Lookup(body, "message"),
		}
	}

	var parsed SearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return Summarize(parsed.Data), nil
}
