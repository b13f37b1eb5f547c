package types

// SkillExtractionResponse is the success body of POST /api/extract-skills.
type SkillExtractionResponse struct {
	Skills []string `json:"skills"`
}

// JobSummary is the simplified view of one upstream job posting.
type JobSummary struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// JobSearchResponse is the success body of POST /api/search-jobs.
type JobSearchResponse struct {
	Jobs []JobSummary `json:"jobs"`
}

// ErrorResponse is the body of every JSON failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	OK          bool   `json:"ok"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}
