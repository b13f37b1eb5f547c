package jsearch

import "github.com/jonathan/resume-analyzer/internal/types"

const (
	// MaxDescriptionLength is the rune count after which descriptions are cut.
	MaxDescriptionLength = 300
	// NoDescription replaces an absent description.
	NoDescription = "No description available."
	// DefaultLocation is used when a posting names neither city nor country.
	DefaultLocation = "Remote"
	// DefaultLink is used when a posting has no link at all.
	DefaultLink = "#"
)

// SearchResponse is the part of the JSearch /search body the client reads.
type SearchResponse struct {
	Status string   `json:"status"`
	Data   []Record `json:"data"`
}

// Record is one upstream job posting. Null fields decode as empty strings.
type Record struct {
	JobTitle       string `json:"job_title"`
	EmployerName   string `json:"employer_name"`
	JobCity        string `json:"job_city"`
	JobState       string `json:"job_state"`
	JobCountry     string `json:"job_country"`
	JobDescription string `json:"job_description"`
	JobApplyLink   string `json:"job_apply_link"`
	JobGoogleLink  string `json:"job_google_link"`
}

// Summarize maps the first MaxJobs records to summaries, skipping records
// without a title or an employer.
func Summarize(records []Record) []types.JobSummary {
	if len(records) > MaxJobs {
		records = records[:MaxJobs]
	}

	jobs := make([]types.JobSummary, 0, len(records))
	for _, rec := range records {
		if rec.JobTitle == "" || rec.EmployerName == "" {
			continue
		}
		jobs = append(jobs, types.JobSummary{
			Title:       rec.JobTitle,
			Company:     rec.EmployerName,
			Location:    Location(rec),
			Description: TruncateDescription(rec.JobDescription),
			Link:        Link(rec),
		})
	}
	return jobs
}

// Location prefers "City, State", then the country, then DefaultLocation.
func Location(rec Record) string {
	if rec.JobCity != "" {
		if rec.JobState == "" {
			return rec.JobCity
		}
		return rec.JobCity + ", " + rec.JobState
	}
	if rec.JobCountry != "" {
		return rec.JobCountry
	}
	return DefaultLocation
}

// TruncateDescription cuts descriptions longer than MaxDescriptionLength runes
// and appends "...". Shorter ones pass through; empty ones become NoDescription.
func TruncateDescription(desc string) string {
	if desc == "" {
		return NoDescription
	}
	runes := []rune(desc)
	if len(runes) <= MaxDescriptionLength {
		return desc
	}
	return string(runes[:MaxDescriptionLength]) + "..."
}

// Link prefers the apply link, then the Google link, then DefaultLink.
func Link(rec Record) string {
	switch {
	case rec.JobApplyLink != "":
		return rec.JobApplyLink
	case rec.JobGoogleLink != "":
		return rec.JobGoogleLink
	default:
		return DefaultLink
	}
}
