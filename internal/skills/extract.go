// Package skills turns free resume text into a short list of skill names with
// the help of an LLM.
package skills

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
)

const (
	// MaxSkills is the maximum number of skills returned for one resume.
	MaxSkills = 20
	// MaxSkillLength is the exclusive upper bound on a skill's length in runes.
	MaxSkillLength = 50

	// DefaultTimeout bounds a single upstream generation call.
	DefaultTimeout = 30 * time.Second
)

var extractPrompt = prompts.MustLookup("skills.json", "extract-skills")

// Extractor extracts skills from resume text.
type Extractor struct {
	client  llm.Client
	timeout time.Duration
}

// NewExtractor creates an Extractor backed by client. A non-positive timeout
// falls back to DefaultTimeout.
func NewExtractor(client llm.Client, timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{client: client, timeout: timeout}
}

// BuildPrompt returns the extraction prompt with resumeText embedded.
func BuildPrompt(resumeText string) string {
	return extractPrompt.Render(map[string]string{"ResumeText": resumeText})
}

// Extract asks the model for a comma-separated skill list and shapes it with
// ParseSkillList. Upstream errors are returned unchanged so callers can map
// them to statuses.
func (e *Extractor) Extract(ctx context.Context, resumeText string) ([]string, error) {
	prompt := BuildPrompt(resumeText)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseSkillList(text), nil
}

// ParseSkillList splits a comma-separated blob, trims each entry, drops empty
// entries and entries of MaxSkillLength runes or more, and keeps at most
// MaxSkills in their original order.
func ParseSkillList(text string) []string {
	skills := make([]string, 0, MaxSkills)
	for _, raw := range strings.Split(text, ",") {
		skill := strings.TrimSpace(raw)
		if skill == "" || utf8.RuneCountInString(skill) >= MaxSkillLength {
			continue
		}
		skills = append(skills, skill)
		if len(skills) == MaxSkills {
			break
		}
	}
	return skills
}
