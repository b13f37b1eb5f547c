package jsearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("abcdefghij", 40) // 400 chars

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: NoDescription},
		{name: "whitespace only passes through", input: "   ", expected: "   "},
		{name: "short passes through", input: "Build things.", expected: "Build things."},
		{name: "exactly 300", input: long[:300], expected: long[:300]},
		{name: "301 is cut", input: long[:301], expected: long[:300] + "..."},
		{name: "long is cut", input: long, expected: long[:300] + "..."},
		{
			name:     "multibyte cut on rune boundary",
			input:    strings.Repeat("ü", 301),
			expected: strings.Repeat("ü", 300) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateDescription(tt.input))
		})
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name     string
		rec      Record
		expected string
	}{
		{name: "city and state", rec: Record{JobCity: "Austin", JobState: "TX", JobCountry: "US"}, expected: "Austin, TX"},
		{name: "city only", rec: Record{JobCity: "Berlin", JobCountry: "DE"}, expected: "Berlin"},
		{name: "country only", rec: Record{JobCountry: "IN"}, expected: "IN"},
		{name: "state without city falls to country", rec: Record{JobState: "CA", JobCountry: "US"}, expected: "US"},
		{name: "nothing", rec: Record{}, expected: DefaultLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Location(tt.rec))
		})
	}
}

func TestLink(t *testing.T) {
	assert.Equal(t, "https://a", Link(Record{JobApplyLink: "https://a", JobGoogleLink: "https://g"}))
	assert.Equal(t, "https://g", Link(Record{JobGoogleLink: "https://g"}))
	assert.Equal(t, DefaultLink, Link(Record{}))
}

func TestSummarize_SkipsIncompleteRecords(t *testing.T) {
	records := []Record{
		{JobTitle: "Engineer", EmployerName: "Acme"},
		{},
		{JobTitle: "Analyst"},
		{EmployerName: "Initech"},
		{JobTitle: "SRE", EmployerName: "Globex"},
	}

	jobs := Summarize(records)
	assert.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.Company)
	}
}

func TestSummarize_OnlyFirstTenRecordsConsidered(t *testing.T) {
	records := make([]Record, 0, 15)
	for i := 0; i < 10; i++ {
		records = append(records, Record{}) // all incomplete
	}
	for i := 0; i < 5; i++ {
		records = append(records, Record{JobTitle: "Engineer", EmployerName: "Acme"})
	}

	assert.Empty(t, Summarize(records))
}

func TestSummarize_Nil(t *testing.T) {
	jobs := Summarize(nil)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}
