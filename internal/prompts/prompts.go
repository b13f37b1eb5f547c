// Package prompts holds the LLM prompt templates embedded in the binary.
// Each JSON file maps template names to text with {{.Field}} placeholders.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var placeholder = regexp.MustCompile(`\{\{\.([A-Za-z][A-Za-z0-9]*)\}\}`)

// Template is one named prompt.
type Template struct {
	File string
	Name string
	Text string
}

// Fields lists the placeholder names in the template, in order of first use.
func (t Template) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(t.Text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			fields = append(fields, m[1])
		}
	}
	return fields
}

// Render substitutes every placeholder from data in a single pass, so values
// that themselves look like placeholders are left as written. Placeholders
// without a value are kept.
func (t Template) Render(data map[string]string) string {
	return placeholder.ReplaceAllStringFunc(t.Text, func(m string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(m, "{{."), "}}")
		if value, ok := data[name]; ok {
			return value
		}
		return m
	})
}

// library parses every embedded file once.
var library = sync.OnceValues(func() (map[string]map[string]string, error) {
	files, err := fs.Glob(promptFiles, "*.json")
	if err != nil {
		return nil, err
	}

	lib := make(map[string]map[string]string, len(files))
	for _, name := range files {
		data, err := promptFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt file %s: %w", name, err)
		}
		var entries map[string]string
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse prompt file %s: %w", name, err)
		}
		lib[name] = entries
	}
	return lib, nil
})

// Lookup returns the template name from file, e.g. Lookup("skills.json", "extract-skills").
func Lookup(file, name string) (Template, error) {
	lib, err := library()
	if err != nil {
		return Template{}, err
	}

	entries, ok := lib[file]
	if !ok {
		return Template{}, fmt.Errorf("prompt file %s not embedded", file)
	}
	text, ok := entries[name]
	if !ok {
		return Template{}, fmt.Errorf("prompt %q not found in %s", name, file)
	}

	return Template{File: file, Name: name, Text: text}, nil
}

// MustLookup is Lookup for templates a package needs at init time.
func MustLookup(file, name string) Template {
	t, err := Lookup(file, name)
	if err != nil {
		panic(err)
	}
	return t
}
