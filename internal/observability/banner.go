// Package observability provides formatted console output for the server
// process.
package observability

import (
	"fmt"
	"io"
	"strings"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted console output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// StartupInfo describes the running server for the startup banner.
type StartupInfo struct {
	Addr          string
	Environment   string
	StaticDir     string
	IndexFile     string
	GeminiModel   string
	GeminiEnabled bool
	SearchEnabled bool
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStartup prints the address line followed by a summary box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStartup(info StartupInfo) {
	fmt.Fprintf(p.out, "Resume Analyzer server running at http://%s/\n", info.Addr)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Environment:  %s\n", info.Environment))
	sb.WriteString(fmt.Sprintf("Index page:   %s\n", strings.TrimSuffix(info.StaticDir, "/")+"/"+info.IndexFile))
	sb.WriteString(fmt.Sprintf("Skills (%s): %s\n", info.GeminiModel, enabled(info.GeminiEnabled, "GEMINI_API_KEY")))
	sb.WriteString(fmt.Sprintf("Job search:   %s\n", enabled(info.SearchEnabled, "JSEARCH_API_KEY")))

	p.printBox("RESUME ANALYZER", sb.String())
}

func enabled(ok bool, envVar string) string {
	if ok {
		return "enabled"
	}
	return "disabled (" + envVar + " not set)"
}
