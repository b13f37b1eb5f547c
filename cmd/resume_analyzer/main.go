// Package main provides the entry point for the Resume Analyzer web server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume Analyzer web server",
	Long: "Resume Analyzer serves the browser client and proxies skill extraction to Gemini " +
		"and job search to JSearch. API keys are read from GEMINI_API_KEY and JSEARCH_API_KEY.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
