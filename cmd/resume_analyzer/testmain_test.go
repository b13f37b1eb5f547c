package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain mirrors main's startup: a local .env is loaded when present.
func TestMain(m *testing.M) {
	_ = godotenv.Load()

	os.Exit(m.Run())
}
