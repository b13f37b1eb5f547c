package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/skills"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Environment:     "development",
		LogLevel:        "info",
		UpstreamTimeout: 30,
	}
	cfg.Gemini.Model = "gemini-2.5-flash"
	cfg.JSearch.BaseURL = "https://jsearch.example.com"
	cfg.JSearch.Host = "jsearch.example.com"
	return cfg
}

func TestNewLogger(t *testing.T) {
	cfg := testConfig()

	logger, err := newLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	cfg.Environment = "production"
	cfg.LogLevel = "warn"
	logger, err = newLogger(cfg)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "loud"

	_, err := newLogger(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestBuildDeps_NoKeys(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	deps, cleanup, err := buildDeps(context.Background(), testConfig(), zap.New(core))
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, deps.Extractor)
	assert.Nil(t, deps.Searcher)
	assert.Equal(t, 2, logs.Len())
}

func TestBuildDeps_WithKeys(t *testing.T) {
	cfg := testConfig()
	cfg.Gemini.APIKey = "test-gemini-key"
	cfg.JSearch.APIKey = "test-jsearch-key"
	core, logs := observer.New(zapcore.WarnLevel)

	deps, cleanup, err := buildDeps(context.Background(), cfg, zap.New(core))
	require.NoError(t, err)
	defer cleanup()

	assert.IsType(t, &skills.Extractor{}, deps.Extractor)
	assert.NotNil(t, deps.Searcher)
	assert.Zero(t, logs.Len())
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"unexpected"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
}
