package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/jsearch"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/skills"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.DefaultFiles()...)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDeps(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(cfg, logger, deps)

	observability.NewPrinter(cmd.OutOrStdout()).PrintStartup(observability.StartupInfo{
		Addr:          cfg.Addr(),
		Environment:   cfg.Environment,
		StaticDir:     cfg.Server.StaticDir,
		IndexFile:     cfg.Server.IndexFile,
		GeminiModel:   cfg.Gemini.Model,
		GeminiEnabled: deps.Extractor != nil,
		SearchEnabled: deps.Searcher != nil,
	})
	return srv.Run(ctx)
}

// newLogger builds a JSON logger in production and a console logger
// otherwise, at the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = level
	zcfg.OutputPaths = []string{"stdout"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("environment", cfg.Environment)), nil
}

// buildDeps creates the upstream clients for every configured API key. An
// unset key leaves the matching endpoint answering 400.
func buildDeps(ctx context.Context, cfg *config.Config, logger *zap.Logger) (server.Deps, func(), error) {
	var deps server.Deps
	cleanup := func() {}
	timeout := cfg.UpstreamTimeoutDuration()

	if cfg.Gemini.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig().WithModel(cfg.Gemini.Model), cfg.Gemini.APIKey)
		if err != nil {
			return deps, cleanup, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		deps.Extractor = skills.NewExtractor(client, timeout)
		cleanup = func() { _ = client.Close() }
	} else {
		logger.Warn("GEMINI_API_KEY is not set; skill extraction is disabled")
	}

	if cfg.JSearch.APIKey != "" {
		client, err := jsearch.NewClient(cfg.JSearch.APIKey, &jsearch.Options{
			BaseURL: cfg.JSearch.BaseURL,
			Host:    cfg.JSearch.Host,
			Timeout: timeout,
		})
		if err != nil {
			cleanup()
			return server.Deps{}, func() {}, fmt.Errorf("failed to create JSearch client: %w", err)
		}
		deps.Searcher = client
	} else {
		logger.Warn("JSEARCH_API_KEY is not set; job search is disabled")
	}

	return deps, cleanup, nil
}
