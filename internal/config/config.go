// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/gotify/configor"
)

// Config is the server configuration. Values come from the struct defaults,
// then any config file found, then the environment.
type Config struct {
	Environment     string `default:"development" env:"ENVIRONMENT"`
	LogLevel        string `default:"info" env:"LOG_LEVEL"`
	UpstreamTimeout int    `default:"30" env:"UPSTREAM_TIMEOUT"` // seconds

	Server  ServerConfig
	Gemini  GeminiConfig
	JSearch JSearchConfig
}

// ServerConfig configures the listener and the static file tree.
type ServerConfig struct {
	Host            string `default:"0.0.0.0" env:"HOST"`
	Port            int    `default:"5000" env:"PORT"`
	StaticDir       string `default:"." env:"STATIC_DIR"`
	IndexFile       string `default:"index.html" env:"INDEX_FILE"`
	ShutdownTimeout int    `default:"10" env:"SHUTDOWN_TIMEOUT"` // seconds
}

// GeminiConfig configures the skill extraction upstream. An empty APIKey
// disables the endpoint.
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `default:"gemini-2.5-flash" env:"GEMINI_MODEL"`
}

// JSearchConfig configures the job search upstream. An empty APIKey disables
// the endpoint.
type JSearchConfig struct {
	APIKey  string `env:"JSEARCH_API_KEY"`
	BaseURL string `default:"https://jsearch.p.rapidapi.com" env:"JSEARCH_BASE_URL"`
	Host    string `default:"jsearch.p.rapidapi.com" env:"JSEARCH_HOST"`
}

// DefaultFiles lists the config files looked up in the working directory.
// Missing files are skipped.
func DefaultFiles() []string {
	return []string{"config.yml"}
}

// Load builds a Config from defaults, files and the environment.
func Load(files ...string) (*Config, error) {
	cfg := new(Config)
	if err := configor.New(&configor.Config{}).Load(cfg, files...); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values. Missing API keys
// are not an error: the matching endpoints answer 400 instead.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("config error: 'upstream_timeout' must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config error: 'shutdown_timeout' must be positive")
	}

	info, err := os.Stat(c.Server.StaticDir)
	if err != nil {
		return fmt.Errorf("config error: static dir not found: %s", c.Server.StaticDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("config error: static dir is not a directory: %s", c.Server.StaticDir)
	}

	return nil
}

// Addr returns the listen address, e.g. "0.0.0.0:5000".
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// UpstreamTimeoutDuration returns the per-call timeout for upstream APIs.
func (c *Config) UpstreamTimeoutDuration() time.Duration {
	return time.Duration(c.UpstreamTimeout) * time.Second
}

// ShutdownTimeoutDuration returns how long in-flight requests get on shutdown.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
