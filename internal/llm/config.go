// Package llm provides the Gemini client used for skill extraction and its
// generation settings.
package llm

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the model and generation settings for the client.
type Config struct {
	Provider        Provider
	Model           string
	Temperature     float32
	TopK            int32
	TopP            float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns near-deterministic settings: a comma-separated
// skill list should come back the same for the same resume.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           DefaultModel,
		Temperature:     0.1,
		TopK:            1,
		TopP:            1,
		MaxOutputTokens: 2048,
	}
}

// WithModel returns a copy of the Config using model. An empty model keeps the
// current one.
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	if model != "" {
		newConfig.Model = model
	}
	return &newConfig
}
