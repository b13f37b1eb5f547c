package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/jonathan/resume-analyzer/internal/upstream"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ServiceName names Gemini in upstream errors.
const ServiceName = "Gemini"

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent sends prompt to the model and returns the generated text
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string, opts ...option.ClientOption) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey, opts...)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client. Extra options are appended after
// the API key, e.g. option.WithEndpoint for a regional endpoint.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string, opts ...option.ClientOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates text content with the configured model and
// generation settings.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.config.Model == "" {
		return "", fmt.Errorf("no model configured")
	}

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature)
	model.SetTopK(c.config.TopK)
	model.SetTopP(c.config.TopP)
	model.SetMaxOutputTokens(c.config.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", translateError(err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// translateError maps SDK errors onto the upstream error types. Blocked
// prompts and candidates count as a malformed success; HTTP failures keep the
// upstream status and the error.message from the upstream body.
func translateError(err error) error {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return &upstream.MalformedResponseError{
			Service: ServiceName,
			Message: "response blocked",
			Cause:   err,
		}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := upstream.Lookup([]byte(apiErr.Body), "error", "message")
		if msg == upstream.UnknownError && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return &upstream.APIError{
			Service:    ServiceName,
			StatusCode: apiErr.Code,
			Message:    msg,
		}
	}

	return fmt.Errorf("failed to generate content: %w", err)
}

// extractTextFromResponse joins the text parts of the first candidate.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	malformed := func(msg string) error {
		return &upstream.MalformedResponseError{
			Service: ServiceName,
			Message: msg,
			Cause:   errors.New(msg),
		}
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", malformed("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", malformed("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", malformed("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
