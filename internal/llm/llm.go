// Package llm wraps the Gemini API behind a small text-generation interface
// with retry handling for rate limits and transient failures.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"google.golang.org/genai"

	"openventure/internal/logger"
)

const (
	// DefaultModel is the default Gemini model used for content generation.
	DefaultModel = "gemini-2.0-flash-exp"
	// DefaultMaxRetries is the number of attempts before a call is abandoned.
	DefaultMaxRetries = 3
	// DefaultBaseDelay is the first retry backoff; it doubles per attempt.
	DefaultBaseDelay = time.Second
)

// TextGenerator produces model text for a prompt. It is the seam used by the
// generator, scorer, and pipeline packages so tests can substitute fakes.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options configures a single generation call.
type Options struct {
	Model       string  // Model override; empty uses the client's model
	Temperature float32 // 0 leaves the model default in place
	MaxTokens   int32   // 0 leaves the model default in place
}

// Client is a Gemini-backed TextGenerator with exponential-backoff retries.
type Client struct {
	gClient     *genai.Client
	modelName   string
	temperature float32
	maxRetries  int
	baseDelay   time.Duration

	// sleep and generate are swapped out in tests to avoid real backoff
	// waits and API calls.
	sleep    func(time.Duration)
	generate func(ctx context.Context, prompt string, opts Options) (string, error)
}

// NewClient creates a new LLM client.
// It supports multiple ways to get the API key (in order of preference):
// 1. Environment variables: GEMINI_API_KEY, GOOGLE_GEMINI_API_KEY, GOOGLE_AI_API_KEY
// 2. Viper configuration: gemini.api_key
func NewClient(modelName string, temperature float32, maxRetries int, baseDelay time.Duration) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		if apiKey = os.Getenv("GOOGLE_GEMINI_API_KEY"); apiKey == "" {
			if apiKey = os.Getenv("GOOGLE_AI_API_KEY"); apiKey == "" {
				apiKey = viper.GetString("gemini.api_key")
			}
		}
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY environment variable or gemini.api_key in config file.\nGet your API key from: https://makersuite.google.com/app/apikey")
	}

	if modelName == "" {
		modelName = viper.GetString("gemini.model")
		if modelName == "" {
			modelName = DefaultModel
		}
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}

	ctx := context.Background()
	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		gClient:     gClient,
		modelName:   modelName,
		temperature: temperature,
		maxRetries:  maxRetries,
		baseDelay:   baseDelay,
		sleep:       time.Sleep,
	}
	c.generate = c.generateOnce
	return c, nil
}

// Generate implements TextGenerator using the client's configured model and
// temperature.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.GenerateWithOptions(ctx, prompt, Options{})
}

// GenerateWithOptions runs a generation call with per-call overrides, retrying
// on rate limits and transient failures. The delay before attempt n is
// baseDelay * 2^(n-1).
func (c *Client) GenerateWithOptions(ctx context.Context, prompt string, opts Options) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.baseDelay << (attempt - 1)
			logger.Debugf("retrying generation in %s (attempt %d/%d)", delay, attempt+1, c.maxRetries)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			default:
			}
			c.sleep(delay)
		}

		text, err := c.generate(ctx, prompt, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if isRateLimited(err) {
			logger.Warnf("rate limited by model API: %v", err)
			continue
		}
		logger.Debugf("generation attempt %d failed: %v", attempt+1, err)
	}

	return "", fmt.Errorf("generation failed after %d attempts: %w", c.maxRetries, lastErr)
}

func (c *Client) generateOnce(ctx context.Context, prompt string, opts Options) (string, error) {
	modelName := c.modelName
	if opts.Model != "" {
		modelName = opts.Model
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	config := &genai.GenerateContentConfig{}
	temp := c.temperature
	if opts.Temperature > 0 {
		temp = opts.Temperature
	}
	if temp > 0 {
		config.Temperature = genai.Ptr(temp)
	}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = opts.MaxTokens
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}

// isRateLimited reports whether an error looks like an API quota rejection.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// GetModelName returns the model name used by this client.
func (c *Client) GetModelName() string {
	return c.modelName
}

// Close cleans up resources used by the client.
func (c *Client) Close() {
	// The genai client does not require explicit close.
}
