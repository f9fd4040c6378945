package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

// fakeClient builds a Client whose API calls and sleeps are stubbed.
func fakeClient(maxRetries int, generate func(ctx context.Context, prompt string, opts Options) (string, error)) (*Client, *[]time.Duration) {
	var slept []time.Duration
	c := &Client{
		modelName:  "fake-model",
		maxRetries: maxRetries,
		baseDelay:  time.Second,
		sleep:      func(d time.Duration) { slept = append(slept, d) },
		generate:   generate,
	}
	return c, &slept
}

func TestGenerate_SucceedsFirstAttempt(t *testing.T) {
	c, slept := fakeClient(3, func(ctx context.Context, prompt string, opts Options) (string, error) {
		return "hello", nil
	})

	got, err := c.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
	if len(*slept) != 0 {
		t.Errorf("no backoff expected on first-attempt success, slept %v", *slept)
	}
}

func TestGenerate_RetriesWithExponentialBackoff(t *testing.T) {
	calls := 0
	c, slept := fakeClient(4, func(ctx context.Context, prompt string, opts Options) (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("googleapi: Error 429: quota exceeded")
		}
		return "recovered", nil
	})

	got, err := c.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "recovered" {
		t.Errorf("expected recovered, got %q", got)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
	want := []time.Duration{time.Second, 2 * time.Second}
	if len(*slept) != len(want) {
		t.Fatalf("expected %d sleeps, got %v", len(want), *slept)
	}
	for i, d := range want {
		if (*slept)[i] != d {
			t.Errorf("sleep %d = %v, want %v", i, (*slept)[i], d)
		}
	}
}

func TestGenerate_ExhaustsRetries(t *testing.T) {
	calls := 0
	c, _ := fakeClient(3, func(ctx context.Context, prompt string, opts Options) (string, error) {
		calls++
		return "", fmt.Errorf("RESOURCE_EXHAUSTED")
	})

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("error should mention attempt count: %v", err)
	}
	if !strings.Contains(err.Error(), "RESOURCE_EXHAUSTED") {
		t.Errorf("error should wrap the last failure: %v", err)
	}
}

func TestGenerate_EmptyResponseIsRetried(t *testing.T) {
	calls := 0
	c, _ := fakeClient(2, func(ctx context.Context, prompt string, opts Options) (string, error) {
		calls++
		if calls == 1 {
			return "", fmt.Errorf("empty response from model")
		}
		return "second time lucky", nil
	})

	got, err := c.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "second time lucky" {
		t.Errorf("unexpected result %q", got)
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	c, _ := fakeClient(3, func(ctx context.Context, prompt string, opts Options) (string, error) {
		t.Fatal("generate should not be called for an empty prompt")
		return "", nil
	})
	if _, err := c.Generate(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestGenerate_ContextCancellationStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c, _ := fakeClient(5, func(ctx context.Context, prompt string, opts Options) (string, error) {
		cancel()
		return "", fmt.Errorf("429 too many requests")
	})

	_, err := c.Generate(ctx, "prompt")
	if err == nil {
		t.Fatal("expected error")
	}
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIsRateLimited(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "http 429", err: fmt.Errorf("googleapi: Error 429"), expected: true},
		{name: "grpc resource exhausted", err: fmt.Errorf("rpc error: code = RESOURCE_EXHAUSTED"), expected: true},
		{name: "unrelated failure", err: fmt.Errorf("connection reset"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isRateLimited(tc.err); got != tc.expected {
				t.Errorf("isRateLimited(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY", "GOOGLE_AI_API_KEY"} {
		t.Setenv(key, "")
	}

	_, err := NewClient("", 0, 0, 0)
	if err == nil {
		t.Fatal("expected error when no API key is configured")
	}
	if !strings.Contains(err.Error(), "API key is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewClient_LiveSmoke(t *testing.T) {
	if os.Getenv("GEMINI_API_KEY") == "" {
		t.Skip("GEMINI_API_KEY not set, skipping live API test")
	}

	c, err := NewClient("", 0.7, 2, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer c.Close()

	if c.GetModelName() == "" {
		t.Error("expected a model name")
	}
}
