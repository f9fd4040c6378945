package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for explicit missing config file")
	}

	Reset()
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.0-flash-exp" {
		t.Errorf("expected default model, got %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.Gemini.MaxRetries)
	}
	if cfg.Validator.Concurrency != 5 {
		t.Errorf("expected concurrency 5, got %d", cfg.Validator.Concurrency)
	}
	if !strings.Contains(cfg.Validator.UserAgent, "OpenVenture") {
		t.Errorf("unexpected user agent %q", cfg.Validator.UserAgent)
	}
	if cfg.Scoring.Threshold != 70 {
		t.Errorf("expected threshold 70, got %d", cfg.Scoring.Threshold)
	}
}

func TestLoadFromFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
gemini:
  model: gemini-1.5-pro
  retry_delay: 250ms
validator:
  concurrency: 2
scoring:
  threshold: 85
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Gemini.Model != "gemini-1.5-pro" {
		t.Errorf("expected model from file, got %q", cfg.Gemini.Model)
	}
	if got := cfg.Gemini.RetryDelayDuration(); got != 250*time.Millisecond {
		t.Errorf("expected 250ms retry delay, got %v", got)
	}
	if cfg.Validator.Concurrency != 2 {
		t.Errorf("expected concurrency 2, got %d", cfg.Validator.Concurrency)
	}
	if cfg.Scoring.Threshold != 85 {
		t.Errorf("expected threshold 85, got %d", cfg.Scoring.Threshold)
	}
	// Unset values keep their defaults.
	if cfg.Validator.Timeout != "10s" {
		t.Errorf("expected default timeout, got %q", cfg.Validator.Timeout)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("gemini:\n  retry_delay: soon\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if !strings.Contains(err.Error(), "invalid duration") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEnvironmentBinding(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "key-from-fallback")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gemini.APIKey != "key-from-fallback" {
		t.Errorf("expected fallback env key, got %q", cfg.Gemini.APIKey)
	}
}

func TestDurationFallbacks(t *testing.T) {
	g := Gemini{RetryDelay: "garbage"}
	if got := g.RetryDelayDuration(); got != time.Second {
		t.Errorf("expected 1s fallback, got %v", got)
	}
	v := Validator{Timeout: ""}
	if got := v.TimeoutDuration(); got != 10*time.Second {
		t.Errorf("expected 10s fallback, got %v", got)
	}
}
