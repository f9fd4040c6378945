package venture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Idea:    "An AI-powered meal planning service for busy families",
		Name:    "Mealio",
		Tagline: "Dinner, decided",
		Domain:  "mealio.example",
		Business: Business{
			Industry:            "food tech",
			TargetAudience:      "busy parents",
			PainPoints:          []string{"no time to plan meals"},
			ValueProposition:    "Weekly meal plans in seconds",
			UniqueSellingPoints: []string{"personalized plans"},
		},
		Brand: Brand{
			Tone: "friendly",
			Colors: BrandColors{
				Primary:    "#112233",
				Secondary:  "#445566",
				Accent:     "#789abc",
				Background: "#ffffff",
				Text:       "#000000",
			},
			Fonts: BrandFonts{Heading: "Inter", Body: "Inter"},
		},
		LandingPage: LandingPage{
			Enabled: true,
			Sections: LandingSections{
				Hero:            HeroSection{Enabled: true, Style: "centered"},
				SocialProof:     SocialProofSection{Enabled: true, LogoCount: 5},
				Features:        FeaturesSection{Enabled: true, Count: 6, Layout: "grid"},
				FeatureShowcase: FeatureShowcaseSection{Enabled: true, Count: 3, Layout: "alternating"},
				Pricing:         PricingSection{Enabled: true, Tiers: 3, Currency: "USD", BillingPeriod: "both"},
				Testimonials:    TestimonialsSection{Enabled: true, Count: 4},
				FAQ:             FAQSection{Enabled: true, Count: 6},
				CTA:             CTASection{Enabled: true, Style: "gradient"},
				Footer:          FooterSection{Enabled: true, Columns: 4},
			},
		},
		Blog: Blog{
			Enabled:      true,
			ArticleCount: 3,
			Locale:       "en-US",
			SEO: BlogSEO{
				PrimaryKeyword:    "meal planning",
				SecondaryKeywords: []string{"weekly meals", "family dinner"},
				KeywordDensity:    1.5,
			},
			Content: BlogContent{
				MinWordCount:       1200,
				MaxWordCount:       2500,
				SectionsPerArticle: 6,
				IncludeTLDR:        true,
				IncludeFAQs:        true,
			},
			Author: BlogAuthor{Name: "Jamie Lee", Role: "Head of Content", Company: "Mealio"},
		},
		Output: Output{Directory: "content"},
		Advanced: Advanced{
			GeminiModel:      "gemini-2.0-flash-exp",
			Temperature:      0.7,
			MaxRetries:       3,
			RateLimitDelayMs: 1000,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidate_Violations(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "short idea",
			mutate:  func(c *Config) { c.Idea = "too short" },
			wantErr: "idea must be at least 10 characters",
		},
		{
			name:    "missing name",
			mutate:  func(c *Config) { c.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "bad tone",
			mutate:  func(c *Config) { c.Brand.Tone = "sarcastic" },
			wantErr: "brand.tone",
		},
		{
			name:    "bad hex color",
			mutate:  func(c *Config) { c.Brand.Colors.Primary = "blue" },
			wantErr: "is not a hex color",
		},
		{
			name:    "too many pricing tiers",
			mutate:  func(c *Config) { c.LandingPage.Sections.Pricing.Tiers = 7 },
			wantErr: "pricing.tiers 7 must be between 1 and 5",
		},
		{
			name:    "zero articles",
			mutate:  func(c *Config) { c.Blog.ArticleCount = 0 },
			wantErr: "blog.article_count 0 must be between 1 and 50",
		},
		{
			name: "min word count above max",
			mutate: func(c *Config) {
				c.Blog.Content.MinWordCount = 3000
				c.Blog.Content.MaxWordCount = 2000
			},
			wantErr: "min_word_count must not exceed max_word_count",
		},
		{
			name:    "retries out of range",
			mutate:  func(c *Config) { c.Advanced.MaxRetries = 0 },
			wantErr: "advanced.max_retries 0 must be between 1 and 10",
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.Advanced.Temperature = 3.5 },
			wantErr: "advanced.temperature",
		},
		{
			name:    "bad billing period",
			mutate:  func(c *Config) { c.LandingPage.Sections.Pricing.BillingPeriod = "weekly" },
			wantErr: "billing_period",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Name = ""
	cfg.Tagline = ""
	cfg.Blog.ArticleCount = 99

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, want := range []string{"name is required", "tagline is required", "blog.article_count"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "venture.json")

	data, err := json.Marshal(validConfig())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "Mealio" {
		t.Errorf("expected name Mealio, got %q", cfg.Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoad_RejectsInvalidConfigBeforeUse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "venture.json")

	cfg := validConfig()
	cfg.Advanced.RateLimitDelayMs = 120000 // above ceiling
	data, _ := json.Marshal(cfg)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected out-of-range config to be rejected at load time")
	}
}
