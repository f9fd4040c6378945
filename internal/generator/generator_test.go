package generator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"openventure/internal/core"
	"openventure/internal/venture"
)

// scriptedModel returns canned JSON keyed on a distinctive substring of each
// prompt. It is called from the landing generator's worker goroutines, so
// call tracking is guarded.
type scriptedModel struct {
	t         *testing.T
	responses map[string]string

	mu    sync.Mutex
	calls []string
}

func (m *scriptedModel) Generate(ctx context.Context, prompt string) (string, error) {
	for marker, response := range m.responses {
		if strings.Contains(prompt, marker) {
			m.mu.Lock()
			m.calls = append(m.calls, marker)
			m.mu.Unlock()
			if response == "ERROR" {
				return "", fmt.Errorf("scripted failure for %q", marker)
			}
			return response, nil
		}
	}
	return "", fmt.Errorf("no scripted response matches prompt:\n%s", prompt)
}

func testVentureConfig() *venture.Config {
	return &venture.Config{
		Idea:    "An AI-powered meal planning service for busy families",
		Name:    "Mealio",
		Tagline: "Dinner, decided",
		Business: venture.Business{
			Industry:            "food tech",
			TargetAudience:      "busy parents",
			PainPoints:          []string{"no time to plan meals"},
			ValueProposition:    "Weekly meal plans in seconds",
			UniqueSellingPoints: []string{"personalized plans"},
		},
		Brand: venture.Brand{Tone: "friendly"},
		LandingPage: venture.LandingPage{
			Enabled: true,
			Sections: venture.LandingSections{
				Hero:            venture.HeroSection{Enabled: true, Style: "centered"},
				SocialProof:     venture.SocialProofSection{Enabled: true, LogoCount: 4},
				Features:        venture.FeaturesSection{Enabled: true, Count: 2},
				FeatureShowcase: venture.FeatureShowcaseSection{Enabled: true, Count: 3},
				Pricing:         venture.PricingSection{Enabled: true, Tiers: 3, Currency: "USD", BillingPeriod: "both"},
				Testimonials:    venture.TestimonialsSection{Enabled: true, Count: 2},
				FAQ:             venture.FAQSection{Enabled: true, Count: 2},
				CTA:             venture.CTASection{Enabled: true},
				Footer:          venture.FooterSection{Enabled: true, Columns: 4},
			},
		},
		Blog: venture.Blog{
			Enabled:      true,
			ArticleCount: 2,
			Locale:       "en-US",
			SEO: venture.BlogSEO{
				PrimaryKeyword:    "meal planning",
				SecondaryKeywords: []string{"weekly meals"},
			},
			Content: venture.BlogContent{
				MinWordCount:       1200,
				MaxWordCount:       2500,
				SectionsPerArticle: 3,
			},
		},
		Advanced: venture.Advanced{
			GeminiModel:      "fake-model",
			Temperature:      0.7,
			MaxRetries:       3,
			RateLimitDelayMs: 500,
		},
	}
}

func landingResponses() map[string]string {
	return map[string]string{
		"hero section content": `{
			"badge": "New",
			"headline": "Dinner planned in seconds",
			"subheadline": "Mealio builds your weekly meal plan automatically.",
			"primary_cta": {"text": "Get Started", "href": "#pricing"},
			"secondary_cta": {"text": "Learn More", "href": "#features"}
		}`,
		"feature cards": `{"features": [
			{"icon": "zap", "title": "Instant plans", "description": "Plans in seconds.", "features": ["fast", "easy"]},
			{"id": "feature-custom", "icon": "heart", "title": "Family friendly", "description": "Everyone eats.", "features": ["kids", "adults"]}
		]}`,
		"feature showcase sections": `{"showcases": [
			{"headline": "Plan", "subheadline": "s", "description": "d", "bullets": ["a"], "image_position": "right"},
			{"headline": "Shop", "subheadline": "s", "description": "d", "bullets": ["b"], "image_position": "right"},
			{"headline": "Cook", "subheadline": "s", "description": "d", "bullets": ["c"], "image_position": "left"}
		]}`,
		"pricing tiers": `{
			"headline": "Simple pricing",
			"tiers": [
				{"name": "Starter", "description": "d", "price": {"monthly": 9}, "currency": "USD", "billing_text": "per month", "features": [], "cta": {"text": "Go", "href": "#signup"}, "highlighted": true},
				{"name": "Family", "description": "d", "price": {"monthly": 19}, "currency": "USD", "billing_text": "per month", "features": [], "cta": {"text": "Go", "href": "#signup"}},
				{"name": "Chef", "description": "d", "price": {"monthly": 49}, "currency": "USD", "billing_text": "per month", "features": [], "cta": {"text": "Go", "href": "#signup"}}
			]
		}`,
		"realistic testimonials": `{"testimonials": [
			{"quote": "Great!", "author": {"name": "A", "title": "B", "company": "C"}, "rating": 5},
			{"quote": "Love it", "author": {"name": "D", "title": "E", "company": "F"}, "rating": 4}
		]}`,
		"frequently asked questions": `{"items": [
			{"question": "How much?", "answer": "From $9."},
			{"question": "Cancel anytime?", "answer": "Yes."}
		]}`,
		"final call-to-action": `{
			"headline": "Start tonight",
			"subheadline": "Your first week is free.",
			"primary_cta": {"text": "Sign Up", "href": "#signup"},
			"background_style": "gradient"
		}`,
		"footer content": `{
			"columns": [{"title": "Product", "links": [{"text": "Features", "href": "/#features"}]}],
			"social_links": [{"platform": "twitter", "href": "https://twitter.com/mealio"}],
			"copyright": "© 2026 Mealio. All rights reserved.",
			"bottom_links": [{"text": "Terms", "href": "/terms"}]
		}`,
	}
}

func TestLandingGenerate(t *testing.T) {
	cfg := testVentureConfig()
	model := &scriptedModel{t: t, responses: landingResponses()}

	page, err := NewLandingGenerator(cfg, model).Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if page.VentureID == "" {
		t.Error("venture id should be set")
	}
	if page.VentureName != "Mealio" {
		t.Errorf("venture name = %q", page.VentureName)
	}
	if page.Hero.Headline != "Dinner planned in seconds" {
		t.Errorf("unexpected hero headline %q", page.Hero.Headline)
	}

	// Social proof is synthesized locally.
	if len(page.SocialProof.Logos) != 4 {
		t.Errorf("expected 4 logos, got %d", len(page.SocialProof.Logos))
	}
	if page.SocialProof.Headline != "Trusted by innovative companies worldwide" {
		t.Errorf("unexpected social proof headline %q", page.SocialProof.Headline)
	}
	if page.SocialProof.Logos[2].Name != "Partner 3" {
		t.Errorf("unexpected logo name %q", page.SocialProof.Logos[2].Name)
	}

	// Missing feature ids are filled in; present ones are kept.
	if page.Features.Features[0].ID != "feature-1" {
		t.Errorf("feature id = %q, want feature-1", page.Features.Features[0].ID)
	}
	if page.Features.Features[1].ID != "feature-custom" {
		t.Errorf("feature id = %q, want feature-custom", page.Features.Features[1].ID)
	}
	if page.Features.Headline != "Why choose Mealio?" {
		t.Errorf("features headline = %q", page.Features.Headline)
	}

	// Showcase positions alternate regardless of model output.
	wantPositions := []string{"left", "right", "left"}
	for i, want := range wantPositions {
		if got := page.FeatureShowcase.Showcases[i].ImagePosition; got != want {
			t.Errorf("showcase %d position = %q, want %q", i, got, want)
		}
	}

	// The middle tier is the highlighted one, whatever the model said.
	for i, tier := range page.Pricing.Tiers {
		if want := i == 1; tier.Highlighted != want {
			t.Errorf("tier %d highlighted = %v, want %v", i, tier.Highlighted, want)
		}
	}
	if !page.Pricing.BillingToggle {
		t.Error("billing toggle should be on when billing_period is both")
	}

	if page.Meta.Title != "Mealio - Dinner, decided" {
		t.Errorf("meta title = %q", page.Meta.Title)
	}
	if page.Meta.Description != "Weekly meal plans in seconds" {
		t.Errorf("meta description = %q", page.Meta.Description)
	}
	if len(page.Meta.Keywords) != 2 {
		t.Errorf("expected 2 keywords, got %v", page.Meta.Keywords)
	}
}

func TestLandingGenerate_SectionFailureAborts(t *testing.T) {
	cfg := testVentureConfig()
	responses := landingResponses()
	responses["pricing tiers"] = "ERROR"
	model := &scriptedModel{t: t, responses: responses}

	_, err := NewLandingGenerator(cfg, model).Generate(context.Background())
	if err == nil {
		t.Fatal("expected failure when a section cannot be generated")
	}
	if !strings.Contains(err.Error(), "pricing") {
		t.Errorf("error should identify the failed section: %v", err)
	}
}

func articleResponses() map[string]string {
	longTeaser := strings.Repeat("Meal planning saves time and money for every family. ", 4)
	return map[string]string{
		"SEO-optimized blog topics": `{"topics": [
			{"title": "Meal Planning 101", "slug": "meal-planning-101", "meta_title": "mt1", "meta_description": "md1",
			 "primary_keyword": "meal planning", "secondary_keywords": ["weekly meals"], "search_intent": "informational",
			 "priority": 1, "outline": ["Intro", "Basics", "Wrap up"]},
			{"title": "Grocery Budgets: A Complete Guide", "meta_title": "mt2", "meta_description": "md2",
			 "primary_keyword": "grocery budget", "secondary_keywords": [], "search_intent": "informational",
			 "outline": ["Intro", "Tips", "Wrap up"]}
		]}`,
		"comprehensive blog article": `{
			"headline": "Generated Headline",
			"subtitle": "A subtitle",
			"teaser": "` + longTeaser + `",
			"tldr": "Plan weekly, shop once, cook relaxed.",
			"key_takeaways": [{"text": "Plan ahead"}, {"text": "Shop once"}],
			"sections": [
				{"title": "Intro", "content": "one two three four five"},
				{"title": "Basics", "content": "six seven eight nine ten"}
			],
			"faq_items": [{"question": "Why plan?", "answer": "eleven twelve"}],
			"tables": []
		}`,
		"optimizing metadata": `{
			"meta_title": "Refined Title",
			"meta_description": "Refined description",
			"keywords": ["meal planning", "grocery"]
		}`,
	}
}

func TestGenerateTopics_NormalizesFields(t *testing.T) {
	cfg := testVentureConfig()
	model := &scriptedModel{t: t, responses: articleResponses()}
	g := NewArticleGenerator(cfg, model)
	g.sleep = func(time.Duration) {}

	topics, err := g.GenerateTopics(context.Background())
	if err != nil {
		t.Fatalf("GenerateTopics failed: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}

	if topics[0].ID != "topic-1" || topics[1].ID != "topic-2" {
		t.Errorf("topic ids = %q, %q", topics[0].ID, topics[1].ID)
	}
	if topics[0].Slug != "meal-planning-101" {
		t.Errorf("explicit slug should be kept, got %q", topics[0].Slug)
	}
	if topics[1].Slug != "grocery-budgets-a-complete-guide" {
		t.Errorf("missing slug should derive from title, got %q", topics[1].Slug)
	}
	if topics[1].Priority != 2 {
		t.Errorf("missing priority should follow position, got %d", topics[1].Priority)
	}
}

func TestGenerate_BlogManifest(t *testing.T) {
	cfg := testVentureConfig()
	model := &scriptedModel{t: t, responses: articleResponses()}
	g := NewArticleGenerator(cfg, model)

	var slept []time.Duration
	g.sleep = func(d time.Duration) { slept = append(slept, d) }

	manifest, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(manifest.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(manifest.Articles))
	}
	if manifest.Locale != "en-US" {
		t.Errorf("locale = %q", manifest.Locale)
	}

	a := manifest.Articles[0]
	if a.MetaTitle != "Refined Title" {
		t.Errorf("seo meta call should refine the title, got %q", a.MetaTitle)
	}
	if a.Author.Name != "Editorial Team" || a.Author.Company != "Mealio" {
		t.Errorf("author defaults not applied: %+v", a.Author)
	}
	if a.WordCount == 0 || a.ReadTime == 0 {
		t.Errorf("word count and read time should be derived, got %d/%d", a.WordCount, a.ReadTime)
	}
	if a.SEO.KeywordDensity != 1.5 {
		t.Errorf("keyword density = %v", a.SEO.KeywordDensity)
	}
	if len(a.PublicationDate) != len("2006-01-02") {
		t.Errorf("publication date format: %q", a.PublicationDate)
	}

	// Cross-links point at the sibling and carry a truncated teaser.
	if len(a.RelatedArticles) != 1 {
		t.Fatalf("expected 1 related article, got %d", len(a.RelatedArticles))
	}
	related := a.RelatedArticles[0]
	if related.Slug != manifest.Articles[1].Slug {
		t.Errorf("related slug = %q", related.Slug)
	}
	if !strings.HasSuffix(related.Teaser, "...") {
		t.Errorf("related teaser should be truncated with ellipsis: %q", related.Teaser)
	}
	if len(related.Teaser) > 153 {
		t.Errorf("related teaser too long: %d chars", len(related.Teaser))
	}

	// The configured inter-article delay is honored.
	if len(slept) != 2 {
		t.Errorf("expected a delay after each article, got %v", slept)
	}
	for _, d := range slept {
		if d != 500*time.Millisecond {
			t.Errorf("delay = %v, want 500ms", d)
		}
	}
}

func TestGenerate_SkipsFailedArticles(t *testing.T) {
	cfg := testVentureConfig()
	responses := articleResponses()
	model := &scriptedModel{t: t, responses: responses}

	// Fail the first body call, succeed afterwards.
	failed := false
	flaky := &flakyModel{inner: model, failOn: "comprehensive blog article", failed: &failed}

	g := NewArticleGenerator(cfg, flaky)
	g.sleep = func(time.Duration) {}

	manifest, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(manifest.Articles) != 1 {
		t.Fatalf("expected the failed article to be skipped, got %d articles", len(manifest.Articles))
	}
	if len(manifest.Topics) != 2 {
		t.Errorf("topics should still record the full plan, got %d", len(manifest.Topics))
	}
	if len(manifest.Articles[0].RelatedArticles) != 0 {
		t.Errorf("single surviving article has no siblings to relate to")
	}
}

// flakyModel fails the first prompt containing failOn, then delegates.
type flakyModel struct {
	inner  *scriptedModel
	failOn string
	failed *bool
}

func (m *flakyModel) Generate(ctx context.Context, prompt string) (string, error) {
	if !*m.failed && strings.Contains(prompt, m.failOn) {
		*m.failed = true
		return "", fmt.Errorf("transient model failure")
	}
	return m.inner.Generate(ctx, prompt)
}

func TestPrompts_CarryVentureContext(t *testing.T) {
	cfg := testVentureConfig()

	testCases := []struct {
		name   string
		prompt string
		wants  []string
	}{
		{"hero", HeroPrompt(cfg), []string{"Mealio", "Dinner, decided", "busy parents", "friendly"}},
		{"features", FeaturesPrompt(cfg, 6), []string{"Generate 6 feature cards", "personalized plans", "no time to plan meals"}},
		{"pricing", PricingPrompt(cfg, 3), []string{"Generate 3 pricing tiers", "USD"}},
		{"topics", TopicsPrompt(cfg, 5), []string{"Generate 5 SEO-optimized blog topics", "meal planning", "en-US"}},
		{"footer", FooterPrompt(cfg, 4), []string{"4 navigation columns", "/#features", "https://twitter.com/mealio"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, want := range tc.wants {
				if !strings.Contains(tc.prompt, want) {
					t.Errorf("prompt missing %q", want)
				}
			}
		})
	}
}

func TestArticlePrompt_GermanLocale(t *testing.T) {
	cfg := testVentureConfig()
	cfg.Blog.Locale = "de-DE"
	topic := core.BlogTopic{
		Title:          "Essensplanung leicht gemacht",
		PrimaryKeyword: "essensplanung",
		SearchIntent:   "informational",
		Outline:        []string{"Einleitung", "Grundlagen"},
	}

	prompt := ArticlePrompt(cfg, topic)
	if !strings.Contains(prompt, "German") {
		t.Error("de locale should request German content")
	}
	if !strings.Contains(prompt, "Essensplanung leicht gemacht") {
		t.Error("prompt should carry the topic title")
	}
}
