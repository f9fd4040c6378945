// Package venture defines the venture configuration document that drives a
// generation run, along with loading and fail-fast validation.
package venture

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Tones accepted by the brand configuration.
var validTones = map[string]bool{
	"professional": true,
	"playful":      true,
	"technical":    true,
	"friendly":     true,
}

// BrandColors is the five-color palette used by the rendering layer.
type BrandColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// BrandFonts names the heading and body typefaces.
type BrandFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Brand describes voice and visual identity.
type Brand struct {
	Tone        string      `json:"tone"`
	Personality []string    `json:"personality"`
	Colors      BrandColors `json:"colors"`
	Fonts       BrandFonts  `json:"fonts"`
}

// Business captures what the venture does and for whom.
type Business struct {
	Industry            string   `json:"industry"`
	Category            string   `json:"category"`
	TargetAudience      string   `json:"target_audience"`
	PainPoints          []string `json:"pain_points"`
	ValueProposition    string   `json:"value_proposition"`
	UniqueSellingPoints []string `json:"unique_selling_points"`
}

// Competitors configures optional competitor analysis.
type Competitors struct {
	URLs           []string `json:"urls"`
	AnalyzeDesign  bool     `json:"analyze_design"`
	AnalyzeCopy    bool     `json:"analyze_copy"`
	AnalyzePricing bool     `json:"analyze_pricing"`
}

// HeroSection configures the hero block.
type HeroSection struct {
	Enabled      bool   `json:"enabled"`
	Style        string `json:"style"`
	IncludeVideo bool   `json:"include_video"`
}

// SocialProofSection configures the logo strip.
type SocialProofSection struct {
	Enabled   bool `json:"enabled"`
	LogoCount int  `json:"logo_count"`
}

// FeaturesSection configures the features grid.
type FeaturesSection struct {
	Enabled bool   `json:"enabled"`
	Count   int    `json:"count"`
	Layout  string `json:"layout"`
}

// FeatureShowcaseSection configures the alternating showcase blocks.
type FeatureShowcaseSection struct {
	Enabled bool   `json:"enabled"`
	Count   int    `json:"count"`
	Layout  string `json:"layout"`
}

// PricingSection configures pricing tiers.
type PricingSection struct {
	Enabled       bool   `json:"enabled"`
	Tiers         int    `json:"tiers"`
	Currency      string `json:"currency"`
	BillingPeriod string `json:"billing_period"` // monthly, yearly, both
}

// TestimonialsSection configures testimonial count.
type TestimonialsSection struct {
	Enabled bool `json:"enabled"`
	Count   int  `json:"count"`
}

// FAQSection configures the landing FAQ.
type FAQSection struct {
	Enabled bool `json:"enabled"`
	Count   int  `json:"count"`
}

// CTASection configures the closing call to action.
type CTASection struct {
	Enabled bool   `json:"enabled"`
	Style   string `json:"style"`
}

// FooterSection configures footer columns.
type FooterSection struct {
	Enabled bool `json:"enabled"`
	Columns int  `json:"columns"`
}

// LandingSections holds the per-section flags and counts.
type LandingSections struct {
	Hero            HeroSection            `json:"hero"`
	SocialProof     SocialProofSection     `json:"social_proof"`
	Features        FeaturesSection        `json:"features"`
	FeatureShowcase FeatureShowcaseSection `json:"feature_showcase"`
	Pricing         PricingSection         `json:"pricing"`
	Testimonials    TestimonialsSection    `json:"testimonials"`
	FAQ             FAQSection             `json:"faq"`
	CTA             CTASection             `json:"cta"`
	Footer          FooterSection          `json:"footer"`
}

// LandingPage enables landing generation and carries its sections.
type LandingPage struct {
	Enabled  bool            `json:"enabled"`
	Sections LandingSections `json:"sections"`
}

// BlogSEO is the keyword set articles are generated against.
type BlogSEO struct {
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	KeywordDensity    float64  `json:"keyword_density"`
}

// BlogContent shapes each generated article.
type BlogContent struct {
	MinWordCount        int  `json:"min_word_count"`
	MaxWordCount        int  `json:"max_word_count"`
	SectionsPerArticle  int  `json:"sections_per_article"`
	IncludeTLDR         bool `json:"include_tldr"`
	IncludeKeyTakeaways bool `json:"include_key_takeaways"`
	IncludeTables       bool `json:"include_tables"`
	IncludeFAQs         bool `json:"include_faqs"`
	IncludeSources      bool `json:"include_sources"`
	InternalLinking     bool `json:"internal_linking"`
}

// BlogAuthor is the byline identity for generated articles.
type BlogAuthor struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	ImageURL string `json:"image_url"`
}

// Blog enables and shapes blog generation.
type Blog struct {
	Enabled      bool        `json:"enabled"`
	ArticleCount int         `json:"article_count"`
	Locale       string      `json:"locale"`
	SEO          BlogSEO     `json:"seo"`
	Content      BlogContent `json:"content"`
	Author       BlogAuthor  `json:"author"`
}

// Images configures image generation (currently unimplemented upstream).
type Images struct {
	GenerateHero         bool   `json:"generate_hero"`
	GenerateFeatureIcons bool   `json:"generate_feature_icons"`
	GenerateBlogHeaders  bool   `json:"generate_blog_headers"`
	Style                string `json:"style"`
	Format               string `json:"format"`
	Quality              int    `json:"quality"`
}

// Deployment records the target platform; not acted on by the pipeline.
type Deployment struct {
	Platform           string `json:"platform"`
	AutoDeploy         bool   `json:"auto_deploy"`
	PreviewDeployments bool   `json:"preview_deployments"`
	CustomDomain       string `json:"custom_domain"`
}

// OutputFormats names the file formats for each output kind.
type OutputFormats struct {
	LandingPage  string `json:"landing_page"`
	BlogArticles string `json:"blog_articles"`
	Images       string `json:"images"`
}

// Output controls where and how generated content is written.
type Output struct {
	Directory string        `json:"directory"`
	Formats   OutputFormats `json:"formats"`
}

// Advanced tunes the generative API interaction.
type Advanced struct {
	GeminiModel              string  `json:"gemini_model"`
	Temperature              float64 `json:"temperature"`
	MaxRetries               int     `json:"max_retries"`
	RateLimitDelayMs         int     `json:"rate_limit_delay_ms"`
	EnableCompetitorAnalysis bool    `json:"enable_competitor_analysis"`
	EnableSEOOptimization    bool    `json:"enable_seo_optimization"`
}

// Config is the full venture configuration document.
type Config struct {
	Schema      string      `json:"$schema,omitempty"`
	Idea        string      `json:"idea"`
	Name        string      `json:"name"`
	Tagline     string      `json:"tagline"`
	Domain      string      `json:"domain"`
	Business    Business    `json:"business"`
	Competitors Competitors `json:"competitors"`
	Brand       Brand       `json:"brand"`
	LandingPage LandingPage `json:"landing_page"`
	Blog        Blog        `json:"blog"`
	Images      Images      `json:"images"`
	Deployment  Deployment  `json:"deployment"`
	Output      Output      `json:"output"`
	Advanced    Advanced    `json:"advanced"`
}

// Load reads and validates a venture config from a JSON file. Any schema
// violation fails here, before generation work begins.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read venture config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse venture config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every bounded field against its closed range and returns
// all violations at once.
func (c *Config) Validate() error {
	var errs []string

	if len(strings.TrimSpace(c.Idea)) < 10 {
		errs = append(errs, "idea must be at least 10 characters")
	}
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Tagline == "" {
		errs = append(errs, "tagline is required")
	}
	if c.Business.Industry == "" {
		errs = append(errs, "business.industry is required")
	}
	if c.Business.TargetAudience == "" {
		errs = append(errs, "business.target_audience is required")
	}

	if !validTones[c.Brand.Tone] {
		errs = append(errs, fmt.Sprintf("brand.tone %q is not one of professional, playful, technical, friendly", c.Brand.Tone))
	}
	for name, color := range map[string]string{
		"brand.colors.primary":    c.Brand.Colors.Primary,
		"brand.colors.secondary":  c.Brand.Colors.Secondary,
		"brand.colors.accent":     c.Brand.Colors.Accent,
		"brand.colors.background": c.Brand.Colors.Background,
		"brand.colors.text":       c.Brand.Colors.Text,
	} {
		if !hexColorRegex.MatchString(color) {
			errs = append(errs, fmt.Sprintf("%s %q is not a hex color", name, color))
		}
	}
	if c.Brand.Fonts.Heading == "" || c.Brand.Fonts.Body == "" {
		errs = append(errs, "brand.fonts.heading and brand.fonts.body are required")
	}

	if len(c.Competitors.URLs) > 5 {
		errs = append(errs, "competitors.urls must have at most 5 entries")
	}

	s := c.LandingPage.Sections
	errs = appendRangeError(errs, "landing_page.sections.social_proof.logo_count", s.SocialProof.LogoCount, 0, 12)
	errs = appendRangeError(errs, "landing_page.sections.features.count", s.Features.Count, 1, 12)
	errs = appendRangeError(errs, "landing_page.sections.feature_showcase.count", s.FeatureShowcase.Count, 1, 6)
	errs = appendRangeError(errs, "landing_page.sections.pricing.tiers", s.Pricing.Tiers, 1, 5)
	errs = appendRangeError(errs, "landing_page.sections.testimonials.count", s.Testimonials.Count, 0, 10)
	errs = appendRangeError(errs, "landing_page.sections.faq.count", s.FAQ.Count, 0, 20)
	errs = appendRangeError(errs, "landing_page.sections.footer.columns", s.Footer.Columns, 1, 6)
	switch s.Pricing.BillingPeriod {
	case "monthly", "yearly", "both":
	default:
		errs = append(errs, fmt.Sprintf("landing_page.sections.pricing.billing_period %q is not one of monthly, yearly, both", s.Pricing.BillingPeriod))
	}

	errs = appendRangeError(errs, "blog.article_count", c.Blog.ArticleCount, 1, 50)
	if len(c.Blog.Locale) < 2 {
		errs = append(errs, "blog.locale must be at least 2 characters")
	}
	errs = appendRangeError(errs, "blog.content.min_word_count", c.Blog.Content.MinWordCount, 500, 10000)
	errs = appendRangeError(errs, "blog.content.max_word_count", c.Blog.Content.MaxWordCount, 1000, 20000)
	errs = appendRangeError(errs, "blog.content.sections_per_article", c.Blog.Content.SectionsPerArticle, 3, 15)
	if c.Blog.Content.MinWordCount > c.Blog.Content.MaxWordCount {
		errs = append(errs, "blog.content.min_word_count must not exceed max_word_count")
	}
	if c.Blog.SEO.KeywordDensity < 0 || c.Blog.SEO.KeywordDensity > 5 {
		errs = append(errs, fmt.Sprintf("blog.seo.keyword_density %.2f must be between 0 and 5", c.Blog.SEO.KeywordDensity))
	}

	if c.Advanced.GeminiModel == "" {
		errs = append(errs, "advanced.gemini_model is required")
	}
	if c.Advanced.Temperature < 0 || c.Advanced.Temperature > 2 {
		errs = append(errs, fmt.Sprintf("advanced.temperature %.2f must be between 0 and 2", c.Advanced.Temperature))
	}
	errs = appendRangeError(errs, "advanced.max_retries", c.Advanced.MaxRetries, 1, 10)
	errs = appendRangeError(errs, "advanced.rate_limit_delay_ms", c.Advanced.RateLimitDelayMs, 0, 60000)

	if c.Output.Directory == "" {
		errs = append(errs, "output.directory is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid venture config:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func appendRangeError(errs []string, field string, value, min, max int) []string {
	if value < min || value > max {
		errs = append(errs, fmt.Sprintf("%s %d must be between %d and %d", field, value, min, max))
	}
	return errs
}
