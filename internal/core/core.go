package core

import (
	"math"
	"strings"
)

// WordsPerMinute is the assumed reading speed used to derive read times.
const WordsPerMinute = 200

// BlogTopic is an article outline proposed by the model before full-body
// generation. Topics live only for the duration of a pipeline run.
type BlogTopic struct {
	ID                string   `json:"id"`                 // Stable identifier, "topic-N" when the model omits one
	Title             string   `json:"title"`              // Proposed article title
	Slug              string   `json:"slug"`               // URL-safe slug, derived from the title as fallback
	MetaTitle         string   `json:"meta_title"`         // SEO title, 50-60 chars
	MetaDescription   string   `json:"meta_description"`   // SEO description, 150-160 chars
	PrimaryKeyword    string   `json:"primary_keyword"`    // Main search term
	SecondaryKeywords []string `json:"secondary_keywords"` // Related search terms
	SearchIntent      string   `json:"search_intent"`      // informational, navigational, transactional, commercial
	Priority          int      `json:"priority"`           // 1 = highest; position-derived fallback
	Outline           []string `json:"outline"`            // Ordered H2 section titles
}

// KeyTakeaway is a single bullet insight attached to an article.
type KeyTakeaway struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// ArticleSection is one body section of an article.
type ArticleSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// ArticleFAQItem is a question/answer pair in an article's FAQ block.
type ArticleFAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ArticleTable is an optional data table embedded in an article.
type ArticleTable struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Caption string     `json:"caption,omitempty"`
}

// ArticleSource is a cited external reference.
type ArticleSource struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	AccessedDate string `json:"accessed_date"`
}

// ArticleAuthor identifies the byline attached to generated articles.
type ArticleAuthor struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	ImageURL string `json:"image_url,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// RelatedArticle is a truncated pointer to another article from the same run.
type RelatedArticle struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Teaser string `json:"teaser"`
}

// InternalLink is a cross-reference into the venture's own route space.
type InternalLink struct {
	Text       string `json:"text"`
	Href       string `json:"href"`
	TargetSlug string `json:"target_slug"`
}

// ArticleSEO carries the keyword targeting an article was generated against.
type ArticleSEO struct {
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	KeywordDensity    float64  `json:"keyword_density"`
}

// BlogArticle is the fully assembled generated article.
// Slug is unique within a venture; WordCount is derived from the teaser,
// TLDR, section bodies, and FAQ answers.
type BlogArticle struct {
	ID              string           `json:"id"`
	Slug            string           `json:"slug"`
	MetaTitle       string           `json:"meta_title"`
	MetaDescription string           `json:"meta_description"`
	Headline        string           `json:"headline"`
	Subtitle        string           `json:"subtitle"`
	Teaser          string           `json:"teaser"`
	TLDR            string           `json:"tldr"`
	KeyTakeaways    []KeyTakeaway    `json:"key_takeaways"`
	Sections        []ArticleSection `json:"sections"`
	FAQItems        []ArticleFAQItem `json:"faq_items"`
	Tables          []ArticleTable   `json:"tables"`
	Sources         []ArticleSource  `json:"sources"`
	Author          ArticleAuthor    `json:"author"`
	PublicationDate string           `json:"publication_date"` // YYYY-MM-DD
	UpdatedDate     string           `json:"updated_date,omitempty"`
	ReadTime        int              `json:"read_time"`  // Minutes, ceil(word_count / 200)
	WordCount       int              `json:"word_count"` // Whitespace-delimited tokens
	FeaturedImage   string           `json:"featured_image,omitempty"`
	RelatedArticles []RelatedArticle `json:"related_articles"`
	InternalLinks   []InternalLink   `json:"internal_links"`
	SEO             ArticleSEO       `json:"seo"`
}

// BlogManifest is the per-run blog summary written next to the article files.
type BlogManifest struct {
	VentureID   string        `json:"venture_id"`
	VentureName string        `json:"venture_name"`
	GeneratedAt string        `json:"generated_at"`
	Locale      string        `json:"locale"`
	Articles    []BlogArticle `json:"articles"`
	Topics      []BlogTopic   `json:"topics"`
}

// CTALink is a call-to-action button target.
type CTALink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// HeroContent is the landing page hero section.
type HeroContent struct {
	Badge        string   `json:"badge,omitempty"`
	Headline     string   `json:"headline"`
	Subheadline  string   `json:"subheadline"`
	PrimaryCTA   CTALink  `json:"primary_cta"`
	SecondaryCTA *CTALink `json:"secondary_cta,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	VideoURL     string   `json:"video_url,omitempty"`
}

// LogoItem is one placeholder logo slot in the social proof strip.
type LogoItem struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	Alt     string `json:"alt"`
}

// SocialProofContent is synthesized locally, never requested from the model.
type SocialProofContent struct {
	Headline string     `json:"headline,omitempty"`
	Logos    []LogoItem `json:"logos"`
}

// Feature is one card in the features grid.
type Feature struct {
	ID          string   `json:"id"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Link        *CTALink `json:"link,omitempty"`
}

// FeaturesContent is the features grid section.
type FeaturesContent struct {
	Headline    string    `json:"headline,omitempty"`
	Subheadline string    `json:"subheadline,omitempty"`
	Features    []Feature `json:"features"`
}

// FeatureShowcase is a single alternating image/copy block.
type FeatureShowcase struct {
	ID            string   `json:"id"`
	Headline      string   `json:"headline"`
	Subheadline   string   `json:"subheadline"`
	Description   string   `json:"description"`
	Bullets       []string `json:"bullets"`
	ImageURL      string   `json:"image_url,omitempty"`
	VideoURL      string   `json:"video_url,omitempty"`
	CTA           *CTALink `json:"cta,omitempty"`
	ImagePosition string   `json:"image_position"` // "left" or "right", alternates by index
}

// FeatureShowcaseContent is the showcase section.
type FeatureShowcaseContent struct {
	Showcases []FeatureShowcase `json:"showcases"`
}

// PricingFeature is one line item inside a pricing tier.
type PricingFeature struct {
	Text      string `json:"text"`
	Included  bool   `json:"included"`
	Highlight bool   `json:"highlight,omitempty"`
}

// PricingPrice holds monthly and optional yearly prices for a tier.
type PricingPrice struct {
	Monthly float64  `json:"monthly"`
	Yearly  *float64 `json:"yearly,omitempty"`
}

// PricingTier is a single plan. The middle tier is marked highlighted.
type PricingTier struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       PricingPrice     `json:"price"`
	Currency    string           `json:"currency"`
	BillingText string           `json:"billing_text"`
	Features    []PricingFeature `json:"features"`
	CTA         CTALink          `json:"cta"`
	Highlighted bool             `json:"highlighted"`
	Badge       string           `json:"badge,omitempty"`
}

// PricingContent is the pricing section.
type PricingContent struct {
	Headline      string        `json:"headline"`
	Subheadline   string        `json:"subheadline,omitempty"`
	Tiers         []PricingTier `json:"tiers"`
	BillingToggle bool          `json:"billing_toggle,omitempty"`
}

// TestimonialAuthor attributes a quote.
type TestimonialAuthor struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	ImageURL string `json:"image_url,omitempty"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	ID     string            `json:"id"`
	Quote  string            `json:"quote"`
	Author TestimonialAuthor `json:"author"`
	Rating int               `json:"rating,omitempty"`
}

// TestimonialsContent is the testimonials section.
type TestimonialsContent struct {
	Headline     string        `json:"headline,omitempty"`
	Testimonials []Testimonial `json:"testimonials"`
}

// FAQItem is a question/answer pair on the landing page.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQContent is the landing page FAQ section.
type FAQContent struct {
	Headline    string    `json:"headline"`
	Subheadline string    `json:"subheadline,omitempty"`
	Items       []FAQItem `json:"items"`
}

// CTAContent is the closing call-to-action band.
type CTAContent struct {
	Headline        string   `json:"headline"`
	Subheadline     string   `json:"subheadline,omitempty"`
	PrimaryCTA      CTALink  `json:"primary_cta"`
	SecondaryCTA    *CTALink `json:"secondary_cta,omitempty"`
	BackgroundStyle string   `json:"background_style"` // gradient, solid, minimal
}

// FooterLink is a single footer navigation entry.
type FooterLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// FooterColumn groups footer links under a title.
type FooterColumn struct {
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

// SocialLink points at a social profile.
type SocialLink struct {
	Platform string `json:"platform"`
	Href     string `json:"href"`
}

// FooterContent is the footer section.
type FooterContent struct {
	Columns     []FooterColumn `json:"columns"`
	SocialLinks []SocialLink   `json:"social_links"`
	Copyright   string         `json:"copyright"`
	BottomLinks []FooterLink   `json:"bottom_links"`
}

// PageMeta is the derived head metadata for the landing page.
type PageMeta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	OGImage     string   `json:"og_image,omitempty"`
	Keywords    []string `json:"keywords"`
}

// LandingPageContent is the single landing document for a venture. All
// sections are embedded; none are separately addressable.
type LandingPageContent struct {
	VentureID       string                 `json:"venture_id"`
	VentureName     string                 `json:"venture_name"`
	GeneratedAt     string                 `json:"generated_at"`
	Hero            HeroContent            `json:"hero"`
	SocialProof     SocialProofContent     `json:"social_proof"`
	Features        FeaturesContent        `json:"features"`
	FeatureShowcase FeatureShowcaseContent `json:"feature_showcase"`
	Pricing         PricingContent         `json:"pricing"`
	Testimonials    TestimonialsContent    `json:"testimonials"`
	FAQ             FAQContent             `json:"faq"`
	CTA             CTAContent             `json:"cta"`
	Footer          FooterContent          `json:"footer"`
	Meta            PageMeta               `json:"meta"`
}

// CountWords counts whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ReadTime derives reading minutes from a word count, rounded up.
func ReadTime(wordCount int) int {
	return int(math.Ceil(float64(wordCount) / WordsPerMinute))
}
