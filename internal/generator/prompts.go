package generator

import (
	"fmt"
	"strings"
	"time"

	"openventure/internal/core"
	"openventure/internal/venture"
)

// HeroPrompt builds the prompt for the landing page hero section.
func HeroPrompt(cfg *venture.Config) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are an expert copywriter creating content for a %s company.

CONTEXT:
- Company: %s
- Tagline: %s
- Business Idea: %s
- Target Audience: %s
- Tone: %s
- Value Proposition: %s

TASK:
Generate hero section content for the landing page.

REQUIREMENTS:
- Badge/Category: 1-3 words indicating category or new feature
- Headline: 5-12 words, convey primary value proposition, powerful and memorable
- Subheadline: 15-30 words, explain how the product delivers value
- Primary CTA: 2-4 words, action-oriented (e.g., "Get Started", "Try Free")
- Secondary CTA: 2-4 words, lower commitment (e.g., "Learn More", "Watch Demo")
- Use active voice
- No jargon unless industry-specific and understood by target audience

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "badge": "...",
  "headline": "...",
  "subheadline": "...",
  "primary_cta": {
    "text": "...",
    "href": "#pricing"
  },
  "secondary_cta": {
    "text": "...",
    "href": "#features"
  }
}`,
		cfg.Business.Industry, cfg.Name, cfg.Tagline, cfg.Idea,
		cfg.Business.TargetAudience, cfg.Brand.Tone, cfg.Business.ValueProposition))
}

// FeaturesPrompt builds the prompt for the feature card grid.
func FeaturesPrompt(cfg *venture.Config, count int) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are an expert copywriter creating feature content for a %s company.

CONTEXT:
- Company: %s
- Business Idea: %s
- Target Audience: %s
- Tone: %s
- USPs: %s
- Pain Points: %s

TASK:
Generate %d feature cards for the landing page.

REQUIREMENTS:
For each feature:
- Icon: One of these icon names (zap, shield, clock, users, chart, globe, lock, star, heart, check)
- Title: 2-5 words, benefit-focused
- Description: 20-40 words explaining the feature and its benefit
- Features: 3-4 bullet points, specific benefits or capabilities
- Each feature should address a different pain point or highlight a different USP

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "features": [
    {
      "id": "feature-1",
      "icon": "zap",
      "title": "...",
      "description": "...",
      "features": ["benefit 1", "benefit 2", "benefit 3"]
    }
  ]
}`,
		cfg.Business.Industry, cfg.Name, cfg.Idea, cfg.Business.TargetAudience,
		cfg.Brand.Tone, strings.Join(cfg.Business.UniqueSellingPoints, ", "),
		strings.Join(cfg.Business.PainPoints, ", "), count))
}

// FeatureShowcasesPrompt builds the prompt for the deep-dive showcase blocks.
func FeatureShowcasesPrompt(cfg *venture.Config, count int) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are an expert copywriter creating detailed feature showcases for a %s company.

CONTEXT:
- Company: %s
- Business Idea: %s
- Target Audience: %s
- Tone: %s
- USPs: %s

TASK:
Generate %d feature showcase sections. These are larger sections that deep-dive into key features.

REQUIREMENTS:
For each showcase:
- Headline: 3-8 words, compelling and benefit-focused
- Subheadline: 10-20 words, expanding on the headline
- Description: 50-100 words explaining the feature in detail
- Bullets: 4-6 specific benefits or capabilities
- CTA: Action-oriented button text
- Alternate image positions (left/right) for visual variety

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "showcases": [
    {
      "id": "showcase-1",
      "headline": "...",
      "subheadline": "...",
      "description": "...",
      "bullets": ["bullet 1", "bullet 2", ...],
      "cta": {
        "text": "Learn More",
        "href": "#"
      },
      "image_position": "left"
    }
  ]
}`,
		cfg.Business.Industry, cfg.Name, cfg.Idea, cfg.Business.TargetAudience,
		cfg.Brand.Tone, strings.Join(cfg.Business.UniqueSellingPoints, ", "), count))
}

// PricingPrompt builds the prompt for the pricing tiers.
func PricingPrompt(cfg *venture.Config, tierCount int) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are an expert pricing strategist for a %s company.

CONTEXT:
- Company: %s
- Business Idea: %s
- Target Audience: %s
- Industry: %s
- Currency: %s

TASK:
Generate %d pricing tiers for the landing page.

REQUIREMENTS:
- Create a clear progression from basic to premium
- Tier names should be memorable (e.g., Starter, Professional, Enterprise)
- Each tier should have 6-10 features
- Clearly differentiate tiers by features and price
- Middle tier should be highlighted as recommended
- Prices should be realistic for the industry
- Include both monthly and yearly pricing (yearly = monthly * 10, 2 months free)

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "headline": "Simple, transparent pricing",
  "subheadline": "Choose the plan that's right for you",
  "tiers": [
    {
      "id": "tier-1",
      "name": "Starter",
      "description": "Perfect for individuals...",
      "price": {
        "monthly": 29,
        "yearly": 290
      },
      "currency": "EUR",
      "billing_text": "per user/month",
      "features": [
        {"text": "Feature 1", "included": true},
        {"text": "Feature 2", "included": true},
        {"text": "Premium feature", "included": false}
      ],
      "cta": {
        "text": "Get Started",
        "href": "#signup"
      },
      "highlighted": false
    }
  ]
}`,
		cfg.Business.Industry, cfg.Name, cfg.Idea, cfg.Business.TargetAudience,
		cfg.Business.Industry, cfg.LandingPage.Sections.Pricing.Currency, tierCount))
}

// TestimonialsPrompt builds the prompt for customer testimonials.
func TestimonialsPrompt(cfg *venture.Config, count int) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are creating realistic testimonials for a %s company.

CONTEXT:
- Company: %s
- Business Idea: %s
- Target Audience: %s
- Value Proposition: %s

TASK:
Generate %d realistic testimonials from satisfied customers.

REQUIREMENTS:
- Each quote should be 30-60 words
- Include specific benefits or results mentioned
- Authors should have realistic names, titles, and companies
- Vary the industries and company sizes
- Include ratings (4 or 5 stars)
- Make them feel authentic, not generic

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "testimonials": [
    {
      "id": "testimonial-1",
      "quote": "...",
      "author": {
        "name": "...",
        "title": "...",
        "company": "..."
      },
      "rating": 5
    }
  ]
}`,
		cfg.Business.Industry, cfg.Name, cfg.Idea, cfg.Business.TargetAudience,
		cfg.Business.ValueProposition, count))
}

// FAQPrompt builds the prompt for the landing page FAQ.
func FAQPrompt(cfg *venture.Config, count int) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are creating FAQ content for a %s company.

CONTEXT:
- Company: %s
- Business Idea: %s
- Target Audience: %s
- Industry: %s

TASK:
Generate %d frequently asked questions and answers.

REQUIREMENTS:
- Questions should address common concerns and objections
- Answers should be 30-80 words
- Cover topics like: pricing, features, security, support, onboarding
- Use clear, helpful language
- Address potential objections directly

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "items": [
    {
      "id": "faq-1",
      "question": "...",
      "answer": "..."
    }
  ]
}`,
		cfg.Business.Industry, cfg.Name, cfg.Idea, cfg.Business.TargetAudience,
		cfg.Business.Industry, count))
}

// CTAPrompt builds the prompt for the closing call-to-action band.
func CTAPrompt(cfg *venture.Config) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are creating a final call-to-action section for a %s company.

CONTEXT:
- Company: %s
- Tagline: %s
- Target Audience: %s
- Tone: %s

TASK:
Generate compelling CTA section content.

REQUIREMENTS:
- Headline: 5-10 words, create urgency or excitement
- Subheadline: 15-25 words, reinforce the value proposition
- Primary CTA: 2-4 words, strong action
- Secondary CTA: 2-4 words, alternative action

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "headline": "...",
  "subheadline": "...",
  "primary_cta": {
    "text": "...",
    "href": "#signup"
  },
  "secondary_cta": {
    "text": "...",
    "href": "#demo"
  },
  "background_style": "gradient"
}`,
		cfg.Business.Industry, cfg.Name, cfg.Tagline, cfg.Business.TargetAudience, cfg.Brand.Tone))
}

// FooterPrompt builds the prompt for footer navigation. The route constraints
// baked into it keep most generated links inside the venture's route space;
// the links package catches the rest.
func FooterPrompt(cfg *venture.Config, columnCount int) string {
	handle := strings.ReplaceAll(strings.ToLower(cfg.Name), " ", "")
	return strings.TrimSpace(fmt.Sprintf(`
You are creating footer content for a %s company.

CONTEXT:
- Company: %s
- Industry: %s

TASK:
Generate footer content with %d navigation columns.

REQUIREMENTS:
- Column 1: Product links - MUST use anchor links for sections on the landing page: "/#features", "/#pricing", "/#faq"
- Column 2: Company links - Use page paths: "/about", "/careers", "/contact"
- Column 3: Resources - Use "/blog" for blog, external URLs for GitHub/docs
- Column 4: Legal - Use page paths: "/terms", "/privacy"
- Include social media links with full URLs
- Include copyright text

CRITICAL:
- For sections on the homepage (Features, Pricing, FAQ), use "/#features", "/#pricing", "/#faq" NOT "/features", "/pricing", "/faq"
- Only these pages exist: /about, /careers, /contact, /blog, /terms, /privacy
- For external resources, use full https:// URLs

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "columns": [
    {
      "title": "Product",
      "links": [
        {"text": "Features", "href": "/#features"},
        {"text": "Pricing", "href": "/#pricing"},
        {"text": "FAQ", "href": "/#faq"}
      ]
    },
    {
      "title": "Company",
      "links": [
        {"text": "About", "href": "/about"},
        {"text": "Careers", "href": "/careers"},
        {"text": "Contact", "href": "/contact"}
      ]
    },
    {
      "title": "Resources",
      "links": [
        {"text": "Blog", "href": "/blog"}
      ]
    },
    {
      "title": "Legal",
      "links": [
        {"text": "Terms", "href": "/terms"},
        {"text": "Privacy", "href": "/privacy"}
      ]
    }
  ],
  "social_links": [
    {"platform": "twitter", "href": "https://twitter.com/%s"},
    {"platform": "linkedin", "href": "https://linkedin.com/company/%s"}
  ],
  "copyright": "© %d %s. All rights reserved.",
  "bottom_links": [
    {"text": "Terms", "href": "/terms"},
    {"text": "Privacy", "href": "/privacy"}
  ]
}`,
		cfg.Business.Industry, cfg.Name, cfg.Business.Industry, columnCount,
		handle, handle, time.Now().Year(), cfg.Name))
}

// TopicsPrompt builds the prompt for blog topic planning.
func TopicsPrompt(cfg *venture.Config, count int) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are an SEO expert creating blog topics for a %s company.

CONTEXT:
- Company: %s
- Business Idea: %s
- Target Audience: %s
- Industry: %s
- Primary Keyword: %s
- Secondary Keywords: %s
- Locale: %s

TASK:
Generate %d SEO-optimized blog topics that will drive organic traffic.

REQUIREMENTS:
For each topic:
- Title: Compelling, includes primary or secondary keyword
- Slug: URL-friendly, lowercase, hyphens only
- Meta Title: 50-60 characters, includes keyword
- Meta Description: 150-160 characters, compelling, includes keyword
- Primary Keyword: Main search term to target
- Secondary Keywords: 3-5 related terms
- Search Intent: One of (informational, navigational, transactional, commercial)
- Priority: 1-10 (1 = highest priority)
- Outline: 7-9 H2 section titles

Focus on:
- How-to guides
- Comparison articles
- Industry insights
- Problem-solving content
- Best practices

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "topics": [
    {
      "id": "topic-1",
      "title": "...",
      "slug": "topic-slug-here",
      "meta_title": "...",
      "meta_description": "...",
      "primary_keyword": "...",
      "secondary_keywords": ["kw1", "kw2", "kw3"],
      "search_intent": "informational",
      "priority": 1,
      "outline": ["Section 1", "Section 2", ...]
    }
  ]
}`,
		cfg.Business.Industry, cfg.Name, cfg.Idea, cfg.Business.TargetAudience,
		cfg.Business.Industry, cfg.Blog.SEO.PrimaryKeyword,
		strings.Join(cfg.Blog.SEO.SecondaryKeywords, ", "), cfg.Blog.Locale, count))
}

// localeLanguage maps a locale tag to the prompt language name.
func localeLanguage(locale string) string {
	if strings.HasPrefix(locale, "de") {
		return "German"
	}
	return "English"
}

// ArticlePrompt builds the full-body prompt for one blog article.
func ArticlePrompt(cfg *venture.Config, topic core.BlogTopic) string {
	language := localeLanguage(cfg.Blog.Locale)

	return strings.TrimSpace(fmt.Sprintf(`
You are an expert content writer creating a comprehensive blog article in %s.

CONTEXT:
- Company: %s
- Industry: %s
- Target Audience: %s
- Locale: %s

ARTICLE TOPIC:
- Title: %s
- Primary Keyword: %s
- Secondary Keywords: %s
- Search Intent: %s
- Outline: %s

TASK:
Generate a complete, comprehensive blog article.

REQUIREMENTS:
1. Word Count: %d-%d words
2. Headline: Compelling, unique, includes primary keyword
3. Subtitle: 15-25 words expanding on headline
4. Teaser: 100-150 words introducing the topic (hook the reader)
5. TLDR: 40-60 words summarizing key points
6. Key Takeaways: 4-6 bullet points with main insights
7. Sections: %d sections following the outline
   - Each section: 400-600 words
   - Include practical examples
   - Use %s naturally
8. FAQ: 5-7 questions addressing common queries
9. Tables: 1-2 comparison or data tables if relevant

CONTENT GUIDELINES:
- Write in %s
- Use active voice
- Include specific examples and data
- Address the reader directly (you/Sie)
- Be authoritative but accessible
- Naturally include keywords (1-2%% density)

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "headline": "...",
  "subtitle": "...",
  "teaser": "...",
  "tldr": "...",
  "key_takeaways": [
    {"id": "kt-1", "text": "...", "order": 0}
  ],
  "sections": [
    {
      "id": "section-1",
      "title": "...",
      "content": "Full section content here with multiple paragraphs...",
      "order": 0
    }
  ],
  "faq_items": [
    {"id": "faq-1", "question": "...", "answer": "..."}
  ],
  "tables": [
    {
      "id": "table-1",
      "title": "...",
      "headers": ["Column 1", "Column 2", "Column 3"],
      "rows": [
        ["Row 1 Col 1", "Row 1 Col 2", "Row 1 Col 3"]
      ],
      "caption": "..."
    }
  ]
}`,
		language, cfg.Name, cfg.Business.Industry, cfg.Business.TargetAudience,
		cfg.Blog.Locale, topic.Title, topic.PrimaryKeyword,
		strings.Join(topic.SecondaryKeywords, ", "), topic.SearchIntent,
		strings.Join(topic.Outline, " | "),
		cfg.Blog.Content.MinWordCount, cfg.Blog.Content.MaxWordCount,
		cfg.Blog.Content.SectionsPerArticle, language, language))
}

// SEOMetaPrompt builds the metadata-refinement prompt for one article.
func SEOMetaPrompt(cfg *venture.Config, topic core.BlogTopic) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are an SEO expert optimizing metadata for a blog article.

CONTEXT:
- Company: %s
- Article Title: %s
- Primary Keyword: %s
- Locale: %s

TASK:
Generate optimized SEO metadata.

REQUIREMENTS:
- Meta Title: 50-60 characters, includes primary keyword, compelling
- Meta Description: 150-160 characters, includes keyword, has CTA
- Keywords: 5-10 relevant keywords for the article

OUTPUT FORMAT:
Return ONLY valid JSON:
{
  "meta_title": "...",
  "meta_description": "...",
  "keywords": ["kw1", "kw2", ...]
}`,
		cfg.Name, topic.Title, topic.PrimaryKeyword, cfg.Blog.Locale))
}
