// Package generator turns a venture config into landing page and blog
// content by prompting a text model and normalizing its JSON output.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"openventure/internal/core"
	"openventure/internal/llm"
	"openventure/internal/logger"
	"openventure/internal/parser"
	"openventure/internal/venture"
)

// LandingGenerator produces the single landing page document for a venture.
type LandingGenerator struct {
	cfg    *venture.Config
	client llm.TextGenerator
}

// NewLandingGenerator creates a landing page generator backed by client.
func NewLandingGenerator(cfg *venture.Config, client llm.TextGenerator) *LandingGenerator {
	return &LandingGenerator{cfg: cfg, client: client}
}

// Generate runs all section generations concurrently and assembles the page.
// Any section failure aborts the whole page; a landing page with holes in it
// is worse than no landing page.
func (g *LandingGenerator) Generate(ctx context.Context) (*core.LandingPageContent, error) {
	logger.Info("generating landing page content")

	page := &core.LandingPageContent{
		VentureID:   uuid.NewString(),
		VentureName: g.cfg.Name,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		hero, err := g.GenerateHero(ctx)
		if err != nil {
			return fmt.Errorf("hero: %w", err)
		}
		page.Hero = *hero
		return nil
	})
	eg.Go(func() error {
		page.SocialProof = g.GenerateSocialProof()
		return nil
	})
	eg.Go(func() error {
		features, err := g.GenerateFeatures(ctx)
		if err != nil {
			return fmt.Errorf("features: %w", err)
		}
		page.Features = *features
		return nil
	})
	eg.Go(func() error {
		showcase, err := g.GenerateFeatureShowcases(ctx)
		if err != nil {
			return fmt.Errorf("feature showcase: %w", err)
		}
		page.FeatureShowcase = *showcase
		return nil
	})
	eg.Go(func() error {
		pricing, err := g.GeneratePricing(ctx)
		if err != nil {
			return fmt.Errorf("pricing: %w", err)
		}
		page.Pricing = *pricing
		return nil
	})
	eg.Go(func() error {
		testimonials, err := g.GenerateTestimonials(ctx)
		if err != nil {
			return fmt.Errorf("testimonials: %w", err)
		}
		page.Testimonials = *testimonials
		return nil
	})
	eg.Go(func() error {
		faq, err := g.GenerateFAQ(ctx)
		if err != nil {
			return fmt.Errorf("faq: %w", err)
		}
		page.FAQ = *faq
		return nil
	})
	eg.Go(func() error {
		cta, err := g.GenerateCTA(ctx)
		if err != nil {
			return fmt.Errorf("cta: %w", err)
		}
		page.CTA = *cta
		return nil
	})
	eg.Go(func() error {
		footer, err := g.GenerateFooter(ctx)
		if err != nil {
			return fmt.Errorf("footer: %w", err)
		}
		page.Footer = *footer
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("landing page generation failed: %w", err)
	}

	page.Meta = g.buildMeta()
	return page, nil
}

// GenerateHero generates the hero section.
func (g *LandingGenerator) GenerateHero(ctx context.Context) (*core.HeroContent, error) {
	response, err := g.client.Generate(ctx, HeroPrompt(g.cfg))
	if err != nil {
		return nil, err
	}
	var hero core.HeroContent
	if err := parser.Parse(response, &hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// GenerateSocialProof synthesizes the logo strip locally. There is nothing
// a model could add here: the logos are placeholders until real customers
// exist.
func (g *LandingGenerator) GenerateSocialProof() core.SocialProofContent {
	logoCount := g.cfg.LandingPage.Sections.SocialProof.LogoCount
	logos := make([]core.LogoItem, logoCount)
	for i := range logos {
		logos[i] = core.LogoItem{
			Name: fmt.Sprintf("Partner %d", i+1),
			Alt:  fmt.Sprintf("Partner %d logo", i+1),
		}
	}
	return core.SocialProofContent{
		Headline: "Trusted by innovative companies worldwide",
		Logos:    logos,
	}
}

// GenerateFeatures generates the feature card grid.
func (g *LandingGenerator) GenerateFeatures(ctx context.Context) (*core.FeaturesContent, error) {
	count := g.cfg.LandingPage.Sections.Features.Count
	response, err := g.client.Generate(ctx, FeaturesPrompt(g.cfg, count))
	if err != nil {
		return nil, err
	}

	var data struct {
		Features []core.Feature `json:"features"`
	}
	if err := parser.Parse(response, &data); err != nil {
		return nil, err
	}

	for i := range data.Features {
		if data.Features[i].ID == "" {
			data.Features[i].ID = fmt.Sprintf("feature-%d", i+1)
		}
	}

	return &core.FeaturesContent{
		Headline:    fmt.Sprintf("Why choose %s?", g.cfg.Name),
		Subheadline: "Everything you need to succeed",
		Features:    data.Features,
	}, nil
}

// GenerateFeatureShowcases generates the deep-dive showcase blocks. Image
// positions alternate left/right regardless of what the model returned.
func (g *LandingGenerator) GenerateFeatureShowcases(ctx context.Context) (*core.FeatureShowcaseContent, error) {
	count := g.cfg.LandingPage.Sections.FeatureShowcase.Count
	response, err := g.client.Generate(ctx, FeatureShowcasesPrompt(g.cfg, count))
	if err != nil {
		return nil, err
	}

	var data core.FeatureShowcaseContent
	if err := parser.Parse(response, &data); err != nil {
		return nil, err
	}

	for i := range data.Showcases {
		if data.Showcases[i].ID == "" {
			data.Showcases[i].ID = fmt.Sprintf("showcase-%d", i+1)
		}
		if i%2 == 0 {
			data.Showcases[i].ImagePosition = "left"
		} else {
			data.Showcases[i].ImagePosition = "right"
		}
	}

	return &data, nil
}

// GeneratePricing generates the pricing section. The middle tier is always
// the highlighted one, and the billing toggle follows the configured period.
func (g *LandingGenerator) GeneratePricing(ctx context.Context) (*core.PricingContent, error) {
	tierCount := g.cfg.LandingPage.Sections.Pricing.Tiers
	response, err := g.client.Generate(ctx, PricingPrompt(g.cfg, tierCount))
	if err != nil {
		return nil, err
	}

	var data core.PricingContent
	if err := parser.Parse(response, &data); err != nil {
		return nil, err
	}

	for i := range data.Tiers {
		if data.Tiers[i].ID == "" {
			data.Tiers[i].ID = fmt.Sprintf("tier-%d", i+1)
		}
		data.Tiers[i].Highlighted = i == 1
	}
	data.BillingToggle = g.cfg.LandingPage.Sections.Pricing.BillingPeriod == "both"

	return &data, nil
}

// GenerateTestimonials generates the testimonials section.
func (g *LandingGenerator) GenerateTestimonials(ctx context.Context) (*core.TestimonialsContent, error) {
	count := g.cfg.LandingPage.Sections.Testimonials.Count
	response, err := g.client.Generate(ctx, TestimonialsPrompt(g.cfg, count))
	if err != nil {
		return nil, err
	}

	var data core.TestimonialsContent
	if err := parser.Parse(response, &data); err != nil {
		return nil, err
	}

	for i := range data.Testimonials {
		if data.Testimonials[i].ID == "" {
			data.Testimonials[i].ID = fmt.Sprintf("testimonial-%d", i+1)
		}
	}
	data.Headline = "What our customers say"

	return &data, nil
}

// GenerateFAQ generates the landing page FAQ section.
func (g *LandingGenerator) GenerateFAQ(ctx context.Context) (*core.FAQContent, error) {
	count := g.cfg.LandingPage.Sections.FAQ.Count
	response, err := g.client.Generate(ctx, FAQPrompt(g.cfg, count))
	if err != nil {
		return nil, err
	}

	var data core.FAQContent
	if err := parser.Parse(response, &data); err != nil {
		return nil, err
	}

	for i := range data.Items {
		if data.Items[i].ID == "" {
			data.Items[i].ID = fmt.Sprintf("faq-%d", i+1)
		}
	}
	data.Headline = "Frequently Asked Questions"
	data.Subheadline = "Everything you need to know"

	return &data, nil
}

// GenerateCTA generates the closing call-to-action band.
func (g *LandingGenerator) GenerateCTA(ctx context.Context) (*core.CTAContent, error) {
	response, err := g.client.Generate(ctx, CTAPrompt(g.cfg))
	if err != nil {
		return nil, err
	}
	var cta core.CTAContent
	if err := parser.Parse(response, &cta); err != nil {
		return nil, err
	}
	return &cta, nil
}

// GenerateFooter generates the footer navigation.
func (g *LandingGenerator) GenerateFooter(ctx context.Context) (*core.FooterContent, error) {
	columnCount := g.cfg.LandingPage.Sections.Footer.Columns
	response, err := g.client.Generate(ctx, FooterPrompt(g.cfg, columnCount))
	if err != nil {
		return nil, err
	}
	var footer core.FooterContent
	if err := parser.Parse(response, &footer); err != nil {
		return nil, err
	}
	return &footer, nil
}

func (g *LandingGenerator) buildMeta() core.PageMeta {
	description := g.cfg.Business.ValueProposition
	if description == "" {
		description = g.cfg.Tagline
	}

	var keywords []string
	if kw := g.cfg.Blog.SEO.PrimaryKeyword; kw != "" {
		keywords = append(keywords, kw)
	}
	for _, kw := range g.cfg.Blog.SEO.SecondaryKeywords {
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return core.PageMeta{
		Title:       fmt.Sprintf("%s - %s", g.cfg.Name, g.cfg.Tagline),
		Description: description,
		Keywords:    keywords,
	}
}
