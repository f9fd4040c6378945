package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"openventure/internal/core"
	"openventure/internal/llm"
	"openventure/internal/logger"
	"openventure/internal/parser"
	"openventure/internal/slug"
	"openventure/internal/venture"
)

const (
	relatedArticleCount = 3
	teaserTruncateLen   = 150
)

// ArticleGenerator produces the blog manifest for a venture. Articles are
// generated strictly sequentially with a configurable delay between topics
// to stay under the model API's rate limits.
type ArticleGenerator struct {
	cfg    *venture.Config
	client llm.TextGenerator

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewArticleGenerator creates a blog content generator backed by client.
func NewArticleGenerator(cfg *venture.Config, client llm.TextGenerator) *ArticleGenerator {
	return &ArticleGenerator{cfg: cfg, client: client, sleep: time.Sleep}
}

// GenerateTopics asks the model for the article plan and normalizes it:
// missing ids become topic-N, missing slugs derive from the title, missing
// priorities follow list position.
func (g *ArticleGenerator) GenerateTopics(ctx context.Context) ([]core.BlogTopic, error) {
	count := g.cfg.Blog.ArticleCount
	response, err := g.client.Generate(ctx, TopicsPrompt(g.cfg, count))
	if err != nil {
		return nil, fmt.Errorf("topic generation: %w", err)
	}

	var data struct {
		Topics []core.BlogTopic `json:"topics"`
	}
	if err := parser.Parse(response, &data); err != nil {
		return nil, fmt.Errorf("topic generation: %w", err)
	}
	if len(data.Topics) == 0 {
		return nil, fmt.Errorf("topic generation: model returned no topics")
	}

	for i := range data.Topics {
		t := &data.Topics[i]
		if t.ID == "" {
			t.ID = fmt.Sprintf("topic-%d", i+1)
		}
		if t.Slug == "" {
			t.Slug = slug.Make(t.Title)
		}
		if t.Priority == 0 {
			t.Priority = i + 1
		}
	}

	return data.Topics, nil
}

// GenerateArticle produces one full article for a topic. It makes two model
// calls: one for the body, one for refined SEO metadata.
func (g *ArticleGenerator) GenerateArticle(ctx context.Context, topic core.BlogTopic) (*core.BlogArticle, error) {
	logger.Infof("generating article: %s", topic.Title)

	articleResponse, err := g.client.Generate(ctx, ArticlePrompt(g.cfg, topic))
	if err != nil {
		return nil, fmt.Errorf("article body: %w", err)
	}

	var body struct {
		Headline     string                `json:"headline"`
		Subtitle     string                `json:"subtitle"`
		Teaser       string                `json:"teaser"`
		TLDR         string                `json:"tldr"`
		KeyTakeaways []core.KeyTakeaway    `json:"key_takeaways"`
		Sections     []core.ArticleSection `json:"sections"`
		FAQItems     []core.ArticleFAQItem `json:"faq_items"`
		Tables       []core.ArticleTable   `json:"tables"`
	}
	if err := parser.Parse(articleResponse, &body); err != nil {
		return nil, fmt.Errorf("article body: %w", err)
	}

	seoResponse, err := g.client.Generate(ctx, SEOMetaPrompt(g.cfg, topic))
	if err != nil {
		return nil, fmt.Errorf("seo metadata: %w", err)
	}

	var meta struct {
		MetaTitle       string   `json:"meta_title"`
		MetaDescription string   `json:"meta_description"`
		Keywords        []string `json:"keywords"`
	}
	if err := parser.Parse(seoResponse, &meta); err != nil {
		return nil, fmt.Errorf("seo metadata: %w", err)
	}

	for i := range body.Sections {
		if body.Sections[i].ID == "" {
			body.Sections[i].ID = fmt.Sprintf("section-%d", i+1)
		}
		if body.Sections[i].Order == 0 && i > 0 {
			body.Sections[i].Order = i
		}
	}
	for i := range body.KeyTakeaways {
		if body.KeyTakeaways[i].ID == "" {
			body.KeyTakeaways[i].ID = fmt.Sprintf("kt-%d", i+1)
		}
		if body.KeyTakeaways[i].Order == 0 && i > 0 {
			body.KeyTakeaways[i].Order = i
		}
	}
	for i := range body.FAQItems {
		if body.FAQItems[i].ID == "" {
			body.FAQItems[i].ID = fmt.Sprintf("faq-%d", i+1)
		}
	}
	for i := range body.Tables {
		if body.Tables[i].ID == "" {
			body.Tables[i].ID = fmt.Sprintf("table-%d", i+1)
		}
	}

	wordCount := g.countArticleWords(body.Teaser, body.TLDR, body.Sections, body.FAQItems)

	metaTitle := meta.MetaTitle
	if metaTitle == "" {
		metaTitle = topic.MetaTitle
	}
	metaDescription := meta.MetaDescription
	if metaDescription == "" {
		metaDescription = topic.MetaDescription
	}
	headline := body.Headline
	if headline == "" {
		headline = topic.Title
	}

	article := &core.BlogArticle{
		ID:              uuid.NewString(),
		Slug:            topic.Slug,
		MetaTitle:       metaTitle,
		MetaDescription: metaDescription,
		Headline:        headline,
		Subtitle:        body.Subtitle,
		Teaser:          body.Teaser,
		TLDR:            body.TLDR,
		KeyTakeaways:    body.KeyTakeaways,
		Sections:        body.Sections,
		FAQItems:        body.FAQItems,
		Tables:          body.Tables,
		Sources:         []core.ArticleSource{},
		Author:          g.buildAuthor(),
		PublicationDate: time.Now().UTC().Format("2006-01-02"),
		ReadTime:        core.ReadTime(wordCount),
		WordCount:       wordCount,
		RelatedArticles: []core.RelatedArticle{},
		InternalLinks:   []core.InternalLink{},
		SEO: core.ArticleSEO{
			PrimaryKeyword:    topic.PrimaryKeyword,
			SecondaryKeywords: topic.SecondaryKeywords,
			KeywordDensity:    1.5,
		},
	}

	return article, nil
}

// Generate runs the full blog flow: plan topics, generate each article
// sequentially, then cross-link the survivors. A failed article is logged
// and skipped; the rest of the run proceeds.
func (g *ArticleGenerator) Generate(ctx context.Context) (*core.BlogManifest, error) {
	logger.Info("generating blog topics")
	topics, err := g.GenerateTopics(ctx)
	if err != nil {
		return nil, err
	}

	logger.Infof("generating %d articles", len(topics))
	delay := time.Duration(g.cfg.Advanced.RateLimitDelayMs) * time.Millisecond

	var articles []core.BlogArticle
	for _, topic := range topics {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		article, err := g.GenerateArticle(ctx, topic)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to generate article for topic %q", topic.Title), err)
			continue
		}
		articles = append(articles, *article)

		if delay > 0 {
			g.sleep(delay)
		}
	}

	linkRelatedArticles(articles)

	return &core.BlogManifest{
		VentureID:   uuid.NewString(),
		VentureName: g.cfg.Name,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Locale:      g.cfg.Blog.Locale,
		Articles:    articles,
		Topics:      topics,
	}, nil
}

// linkRelatedArticles points each article at up to three of its siblings,
// carrying a truncated teaser for preview cards.
func linkRelatedArticles(articles []core.BlogArticle) {
	for i := range articles {
		related := make([]core.RelatedArticle, 0, relatedArticleCount)
		for j := range articles {
			if j == i || len(related) == relatedArticleCount {
				continue
			}
			teaser := articles[j].Teaser
			if len(teaser) > teaserTruncateLen {
				teaser = teaser[:teaserTruncateLen]
			}
			related = append(related, core.RelatedArticle{
				Slug:   articles[j].Slug,
				Title:  articles[j].Headline,
				Teaser: teaser + "...",
			})
		}
		articles[i].RelatedArticles = related
	}
}

func (g *ArticleGenerator) countArticleWords(teaser, tldr string, sections []core.ArticleSection, faqs []core.ArticleFAQItem) int {
	parts := []string{teaser, tldr}
	for _, s := range sections {
		parts = append(parts, s.Content)
	}
	for _, f := range faqs {
		parts = append(parts, f.Answer)
	}
	return core.CountWords(strings.Join(parts, " "))
}

func (g *ArticleGenerator) buildAuthor() core.ArticleAuthor {
	author := core.ArticleAuthor{
		Name:     g.cfg.Blog.Author.Name,
		Role:     g.cfg.Blog.Author.Role,
		Company:  g.cfg.Blog.Author.Company,
		ImageURL: g.cfg.Blog.Author.ImageURL,
	}
	if author.Name == "" {
		author.Name = "Editorial Team"
	}
	if author.Role == "" {
		author.Role = "Content Team"
	}
	if author.Company == "" {
		author.Company = g.cfg.Name
	}
	return author
}
