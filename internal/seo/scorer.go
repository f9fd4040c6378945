// Package seo scores generated articles for search quality using the model
// as the judge.
package seo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"openventure/internal/core"
	"openventure/internal/llm"
	"openventure/internal/logger"
	"openventure/internal/parser"
)

// DefaultThreshold is the minimum overall score for an article to pass.
const DefaultThreshold = 70

// fallbackScore is used when scoring itself fails; it passes so a flaky
// model call never blocks a pipeline.
const fallbackScore = 75

// scoringDelay spaces out sequential scoring calls.
const scoringDelay = time.Second

// Breakdown holds per-category scores, each 0-100.
type Breakdown struct {
	KeywordOptimization int `json:"keyword_optimization"`
	ContentQuality      int `json:"content_quality"`
	Structure           int `json:"structure"`
	Readability         int `json:"readability"`
	MetaTags            int `json:"meta_tags"`
}

// Score is the SEO evaluation of one article.
type Score struct {
	Overall         int       `json:"overall"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendations []string  `json:"recommendations"`
	Passed          bool      `json:"passed"`
}

// ArticleScore pairs an article with its evaluation.
type ArticleScore struct {
	Article *core.BlogArticle `json:"article"`
	Score   Score             `json:"score"`
}

// Scorer evaluates articles against a pass threshold.
type Scorer struct {
	client    llm.TextGenerator
	threshold int

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewScorer creates an article scorer. A zero threshold uses the default.
func NewScorer(client llm.TextGenerator, threshold int) *Scorer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Scorer{client: client, threshold: threshold, sleep: time.Sleep}
}

func scoringPrompt(article *core.BlogArticle) string {
	primaryKeyword := article.SEO.PrimaryKeyword
	if primaryKeyword == "" {
		primaryKeyword = "not specified"
	}
	secondaryKeywords := strings.Join(article.SEO.SecondaryKeywords, ", ")
	if secondaryKeywords == "" {
		secondaryKeywords = "none"
	}

	teaser := article.Teaser
	if len(teaser) > 500 {
		teaser = teaser[:500]
	}
	firstSection := "No content"
	if len(article.Sections) > 0 {
		firstSection = article.Sections[0].Content
		if len(firstSection) > 1000 {
			firstSection = firstSection[:1000]
		}
	}

	return fmt.Sprintf(`You are an SEO expert. Analyze this article and score it from 0-100 in each category.

ARTICLE:
Title: %s
Meta Description: %s
Headline: %s
Primary Keyword: %s
Secondary Keywords: %s
Word Count: %d
Sections: %d
Has Tables: %t
Has FAQs: %t
Has Sources: %t

TEASER:
%s

FIRST SECTION CONTENT:
%s

Evaluate and return ONLY valid JSON:
{
  "overall": <0-100>,
  "breakdown": {
    "keyword_optimization": <0-100>,
    "content_quality": <0-100>,
    "structure": <0-100>,
    "readability": <0-100>,
    "meta_tags": <0-100>
  },
  "recommendations": ["<specific improvement 1>", "<specific improvement 2>", "<specific improvement 3>"]
}`,
		article.MetaTitle, article.MetaDescription, article.Headline,
		primaryKeyword, secondaryKeywords, article.WordCount,
		len(article.Sections), len(article.Tables) > 0,
		len(article.FAQItems) > 0, len(article.Sources) > 0,
		teaser, firstSection)
}

// ScoreArticle evaluates one article. A scoring failure falls back to a
// default passing score rather than failing the caller.
func (s *Scorer) ScoreArticle(ctx context.Context, article *core.BlogArticle) Score {
	response, err := s.client.Generate(ctx, scoringPrompt(article))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to score article %q", article.Headline), err)
		return s.defaultScore()
	}

	var score Score
	if err := parser.Parse(response, &score); err != nil {
		logger.Error(fmt.Sprintf("failed to parse score for article %q", article.Headline), err)
		return s.defaultScore()
	}

	score.Passed = score.Overall >= s.threshold
	return score
}

// ScoreAll evaluates articles sequentially with a delay between calls.
func (s *Scorer) ScoreAll(ctx context.Context, articles []core.BlogArticle) ([]ArticleScore, error) {
	results := make([]ArticleScore, 0, len(articles))
	for i := range articles {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		article := &articles[i]
		score := s.ScoreArticle(ctx, article)
		results = append(results, ArticleScore{Article: article, Score: score})

		if i < len(articles)-1 {
			s.sleep(scoringDelay)
		}
	}
	return results, nil
}

func (s *Scorer) defaultScore() Score {
	return Score{
		Overall: fallbackScore,
		Breakdown: Breakdown{
			KeywordOptimization: fallbackScore,
			ContentQuality:      fallbackScore,
			Structure:           fallbackScore,
			Readability:         fallbackScore,
			MetaTags:            fallbackScore,
		},
		Recommendations: []string{"Unable to analyze - using default score"},
		Passed:          true,
	}
}

// FilterPassing returns the articles whose scores met the threshold.
func FilterPassing(results []ArticleScore) []*core.BlogArticle {
	var passing []*core.BlogArticle
	for _, r := range results {
		if r.Score.Passed {
			passing = append(passing, r.Article)
		}
	}
	return passing
}

// FormatReport renders scoring results as markdown.
func FormatReport(results []ArticleScore) string {
	passing := 0
	for _, r := range results {
		if r.Score.Passed {
			passing++
		}
	}

	var b strings.Builder
	b.WriteString("# Article SEO Scoring Report\n\n")
	fmt.Fprintf(&b, "**Total Articles:** %d\n", len(results))
	fmt.Fprintf(&b, "**Passing:** %d\n", passing)
	fmt.Fprintf(&b, "**Failing:** %d\n\n", len(results)-passing)
	b.WriteString("## Individual Scores\n\n")

	for _, r := range results {
		status := "FAIL"
		if r.Score.Passed {
			status = "PASS"
		}
		fmt.Fprintf(&b, "### [%s] %s\n", status, r.Article.Headline)
		fmt.Fprintf(&b, "- **Overall:** %d/100\n", r.Score.Overall)
		fmt.Fprintf(&b, "- **Keyword Optimization:** %d/100\n", r.Score.Breakdown.KeywordOptimization)
		fmt.Fprintf(&b, "- **Content Quality:** %d/100\n", r.Score.Breakdown.ContentQuality)
		fmt.Fprintf(&b, "- **Structure:** %d/100\n", r.Score.Breakdown.Structure)
		fmt.Fprintf(&b, "- **Readability:** %d/100\n", r.Score.Breakdown.Readability)
		fmt.Fprintf(&b, "- **Meta Tags:** %d/100\n", r.Score.Breakdown.MetaTags)
		if len(r.Score.Recommendations) > 0 {
			b.WriteString("- **Recommendations:**\n")
			for _, rec := range r.Score.Recommendations {
				fmt.Fprintf(&b, "  - %s\n", rec)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
