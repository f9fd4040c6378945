// Package pipeline orchestrates a full venture generation run: landing page,
// blog content, and the run manifest tying them together on disk.
package pipeline

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"openventure/internal/core"
	"openventure/internal/generator"
	"openventure/internal/llm"
	"openventure/internal/logger"
	"openventure/internal/venture"
)

// Options controls which parts of a run execute and where output lands.
type Options struct {
	SkipLanding bool
	SkipBlog    bool
	OutputDir   string // Overrides the config's output directory when set
}

// Outputs records the relative paths of the run's products; nil-able strings
// keep absent outputs out of the JSON as explicit nulls.
type Outputs struct {
	LandingPage *string `json:"landing_page"`
	Blog        *string `json:"blog"`
}

// Stats summarizes a run for the manifest.
type Stats struct {
	LandingSections int `json:"landing_sections"`
	BlogArticles    int `json:"blog_articles"`
	TotalWords      int `json:"total_words"`
}

// Manifest is the top-level run record written to manifest.json.
type Manifest struct {
	VentureID   string  `json:"venture_id"`
	VentureName string  `json:"venture_name"`
	GeneratedAt string  `json:"generated_at"`
	ConfigHash  string  `json:"config_hash"`
	Outputs     Outputs `json:"outputs"`
	Stats       Stats   `json:"stats"`
}

// Result is what a pipeline run hands back to the caller.
type Result struct {
	Manifest    Manifest
	LandingPage *core.LandingPageContent
	Blog        *core.BlogManifest
	OutputDir   string
}

// landingSectionCount is the number of top-level fields in the landing
// document, reported in run stats.
const landingSectionCount = 13

// Run executes the generation pipeline for cfg. A section of the run only
// executes when both its config flag and its option allow it.
func Run(ctx context.Context, cfg *venture.Config, client llm.TextGenerator, opts Options) (*Result, error) {
	logger.Infof("starting pipeline for %s", cfg.Name)

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}
	if outputDir == "" {
		outputDir = "content"
	}

	for _, dir := range []string{
		outputDir,
		filepath.Join(outputDir, "landing"),
		filepath.Join(outputDir, "blog"),
		filepath.Join(outputDir, "images"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	// A copy of the config travels with the output so downstream consumers
	// never need the original file.
	if err := writeJSON(filepath.Join(outputDir, "config.json"), cfg); err != nil {
		return nil, err
	}

	var landingPage *core.LandingPageContent
	if !opts.SkipLanding && cfg.LandingPage.Enabled {
		page, err := generator.NewLandingGenerator(cfg, client).Generate(ctx)
		if err != nil {
			return nil, err
		}
		landingPage = page
		if err := writeJSON(filepath.Join(outputDir, "landing", "content.json"), landingPage); err != nil {
			return nil, err
		}
		logger.Info("landing page content saved")
	}

	var blog *core.BlogManifest
	if !opts.SkipBlog && cfg.Blog.Enabled {
		manifest, err := generator.NewArticleGenerator(cfg, client).Generate(ctx)
		if err != nil {
			return nil, err
		}
		blog = manifest
		if err := writeJSON(filepath.Join(outputDir, "blog", "manifest.json"), blog); err != nil {
			return nil, err
		}
		for i := range blog.Articles {
			article := &blog.Articles[i]
			if err := writeJSON(filepath.Join(outputDir, "blog", article.Slug+".json"), article); err != nil {
				return nil, err
			}
		}
		logger.Infof("blog content saved, %d articles generated", len(blog.Articles))
	}

	manifest, err := buildManifest(cfg, landingPage, blog)
	if err != nil {
		return nil, err
	}
	if err := writeJSON(filepath.Join(outputDir, "manifest.json"), manifest); err != nil {
		return nil, err
	}

	logger.Infof("pipeline complete, output directory: %s", outputDir)

	return &Result{
		Manifest:    *manifest,
		LandingPage: landingPage,
		Blog:        blog,
		OutputDir:   outputDir,
	}, nil
}

// RunFromConfig loads and validates a venture config, then runs the pipeline.
func RunFromConfig(ctx context.Context, configPath string, client llm.TextGenerator, opts Options) (*Result, error) {
	cfg, err := venture.Load(configPath)
	if err != nil {
		return nil, err
	}
	return Run(ctx, cfg, client, opts)
}

func buildManifest(cfg *venture.Config, landingPage *core.LandingPageContent, blog *core.BlogManifest) (*Manifest, error) {
	ventureID := cfg.Name
	generatedAt := ""
	if landingPage != nil {
		ventureID = landingPage.VentureID
		generatedAt = landingPage.GeneratedAt
	} else if blog != nil {
		ventureID = blog.VentureID
		generatedAt = blog.GeneratedAt
	}

	hash, err := configHash(cfg)
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		VentureID:   ventureID,
		VentureName: cfg.Name,
		GeneratedAt: generatedAt,
		ConfigHash:  hash,
	}

	if landingPage != nil {
		p := "landing/content.json"
		m.Outputs.LandingPage = &p
		m.Stats.LandingSections = landingSectionCount
	}
	if blog != nil {
		p := "blog/manifest.json"
		m.Outputs.Blog = &p
		m.Stats.BlogArticles = len(blog.Articles)
		for _, a := range blog.Articles {
			m.Stats.TotalWords += a.WordCount
		}
	}

	return m, nil
}

// configHash is a short display-only fingerprint of the serialized config,
// used to spot stale output directories at a glance.
func configHash(cfg *venture.Config) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to hash config: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	if len(encoded) > 32 {
		encoded = encoded[:32]
	}
	return encoded, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
