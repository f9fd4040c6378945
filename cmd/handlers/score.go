package handlers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"openventure/internal/config"
	"openventure/internal/core"
	"openventure/internal/llm"
	"openventure/internal/seo"
)

// scoringTemperature keeps evaluations repeatable; scoring wants judgment,
// not creativity.
const scoringTemperature = 0.3

// NewScoreCmd creates the score command
func NewScoreCmd() *cobra.Command {
	var (
		contentDir string
		resultsDir string
		threshold  int
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score generated articles for SEO quality",
		Long: `Score evaluates every generated blog article with the model acting
as an SEO reviewer, producing per-category scores and recommendations.

Articles scoring below the threshold are flagged in the report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath := filepath.Join(contentDir, "blog", "manifest.json")
			data, err := os.ReadFile(manifestPath)
			if err != nil {
				return fmt.Errorf("failed to read blog manifest (run generate first): %w", err)
			}

			var manifest core.BlogManifest
			if err := json.Unmarshal(data, &manifest); err != nil {
				return fmt.Errorf("failed to parse blog manifest: %w", err)
			}
			if len(manifest.Articles) == 0 {
				return fmt.Errorf("no articles found in %s", manifestPath)
			}

			appCfg := config.Get()
			if threshold <= 0 {
				threshold = appCfg.Scoring.Threshold
			}

			client, err := llm.NewClient(
				appCfg.Gemini.Model,
				scoringTemperature,
				appCfg.Gemini.MaxRetries,
				appCfg.Gemini.RetryDelayDuration(),
			)
			if err != nil {
				return err
			}
			defer client.Close()

			scorer := seo.NewScorer(client, threshold)
			results, err := scorer.ScoreAll(cmd.Context(), manifest.Articles)
			if err != nil {
				return err
			}

			passing := len(seo.FilterPassing(results))
			fmt.Printf("Scored %d articles: %d passing, %d failing (threshold %d)\n",
				len(results), passing, len(results)-passing, threshold)

			if err := os.MkdirAll(resultsDir, 0o755); err != nil {
				return fmt.Errorf("failed to create results directory: %w", err)
			}
			reportPath := filepath.Join(resultsDir, "seo-scoring-report.md")
			if err := os.WriteFile(reportPath, []byte(seo.FormatReport(results)), 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Printf("Report saved to: %s\n", reportPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&contentDir, "content-dir", "content", "directory holding generated content")
	cmd.Flags().StringVar(&resultsDir, "results-dir", "results", "directory for scoring reports")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "minimum passing score (default from config)")

	return cmd
}
