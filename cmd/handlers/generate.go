package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"openventure/internal/config"
	"openventure/internal/llm"
	"openventure/internal/pipeline"
	"openventure/internal/venture"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var (
		configPath  string
		outputDir   string
		skipLanding bool
		skipBlog    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate landing page and blog content for a venture",
		Long: `Generate runs the full content pipeline for a venture config:
landing page sections, blog topics and articles, and the run manifest.

Use --skip-landing or --skip-blog to run half the pipeline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := venture.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load venture config: %w", err)
			}

			appCfg := config.Get()
			maxRetries := cfg.Advanced.MaxRetries
			if maxRetries == 0 {
				maxRetries = appCfg.Gemini.MaxRetries
			}

			client, err := llm.NewClient(
				cfg.Advanced.GeminiModel,
				float32(cfg.Advanced.Temperature),
				maxRetries,
				appCfg.Gemini.RetryDelayDuration(),
			)
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := pipeline.Run(cmd.Context(), cfg, client, pipeline.Options{
				SkipLanding: skipLanding,
				SkipBlog:    skipBlog,
				OutputDir:   outputDir,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Pipeline complete for %s\n", result.Manifest.VentureName)
			fmt.Printf("Output directory: %s\n", result.OutputDir)
			if result.LandingPage != nil {
				fmt.Println("  - landing/content.json")
			}
			if result.Blog != nil {
				fmt.Printf("  - blog/manifest.json (%d articles, %d words)\n",
					result.Manifest.Stats.BlogArticles, result.Manifest.Stats.TotalWords)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "venture.json", "venture config file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")
	cmd.Flags().BoolVar(&skipLanding, "skip-landing", false, "skip landing page generation")
	cmd.Flags().BoolVar(&skipBlog, "skip-blog", false, "skip blog generation")

	return cmd
}
