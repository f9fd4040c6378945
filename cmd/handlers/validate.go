package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"openventure/internal/config"
	"openventure/internal/links"
)

// NewValidateLinksCmd creates the validate-links command
func NewValidateLinksCmd() *cobra.Command {
	var (
		contentDir   string
		resultsDir   string
		fix          bool
		strict       bool
		skipExternal bool
		concurrency  int
	)

	cmd := &cobra.Command{
		Use:   "validate-links",
		Short: "Validate internal and external links in generated content",
		Long: `Validate-links checks every link in the generated content files.

Internal links are validated against the site's route space; section links
written as pages (/pricing instead of /#pricing) are fixable with --fix.
External links are probed over HTTP and reported when dead.

With --strict the command exits non-zero when any link was removed or
invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(contentDir); err != nil {
				return fmt.Errorf("content directory not found: %s (run generate first)", contentDir)
			}

			routes := links.DefaultRouteTable()

			if fix {
				changed, err := links.FixDirectory(routes, contentDir)
				if err != nil {
					return err
				}
				fmt.Printf("Fixed %d files\n", changed)
			}

			slugs := links.ExistingSlugs(contentDir)
			fmt.Printf("Found %d existing blog articles\n", len(slugs))

			appCfg := config.Get()
			var prober *links.Prober
			if !skipExternal {
				if concurrency <= 0 {
					concurrency = appCfg.Validator.Concurrency
				}
				prober = links.NewProber(
					appCfg.Validator.TimeoutDuration(),
					appCfg.Validator.UserAgent,
					concurrency,
					nil,
				)
			}

			validator := links.NewValidator(routes, prober, slugs)
			report, err := validator.ValidateDirectory(cmd.Context(), contentDir)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Printf("  Total Links:   %d\n", report.TotalLinks)
			fmt.Printf("  Valid:         %d\n", report.ValidLinks)
			fmt.Printf("  Fixed:         %d\n", report.FixedLinks)
			fmt.Printf("  Removed:       %d\n", report.RemovedLinks)
			fmt.Printf("  Invalid:       %d\n", report.InvalidLinks)
			fmt.Println()

			if err := os.MkdirAll(resultsDir, 0o755); err != nil {
				return fmt.Errorf("failed to create results directory: %w", err)
			}
			reportPath := filepath.Join(resultsDir, "link-validation-report.md")
			if err := os.WriteFile(reportPath, []byte(report.Format()), 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Printf("Report saved to: %s\n", reportPath)

			if strict && (report.RemovedLinks > 0 || report.InvalidLinks > 0) {
				return fmt.Errorf("validation failed in strict mode: %d removed, %d invalid",
					report.RemovedLinks, report.InvalidLinks)
			}
			if !report.Passed() {
				fmt.Println("Validation warnings: some links need attention")
				return nil
			}

			fmt.Println("Validation passed")
			return nil
		},
	}

	cmd.Flags().StringVar(&contentDir, "content-dir", "content", "directory holding generated content")
	cmd.Flags().StringVar(&resultsDir, "results-dir", "results", "directory for validation reports")
	cmd.Flags().BoolVar(&fix, "fix", false, "auto-fix fixable internal links in place")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when links were removed or invalid")
	cmd.Flags().BoolVar(&skipExternal, "skip-external", false, "skip HTTP validation of external links")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel external link probes (default from config)")

	return cmd
}
