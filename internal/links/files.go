package links

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"openventure/internal/logger"
)

// ExistingSlugs reads the article slugs from a content directory's blog
// manifest. A missing manifest yields an empty set, which makes blog link
// validation permissive.
func ExistingSlugs(contentDir string) []string {
	manifestPath := filepath.Join(contentDir, "blog", "manifest.json")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil
	}

	var manifest struct {
		Articles []struct {
			Slug string `json:"slug"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		logger.Error("failed to parse blog manifest", err)
		return nil
	}

	var slugs []string
	for _, a := range manifest.Articles {
		if a.Slug != "" {
			slugs = append(slugs, a.Slug)
		}
	}
	return slugs
}

// ContentFiles lists the JSON content files under a content directory:
// the landing document plus every blog article. Manifests are skipped.
func ContentFiles(contentDir string) ([]string, error) {
	var files []string

	landing := filepath.Join(contentDir, "landing", "content.json")
	if _, err := os.Stat(landing); err == nil {
		files = append(files, landing)
	}

	blogDir := filepath.Join(contentDir, "blog")
	entries, err := os.ReadDir(blogDir)
	if err != nil {
		if os.IsNotExist(err) {
			return files, nil
		}
		return nil, fmt.Errorf("failed to read blog directory: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == "manifest.json" {
			continue
		}
		files = append(files, filepath.Join(blogDir, name))
	}

	return files, nil
}

// textLeaves collects every string leaf from a decoded JSON value.
func textLeaves(v any, texts []string) []string {
	switch val := v.(type) {
	case string:
		texts = append(texts, val)
	case []any:
		for _, item := range val {
			texts = textLeaves(item, texts)
		}
	case map[string]any:
		for _, item := range val {
			texts = textLeaves(item, texts)
		}
	}
	return texts
}

// ValidateFile validates every link found in one JSON content file.
func (v *Validator) ValidateFile(ctx context.Context, path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	allText := strings.Join(textLeaves(decoded, nil), "\n")
	return v.Validate(ctx, allText), nil
}

// ValidateDirectory validates every content file under contentDir and merges
// the per-file reports.
func (v *Validator) ValidateDirectory(ctx context.Context, contentDir string) (*Report, error) {
	files, err := ContentFiles(contentDir)
	if err != nil {
		return nil, err
	}

	merged := NewReport(nil)
	for _, file := range files {
		report, err := v.ValidateFile(ctx, file)
		if err != nil {
			return nil, err
		}
		logger.Debugf("validated %s: %d links, %d issues",
			file, report.TotalLinks, report.RemovedLinks+report.InvalidLinks)
		merged.Merge(report)
	}
	return merged, nil
}

// FixFile rewrites fixable section links inside one JSON content file.
// It reports whether the file changed.
func FixFile(routes RouteTable, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	fixed := FixJSON(routes, decoded)
	out, err := json.MarshalIndent(fixed, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	out = append(out, '\n')

	if string(out) == string(data) {
		return false, nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// FixDirectory applies FixFile to every content file under contentDir and
// returns the number of changed files.
func FixDirectory(routes RouteTable, contentDir string) (int, error) {
	files, err := ContentFiles(contentDir)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, file := range files {
		didChange, err := FixFile(routes, file)
		if err != nil {
			return changed, err
		}
		if didChange {
			logger.Infof("fixed links in %s", file)
			changed++
		}
	}
	return changed, nil
}
