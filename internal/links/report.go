package links

import (
	"fmt"
	"strings"
	"time"
)

// Report aggregates validation results. The status counts always sum to
// TotalLinks, which equals len(Details).
type Report struct {
	Timestamp    string   `json:"timestamp"`
	TotalLinks   int      `json:"total_links"`
	ValidLinks   int      `json:"valid_links"`
	FixedLinks   int      `json:"fixed_links"`
	RemovedLinks int      `json:"removed_links"`
	InvalidLinks int      `json:"invalid_links"`
	Details      []Result `json:"details"`
}

// NewReport tallies results into a report.
func NewReport(results []Result) *Report {
	r := &Report{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		TotalLinks: len(results),
		Details:    results,
	}
	for _, res := range results {
		switch res.Status {
		case StatusValid:
			r.ValidLinks++
		case StatusFixed:
			r.FixedLinks++
		case StatusRemoved:
			r.RemovedLinks++
		case StatusInvalid:
			r.InvalidLinks++
		}
	}
	return r
}

// Merge folds other's results into r.
func (r *Report) Merge(other *Report) {
	r.TotalLinks += other.TotalLinks
	r.ValidLinks += other.ValidLinks
	r.FixedLinks += other.FixedLinks
	r.RemovedLinks += other.RemovedLinks
	r.InvalidLinks += other.InvalidLinks
	r.Details = append(r.Details, other.Details...)
}

// Passed reports whether validation succeeded. Removed links are tolerated;
// invalid ones are not.
func (r *Report) Passed() bool {
	return r.InvalidLinks == 0
}

// Format renders the report as markdown.
func (r *Report) Format() string {
	var b strings.Builder

	b.WriteString("# Link Validation Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", r.Timestamp)
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Total Links | %d |\n", r.TotalLinks)
	fmt.Fprintf(&b, "| Valid | %d |\n", r.ValidLinks)
	fmt.Fprintf(&b, "| Fixed | %d |\n", r.FixedLinks)
	fmt.Fprintf(&b, "| Removed | %d |\n", r.RemovedLinks)
	fmt.Fprintf(&b, "| Invalid | %d |\n\n", r.InvalidLinks)

	var fixed, removed, invalid []Result
	for _, res := range r.Details {
		switch res.Status {
		case StatusFixed:
			fixed = append(fixed, res)
		case StatusRemoved:
			removed = append(removed, res)
		case StatusInvalid:
			invalid = append(invalid, res)
		}
	}

	if len(fixed) > 0 {
		b.WriteString("## Fixed Links\n\n")
		for _, res := range fixed {
			fmt.Fprintf(&b, "- `%s` → `%s`\n", res.OriginalURL, res.FixedURL)
		}
		b.WriteString("\n")
	}

	if len(removed) > 0 {
		b.WriteString("## Removed Links\n\n")
		for _, res := range removed {
			fmt.Fprintf(&b, "- `%s`\n", res.URL)
			fmt.Fprintf(&b, "  - Type: %s\n", res.Type)
			reason := res.ErrorMessage
			if reason == "" {
				reason = "N/A"
			}
			fmt.Fprintf(&b, "  - Reason: %s\n", reason)
			if res.HTTPStatus != 0 {
				fmt.Fprintf(&b, "  - HTTP Status: %d\n", res.HTTPStatus)
			}
		}
		b.WriteString("\n")
	}

	if len(invalid) > 0 {
		b.WriteString("## Invalid Links (Require Manual Fix)\n\n")
		for _, res := range invalid {
			fmt.Fprintf(&b, "- `%s`\n", res.URL)
			fmt.Fprintf(&b, "  - Error: %s\n", res.ErrorMessage)
		}
		b.WriteString("\n")
	}

	if len(fixed) == 0 && len(removed) == 0 && len(invalid) == 0 {
		b.WriteString("## All Links Valid!\n\n")
	}

	return b.String()
}
