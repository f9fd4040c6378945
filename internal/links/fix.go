package links

import (
	"context"
	"strings"
)

// ValidateAndFix validates every link in content and returns the repaired
// text plus the full report. Fixable internal links are rewritten in place;
// removed links collapse to their anchor text. External probing runs only
// when the validator carries a prober.
func (v *Validator) ValidateAndFix(ctx context.Context, content string) (string, *Report) {
	extracted := ExtractLinks(content)
	var results []Result
	fixed := content

	var external []ExtractedLink
	for _, link := range extracted {
		if CategorizeURL(link.URL) == TypeExternal {
			external = append(external, link)
			continue
		}

		result := v.ValidateInternal(link.URL)
		results = append(results, result)

		switch result.Status {
		case StatusFixed:
			replacement := "[" + link.AnchorText + "](" + result.FixedURL + ")"
			fixed = strings.Replace(fixed, link.FullMatch, replacement, 1)
		case StatusRemoved:
			fixed = strings.Replace(fixed, link.FullMatch, link.AnchorText, 1)
		}
	}

	if v.prober != nil && len(external) > 0 {
		urls := make([]string, len(external))
		for i, link := range external {
			urls[i] = link.URL
		}
		for i, result := range v.prober.ProbeAll(ctx, urls) {
			results = append(results, result)
			if result.Status == StatusRemoved {
				fixed = strings.Replace(fixed, external[i].FullMatch, external[i].AnchorText, 1)
			}
		}
	}

	return fixed, NewReport(results)
}

// Validate reports on content without modifying it.
func (v *Validator) Validate(ctx context.Context, content string) *Report {
	_, report := v.ValidateAndFix(ctx, content)
	return report
}

// FixJSON walks any decoded JSON value and rewrites fixable section links
// inside its string leaves: [text](/pricing) becomes [text](/#pricing).
// Maps and slices are rebuilt; all other values pass through untouched.
func FixJSON(routes RouteTable, v any) any {
	switch val := v.(type) {
	case string:
		return fixSectionLinks(routes, val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = FixJSON(routes, item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = FixJSON(routes, item)
		}
		return out
	default:
		return v
	}
}

func fixSectionLinks(routes RouteTable, s string) string {
	if !strings.Contains(s, "](") {
		return s
	}
	for _, section := range routes.AnchorOnlySections {
		s = strings.ReplaceAll(s, "]("+section+")", "](/#"+section[1:]+")")
	}
	return s
}
