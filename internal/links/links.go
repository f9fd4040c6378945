// Package links validates and repairs the hyperlinks inside generated
// content. Internal links are checked against the venture's route space and
// auto-fixed where the mistake is mechanical; external links are probed over
// HTTP and removed when dead.
package links

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Link statuses.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusFixed   = "fixed"
	StatusRemoved = "removed"
)

// Link types.
const (
	TypeInternal = "internal"
	TypeExternal = "external"
)

// RouteTable describes the route space generated sites link into.
type RouteTable struct {
	// ValidPages are standalone page paths.
	ValidPages []string
	// ValidAnchors are homepage section anchors.
	ValidAnchors []string
	// AnchorOnlySections are page-style paths models commonly emit for
	// sections that only exist as homepage anchors. They are fixable:
	// /pricing becomes /#pricing.
	AnchorOnlySections []string
}

// DefaultRouteTable returns the route space of a generated venture site.
func DefaultRouteTable() RouteTable {
	return RouteTable{
		ValidPages:         []string{"/", "/about", "/blog", "/contact", "/careers", "/privacy", "/terms"},
		ValidAnchors:       []string{"/#features", "/#pricing", "/#faq", "/#testimonials", "/#showcase"},
		AnchorOnlySections: []string{"/features", "/pricing", "/faq", "/testimonials"},
	}
}

// Result records the outcome of validating one link occurrence.
type Result struct {
	URL          string `json:"url"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	OriginalURL  string `json:"original_url,omitempty"`
	FixedURL     string `json:"fixed_url,omitempty"`
	HTTPStatus   int    `json:"http_status,omitempty"`
	PageTitle    string `json:"page_title,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ExtractedLink is one markdown link found in content.
type ExtractedLink struct {
	URL        string
	AnchorText string
	FullMatch  string
	Position   int
}

var markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// ExtractLinks finds all markdown links in content.
func ExtractLinks(content string) []ExtractedLink {
	var links []ExtractedLink
	for _, m := range markdownLinkPattern.FindAllStringSubmatchIndex(content, -1) {
		links = append(links, ExtractedLink{
			AnchorText: content[m[2]:m[3]],
			URL:        content[m[4]:m[5]],
			FullMatch:  content[m[0]:m[1]],
			Position:   m[0],
		})
	}
	return links
}

// CategorizeURL reports whether a URL is internal or external. Relative URLs
// count as internal.
func CategorizeURL(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return TypeExternal
	}
	return TypeInternal
}

// Validator checks links against a route table and, for external links, the
// live web.
type Validator struct {
	routes RouteTable
	prober *Prober

	// existingSlugs, when non-nil, restricts /blog/<slug> links to known
	// articles. A nil set accepts any well-formed blog link.
	existingSlugs []string
}

// NewValidator creates a link validator. prober may be nil when external
// validation is skipped.
func NewValidator(routes RouteTable, prober *Prober, existingSlugs []string) *Validator {
	return &Validator{routes: routes, prober: prober, existingSlugs: existingSlugs}
}

// ValidateInternal checks one internal URL against the route table.
func (v *Validator) ValidateInternal(url string) Result {
	if slices.Contains(v.routes.AnchorOnlySections, url) {
		fixed := "/#" + url[1:]
		return Result{
			URL:          url,
			Type:         TypeInternal,
			Status:       StatusFixed,
			OriginalURL:  url,
			FixedURL:     fixed,
			ErrorMessage: fmt.Sprintf("Section links must use anchor format (%s → %s)", url, fixed),
		}
	}

	if slices.Contains(v.routes.ValidPages, url) {
		return Result{URL: url, Type: TypeInternal, Status: StatusValid}
	}

	if slices.Contains(v.routes.ValidAnchors, url) || strings.HasPrefix(url, "/#") {
		return Result{URL: url, Type: TypeInternal, Status: StatusValid}
	}

	if slug, ok := strings.CutPrefix(url, "/blog/"); ok {
		if v.existingSlugs == nil || slices.Contains(v.existingSlugs, slug) {
			return Result{URL: url, Type: TypeInternal, Status: StatusValid}
		}
		return Result{
			URL:          url,
			Type:         TypeInternal,
			Status:       StatusRemoved,
			ErrorMessage: fmt.Sprintf("Blog article not found: %s", slug),
		}
	}

	if strings.HasPrefix(url, "#") {
		return Result{URL: url, Type: TypeInternal, Status: StatusValid}
	}

	return Result{
		URL:          url,
		Type:         TypeInternal,
		Status:       StatusRemoved,
		ErrorMessage: fmt.Sprintf("Unknown internal route: %s", url),
	}
}
