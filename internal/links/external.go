package links

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"openventure/internal/logger"
)

// DefaultUserAgent identifies the validator to probed sites.
const DefaultUserAgent = "Mozilla/5.0 (compatible; OpenVenture/1.0; Link Validator)"

// Prober checks external URLs over HTTP. It issues a HEAD request first and
// falls back to GET when the site rejects HEAD.
type Prober struct {
	client      *http.Client
	userAgent   string
	concurrency int
}

// NewProber creates an external link prober. A nil transport uses the
// default; tests inject a stub RoundTripper.
func NewProber(timeout time.Duration, userAgent string, concurrency int, transport http.RoundTripper) *Prober {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if concurrency <= 0 {
		concurrency = 5
	}
	return &Prober{
		client:      &http.Client{Timeout: timeout, Transport: transport},
		userAgent:   userAgent,
		concurrency: concurrency,
	}
}

// Probe validates one external URL. A URL is valid when the site answers any
// 2xx; everything else marks the link removed.
func (p *Prober) Probe(ctx context.Context, url string) Result {
	resp, err := p.do(ctx, http.MethodHead, url)
	if err != nil {
		return Result{URL: url, Type: TypeExternal, Status: StatusRemoved, ErrorMessage: err.Error()}
	}
	resp.Body.Close()

	if ok(resp.StatusCode) {
		return Result{URL: url, Type: TypeExternal, Status: StatusValid, HTTPStatus: resp.StatusCode}
	}

	// Some sites block HEAD requests, try GET.
	if resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusForbidden {
		getResp, err := p.do(ctx, http.MethodGet, url)
		if err == nil {
			defer getResp.Body.Close()
			if ok(getResp.StatusCode) {
				result := Result{URL: url, Type: TypeExternal, Status: StatusValid, HTTPStatus: getResp.StatusCode}
				result.PageTitle = pageTitle(getResp)
				return result
			}
		}
	}

	return Result{
		URL:          url,
		Type:         TypeExternal,
		Status:       StatusRemoved,
		HTTPStatus:   resp.StatusCode,
		ErrorMessage: fmt.Sprintf("HTTP %d", resp.StatusCode),
	}
}

// ProbeAll validates external URLs with bounded concurrency, preserving the
// input order in the results.
func (p *Prober) ProbeAll(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency)
	for i, url := range urls {
		eg.Go(func() error {
			results[i] = p.Probe(ctx, url)
			return nil
		})
	}
	// Workers never return errors; dead links are results, not failures.
	_ = eg.Wait()

	return results
}

func (p *Prober) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)
	return p.client.Do(req)
}

func ok(status int) bool {
	return status >= 200 && status < 300
}

// pageTitle extracts the document title from a GET response body, recorded in
// reports so a human can sanity-check where a link actually lands. Parse
// failures are logged and ignored.
func pageTitle(resp *http.Response) string {
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "text/html") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logger.Debugf("failed to parse probed page: %v", err)
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
