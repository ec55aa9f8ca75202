// internal/adapters/holidify/client.go
package holidify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"tripbuddy/internal/adapters/observability"
	"tripbuddy/internal/domain"
)

var ErrBadStatus = errors.New("holidify: unexpected status")

type Client struct {
	base string
	hc   *http.Client
	ua   string
	rl   *rate.Limiter
	rng  domain.Rand
}

// New builds a scraping client for holidify.com. rng backs the synthetic
// ratings on cards that don't print one.
func New(base, userAgent string, timeout time.Duration, rps int, rng domain.Rand) *Client {
	if rps <= 0 {
		rps = 2
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		ua:   userAgent,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
		rng:  rng,
	}
}

// Slug converts a destination name to its path segment on the site:
// lower-cased, spaces to hyphens. "New Delhi" -> "new-delhi".
func Slug(destination string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(destination)), " ", "-")
}

// fetchDoc performs one rate-limited GET and parses the body leniently.
// The site serves static HTML, so no browser emulation is needed.
func (c *Client) fetchDoc(ctx context.Context, page, url string) (*goquery.Document, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.ua)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveScrape(page, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveScrape(page, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d for %s", ErrBadStatus, resp.StatusCode, url)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("holidify: parse %s: %w", url, err)
	}
	return doc, nil
}
