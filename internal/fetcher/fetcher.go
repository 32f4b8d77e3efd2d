// One detail page: acquire a page, navigate with bounded retry, extract.

package fetcher

import (
	"context"
	"fmt"
	"time"

	"go-glassdoor-scraper/internal/extractor"
	"go-glassdoor-scraper/internal/scraper"
)

// Fetcher retrieves and extracts a single job page. Safe for concurrent use;
// every call owns its own page resource.
type Fetcher struct {
	opener     scraper.PageOpener
	limiter    *HostLimiter
	maxRetries int
	navTimeout time.Duration
	retryDelay time.Duration
}

func New(opener scraper.PageOpener, limiter *HostLimiter, maxRetries int, navTimeout, retryDelay time.Duration) *Fetcher {
	return &Fetcher{
		opener:     opener,
		limiter:    limiter,
		maxRetries: maxRetries,
		navTimeout: navTimeout,
		retryDelay: retryDelay,
	}
}

// Fetch loads one detail page and hands its content to the field extractor.
// Navigation is retried up to the budget with a fixed backoff; the page is
// released whatever the outcome. After exhaustion the job is dropped: no
// placeholder record is ever produced for a failed link.
func (f *Fetcher) Fetch(ctx context.Context, link string) (scraper.JobRecord, error) {
	page, err := f.opener.NewPage()
	if err != nil {
		return scraper.JobRecord{}, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	content, err := f.navigate(ctx, page, link)
	if err != nil {
		return scraper.JobRecord{}, err
	}

	return extractor.Extract(content, link), nil
}

func (f *Fetcher) navigate(ctx context.Context, page scraper.Page, link string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		if err := f.limiter.WaitURL(ctx, link); err != nil {
			return "", err
		}

		content, err := page.Navigate(ctx, link, f.navTimeout)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if attempt < f.maxRetries {
			select {
			case <-time.After(f.retryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("navigation failed after %d attempts: %w", f.maxRetries, lastErr)
}
