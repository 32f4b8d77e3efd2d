package scraper

import (
	"context"
	"time"
)

// Renderer produces the rendered search-results page for a query. It owns
// everything browser-shaped: geolocation overrides, form interaction,
// scroll-triggered lazy loading.
type Renderer interface {
	// RenderResults runs the search and returns the results page HTML.
	RenderResults(ctx context.Context, query SearchQuery) (string, error)
}

// PageOpener hands out page resources for detail-page fetches. Each job owns
// exactly one Page for its lifetime; pages are never shared across jobs.
type PageOpener interface {
	NewPage() (Page, error)
}

// Page is one exclusive browsing page.
type Page interface {
	// Navigate loads the URL and returns the page HTML.
	Navigate(ctx context.Context, url string, timeout time.Duration) (string, error)
	Close() error
}
