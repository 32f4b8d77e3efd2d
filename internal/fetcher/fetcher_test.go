package fetcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-glassdoor-scraper/internal/scraper"
)

type fakePage struct {
	navigations int
	failFirst   int // navigations that fail before one succeeds
	content     string
	closed      bool
}

func (p *fakePage) Navigate(ctx context.Context, url string, timeout time.Duration) (string, error) {
	p.navigations++
	if p.navigations <= p.failFirst {
		return "", errors.New("net::ERR_TIMED_OUT")
	}
	return p.content, nil
}

func (p *fakePage) Close() error {
	p.closed = true
	return nil
}

type fakeOpener struct {
	page *fakePage
	err  error
}

func (o *fakeOpener) NewPage() (scraper.Page, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.page, nil
}

func newFetcher(opener scraper.PageOpener) *Fetcher {
	limiter := NewHostLimiter(1000, 1000)
	return New(opener, limiter, 3, time.Second, time.Millisecond)
}

func TestFetch_Success(t *testing.T) {
	page := &fakePage{content: `<html><body><h1>SRE</h1></body></html>`}
	f := newFetcher(&fakeOpener{page: page})

	record, err := f.Fetch(context.Background(), "https://www.glassdoor.com/job-listing/sre-acme-co-JV_1")
	require.NoError(t, err)

	assert.Equal(t, "SRE", record.Name)
	assert.Equal(t, "https://www.glassdoor.com/job-listing/sre-acme-co-JV_1", record.Url)
	assert.Equal(t, 1, page.navigations)
	assert.True(t, page.closed, "page must be released on success")
}

func TestFetch_RetriesThenSucceeds(t *testing.T) {
	page := &fakePage{failFirst: 2, content: "<html><body><h1>DBA</h1></body></html>"}
	f := newFetcher(&fakeOpener{page: page})

	record, err := f.Fetch(context.Background(), "https://example.com/job-listing/x-y-z-JV_1")
	require.NoError(t, err)

	assert.Equal(t, "DBA", record.Name)
	assert.Equal(t, 3, page.navigations)
	assert.True(t, page.closed)
}

// Retry exhaustion: a permanently failing navigation makes exactly
// maxRetries attempts, then the job is dropped.
func TestFetch_RetryBudgetExhausted(t *testing.T) {
	page := &fakePage{failFirst: 100}
	f := newFetcher(&fakeOpener{page: page})

	_, err := f.Fetch(context.Background(), "https://example.com/job")
	require.Error(t, err)

	assert.Equal(t, 3, page.navigations)
	assert.True(t, page.closed, "page must be released on failure")
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestFetch_OpenerFailure(t *testing.T) {
	f := newFetcher(&fakeOpener{err: errors.New("context closed")})

	_, err := f.Fetch(context.Background(), "https://example.com/job")
	assert.Error(t, err)
}

func TestFetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	page := &fakePage{failFirst: 100}
	f := newFetcher(&fakeOpener{page: page})

	_, err := f.Fetch(ctx, "https://example.com/job")
	require.Error(t, err)
	assert.True(t, page.closed)
}
