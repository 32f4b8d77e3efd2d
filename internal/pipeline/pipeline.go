// Orchestration of one scrape run: render the results page, collect links,
// drive the batch scheduler, post-filter.

package pipeline

import (
	"context"
	"log"
	"time"

	"go-glassdoor-scraper/internal/collector"
	"go-glassdoor-scraper/internal/config"
	"go-glassdoor-scraper/internal/fetcher"
	"go-glassdoor-scraper/internal/filter"
	"go-glassdoor-scraper/internal/scheduler"
	"go-glassdoor-scraper/internal/scraper"
)

type Pipeline struct {
	cfg      *config.Config
	renderer scraper.Renderer
	opener   scraper.PageOpener
}

func New(cfg *config.Config, renderer scraper.Renderer, opener scraper.PageOpener) *Pipeline {
	return &Pipeline{cfg: cfg, renderer: renderer, opener: opener}
}

// Run scrapes everything for one query. Failures below the job level stay
// contained in the scheduler; a failed render yields an empty record set and
// an error log rather than a returned error, so batch drivers looping over
// many queries never have to unwind.
func (p *Pipeline) Run(ctx context.Context, query scraper.SearchQuery) []scraper.JobRecord {
	log.Printf("🚀 Starting scraping: %s in %s", query.Keyword, query.Place)
	start := time.Now()

	content, err := p.renderer.RenderResults(ctx, query)
	if err != nil {
		log.Printf("❌ Error in %s-%s: %v", query.Keyword, query.Place, err)
		return nil
	}

	links, err := collector.New(p.cfg.BaseURL).Collect(content)
	if err != nil {
		log.Printf("❌ Error parsing results for %s-%s: %v", query.Keyword, query.Place, err)
		return nil
	}
	found := len(links)
	log.Printf("🔗 Found %d job links", found)

	limit := collector.ScrapeLimit(found, p.cfg.ScrapeAllThreshold, p.cfg.ScrapeCap)
	links = collector.Truncate(links, limit)
	log.Printf("Smart scraping: %d found -> scraping %d jobs", found, len(links))

	limiter := fetcher.NewHostLimiter(p.cfg.RequestsPerSecond, p.cfg.Burst)
	jobs := fetcher.New(p.opener, limiter, p.cfg.MaxRetries, p.cfg.NavTimeout, p.cfg.RetryDelay)
	records := scheduler.New(jobs, p.cfg.BatchSize, p.cfg.PacingDelay).Run(ctx, links)

	if p.cfg.FilterByLocation {
		before := len(records)
		records = filter.ByLocation(records, query.Place)
		log.Printf("📍 Location filter: %d -> %d jobs", before, len(records))
	}

	elapsed := time.Since(start)
	if len(records) > 0 {
		log.Printf("🏁 Completed %s-%s: %d jobs in %.2fs", query.Keyword, query.Place, len(records), elapsed.Seconds())
	} else {
		log.Printf("⚠️ No jobs found for %s-%s.", query.Keyword, query.Place)
	}
	return records
}
