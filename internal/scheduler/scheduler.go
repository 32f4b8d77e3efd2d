// Batch scheduling for detail-page fetches.
//
// The link list is split into consecutive fixed-size batches; each batch's
// jobs run concurrently and are joined before the next batch starts. One
// job's failure never touches its siblings. The pause between batches is
// deliberate throttling against the target site.

package scheduler

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"go-glassdoor-scraper/internal/scraper"
)

// JobFetcher is the per-link fetch/extract path the scheduler drives.
type JobFetcher interface {
	Fetch(ctx context.Context, link string) (scraper.JobRecord, error)
}

type Scheduler struct {
	fetcher     JobFetcher
	batchSize   int
	pacingDelay time.Duration
}

func New(fetcher JobFetcher, batchSize int, pacingDelay time.Duration) *Scheduler {
	return &Scheduler{
		fetcher:     fetcher,
		batchSize:   batchSize,
		pacingDelay: pacingDelay,
	}
}

// Run fetches every link exactly once and returns the successful records in
// batch order, job order within batch. Failed jobs are logged with their
// index and silently absent from the output.
func (s *Scheduler) Run(ctx context.Context, links []string) []scraper.JobRecord {
	total := len(links)
	records := make([]scraper.JobRecord, 0, total)
	successful := 0

	for start := 0; start < total; start += s.batchSize {
		end := start + s.batchSize
		if end > total {
			end = total
		}

		batch := s.runBatch(ctx, links[start:end], start)
		records = append(records, batch...)
		successful += len(batch)

		log.Printf("Progress: %d/%d jobs processed | %d successful", end, total, successful)

		select {
		case <-time.After(s.pacingDelay):
		case <-ctx.Done():
			return records
		}
	}

	return records
}

// runBatch launches one goroutine per link and joins them all. Results keep
// the batch's internal order regardless of completion order; a failed slot
// stays nil and is dropped at collection.
func (s *Scheduler) runBatch(ctx context.Context, links []string, startIdx int) []scraper.JobRecord {
	results := make([]*scraper.JobRecord, len(links))

	var g errgroup.Group
	for i, link := range links {
		g.Go(func() error {
			record, err := s.fetcher.Fetch(ctx, link)
			if err != nil {
				log.Printf("⚠️ Failed job %d: %s", startIdx+i+1, truncateErr(err))
				return nil // best-effort: don't cancel siblings
			}
			results[i] = &record
			return nil
		})
	}
	_ = g.Wait()

	records := make([]scraper.JobRecord, 0, len(links))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records
}

func truncateErr(err error) string {
	msg := []rune(err.Error())
	if len(msg) > 100 {
		msg = msg[:100]
	}
	return string(msg)
}
