// Batch driver: runs the scrape pipeline for every (job title, location)
// pair drawn from jobs.csv and country.csv. One pair's failure never aborts
// the rest.

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go-glassdoor-scraper/internal/browser"
	"go-glassdoor-scraper/internal/config"
	"go-glassdoor-scraper/internal/pipeline"
	"go-glassdoor-scraper/internal/scraper"
	"go-glassdoor-scraper/internal/sink"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	locations, err := readCSV("country.csv")
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	jobs, err := readCSV("jobs.csv")
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	for _, job := range jobs {
		jobTitle := strings.TrimSpace(job["job_title"])
		if jobTitle == "" {
			continue
		}

		for _, loc := range locations {
			city := strings.TrimSpace(loc["city"])
			country := strings.TrimSpace(loc["country"])
			if city == "" || country == "" {
				continue
			}

			place := slugify(city) + "-" + strings.ToLower(country)
			log.Printf("▶️ Scraping: %s in %s", jobTitle, place)

			if err := runPair(cfg, scraper.SearchQuery{Keyword: jobTitle, Place: place}); err != nil {
				log.Printf("❌ Error scraping %s in %s: %v", jobTitle, place, err)
			}
		}
	}

	log.Println("🏁 All pairs processed.")
}

func runPair(cfg *config.Config, query scraper.SearchQuery) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pwManager, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		return fmt.Errorf("init playwright: %w", err)
	}
	defer pwManager.Close()

	browserCtx, err := pwManager.NewContext(query.Place)
	if err != nil {
		return fmt.Errorf("browser context: %w", err)
	}

	gd := browser.NewGlassdoor(browserCtx, cfg)
	records := pipeline.New(cfg, gd, gd).Run(ctx, query)

	outputFile := fmt.Sprintf("%s-%s-results.csv", query.Keyword, query.Place)
	return sink.WriteCSV(outputFile, records)
}

// readCSV loads a header-keyed CSV as one map per row.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				m[col] = row[i]
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
