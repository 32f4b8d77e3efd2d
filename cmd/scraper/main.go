package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go-glassdoor-scraper/internal/browser"
	"go-glassdoor-scraper/internal/config"
	"go-glassdoor-scraper/internal/pipeline"
	"go-glassdoor-scraper/internal/reporter"
	"go-glassdoor-scraper/internal/scraper"
	"go-glassdoor-scraper/internal/sink"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <keyword> <place>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "  keyword  job title slug (e.g. data-scientist)")
		fmt.Fprintln(os.Stderr, "  place    location slug (e.g. new-york-ny)")
		os.Exit(2)
	}
	keyword, place := os.Args[1], os.Args[2]

	//load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	//init optional telegram reporter
	bot, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Printf("⚠️ Telegram reporter disabled: %v", err)
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	query := scraper.SearchQuery{Keyword: keyword, Place: place}
	records := runQuery(ctx, cfg, query, bot)

	outputFile := fmt.Sprintf("%s-%s-results.csv", keyword, place)
	log.Println("💾 Writing to CSV file...")
	if err := sink.WriteCSV(outputFile, records); err != nil {
		log.Fatalf("❌ Failed to write %s: %v", outputFile, err)
	}
	if len(records) > 0 {
		log.Printf("✅ Successfully saved %d jobs to: %s", len(records), outputFile)
	} else {
		log.Println("ℹ️ No data to save.")
	}
}

// runQuery wires the playwright renderer and runs the pipeline once. A
// browser that cannot be created is renderer-fatal: the run produces an
// empty record set, never a crash.
func runQuery(ctx context.Context, cfg *config.Config, query scraper.SearchQuery, bot *reporter.TelegramReporter) []scraper.JobRecord {
	pwManager, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		log.Printf("❌ Failed to init Playwright: %v", err)
		_ = bot.SendError(err)
		return nil
	}
	defer pwManager.Close()

	browserCtx, err := pwManager.NewContext(query.Place)
	if err != nil {
		log.Printf("❌ Failed to create browser context: %v", err)
		_ = bot.SendError(err)
		return nil
	}

	gd := browser.NewGlassdoor(browserCtx, cfg)

	start := time.Now()
	records := pipeline.New(cfg, gd, gd).Run(ctx, query)
	if err := bot.SendSummary(query, len(records), time.Since(start)); err != nil {
		log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
	}
	return records
}
