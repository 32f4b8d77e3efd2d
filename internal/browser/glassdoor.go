// Glassdoor results-page rendering and per-job page handout.

package browser

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go-glassdoor-scraper/internal/config"
	"go-glassdoor-scraper/internal/scraper"
)

var titleCaser = cases.Title(language.English)

// Glassdoor drives the search form and hands out detail pages. It implements
// scraper.Renderer and scraper.PageOpener over one shared browser context.
type Glassdoor struct {
	browserCtx playwright.BrowserContext
	cfg        *config.Config
	shots      *ScreenshotDebugger
}

func NewGlassdoor(browserCtx playwright.BrowserContext, cfg *config.Config) *Glassdoor {
	return &Glassdoor{
		browserCtx: browserCtx,
		cfg:        cfg,
		shots:      NewScreenshotDebugger(),
	}
}

// RenderResults runs the form-based search and returns the results page HTML
// after scroll-triggered lazy loading. A missing location suggestion is a
// warning, not a failure; the search continues without the refinement.
func (g *Glassdoor) RenderResults(ctx context.Context, query scraper.SearchQuery) (string, error) {
	page, err := g.browserCtx.NewPage()
	if err != nil {
		return "", fmt.Errorf("opening results page: %w", err)
	}
	defer page.Close()

	log.Println("🌐 Navigating to Glassdoor job search page...")
	if _, err := page.Goto(g.cfg.BaseURL+"/Job/index.htm", playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(60000),
	}); err != nil {
		return "", fmt.Errorf("loading search page: %w", err)
	}
	page.WaitForTimeout(3000)

	log.Printf("⌨️ Entering job title: %s", query.Keyword)
	titleInput := page.Locator("#searchBar-jobTitle")
	if err := titleInput.Click(); err != nil {
		return "", fmt.Errorf("job title field: %w", err)
	}
	if err := titleInput.Fill(query.Keyword); err != nil {
		return "", fmt.Errorf("filling job title: %w", err)
	}
	page.WaitForTimeout(1000) // autocomplete

	locationText := HumanizePlace(query.Place)
	log.Printf("⌨️ Entering location: %s", locationText)
	locationInput := page.Locator("#searchBar-location")
	if err := locationInput.Click(); err != nil {
		return "", fmt.Errorf("location field: %w", err)
	}
	if err := locationInput.Fill(locationText); err != nil {
		return "", fmt.Errorf("filling location: %w", err)
	}
	page.WaitForTimeout(2000) // suggestions

	if _, err := page.WaitForSelector("#searchBar-location-search-suggestions li", playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		log.Printf("⚠️ Could not find location suggestions: %v", err)
	} else {
		if err := page.Locator("#searchBar-location-search-suggestions li").First().Click(); err != nil {
			log.Printf("⚠️ Could not select location suggestion: %v", err)
		}
		page.WaitForTimeout(1000)
	}

	log.Println("🔍 Submitting search form...")
	submit := page.Locator(`button[type="submit"]`)
	if visible, _ := submit.IsVisible(); visible {
		if err := submit.Click(); err != nil {
			_ = locationInput.Press("Enter")
		}
	} else {
		_ = locationInput.Press("Enter")
	}

	page.WaitForTimeout(3000)

	if _, err := page.WaitForSelector(`[class*="JobCard"]`, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		log.Println("⚠️ Job cards not found, continuing anyway...")
		g.shots.CaptureAndLog(page, "results-no-cards", "results page loaded without job cards")
	}

	log.Println("📜 Scrolling to load more jobs...")
	for i := 0; i < g.cfg.ScrollRounds; i++ {
		if _, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)"); err != nil {
			log.Printf("⚠️ Scroll failed: %v", err)
			break
		}
		page.WaitForTimeout(float64(g.cfg.ScrollWait.Milliseconds()))
	}

	return page.Content()
}

// NewPage hands out one exclusive detail page. The caller owns it for the
// job's lifetime and must Close it.
func (g *Glassdoor) NewPage() (scraper.Page, error) {
	page, err := g.browserCtx.NewPage()
	if err != nil {
		return nil, err
	}
	return &pwPage{page: page}, nil
}

type pwPage struct {
	page playwright.Page
}

func (p *pwPage) Navigate(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		return "", err
	}
	p.page.WaitForTimeout(500) // settle before reading content
	return p.page.Content()
}

func (p *pwPage) Close() error {
	return p.page.Close()
}

// HumanizePlace turns a place slug into the text the location field expects:
// "new-york-ny" becomes "New York NY".
func HumanizePlace(place string) string {
	text := titleCaser.String(strings.ReplaceAll(place, "-", " "))
	if strings.Contains(strings.ToLower(place), "ny") {
		text = strings.ReplaceAll(text, "Ny", "NY")
	}
	return text
}
