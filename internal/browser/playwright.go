package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Launch args tuned for scraping throughput: no GPU, no images, no plugins.
var launchArgs = []string{
	"--no-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
	"--disable-images",
	"--disable-plugins",
	"--disable-extensions",
}

type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewPlaywright(headless bool) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args:     launchArgs,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launching chromium: %w", err)
	}

	return &PlaywrightManager{pw: pw, browser: browser}, nil
}

// NewContext builds the run's shared browsing context: fixed viewport,
// desktop Chrome user agent, Accept-Language override, and a geolocation
// override for known places to prevent IP-based redirects.
func (pm *PlaywrightManager) NewContext(place string) (playwright.BrowserContext, error) {
	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1280, Height: 720},
		UserAgent: playwright.String(
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
		Permissions: []string{"geolocation"},
	}
	if geo, ok := geolocationFor(place); ok {
		opts.Geolocation = &geo
	}

	ctx, err := pm.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}
	if err := ctx.SetExtraHTTPHeaders(map[string]string{"Accept-Language": "en-US"}); err != nil {
		return nil, fmt.Errorf("setting headers: %w", err)
	}
	return ctx, nil
}

func (pm *PlaywrightManager) Close() error {
	if pm.browser != nil {
		pm.browser.Close()
	}
	return pm.pw.Stop()
}
