package browser

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ScreenshotDebugger captures full-page screenshots when a render step goes
// sideways, so selector drift can be diagnosed after the run.
type ScreenshotDebugger struct {
	outputDir string
}

func NewScreenshotDebugger() *ScreenshotDebugger {
	dir := filepath.Join(".", "logs", "screenshots")
	os.MkdirAll(dir, 0755)
	return &ScreenshotDebugger{outputDir: dir}
}

func (s *ScreenshotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", name, timestamp)
	path := filepath.Join(s.outputDir, filename)
	log.Printf("📸 %s", message)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", path)
	return nil
}
