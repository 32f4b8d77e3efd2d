package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-glassdoor-scraper/internal/scraper"
)

// Patterns are tried in priority order and never merged: the first pattern
// that yields any result settles the field.
var expPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*of?\s*experience`),
	regexp.MustCompile(`(?i)minimum\s+of?\s*(\d+)\s*years?`),
	regexp.MustCompile(`(?i)at\s+least\s+(\d+)\s*years?`),
	regexp.MustCompile(`(?i)(\d+)[-–](\d+)\s*years?\s*(of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*(of\s*)?experience`),
}

var digitsRe = regexp.MustCompile(`^\d+$`)

// extractExperience resolves years-of-experience from the job-description
// block, falling back to the full page text when no description is found.
func extractExperience(doc *goquery.Document) string {
	text := firstMatch(doc, descriptionChain)
	if text == "" {
		text = clean(doc.Text())
	}
	return parseExperience(text)
}

// parseExperience applies the pattern list to free text. Per match, two or
// more numeric captures format as a "N-M years" range, a single numeric
// capture as "N+ years"; non-numeric captures (like an optional "of") are
// ignored.
func parseExperience(text string) string {
	for _, re := range expPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			var nums []string
			for _, g := range m[1:] {
				if digitsRe.MatchString(strings.TrimSpace(g)) {
					nums = append(nums, strings.TrimSpace(g))
				}
			}
			if len(nums) >= 2 {
				return nums[0] + "-" + nums[1] + " years"
			}
			if len(nums) == 1 {
				return nums[0] + "+ years"
			}
		}
	}
	return scraper.Sentinel
}
