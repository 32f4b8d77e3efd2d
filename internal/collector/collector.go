// Link discovery on the rendered search-results page.
//
// Selector strategies are ordered most-specific first; the first strategy
// returning anything wins and later ones are never consulted. Deterministic
// over complete: a narrow early hit short-circuits broader fallbacks.

package collector

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
)

type linkStrategy struct {
	name     string
	selector string
}

var strategies = []linkStrategy{
	{"listing-path anchors", `a[href*="/job-listing/"]`},
	{"job-card anchors", `a[class*="JobCard"]`},
	{"absolute listing anchors", `a[href*="glassdoor.com/job-listing"]`},
	{"card title class", "a.JobCard_jobTitle__rbjTE"},
	{"title-class anchors", `a[class*="jobTitle"]`},
}

// Collector turns a results page into an ordered, deduplicated LinkSet of
// absolute detail-page URLs.
type Collector struct {
	baseURL string
}

func New(baseURL string) *Collector {
	return &Collector{baseURL: strings.TrimRight(baseURL, "/")}
}

// Collect parses the results page and applies the strategy list. Relative
// hrefs are prefixed with the site origin; insertion order is preserved and
// duplicates are dropped at collection time.
func (c *Collector) Collect(content string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	var hrefs []string
	for _, s := range strategies {
		hrefs = extractHrefs(doc, s.selector)
		if len(hrefs) > 0 {
			break
		}
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	links := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		abs := href
		if !strings.HasPrefix(href, "http") {
			abs = c.baseURL + href
		}
		if seen.Add(abs) {
			links = append(links, abs)
		}
	}
	return links, nil
}

func extractHrefs(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		href = strings.TrimSpace(href)
		if ok && href != "" {
			out = append(out, href)
		}
	})
	return out
}

// ScrapeLimit is the size-adaptive cap: scrape everything when fewer than
// threshold links were found, otherwise cap at ceiling for safety.
func ScrapeLimit(found, threshold, ceiling int) int {
	if found >= threshold {
		if found < ceiling {
			return found
		}
		return ceiling
	}
	return found
}

// Truncate applies the scrape limit by cutting the ordered link list;
// earlier-discovered links are preferred, never sampled.
func Truncate(links []string, limit int) []string {
	if len(links) <= limit {
		return links
	}
	return links[:limit]
}
