// Field extraction from a rendered job-detail page.
//
// Page markup drifts, so every field is resolved through an ordered fallback
// chain: strategies run in priority order and the first non-empty result
// wins. The chains are data, not control flow, so each entry is testable on
// its own.

package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go-glassdoor-scraper/internal/scraper"
)

// strategy resolves one field from a parsed page; "" means no result.
type strategy func(doc *goquery.Document) string

var (
	nameChain = []strategy{
		ownText("div.JobDetails_jobDetailsHeader__qKuvs > h1"),
		text(`h1[class*="jobTitle"]`),
		text("h1"),
	}

	companyChain = []strategy{
		ownText("div.JobDetails_jobDetailsHeader__qKuvs > a > div > span"),
		ownText(`span[class*="employerName"]`),
		ownText(`a[class*="employerName"]`),
		text(`a[class*="employerName"]`),
	}

	locationChain = []strategy{
		ownText("div.JobDetails_jobDetailsHeader__qKuvs > div"),
		text(`div[class*="location"]`),
	}

	salaryChain = []strategy{
		text("div.SalaryEstimate_averageEstimate__xF_7h"),
		text(`span[class*="salary"]`),
		allText(`div[class*="SalaryEstimate"]`),
	}

	descriptionChain = []strategy{
		allText(`div[class*="JobDetails_jobDescription"]`),
		allText(`div[class*="jobDescription"]`),
	}
)

var yearRe = regexp.MustCompile(`20\d{2}`)

var titleCaser = cases.Title(language.English)

// Extract builds a JobRecord from one detail page. Pure and total: a field
// no strategy resolves defaults to the sentinel, never an error.
func Extract(content, link string) scraper.JobRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// html parsing is lenient; this only fires on a broken reader
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}

	name := firstMatch(doc, nameChain)

	company := firstMatch(doc, companyChain)
	if company == "" {
		company = companyFromURL(link)
	}

	location := firstMatch(doc, locationChain)
	city, state := splitLocation(location)

	year := yearRe.FindString(doc.Text())

	salary := parseSalary(firstMatch(doc, salaryChain))
	currency := detectCurrency(salary)

	region := scraper.Sentinel
	if location != "" {
		region = location
	} else if city != "" && state != "" {
		region = city + ", " + state
	}

	experience := extractExperience(doc)

	return scraper.JobRecord{
		Name:              orSentinel(name),
		Company:           orSentinel(company),
		State:             orSentinel(state),
		City:              orSentinel(city),
		Salary:            orSentinel(salary),
		Location:          orSentinel(location),
		Currency:          currency,
		Region:            region,
		YearsOfExperience: experience,
		Year:              orSentinel(year),
		Url:               link,
	}
}

func firstMatch(doc *goquery.Document, chain []strategy) string {
	for _, s := range chain {
		if v := s(doc); v != "" {
			return v
		}
	}
	return ""
}

// text takes the full text of the first matching element.
func text(sel string) strategy {
	return func(doc *goquery.Document) string {
		return clean(doc.Find(sel).First().Text())
	}
}

// ownText takes only the direct text nodes of the first matching element,
// skipping nested children.
func ownText(sel string) strategy {
	return func(doc *goquery.Document) string {
		var b strings.Builder
		doc.Find(sel).First().Contents().Each(func(_ int, s *goquery.Selection) {
			if goquery.NodeName(s) == "#text" {
				b.WriteString(s.Text())
				b.WriteString(" ")
			}
		})
		return clean(b.String())
	}
}

// allText joins the text of every matching element.
func allText(sel string) strategy {
	return func(doc *goquery.Document) string {
		var parts []string
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			parts = append(parts, s.Text())
		})
		return clean(strings.Join(parts, " "))
	}
}

// companyFromURL derives a company name from the listing path: the last two
// hyphen-separated segments before the listing-id suffix, title-cased. A
// heuristic, not a guarantee.
func companyFromURL(link string) string {
	const marker = "/job-listing/"
	i := strings.Index(link, marker)
	if i < 0 {
		return ""
	}
	tail := link[i+len(marker):]
	if j := strings.Index(tail, "-JV_"); j >= 0 {
		tail = tail[:j]
	} else if q := strings.Index(tail, "?"); q >= 0 {
		tail = tail[:q]
	}
	words := strings.Split(tail, "-")
	if len(words) <= 2 {
		return ""
	}
	return titleCaser.String(strings.Join(words[len(words)-2:], " "))
}

// splitLocation takes the first comma segment as the city and the second as
// the state; anything after a second comma ("Toronto, ON, Canada") is
// discarded.
func splitLocation(location string) (city, state string) {
	if location == "" {
		return "", ""
	}
	parts := strings.Split(location, ",")
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

func clean(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

func orSentinel(s string) string {
	if s == "" {
		return scraper.Sentinel
	}
	return s
}
