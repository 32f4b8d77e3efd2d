// Post-filtering of the aggregated record set by location relevance.

package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"go-glassdoor-scraper/internal/scraper"
)

type aliasRule struct {
	match    string
	keywords []string
}

// Country-level aliases are consulted before city aliases; map a country to
// its major cities and subdivision codes so listings tagged by city still
// pass.
var countryAliases = []aliasRule{
	{"canada", []string{
		"canada", "toronto", "vancouver", "montreal", "calgary", "ottawa",
		"edmonton", "winnipeg", "quebec", "on", "bc", "qc", "ab", "mb", "sk",
	}},
}

// Queries this broad get no filtering at all.
var tooBroad = []string{"united states", "usa", "us"}

var cityAliases = []aliasRule{
	{"new-york", []string{"new york", "nyc", "new-york", "ny"}},
	{"ny", []string{"new york", "nyc", "new-york", "ny"}},
	{"boston", []string{"boston", "ma"}},
	{"hyderabad", []string{"hyderabad"}},
	{"mumbai", []string{"mumbai"}},
	{"bangalore", []string{"bangalore", "bengaluru"}},
}

// ExpectedKeywords resolves the place slug to its keyword set through the
// priority-ordered lookup. A nil result means "do not filter".
func ExpectedKeywords(place string) []string {
	placeLower := strings.ToLower(place)

	for _, rule := range countryAliases {
		if strings.Contains(placeLower, rule.match) {
			return rule.keywords
		}
	}

	for _, broad := range tooBroad {
		if strings.Contains(placeLower, broad) {
			return nil
		}
	}

	for _, rule := range cityAliases {
		if strings.Contains(placeLower, rule.match) {
			return rule.keywords
		}
	}

	// generic fallback: the first hyphen-separated token is the city
	city, _, _ := strings.Cut(placeLower, "-")
	return []string{city}
}

// ByLocation keeps the records whose location-bearing fields contain any
// expected keyword for the place. Retained records are never mutated, so
// re-filtering an already-filtered set is a no-op.
func ByLocation(records []scraper.JobRecord, place string) []scraper.JobRecord {
	if len(records) == 0 {
		return records
	}

	keywords := ExpectedKeywords(place)
	if keywords == nil {
		return records
	}

	kept := make([]scraper.JobRecord, 0, len(records))
	for _, r := range records {
		if matchesAny(r, keywords) {
			kept = append(kept, r)
		}
	}
	return kept
}

func matchesAny(r scraper.JobRecord, keywords []string) bool {
	fields := []string{
		normalizeText(r.Location),
		normalizeText(r.City),
		normalizeText(r.State),
		normalizeText(r.Region),
	}
	for _, kw := range keywords {
		kw = normalizeText(kw)
		for _, f := range fields {
			if strings.Contains(f, kw) {
				return true
			}
		}
	}
	return false
}

// normalizeText lowercases and strips diacritics so "Montréal" matches
// "montreal".
func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}
