// Core domain types shared by every stage of the pipeline.

package scraper

// Sentinel marks a field that could not be resolved from the page.
const Sentinel = "N/A"

// JobRecord is the unit of output. One record per successfully fetched
// detail page; fields that no extraction strategy resolved hold Sentinel.
type JobRecord struct {
	Name              string
	Company           string
	State             string
	City              string
	Salary            string
	Location          string
	Currency          string
	Region            string
	YearsOfExperience string
	Year              string
	Url               string
}

// SearchQuery is the (keyword, place) pair one run operates on. The place is
// a hyphenated slug like "new-york-ny".
type SearchQuery struct {
	Keyword string
	Place   string
}
