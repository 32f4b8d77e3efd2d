package browser

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

type geoEntry struct {
	match    string
	lat, lng float64
}

var geoTable = []geoEntry{
	{"new-york", 40.7128, -74.0060},
	{"hyderabad", 17.3850, 78.4867},
	{"mumbai", 19.0760, 72.8777},
	{"bangalore", 12.9716, 77.5946},
	{"boston", 42.3601, -71.0589},
}

// geolocationFor maps a place slug to spoofed coordinates. Unknown places
// get no override; the site falls back to IP-based location.
func geolocationFor(place string) (playwright.Geolocation, bool) {
	placeLower := strings.ToLower(place)
	for _, e := range geoTable {
		if strings.Contains(placeLower, e.match) {
			return playwright.Geolocation{Latitude: e.lat, Longitude: e.lng}, true
		}
	}
	return playwright.Geolocation{}, false
}
