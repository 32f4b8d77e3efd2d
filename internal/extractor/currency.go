package extractor

import "strings"

// currencyMarker is one entry of the detection table. Symbol markers match
// the text as-is; code markers match case-insensitively.
type currencyMarker struct {
	marker string
	code   string
	symbol bool
}

// Ordered: symbol checks run before code checks, first match wins. A salary
// containing both "$" and "EUR" therefore resolves to USD.
var currencyTable = []currencyMarker{
	{"$", "USD", true},
	{"€", "EUR", true},
	{"£", "GBP", true},
	{"¥", "JPY", true},
	{"₹", "INR", true},
	{"INR", "INR", false},
	{"CAD", "CAD", false},
	{"AUD", "AUD", false},
	{"CHF", "CHF", false},
	{"SEK", "SEK", false},
	{"NOK", "NOK", false},
	{"DKK", "DKK", false},
	{"PLN", "PLN", false},
	{"CZK", "CZK", false},
	{"HUF", "HUF", false},
	{"RUB", "RUB", false},
	{"BRL", "BRL", false},
	{"MXN", "MXN", false},
	{"ZAR", "ZAR", false},
	{"KRW", "KRW", false},
	{"SGD", "SGD", false},
	{"HKD", "HKD", false},
	{"NZD", "NZD", false},
}

// detectCurrency scans the salary text against the marker table and defaults
// to USD when nothing matches.
func detectCurrency(salary string) string {
	upper := strings.ToUpper(salary)
	for _, m := range currencyTable {
		if m.symbol {
			if strings.Contains(salary, m.marker) {
				return m.code
			}
			continue
		}
		if strings.Contains(upper, m.marker) {
			return m.code
		}
	}
	return "USD"
}
