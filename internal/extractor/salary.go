package extractor

import (
	"regexp"
	"strings"
)

var (
	minSalaryRe = regexp.MustCompile(`minimum salary is \$(\d+)K`)
	maxSalaryRe = regexp.MustCompile(`max salary is \$(\d+)K`)
)

// Salary estimate blocks sometimes end with the listing's location name;
// strip the known trailing artifacts before using the raw text.
var salaryArtifacts = []string{
	"Boston, MA",
	"New York, NY",
	"Hyderabad, India",
	"San Francisco, CA",
}

// parseSalary normalizes the matched salary text: a min/max estimate pair
// becomes a range string, a lone minimum a single value, anything else the
// first 100 characters with trailing location artifacts removed.
func parseSalary(text string) string {
	if text == "" {
		return ""
	}

	minM := minSalaryRe.FindStringSubmatch(text)
	maxM := maxSalaryRe.FindStringSubmatch(text)

	if minM != nil && maxM != nil {
		return "$" + minM[1] + "K - $" + maxM[1] + "K"
	}
	if minM != nil {
		return "$" + minM[1] + "K"
	}

	if r := []rune(text); len(r) > 100 {
		text = string(r[:100])
	}
	for _, artifact := range salaryArtifacts {
		if i := strings.Index(text, artifact); i >= 0 {
			text = strings.TrimSpace(text[:i])
			break
		}
	}
	return text
}
