// CSV sink: an ordered record sequence written as fully quoted rows with a
// fixed 11-column schema.

package sink

import (
	"fmt"
	"os"
	"strings"

	"go-glassdoor-scraper/internal/scraper"
)

var header = []string{
	"Name", "Company", "State", "City", "Salary", "Location",
	"Currency", "Region", "Years of Experience", "Year", "Url",
}

// WriteCSV writes the records to path, creating or overwriting the file.
// Every field is quoted, matching the downstream consumers of the original
// output format (encoding/csv only quotes when it has to).
func WriteCSV(path string, records []scraper.JobRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(row(header)); err != nil {
		return err
	}

	for _, r := range records {
		fields := []string{
			r.Name, r.Company, r.State, r.City, r.Salary, r.Location,
			r.Currency, r.Region, r.YearsOfExperience, r.Year, r.Url,
		}
		if _, err := f.WriteString(row(fields)); err != nil {
			return err
		}
	}

	return f.Sync()
}

func row(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\r\n"
}
