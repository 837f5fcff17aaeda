package fetch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// CSVRecord is implemented by record types that know their own CSV shape.
type CSVRecord interface {
	CSVHeader() []string
	CSVRow() []string
}

// ExportJSON writes v to path as indented JSON.
func ExportJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode JSON: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// ExportCSV writes records to path with a header row taken from the first
// record. An empty record slice is an error: there is nothing to export.
func ExportCSV(path string, records []CSVRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(records[0].CSVHeader()); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.CSVRow()); err != nil {
			return fmt.Errorf("cannot write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return f.Close()
}

// DefaultOutputName builds the fallback export filename,
// e.g. "github_data_20240615_120301.json".
func DefaultOutputName(command, format string, now time.Time) string {
	return fmt.Sprintf("%s_data_%s.%s", command, now.Format("20060102_150405"), format)
}
