package taskfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// csvColumns maps accepted header names (lowercased) to record fields.
// Matching is case-insensitive, column order is free, and columns that
// match nothing are ignored.
var csvColumns = map[string]string{
	"cod":          "code",
	"code":         "code",
	"dur":          "duration",
	"duration":     "duration",
	"pre":          "predecessors",
	"pred":         "predecessors",
	"predecessors": "predecessors",
}

// loadCSV reads a header-first CSV task file. Rows may be ragged: a
// missing trailing cell reads as empty and surfaces later as a validation
// failure, which gives a better message than a column-count parse error.
func loadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		field, ok := csvColumns[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, seen := cols[field]; !seen {
			cols[field] = i
		}
	}
	for _, field := range []string{"code", "duration", "predecessors"} {
		if _, ok := cols[field]; !ok {
			return nil, fmt.Errorf("%s: missing %q column", path, field)
		}
	}

	var records []Record
	for _, row := range rows[1:] {
		rec := Record{
			Code:         cell(row, cols["code"]),
			Duration:     cell(row, cols["duration"]),
			Predecessors: cell(row, cols["predecessors"]),
		}
		if rec.Code == "" && rec.Duration == "" && rec.Predecessors == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
