package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser flattens CSV files into one line of comma-joined cells per
// record.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}

	var out strings.Builder
	for i, row := range records {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(strings.Join(row, ", "))
	}
	return out.String(), nil
}
