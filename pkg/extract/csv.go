package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

func extractCSV(data []byte) (*Result, error) {
	// Try UTF-8 first; fall back to Windows-1252 for files exported from
	// older spreadsheet tools.
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode csv bytes: %w", err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file contains no rows")
	}

	var sb strings.Builder
	columns := 0
	for _, record := range records {
		if len(record) > columns {
			columns = len(record)
		}
		sb.WriteString(strings.Join(record, ", "))
		sb.WriteString("\n")
	}

	return &Result{
		Text:    sb.String(),
		Rows:    len(records) - 1, // data rows, excluding header
		Columns: columns,
	}, nil
}
