package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

func extractXLSX(data []byte) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	// Only the first sheet is read.
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("xlsx file contains no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q contains no rows", sheet)
	}

	columns := 0
	var sb strings.Builder
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
		sb.WriteString(strings.Join(row, ", "))
		sb.WriteString("\n")
	}

	return &Result{
		Text:      sb.String(),
		Rows:      len(rows) - 1,
		Columns:   columns,
		SheetName: sheet,
	}, nil
}
