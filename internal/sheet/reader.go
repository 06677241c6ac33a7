// Package sheet reads candidate rows out of XLSX workbooks.
package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row maps a normalized column name to the cell value.
// Columns the sheet does not have are absent from the map.
type Row map[string]string

// Get returns the trimmed cell of column, or def when the column is missing
// or the cell is blank.
func (r Row) Get(column, def string) string {
	v, ok := r[column]
	if !ok {
		return def
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

// NormalizeHeader lowercases and trims a column name.
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// Read returns the data rows of the first worksheet. The first row is the
// header; fully blank rows are skipped.
func Read(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = NormalizeHeader(h)
	}

	var out []Row
	for _, cells := range rows[1:] {
		row := make(Row, len(header))
		blank := true
		for i, col := range header {
			if col == "" {
				continue
			}
			var v string
			if i < len(cells) {
				v = cells[i]
			}
			if strings.TrimSpace(v) != "" {
				blank = false
			}
			row[col] = v
		}
		if blank {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
