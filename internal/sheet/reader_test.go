package sheet

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		r := r
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("writing row %d: %v", i, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("writing workbook: %v", err)
	}
	return buf
}

func TestReadNormalizesHeaders(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]interface{}{
		{" Name ", "EMAIL", "Match_Pct"},
		{"Jane Doe", "jane@example.com", 72.5},
		{"", "", ""},
		{"John Roe", "", nil},
	})

	rows, err := Read(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if got := rows[0].Get("name", ""); got != "Jane Doe" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := rows[0].Get("email", ""); got != "jane@example.com" {
		t.Fatalf("unexpected email %q", got)
	}
	if got := rows[0].Get("match_pct", "0"); got != "72.5" {
		t.Fatalf("unexpected match_pct %q", got)
	}
	if got := rows[1].Get("email", "none"); got != "none" {
		t.Fatalf("expected default for blank cell, got %q", got)
	}
	if got := rows[1].Get("stage", "Applied"); got != "Applied" {
		t.Fatalf("expected default for missing column, got %q", got)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := Read(bytes.NewReader([]byte("definitely not xlsx"))); err == nil {
		t.Fatalf("expected an error")
	}
}
