package services

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"stress-checker/internal/models"
)

func TestExportHistoryCSV(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	records := []models.TestRecord{
		{
			TotalScore:  24,
			StressLevel: "Sedang",
			Answer:      `{"q1":4,"q2":4,"q3":4,"q4":4,"q5":4,"q6":4,"q7":4,"q8":4,"q9":4,"q10":4}`,
			CreatedAt:   created,
		},
		{
			TotalScore:  4,
			StressLevel: "Rendah",
			Answer:      "not json at all",
			CreatedAt:   created,
		},
	}

	data, err := ExportHistoryCSV(records)
	if err != nil {
		t.Fatalf("ExportHistoryCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 records", len(rows))
	}

	header := rows[0]
	if header[0] != "tanggal" || header[3] != "q1" || header[12] != "q10" {
		t.Fatalf("unexpected header: %v", header)
	}

	first := rows[1]
	if first[1] != "24" || first[2] != "Sedang" || first[3] != "4" {
		t.Fatalf("unexpected first record row: %v", first)
	}

	// Malformed stored answers export as empty cells, not an error.
	second := rows[2]
	if second[1] != "4" || second[2] != "Rendah" {
		t.Fatalf("unexpected second record row: %v", second)
	}
	for i := 3; i < len(second); i++ {
		if second[i] != "" {
			t.Fatalf("malformed answers leaked into cell %d: %q", i, second[i])
		}
	}
}

func TestExportHistoryCSVEmpty(t *testing.T) {
	data, err := ExportHistoryCSV(nil)
	if err != nil {
		t.Fatalf("ExportHistoryCSV(nil): %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("empty history should export header only, got %d rows", len(rows))
	}
}
