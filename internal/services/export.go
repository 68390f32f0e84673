package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"stress-checker/internal/models"
	"stress-checker/internal/scoring"
)

// ExportHistoryCSV renders a user's test records into a wide CSV: one
// row per test, one column per question. Records with malformed stored
// answers get empty answer cells rather than aborting the export.
func ExportHistoryCSV(records []models.TestRecord) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"tanggal", "skor_total", "tingkat_stres"}
	for q := 1; q <= scoring.NumQuestions; q++ {
		header = append(header, fmt.Sprintf("q%d", q))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		row := []string{
			r.CreatedAt.Format(time.RFC3339),
			strconv.Itoa(r.TotalScore),
			r.StressLevel,
		}
		answers := models.DecodeAnswers(r.Answer)
		for q := 1; q <= scoring.NumQuestions; q++ {
			value, ok := answers[fmt.Sprintf("q%d", q)]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.Itoa(value))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
