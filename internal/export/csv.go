package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"hallplan/internal/model"
)

var csvHeaders = []string{
	"row",
	"y_start",
	"y_end",
	"height",
	"type",
	"length",
	"columns",
	"cut_intervals",
	"leftover_segments",
}

// WriteCSV writes the cut list to a CSV file (semicolon-separated), one line
// per row, creating it with headers if it doesn't exist, or appending rows
// if it does.
func WriteCSV(path string, l *model.Layout) error {
	exists := fileExists(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if !exists {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for i := range l.Rows {
		r := &l.Rows[i]

		labels := make([]string, len(r.Columns))
		for j, c := range r.Columns {
			labels[j] = c.Label
		}

		record := []string{
			strconv.Itoa(r.Index),
			fmt.Sprintf("%.2f", r.YStart),
			fmt.Sprintf("%.2f", r.YEnd),
			fmt.Sprintf("%.2f", r.Height()),
			r.Kind(),
			fmt.Sprintf("%.2f", l.Length),
			strings.Join(labels, ","),
			intervalsField(r.Cutouts),
			intervalsField(r.Leftovers),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	return nil
}

// intervalsField renders intervals as "start-end" pairs joined by commas,
// e.g. "4.50-5.50,7.10-7.30". Empty for Normal rows.
func intervalsField(ivs []model.Interval) string {
	parts := make([]string, len(ivs))
	for i, iv := range ivs {
		parts[i] = fmt.Sprintf("%.2f-%.2f", iv.Start, iv.End)
	}
	return strings.Join(parts, ",")
}
