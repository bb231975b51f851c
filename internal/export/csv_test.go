package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hallplan/internal/layout"
	"hallplan/internal/model"
)

func sampleLayout(t *testing.T) *model.Layout {
	t.Helper()
	cfg := layout.HallConfig{
		Length:        10,
		Width:         4,
		DefaultHeight: 2,
		Columns: []model.Column{
			{Label: "C2", X: 5, Y: 1, Circumference: 3.14},
		},
	}
	l, err := layout.Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	return l
}

func TestWriteCSV_NewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cutlist.csv")

	if err := WriteCSV(path, sampleLayout(t)); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header + 2 rows), got %d", len(lines))
	}

	if !strings.HasPrefix(lines[0], "row;") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	for _, h := range []string{"y_start", "y_end", "height", "type", "columns", "cut_intervals", "leftover_segments"} {
		if !strings.Contains(lines[0], h) {
			t.Errorf("header should contain %q: %s", h, lines[0])
		}
	}

	if !strings.Contains(lines[1], "Custom") {
		t.Errorf("first row should be Custom: %s", lines[1])
	}
	if !strings.Contains(lines[1], "C2") {
		t.Errorf("custom row should name its column: %s", lines[1])
	}
	if !strings.Contains(lines[2], "Normal") {
		t.Errorf("second row should be Normal: %s", lines[2])
	}
	// Verify semicolon separator used (not comma between fields)
	if !strings.Contains(lines[1], ";") {
		t.Error("should use semicolon separator")
	}
}

func TestWriteCSV_Append(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cutlist.csv")

	l := sampleLayout(t)
	if err := WriteCSV(path, l); err != nil {
		t.Fatalf("first WriteCSV() error: %v", err)
	}
	if err := WriteCSV(path, l); err != nil {
		t.Fatalf("second WriteCSV() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines (header + 2x2 rows), got %d", len(lines))
	}
	if strings.Count(string(data), "row;") != 1 {
		t.Error("header should only be written once")
	}
}
