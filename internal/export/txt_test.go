package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.txt")

	if err := WriteTXT(path, sampleLayout(t)); err != nil {
		t.Fatalf("WriteTXT() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	content := string(data)
	for _, want := range []string{"--- Row Summary ---", "Row 0:", "Row 1:", "Custom", "Normal"} {
		if !strings.Contains(content, want) {
			t.Errorf("summary should contain %q", want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.png")

	if err := WritePNG(path, sampleLayout(t)); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	// PNG magic bytes
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output is not a PNG file")
	}
}
