package export

import (
	"fmt"
	"os"

	"hallplan/internal/format"
	"hallplan/internal/model"
)

// WriteTXT writes the plain-text row summary to a text file.
func WriteTXT(path string, l *model.Layout) error {
	out := format.FormatLayout(l) + "\n"
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
