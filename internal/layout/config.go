package layout

import (
	"fmt"

	"hallplan/internal/model"
)

// HallConfig holds the parameters for one layout computation.
type HallConfig struct {
	Length        float64 // hall length in meters (row direction)
	Width         float64 // hall width in meters (stacking direction)
	DefaultHeight float64 // default row height in meters

	// ForcedHeights overrides the default height for specific rows,
	// keyed by 0-based row index. Sparse, may be empty.
	ForcedHeights map[int]float64

	Columns []model.Column

	// IgnoreLabels lists columns that are drawn but never mark a row as
	// Custom (e.g. a pillar standing on a walkway rather than carpet).
	IgnoreLabels []string
}

// DefaultConfig returns a HallConfig seeded with the sample hall.
func DefaultConfig() HallConfig {
	return HallConfig{
		Length:        16.15,
		Width:         17.37,
		DefaultHeight: 1.35,
		ForcedHeights: map[int]float64{3: 0.66, 7: 0.66, 11: 0.66},
		Columns: []model.Column{
			{Label: "C1", X: 2.4, Y: 2.0, Circumference: 0.8},
			{Label: "C2", X: 5.95, Y: 2.91, Circumference: 1.23},
			{Label: "C3", X: 11.95, Y: 2.98, Circumference: 1.2},
			{Label: "C4", X: 13.12, Y: 7.57, Circumference: 1.51},
			{Label: "C5", X: 12.97, Y: 12.5, Circumference: 1.58},
		},
		IgnoreLabels: []string{"C1"},
	}
}

// Validate checks the config for invalid values.
func (c *HallConfig) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("hall length must be positive, got %g", c.Length)
	}
	if c.Width <= 0 {
		return fmt.Errorf("hall width must be positive, got %g", c.Width)
	}
	if c.DefaultHeight <= 0 {
		return fmt.Errorf("default row height must be positive, got %g", c.DefaultHeight)
	}
	for idx, h := range c.ForcedHeights {
		if idx < 0 {
			return fmt.Errorf("forced row index must not be negative, got %d", idx)
		}
		if h <= 0 {
			return fmt.Errorf("forced height for row %d must be positive, got %g", idx, h)
		}
	}
	for i, col := range c.Columns {
		if col.Label == "" {
			return fmt.Errorf("column %d has no label", i)
		}
		if col.Circumference <= 0 {
			return fmt.Errorf("column %q circumference must be positive, got %g", col.Label, col.Circumference)
		}
	}
	return nil
}

// ignored reports whether lbl is in the ignore list.
func (c *HallConfig) ignored(lbl string) bool {
	for _, ig := range c.IgnoreLabels {
		if ig == lbl {
			return true
		}
	}
	return false
}
