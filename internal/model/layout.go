package model

import (
	"fmt"
	"math"
)

// Column is a circular obstruction (physical pillar) inside the hall,
// given by its center position and circumference. Immutable once entered.
type Column struct {
	Label         string
	X             float64 // center x in meters, 0 = left wall
	Y             float64 // center y in meters, 0 = front wall
	Circumference float64 // meters
}

// Radius returns the column radius derived from its circumference.
func (c Column) Radius() float64 {
	return c.Circumference / (2 * math.Pi)
}

// Interval is a horizontal span [Start, End) along the hall length.
type Interval struct {
	Start float64
	End   float64
}

// Width returns the interval width in meters.
func (iv Interval) Width() float64 {
	return iv.End - iv.Start
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%.2f,%.2f]", iv.Start, iv.End)
}

// Row is one horizontal carpet strip, front (y=0) to back.
type Row struct {
	Index  int     // 0-based, front to back
	YStart float64
	YEnd   float64
	Custom bool // true if at least one column intrudes into this row

	// Columns lists the non-ignored columns whose vertical extent
	// intersects this row. Empty for Normal rows.
	Columns []Column

	// Cutouts are the merged horizontal intervals that must be cut out of
	// the carpet, sorted by Start. Empty for Normal rows.
	Cutouts []Interval

	// Leftovers are the usable carpet segments of a Custom row, the
	// complement of Cutouts within [0, hall length].
	Leftovers []Interval
}

// Height returns the row height in meters.
func (r *Row) Height() float64 {
	return r.YEnd - r.YStart
}

// Midpoint returns the vertical center of the row.
func (r *Row) Midpoint() float64 {
	return (r.YStart + r.YEnd) / 2
}

// Kind returns "Custom" or "Normal".
func (r *Row) Kind() string {
	if r.Custom {
		return "Custom"
	}
	return "Normal"
}

// Layout is the computed carpet plan: an ordered row sequence covering the
// hall width with no gaps or overlaps.
type Layout struct {
	Length        float64 // hall length (horizontal, row direction)
	Width         float64 // hall width (vertical, stacking direction)
	DefaultHeight float64

	Rows    []Row
	Columns []Column // every entered column, ignored ones included
}

// CustomCount returns the number of rows needing custom cuts.
func (l *Layout) CustomCount() int {
	n := 0
	for i := range l.Rows {
		if l.Rows[i].Custom {
			n++
		}
	}
	return n
}

// TotalHeight returns the summed row heights. Equals the hall width unless
// the hall is empty.
func (l *Layout) TotalHeight() float64 {
	var sum float64
	for i := range l.Rows {
		sum += l.Rows[i].Height()
	}
	return sum
}

// CarpetArea returns the total carpet area in square meters, cutouts excluded.
// Cutout intervals are rectangles of the full row height, matching how the
// cut list is produced.
func (l *Layout) CarpetArea() float64 {
	var area float64
	for i := range l.Rows {
		r := &l.Rows[i]
		area += l.Length * r.Height()
		for _, cut := range r.Cutouts {
			area -= cut.Width() * r.Height()
		}
	}
	return area
}
