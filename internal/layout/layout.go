// Package layout implements the row-partitioning and column-intersection
// arithmetic behind the carpet plan: stacking rows front to back, flagging
// rows that a column intrudes into, and computing the horizontal cut
// intervals for those rows.
package layout

import (
	"fmt"
	"math"
	"sort"

	"hallplan/internal/model"
)

// Compute builds the full carpet layout for cfg. It validates the config,
// stacks rows from y=0 until the hall width is covered, classifies each row,
// and computes merged cutout intervals plus the leftover carpet segments for
// Custom rows.
func Compute(cfg HallConfig) (*model.Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hall config: %w", err)
	}

	active := make([]model.Column, 0, len(cfg.Columns))
	for _, col := range cfg.Columns {
		if !cfg.ignored(col.Label) {
			active = append(active, col)
		}
	}

	l := &model.Layout{
		Length:        cfg.Length,
		Width:         cfg.Width,
		DefaultHeight: cfg.DefaultHeight,
		Columns:       cfg.Columns,
	}

	y := 0.0
	for i := 0; y < cfg.Width; i++ {
		h := cfg.DefaultHeight
		if fh, ok := cfg.ForcedHeights[i]; ok {
			h = fh
		}
		yEnd := y + h
		if yEnd > cfg.Width {
			yEnd = cfg.Width // clip the last row to the hall
		}

		row := model.Row{Index: i, YStart: y, YEnd: yEnd}
		for _, col := range active {
			if intersectsBand(col, y, yEnd) {
				row.Custom = true
				row.Columns = append(row.Columns, col)
			}
		}
		if row.Custom {
			row.Cutouts = mergeIntervals(cutouts(row.Columns, row.Midpoint(), cfg.Length))
			row.Leftovers = complement(row.Cutouts, cfg.Length)
		}

		l.Rows = append(l.Rows, row)
		y = yEnd
	}

	return l, nil
}

// intersectsBand reports whether the column's vertical extent
// [cy-r, cy+r] overlaps the row band [yStart, yEnd).
func intersectsBand(col model.Column, yStart, yEnd float64) bool {
	r := col.Radius()
	return col.Y+r > yStart && col.Y-r < yEnd
}

// cutouts computes one horizontal cut interval per intruding column,
// clamped to [0, length]. The interval is the chord of the column's circle
// sampled at the row's vertical midpoint; when the circle does not reach
// the midpoint the column's full horizontal extent is used instead, so an
// intruding column always produces a cut. Sampling a single y is a known
// approximation, kept deliberately.
func cutouts(cols []model.Column, yMid, length float64) []model.Interval {
	var cuts []model.Interval
	for _, col := range cols {
		r := col.Radius()
		half := r
		if d := math.Abs(yMid - col.Y); d < r {
			half = math.Sqrt(r*r - d*d)
		}
		iv := model.Interval{Start: col.X - half, End: col.X + half}
		if iv.Start < 0 {
			iv.Start = 0
		}
		if iv.End > length {
			iv.End = length
		}
		if iv.End > iv.Start {
			cuts = append(cuts, iv)
		}
	}
	return cuts
}

// mergeIntervals sorts intervals by start and merges overlapping ones.
func mergeIntervals(ivs []model.Interval) []model.Interval {
	if len(ivs) == 0 {
		return nil
	}
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start < ivs[j].Start })
	merged := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// complement returns the gaps between cuts within [0, length], i.e. the
// usable carpet segments of a Custom row. cuts must be merged and sorted.
func complement(cuts []model.Interval, length float64) []model.Interval {
	var left []model.Interval
	x := 0.0
	for _, cut := range cuts {
		if cut.Start > x {
			left = append(left, model.Interval{Start: x, End: cut.Start})
		}
		x = cut.End
	}
	if x < length {
		left = append(left, model.Interval{Start: x, End: length})
	}
	return left
}
