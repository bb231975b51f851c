package layout

import (
	"math"
	"testing"

	"hallplan/internal/model"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputePlainHall(t *testing.T) {
	cfg := HallConfig{Length: 10, Width: 10, DefaultHeight: 1.35}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	// 7 full rows of 1.35 plus a clipped 0.55 remainder
	if len(l.Rows) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(l.Rows))
	}
	for i := 0; i < 7; i++ {
		if !approx(l.Rows[i].Height(), 1.35) {
			t.Errorf("row %d height = %g, want 1.35", i, l.Rows[i].Height())
		}
	}
	if !approx(l.Rows[7].Height(), 0.55) {
		t.Errorf("last row height = %g, want 0.55", l.Rows[7].Height())
	}
	for i := range l.Rows {
		if l.Rows[i].Custom {
			t.Errorf("row %d classified Custom with no columns", i)
		}
	}
	if last := l.Rows[len(l.Rows)-1]; last.YEnd > cfg.Width+eps {
		t.Errorf("last row YEnd = %g exceeds hall width %g", last.YEnd, cfg.Width)
	}
}

func TestComputeRowsContiguous(t *testing.T) {
	cfg := HallConfig{
		Length:        16.15,
		Width:         17.37,
		DefaultHeight: 1.35,
		ForcedHeights: map[int]float64{3: 0.66, 7: 0.66, 11: 0.66},
	}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	prevEnd := 0.0
	for i, r := range l.Rows {
		if r.Index != i {
			t.Errorf("row %d has index %d", i, r.Index)
		}
		if !approx(r.YStart, prevEnd) {
			t.Errorf("row %d starts at %g, previous ended at %g", i, r.YStart, prevEnd)
		}
		if r.YEnd <= r.YStart {
			t.Errorf("row %d has non-positive height", i)
		}
		prevEnd = r.YEnd
	}
	if !approx(prevEnd, cfg.Width) {
		t.Errorf("rows cover [0,%g], hall width is %g", prevEnd, cfg.Width)
	}
	if !approx(l.TotalHeight(), cfg.Width) {
		t.Errorf("TotalHeight() = %g, want %g", l.TotalHeight(), cfg.Width)
	}
}

func TestComputeForcedHeights(t *testing.T) {
	cfg := HallConfig{
		Length:        10,
		Width:         10,
		DefaultHeight: 1.35,
		ForcedHeights: map[int]float64{0: 2.0, 3: 0.66},
	}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if !approx(l.Rows[0].Height(), 2.0) {
		t.Errorf("forced row 0 height = %g, want 2.0", l.Rows[0].Height())
	}
	if !approx(l.Rows[3].Height(), 0.66) {
		t.Errorf("forced row 3 height = %g, want 0.66", l.Rows[3].Height())
	}
	if !approx(l.Rows[1].Height(), 1.35) {
		t.Errorf("unforced row 1 height = %g, want default 1.35", l.Rows[1].Height())
	}
}

func TestComputeColumnClassification(t *testing.T) {
	// Forced row 3 = 0.66 plus one thin column at (5, 4).
	cfg := HallConfig{
		Length:        10,
		Width:         10,
		DefaultHeight: 1.35,
		ForcedHeights: map[int]float64{3: 0.66},
		Columns: []model.Column{
			{Label: "C1", X: 5, Y: 4, Circumference: 0.63},
		},
	}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	r := cfg.Columns[0].Radius() // ~0.10
	for _, row := range l.Rows {
		wantCustom := 4+r > row.YStart && 4-r < row.YEnd
		if row.Custom != wantCustom {
			t.Errorf("row %d [%.2f,%.2f): Custom = %v, want %v",
				row.Index, row.YStart, row.YEnd, row.Custom, wantCustom)
		}
	}

	// The row spanning y=4 is Custom with a cut centered near x=5.
	var hit *model.Row
	for i := range l.Rows {
		if l.Rows[i].YStart <= 4 && 4 < l.Rows[i].YEnd {
			hit = &l.Rows[i]
			break
		}
	}
	if hit == nil {
		t.Fatal("no row spans y=4")
	}
	if !hit.Custom {
		t.Fatal("row spanning y=4 not classified Custom")
	}
	if len(hit.Cutouts) != 1 {
		t.Fatalf("expected 1 cutout, got %d", len(hit.Cutouts))
	}
	cut := hit.Cutouts[0]
	center := (cut.Start + cut.End) / 2
	if math.Abs(center-5) > 0.01 {
		t.Errorf("cutout centered at %g, want ~5", center)
	}
	if cut.Start < 5-r-eps || cut.End > 5+r+eps {
		t.Errorf("cutout %v exceeds column extent [%g,%g]", cut, 5-r, 5+r)
	}
}

func TestComputeCutoutChordAtMidpoint(t *testing.T) {
	// Column centered exactly on the row midpoint: the cut is the full
	// diameter. Circumference 2π gives radius 1.
	cfg := HallConfig{
		Length:        10,
		Width:         4,
		DefaultHeight: 2,
		Columns: []model.Column{
			{Label: "C1", X: 5, Y: 1, Circumference: 2 * math.Pi},
		},
	}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	row := l.Rows[0] // [0,2), midpoint 1 = column center
	if !row.Custom {
		t.Fatal("row 0 should be Custom")
	}
	if len(row.Cutouts) != 1 {
		t.Fatalf("expected 1 cutout, got %d", len(row.Cutouts))
	}
	cut := row.Cutouts[0]
	if !approx(cut.Start, 4) || !approx(cut.End, 6) {
		t.Errorf("cutout = %v, want [4,6]", cut)
	}

	// The circle is tangent to the row boundary at y=2; a touching column
	// does not intrude into row 1.
	if l.Rows[1].Custom {
		t.Error("tangent column should not mark row 1 Custom")
	}
}

func TestComputeCutoutFullExtentFallback(t *testing.T) {
	// Column intrudes into row 1 but its circle does not reach the row
	// midpoint, so the cut falls back to the full horizontal extent.
	cfg := HallConfig{
		Length:        10,
		Width:         4,
		DefaultHeight: 2,
		Columns: []model.Column{
			{Label: "C1", X: 5, Y: 1.9, Circumference: 2 * math.Pi},
		},
	}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	row := l.Rows[1] // [2,4), midpoint 3, column extent ends at y=2.9
	if !row.Custom {
		t.Fatal("row 1 should be Custom")
	}
	if len(row.Cutouts) != 1 {
		t.Fatalf("expected 1 cutout, got %d", len(row.Cutouts))
	}
	cut := row.Cutouts[0]
	if !approx(cut.Start, 4) || !approx(cut.End, 6) {
		t.Errorf("fallback cutout = %v, want full extent [4,6]", cut)
	}
}

func TestComputeCutoutClamped(t *testing.T) {
	// Column hanging over the left wall: the cut is clamped to x=0.
	cfg := HallConfig{
		Length:        10,
		Width:         2,
		DefaultHeight: 2,
		Columns: []model.Column{
			{Label: "C1", X: 0.2, Y: 1, Circumference: 2 * math.Pi},
		},
	}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	cut := l.Rows[0].Cutouts[0]
	if cut.Start != 0 {
		t.Errorf("cutout start = %g, want clamp to 0", cut.Start)
	}
	if !approx(cut.End, 1.2) {
		t.Errorf("cutout end = %g, want 1.2", cut.End)
	}
}

func TestComputeMergesOverlappingCutouts(t *testing.T) {
	// Two columns close together on the row midpoint produce one merged cut
	// and two leftover segments.
	cfg := HallConfig{
		Length:        10,
		Width:         2,
		DefaultHeight: 2,
		Columns: []model.Column{
			{Label: "C1", X: 4, Y: 1, Circumference: 2 * math.Pi},
			{Label: "C2", X: 5.5, Y: 1, Circumference: 2 * math.Pi},
		},
	}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	row := l.Rows[0]
	if len(row.Cutouts) != 1 {
		t.Fatalf("expected merged single cutout, got %d", len(row.Cutouts))
	}
	if !approx(row.Cutouts[0].Start, 3) || !approx(row.Cutouts[0].End, 6.5) {
		t.Errorf("merged cutout = %v, want [3,6.5]", row.Cutouts[0])
	}
	if len(row.Leftovers) != 2 {
		t.Fatalf("expected 2 leftover segments, got %d", len(row.Leftovers))
	}
	if !approx(row.Leftovers[0].Start, 0) || !approx(row.Leftovers[0].End, 3) {
		t.Errorf("first leftover = %v, want [0,3]", row.Leftovers[0])
	}
	if !approx(row.Leftovers[1].Start, 6.5) || !approx(row.Leftovers[1].End, 10) {
		t.Errorf("second leftover = %v, want [6.5,10]", row.Leftovers[1])
	}
}

func TestComputeIgnoredColumns(t *testing.T) {
	cfg := HallConfig{
		Length:        10,
		Width:         2,
		DefaultHeight: 2,
		Columns: []model.Column{
			{Label: "C1", X: 5, Y: 1, Circumference: 1},
		},
		IgnoreLabels: []string{"C1"},
	}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if l.Rows[0].Custom {
		t.Error("ignored column should not mark the row Custom")
	}
	// Ignored columns are still part of the layout for drawing.
	if len(l.Columns) != 1 {
		t.Errorf("layout should keep all columns, got %d", len(l.Columns))
	}
}

func TestComputeInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  HallConfig
	}{
		{"zero width", HallConfig{Length: 10, Width: 0, DefaultHeight: 1}},
		{"negative length", HallConfig{Length: -1, Width: 10, DefaultHeight: 1}},
		{"zero default height", HallConfig{Length: 10, Width: 10, DefaultHeight: 0}},
		{"negative forced height", HallConfig{
			Length: 10, Width: 10, DefaultHeight: 1,
			ForcedHeights: map[int]float64{2: -0.5},
		}},
		{"negative forced index", HallConfig{
			Length: 10, Width: 10, DefaultHeight: 1,
			ForcedHeights: map[int]float64{-1: 0.5},
		}},
		{"unlabeled column", HallConfig{
			Length: 10, Width: 10, DefaultHeight: 1,
			Columns: []model.Column{{X: 1, Y: 1, Circumference: 1}},
		}},
		{"zero circumference", HallConfig{
			Length: 10, Width: 10, DefaultHeight: 1,
			Columns: []model.Column{{Label: "C1", X: 1, Y: 1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.cfg); err == nil {
				t.Error("Compute() should fail, got nil error")
			}
		})
	}
}

func TestCarpetArea(t *testing.T) {
	cfg := HallConfig{Length: 10, Width: 4, DefaultHeight: 2}

	l, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if !approx(l.CarpetArea(), 40) {
		t.Errorf("CarpetArea() = %g, want 40", l.CarpetArea())
	}
}
