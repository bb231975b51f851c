package export

import (
	"fmt"

	"github.com/fogleman/gg"

	"hallplan/internal/model"
)

// Raster rendering parameters. Front of the hall (y=0) is drawn at the top,
// matching the plot view.
const (
	pngScale  = 48.0 // pixels per meter
	pngMargin = 40.0 // pixels around the hall
)

// WritePNG renders the layout to a PNG image: row rectangles (green Normal,
// orange Custom), cut intervals hatched on custom rows, columns as red
// circles with their labels.
func WritePNG(path string, l *model.Layout) error {
	w := int(l.Length*pngScale + 2*pngMargin)
	h := int(l.Width*pngScale + 2*pngMargin)
	dc := gg.NewContext(w, h)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// hall coordinates to pixels
	px := func(x float64) float64 { return pngMargin + x*pngScale }
	py := func(y float64) float64 { return pngMargin + y*pngScale }

	for i := range l.Rows {
		r := &l.Rows[i]

		if r.Custom {
			dc.SetRGBA(1.0, 0.65, 0.0, 0.35)
		} else {
			dc.SetRGBA(0.0, 0.6, 0.0, 0.35)
		}
		dc.DrawRectangle(px(0), py(r.YStart), l.Length*pngScale, r.Height()*pngScale)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1)
		dc.Stroke()

		for _, cut := range r.Cutouts {
			dc.SetRGBA(0.85, 0.1, 0.1, 0.25)
			dc.DrawRectangle(px(cut.Start), py(r.YStart), cut.Width()*pngScale, r.Height()*pngScale)
			dc.Fill()
		}

		dc.SetRGB(0, 0, 0)
		label := fmt.Sprintf("R%d  H=%.2fm  %s", r.Index, r.Height(), r.Kind())
		dc.DrawStringAnchored(label, px(l.Length/2), py(r.Midpoint()), 0.5, 0.5)
	}

	for _, col := range l.Columns {
		dc.SetRGBA(0.85, 0.1, 0.1, 0.6)
		dc.DrawCircle(px(col.X), py(col.Y), col.Radius()*pngScale)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(col.Label, px(col.X), py(col.Y), 0.5, 0.5)
	}

	// axis captions
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawStringAnchored(fmt.Sprintf("X=0 to X=%.2f", l.Length),
		px(l.Length/2), py(l.Width)+pngMargin/2, 0.5, 0.5)
	dc.DrawStringAnchored("Y=0 (Front)", px(0), pngMargin/2, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Y=%.2f (Back)", l.Width),
		px(0), py(l.Width)+pngMargin/2, 0, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
