package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hallplan/internal/model"
)

// PlotView draws the computed layout on a 2D canvas: row rectangles (green
// Normal, orange Custom), cut intervals, and columns as red circles. The
// front of the hall (y=0) is at the top. Supports panning by drag and
// zooming by scroll wheel or the toolbar buttons.
type PlotView struct {
	widget.BaseWidget

	layout *model.Layout

	scale   float32 // pixels per meter
	offset  fyne.Position
	fitted  bool
	content *fyne.Container
	bg      *canvas.Rectangle
}

// NewPlotView creates an empty plot view.
func NewPlotView() *PlotView {
	pv := &PlotView{
		scale:   30,
		content: container.NewWithoutLayout(),
		bg:      canvas.NewRectangle(color.White),
	}
	pv.ExtendBaseWidget(pv)
	return pv
}

// CreateRenderer implements fyne.Widget.
func (pv *PlotView) CreateRenderer() fyne.WidgetRenderer {
	return &plotRenderer{pv: pv}
}

// SetLayout replaces the displayed layout. The first layout (or a layout
// following Reset) is fitted to the panel.
func (pv *PlotView) SetLayout(l *model.Layout) {
	pv.layout = l
	if !pv.fitted {
		pv.Fit()
		return
	}
	pv.rebuild()
}

// Fit rescales and centers the hall inside the panel.
func (pv *PlotView) Fit() {
	if pv.layout == nil {
		return
	}
	size := pv.Size()
	if size.Width <= 0 || size.Height <= 0 {
		size = NewPlotMinSize()
	}

	availW := size.Width - 2*PlotMargin
	availH := size.Height - 2*PlotMargin
	sx := availW / float32(pv.layout.Length)
	sy := availH / float32(pv.layout.Width)
	pv.scale = clampScale(min(sx, sy))

	hallW := float32(pv.layout.Length) * pv.scale
	hallH := float32(pv.layout.Width) * pv.scale
	pv.offset = fyne.NewPos((size.Width-hallW)/2, (size.Height-hallH)/2)
	pv.fitted = true
	pv.rebuild()
}

// ZoomIn zooms in around the panel center.
func (pv *PlotView) ZoomIn() { pv.zoomAbout(1.25, pv.center()) }

// ZoomOut zooms out around the panel center.
func (pv *PlotView) ZoomOut() { pv.zoomAbout(1/1.25, pv.center()) }

// Dragged pans the plot.
func (pv *PlotView) Dragged(e *fyne.DragEvent) {
	pv.offset = pv.offset.AddXY(e.Dragged.DX, e.Dragged.DY)
	pv.rebuild()
}

// DragEnd implements fyne.Draggable.
func (pv *PlotView) DragEnd() {}

// Scrolled zooms around the cursor position.
func (pv *PlotView) Scrolled(e *fyne.ScrollEvent) {
	factor := float32(1.1)
	if e.Scrolled.DY < 0 {
		factor = 1 / 1.1
	}
	pv.zoomAbout(factor, e.Position)
}

func (pv *PlotView) center() fyne.Position {
	size := pv.Size()
	return fyne.NewPos(size.Width/2, size.Height/2)
}

// zoomAbout rescales while keeping the hall point under p fixed on screen.
func (pv *PlotView) zoomAbout(factor float32, p fyne.Position) {
	old := pv.scale
	pv.scale = clampScale(old * factor)
	applied := pv.scale / old
	pv.offset = fyne.NewPos(
		p.X-(p.X-pv.offset.X)*applied,
		p.Y-(p.Y-pv.offset.Y)*applied,
	)
	pv.rebuild()
}

func clampScale(s float32) float32 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// px/py map hall meters to panel pixels.
func (pv *PlotView) px(x float64) float32 { return pv.offset.X + float32(x)*pv.scale }
func (pv *PlotView) py(y float64) float32 { return pv.offset.Y + float32(y)*pv.scale }

// rebuild regenerates the canvas objects from the current layout and view
// transform. Everything is recomputed from scratch, no incremental state.
func (pv *PlotView) rebuild() {
	objects := []fyne.CanvasObject{}

	if pv.layout != nil {
		l := pv.layout

		for i := range l.Rows {
			r := &l.Rows[i]

			fill := colorNormalRow
			if r.Custom {
				fill = colorCustomRow
			}
			rect := canvas.NewRectangle(fill)
			rect.StrokeColor = colorRowEdge
			rect.StrokeWidth = 1
			rect.Move(fyne.NewPos(pv.px(0), pv.py(r.YStart)))
			rect.Resize(fyne.NewSize(
				float32(l.Length)*pv.scale,
				float32(r.Height())*pv.scale,
			))
			objects = append(objects, rect)

			for _, cut := range r.Cutouts {
				cutRect := canvas.NewRectangle(colorCutout)
				cutRect.Move(fyne.NewPos(pv.px(cut.Start), pv.py(r.YStart)))
				cutRect.Resize(fyne.NewSize(
					float32(cut.Width())*pv.scale,
					float32(r.Height())*pv.scale,
				))
				objects = append(objects, cutRect)
			}

			label := fmt.Sprintf("R%d  H=%.2fm  %s", r.Index, r.Height(), r.Kind())
			objects = append(objects, pv.centeredText(label, 11,
				pv.px(l.Length/2), pv.py(r.Midpoint())))
		}

		for _, col := range l.Columns {
			radius := float32(col.Radius()) * pv.scale
			circle := canvas.NewCircle(colorColumn)
			circle.Move(fyne.NewPos(pv.px(col.X)-radius, pv.py(col.Y)-radius))
			circle.Resize(fyne.NewSize(2*radius, 2*radius))
			objects = append(objects, circle)

			objects = append(objects, pv.centeredText(col.Label, 10,
				pv.px(col.X), pv.py(col.Y)))
		}
	}

	pv.content.Objects = objects
	pv.content.Refresh()
}

// centeredText builds a canvas text centered on (x, y).
func (pv *PlotView) centeredText(s string, size float32, x, y float32) *canvas.Text {
	t := canvas.NewText(s, colorLabel)
	t.TextSize = size
	sz := t.MinSize()
	t.Move(fyne.NewPos(x-sz.Width/2, y-sz.Height/2))
	return t
}

type plotRenderer struct {
	pv *PlotView
}

func (r *plotRenderer) Layout(size fyne.Size) {
	r.pv.bg.Resize(size)
	r.pv.content.Resize(size)
}

func (r *plotRenderer) MinSize() fyne.Size {
	return NewPlotMinSize()
}

func (r *plotRenderer) Refresh() {
	r.pv.bg.Refresh()
	r.pv.content.Refresh()
}

func (r *plotRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.pv.bg, r.pv.content}
}

func (r *plotRenderer) Destroy() {}
