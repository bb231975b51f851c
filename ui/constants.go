package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Window dimensions
const (
	WindowWidth  = 1000
	WindowHeight = 700
)

// Split ratios
const (
	MainSplitRatio = 0.38 // 38% form/controls, 62% plot
	PlotSplitRatio = 0.65 // 65% plot, 35% report tabs
)

// Plot view
const (
	PlotMinWidth  = 400
	PlotMinHeight = 300
	PlotMargin    = 24  // pixels around the hall at fit zoom
	MinScale      = 2   // px per meter
	MaxScale      = 400 // px per meter
)

// Plot colors, matching the PNG export and the CLI report.
var (
	colorNormalRow = color.NRGBA{R: 0, G: 153, B: 0, A: 90}
	colorCustomRow = color.NRGBA{R: 255, G: 165, B: 0, A: 90}
	colorCutout    = color.NRGBA{R: 217, G: 26, B: 26, A: 70}
	colorColumn    = color.NRGBA{R: 217, G: 26, B: 26, A: 160}
	colorRowEdge   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colorLabel     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewPlotMinSize returns the minimum size of the plot panel
func NewPlotMinSize() fyne.Size {
	return fyne.NewSize(PlotMinWidth, PlotMinHeight)
}
