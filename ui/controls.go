package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"hallplan/internal/export"
	"hallplan/internal/format"
	"hallplan/internal/layout"
	"hallplan/internal/model"
	"hallplan/internal/preset"
)

// Controls manages the Plot/Export buttons and the compute-and-render cycle.
type Controls struct {
	plotBtn   *widget.Button
	exportBtn *widget.Button
	pngBtn    *widget.Button
	presetBtn *widget.Button
	loadBtn   *widget.Button

	hallForm    *HallForm
	plotView    *PlotView
	rowsView    *RowsView
	outputView  *OutputView
	exportsList *ExportsList

	current *model.Layout // last computed layout, nil before first plot

	container *fyne.Container
}

// NewControls creates the control buttons wired to the given views.
func NewControls(hf *HallForm, pv *PlotView, rv *RowsView, ov *OutputView, el *ExportsList) *Controls {
	c := &Controls{
		hallForm:    hf,
		plotView:    pv,
		rowsView:    rv,
		outputView:  ov,
		exportsList: el,
	}

	c.plotBtn = widget.NewButton("Plot Layout", c.onPlot)
	c.plotBtn.Importance = widget.HighImportance
	c.exportBtn = widget.NewButton("Export CSV", c.onExportCSV)
	c.pngBtn = widget.NewButton("Save PNG", c.onSavePNG)
	c.presetBtn = widget.NewButton("Save Preset", c.onSavePreset)
	c.loadBtn = widget.NewButton("Load Preset", c.onLoadPreset)

	c.container = container.NewVBox(
		container.NewHBox(c.plotBtn, c.exportBtn, c.pngBtn),
		container.NewHBox(c.presetBtn, c.loadBtn),
	)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// SavePNG exposes the PNG export for the plot toolbar.
func (c *Controls) SavePNG() {
	c.onSavePNG()
}

// onPlot runs one full compute-and-render cycle: parse the form, validate,
// compute the layout, redraw the plot, refresh the rows table, and write the
// report. Invalid input shows a blocking dialog and renders nothing.
func (c *Controls) onPlot() {
	cfg, err := c.hallForm.Config()
	if err != nil {
		c.showError(err)
		return
	}

	l, err := layout.Compute(cfg)
	if err != nil {
		c.showError(err)
		return
	}

	c.current = l
	c.plotView.SetLayout(l)
	c.rowsView.SetLayout(l)
	c.outputView.SetReport(format.FormatLayout(l))
}

func (c *Controls) onExportCSV() {
	l := c.current
	if l == nil {
		c.outputView.AppendLine("Nothing to export - plot a layout first.")
		return
	}

	c.withSaveDialog("cutlist.csv", func(path string) {
		if err := export.WriteCSV(path, l); err != nil {
			c.showError(fmt.Errorf("CSV export: %w", err))
			return
		}
		c.outputView.AppendLine(fmt.Sprintf("Cut list exported to %s", path))

		txtPath := strings.TrimSuffix(path, ".csv") + ".txt"
		if err := export.WriteTXT(txtPath, l); err != nil {
			c.showError(fmt.Errorf("TXT export: %w", err))
			return
		}
		c.outputView.AppendLine(fmt.Sprintf("Summary exported to %s", txtPath))
		c.exportsList.Refresh()
	})
}

func (c *Controls) onSavePNG() {
	l := c.current
	if l == nil {
		c.outputView.AppendLine("Nothing to save - plot a layout first.")
		return
	}

	c.withSaveDialog("layout.png", func(path string) {
		if err := export.WritePNG(path, l); err != nil {
			c.showError(fmt.Errorf("PNG export: %w", err))
			return
		}
		c.outputView.AppendLine(fmt.Sprintf("Plot saved to %s", path))
		c.exportsList.Refresh()
	})
}

func (c *Controls) onSavePreset() {
	cfg, err := c.hallForm.Config()
	if err != nil {
		c.showError(err)
		return
	}

	c.withSaveDialog("hall.toml", func(path string) {
		if err := preset.Save(path, cfg); err != nil {
			c.showError(err)
			return
		}
		c.outputView.AppendLine(fmt.Sprintf("Preset saved to %s", path))
		c.exportsList.Refresh()
	})
}

func (c *Controls) onLoadPreset() {
	win := currentWindow()
	if win == nil {
		return
	}
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		cfg, err := preset.Load(path)
		if err != nil {
			c.showError(err)
			return
		}
		c.hallForm.SetConfig(cfg)
		c.outputView.AppendLine(fmt.Sprintf("Preset loaded from %s", path))
	}, win)
}

// withSaveDialog runs a file save dialog and hands the chosen path to fn.
func (c *Controls) withSaveDialog(suggested string, fn func(path string)) {
	win := currentWindow()
	if win == nil {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		fn(path)
	}, win)
	d.SetFileName(suggested)
	d.Show()
}

func (c *Controls) showError(err error) {
	if win := currentWindow(); win != nil {
		dialog.ShowError(err, win)
		return
	}
	c.outputView.AppendLine(fmt.Sprintf("Error: %v", err))
}

func currentWindow() fyne.Window {
	wins := fyne.CurrentApp().Driver().AllWindows()
	if len(wins) == 0 {
		return nil
	}
	return wins[0]
}
