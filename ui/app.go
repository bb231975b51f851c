package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App) fyne.Window {
	win := app.NewWindow("Hall Carpet Planner")
	win.Resize(NewWindowSize())

	hallForm := NewHallForm()
	plotView := NewPlotView()
	rowsView := NewRowsView()
	outputView := NewOutputView()
	exportsList := NewExportsList("exports")
	controls := NewControls(hallForm, plotView, rowsView, outputView, exportsList)

	prefs := app.Preferences()
	hallForm.LoadPreferences(prefs)

	leftPanel := container.NewVBox(
		hallForm.Container(),
		controls.Container(),
	)

	// Pan/zoom/save toolbar above the plot
	plotToolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ZoomInIcon(), plotView.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), plotView.ZoomOut),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), plotView.Fit),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), controls.SavePNG),
	)
	plotPanel := container.NewBorder(plotToolbar, nil, nil, nil, plotView)

	reportTab := container.NewTabItem("Report", outputView.Container())
	rowsTab := container.NewTabItem("Rows", rowsView.Container())
	exportsTab := container.NewTabItem("Exports", exportsList.Container())
	tabs := container.NewAppTabs(reportTab, rowsTab, exportsTab)

	rightPanel := container.NewVSplit(plotPanel, tabs)
	rightPanel.SetOffset(PlotSplitRatio)

	content := container.NewHSplit(leftPanel, rightPanel)
	content.SetOffset(MainSplitRatio)

	win.SetContent(content)

	win.SetCloseIntercept(func() {
		hallForm.SavePreferences(prefs)
		win.Close()
	})

	return win
}
