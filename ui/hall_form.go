package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hallplan/internal/layout"
	"hallplan/internal/model"
	"hallplan/internal/parse"
)

// HallForm holds the GUI form fields describing the hall.
type HallForm struct {
	lengthEntry  *widget.Entry
	widthEntry   *widget.Entry
	defaultEntry *widget.Entry
	forcedText   *widget.Entry
	columnsText  *widget.Entry
	ignoreEntry  *widget.Entry
	form         *fyne.Container
}

// NewHallForm creates the hall form seeded with the sample hall.
func NewHallForm() *HallForm {
	hf := &HallForm{}
	sample := layout.DefaultConfig()

	hf.lengthEntry = widget.NewEntry()
	hf.lengthEntry.SetText(fmt.Sprintf("%g", sample.Length))

	hf.widthEntry = widget.NewEntry()
	hf.widthEntry.SetText(fmt.Sprintf("%g", sample.Width))

	hf.defaultEntry = widget.NewEntry()
	hf.defaultEntry.SetText(fmt.Sprintf("%g", sample.DefaultHeight))

	hf.forcedText = widget.NewMultiLineEntry()
	hf.forcedText.SetPlaceHolder("row_index, height")
	hf.forcedText.SetText("3, 0.66\n7, 0.66\n11, 0.66")
	hf.forcedText.SetMinRowsVisible(4)

	hf.columnsText = widget.NewMultiLineEntry()
	hf.columnsText.SetPlaceHolder("label, x, y, circumference")
	hf.columnsText.SetText(columnsToText(sample.Columns))
	hf.columnsText.SetMinRowsVisible(6)

	hf.ignoreEntry = widget.NewEntry()
	hf.ignoreEntry.SetText(strings.Join(sample.IgnoreLabels, ", "))
	hf.ignoreEntry.SetPlaceHolder("C1, C4")

	dimensions := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Hall Length (m)", hf.lengthEntry),
			widget.NewFormItem("Hall Width (m)", hf.widthEntry),
			widget.NewFormItem("Row Height (m)", hf.defaultEntry),
		),
	)

	rows := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Forced Heights", hf.forcedText),
		),
	)

	columns := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Columns", hf.columnsText),
			widget.NewFormItem("Ignore", hf.ignoreEntry),
		),
	)

	accordion := widget.NewAccordion(
		widget.NewAccordionItem("Hall", dimensions),
		widget.NewAccordionItem("Row Overrides", rows),
		widget.NewAccordionItem("Columns", columns),
	)

	// Open the "Hall" section by default as it contains the required fields.
	accordion.Open(0)

	hf.form = container.NewVBox(accordion)

	return hf
}

// Container returns the form's Fyne container.
func (hf *HallForm) Container() *fyne.Container {
	return hf.form
}

// LoadPreferences restores form values from persistent preferences.
func (hf *HallForm) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String("hall.length"); v != "" {
		hf.lengthEntry.SetText(v)
	}
	if v := prefs.String("hall.width"); v != "" {
		hf.widthEntry.SetText(v)
	}
	if v := prefs.String("hall.default_height"); v != "" {
		hf.defaultEntry.SetText(v)
	}
	if v := prefs.String("hall.forced"); v != "" {
		hf.forcedText.SetText(v)
	}
	if v := prefs.String("hall.columns"); v != "" {
		hf.columnsText.SetText(v)
	}
	if v := prefs.String("hall.ignore"); v != "" {
		hf.ignoreEntry.SetText(v)
	}
}

// SavePreferences persists form values to preferences.
func (hf *HallForm) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString("hall.length", hf.lengthEntry.Text)
	prefs.SetString("hall.width", hf.widthEntry.Text)
	prefs.SetString("hall.default_height", hf.defaultEntry.Text)
	prefs.SetString("hall.forced", hf.forcedText.Text)
	prefs.SetString("hall.columns", hf.columnsText.Text)
	prefs.SetString("hall.ignore", hf.ignoreEntry.Text)
}

// Config builds a HallConfig from the current form values. Malformed input
// yields an error that the caller surfaces as a blocking dialog; nothing is
// rendered on invalid input.
func (hf *HallForm) Config() (layout.HallConfig, error) {
	length, err := parsePositiveFloat(hf.lengthEntry.Text, "hall length")
	if err != nil {
		return layout.HallConfig{}, err
	}
	width, err := parsePositiveFloat(hf.widthEntry.Text, "hall width")
	if err != nil {
		return layout.HallConfig{}, err
	}
	defaultHeight, err := parsePositiveFloat(hf.defaultEntry.Text, "default row height")
	if err != nil {
		return layout.HallConfig{}, err
	}

	forced, err := parse.ForcedHeights(hf.forcedText.Text)
	if err != nil {
		return layout.HallConfig{}, err
	}
	columns, err := parse.Columns(hf.columnsText.Text)
	if err != nil {
		return layout.HallConfig{}, err
	}

	return layout.HallConfig{
		Length:        length,
		Width:         width,
		DefaultHeight: defaultHeight,
		ForcedHeights: forced,
		Columns:       columns,
		IgnoreLabels:  parse.IgnoreLabels(hf.ignoreEntry.Text),
	}, nil
}

// SetConfig fills the form from a HallConfig (e.g. a loaded preset).
func (hf *HallForm) SetConfig(cfg layout.HallConfig) {
	hf.lengthEntry.SetText(fmt.Sprintf("%g", cfg.Length))
	hf.widthEntry.SetText(fmt.Sprintf("%g", cfg.Width))
	hf.defaultEntry.SetText(fmt.Sprintf("%g", cfg.DefaultHeight))
	hf.forcedText.SetText(forcedToText(cfg.ForcedHeights))
	hf.columnsText.SetText(columnsToText(cfg.Columns))
	hf.ignoreEntry.SetText(strings.Join(cfg.IgnoreLabels, ", "))
}

// columnsToText renders columns back into the multiline field format.
func columnsToText(cols []model.Column) string {
	var b strings.Builder
	for _, c := range cols {
		fmt.Fprintf(&b, "%s, %g, %g, %g\n", c.Label, c.X, c.Y, c.Circumference)
	}
	return b.String()
}

// forcedToText renders forced heights in ascending row order.
func forcedToText(forced map[int]float64) string {
	maxIdx := -1
	for idx := range forced {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	var b strings.Builder
	for i := 0; i <= maxIdx; i++ {
		if h, ok := forced[i]; ok {
			fmt.Fprintf(&b, "%d, %g\n", i, h)
		}
	}
	return b.String()
}
