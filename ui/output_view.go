package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// OutputView displays the textual row report.
type OutputView struct {
	text      *reportEntry
	scrollBox *container.Scroll
}

// NewOutputView creates a new scrollable report view.
func NewOutputView() *OutputView {
	ov := &OutputView{}

	ov.text = newReportEntry()
	ov.scrollBox = container.NewVScroll(ov.text)
	ov.scrollBox.SetMinSize(fyne.NewSize(400, 150))

	return ov
}

// Container returns the output view's container.
func (ov *OutputView) Container() *container.Scroll {
	return ov.scrollBox
}

// SetReport replaces the report text, safe to call from any goroutine.
func (ov *OutputView) SetReport(report string) {
	fyne.Do(func() {
		ov.text.SetText(report)
		ov.scrollBox.ScrollToTop()
	})
}

// AppendLine adds a line to the report, safe to call from any goroutine.
func (ov *OutputView) AppendLine(line string) {
	fyne.Do(func() {
		current := ov.text.Text
		if current != "" {
			current += "\n"
		}
		ov.text.SetText(current + line)
		ov.scrollBox.ScrollToBottom()
	})
}

// Clear empties the report, safe to call from any goroutine.
func (ov *OutputView) Clear() {
	fyne.Do(func() {
		ov.text.SetText("")
	})
}

// reportEntry is an Entry that allows selection and copy but rejects all
// edits, so cut dimensions can be copied out of the report.
type reportEntry struct {
	widget.Entry
}

func newReportEntry() *reportEntry {
	e := &reportEntry{}
	e.MultiLine = true
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.Wrapping = fyne.TextWrapOff
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune blocks all character input.
func (e *reportEntry) TypedRune(_ rune) {}

// TypedKey allows only navigation and selection keys, blocks editing keys.
func (e *reportEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyTab:
		return // block editing keys
	}
	e.Entry.TypedKey(ev)
}

// TypedShortcut allows copy and select-all, blocks cut and paste.
func (e *reportEntry) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll:
		e.Entry.TypedShortcut(s)
	case *desktop.CustomShortcut:
		e.Entry.TypedShortcut(s)
	}
	// Block paste, cut, and other modifying shortcuts
}
