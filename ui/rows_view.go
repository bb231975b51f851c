package ui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"hallplan/internal/model"
)

var rowColumns = []string{"Row", "Span", "Height", "Type", "Columns", "Cut Intervals"}

// RowsView displays a table of the computed rows.
type RowsView struct {
	mu    sync.Mutex
	rows  []model.Row
	table *widget.Table
}

// NewRowsView creates a new rows table view.
func NewRowsView() *RowsView {
	rv := &RowsView{}

	rv.table = widget.NewTable(
		rv.tableSize,
		rv.createCell,
		rv.updateCell,
	)

	rv.table.SetColumnWidth(0, 50)  // Row
	rv.table.SetColumnWidth(1, 120) // Span
	rv.table.SetColumnWidth(2, 80)  // Height
	rv.table.SetColumnWidth(3, 80)  // Type
	rv.table.SetColumnWidth(4, 100) // Columns
	rv.table.SetColumnWidth(5, 200) // Cut Intervals

	return rv
}

// Container returns the table widget.
func (rv *RowsView) Container() *widget.Table {
	return rv.table
}

// SetLayout replaces the displayed rows, safe to call from any goroutine.
func (rv *RowsView) SetLayout(l *model.Layout) {
	rv.mu.Lock()
	rv.rows = l.Rows
	rv.mu.Unlock()
	fyne.Do(func() {
		rv.table.Refresh()
	})
}

func (rv *RowsView) tableSize() (rows int, cols int) {
	rv.mu.Lock()
	defer rv.mu.Unlock()
	return len(rv.rows) + 1, len(rowColumns) // +1 for header
}

func (rv *RowsView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (rv *RowsView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.SetText(rowColumns[id.Col])
		label.TextStyle = fyne.TextStyle{Bold: true}
		return
	}

	rv.mu.Lock()
	defer rv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(rv.rows) {
		label.SetText("")
		return
	}

	r := &rv.rows[idx]
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(strconv.Itoa(r.Index))
	case 1:
		label.SetText(fmt.Sprintf("%.2f - %.2f", r.YStart, r.YEnd))
	case 2:
		label.SetText(fmt.Sprintf("%.2fm", r.Height()))
	case 3:
		label.SetText(r.Kind())
	case 4:
		labels := make([]string, len(r.Columns))
		for i, c := range r.Columns {
			labels[i] = c.Label
		}
		label.SetText(strings.Join(labels, ", "))
	case 5:
		cuts := make([]string, len(r.Cutouts))
		for i, cut := range r.Cutouts {
			cuts[i] = cut.String()
		}
		label.SetText(strings.Join(cuts, " "))
	}
}
