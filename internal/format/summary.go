package format

import (
	"fmt"
	"strings"

	"hallplan/internal/model"
)

// FormatRow produces the multi-line report block for a single row: span,
// height, classification, and for Custom rows the intruding columns, the cut
// intervals, and the leftover carpet segments.
func FormatRow(r *model.Row) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Row %d: y=[%.2f,%.2f], height=%.2f, %s\n",
		r.Index, r.YStart, r.YEnd, r.Height(), r.Kind())

	if !r.Custom {
		return b.String()
	}

	labels := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		labels[i] = c.Label
	}
	fmt.Fprintf(&b, " => Columns: %s\n", strings.Join(labels, ", "))

	cuts := make([]string, len(r.Cutouts))
	for i, cut := range r.Cutouts {
		cuts[i] = cut.String()
	}
	fmt.Fprintf(&b, " => Cut intervals: %s\n", strings.Join(cuts, " "))

	for _, seg := range r.Leftovers {
		fmt.Fprintf(&b, "    leftover x=[%.2f,%.2f] => width=%.2fm\n",
			seg.Start, seg.End, seg.Width())
	}
	return b.String()
}

// FormatLayout produces the full plain-text row summary for a layout.
func FormatLayout(l *model.Layout) string {
	var b strings.Builder

	b.WriteString("--- Row Summary ---\n")
	fmt.Fprintf(&b, "Hall: %.2fm x %.2fm, default row height %.2fm\n",
		l.Length, l.Width, l.DefaultHeight)
	fmt.Fprintf(&b, "Rows: %d (%d custom), carpet area %.2f m2\n",
		len(l.Rows), l.CustomCount(), l.CarpetArea())

	for i := range l.Rows {
		r := &l.Rows[i]
		b.WriteString("\n")
		b.WriteString(FormatRow(r))
		if !r.Custom {
			fmt.Fprintf(&b, " => Normal row => %.2fm x %.2fm\n", l.Length, r.Height())
		}
	}
	return b.String()
}
