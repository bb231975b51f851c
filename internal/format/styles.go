package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hallplan/internal/model"
)

// Terminal styles for the CLI report. Colors mirror the plot: green for
// Normal rows, orange for Custom rows, red for columns.
var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleCustom = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	styleDetail = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// FormatLayoutStyled renders the row summary with terminal colors. The
// layout of the text matches FormatLayout so the two stay diffable.
func FormatLayoutStyled(l *model.Layout) string {
	var b strings.Builder

	b.WriteString(styleHeader.Render("--- Row Summary ---"))
	b.WriteString("\n")
	b.WriteString(styleDetail.Render(
		strings.TrimSuffix(headerLines(l), "\n")))
	b.WriteString("\n")

	for i := range l.Rows {
		r := &l.Rows[i]
		b.WriteString("\n")

		style := styleNormal
		if r.Custom {
			style = styleCustom
		}
		block := FormatRow(r)
		first, rest, _ := strings.Cut(block, "\n")
		b.WriteString(style.Render(first))
		b.WriteString("\n")
		if rest != "" {
			b.WriteString(styleDetail.Render(strings.TrimSuffix(rest, "\n")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func headerLines(l *model.Layout) string {
	full := FormatLayout(l)
	lines := strings.SplitN(full, "\n", 4)
	// lines[1] and lines[2] are the hall and row-count lines
	return lines[1] + "\n" + lines[2] + "\n"
}
