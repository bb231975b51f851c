// Package parse converts the free-text form fields (columns, forced row
// heights, ignore list) into typed values.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"hallplan/internal/model"
)

// Columns parses multiline column text, one column per line:
//
//	label, x_center, y_center, circumference
//
// e.g. "C2, 5.95, 2.91, 1.23". Blank lines are skipped.
func Columns(txt string) ([]model.Column, error) {
	var cols []model.Column
	for _, line := range strings.Split(txt, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := splitFields(line)
		if len(parts) < 4 {
			return nil, fmt.Errorf("invalid column line %q: want label, x, y, circumference", line)
		}
		x, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid column line %q: bad x %q", line, parts[1])
		}
		y, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid column line %q: bad y %q", line, parts[2])
		}
		circ, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid column line %q: bad circumference %q", line, parts[3])
		}
		cols = append(cols, model.Column{Label: parts[0], X: x, Y: y, Circumference: circ})
	}
	return cols, nil
}

// ForcedHeights parses multiline forced row height text, one override per
// line: "row_index, height" with a 0-based index, e.g. "3, 0.66".
func ForcedHeights(txt string) (map[int]float64, error) {
	out := map[int]float64{}
	for _, line := range strings.Split(txt, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := splitFields(line)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid forced row line %q: want index, height", line)
		}
		idx, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid forced row line %q: bad index %q", line, parts[0])
		}
		h, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid forced row line %q: bad height %q", line, parts[1])
		}
		out[idx] = h
	}
	return out, nil
}

// ForcedHeightsInline parses a compact single-line form used by the CLI:
// "3:0.66,7:0.66,11:0.66".
func ForcedHeightsInline(s string) (map[int]float64, error) {
	out := map[int]float64{}
	s = strings.TrimSpace(s)
	if s == "" {
		return out, nil
	}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		idxStr, hStr, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid forced height %q: want index:height", pair)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
		if err != nil {
			return nil, fmt.Errorf("invalid forced height %q: bad index", pair)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(hStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid forced height %q: bad height", pair)
		}
		out[idx] = h
	}
	return out, nil
}

// IgnoreLabels parses a comma- or whitespace-separated list of column labels.
func IgnoreLabels(s string) []string {
	var out []string
	for _, f := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// splitFields splits a comma-separated line and trims each field.
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
