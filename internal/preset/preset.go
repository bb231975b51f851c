// Package preset loads and saves hall definitions as TOML files, so a hall
// can be re-planned without retyping its columns.
package preset

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"hallplan/internal/layout"
	"hallplan/internal/model"
)

// file is the on-disk TOML schema. Forced heights are keyed by the row index
// as a string because TOML tables only allow string keys.
type file struct {
	Hall    hallSection        `toml:"hall"`
	Forced  map[string]float64 `toml:"forced"`
	Columns []columnSection    `toml:"columns"`
}

type hallSection struct {
	Length           float64  `toml:"length"`
	Width            float64  `toml:"width"`
	DefaultRowHeight float64  `toml:"default_row_height"`
	Ignore           []string `toml:"ignore"`
}

type columnSection struct {
	Label         string  `toml:"label"`
	X             float64 `toml:"x"`
	Y             float64 `toml:"y"`
	Circumference float64 `toml:"circumference"`
}

// Load reads a hall preset from path.
func Load(path string) (layout.HallConfig, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return layout.HallConfig{}, fmt.Errorf("decode preset %s: %w", path, err)
	}

	cfg := layout.HallConfig{
		Length:        f.Hall.Length,
		Width:         f.Hall.Width,
		DefaultHeight: f.Hall.DefaultRowHeight,
		ForcedHeights: map[int]float64{},
		IgnoreLabels:  f.Hall.Ignore,
	}
	for k, h := range f.Forced {
		idx, err := strconv.Atoi(k)
		if err != nil {
			return layout.HallConfig{}, fmt.Errorf("preset %s: forced row key %q is not an index", path, k)
		}
		cfg.ForcedHeights[idx] = h
	}
	for _, c := range f.Columns {
		cfg.Columns = append(cfg.Columns, model.Column{
			Label: c.Label, X: c.X, Y: c.Y, Circumference: c.Circumference,
		})
	}
	return cfg, nil
}

// Save writes cfg to path as a TOML preset.
func Save(path string, cfg layout.HallConfig) error {
	f := file{
		Hall: hallSection{
			Length:           cfg.Length,
			Width:            cfg.Width,
			DefaultRowHeight: cfg.DefaultHeight,
			Ignore:           cfg.IgnoreLabels,
		},
		Forced: map[string]float64{},
	}
	for idx, h := range cfg.ForcedHeights {
		f.Forced[strconv.Itoa(idx)] = h
	}
	for _, c := range cfg.Columns {
		f.Columns = append(f.Columns, columnSection{
			Label: c.Label, X: c.X, Y: c.Y, Circumference: c.Circumference,
		})
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preset %s: %w", path, err)
	}
	defer out.Close()

	if err := toml.NewEncoder(out).Encode(f); err != nil {
		return fmt.Errorf("encode preset %s: %w", path, err)
	}
	return nil
}
