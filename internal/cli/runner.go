// Package cli implements the flag-driven mode of the planner: it shares the
// layout, parse, format, and export packages with the GUI and writes its
// report to the terminal.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"hallplan/internal/export"
	"hallplan/internal/format"
	"hallplan/internal/layout"
	"hallplan/internal/model"
	"hallplan/internal/parse"
	"hallplan/internal/preset"
)

// RunnerConfig holds all CLI options for one planning run.
type RunnerConfig struct {
	// Hall geometry
	Length        float64
	Width         float64
	DefaultHeight float64
	Forced        string // inline index:height pairs
	ColumnsFile   string
	Ignore        string

	// Preset (optional, flags override)
	Preset string

	// Output
	OutputCSV string
	OutputTXT string
	OutputPNG string
	Plain     bool
	Verbose   bool
}

// newLogger builds the CLI logger. Verbose mode lowers the level to debug.
func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}

// HallConfig assembles the layout config from the preset (if any) and flags.
// Flags override preset values field by field.
func (cfg *RunnerConfig) HallConfig() (layout.HallConfig, error) {
	hall := layout.HallConfig{ForcedHeights: map[int]float64{}}

	if cfg.Preset != "" {
		loaded, err := preset.Load(cfg.Preset)
		if err != nil {
			return layout.HallConfig{}, err
		}
		hall = loaded
	}

	if cfg.Length > 0 {
		hall.Length = cfg.Length
	}
	if cfg.Width > 0 {
		hall.Width = cfg.Width
	}
	if cfg.DefaultHeight > 0 {
		hall.DefaultHeight = cfg.DefaultHeight
	}

	if cfg.Forced != "" {
		forced, err := parse.ForcedHeightsInline(cfg.Forced)
		if err != nil {
			return layout.HallConfig{}, err
		}
		hall.ForcedHeights = forced
	}

	if cfg.ColumnsFile != "" {
		data, err := os.ReadFile(cfg.ColumnsFile)
		if err != nil {
			return layout.HallConfig{}, fmt.Errorf("read columns file: %w", err)
		}
		cols, err := parse.Columns(string(data))
		if err != nil {
			return layout.HallConfig{}, err
		}
		hall.Columns = cols
	}

	if cfg.Ignore != "" {
		hall.IgnoreLabels = parse.IgnoreLabels(cfg.Ignore)
	}

	return hall, nil
}

// Run performs one compute-and-report cycle: assemble the hall config,
// compute the layout, print the summary, write requested exports.
func Run(cfg RunnerConfig) error {
	logger := newLogger(cfg.Verbose)

	hall, err := cfg.HallConfig()
	if err != nil {
		return err
	}
	logger.Debug("hall config assembled",
		"length", hall.Length, "width", hall.Width,
		"default_height", hall.DefaultHeight,
		"columns", len(hall.Columns), "forced", len(hall.ForcedHeights))

	l, err := layout.Compute(hall)
	if err != nil {
		return err
	}
	logger.Debug("layout computed", "rows", len(l.Rows), "custom", l.CustomCount())

	PrintLayout(l, cfg.Plain)

	if cfg.OutputCSV != "" {
		if err := export.EnsureDir(cfg.OutputCSV); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WriteCSV(cfg.OutputCSV, l); err != nil {
			return err
		}
		logger.Info("cut list written", "path", cfg.OutputCSV)
	}
	if cfg.OutputTXT != "" {
		if err := export.EnsureDir(cfg.OutputTXT); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WriteTXT(cfg.OutputTXT, l); err != nil {
			return err
		}
		logger.Info("summary written", "path", cfg.OutputTXT)
	}
	if cfg.OutputPNG != "" {
		if err := export.EnsureDir(cfg.OutputPNG); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WritePNG(cfg.OutputPNG, l); err != nil {
			return err
		}
		logger.Info("plot rendered", "path", cfg.OutputPNG)
	}

	return nil
}

// PrintLayout prints the row summary to stdout, colored unless plain.
func PrintLayout(l *model.Layout, plain bool) {
	if plain {
		fmt.Println(format.FormatLayout(l))
		return
	}
	fmt.Println(format.FormatLayoutStyled(l))
}
