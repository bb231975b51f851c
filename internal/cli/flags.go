package cli

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{}

	fs := flag.NewFlagSet("hallplan", flag.ContinueOnError)

	// Hall geometry
	fs.Float64Var(&cfg.Length, "length", 0, "Hall length in meters")
	fs.Float64Var(&cfg.Length, "l", 0, "Hall length in meters")
	fs.Float64Var(&cfg.Width, "width", 0, "Hall width in meters")
	fs.Float64Var(&cfg.Width, "w", 0, "Hall width in meters")
	fs.Float64Var(&cfg.DefaultHeight, "row-height", 0, "Default row height in meters (default 1.35)")
	fs.Float64Var(&cfg.DefaultHeight, "r", 0, "Default row height in meters (default 1.35)")
	fs.StringVar(&cfg.Forced, "forced", "", "Forced row heights as index:height pairs, e.g. 3:0.66,7:0.66")
	fs.StringVar(&cfg.ColumnsFile, "columns", "", "File with column lines (label, x, y, circumference)")
	fs.StringVar(&cfg.Ignore, "ignore", "", "Column labels excluded from custom classification")

	// Preset
	fs.StringVar(&cfg.Preset, "preset", "", "Hall preset TOML file (flags override its values)")

	// Output
	fs.StringVar(&cfg.OutputCSV, "o", "", "Write the cut list to a CSV file")
	fs.StringVar(&cfg.OutputCSV, "output", "", "Write the cut list to a CSV file")
	fs.StringVar(&cfg.OutputTXT, "txt", "", "Write the row summary to a text file")
	fs.StringVar(&cfg.OutputPNG, "png", "", "Render the layout to a PNG file")
	fs.BoolVar(&cfg.Plain, "plain", false, "Disable colored terminal output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	// Must have a preset or explicit hall dimensions
	if cfg.Preset == "" && (cfg.Length <= 0 || cfg.Width <= 0) {
		fmt.Fprintf(os.Stderr, "Error: must provide -preset <file> or both -length and -width\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	// Without a preset the row height falls back to the standard 1.35m strip.
	if cfg.Preset == "" && cfg.DefaultHeight <= 0 {
		cfg.DefaultHeight = 1.35
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Hall Carpet Planner

Usage: hallplan [flags]
       hallplan help    (show this message)

Run with no flags to open the GUI.

HALL GEOMETRY:
  -l, -length <m>          Hall length in meters
  -w, -width <m>           Hall width in meters
  -r, -row-height <m>      Default row height (default: 1.35)
  -forced <i:h,...>        Forced row heights, 0-based index (e.g. 3:0.66,7:0.66)
  -columns <file>          Column list file, one "label, x, y, circumference" per line
  -ignore <labels>         Columns that never mark a row as custom (e.g. C1,C4)

PRESET:
  -preset <file.toml>      Load the hall from a TOML preset; flags override

OUTPUT:
  -o, -output <file>       Write the cut list as CSV
  -txt <file>              Write the row summary as text
  -png <file>              Render the layout to PNG
  -plain                   Disable colored terminal output
  -v, -verbose             Verbose output

EXAMPLES:
  # Plan a 16.15 x 17.37 hall with three shortened rows
  hallplan -l 16.15 -w 17.37 -forced 3:0.66,7:0.66,11:0.66

  # Plan from a preset and export everything
  hallplan -preset hall.toml -o cutlist.csv -png layout.png
`)
}
