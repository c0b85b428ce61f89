package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, cfg Config) {
	if cfg.ConfigPath == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", cfg.ConfigPath)
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "(none)"
	}
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:       %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:    %s\n", logFile)
	fmt.Fprintf(out, "  Color:       %s\n", cfg.ColorMode())
	fmt.Fprintf(out, "  JSON Mode:   %v\n", cfg.JSONMode)
	fmt.Fprintf(out, "  Interactive: %v\n", cfg.Interactive)
}
