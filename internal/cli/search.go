// internal/cli/search.go
package minigrep

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/mwiater/minigrep/internal/appconfig"
	"github.com/mwiater/minigrep/internal/logging"
	"github.com/mwiater/minigrep/internal/params"
	"github.com/mwiater/minigrep/internal/runner"
	"github.com/mwiater/minigrep/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// startViewer is swapped out in tests.
var startViewer = tui.Run

func runSearch(cmd *cobra.Command, v *viper.Viper, args []string) error {
	flags := cmd.Flags()
	if err := flags.Parse(longFlagArgs(args)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if help, _ := flags.GetBool("help"); help {
		return cmd.Help()
	}
	if version, _ := flags.GetBool("version"); version {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), cmd.Version)
		return nil
	}

	p, err := params.Build(append([]string{cmd.Name()}, args...))
	if err != nil {
		return err
	}

	cfgFile, _ := flags.GetString("config")
	used, err := appconfig.Read(v, cfgFile, flags.Changed("config"))
	if err != nil {
		return err
	}
	cfg, err := appconfig.Load(v)
	if err != nil {
		return err
	}
	cfg.ConfigPath = used

	if err := logging.Init(cfg.LogFile, cfg.Debug); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logging.Close()

	if cfg.Debug {
		appconfig.ShowConfig(cmd.ErrOrStderr(), cfg)
		pp.Fprintln(cmd.ErrOrStderr(), cfg)
	}
	logging.LogEvent("search started: query=%q file=%s ignoreCase=%v", p.Query(), p.FilePath(), p.IgnoreCase())

	if cfg.Interactive {
		matches, err := runner.Find(p)
		if err != nil {
			return err
		}
		return startViewer(p, matches)
	}

	out := cmd.OutOrStdout()
	opts := runner.Options{
		JSONMode: cfg.JSONMode,
		Color:    cfg.ColorEnabled(isTerminal(out)),
	}
	return runner.Run(p, opts, out)
}

// longFlagArgs drops single-dash tokens. Ambient flags are long-only, and
// pflag would otherwise read -h as a help request.
func longFlagArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) > 1 && arg[0] == '-' && arg[1] != '-' {
			continue
		}
		out = append(out, arg)
	}
	return out
}

// isTerminal reports whether out is the process stdout attached to a terminal.
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && f == os.Stdout && !color.NoColor
}
