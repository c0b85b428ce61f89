// internal/cli/root.go
package minigrep

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mwiater/minigrep/internal/appconfig"
	"github.com/mwiater/minigrep/internal/params"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const usageHint = "Usage: minigrep [-i] -q=<query> -f=<file>"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"

	errorColor = color.New(color.FgRed, color.Bold)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// NewRootCmd builds the minigrep command. Flag parsing is left to the
// command itself so the raw -i, -q= and -f= tokens reach the parameter
// builder untouched; only the long ambient flags are interpreted by pflag.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	appconfig.SetDefaults(v)

	cmd := &cobra.Command{
		Use:   "minigrep [-i] -q=<query> -f=<file>",
		Short: "Print the lines of a file that contain a substring",
		Long: `minigrep scans a file line by line and prints every line containing the
query as row[<index>]:<line>, where index is the zero-based line number.

  -i           match without regard to letter case
  -q=<query>   substring to search for (required)
  -f=<file>    file to search (required)`,
		Version:            fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, v, args)
		},
	}

	flags := cmd.Flags()
	flags.ParseErrorsAllowlist.UnknownFlags = true
	flags.String("config", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("logFile", "", "path to the log file")
	flags.String("color", appconfig.ColorAuto, "colorize output: auto, always or never")
	flags.Bool("jsonMode", false, "write matches as JSON lines")
	flags.Bool("interactive", false, "browse matches in a full-screen viewer")
	// Declared here so cobra does not add its -h and -v shorthands.
	flags.Bool("help", false, "help for minigrep")
	flags.Bool("version", false, "version for minigrep")

	for _, name := range []string{"debug", "logFile", "color", "jsonMode", "interactive"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}

// Execute runs minigrep with the process arguments and exits with its status.
func Execute() {
	os.Exit(ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr))
}

// ExecuteArgs runs minigrep with args (program name excluded) and returns the
// process exit status.
func ExecuteArgs(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return reportError(stderr, cmd.Execute())
}

// reportError prints err for the user and maps it to an exit status.
func reportError(w io.Writer, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, params.ErrMissingParameter):
		errorColor.Fprintf(w, "Problem parsing arguments: %v\n", err)
		fmt.Fprintln(w, hintStyle.Render(usageHint))
		return exitUsage
	default:
		errorColor.Fprintf(w, "Application error: %v\n", err)
		return exitError
	}
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
