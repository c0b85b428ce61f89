// cmd/minigrep/main.go
package main

import (
	cmd "github.com/mwiater/minigrep/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main injects the build metadata and hands the process arguments to the
// minigrep root command, which exits with the appropriate status.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
