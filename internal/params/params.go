// internal/params/params.go
// Package params turns raw invocation tokens into a validated search configuration.
package params

import (
	"errors"
	"strings"
)

const (
	ignoreCaseToken = "-i"
	queryPrefix     = "-q="
	filePathPrefix  = "-f="
)

// ErrMissingParameter is returned by Build when the query or the file path is
// empty after all tokens have been processed.
var ErrMissingParameter = errors.New("not enough valid param")

// Params is the search configuration for a single run. The zero value is not
// valid; obtain one through Build.
type Params struct {
	query      string
	filePath   string
	ignoreCase bool
}

// Query returns the substring to search for.
func (p Params) Query() string { return p.query }

// FilePath returns the path of the file to scan.
func (p Params) FilePath() string { return p.filePath }

// IgnoreCase reports whether matching should ignore letter case.
func (p Params) IgnoreCase() bool { return p.ignoreCase }

// Build parses the full invocation token list, program name first. Tokens
// other than -i, -q=<query> and -f=<path> are ignored, and when -q= or -f=
// appears more than once the last occurrence wins.
func Build(args []string) (Params, error) {
	var p Params
	if len(args) == 0 {
		return Params{}, ErrMissingParameter
	}

	for _, arg := range args[1:] {
		if arg == ignoreCaseToken {
			p.ignoreCase = true
			continue
		}
		if v, ok := strings.CutPrefix(arg, queryPrefix); ok {
			p.query = v
			continue
		}
		if v, ok := strings.CutPrefix(arg, filePathPrefix); ok {
			p.filePath = v
		}
	}

	if p.query == "" || p.filePath == "" {
		return Params{}, ErrMissingParameter
	}
	return p, nil
}
