// internal/runner/runner.go
// Package runner reads the target file, runs the configured search and writes
// the matches.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/mwiater/minigrep/internal/logging"
	"github.com/mwiater/minigrep/internal/params"
	"github.com/mwiater/minigrep/internal/search"
)

// FileReadError reports that the file named by the search parameters could
// not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// Find loads the file named by p and returns its matching lines.
func Find(p params.Params) ([]search.Match, error) {
	data, err := os.ReadFile(p.FilePath())
	if err != nil {
		return nil, &FileReadError{Path: p.FilePath(), Err: err}
	}
	contents := string(data)

	var matches []search.Match
	if p.IgnoreCase() {
		matches = search.SearchCaseInsensitive(p.Query(), contents)
	} else {
		matches = search.Search(p.Query(), contents)
	}
	logging.LogSearch(p.Query(), p.FilePath(), p.IgnoreCase(), len(matches))
	return matches, nil
}

// Run searches the file named by p and writes one entry per match to out.
func Run(p params.Params, opts Options, out io.Writer) error {
	matches, err := Find(p)
	if err != nil {
		return err
	}

	f := NewFormatter(p, opts)
	for _, m := range matches {
		if err := f.Write(out, m); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}
	return nil
}
