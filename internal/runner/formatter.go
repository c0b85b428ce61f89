// internal/runner/formatter.go
package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/minigrep/internal/params"
	"github.com/mwiater/minigrep/internal/search"
)

// Options controls how matches are rendered.
type Options struct {
	// JSONMode writes one JSON object per match instead of row[<i>]:<line>.
	JSONMode bool
	// Color highlights the row prefix and query occurrences with ANSI codes.
	Color bool
}

// Formatter renders matches for a single run.
type Formatter struct {
	query      string
	ignoreCase bool
	opts       Options
	prefix     *color.Color
	hit        *color.Color
}

type jsonMatch struct {
	Index int    `json:"index"`
	Line  string `json:"line"`
}

// NewFormatter returns a Formatter for the query and mode in p.
func NewFormatter(p params.Params, opts Options) *Formatter {
	f := &Formatter{
		query:      p.Query(),
		ignoreCase: p.IgnoreCase(),
		opts:       opts,
		prefix:     color.New(color.FgCyan),
		hit:        color.New(color.FgRed, color.Bold),
	}
	if opts.Color {
		f.prefix.EnableColor()
		f.hit.EnableColor()
	} else {
		f.prefix.DisableColor()
		f.hit.DisableColor()
	}
	return f
}

// Write renders m to out followed by a newline.
func (f *Formatter) Write(out io.Writer, m search.Match) error {
	if f.opts.JSONMode {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		return enc.Encode(jsonMatch{Index: m.Index, Line: m.Line})
	}
	_, err := fmt.Fprintln(out, f.Format(m))
	return err
}

// Format returns the text form of m, row[<index>]:<line>.
func (f *Formatter) Format(m search.Match) string {
	row := fmt.Sprintf("row[%d]", m.Index)
	if !f.opts.Color {
		return row + ":" + m.Line
	}
	return f.prefix.Sprint(row) + ":" + f.highlight(m.Line)
}

func (f *Formatter) highlight(line string) string {
	spans := search.Spans(f.query, line, f.ignoreCase)
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s.Start])
		b.WriteString(f.hit.Sprint(line[s.Start:s.End]))
		last = s.End
	}
	b.WriteString(line[last:])
	return b.String()
}
