// internal/search/search.go
// Package search implements literal, line-oriented substring matching.
package search

import (
	"iter"
	"strings"
)

// Match is a single matching line and its zero-based position in the input.
type Match struct {
	Index int
	Line  string
}

// Span is the byte range [Start, End) of one query occurrence within a line.
type Span struct {
	Start int
	End   int
}

// Lines yields every line of contents together with its zero-based index.
// Lines are terminated by "\n" or "\r\n"; the terminator is not part of the
// yielded text and a trailing newline does not produce an empty final line.
func Lines(contents string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		for line := range strings.Lines(contents) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(i, line) {
				return
			}
			i++
		}
	}
}

// Search returns the lines of contents that contain query, in order.
func Search(query, contents string) []Match {
	var results []Match
	for i, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, Match{Index: i, Line: line})
		}
	}
	return results
}

// SearchCaseInsensitive is like Search but lowercases both the query and each
// line before comparing. The returned lines keep their original case.
func SearchCaseInsensitive(query, contents string) []Match {
	var results []Match
	query = strings.ToLower(query)
	for i, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, Match{Index: i, Line: line})
		}
	}
	return results
}

// Spans locates the non-overlapping occurrences of query in line. An empty
// query has no spans. In case-insensitive mode offsets are only meaningful
// when lowercasing keeps the byte length, so nothing is reported otherwise.
func Spans(query, line string, ignoreCase bool) []Span {
	if query == "" {
		return nil
	}
	haystack := line
	if ignoreCase {
		haystack = strings.ToLower(line)
		query = strings.ToLower(query)
		if len(haystack) != len(line) {
			return nil
		}
	}

	var spans []Span
	offset := 0
	for {
		idx := strings.Index(haystack[offset:], query)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(query)
		spans = append(spans, Span{Start: start, End: end})
		offset = end
	}
	return spans
}
