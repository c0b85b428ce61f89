// internal/logging/logging.go
// Package logging routes diagnostic events away from the result stream.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init directs log output to logPath (appending) and, when debug is set, to
// stderr as well. With neither, events are discarded. Stdout is never used
// because it carries search results.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if debug {
		writers = append(writers, os.Stderr)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file, if any, and restores stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	log.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}

// LogSearch records one completed scan.
func LogSearch(query, path string, ignoreCase bool, matches int) {
	log.Println(buildSearchMessage(query, path, ignoreCase, matches))
}

func buildSearchMessage(query, path string, ignoreCase bool, matches int) string {
	pathValue := strings.TrimSpace(path)
	if pathValue == "" {
		pathValue = "unknown"
	}
	mode := "sensitive"
	if ignoreCase {
		mode = "insensitive"
	}
	parts := []string{"[SEARCH]"}
	parts = append(parts, fmt.Sprintf("file=%s", pathValue))
	parts = append(parts, fmt.Sprintf("query=%s", strconv.Quote(query)))
	parts = append(parts, fmt.Sprintf("case=%s", mode))
	parts = append(parts, fmt.Sprintf("matches=%d", matches))
	return strings.Join(parts, " ")
}
