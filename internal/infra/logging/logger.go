// Package logging provides file-based structured logging for devtodo.
// Entries are formatted by charmbracelet/log and exposed as a *slog.Logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// Logger writes log entries to a single append-only file.
// The file is opened on first write, so a run that logs nothing leaves no file behind.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file   *os.File
	slog   *slog.Logger
	path   string
	mu     sync.Mutex
	closed bool
}

// New creates a new Logger that writes to path.
// If path is empty, logging is disabled (entries are discarded).
func New(path string, level slog.Level) *Logger {
	l := &Logger{path: path}

	var w io.Writer = io.Discard
	if path != "" {
		w = l
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           toCharmLevel(level),
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	l.slog = slog.New(handler)
	return l
}

// Slog returns the structured logger backed by this Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Path returns the log file path. Empty when logging is disabled.
func (l *Logger) Path() string {
	return l.path
}

// Write implements io.Writer, opening the log file on demand.
func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return len(p), nil
	}
	if l.file == nil {
		if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
			return 0, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
		if err != nil {
			return 0, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
	}
	return l.file.Write(p)
}

// Close closes the log file. Later entries are dropped.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func toCharmLevel(level slog.Level) log.Level {
	switch {
	case level <= slog.LevelDebug:
		return log.DebugLevel
	case level <= slog.LevelInfo:
		return log.InfoLevel
	case level <= slog.LevelWarn:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
