// Package logging provides structured logging using slog.
// Logs go to a file in append mode, to stderr, or nowhere.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	// defaultLogger is the package-level logger.
	defaultLogger *slog.Logger
	// logFile is the file handle for the log file.
	logFile *os.File
	// mu protects concurrent access to the logger.
	mu sync.RWMutex
)

// Options selects where log lines go
type Options struct {
	// File is opened in append mode when set
	File string
	// Stderr writes to standard error when no file is set
	Stderr bool
	Level  slog.Level
}

// Init initializes the package logger. With neither a file nor stderr
// selected, logging is disabled (writes to io.Discard).
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()

	var w io.Writer
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		logFile = f
		w = f
	case opts.Stderr:
		w = os.Stderr
	default:
		w = io.Discard
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: opts.Level,
	})
	defaultLogger = slog.New(handler)
	return nil
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the default logger.
// If not initialized, returns a no-op logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if defaultLogger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return defaultLogger
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs at warning level.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}
