package swingnav

import (
	"log/slog"

	"github.com/ggggg/SwingNavigator/pkg/swingnav/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before the first use of
// Logger or New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// Logger returns the package logger used by navigators that were not
// given their own via Options.Logger.
func Logger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the package logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger releases the log file, if one was opened.
// Call before program exit.
func CloseLogger() {
	internal.CloseLogger()
}
