package logging

import "log/slog"

// Nil-tolerant logging helpers. Most components treat their logger as
// optional, so call sites go through these instead of checking for nil.

// Info logs at info level when a logger is present.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level when a logger is present.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs at error level when a logger is present, attaching err as the
// "error" attribute when non-nil.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
