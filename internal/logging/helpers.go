package logging

import (
	"context"
	"log/slog"
)

// The helpers below accept a nil logger so call sites that run before
// logging is configured need no guard.

func Info(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelInfo, msg, args...)
}

func Warn(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelWarn, msg, args...)
}

// Error logs msg with err attached under the "error" key.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	logAt(logger, slog.LevelError, msg, args...)
}

// Degraded logs an optional lookup that was replaced by its fallback value.
func Degraded(logger *slog.Logger, lookup string, err error, args ...any) {
	args = append(args, Lookup(lookup))
	if err != nil {
		args = append(args, "error", err)
	}
	logAt(logger, slog.LevelWarn, "enrichment degraded, using fallback", args...)
}

func logAt(logger *slog.Logger, level slog.Level, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Log(context.Background(), level, msg, args...)
}
