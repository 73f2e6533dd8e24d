package logging

import (
	"log/slog"
	"os"
)

var logger = slog.New(newCompactHandler(os.Stderr, slog.LevelWarn))

// Setup configures the package logger from a verbosity count: 0 warns and
// errors only, 1 adds info, 2 and above adds debug.
func Setup(verbose int) {
	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	logger = slog.New(newCompactHandler(os.Stderr, level))
}

func Debug(msg string, args ...any) { logger.Debug(msg, args...) }
func Info(msg string, args ...any)  { logger.Info(msg, args...) }
func Warn(msg string, args ...any)  { logger.Warn(msg, args...) }
func Error(msg string, args ...any) { logger.Error(msg, args...) }
