package logger

import (
	"log/slog"
	"os"
)

// New returns the root structured logger. Level comes from LOG_LEVEL so
// operators can turn on debug without a rebuild.
func New() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "fastlp")
}
