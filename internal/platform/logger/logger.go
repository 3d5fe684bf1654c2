package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. JSON on stdout; level
// bumps to debug with FISHBILL_DEBUG=true.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("FISHBILL_DEBUG") == "true" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
