package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log is usable before Init; Init swaps in the configured handler.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init(level string) {
	InitWithWriter(os.Stdout, level)
}

// InitWithWriter is Init with a custom sink, mostly for tests.
func InitWithWriter(w io.Writer, level string) {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	Log = slog.New(handler)
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
