package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. It defaults to a text handler
// so packages can log before Init runs (e.g. in tests); main switches it to
// JSON at startup.
var Log = slog.New(slog.NewTextHandler(os.Stderr, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
