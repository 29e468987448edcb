package bramble

import (
	"log/slog"
	"os"
)

// logger receives all diagnostics. Replace it with SetLogger.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// SetLogger replaces the package logger. Passing nil restores the default
// stderr logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	logger = l
}
