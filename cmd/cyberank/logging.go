package main

import (
	"log/slog"
	"os"
)

// newLogger builds a slog.Logger writing to stderr, formatted the way
// wingthing's logger shortens the time key. debug controls whether
// engine.stage records (emitted at Debug level) are visible; bench
// always wants them, run only with --verbose.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format("15:04:05"))
			}
			return a
		},
	})
	return slog.New(handler)
}
