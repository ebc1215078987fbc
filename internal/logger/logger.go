// Package logger builds the process-wide structured logger.
//
// Production deployments get JSON lines for log aggregation; everything else
// gets the human-readable text handler at debug level.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a logger and installs it as the slog default.
func New(production bool) *slog.Logger {
	return NewWithWriter(production, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(production bool, w io.Writer) *slog.Logger {
	var handler slog.Handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	if production {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	l := slog.New(handler).With("service", "scholarhub")
	slog.SetDefault(l)
	return l
}
