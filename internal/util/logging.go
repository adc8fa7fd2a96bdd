// Package util holds small helpers shared across eclb: logging, XDG paths,
// pointer and list conversions.
package util

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. Debug records are only
// emitted when debug is set.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		slog.Error(context, "err", err)
	}
}
