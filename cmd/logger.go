package cmd

import (
	"io"
	"log/slog"
	"strings"
)

// Unknown levels and formats fall back to info and text.
func buildLogger(w io.Writer, level string, format string) *slog.Logger {
	programLevel := new(slog.LevelVar)
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err == nil {
		programLevel.Set(parsed)
	}
	options := &slog.HandlerOptions{Level: programLevel}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}
