// Package logging builds the application's slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// NewLogger writes JSON (or text) records to w. When extra is non-nil every
// record is also written to it as JSON, so a log file always stays machine readable.
func NewLogger(w io.Writer, format, level string, extra io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var primary slog.Handler
	if format == "text" {
		primary = slog.NewTextHandler(w, opts)
	} else {
		primary = slog.NewJSONHandler(w, opts)
	}

	if extra == nil {
		return slog.New(primary)
	}
	return slog.New(slogmulti.Fanout(primary, slog.NewJSONHandler(extra, opts)))
}

// OpenLogFile opens path for appending; the caller closes it.
func OpenLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
