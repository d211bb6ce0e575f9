package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/xolan/timetrace/internal/apperr"
)

// ParseLevel maps a level name to its slog level. Empty means warn.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, apperr.Validationf("invalid log.level %q: must be debug, info, warn or error", level)
	}
}

// SetupLogger installs a text handler writing to w (stderr in production, so
// stdout stays machine-readable) and returns it.
func SetupLogger(level string, w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
