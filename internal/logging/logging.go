package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New создает JSON логгер с уровнем из LOG_LEVEL
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter создает JSON логгер, пишущий в w
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler)
}

// ParseLevel переводит строковый уровень (DEBUG, INFO, WARN, ERROR) в slog.Level.
// Неизвестное значение дает INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
