package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// BuildLogger returns a JSON logger writing to stderr at the given level.
// Unknown levels fall back to info.
func BuildLogger(level string) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

func NewLogger(w io.Writer, level string) *slog.Logger {
	ops := &slog.HandlerOptions{
		AddSource: true,
		Level:     ParseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(w, ops))
}

func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
