package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// Logger is the logging surface handed to components.
type Logger interface {
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
}

type SlogLogger struct {
	*slog.Logger
}

// ParseLevel maps debug|info|warn|error to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New logs to w. Terminals get the text handler, everything else JSON.
func New(level string, w io.Writer) *SlogLogger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler
	if isTerminal(w) {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return &SlogLogger{slog.New(h)}
}

// Nop discards everything.
func Nop() *SlogLogger {
	return &SlogLogger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (l *SlogLogger) Infof(format string, v ...any) { l.Info(fmt.Sprintf(format, v...)) }

func (l *SlogLogger) Warnf(format string, v ...any) { l.Warn(fmt.Sprintf(format, v...)) }
