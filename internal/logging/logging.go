// Package logging builds the structured logger sprout writes diagnostics to.
//
//	logger := logging.New("info", "text", os.Stderr)
//
// Failures inside the scaffolding pipeline are logged with the step name,
// the project name, and the error:
//
//	logger.Error("step failed",
//	    slog.String("step", "license"),
//	    slog.String("project", "demo"),
//	    slog.Any("error", err),
//	)
package logging

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// New creates a *slog.Logger writing to w.
//
// Level is one of "debug", "info", "warn" or "error"; anything else means
// info. Format "json" selects the JSON handler, anything else text.
func New(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
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

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// GitHub personal access and OAuth tokens.
	githubTokenPattern = regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{20,}\b`)
)

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("token"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("password"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(githubTokenPattern),
	)
}
