// Package logging builds the slog logger used by the command-line tools.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Options selects where log records go.
type Options struct {
	// Console receives records at Level and above. Nil disables it.
	Console io.Writer
	// File additionally receives every record at Level and above.
	File  io.Writer
	Level string
	// Quiet raises the console threshold to warnings.
	Quiet bool
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func handlerOptions(lvl slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}
}

// New returns a logger writing text records to the configured outputs.
// With no outputs at all it discards everything.
func New(opts Options) *slog.Logger {
	lvl := ParseLevel(opts.Level)

	var sinks []Sink
	if opts.Console != nil {
		console := Sink{Handler: slog.NewTextHandler(opts.Console, handlerOptions(lvl))}
		if opts.Quiet {
			console.Level = slog.LevelWarn
		}
		sinks = append(sinks, console)
	}
	if opts.File != nil {
		sinks = append(sinks, Sink{Handler: slog.NewTextHandler(opts.File, handlerOptions(lvl))})
	}
	if len(sinks) == 0 {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(NewFanout(sinks...))
}
