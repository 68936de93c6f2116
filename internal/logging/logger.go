// Package logging builds the slog loggers used by the command line tool.
// Library packages never log; only cmd/transport does.
package logging

import (
	"io"
	"log/slog"
)

// NewTo creates a text logger on w. It standardizes the "error" key to "err".
// The CLI passes its stderr so stdout stays free for tables and JSON reports.
func NewTo(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Level maps the --debug flag onto a slog level.
func Level(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}
