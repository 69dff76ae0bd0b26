// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"log/slog"

	"github.com/pdiddy/literate/internal/literate"
	"github.com/pdiddy/literate/pkg/types"
)

// logLevel maps the verbosity settings to a slog level.
func logLevel(cfg types.LogConfig) slog.Level {
	switch {
	case cfg.Trace:
		return literate.LevelTrace
	case cfg.Debug:
		return slog.LevelDebug
	}
	switch cfg.Verbose {
	case 0:
		return slog.LevelError
	case 1:
		return slog.LevelWarn
	case 2:
		return slog.LevelInfo
	case 3:
		return slog.LevelDebug
	default:
		return literate.LevelTrace
	}
}

func newLogger(w io.Writer, cfg types.LogConfig) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel(cfg),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == literate.LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}))
}
