// Package log builds the application logger. Both output formats wrap the
// base handler so every record carries the correlation and trace IDs of the
// request it belongs to.
package log

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/trananhhq/shopbill/internal/config"
)

// NewSlogLogger builds the process logger from cfg and installs it as the
// slog default.
func NewSlogLogger(cfg config.Log) *slog.Logger {
	var base slog.Handler
	switch cfg.Format {
	case config.LogFormatJSON:
		base = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.AddSource,
		})
	default:
		base = newTintHandler(cfg)
	}

	logger := slog.New(newContextHandler(base))
	slog.SetDefault(logger)

	return logger
}

func newTintHandler(cfg config.Log) slog.Handler {
	return tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cfg.Level,
		AddSource:  cfg.AddSource,
		TimeFormat: time.RFC3339,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// render error attrs in red
			if a.Value.Kind() == slog.KindAny {
				if _, ok := a.Value.Any().(error); ok {
					return tint.Attr(9, a)
				}
			}
			return a
		},
	})
}
