package testutil

import (
	"io"
	"log/slog"
)

// Logger returns a logger that discards everything. Tests pass it wherever a
// *slog.Logger is required.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
