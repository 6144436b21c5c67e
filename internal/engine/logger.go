package engine

import (
	"io"
	"log/slog"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances. Verbose runs
// log at debug level; quiet runs stay at info.
func newLogger(verbose bool, outW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
