package engine

import (
	"context"
	"io"
	"log/slog"
)

// Config holds the invocation configuration for a single engine run.
type Config struct {
	Verbose bool
}

// NewConfig validates and returns a Config ready to hand to the engine.
func NewConfig(cfg Config) (*Config, error) {
	// A single boolean needs no validation today. Checks for future fields go here.
	return &cfg, nil
}

// Runner is the single capability the command-line shell depends on. All
// substantive work lives behind this one call; the shell only forwards the
// verbosity value and propagates the outcome.
type Runner interface {
	Run(ctx context.Context, verbose bool) error
}

// Engine is the Runner wired into the binary. It owns the run lifecycle:
// it builds its own isolated logger from the verbosity value and hosts the
// embedded compute core behind Run.
type Engine struct {
	outW   io.Writer
	logger *slog.Logger
}

// New is the constructor for the default engine. Run output is written to outW.
func New(outW io.Writer) *Engine {
	return &Engine{outW: outW}
}

// Run executes a single synchronous engine invocation and returns once the
// run has completed or failed.
func (e *Engine) Run(ctx context.Context, verbose bool) error {
	e.logger = newLogger(verbose, e.outW)
	e.logger.Debug("Engine run started.", "verbose", verbose)

	if err := ctx.Err(); err != nil {
		return err
	}

	e.logger.Debug("Engine run finished.")
	return nil
}
