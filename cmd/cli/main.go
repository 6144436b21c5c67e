package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/embeddedengine/internal/cli"
	"github.com/vk/embeddedengine/internal/engine"
)

// version is set at release build time via ldflags.
var version = "dev"

// main is the entrypoint for the embeddedengine binary.
func main() {
	// Use a minimal logger until the engine configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:], engine.New(os.Stdout)); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the dispatch logic for easier testing and error handling.
// The engine is invoked at most once, and never for help or version requests;
// its outcome is returned unchanged.
func run(outW io.Writer, args []string, eng engine.Runner) error {
	config, shouldExit, err := cli.Parse(args, version, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return eng.Run(context.Background(), config.Verbose)
}
