package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/embeddedengine/internal/engine"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated engine
// Config, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, version string, output io.Writer) (*engine.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("embeddedengine", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
EmbeddedEngine - embedded execution engine.

Usage:
  embeddedengine [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var verbose bool
	flagSet.BoolVar(&verbose, "verbose", false, "Enable verbose output.")
	flagSet.BoolVar(&verbose, "v", false, "Enable verbose output (shorthand).")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintf(output, "embeddedengine version %s\n", version)
		return nil, true, nil
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %q", flagSet.Arg(0))}
	}

	config, err := engine.NewConfig(engine.Config{Verbose: verbose})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
