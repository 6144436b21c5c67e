package engine

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	config, err := NewConfig(Config{Verbose: true})

	require.NoError(t, err)
	require.True(t, config.Verbose)
}

func TestEngineRun_Succeeds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		verbose bool
	}{
		{name: "quiet", verbose: false},
		{name: "verbose", verbose: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			eng := New(out)

			err := eng.Run(context.Background(), tc.verbose)

			require.NoError(t, err, "a run with no work to do should succeed")
		})
	}
}

func TestEngineRun_VerboseLogging(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	eng := New(out)

	// --- Act ---
	err := eng.Run(context.Background(), true)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Engine run started.", "verbose runs should log lifecycle at debug level")
}

func TestEngineRun_QuietLogging(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	eng := New(out)

	// --- Act ---
	err := eng.Run(context.Background(), false)

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, out.String(), "quiet runs should not emit debug output")
}

func TestEngineRun_CancelledContext(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	eng := New(&bytes.Buffer{})

	// --- Act ---
	err := eng.Run(ctx, false)

	// --- Assert ---
	require.ErrorIs(t, err, context.Canceled)
}
