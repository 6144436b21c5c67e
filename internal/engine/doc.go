// Package engine defines the delegation boundary between the command-line
// shell and the engine proper. The Runner interface is the entire contract
// the shell depends on: one synchronous call taking the verbosity value and
// returning success or failure. Engine is the default Runner linked into the
// binary, decoupled from any specific entrypoint like a CLI or server.
package engine
