//go:build !ios && !android && (amd64 || arm64)

// Package jvmtigo provides safe Go bindings to the JVM Tool Interface
// (JVM TI) for building JVM agents without CGO, using purego.
//
// An agent gets an *Env from the VM at load time through OnAgentStartup,
// configures event handlers with Env.UpdateCallbacks, and enables event
// generation with Env.EnableEvent. The VM then invokes the handlers on
// threads of its own choosing for the remainder of the process.
//
// The raw ABI surface (error codes, event numbers, function-table calls) is
// available in the jvmsys package for advanced use.
package jvmtigo

import "github.com/okonech/jvmtigo/jvmsys"

// Re-export common raw types for convenience.
type (
	// Error is a translated nonzero jvmtiError.
	Error = jvmsys.Error
)

// ErrorCode returns the raw jvmtiError code carried by err, or 0 if err does
// not wrap an Error.
func ErrorCode(err error) int32 {
	return jvmsys.Code(err)
}

// IsWrongPhase reports whether err is a JVMTI_ERROR_WRONG_PHASE failure.
func IsWrongPhase(err error) bool {
	return jvmsys.IsWrongPhase(err)
}
