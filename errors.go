//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import "errors"

// Environment creation and lifecycle errors.
var (
	// ErrNullVM indicates the raw JavaVM pointer was null.
	ErrNullVM = errors.New("jvmtigo: JavaVM pointer is null")

	// ErrWrongVersion indicates the VM does not support the requested
	// JVM TI version.
	ErrWrongVersion = errors.New("jvmtigo: requested JVM TI version is not supported")

	// ErrDetached indicates the current thread is not attached to the VM.
	ErrDetached = errors.New("jvmtigo: current thread is not attached to the VM")

	// ErrDisposed indicates the environment has already been disposed.
	ErrDisposed = errors.New("jvmtigo: environment already disposed")
)
