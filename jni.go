//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import "github.com/okonech/jvmtigo/jvmsys"

// JNI is a borrowed view over the per-call JNI environment pointer handed to
// an event callback. It is valid only for the duration of that single
// invocation and must never be stored beyond it; JNI environments are bound
// to the VM thread that produced them.
type JNI struct {
	raw jvmsys.JNIEnv
}

// newJNI wraps a JNIEnv pointer the native contract guarantees to be
// non-null.
func newJNI(raw uintptr) JNI {
	if raw == 0 {
		panic("jvmtigo: JNI environment pointer is null")
	}
	return JNI{raw: jvmsys.JNIEnv(raw)}
}

// Raw returns the underlying JNIEnv pointer for use with external JNI
// bindings.
func (j JNI) Raw() uintptr {
	return uintptr(j.raw)
}
