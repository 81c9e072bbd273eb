//go:build !ios && !android && (amd64 || arm64)

package jvmsys

import (
	"testing"
	"unsafe"
)

func TestGoString(t *testing.T) {
	if got := GoString(0); got != "" {
		t.Fatalf("GoString(0) = %q", got)
	}

	empty := []byte{0}
	if got := GoString(uintptr(unsafe.Pointer(&empty[0]))); got != "" {
		t.Fatalf("GoString of empty string = %q", got)
	}

	buf := append([]byte("Ljava/lang/Object;"), 0)
	if got := GoString(uintptr(unsafe.Pointer(&buf[0]))); got != "Ljava/lang/Object;" {
		t.Fatalf("GoString = %q", got)
	}

	// The copy must stop at the first NUL, not at the buffer end.
	trailing := append([]byte("main"), 0, 'x', 'y', 0)
	if got := GoString(uintptr(unsafe.Pointer(&trailing[0]))); got != "main" {
		t.Fatalf("GoString with trailing bytes = %q", got)
	}
}
