//go:build !ios && !android && (amd64 || arm64)

package jvmsys

import "unsafe"

// GoString copies a NUL-terminated C string into a Go string. A null pointer
// yields "".
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
