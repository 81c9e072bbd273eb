//go:build !ios && !android && (amd64 || arm64)

// Package envreg is a process-wide registry for instrumentation environments
// referenced from native callbacks.
//
// The VM hands trampolines nothing but a raw jvmtiEnv pointer, and Go
// pointers must not be stored in native memory. Instead the environment is
// registered here and the resulting cookie, a plain non-zero integer, is
// written into the jvmtiEnv's local-storage slot. Trampolines read the cookie
// back from local storage and resolve it through Lookup.
package envreg

import (
	"sync"
	"sync/atomic"
)

var (
	table sync.Map // map[uintptr]any
	seq   uintptr  // cookie 0 is reserved for "never registered"
)

// Register stores v and returns its cookie. Cookies are unique for the life
// of the process and never reused.
func Register(v any) uintptr {
	cookie := atomic.AddUintptr(&seq, 1)
	table.Store(cookie, v)
	return cookie
}

// Lookup resolves a cookie to the registered value, or nil if the cookie was
// never registered or has been unregistered.
func Lookup(cookie uintptr) any {
	v, _ := table.Load(cookie)
	return v
}

// Unregister removes a cookie, letting the registered value be collected.
func Unregister(cookie uintptr) {
	table.Delete(cookie)
}

// Count returns the number of live registrations.
func Count() int {
	n := 0
	table.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
