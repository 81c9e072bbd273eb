//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import "github.com/okonech/jvmtigo/jvmsys"

// Object is a borrowed view over a jobject reference. It is valid only
// within the callback or query that produced it.
type Object struct {
	env *Env
	raw jvmsys.JObject
}

// Raw returns the underlying jobject reference.
func (o Object) Raw() uintptr {
	return uintptr(o.raw)
}

// IsNil reports whether the reference is null, as for a bootstrap class
// loader or an absent protection domain.
func (o Object) IsNil() bool {
	return o.raw == 0
}
