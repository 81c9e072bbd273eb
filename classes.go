//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import "github.com/okonech/jvmtigo/jvmsys"

// Class is a borrowed view over a jclass reference. It is valid only within
// the callback or query that produced it; the VM owns the underlying class.
type Class struct {
	env *Env
	raw jvmsys.JClass
}

// newClass wraps a jclass the native contract guarantees to be non-null.
func newClass(env *Env, raw jvmsys.JClass) Class {
	if raw == 0 {
		panic("jvmtigo: class reference is null")
	}
	return Class{env: env, raw: raw}
}

// Raw returns the underlying jclass reference.
func (c Class) Raw() uintptr {
	return uintptr(c.raw)
}

// IsNil reports whether the reference is null, as for the
// class-being-redefined argument of a plain class load.
func (c Class) IsNil() bool {
	return c.raw == 0
}

// Signature returns the JNI type signature of the class and its generic
// signature ("" when the class has none).
func (c Class) Signature() (signature, generic string, err error) {
	signature, generic, code := jvmsys.GetClassSignature(c.env.raw, c.raw)
	if code != jvmsys.ErrNone {
		return "", "", jvmsys.New(code, "GetClassSignature")
	}
	return signature, generic, nil
}

// LoadedClasses returns every class currently loaded in the VM. The returned
// views borrow VM-owned references and should not be retained past the
// current callback or agent phase.
func (e *Env) LoadedClasses() ([]Class, error) {
	raw, code := jvmsys.GetLoadedClasses(e.raw)
	if code != jvmsys.ErrNone {
		return nil, jvmsys.New(code, "GetLoadedClasses")
	}
	classes := make([]Class, len(raw))
	for i, p := range raw {
		classes[i] = Class{env: e, raw: p}
	}
	return classes, nil
}
