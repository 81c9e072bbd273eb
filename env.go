//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/okonech/jvmtigo/internal/envreg"
	"github.com/okonech/jvmtigo/jvmsys"
)

// Env is one JVM TI instrumentation session attached to one VM instance.
//
// An Env is created once, at agent load or attach time, and deliberately
// lives at a process-stable location for as long as the VM may call back into
// it: the only teardown path is an explicit Dispose. Exactly one Env exists
// per raw jvmtiEnv pointer; trampolines recover it from the raw pointer
// through the environment's local-storage slot.
type Env struct {
	raw    jvmsys.Env
	cookie uintptr

	mu       sync.Mutex // serializes UpdateCallbacks
	cbs      atomic.Pointer[Callbacks]
	disposed atomic.Bool
}

// FromJavaVM acquires a JVM TI environment at the requested version from a
// raw JavaVM pointer. It fails with ErrNullVM for a null pointer (making no
// native calls), ErrWrongVersion when the VM rejects the version and
// ErrDetached when the current thread is not attached; any other nonzero
// acquisition status is reported verbatim.
func FromJavaVM(vm uintptr, version Version) (*Env, error) {
	if vm == 0 {
		return nil, ErrNullVM
	}
	raw, status := jvmsys.GetEnv(jvmsys.VM(vm), int32(version))
	switch status {
	case jvmsys.JNIOk:
	case jvmsys.JNIEVersion:
		return nil, ErrWrongVersion
	case jvmsys.JNIEDetached:
		return nil, ErrDetached
	default:
		return nil, fmt.Errorf("jvmtigo: GetEnv failed with JNI status %d", status)
	}

	env := &Env{raw: raw}
	env.cbs.Store(&Callbacks{})

	// The cookie, not a Go pointer, goes into the VM's local-storage slot;
	// trampolines use it to find their way back to this Env.
	env.cookie = envreg.Register(env)
	if code := jvmsys.SetEnvironmentLocalStorage(raw, env.cookie); code != jvmsys.ErrNone {
		envreg.Unregister(env.cookie)
		return nil, jvmsys.New(code, "SetEnvironmentLocalStorage")
	}
	return env, nil
}

// envFromRaw recovers the Env previously created for a raw jvmtiEnv pointer.
//
// Callable only from trampolines, with pointers the VM obtained from an Env
// produced by FromJavaVM; that precondition is enforced by construction, not
// by runtime checks. Unset local storage or an unknown cookie is a broken
// invariant and panics.
func envFromRaw(raw jvmsys.Env) *Env {
	cookie, code := jvmsys.GetEnvironmentLocalStorage(raw)
	if code != jvmsys.ErrNone {
		panic(fmt.Sprintf("jvmtigo: GetEnvironmentLocalStorage failed: %s", jvmsys.ErrorName(code)))
	}
	if cookie == 0 {
		panic("jvmtigo: environment local storage was never set")
	}
	env, ok := envreg.Lookup(cookie).(*Env)
	if !ok {
		panic(fmt.Sprintf("jvmtigo: no environment registered for cookie %d", cookie))
	}
	return env
}

// Raw returns the raw jvmtiEnv pointer.
func (e *Env) Raw() uintptr {
	return uintptr(e.raw)
}

// Phase returns the VM's current execution phase.
func (e *Env) Phase() (Phase, error) {
	phase, code := jvmsys.GetPhase(e.raw)
	if code != jvmsys.ErrNone {
		return 0, jvmsys.New(code, "GetPhase")
	}
	return Phase(phase), nil
}

// Version returns the JVM TI version of the attached VM.
func (e *Env) Version() (Version, error) {
	version, code := jvmsys.GetVersionNumber(e.raw)
	if code != jvmsys.ErrNone {
		return 0, jvmsys.New(code, "GetVersionNumber")
	}
	return Version(uint32(version)), nil
}

// SetVerboseFlag controls the VM's verbose output for one category.
func (e *Env) SetVerboseFlag(flag VerboseFlag, enabled bool) error {
	code := jvmsys.SetVerboseFlag(e.raw, int32(flag), enabled)
	return jvmsys.New(code, "SetVerboseFlag")
}

// LocationFormat returns how the attached VM encodes jlocation values.
func (e *Env) LocationFormat() (LocationFormat, error) {
	format, code := jvmsys.GetJLocationFormat(e.raw)
	if code != jvmsys.ErrNone {
		return 0, jvmsys.New(code, "GetJLocationFormat")
	}
	return LocationFormat(format), nil
}

// Dispose shuts the environment down and invalidates the handle. It may be
// called at most once; later calls return ErrDisposed. Using the Env for any
// instrumentation call after Dispose is undefined under the native contract.
func (e *Env) Dispose() error {
	if !e.disposed.CompareAndSwap(false, true) {
		return ErrDisposed
	}
	code := jvmsys.DisposeEnvironment(e.raw)
	envreg.Unregister(e.cookie)
	return jvmsys.New(code, "DisposeEnvironment")
}
