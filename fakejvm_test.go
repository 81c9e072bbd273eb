//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import (
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/okonech/jvmtigo/jvmsys"
)

// fakeJVM emulates the native side of the ABI: a JavaVM and a jvmtiEnv whose
// function tables are filled with purego callbacks, so the production code
// path (vtable indirection, SyscallN, local-storage round-trip, trampoline
// dispatch) runs unchanged against in-process Go implementations.
type fakeJVM struct {
	t *testing.T

	envTable    [160]uintptr
	envTableRef uintptr
	vmTable     [8]uintptr
	vmTableRef  uintptr
	jniRef      byte

	getEnvStatus     int32
	requestedVersion int32

	localStorage uintptr
	version      int32
	phase        int32
	jlocation    int32
	verbose      map[int32]bool

	notifyCode    int32
	notifications []fakeNotification

	callbacks    jvmsys.EventCallbacksTable
	setCallbacks int

	disposed int

	allocs map[uintptr][]byte
	pinned []any

	threadName     string
	threadPriority int32
	threadDaemon   bool
	threadGroupRef uintptr
	loaderRef      uintptr

	groupName string

	loadedClasses []uintptr
	classSig      string
}

type fakeNotification struct {
	mode   int32
	event  int32
	thread uintptr
}

func newFakeJVM(t *testing.T) *fakeJVM {
	t.Helper()

	f := &fakeJVM{
		t:         t,
		version:   int32(VersionLatest),
		phase:     jvmsys.PhaseLive,
		jlocation: jvmsys.JLocationJVMBCI,
		verbose:   map[int32]bool{},
		allocs:    map[uintptr][]byte{},

		threadName:     "main",
		threadPriority: 5,
		threadGroupRef: 0xA110,
		loaderRef:      0xB220,
		groupName:      "main",
		loadedClasses:  []uintptr{0xC100, 0xC200, 0xC300},
		classSig:       "Ljava/lang/Object;",
	}
	f.envTableRef = uintptr(unsafe.Pointer(&f.envTable[0]))
	f.vmTableRef = uintptr(unsafe.Pointer(&f.vmTable[0]))

	// JavaVM invocation interface: GetEnv at slot 6.
	f.vmTable[6] = purego.NewCallback(func(_ purego.CDecl, vm, penv uintptr, version int32) int32 {
		if f.getEnvStatus != jvmsys.JNIOk {
			return f.getEnvStatus
		}
		f.requestedVersion = version
		*(*uintptr)(unsafe.Pointer(penv)) = f.env()
		return jvmsys.JNIOk
	})

	set := func(pos int, fn uintptr) { f.envTable[pos-1] = fn }

	// SetEventNotificationMode (2)
	set(2, purego.NewCallback(func(_ purego.CDecl, env uintptr, mode, event int32, thread uintptr) int32 {
		if f.notifyCode != jvmsys.ErrNone {
			return f.notifyCode
		}
		f.notifications = append(f.notifications, fakeNotification{mode: mode, event: event, thread: thread})
		return jvmsys.ErrNone
	}))

	// GetThreadInfo (9): fill a jvmtiThreadInfo.
	set(9, purego.NewCallback(func(_ purego.CDecl, env, thread, infoPtr uintptr) int32 {
		*(*uintptr)(unsafe.Pointer(infoPtr)) = f.cstr(f.threadName)
		*(*int32)(unsafe.Pointer(infoPtr + 8)) = f.threadPriority
		daemon := byte(0)
		if f.threadDaemon {
			daemon = 1
		}
		*(*byte)(unsafe.Pointer(infoPtr + 12)) = daemon
		*(*uintptr)(unsafe.Pointer(infoPtr + 16)) = f.threadGroupRef
		*(*uintptr)(unsafe.Pointer(infoPtr + 24)) = f.loaderRef
		return jvmsys.ErrNone
	}))

	// GetThreadGroupInfo (14): fill a jvmtiThreadGroupInfo.
	set(14, purego.NewCallback(func(_ purego.CDecl, env, group, infoPtr uintptr) int32 {
		*(*uintptr)(unsafe.Pointer(infoPtr)) = 0 // top-level group
		*(*uintptr)(unsafe.Pointer(infoPtr + 8)) = f.cstr(f.groupName)
		*(*int32)(unsafe.Pointer(infoPtr + 16)) = 10
		*(*byte)(unsafe.Pointer(infoPtr + 20)) = 0
		return jvmsys.ErrNone
	}))

	// Allocate (46)
	set(46, purego.NewCallback(func(_ purego.CDecl, env uintptr, size int64, memPtr uintptr) int32 {
		if size == 0 {
			*(*uintptr)(unsafe.Pointer(memPtr)) = 0
			return jvmsys.ErrNone
		}
		buf := make([]byte, size)
		p := uintptr(unsafe.Pointer(&buf[0]))
		f.allocs[p] = buf
		*(*uintptr)(unsafe.Pointer(memPtr)) = p
		return jvmsys.ErrNone
	}))

	// Deallocate (47): tolerates buffers handed out via cstr and friends.
	set(47, purego.NewCallback(func(_ purego.CDecl, env, mem uintptr) int32 {
		delete(f.allocs, mem)
		return jvmsys.ErrNone
	}))

	// GetClassSignature (48)
	set(48, purego.NewCallback(func(_ purego.CDecl, env, class, sigPtr, genPtr uintptr) int32 {
		*(*uintptr)(unsafe.Pointer(sigPtr)) = f.cstr(f.classSig)
		*(*uintptr)(unsafe.Pointer(genPtr)) = 0
		return jvmsys.ErrNone
	}))

	// GetLoadedClasses (78)
	set(78, purego.NewCallback(func(_ purego.CDecl, env, countPtr, arrayPtr uintptr) int32 {
		arr := append([]uintptr(nil), f.loadedClasses...)
		f.pinned = append(f.pinned, arr)
		*(*int32)(unsafe.Pointer(countPtr)) = int32(len(arr))
		if len(arr) > 0 {
			*(*uintptr)(unsafe.Pointer(arrayPtr)) = uintptr(unsafe.Pointer(&arr[0]))
		} else {
			*(*uintptr)(unsafe.Pointer(arrayPtr)) = 0
		}
		return jvmsys.ErrNone
	}))

	// GetVersionNumber (88)
	set(88, purego.NewCallback(func(_ purego.CDecl, env, versionPtr uintptr) int32 {
		*(*int32)(unsafe.Pointer(versionPtr)) = f.version
		return jvmsys.ErrNone
	}))

	// SetEventCallbacks (122)
	set(122, purego.NewCallback(func(_ purego.CDecl, env, table uintptr, size int32) int32 {
		if int(size) != jvmsys.TableByteSize {
			f.t.Errorf("SetEventCallbacks size = %d, want %d", size, jvmsys.TableByteSize)
		}
		src := unsafe.Slice((*uintptr)(unsafe.Pointer(table)), jvmsys.NumEventSlots)
		copy(f.callbacks[:], src)
		f.setCallbacks++
		return jvmsys.ErrNone
	}))

	// DisposeEnvironment (127)
	set(127, purego.NewCallback(func(_ purego.CDecl, env uintptr) int32 {
		f.disposed++
		return jvmsys.ErrNone
	}))

	// GetJLocationFormat (129)
	set(129, purego.NewCallback(func(_ purego.CDecl, env, formatPtr uintptr) int32 {
		*(*int32)(unsafe.Pointer(formatPtr)) = f.jlocation
		return jvmsys.ErrNone
	}))

	// GetPhase (133)
	set(133, purego.NewCallback(func(_ purego.CDecl, env, phasePtr uintptr) int32 {
		*(*int32)(unsafe.Pointer(phasePtr)) = f.phase
		return jvmsys.ErrNone
	}))

	// GetEnvironmentLocalStorage (147)
	set(147, purego.NewCallback(func(_ purego.CDecl, env, dataPtr uintptr) int32 {
		*(*uintptr)(unsafe.Pointer(dataPtr)) = f.localStorage
		return jvmsys.ErrNone
	}))

	// SetEnvironmentLocalStorage (148)
	set(148, purego.NewCallback(func(_ purego.CDecl, env, data uintptr) int32 {
		f.localStorage = data
		return jvmsys.ErrNone
	}))

	// SetVerboseFlag (150)
	set(150, purego.NewCallback(func(_ purego.CDecl, env uintptr, flag int32, value uintptr) int32 {
		f.verbose[flag] = value != 0
		return jvmsys.ErrNone
	}))

	return f
}

// vm returns the raw JavaVM pointer.
func (f *fakeJVM) vm() uintptr {
	return uintptr(unsafe.Pointer(&f.vmTableRef))
}

// env returns the raw jvmtiEnv pointer.
func (f *fakeJVM) env() uintptr {
	return uintptr(unsafe.Pointer(&f.envTableRef))
}

// jni returns a non-null stand-in JNIEnv pointer.
func (f *fakeJVM) jni() uintptr {
	return uintptr(unsafe.Pointer(&f.jniRef))
}

// cstr hands out a NUL-terminated copy of s that the code under test may
// GoString and Deallocate.
func (f *fakeJVM) cstr(s string) uintptr {
	b := append([]byte(s), 0)
	p := uintptr(unsafe.Pointer(&b[0]))
	f.allocs[p] = b
	return p
}

// attach creates an Env from the fake VM, failing the test on error.
func (f *fakeJVM) attach(t *testing.T) *Env {
	t.Helper()
	env, err := FromJavaVM(f.vm(), VersionLatest)
	if err != nil {
		t.Fatalf("FromJavaVM failed: %v", err)
	}
	return env
}

// fire invokes the trampoline wired in the pushed callback table for the
// given event, exactly as the VM would: through the raw function pointer.
//
//go:uintptrescapes
func (f *fakeJVM) fire(t *testing.T, event int32, args ...uintptr) {
	t.Helper()
	fn := f.callbacks.Slot(event)
	if fn == 0 {
		t.Fatalf("no callback wired for event %d", event)
	}
	callArgs := append([]uintptr{f.env(), f.jni()}, args...)
	purego.SyscallN(fn, callArgs...)
}
