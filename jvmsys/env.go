//go:build !ios && !android && (amd64 || arm64)

package jvmsys

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// GetEnv acquires a jvmtiEnv at the requested version through the JavaVM
// invocation interface. It returns the raw environment and the JNI status
// code (JNIOk on success, JNIEVersion or JNIEDetached on the documented
// failure modes). vm must be non-null.
func GetEnv(vm VM, version int32) (Env, int32) {
	fn := *(*uintptr)(unsafe.Pointer(fnTable(uintptr(vm)) + vmSlotGetEnv*ptrSize))
	var env uintptr
	r1, _, _ := purego.SyscallN(fn, uintptr(vm), uintptr(unsafe.Pointer(&env)), uintptr(uint32(version)))
	runtime.KeepAlive(&env)
	return Env(env), int32(uint32(r1))
}

// DisposeEnvironment shuts the environment down. The environment must not be
// used afterwards.
func DisposeEnvironment(env Env) int32 {
	return call(env, fnDisposeEnvironment)
}

// SetEnvironmentLocalStorage stores a pointer-sized value in the
// environment's local storage slot.
func SetEnvironmentLocalStorage(env Env, data uintptr) int32 {
	return call(env, fnSetEnvironmentLocalStorage, data)
}

// GetEnvironmentLocalStorage reads back the value previously stored with
// SetEnvironmentLocalStorage, or 0 if storage was never set.
func GetEnvironmentLocalStorage(env Env) (uintptr, int32) {
	var data uintptr
	code := call(env, fnGetEnvironmentLocalStorage, uintptr(unsafe.Pointer(&data)))
	runtime.KeepAlive(&data)
	return data, code
}

// GetVersionNumber returns the packed JVM TI version of the attached VM.
func GetVersionNumber(env Env) (int32, int32) {
	var version int32
	code := call(env, fnGetVersionNumber, uintptr(unsafe.Pointer(&version)))
	runtime.KeepAlive(&version)
	return version, code
}

// GetPhase returns the current phase of VM execution.
func GetPhase(env Env) (int32, int32) {
	var phase int32
	code := call(env, fnGetPhase, uintptr(unsafe.Pointer(&phase)))
	runtime.KeepAlive(&phase)
	return phase, code
}

// GetJLocationFormat returns the jlocation format of the attached VM.
func GetJLocationFormat(env Env) (int32, int32) {
	var format int32
	code := call(env, fnGetJLocationFormat, uintptr(unsafe.Pointer(&format)))
	runtime.KeepAlive(&format)
	return format, code
}

// SetVerboseFlag controls the VM's verbose output for one category.
func SetVerboseFlag(env Env, flag int32, value bool) int32 {
	var b uintptr
	if value {
		b = 1
	}
	return call(env, fnSetVerboseFlag, uintptr(uint32(flag)), b)
}

// SetEventNotificationMode enables or disables the generation of an event
// kind, optionally restricted to a single thread (0 for all threads).
func SetEventNotificationMode(env Env, mode, event int32, thread JThread) int32 {
	return call(env, fnSetEventNotificationMode, uintptr(uint32(mode)), uintptr(uint32(event)), uintptr(thread))
}

// SetEventCallbacks pushes the dense callback table to the VM. The VM copies
// the table during the call.
func SetEventCallbacks(env Env, table *EventCallbacksTable) int32 {
	code := call(env, fnSetEventCallbacks, uintptr(unsafe.Pointer(table)), uintptr(TableByteSize))
	runtime.KeepAlive(table)
	return code
}

// GetThreadInfo queries name, priority, daemon status, thread group and
// context class loader for a thread. The JVM TI allocated name buffer is
// copied and released before returning.
func GetThreadInfo(env Env, thread JThread) (ThreadInfo, int32) {
	var raw rawThreadInfo
	code := call(env, fnGetThreadInfo, uintptr(thread), uintptr(unsafe.Pointer(&raw)))
	runtime.KeepAlive(&raw)
	if code != ErrNone {
		return ThreadInfo{}, code
	}
	info := ThreadInfo{
		Name:               GoString(raw.name),
		Priority:           raw.priority,
		Daemon:             raw.isDaemon != 0,
		Group:              JThreadGroup(raw.threadGroup),
		ContextClassLoader: JObject(raw.contextClassLoader),
	}
	if raw.name != 0 {
		Deallocate(env, raw.name)
	}
	return info, ErrNone
}

// GetThreadGroupInfo queries name, parent, max priority and daemon status for
// a thread group.
func GetThreadGroupInfo(env Env, group JThreadGroup) (ThreadGroupInfo, int32) {
	var raw rawThreadGroupInfo
	code := call(env, fnGetThreadGroupInfo, uintptr(group), uintptr(unsafe.Pointer(&raw)))
	runtime.KeepAlive(&raw)
	if code != ErrNone {
		return ThreadGroupInfo{}, code
	}
	info := ThreadGroupInfo{
		Parent:      JThreadGroup(raw.parent),
		Name:        GoString(raw.name),
		MaxPriority: raw.maxPriority,
		Daemon:      raw.isDaemon != 0,
	}
	if raw.name != 0 {
		Deallocate(env, raw.name)
	}
	return info, ErrNone
}

// GetLoadedClasses returns every class currently loaded in the VM. The JVM TI
// allocated class array is copied and released before returning.
func GetLoadedClasses(env Env) ([]JClass, int32) {
	var count int32
	var array uintptr
	code := call(env, fnGetLoadedClasses, uintptr(unsafe.Pointer(&count)), uintptr(unsafe.Pointer(&array)))
	runtime.KeepAlive(&count)
	runtime.KeepAlive(&array)
	if code != ErrNone {
		return nil, code
	}
	classes := make([]JClass, count)
	if array != 0 && count > 0 {
		raw := unsafe.Slice((*uintptr)(unsafe.Pointer(array)), int(count))
		for i, p := range raw {
			classes[i] = JClass(p)
		}
	}
	if array != 0 {
		Deallocate(env, array)
	}
	return classes, ErrNone
}

// GetClassSignature returns the JNI type signature and the generic signature
// of a class. The generic signature is "" when the class has none.
func GetClassSignature(env Env, class JClass) (signature, generic string, code int32) {
	var sigPtr, genPtr uintptr
	code = call(env, fnGetClassSignature, uintptr(class),
		uintptr(unsafe.Pointer(&sigPtr)), uintptr(unsafe.Pointer(&genPtr)))
	runtime.KeepAlive(&sigPtr)
	runtime.KeepAlive(&genPtr)
	if code != ErrNone {
		return "", "", code
	}
	signature = GoString(sigPtr)
	generic = GoString(genPtr)
	if sigPtr != 0 {
		Deallocate(env, sigPtr)
	}
	if genPtr != 0 {
		Deallocate(env, genPtr)
	}
	return signature, generic, ErrNone
}

// Allocate requests size bytes from the VM's allocator. Memory obtained here
// may be handed back to the VM, which releases it with Deallocate.
func Allocate(env Env, size int64) (uintptr, int32) {
	var mem uintptr
	code := call(env, fnAllocate, uintptr(size), uintptr(unsafe.Pointer(&mem)))
	runtime.KeepAlive(&mem)
	return mem, code
}

// Deallocate releases memory allocated by the VM (Allocate or any JVM TI
// function that returns allocated buffers).
func Deallocate(env Env, mem uintptr) int32 {
	return call(env, fnDeallocate, mem)
}
