//go:build !ios && !android && (amd64 || arm64)

// Package jvmsys provides the raw ABI surface of the JVM Tool Interface.
// Every JVM TI call goes through the environment's own function-pointer table
// (a struct of pointers, one indirection per call), so there are no named
// symbols to bind against; calls are dispatched with purego.SyscallN through
// the slot at each function's documented table position.
package jvmsys

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// VM is a raw JavaVM pointer as handed to Agent_OnLoad / Agent_OnAttach.
type VM uintptr

// Env is a raw jvmtiEnv pointer.
type Env uintptr

// JNIEnv is a raw per-thread JNI environment pointer.
type JNIEnv uintptr

// Raw JVM object references. The VM owns the underlying entities; these are
// only ever borrowed for the duration of a callback or query.
type (
	JThread      uintptr
	JClass       uintptr
	JObject      uintptr
	JThreadGroup uintptr
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// A jvmtiEnv (and a JavaVM) is a pointer to a pointer to the function table.
func fnTable(handle uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(handle))
}

// envFn returns the function pointer at the given one-based table position.
func envFn(env Env, pos int) uintptr {
	return *(*uintptr)(unsafe.Pointer(fnTable(uintptr(env)) + uintptr(pos-1)*ptrSize))
}

// call invokes the jvmtiEnv function at pos and returns the raw jvmtiError.
// A null slot is a broken environment, not an expected runtime condition.
//
//go:uintptrescapes
func call(env Env, pos int, args ...uintptr) int32 {
	fn := envFn(env, pos)
	if fn == 0 {
		panic(fmt.Sprintf("jvmsys: jvmtiEnv function at position %d is not available", pos))
	}
	callArgs := make([]uintptr, 0, len(args)+1)
	callArgs = append(callArgs, uintptr(env))
	callArgs = append(callArgs, args...)
	r1, _, _ := purego.SyscallN(fn, callArgs...)
	return int32(uint32(r1))
}

// rawThreadInfo mirrors jvmtiThreadInfo bit for bit on 64-bit targets.
type rawThreadInfo struct {
	name               uintptr // char*, JVM TI allocated
	priority           int32
	isDaemon           uint8
	_                  [3]byte
	threadGroup        uintptr
	contextClassLoader uintptr
}

// rawThreadGroupInfo mirrors jvmtiThreadGroupInfo bit for bit on 64-bit targets.
type rawThreadGroupInfo struct {
	parent      uintptr
	name        uintptr // char*, JVM TI allocated
	maxPriority int32
	isDaemon    uint8
	_           [3]byte
}

// ThreadInfo is the decoded result of GetThreadInfo. Name is copied into Go
// memory; Group and ContextClassLoader remain borrowed raw references.
type ThreadInfo struct {
	Name               string
	Priority           int32
	Daemon             bool
	Group              JThreadGroup
	ContextClassLoader JObject
}

// ThreadGroupInfo is the decoded result of GetThreadGroupInfo.
type ThreadGroupInfo struct {
	Parent      JThreadGroup
	Name        string
	MaxPriority int32
	Daemon      bool
}
