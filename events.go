//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"

	"github.com/okonech/jvmtigo/jvmsys"
)

// EventKind identifies one of the notifications the VM can emit. The full
// enumeration is declared; handlers are wired for the lifecycle and
// class-load subset (see Callbacks).
type EventKind int32

const (
	EventVMInit                  EventKind = EventKind(jvmsys.EventVMInit)
	EventVMDeath                 EventKind = EventKind(jvmsys.EventVMDeath)
	EventThreadStart             EventKind = EventKind(jvmsys.EventThreadStart)
	EventThreadEnd               EventKind = EventKind(jvmsys.EventThreadEnd)
	EventClassFileLoadHook       EventKind = EventKind(jvmsys.EventClassFileLoadHook)
	EventClassLoad               EventKind = EventKind(jvmsys.EventClassLoad)
	EventClassPrepare            EventKind = EventKind(jvmsys.EventClassPrepare)
	EventVMStart                 EventKind = EventKind(jvmsys.EventVMStart)
	EventException               EventKind = EventKind(jvmsys.EventException)
	EventExceptionCatch          EventKind = EventKind(jvmsys.EventExceptionCatch)
	EventSingleStep              EventKind = EventKind(jvmsys.EventSingleStep)
	EventFramePop                EventKind = EventKind(jvmsys.EventFramePop)
	EventBreakpoint              EventKind = EventKind(jvmsys.EventBreakpoint)
	EventFieldAccess             EventKind = EventKind(jvmsys.EventFieldAccess)
	EventFieldModification       EventKind = EventKind(jvmsys.EventFieldModification)
	EventMethodEntry             EventKind = EventKind(jvmsys.EventMethodEntry)
	EventMethodExit              EventKind = EventKind(jvmsys.EventMethodExit)
	EventNativeMethodBind        EventKind = EventKind(jvmsys.EventNativeMethodBind)
	EventCompiledMethodLoad      EventKind = EventKind(jvmsys.EventCompiledMethodLoad)
	EventCompiledMethodUnload    EventKind = EventKind(jvmsys.EventCompiledMethodUnload)
	EventDynamicCodeGenerated    EventKind = EventKind(jvmsys.EventDynamicCodeGenerated)
	EventDataDumpRequest         EventKind = EventKind(jvmsys.EventDataDumpRequest)
	EventMonitorWait             EventKind = EventKind(jvmsys.EventMonitorWait)
	EventMonitorWaited           EventKind = EventKind(jvmsys.EventMonitorWaited)
	EventMonitorContendedEnter   EventKind = EventKind(jvmsys.EventMonitorContendedEnter)
	EventMonitorContendedEntered EventKind = EventKind(jvmsys.EventMonitorContendedEntered)
	EventResourceExhausted       EventKind = EventKind(jvmsys.EventResourceExhausted)
	EventGarbageCollectionStart  EventKind = EventKind(jvmsys.EventGarbageCollectionStart)
	EventGarbageCollectionFinish EventKind = EventKind(jvmsys.EventGarbageCollectionFinish)
	EventObjectFree              EventKind = EventKind(jvmsys.EventObjectFree)
	EventVMObjectAlloc           EventKind = EventKind(jvmsys.EventVMObjectAlloc)
	EventSampledObjectAlloc      EventKind = EventKind(jvmsys.EventSampledObjectAlloc)
	EventVirtualThreadStart      EventKind = EventKind(jvmsys.EventVirtualThreadStart)
	EventVirtualThreadEnd        EventKind = EventKind(jvmsys.EventVirtualThreadEnd)
)

var eventKindNames = map[EventKind]string{
	EventVMInit:                  "VMInit",
	EventVMDeath:                 "VMDeath",
	EventThreadStart:             "ThreadStart",
	EventThreadEnd:               "ThreadEnd",
	EventClassFileLoadHook:       "ClassFileLoadHook",
	EventClassLoad:               "ClassLoad",
	EventClassPrepare:            "ClassPrepare",
	EventVMStart:                 "VMStart",
	EventException:               "Exception",
	EventExceptionCatch:          "ExceptionCatch",
	EventSingleStep:              "SingleStep",
	EventFramePop:                "FramePop",
	EventBreakpoint:              "Breakpoint",
	EventFieldAccess:             "FieldAccess",
	EventFieldModification:       "FieldModification",
	EventMethodEntry:             "MethodEntry",
	EventMethodExit:              "MethodExit",
	EventNativeMethodBind:        "NativeMethodBind",
	EventCompiledMethodLoad:      "CompiledMethodLoad",
	EventCompiledMethodUnload:    "CompiledMethodUnload",
	EventDynamicCodeGenerated:    "DynamicCodeGenerated",
	EventDataDumpRequest:         "DataDumpRequest",
	EventMonitorWait:             "MonitorWait",
	EventMonitorWaited:           "MonitorWaited",
	EventMonitorContendedEnter:   "MonitorContendedEnter",
	EventMonitorContendedEntered: "MonitorContendedEntered",
	EventResourceExhausted:       "ResourceExhausted",
	EventGarbageCollectionStart:  "GarbageCollectionStart",
	EventGarbageCollectionFinish: "GarbageCollectionFinish",
	EventObjectFree:              "ObjectFree",
	EventVMObjectAlloc:           "VMObjectAlloc",
	EventSampledObjectAlloc:      "SampledObjectAlloc",
	EventVirtualThreadStart:      "VirtualThreadStart",
	EventVirtualThreadEnd:        "VirtualThreadEnd",
}

// String returns the event name.
func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int32(k))
}

// ClassFileLoad carries the arguments of a ClassFileLoadHook event. Entity
// handles and Data are valid only for the duration of the callback.
type ClassFileLoad struct {
	// ClassBeingRedefined is nil-handled unless a redefinition or
	// retransformation triggered the hook.
	ClassBeingRedefined Class
	// Name is the internal-form class name, or "" when not yet known.
	Name string
	// Loader is the defining loader; nil-handled for the bootstrap loader.
	Loader Object
	// ProtectionDomain may be nil-handled.
	ProtectionDomain Object
	// Data is the class file buffer as loaded.
	Data []byte
}

// Callbacks is the registry of optional typed handlers, one per wired event
// kind. At most one handler exists per kind; assigning a field replaces the
// previous handler. Mutate only through Env.UpdateCallbacks.
//
// The VM invokes handlers on threads of its own choosing. Entity handles and
// the JNI session passed to a handler must not outlive the invocation.
type Callbacks struct {
	VMInit      func(env *Env, jni JNI, thread Thread)
	VMDeath     func(env *Env, jni JNI)
	VMStart     func(env *Env, jni JNI)
	ThreadStart func(env *Env, jni JNI, thread Thread)
	ThreadEnd   func(env *Env, jni JNI, thread Thread)

	// ClassFileLoadHook may return a replacement class file. A non-nil
	// return is copied into VM-allocated memory and handed to the VM, which
	// owns and eventually deallocates it; nil declines to replace.
	ClassFileLoadHook func(env *Env, jni JNI, load *ClassFileLoad) []byte

	ClassLoad    func(env *Env, jni JNI, thread Thread, class Class)
	ClassPrepare func(env *Env, jni JNI, thread Thread, class Class)
}

// table builds the dense native callback struct: the trampoline pointer for
// each registered handler, null for everything else, reserved slots null.
func (c *Callbacks) table() jvmsys.EventCallbacksTable {
	var t jvmsys.EventCallbacksTable
	if c.VMInit != nil {
		t.Set(jvmsys.EventVMInit, vmInitTramp)
	}
	if c.VMDeath != nil {
		t.Set(jvmsys.EventVMDeath, vmDeathTramp)
	}
	if c.VMStart != nil {
		t.Set(jvmsys.EventVMStart, vmStartTramp)
	}
	if c.ThreadStart != nil {
		t.Set(jvmsys.EventThreadStart, threadStartTramp)
	}
	if c.ThreadEnd != nil {
		t.Set(jvmsys.EventThreadEnd, threadEndTramp)
	}
	if c.ClassFileLoadHook != nil {
		t.Set(jvmsys.EventClassFileLoadHook, classFileLoadHookTramp)
	}
	if c.ClassLoad != nil {
		t.Set(jvmsys.EventClassLoad, classLoadTramp)
	}
	if c.ClassPrepare != nil {
		t.Set(jvmsys.EventClassPrepare, classPrepareTramp)
	}
	return t
}

// UpdateCallbacks applies update to a copy of the registry, pushes the
// resulting table to the VM, and only then publishes the copy for dispatch.
// Concurrent dispatch always sees a complete snapshot, never a partially
// updated one. After a successful return the VM dispatches exactly the new
// configuration for all subsequent matching events.
func (e *Env) UpdateCallbacks(update func(*Callbacks)) error {
	initTrampolines()

	e.mu.Lock()
	defer e.mu.Unlock()

	next := *e.cbs.Load()
	update(&next)

	table := next.table()
	if code := jvmsys.SetEventCallbacks(e.raw, &table); code != jvmsys.ErrNone {
		return jvmsys.New(code, "SetEventCallbacks")
	}
	e.cbs.Store(&next)
	return nil
}

// EnableEvent asks the VM to generate the given event kind, optionally only
// on one thread (nil for all threads). Most kinds can only be enabled in
// specific phases; a premature call fails with a wrong-phase error.
func (e *Env) EnableEvent(kind EventKind, thread *Thread) error {
	var raw jvmsys.JThread
	if thread != nil {
		raw = thread.raw
	}
	code := jvmsys.SetEventNotificationMode(e.raw, jvmsys.EventEnable, int32(kind), raw)
	return jvmsys.New(code, "SetEventNotificationMode")
}

// DisableEvent stops generation of the given event kind, optionally only on
// one thread (nil for all threads).
func (e *Env) DisableEvent(kind EventKind, thread *Thread) error {
	var raw jvmsys.JThread
	if thread != nil {
		raw = thread.raw
	}
	code := jvmsys.SetEventNotificationMode(e.raw, jvmsys.EventDisable, int32(kind), raw)
	return jvmsys.New(code, "SetEventNotificationMode")
}

// Trampolines are native-ABI functions handed to the VM in the callback
// table. They are created once; purego callbacks cannot be released.
var (
	trampOnce sync.Once

	vmInitTramp            uintptr
	vmDeathTramp           uintptr
	vmStartTramp           uintptr
	threadStartTramp       uintptr
	threadEndTramp         uintptr
	classFileLoadHookTramp uintptr
	classLoadTramp         uintptr
	classPrepareTramp      uintptr
)

func initTrampolines() {
	trampOnce.Do(func() {
		vmInitTramp = purego.NewCallback(onVMInit)
		vmDeathTramp = purego.NewCallback(onVMDeath)
		vmStartTramp = purego.NewCallback(onVMStart)
		threadStartTramp = purego.NewCallback(onThreadStart)
		threadEndTramp = purego.NewCallback(onThreadEnd)
		classFileLoadHookTramp = purego.NewCallback(onClassFileLoadHook)
		classLoadTramp = purego.NewCallback(onClassLoad)
		classPrepareTramp = purego.NewCallback(onClassPrepare)
	})
}

// recoverDispatch keeps panics from unwinding into the VM's call stack,
// which would be undefined behavior. Handler failures are logged and
// otherwise ignored.
func recoverDispatch(event string) {
	if r := recover(); r != nil {
		logger.WithFields(logrus.Fields{
			"event": event,
			"panic": r,
		}).Error("jvmtigo: panic during event dispatch suppressed at the JVM boundary")
	}
}

func onVMInit(_ purego.CDecl, jvmtiEnv, jniEnv, thread uintptr) {
	defer recoverDispatch("VMInit")
	env := envFromRaw(jvmsys.Env(jvmtiEnv))
	jni := newJNI(jniEnv)
	t := newThread(env, jvmsys.JThread(thread))
	if cb := env.cbs.Load().VMInit; cb != nil {
		cb(env, jni, t)
	}
}

func onVMDeath(_ purego.CDecl, jvmtiEnv, jniEnv uintptr) {
	defer recoverDispatch("VMDeath")
	env := envFromRaw(jvmsys.Env(jvmtiEnv))
	jni := newJNI(jniEnv)
	if cb := env.cbs.Load().VMDeath; cb != nil {
		cb(env, jni)
	}
}

func onVMStart(_ purego.CDecl, jvmtiEnv, jniEnv uintptr) {
	defer recoverDispatch("VMStart")
	env := envFromRaw(jvmsys.Env(jvmtiEnv))
	jni := newJNI(jniEnv)
	if cb := env.cbs.Load().VMStart; cb != nil {
		cb(env, jni)
	}
}

func onThreadStart(_ purego.CDecl, jvmtiEnv, jniEnv, thread uintptr) {
	defer recoverDispatch("ThreadStart")
	env := envFromRaw(jvmsys.Env(jvmtiEnv))
	jni := newJNI(jniEnv)
	t := newThread(env, jvmsys.JThread(thread))
	if cb := env.cbs.Load().ThreadStart; cb != nil {
		cb(env, jni, t)
	}
}

func onThreadEnd(_ purego.CDecl, jvmtiEnv, jniEnv, thread uintptr) {
	defer recoverDispatch("ThreadEnd")
	env := envFromRaw(jvmsys.Env(jvmtiEnv))
	jni := newJNI(jniEnv)
	t := newThread(env, jvmsys.JThread(thread))
	if cb := env.cbs.Load().ThreadEnd; cb != nil {
		cb(env, jni, t)
	}
}

func onClassLoad(_ purego.CDecl, jvmtiEnv, jniEnv, thread, class uintptr) {
	defer recoverDispatch("ClassLoad")
	env := envFromRaw(jvmsys.Env(jvmtiEnv))
	jni := newJNI(jniEnv)
	t := newThread(env, jvmsys.JThread(thread))
	c := newClass(env, jvmsys.JClass(class))
	if cb := env.cbs.Load().ClassLoad; cb != nil {
		cb(env, jni, t, c)
	}
}

func onClassPrepare(_ purego.CDecl, jvmtiEnv, jniEnv, thread, class uintptr) {
	defer recoverDispatch("ClassPrepare")
	env := envFromRaw(jvmsys.Env(jvmtiEnv))
	jni := newJNI(jniEnv)
	t := newThread(env, jvmsys.JThread(thread))
	c := newClass(env, jvmsys.JClass(class))
	if cb := env.cbs.Load().ClassPrepare; cb != nil {
		cb(env, jni, t, c)
	}
}

// onClassFileLoadHook bridges the one event with output parameters. Declining
// to replace writes a zero length and null pointer, which the native contract
// defines as "no replacement"; a replacement is copied into Allocate'd VM
// memory whose ownership transfers to the VM.
func onClassFileLoadHook(_ purego.CDecl, jvmtiEnv, jniEnv, classBeingRedefined, loader, name, protectionDomain uintptr,
	classDataLen int32, classData, newClassDataLen, newClassData uintptr) {
	if newClassDataLen != 0 {
		*(*int32)(unsafe.Pointer(newClassDataLen)) = 0
	}
	if newClassData != 0 {
		*(*uintptr)(unsafe.Pointer(newClassData)) = 0
	}

	defer recoverDispatch("ClassFileLoadHook")
	env := envFromRaw(jvmsys.Env(jvmtiEnv))
	jni := newJNI(jniEnv)
	cb := env.cbs.Load().ClassFileLoadHook
	if cb == nil {
		return
	}

	load := &ClassFileLoad{
		ClassBeingRedefined: Class{env: env, raw: jvmsys.JClass(classBeingRedefined)},
		Name:                jvmsys.GoString(name),
		Loader:              Object{env: env, raw: jvmsys.JObject(loader)},
		ProtectionDomain:    Object{env: env, raw: jvmsys.JObject(protectionDomain)},
	}
	if classData != 0 && classDataLen > 0 {
		src := unsafe.Slice((*byte)(unsafe.Pointer(classData)), int(classDataLen))
		load.Data = append([]byte(nil), src...)
	}

	repl := cb(env, jni, load)
	if len(repl) == 0 {
		return
	}

	buf, code := jvmsys.Allocate(env.raw, int64(len(repl)))
	if code != jvmsys.ErrNone || buf == 0 {
		logger.WithFields(logrus.Fields{
			"event": "ClassFileLoadHook",
			"error": jvmsys.ErrorName(code),
			"bytes": len(repl),
		}).Error("jvmtigo: failed to allocate replacement class data; keeping original")
		return
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(buf)), len(repl)), repl)
	// The VM now owns buf and releases it through its own Deallocate.
	*(*int32)(unsafe.Pointer(newClassDataLen)) = int32(len(repl))
	*(*uintptr)(unsafe.Pointer(newClassData)) = buf
}
