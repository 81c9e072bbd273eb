//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import (
	"github.com/sirupsen/logrus"

	"github.com/okonech/jvmtigo/jvmsys"
)

// InitFunc is the agent's initialization callback, invoked once during
// Agent_OnLoad or Agent_OnAttach. options is the agent option string from
// the command line, or nil when none was given. Returning an error aborts
// agent loading.
type InitFunc func(env *Env, options *string) error

// OnAgentStartup adapts the raw arguments of the native agent entry point
// into a typed invocation of init: it converts the option C string, creates
// the environment at the requested version, and translates the outcome into
// the native integer convention (0 success, nonzero failure). Failures of any
// kind, recovered panics included, never unwind into the VM.
//
// The exported Agent_OnLoad / Agent_OnAttach symbol itself must live in the
// agent's own main package, built with -buildmode=c-shared:
//
//	//export Agent_OnLoad
//	func Agent_OnLoad(vm, options, reserved unsafe.Pointer) C.int {
//		return C.int(jvmtigo.OnAgentStartup(onLoad, jvmtigo.VersionLatest,
//			uintptr(vm), uintptr(options)))
//	}
func OnAgentStartup(init InitFunc, version Version, vm, options uintptr) (status int32) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithFields(logrus.Fields{
				"panic": r,
			}).Error("jvmtigo: panic during agent startup suppressed at the JVM boundary")
			status = jvmsys.JNIErr
		}
	}()

	var opts *string
	if options != 0 {
		s := jvmsys.GoString(options)
		opts = &s
	}

	env, err := FromJavaVM(vm, version)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"error": err,
		}).Error("jvmtigo: failed to create JVM TI environment")
		return jvmsys.JNIErr
	}

	if err := init(env, opts); err != nil {
		logger.WithFields(logrus.Fields{
			"error": err,
		}).Error("jvmtigo: agent initialization failed")
		return jvmsys.JNIErr
	}
	return jvmsys.JNIOk
}
