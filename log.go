//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import "github.com/sirupsen/logrus"

// logger receives diagnostics that cannot be returned as errors, chiefly
// handler panics suppressed at the JVM boundary.
var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. Pass nil to restore the default
// logrus standard logger. Call this before the agent goes live; the logger is
// read from VM-chosen threads once callbacks are installed.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger = logrus.StandardLogger()
		return
	}
	logger = l
}
