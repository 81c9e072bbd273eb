//go:build !ios && !android && (amd64 || arm64)

package jvmsys

import (
	"errors"
	"fmt"
)

// Error represents a nonzero jvmtiError returned by a JVM TI function.
type Error struct {
	Code int32  // Raw jvmtiError code
	Name string // Symbolic JVMTI_ERROR_* name
	Op   string // JVM TI function that failed
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jvmti %s: %s (code %d)", e.Op, e.Name, e.Code)
}

// New translates a raw jvmtiError into an error value. It returns nil only
// for ErrNone. The mapping is total: every code produces an error with its
// symbolic name, unknown codes included.
func New(code int32, op string) error {
	if code == ErrNone {
		return nil
	}
	return &Error{Code: code, Name: ErrorName(code), Op: op}
}

// errorNames maps every defined jvmtiError code to its symbolic name.
var errorNames = map[int32]string{
	ErrNone:                                 "JVMTI_ERROR_NONE",
	ErrInvalidThread:                        "JVMTI_ERROR_INVALID_THREAD",
	ErrInvalidThreadGroup:                   "JVMTI_ERROR_INVALID_THREAD_GROUP",
	ErrInvalidPriority:                      "JVMTI_ERROR_INVALID_PRIORITY",
	ErrThreadNotSuspended:                   "JVMTI_ERROR_THREAD_NOT_SUSPENDED",
	ErrThreadSuspended:                      "JVMTI_ERROR_THREAD_SUSPENDED",
	ErrThreadNotAlive:                       "JVMTI_ERROR_THREAD_NOT_ALIVE",
	ErrInvalidObject:                        "JVMTI_ERROR_INVALID_OBJECT",
	ErrInvalidClass:                         "JVMTI_ERROR_INVALID_CLASS",
	ErrClassNotPrepared:                     "JVMTI_ERROR_CLASS_NOT_PREPARED",
	ErrInvalidMethodID:                      "JVMTI_ERROR_INVALID_METHODID",
	ErrInvalidLocation:                      "JVMTI_ERROR_INVALID_LOCATION",
	ErrInvalidFieldID:                       "JVMTI_ERROR_INVALID_FIELDID",
	ErrInvalidModule:                        "JVMTI_ERROR_INVALID_MODULE",
	ErrNoMoreFrames:                         "JVMTI_ERROR_NO_MORE_FRAMES",
	ErrOpaqueFrame:                          "JVMTI_ERROR_OPAQUE_FRAME",
	ErrTypeMismatch:                         "JVMTI_ERROR_TYPE_MISMATCH",
	ErrInvalidSlot:                          "JVMTI_ERROR_INVALID_SLOT",
	ErrDuplicate:                            "JVMTI_ERROR_DUPLICATE",
	ErrNotFound:                             "JVMTI_ERROR_NOT_FOUND",
	ErrInvalidMonitor:                       "JVMTI_ERROR_INVALID_MONITOR",
	ErrNotMonitorOwner:                      "JVMTI_ERROR_NOT_MONITOR_OWNER",
	ErrInterrupt:                            "JVMTI_ERROR_INTERRUPT",
	ErrInvalidClassFormat:                   "JVMTI_ERROR_INVALID_CLASS_FORMAT",
	ErrCircularClassDefinition:              "JVMTI_ERROR_CIRCULAR_CLASS_DEFINITION",
	ErrFailsVerification:                    "JVMTI_ERROR_FAILS_VERIFICATION",
	ErrUnsupportedRedefinitionMethodAdded:   "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_METHOD_ADDED",
	ErrUnsupportedRedefinitionSchemaChanged: "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_SCHEMA_CHANGED",
	ErrInvalidTypestate:                     "JVMTI_ERROR_INVALID_TYPESTATE",
	ErrUnsupportedRedefinitionHierarchyChanged:       "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_HIERARCHY_CHANGED",
	ErrUnsupportedRedefinitionMethodDeleted:          "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_METHOD_DELETED",
	ErrUnsupportedVersion:                            "JVMTI_ERROR_UNSUPPORTED_VERSION",
	ErrNamesDontMatch:                                "JVMTI_ERROR_NAMES_DONT_MATCH",
	ErrUnsupportedRedefinitionClassModifiersChanged:  "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_CLASS_MODIFIERS_CHANGED",
	ErrUnsupportedRedefinitionMethodModifiersChanged: "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_METHOD_MODIFIERS_CHANGED",
	ErrUnsupportedRedefinitionClassAttributeChanged:  "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_CLASS_ATTRIBUTE_CHANGED",
	ErrUnsupportedOperation:   "JVMTI_ERROR_UNSUPPORTED_OPERATION",
	ErrUnmodifiableClass:      "JVMTI_ERROR_UNMODIFIABLE_CLASS",
	ErrUnmodifiableModule:     "JVMTI_ERROR_UNMODIFIABLE_MODULE",
	ErrNotAvailable:           "JVMTI_ERROR_NOT_AVAILABLE",
	ErrMustPossessCapability:  "JVMTI_ERROR_MUST_POSSESS_CAPABILITY",
	ErrNullPointer:            "JVMTI_ERROR_NULL_POINTER",
	ErrAbsentInformation:      "JVMTI_ERROR_ABSENT_INFORMATION",
	ErrInvalidEventType:       "JVMTI_ERROR_INVALID_EVENT_TYPE",
	ErrIllegalArgument:        "JVMTI_ERROR_ILLEGAL_ARGUMENT",
	ErrNativeMethod:           "JVMTI_ERROR_NATIVE_METHOD",
	ErrClassLoaderUnsupported: "JVMTI_ERROR_CLASS_LOADER_UNSUPPORTED",
	ErrOutOfMemory:            "JVMTI_ERROR_OUT_OF_MEMORY",
	ErrAccessDenied:           "JVMTI_ERROR_ACCESS_DENIED",
	ErrWrongPhase:             "JVMTI_ERROR_WRONG_PHASE",
	ErrInternal:               "JVMTI_ERROR_INTERNAL",
	ErrUnattachedThread:       "JVMTI_ERROR_UNATTACHED_THREAD",
	ErrInvalidEnvironment:     "JVMTI_ERROR_INVALID_ENVIRONMENT",
}

// ErrorName returns the symbolic name of a jvmtiError code. It is total and
// panic-free; codes outside the defined set get a synthesized name.
func ErrorName(code int32) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("JVMTI_ERROR_UNKNOWN(%d)", code)
}

// Code returns the jvmtiError code from an error, or ErrNone if err does not
// wrap an Error.
func Code(err error) int32 {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrNone
}

// IsWrongPhase reports whether err is a JVMTI_ERROR_WRONG_PHASE failure, the
// common outcome of calling a live-phase operation too early.
func IsWrongPhase(err error) bool {
	return Code(err) == ErrWrongPhase
}

// IsOutOfMemory reports whether err is a JVMTI_ERROR_OUT_OF_MEMORY failure.
func IsOutOfMemory(err error) bool {
	return Code(err) == ErrOutOfMemory
}
