//go:build !ios && !android && (amd64 || arm64)

package jvmsys

// jvmtiError codes. Values are fixed by the JVM TI specification (JDK 21
// jvmti.h) and translation is a direct reinterpretation of the native code.
const (
	ErrNone int32 = 0

	// Function-specific agent errors
	ErrInvalidThread      int32 = 10
	ErrInvalidThreadGroup int32 = 11
	ErrInvalidPriority    int32 = 12
	ErrThreadNotSuspended int32 = 13
	ErrThreadSuspended    int32 = 14
	ErrThreadNotAlive     int32 = 15
	ErrInvalidObject      int32 = 20
	ErrInvalidClass       int32 = 21
	ErrClassNotPrepared   int32 = 22
	ErrInvalidMethodID    int32 = 23
	ErrInvalidLocation    int32 = 24
	ErrInvalidFieldID     int32 = 25
	ErrInvalidModule      int32 = 26
	ErrNoMoreFrames       int32 = 31
	ErrOpaqueFrame        int32 = 32
	ErrTypeMismatch       int32 = 34
	ErrInvalidSlot        int32 = 35
	ErrDuplicate          int32 = 40
	ErrNotFound           int32 = 41
	ErrInvalidMonitor     int32 = 50
	ErrNotMonitorOwner    int32 = 51
	ErrInterrupt          int32 = 52

	// Class redefinition errors
	ErrInvalidClassFormat                            int32 = 60
	ErrCircularClassDefinition                       int32 = 61
	ErrFailsVerification                             int32 = 62
	ErrUnsupportedRedefinitionMethodAdded            int32 = 63
	ErrUnsupportedRedefinitionSchemaChanged          int32 = 64
	ErrInvalidTypestate                              int32 = 65
	ErrUnsupportedRedefinitionHierarchyChanged       int32 = 66
	ErrUnsupportedRedefinitionMethodDeleted          int32 = 67
	ErrUnsupportedVersion                            int32 = 68
	ErrNamesDontMatch                                int32 = 69
	ErrUnsupportedRedefinitionClassModifiersChanged  int32 = 70
	ErrUnsupportedRedefinitionMethodModifiersChanged int32 = 71
	ErrUnsupportedRedefinitionClassAttributeChanged  int32 = 72
	ErrUnsupportedOperation                          int32 = 73

	ErrUnmodifiableClass  int32 = 79
	ErrUnmodifiableModule int32 = 80

	// Universal errors
	ErrNotAvailable           int32 = 98
	ErrMustPossessCapability  int32 = 99
	ErrNullPointer            int32 = 100
	ErrAbsentInformation      int32 = 101
	ErrInvalidEventType       int32 = 102
	ErrIllegalArgument        int32 = 103
	ErrNativeMethod           int32 = 104
	ErrClassLoaderUnsupported int32 = 106
	ErrOutOfMemory            int32 = 110
	ErrAccessDenied           int32 = 111
	ErrWrongPhase             int32 = 112
	ErrInternal               int32 = 113
	ErrUnattachedThread       int32 = 115
	ErrInvalidEnvironment     int32 = 116
)

// jvmtiEvent numbers. The callback table is a dense struct of function
// pointers indexed by event number starting at MinEventTypeVal.
const (
	MinEventTypeVal int32 = 50
	MaxEventTypeVal int32 = 88

	EventVMInit                  int32 = 50
	EventVMDeath                 int32 = 51
	EventThreadStart             int32 = 52
	EventThreadEnd               int32 = 53
	EventClassFileLoadHook       int32 = 54
	EventClassLoad               int32 = 55
	EventClassPrepare            int32 = 56
	EventVMStart                 int32 = 57
	EventException               int32 = 58
	EventExceptionCatch          int32 = 59
	EventSingleStep              int32 = 60
	EventFramePop                int32 = 61
	EventBreakpoint              int32 = 62
	EventFieldAccess             int32 = 63
	EventFieldModification       int32 = 64
	EventMethodEntry             int32 = 65
	EventMethodExit              int32 = 66
	EventNativeMethodBind        int32 = 67
	EventCompiledMethodLoad      int32 = 68
	EventCompiledMethodUnload    int32 = 69
	EventDynamicCodeGenerated    int32 = 70
	EventDataDumpRequest         int32 = 71
	EventMonitorWait             int32 = 73
	EventMonitorWaited           int32 = 74
	EventMonitorContendedEnter   int32 = 75
	EventMonitorContendedEntered int32 = 76
	EventResourceExhausted       int32 = 80
	EventGarbageCollectionStart  int32 = 81
	EventGarbageCollectionFinish int32 = 82
	EventObjectFree              int32 = 83
	EventVMObjectAlloc           int32 = 84
	EventSampledObjectAlloc      int32 = 86
	EventVirtualThreadStart      int32 = 87
	EventVirtualThreadEnd        int32 = 88
)

// jvmtiEventMode values for SetEventNotificationMode.
const (
	EventEnable  int32 = 1
	EventDisable int32 = 0
)

// jvmtiPhase values.
const (
	PhaseOnLoad     int32 = 1
	PhasePrimordial int32 = 2
	PhaseStart      int32 = 6
	PhaseLive       int32 = 4
	PhaseDead       int32 = 8
)

// jvmtiVerboseFlag values.
const (
	VerboseOther int32 = 0
	VerboseGC    int32 = 1
	VerboseClass int32 = 2
	VerboseJNI   int32 = 4
)

// jvmtiJlocationFormat values.
const (
	JLocationJVMBCI    int32 = 1
	JLocationMachinePC int32 = 2
	JLocationOther     int32 = 0
)

// JNI return codes, as produced by JavaVM->GetEnv.
const (
	JNIOk        int32 = 0
	JNIErr       int32 = -1
	JNIEDetached int32 = -2
	JNIEVersion  int32 = -3
	JNIENomem    int32 = -4
	JNIEExist    int32 = -5
	JNIEInval    int32 = -6
)

// Version number encoding. A JVM TI version packs the interface type and the
// major/minor/micro components into a single jint.
const (
	VersionInterfaceJVMTI    uint32 = 0x30000000
	VersionMaskInterfaceType uint32 = 0x70000000
	VersionMaskMajor         uint32 = 0x0FFF0000
	VersionMaskMinor         uint32 = 0x0000FF00
	VersionMaskMicro         uint32 = 0x000000FF
	VersionShiftMajor               = 16
	VersionShiftMinor               = 8
	VersionShiftMicro               = 0
)

// jvmtiEnv function table positions, as documented per function in the JVM TI
// specification. The struct slot for position n is n-1.
const (
	fnSetEventNotificationMode    = 2
	fnGetThreadInfo               = 9
	fnGetThreadGroupInfo          = 14
	fnAllocate                    = 46
	fnDeallocate                  = 47
	fnGetClassSignature           = 48
	fnGetLoadedClasses            = 78
	fnGetVersionNumber            = 88
	fnSetEventCallbacks           = 122
	fnDisposeEnvironment          = 127
	fnGetJLocationFormat          = 129
	fnGetPhase                    = 133
	fnGetEnvironmentLocalStorage  = 147
	fnSetEnvironmentLocalStorage  = 148
	fnSetVerboseFlag              = 150
)

// JNIInvokeInterface slot of GetEnv (zero-based; slots 0-2 are reserved,
// 3 DestroyJavaVM, 4 AttachCurrentThread, 5 DetachCurrentThread).
const vmSlotGetEnv = 6
