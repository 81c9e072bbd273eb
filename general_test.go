//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import "testing"

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p    Phase
		want string
	}{
		{PhaseOnLoad, "onload"},
		{PhasePrimordial, "primordial"},
		{PhaseStart, "start"},
		{PhaseLive, "live"},
		{PhaseDead, "dead"},
		{Phase(99), "phase(99)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int32(tt.p), got, tt.want)
		}
	}
}

func TestVerboseFlagString(t *testing.T) {
	tests := []struct {
		f    VerboseFlag
		want string
	}{
		{VerboseOther, "other"},
		{VerboseGC, "gc"},
		{VerboseClass, "class"},
		{VerboseJNI, "jni"},
		{VerboseFlag(9), "verbose(9)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("VerboseFlag(%d).String() = %q, want %q", int32(tt.f), got, tt.want)
		}
	}
}

func TestLocationFormatString(t *testing.T) {
	tests := []struct {
		f    LocationFormat
		want string
	}{
		{LocationJVMBCI, "jvmbci"},
		{LocationMachinePC, "machinepc"},
		{LocationOther, "other"},
		{LocationFormat(7), "jlocation(7)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("LocationFormat(%d).String() = %q, want %q", int32(tt.f), got, tt.want)
		}
	}
}

func TestEventKindString(t *testing.T) {
	if got := EventThreadStart.String(); got != "ThreadStart" {
		t.Errorf("EventThreadStart.String() = %q", got)
	}
	if got := EventClassFileLoadHook.String(); got != "ClassFileLoadHook" {
		t.Errorf("EventClassFileLoadHook.String() = %q", got)
	}
	if got := EventKind(72).String(); got != "event(72)" {
		t.Errorf("EventKind(72).String() = %q", got)
	}
}
