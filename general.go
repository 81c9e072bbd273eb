//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import (
	"fmt"

	"github.com/okonech/jvmtigo/jvmsys"
)

// Phase is the VM's coarse lifecycle stage. It gates which JVM TI operations
// and events are valid.
type Phase int32

const (
	// PhaseOnLoad is in effect while inside Agent_OnLoad.
	PhaseOnLoad Phase = Phase(jvmsys.PhaseOnLoad)
	// PhasePrimordial lies between Agent_OnLoad returning and VMStart.
	PhasePrimordial Phase = Phase(jvmsys.PhasePrimordial)
	// PhaseStart lies between the VMStart and VMInit events.
	PhaseStart Phase = Phase(jvmsys.PhaseStart)
	// PhaseLive lies between the VMInit event and VMDeath returning.
	PhaseLive Phase = Phase(jvmsys.PhaseLive)
	// PhaseDead follows VMDeath or start-up failure.
	PhaseDead Phase = Phase(jvmsys.PhaseDead)
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseOnLoad:
		return "onload"
	case PhasePrimordial:
		return "primordial"
	case PhaseStart:
		return "start"
	case PhaseLive:
		return "live"
	case PhaseDead:
		return "dead"
	}
	return fmt.Sprintf("phase(%d)", int32(p))
}

// VerboseFlag selects a verbose output category for SetVerboseFlag.
type VerboseFlag int32

const (
	// VerboseOther covers verbose output besides the named categories.
	VerboseOther VerboseFlag = VerboseFlag(jvmsys.VerboseOther)
	// VerboseGC matches -verbose:gc output.
	VerboseGC VerboseFlag = VerboseFlag(jvmsys.VerboseGC)
	// VerboseClass matches -verbose:class output.
	VerboseClass VerboseFlag = VerboseFlag(jvmsys.VerboseClass)
	// VerboseJNI matches -verbose:jni output.
	VerboseJNI VerboseFlag = VerboseFlag(jvmsys.VerboseJNI)
)

// String returns the category name.
func (f VerboseFlag) String() string {
	switch f {
	case VerboseOther:
		return "other"
	case VerboseGC:
		return "gc"
	case VerboseClass:
		return "class"
	case VerboseJNI:
		return "jni"
	}
	return fmt.Sprintf("verbose(%d)", int32(f))
}

// LocationFormat describes how the VM encodes jlocation values.
type LocationFormat int32

const (
	// LocationJVMBCI means locations are bytecode indices.
	LocationJVMBCI LocationFormat = LocationFormat(jvmsys.JLocationJVMBCI)
	// LocationMachinePC means locations are native program counters.
	LocationMachinePC LocationFormat = LocationFormat(jvmsys.JLocationMachinePC)
	// LocationOther means some other representation.
	LocationOther LocationFormat = LocationFormat(jvmsys.JLocationOther)
)

// String returns the format name.
func (f LocationFormat) String() string {
	switch f {
	case LocationJVMBCI:
		return "jvmbci"
	case LocationMachinePC:
		return "machinepc"
	case LocationOther:
		return "other"
	}
	return fmt.Sprintf("jlocation(%d)", int32(f))
}
