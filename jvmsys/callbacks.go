//go:build !ios && !android && (amd64 || arm64)

package jvmsys

// EventCallbacksTable is the fixed-layout jvmtiEventCallbacks struct: one
// function-pointer slot per event number from MinEventTypeVal through
// MaxEventTypeVal, reserved slots included. Slots left at zero are null
// function pointers, which the VM tolerates for un-enabled events.
type EventCallbacksTable [NumEventSlots]uintptr

// NumEventSlots is the number of function-pointer slots in the table.
const NumEventSlots = int(MaxEventTypeVal-MinEventTypeVal) + 1

// TableByteSize is the size_of_callbacks argument to SetEventCallbacks.
const TableByteSize = NumEventSlots * int(ptrSize)

// Set wires fn into the slot for the given event number.
func (t *EventCallbacksTable) Set(event int32, fn uintptr) {
	t[event-MinEventTypeVal] = fn
}

// Slot returns the function pointer wired for the given event number.
func (t *EventCallbacksTable) Slot(event int32) uintptr {
	return t[event-MinEventTypeVal]
}
