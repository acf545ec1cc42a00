// Package phidget22 holds the runtime binding to the vendor phidget22
// shared library.
//
// The declarations mirror the names of the C header (Phidget_open,
// PhidgetManager_create, ...) but carry Go-native signatures: out-parameters
// become return values, C strings become Go strings and callback
// registration takes plain Go functions. Load wires every declaration to the
// real library through purego; until then (or when a test installs a
// substitute table) the function variables are nil and Ready reports false.
//
// Nothing in this package interprets return codes; callers receive the raw
// Code and map it themselves.
package phidget22

// Handle is an opaque reference to a native Phidget channel. Its lifetime is
// governed entirely by the library's internal retain count; the wrapper
// layers above only ever call Phidget_retain and Phidget_release, never a
// raw free.
type Handle uintptr

// ManagerHandle is an opaque reference to a native Phidget manager.
type ManagerHandle uintptr

// Code is a raw return code from the native library. Zero means success.
type Code uint32

// CodeOK is the native success code.
const CodeOK Code = 0

// Open-channel addressing wildcards and timeouts, from phidget22.h.
const (
	SerialNumberAny  int32  = -1
	ChannelAny       int32  = -1
	HubPortAny       int32  = -1
	LabelAny         string = ""
	TimeoutInfinite  uint32 = 0
	TimeoutDefault   uint32 = 2500
	HubPortSpeedAuto uint32 = 0
)

// Ready reports whether the native function table has been populated, either
// by Load or by a test-installed substitute.
func Ready() bool {
	return Phidget_open != nil
}
