package phidget22

import (
	"sync"

	"github.com/ebitengine/purego"
)

// The native library invokes event handlers on its own dispatch thread with
// the raw channel handle and a context pointer. We keep the registered Go
// handlers in per-event registries keyed by handle and hand the library one
// shared C trampoline per event shape; the trampoline looks the handler up
// again at fire time, so a cleared handler can never be called through a
// stale context pointer.

// Handler registries, one per event kind. A handle only ever appears in the
// registries matching its channel class.
var (
	chanAttachHandlers    sync.Map // Handle -> func(Handle)
	chanDetachHandlers    sync.Map // Handle -> func(Handle)
	mgrAttachHandlers     sync.Map // ManagerHandle -> func(Handle)
	mgrDetachHandlers     sync.Map // ManagerHandle -> func(Handle)
	temperatureHandlers   sync.Map // Handle -> func(Handle, float64)
	humidityHandlers      sync.Map
	pressureHandlers      sync.Map
	currentHandlers       sync.Map
	voltageHandlers       sync.Map
	voltageRatioHandlers  sync.Map
	positionHandlers      sync.Map
	velocityHandlers      sync.Map
	stoppedHandlers       sync.Map // Handle -> func(Handle)
	stateChangeHandlers   sync.Map // Handle -> func(Handle, bool)
)

// rawSetter is the ABI shape of every per-channel handler registration
// function: handle, C function pointer, context pointer.
type rawSetter func(h uintptr, fptr uintptr, ctx uintptr) Code

func voidTrampoline(reg *sync.Map) uintptr {
	return purego.NewCallback(func(h uintptr, _ uintptr) uintptr {
		if fn, ok := reg.Load(Handle(h)); ok {
			fn.(func(Handle))(Handle(h))
		}
		return 0
	})
}

func f64Trampoline(reg *sync.Map) uintptr {
	return purego.NewCallback(func(h uintptr, _ uintptr, v float64) uintptr {
		if fn, ok := reg.Load(Handle(h)); ok {
			fn.(func(Handle, float64))(Handle(h), v)
		}
		return 0
	})
}

func stateTrampoline(reg *sync.Map) uintptr {
	return purego.NewCallback(func(h uintptr, _ uintptr, state int32) uintptr {
		if fn, ok := reg.Load(Handle(h)); ok {
			fn.(func(Handle, bool))(Handle(h), state != 0)
		}
		return 0
	})
}

func managerTrampoline(reg *sync.Map) uintptr {
	return purego.NewCallback(func(m uintptr, _ uintptr, child uintptr) uintptr {
		if fn, ok := reg.Load(ManagerHandle(m)); ok {
			fn.(func(Handle))(Handle(child))
		}
		return 0
	})
}

func voidSetter(reg *sync.Map, raw rawSetter) func(Handle, func(Handle)) Code {
	tramp := voidTrampoline(reg)
	return func(h Handle, fn func(Handle)) Code {
		if fn == nil {
			reg.Delete(h)
			return raw(uintptr(h), 0, 0)
		}
		reg.Store(h, fn)
		return raw(uintptr(h), tramp, uintptr(h))
	}
}

func f64Setter(reg *sync.Map, raw rawSetter) func(Handle, func(Handle, float64)) Code {
	tramp := f64Trampoline(reg)
	return func(h Handle, fn func(Handle, float64)) Code {
		if fn == nil {
			reg.Delete(h)
			return raw(uintptr(h), 0, 0)
		}
		reg.Store(h, fn)
		return raw(uintptr(h), tramp, uintptr(h))
	}
}

func stateSetter(reg *sync.Map, raw rawSetter) func(Handle, func(Handle, bool)) Code {
	tramp := stateTrampoline(reg)
	return func(h Handle, fn func(Handle, bool)) Code {
		if fn == nil {
			reg.Delete(h)
			return raw(uintptr(h), 0, 0)
		}
		reg.Store(h, fn)
		return raw(uintptr(h), tramp, uintptr(h))
	}
}

func managerSetter(reg *sync.Map, raw rawSetter) func(ManagerHandle, func(Handle)) Code {
	tramp := managerTrampoline(reg)
	return func(m ManagerHandle, fn func(Handle)) Code {
		if fn == nil {
			reg.Delete(m)
			return raw(uintptr(m), 0, 0)
		}
		reg.Store(m, fn)
		return raw(uintptr(m), tramp, uintptr(m))
	}
}

// ForgetHandlers removes every registered handler for a channel handle.
// Called by the ownership layer on channel destruction so the registries do
// not pin dead closures. No-op for handles with nothing registered.
func ForgetHandlers(h Handle) {
	for _, reg := range []*sync.Map{
		&chanAttachHandlers, &chanDetachHandlers,
		&temperatureHandlers, &humidityHandlers, &pressureHandlers,
		&currentHandlers, &voltageHandlers, &voltageRatioHandlers,
		&positionHandlers, &velocityHandlers, &stoppedHandlers,
		&stateChangeHandlers,
	} {
		reg.Delete(h)
	}
}

// ForgetManagerHandlers is ForgetHandlers for manager handles.
func ForgetManagerHandlers(m ManagerHandle) {
	mgrAttachHandlers.Delete(m)
	mgrDetachHandlers.Delete(m)
}
