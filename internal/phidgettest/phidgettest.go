// Package phidgettest provides an in-process stand-in for the native
// phidget22 library. Install wires a simulator into the phidget22 function
// table; a dedicated dispatch goroutine plays the role of the native event
// thread, so handler threading behaves like the real library.
package phidgettest

import (
	"sync"
	"testing"

	"github.com/Alia5/gophidget/phidget22"
)

const (
	codeOK            phidget22.Code = 0
	codeTimeout       phidget22.Code = 3
	codeInvalidArg    phidget22.Code = 21
	codeNotAttached   phidget22.Code = 52
	codeClosed        phidget22.Code = 56
	codeNotConfigured phidget22.Code = 57
)

// Device describes a simulated piece of hardware. Props holds the live
// sensor and actuator values keyed by property name ("temperature",
// "dutyCycle", "state").
type Device struct {
	Serial       int32
	Channel      int32
	HubPort      int32
	Label        string
	Name         string
	SKU          string
	ChannelName  string
	DeviceClass  uint32
	ChannelClass uint32
	DeviceID     int32
	Props        map[string]float64
}

// object is one native channel handle. refs mirrors the native reference
// count; the object disappears when it reaches zero.
type object struct {
	refs int
	dev  *Device // nil while unmatched

	cls           uint32 // channel class requested at create, 0 for manager refs
	serialFilter  int32
	channelFilter int32
	hubPortFilter int32
	open          bool

	attachFn  func(phidget22.Handle)
	detachFn  func(phidget22.Handle)
	stoppedFn func(phidget22.Handle)
	f64Fns    map[string]func(phidget22.Handle, float64)
	boolFns   map[string]func(phidget22.Handle, bool)
}

type managerObj struct {
	open   bool
	attach func(phidget22.Handle)
	detach func(phidget22.Handle)
}

// Sim is the simulator behind an installed fake function table. All
// exported methods are safe for concurrent use.
type Sim struct {
	mu         sync.Mutex
	nextHandle uintptr
	objects    map[phidget22.Handle]*object
	devices    map[int32]*Device
	managers   map[phidget22.ManagerHandle]*managerObj

	serversRef map[string]*ServerRec
	discovery  bool

	evMu   sync.Mutex
	evCond *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
}

// Install wires a fresh simulator into the phidget22 function table and
// registers cleanup that tears it down again, so tests stay isolated.
func Install(t *testing.T) *Sim {
	t.Helper()
	s := &Sim{
		nextHandle: 1,
		objects:    map[phidget22.Handle]*object{},
		devices:    map[int32]*Device{},
		managers:   map[phidget22.ManagerHandle]*managerObj{},
		done:       make(chan struct{}),
	}
	s.evCond = sync.NewCond(&s.evMu)
	go s.dispatch()
	s.install()
	t.Cleanup(func() {
		uninstall()
		s.evMu.Lock()
		s.closed = true
		s.evCond.Signal()
		s.evMu.Unlock()
		<-s.done
	})
	return s
}

// dispatch is the simulated native event thread. Handlers run here, one at
// a time, never on the goroutine that triggered them.
func (s *Sim) dispatch() {
	defer close(s.done)
	for {
		s.evMu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.evCond.Wait()
		}
		if len(s.queue) == 0 {
			s.evMu.Unlock()
			return
		}
		fn := s.queue[0]
		s.queue = s.queue[1:]
		s.evMu.Unlock()
		fn()
	}
}

// post never blocks, so it is safe to call with the state lock held.
func (s *Sim) post(fn func()) {
	s.evMu.Lock()
	s.queue = append(s.queue, fn)
	s.evCond.Signal()
	s.evMu.Unlock()
}

// Flush blocks until every event queued so far has been delivered.
func (s *Sim) Flush() {
	donech := make(chan struct{})
	s.post(func() { close(donech) })
	<-donech
}

// AttachDevice makes a device appear on the simulated bus: open managers
// get an attach event and matching open channels attach.
func (s *Sim) AttachDevice(d *Device) {
	if d.Props == nil {
		d.Props = map[string]float64{}
	}
	s.mu.Lock()
	s.devices[d.Serial] = d
	for _, m := range s.managers {
		if m.open && m.attach != nil {
			s.postManagerEvent(d, m.attach)
		}
	}
	for h, o := range s.objects {
		if o.cls != 0 && o.open && o.dev == nil && s.matchesLocked(o, d) {
			o.dev = d
			if o.attachFn != nil {
				h, fn := h, o.attachFn
				s.post(func() { fn(h) })
			}
		}
	}
	s.mu.Unlock()
}

// DetachDevice removes a device from the simulated bus: attached channels
// lose their device and get a detach event, open managers get a detach
// event.
func (s *Sim) DetachDevice(serial int32) {
	s.mu.Lock()
	d, ok := s.devices[serial]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.devices, serial)
	for h, o := range s.objects {
		if o.dev == d {
			o.dev = nil
			if o.detachFn != nil {
				h, fn := h, o.detachFn
				s.post(func() { fn(h) })
			}
		}
	}
	for _, m := range s.managers {
		if m.open && m.detach != nil {
			s.postManagerEvent(d, m.detach)
		}
	}
	s.mu.Unlock()
}

// PushValue updates a device property and delivers a change event to every
// attached channel with a handler registered under that property.
func (s *Sim) PushValue(serial int32, prop string, v float64) {
	s.mu.Lock()
	d, ok := s.devices[serial]
	if !ok {
		s.mu.Unlock()
		return
	}
	d.Props[prop] = v
	for h, o := range s.objects {
		if o.dev != d {
			continue
		}
		if fn := o.f64Fns[prop]; fn != nil {
			h, fn := h, fn
			s.post(func() { fn(h, v) })
		}
		if fn := o.boolFns[prop]; fn != nil {
			h, fn := h, fn
			s.post(func() { fn(h, v != 0) })
		}
	}
	s.mu.Unlock()
}

// Refs reports the simulated native reference count of a handle, 0 once it
// has been destroyed.
func (s *Sim) Refs(h phidget22.Handle) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.objects[h]
	if !ok {
		return 0
	}
	return o.refs
}

// LiveObjects reports how many native channel objects currently exist.
func (s *Sim) LiveObjects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// postManagerEvent hands the device to a manager handler the way the
// native library does: a fresh reference the manager drops again after the
// handler returns, unless the handler retained it.
func (s *Sim) postManagerEvent(d *Device, fn func(phidget22.Handle)) {
	h := s.newObjectLocked(&object{refs: 1, dev: d})
	s.post(func() {
		fn(h)
		s.mu.Lock()
		s.dropLocked(h)
		s.mu.Unlock()
	})
}

func (s *Sim) newObjectLocked(o *object) phidget22.Handle {
	h := phidget22.Handle(s.nextHandle)
	s.nextHandle++
	if o.f64Fns == nil {
		o.f64Fns = map[string]func(phidget22.Handle, float64){}
	}
	if o.boolFns == nil {
		o.boolFns = map[string]func(phidget22.Handle, bool){}
	}
	s.objects[h] = o
	return h
}

func (s *Sim) dropLocked(h phidget22.Handle) {
	o, ok := s.objects[h]
	if !ok {
		return
	}
	o.refs--
	if o.refs <= 0 {
		delete(s.objects, h)
	}
}

func (s *Sim) matchesLocked(o *object, d *Device) bool {
	if o.cls != d.ChannelClass {
		return false
	}
	if o.serialFilter != -1 && o.serialFilter != d.Serial {
		return false
	}
	if o.channelFilter != -1 && o.channelFilter != d.Channel {
		return false
	}
	if o.hubPortFilter != -1 && o.hubPortFilter != d.HubPort {
		return false
	}
	return true
}

func (s *Sim) create(cls uint32) func(*phidget22.Handle) phidget22.Code {
	return func(h *phidget22.Handle) phidget22.Code {
		s.mu.Lock()
		*h = s.newObjectLocked(&object{
			refs:          1,
			cls:           cls,
			serialFilter:  -1,
			channelFilter: -1,
			hubPortFilter: -1,
		})
		s.mu.Unlock()
		return codeOK
	}
}

func (s *Sim) release(h *phidget22.Handle) phidget22.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[*h]; !ok {
		return codeClosed
	}
	s.dropLocked(*h)
	return codeOK
}

func (s *Sim) get(h phidget22.Handle) (*object, phidget22.Code) {
	o, ok := s.objects[h]
	if !ok {
		return nil, codeClosed
	}
	return o, codeOK
}

func (s *Sim) attached(h phidget22.Handle) (*object, phidget22.Code) {
	o, code := s.get(h)
	if code != codeOK {
		return nil, code
	}
	if o.dev == nil {
		return nil, codeNotAttached
	}
	return o, codeOK
}

func (s *Sim) tryMatchLocked(o *object) {
	if o.dev != nil {
		return
	}
	for _, d := range s.devices {
		if s.matchesLocked(o, d) {
			o.dev = d
			return
		}
	}
}
