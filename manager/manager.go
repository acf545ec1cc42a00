// Package manager surfaces the library's process-wide hotplug notifications.
// A started Manager receives an attach/detach event for every channel of
// every device class, in native dispatch order.
package manager

import (
	"sync"

	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// AttachHandler receives a borrowed view of the arriving or departing
// channel. It runs synchronously on the native event thread: it must not
// block, and the Ref dies when it returns. Retain the Ref into an owned view
// before returning if the device must outlive the callback.
type AttachHandler func(*phidget.Ref)

type state int

const (
	created state = iota
	started
	stopped
)

// Manager is a single hotplug subscription. The lifecycle is
// Created -> Started -> Stopped; Stopped is terminal, a new Manager is
// needed to subscribe again. All methods are safe for concurrent use.
type Manager struct {
	mu    sync.Mutex
	m     phidget22.ManagerHandle
	state state
}

// New allocates a manager. No events are delivered until Start.
func New() (*Manager, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var m phidget22.ManagerHandle
	if err := phidget.Result(phidget22.PhidgetManager_create(&m)); err != nil {
		return nil, err
	}
	return &Manager{m: m}, nil
}

// Start registers the handlers and opens the native manager, beginning
// event dispatch. The attach handler immediately receives one event per
// already-attached channel. Either handler may be nil. Starting twice, or
// starting after Stop, fails with ErrDuplicate / ErrClosed.
func (mg *Manager) Start(onAttach, onDetach AttachHandler) error {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	switch mg.state {
	case started:
		return phidget.ErrDuplicate
	case stopped:
		return phidget.ErrClosed
	}

	if err := phidget.Result(phidget22.PhidgetManager_setOnAttachHandler(mg.m, bridge(onAttach))); err != nil {
		return err
	}
	if err := phidget.Result(phidget22.PhidgetManager_setOnDetachHandler(mg.m, bridge(onDetach))); err != nil {
		return err
	}
	if err := phidget.Result(phidget22.PhidgetManager_open(mg.m)); err != nil {
		return err
	}
	mg.state = started
	return nil
}

// bridge wraps a handler so the raw handle only ever reaches user code as a
// borrowed Ref whose validity ends when the handler returns.
func bridge(fn AttachHandler) func(phidget22.Handle) {
	if fn == nil {
		return nil
	}
	return func(h phidget22.Handle) {
		ref, revoke := phidget.Borrow(h)
		defer revoke()
		fn(ref)
	}
}

// Stop unsubscribes. No events are delivered after Stop returns, though a
// handler already in progress on the event thread runs to completion. Safe
// to call in any state, including repeatedly; the Manager is unusable
// afterwards.
func (mg *Manager) Stop() error {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	if mg.state == stopped {
		return nil
	}
	wasStarted := mg.state == started
	mg.state = stopped

	var err error
	if wasStarted {
		err = phidget.Result(phidget22.PhidgetManager_close(mg.m))
	}
	// Clearing the handlers before delete keeps a racing native event from
	// reaching a dead subscription.
	phidget22.PhidgetManager_setOnAttachHandler(mg.m, nil)
	phidget22.PhidgetManager_setOnDetachHandler(mg.m, nil)
	phidget22.ForgetManagerHandlers(mg.m)
	m := mg.m
	phidget22.PhidgetManager_delete(&m)
	return err
}

// Close releases the manager. Alias for Stop so a Manager can sit behind an
// io.Closer.
func (mg *Manager) Close() error { return mg.Stop() }
