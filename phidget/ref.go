package phidget

import (
	"sync/atomic"

	"github.com/Alia5/gophidget/phidget22"
)

// Ref is a borrowed view of a channel handle, produced for the duration of a
// single native callback. It carries no reference count: it must not be
// stored, and once the callback returns every operation on it fails with
// ErrClosed. To keep a device past the callback, Retain it into a Generic
// and hand that out (over a channel, for example) before returning.
type Ref struct {
	h     phidget22.Handle
	valid *atomic.Bool
}

// Borrow wraps a raw handle in a borrowed view bounded by a dynamic extent.
// The returned revoke function ends the extent; it is intended for callback
// bridges (the manager calls it right after the user handler returns).
func Borrow(h phidget22.Handle) (ref *Ref, revoke func()) {
	valid := &atomic.Bool{}
	valid.Store(true)
	return &Ref{h: h, valid: valid}, func() { valid.Store(false) }
}

func (r *Ref) guard() error {
	if !phidget22.Ready() {
		return ErrNotConfigured
	}
	if !r.valid.Load() {
		return ErrClosed
	}
	return nil
}

// Retain converts the borrowed view into an owned one by incrementing the
// native reference count. The resulting Generic is independent of the
// callback's extent and safe to move to another goroutine.
func (r *Ref) Retain() (*Generic, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	if err := Result(phidget22.Phidget_retain(r.h)); err != nil {
		return nil, err
	}
	return &Generic{Channel: NewChannel(r.h, phidget22.Phidget_release)}, nil
}

func (r *Ref) SerialNumber() (int32, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}
	return serialNumber(r.h)
}

func (r *Ref) ChannelIndex() (int32, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}
	return channelIndex(r.h)
}

func (r *Ref) HubPort() (int32, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}
	return hubPort(r.h)
}

func (r *Ref) DeviceClass() (DeviceClass, error) {
	if err := r.guard(); err != nil {
		return DeviceClassNothing, err
	}
	return deviceClass(r.h)
}

func (r *Ref) ChannelClass() (ChannelClass, error) {
	if err := r.guard(); err != nil {
		return ChannelClassNothing, err
	}
	return channelClass(r.h)
}

func (r *Ref) DeviceID() (DeviceID, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}
	return deviceID(r.h)
}

func (r *Ref) DeviceName() (string, error) {
	if err := r.guard(); err != nil {
		return "", err
	}
	return deviceName(r.h)
}

func (r *Ref) DeviceSKU() (string, error) {
	if err := r.guard(); err != nil {
		return "", err
	}
	return deviceSKU(r.h)
}

func (r *Ref) ChannelName() (string, error) {
	if err := r.guard(); err != nil {
		return "", err
	}
	return channelName(r.h)
}

func (r *Ref) Label() (string, error) {
	if err := r.guard(); err != nil {
		return "", err
	}
	return label(r.h)
}

var _ Metadata = (*Ref)(nil)

// Generic is an owned, class-agnostic view of a channel. It holds its own
// native reference, so it stays valid independently of the callback or
// channel object it was derived from; Release drops the reference (and the
// native object, if it was the last one).
type Generic struct {
	*Channel
}

var _ Phidget = (*Generic)(nil)
