package phidget

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Alia5/gophidget/phidget22"
)

// Metadata is the identity surface shared by every view of a channel,
// borrowed or owned. Every query is a synchronous round-trip into the
// native library and fails with ErrNotAttached while the device is absent.
type Metadata interface {
	SerialNumber() (int32, error)
	ChannelIndex() (int32, error)
	HubPort() (int32, error)
	DeviceClass() (DeviceClass, error)
	ChannelClass() (ChannelClass, error)
	DeviceID() (DeviceID, error)
	DeviceName() (string, error)
	DeviceSKU() (string, error)
	ChannelName() (string, error)
	Label() (string, error)
}

// Phidget is the capability interface implemented by every concrete device
// type. It covers lifecycle, addressing and identity; device-specific
// operations live on the concrete types.
//
// Attach/detach handlers run on the native library's event thread and must
// not block. Registering a handler replaces any previous one; a nil handler
// clears it.
type Phidget interface {
	Metadata

	HandleRef() phidget22.Handle

	Open() error
	OpenWait(timeout time.Duration) error
	Close() error
	IsOpen() (bool, error)
	IsAttached() (bool, error)

	SetSerialNumber(serial int32) error
	SetChannel(channel int32) error
	SetHubPort(port int32) error
	SetIsHubPortDevice(on bool) error
	SetIsLocal(on bool) error
	SetIsRemote(on bool) error
	SetLabel(label string) error

	SetOnAttachHandler(fn func()) error
	SetOnDetachHandler(fn func()) error
}

// Channel is the embeddable base implementing Phidget over a native handle.
// Concrete device types embed *Channel and add their class-specific
// operations; Generic wraps one around a retained handle.
//
// A Channel owns exactly one reference on the native object. Release drops
// it; after Release every operation fails with ErrClosed.
type Channel struct {
	h        phidget22.Handle
	del      func(*phidget22.Handle) phidget22.Code
	released atomic.Bool
	closeMu  sync.Mutex
}

// NewChannel wraps a native handle whose single reference the caller hands
// over. del is the class-specific destructor invoked by Release (for device
// channels the class delete function, for retained generics
// Phidget_release).
func NewChannel(h phidget22.Handle, del func(*phidget22.Handle) phidget22.Code) *Channel {
	return &Channel{h: h, del: del}
}

// Alive reports whether this view is still usable: nil, or ErrClosed after
// Release, or ErrNotConfigured when the native library is not loaded.
// Device packages call it before every native operation.
func (c *Channel) Alive() error {
	if !phidget22.Ready() {
		return ErrNotConfigured
	}
	if c.released.Load() {
		return ErrClosed
	}
	return nil
}

// HandleRef exposes the raw native handle for passing back into the binding
// layer. The handle is only valid while this Channel is; callers must not
// store it.
func (c *Channel) HandleRef() phidget22.Handle { return c.h }

// Open begins communicating with the addressed device. It returns
// immediately; attachment happens asynchronously (watch with
// SetOnAttachHandler or use OpenWait).
func (c *Channel) Open() error {
	if err := c.Alive(); err != nil {
		return err
	}
	return Result(phidget22.Phidget_open(c.h))
}

// OpenWait opens the channel and blocks until the device attaches or the
// timeout elapses (ErrTimeout). A zero timeout waits forever.
func (c *Channel) OpenWait(timeout time.Duration) error {
	if err := c.Alive(); err != nil {
		return err
	}
	ms := uint32(timeout.Milliseconds())
	return Result(phidget22.Phidget_openWaitForAttachment(c.h, ms))
}

// Close stops communicating with the device. Closing an already-closed
// channel is not an error.
func (c *Channel) Close() error {
	if c.released.Load() {
		return nil
	}
	if !phidget22.Ready() {
		return ErrNotConfigured
	}
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	switch err := Result(phidget22.Phidget_close(c.h)); err {
	case nil, ErrClosed, ErrNotAttached:
		return nil
	default:
		return err
	}
}

// Release closes the channel and drops this view's reference on the native
// object. Idempotent and deliberately infallible: destruction must not fail,
// so native errors on the way down are logged at debug level and discarded.
// Every later operation on the Channel fails with ErrClosed.
func (c *Channel) Release() {
	if c.released.Swap(true) {
		return
	}
	if !phidget22.Ready() {
		return
	}
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if code := phidget22.Phidget_close(c.h); code != phidget22.CodeOK {
		slog.Debug("phidget: close during release", "code", uint32(code))
	}
	phidget22.ForgetHandlers(c.h)
	if c.del != nil {
		h := c.h
		if code := c.del(&h); code != phidget22.CodeOK {
			slog.Debug("phidget: native release failed", "code", uint32(code))
		}
	}
}

// IsOpen reports whether the channel is currently open.
func (c *Channel) IsOpen() (bool, error) {
	if err := c.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.Phidget_getIsOpen(c.h)
	return v, Result(code)
}

// IsAttached reports whether the addressed device is currently present.
func (c *Channel) IsAttached() (bool, error) {
	if err := c.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.Phidget_getAttached(c.h)
	return v, Result(code)
}

func (c *Channel) SerialNumber() (int32, error) {
	if err := c.Alive(); err != nil {
		return 0, err
	}
	return serialNumber(c.h)
}

// SetSerialNumber restricts which device this channel will attach to. Only
// meaningful before Open; SerialNumberAny (the default) matches any device.
func (c *Channel) SetSerialNumber(serial int32) error {
	if err := c.Alive(); err != nil {
		return err
	}
	return Result(phidget22.Phidget_setDeviceSerialNumber(c.h, serial))
}

// ChannelIndex returns the channel index on the attached device. The method
// is not named Channel so that types embedding *Channel still satisfy
// Metadata by promotion.
func (c *Channel) ChannelIndex() (int32, error) {
	if err := c.Alive(); err != nil {
		return 0, err
	}
	return channelIndex(c.h)
}

func (c *Channel) SetChannel(channel int32) error {
	if err := c.Alive(); err != nil {
		return err
	}
	return Result(phidget22.Phidget_setChannel(c.h, channel))
}

func (c *Channel) HubPort() (int32, error) {
	if err := c.Alive(); err != nil {
		return 0, err
	}
	return hubPort(c.h)
}

func (c *Channel) SetHubPort(port int32) error {
	if err := c.Alive(); err != nil {
		return err
	}
	return Result(phidget22.Phidget_setHubPort(c.h, port))
}

func (c *Channel) IsHubPortDevice() (bool, error) {
	if err := c.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.Phidget_getIsHubPortDevice(c.h)
	return v, Result(code)
}

func (c *Channel) SetIsHubPortDevice(on bool) error {
	if err := c.Alive(); err != nil {
		return err
	}
	return Result(phidget22.Phidget_setIsHubPortDevice(c.h, on))
}

func (c *Channel) IsLocal() (bool, error) {
	if err := c.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.Phidget_getIsLocal(c.h)
	return v, Result(code)
}

func (c *Channel) SetIsLocal(on bool) error {
	if err := c.Alive(); err != nil {
		return err
	}
	return Result(phidget22.Phidget_setIsLocal(c.h, on))
}

func (c *Channel) IsRemote() (bool, error) {
	if err := c.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.Phidget_getIsRemote(c.h)
	return v, Result(code)
}

func (c *Channel) SetIsRemote(on bool) error {
	if err := c.Alive(); err != nil {
		return err
	}
	return Result(phidget22.Phidget_setIsRemote(c.h, on))
}

func (c *Channel) DeviceClass() (DeviceClass, error) {
	if err := c.Alive(); err != nil {
		return DeviceClassNothing, err
	}
	return deviceClass(c.h)
}

func (c *Channel) ChannelClass() (ChannelClass, error) {
	if err := c.Alive(); err != nil {
		return ChannelClassNothing, err
	}
	return channelClass(c.h)
}

func (c *Channel) DeviceID() (DeviceID, error) {
	if err := c.Alive(); err != nil {
		return 0, err
	}
	return deviceID(c.h)
}

func (c *Channel) DeviceName() (string, error) {
	if err := c.Alive(); err != nil {
		return "", err
	}
	return deviceName(c.h)
}

func (c *Channel) DeviceSKU() (string, error) {
	if err := c.Alive(); err != nil {
		return "", err
	}
	return deviceSKU(c.h)
}

func (c *Channel) ChannelName() (string, error) {
	if err := c.Alive(); err != nil {
		return "", err
	}
	return channelName(c.h)
}

func (c *Channel) Label() (string, error) {
	if err := c.Alive(); err != nil {
		return "", err
	}
	return label(c.h)
}

// SetLabel writes the label to device flash; it persists across detaches.
func (c *Channel) SetLabel(value string) error {
	if err := c.Alive(); err != nil {
		return err
	}
	return Result(phidget22.Phidget_setDeviceLabel(c.h, value))
}

// SetOnAttachHandler registers fn to run when this channel's device
// attaches. fn runs on the native event thread and must not block; nil
// clears the handler.
func (c *Channel) SetOnAttachHandler(fn func()) error {
	if err := c.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return Result(phidget22.Phidget_setOnAttachHandler(c.h, nil))
	}
	return Result(phidget22.Phidget_setOnAttachHandler(c.h, func(phidget22.Handle) { fn() }))
}

// SetOnDetachHandler registers fn to run when this channel's device
// detaches. Same threading rules as SetOnAttachHandler.
func (c *Channel) SetOnDetachHandler(fn func()) error {
	if err := c.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return Result(phidget22.Phidget_setOnDetachHandler(c.h, nil))
	}
	return Result(phidget22.Phidget_setOnDetachHandler(c.h, func(phidget22.Handle) { fn() }))
}

var _ Phidget = (*Channel)(nil)

// Shared metadata plumbing used by both Channel and Ref.

func serialNumber(h phidget22.Handle) (int32, error) {
	v, code := phidget22.Phidget_getDeviceSerialNumber(h)
	return v, Result(code)
}

func channelIndex(h phidget22.Handle) (int32, error) {
	v, code := phidget22.Phidget_getChannel(h)
	return v, Result(code)
}

func hubPort(h phidget22.Handle) (int32, error) {
	v, code := phidget22.Phidget_getHubPort(h)
	return v, Result(code)
}

func deviceClass(h phidget22.Handle) (DeviceClass, error) {
	v, code := phidget22.Phidget_getDeviceClass(h)
	return DeviceClass(v), Result(code)
}

func channelClass(h phidget22.Handle) (ChannelClass, error) {
	v, code := phidget22.Phidget_getChannelClass(h)
	return ChannelClass(v), Result(code)
}

func deviceID(h phidget22.Handle) (DeviceID, error) {
	v, code := phidget22.Phidget_getDeviceID(h)
	return DeviceID(v), Result(code)
}

func deviceName(h phidget22.Handle) (string, error) {
	v, code := phidget22.Phidget_getDeviceName(h)
	return v, Result(code)
}

func deviceSKU(h phidget22.Handle) (string, error) {
	v, code := phidget22.Phidget_getDeviceSKU(h)
	return v, Result(code)
}

func channelName(h phidget22.Handle) (string, error) {
	v, code := phidget22.Phidget_getChannelName(h)
	return v, Result(code)
}

func label(h phidget22.Handle) (string, error) {
	v, code := phidget22.Phidget_getDeviceLabel(h)
	return v, Result(code)
}
