// Package hub provides the Hub channel class for VINT hub port
// configuration.
package hub

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// PortMode selects what a VINT port exposes.
type PortMode uint32

const (
	// PortModeVINT runs the port as a VINT device port.
	PortModeVINT PortMode = 0
	// PortModeDigitalInput runs the port as a raw digital input.
	PortModeDigitalInput PortMode = 1
	// PortModeDigitalOutput runs the port as a raw digital output.
	PortModeDigitalOutput PortMode = 2
	// PortModeVoltageInput runs the port as a raw voltage input.
	PortModeVoltageInput PortMode = 3
	// PortModeVoltageRatioInput runs the port as a raw voltage ratio input.
	PortModeVoltageRatioInput PortMode = 4
)

// String implements fmt.Stringer.
func (m PortMode) String() string {
	switch m {
	case PortModeVINT:
		return "vint"
	case PortModeDigitalInput:
		return "digital-input"
	case PortModeDigitalOutput:
		return "digital-output"
	case PortModeVoltageInput:
		return "voltage-input"
	case PortModeVoltageRatioInput:
		return "voltage-ratio-input"
	}
	return "unknown"
}

// Hub is a VINT hub channel.
type Hub struct {
	*phidget.Channel
}

// New creates an unopened hub channel.
func New() (*Hub, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetHub_create(&h)); err != nil {
		return nil, err
	}
	return &Hub{Channel: phidget.NewChannel(h, phidget22.PhidgetHub_delete)}, nil
}

// PortMode reads the mode of the given port.
func (hb *Hub) PortMode(port int) (PortMode, error) {
	if err := hb.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetHub_getPortMode(hb.HandleRef(), int32(port))
	return PortMode(v), phidget.Result(code)
}

// SetPortMode switches the given port between VINT and raw sensor modes.
func (hb *Hub) SetPortMode(port int, mode PortMode) error {
	if err := hb.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetHub_setPortMode(hb.HandleRef(), int32(port), uint32(mode)))
}

// PortPower reports whether the given port supplies power.
func (hb *Hub) PortPower(port int) (bool, error) {
	if err := hb.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.PhidgetHub_getPortPower(hb.HandleRef(), int32(port))
	return v, phidget.Result(code)
}

// SetPortPower switches power to the given port.
func (hb *Hub) SetPortPower(port int, on bool) error {
	if err := hb.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetHub_setPortPower(hb.HandleRef(), int32(port), on))
}

// SetPortAutoSetSpeed enables or disables automatic VINT speed
// negotiation on the given port.
func (hb *Hub) SetPortAutoSetSpeed(port int, on bool) error {
	if err := hb.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetHub_setPortAutoSetSpeed(hb.HandleRef(), int32(port), on))
}

// PortSupportsAutoSetSpeed reports whether the given port can negotiate
// VINT speed automatically.
func (hb *Hub) PortSupportsAutoSetSpeed(port int) (bool, error) {
	if err := hb.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.PhidgetHub_getPortSupportsAutoSetSpeed(hb.HandleRef(), int32(port))
	return v, phidget.Result(code)
}

// PortSupportsSetSpeed reports whether the given port accepts a manual
// VINT speed.
func (hb *Hub) PortSupportsSetSpeed(port int) (bool, error) {
	if err := hb.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.PhidgetHub_getPortSupportsSetSpeed(hb.HandleRef(), int32(port))
	return v, phidget.Result(code)
}
