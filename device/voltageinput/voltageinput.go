// Package voltageinput provides the VoltageInput channel class.
package voltageinput

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// Input is a voltage measurement channel.
type Input struct {
	*phidget.Channel
}

// New creates an unopened voltage input channel.
func New() (*Input, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetVoltageInput_create(&h)); err != nil {
		return nil, err
	}
	return &Input{Channel: phidget.NewChannel(h, phidget22.PhidgetVoltageInput_delete)}, nil
}

// Voltage reads the measured voltage in volts.
func (in *Input) Voltage() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetVoltageInput_getVoltage(in.HandleRef())
	return v, phidget.Result(code)
}

func (in *Input) MinVoltage() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetVoltageInput_getMinVoltage(in.HandleRef())
	return v, phidget.Result(code)
}

func (in *Input) MaxVoltage() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetVoltageInput_getMaxVoltage(in.HandleRef())
	return v, phidget.Result(code)
}

// SetOnVoltageChangeHandler registers fn for voltage change events. fn runs
// on the native event thread and must not block; nil clears it.
func (in *Input) SetOnVoltageChangeHandler(fn func(voltage float64)) error {
	if err := in.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetVoltageInput_setOnVoltageChangeHandler(in.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetVoltageInput_setOnVoltageChangeHandler(in.HandleRef(),
		func(_ phidget22.Handle, v float64) { fn(v) }))
}
