// Package voltageoutput provides the VoltageOutput channel class.
package voltageoutput

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// Output is a voltage output channel.
type Output struct {
	*phidget.Channel
}

// New creates an unopened voltage output channel.
func New() (*Output, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetVoltageOutput_create(&h)); err != nil {
		return nil, err
	}
	return &Output{Channel: phidget.NewChannel(h, phidget22.PhidgetVoltageOutput_delete)}, nil
}

// Voltage reads the currently set output voltage in volts.
func (o *Output) Voltage() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetVoltageOutput_getVoltage(o.HandleRef())
	return v, phidget.Result(code)
}

// SetVoltage drives the output to the given voltage. Out-of-range values
// are rejected by the device with ErrInvalidArg.
func (o *Output) SetVoltage(voltage float64) error {
	if err := o.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetVoltageOutput_setVoltage(o.HandleRef(), voltage))
}

func (o *Output) MinVoltage() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetVoltageOutput_getMinVoltage(o.HandleRef())
	return v, phidget.Result(code)
}

func (o *Output) MaxVoltage() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetVoltageOutput_getMaxVoltage(o.HandleRef())
	return v, phidget.Result(code)
}

// Enabled reports whether the output stage is driving.
func (o *Output) Enabled() (bool, error) {
	if err := o.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.PhidgetVoltageOutput_getEnabled(o.HandleRef())
	return v, phidget.Result(code)
}

// SetEnabled switches the output stage on or off.
func (o *Output) SetEnabled(on bool) error {
	if err := o.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetVoltageOutput_setEnabled(o.HandleRef(), on))
}
