// Package digitalinput provides the DigitalInput channel class.
package digitalinput

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// InputMode selects the input wiring interpretation.
type InputMode uint32

const (
	InputModeNPN InputMode = 1
	InputModePNP InputMode = 2
)

// PowerSupply selects the sensor supply voltage on supporting boards.
type PowerSupply uint32

const (
	PowerSupplyOff PowerSupply = 1
	PowerSupply12V PowerSupply = 2
	PowerSupply24V PowerSupply = 3
)

// Input is a digital input channel.
type Input struct {
	*phidget.Channel
}

// New creates an unopened digital input channel.
func New() (*Input, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetDigitalInput_create(&h)); err != nil {
		return nil, err
	}
	return &Input{Channel: phidget.NewChannel(h, phidget22.PhidgetDigitalInput_delete)}, nil
}

// State reads the current input state.
func (in *Input) State() (bool, error) {
	if err := in.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.PhidgetDigitalInput_getState(in.HandleRef())
	return v, phidget.Result(code)
}

func (in *Input) InputMode() (InputMode, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalInput_getInputMode(in.HandleRef())
	return InputMode(v), phidget.Result(code)
}

func (in *Input) SetInputMode(mode InputMode) error {
	if err := in.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetDigitalInput_setInputMode(in.HandleRef(), uint32(mode)))
}

func (in *Input) PowerSupply() (PowerSupply, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalInput_getPowerSupply(in.HandleRef())
	return PowerSupply(v), phidget.Result(code)
}

func (in *Input) SetPowerSupply(supply PowerSupply) error {
	if err := in.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetDigitalInput_setPowerSupply(in.HandleRef(), uint32(supply)))
}

// SetOnStateChangeHandler registers fn for state change events. fn runs on
// the native event thread and must not block; nil clears it.
func (in *Input) SetOnStateChangeHandler(fn func(state bool)) error {
	if err := in.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetDigitalInput_setOnStateChangeHandler(in.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetDigitalInput_setOnStateChangeHandler(in.HandleRef(),
		func(_ phidget22.Handle, state bool) { fn(state) }))
}
