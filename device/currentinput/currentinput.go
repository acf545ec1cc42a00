// Package currentinput provides the CurrentInput channel class.
package currentinput

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// Input is a current measurement channel.
type Input struct {
	*phidget.Channel
}

// New creates an unopened current input channel.
func New() (*Input, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetCurrentInput_create(&h)); err != nil {
		return nil, err
	}
	return &Input{Channel: phidget.NewChannel(h, phidget22.PhidgetCurrentInput_delete)}, nil
}

// Current reads the measured current in amperes.
func (in *Input) Current() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetCurrentInput_getCurrent(in.HandleRef())
	return v, phidget.Result(code)
}

func (in *Input) MinCurrent() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetCurrentInput_getMinCurrent(in.HandleRef())
	return v, phidget.Result(code)
}

func (in *Input) MaxCurrent() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetCurrentInput_getMaxCurrent(in.HandleRef())
	return v, phidget.Result(code)
}

// CurrentChangeTrigger is the minimum change between change events.
func (in *Input) CurrentChangeTrigger() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetCurrentInput_getCurrentChangeTrigger(in.HandleRef())
	return v, phidget.Result(code)
}

func (in *Input) SetCurrentChangeTrigger(trigger float64) error {
	if err := in.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetCurrentInput_setCurrentChangeTrigger(in.HandleRef(), trigger))
}

func (in *Input) MinCurrentChangeTrigger() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetCurrentInput_getMinCurrentChangeTrigger(in.HandleRef())
	return v, phidget.Result(code)
}

func (in *Input) MaxCurrentChangeTrigger() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetCurrentInput_getMaxCurrentChangeTrigger(in.HandleRef())
	return v, phidget.Result(code)
}

// SetOnCurrentChangeHandler registers fn for current change events. fn runs
// on the native event thread and must not block; nil clears it.
func (in *Input) SetOnCurrentChangeHandler(fn func(current float64)) error {
	if err := in.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetCurrentInput_setOnCurrentChangeHandler(in.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetCurrentInput_setOnCurrentChangeHandler(in.HandleRef(),
		func(_ phidget22.Handle, v float64) { fn(v) }))
}
