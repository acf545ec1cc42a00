// Package voltageratio provides the VoltageRatioInput channel class, used
// by bridge-type sensors (load cells, analog sensors on VINT ports).
package voltageratio

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// Input is a voltage ratio measurement channel.
type Input struct {
	*phidget.Channel
}

// New creates an unopened voltage ratio input channel.
func New() (*Input, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetVoltageRatioInput_create(&h)); err != nil {
		return nil, err
	}
	return &Input{Channel: phidget.NewChannel(h, phidget22.PhidgetVoltageRatioInput_delete)}, nil
}

// VoltageRatio reads the measured ratio of input voltage to supply voltage.
func (in *Input) VoltageRatio() (float64, error) {
	if err := in.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetVoltageRatioInput_getVoltageRatio(in.HandleRef())
	return v, phidget.Result(code)
}

// SetOnVoltageRatioChangeHandler registers fn for ratio change events. fn
// runs on the native event thread and must not block; nil clears it.
func (in *Input) SetOnVoltageRatioChangeHandler(fn func(ratio float64)) error {
	if err := in.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetVoltageRatioInput_setOnVoltageRatioChangeHandler(in.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetVoltageRatioInput_setOnVoltageRatioChangeHandler(in.HandleRef(),
		func(_ phidget22.Handle, v float64) { fn(v) }))
}
