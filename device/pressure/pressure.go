// Package pressure provides the PressureSensor channel class.
package pressure

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// Sensor is an absolute-pressure sensor channel.
type Sensor struct {
	*phidget.Channel
}

// New creates an unopened pressure sensor channel.
func New() (*Sensor, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetPressureSensor_create(&h)); err != nil {
		return nil, err
	}
	return &Sensor{Channel: phidget.NewChannel(h, phidget22.PhidgetPressureSensor_delete)}, nil
}

// Pressure reads the current pressure in kPa.
func (s *Sensor) Pressure() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetPressureSensor_getPressure(s.HandleRef())
	return v, phidget.Result(code)
}

func (s *Sensor) MinPressure() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetPressureSensor_getMinPressure(s.HandleRef())
	return v, phidget.Result(code)
}

func (s *Sensor) MaxPressure() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetPressureSensor_getMaxPressure(s.HandleRef())
	return v, phidget.Result(code)
}

// PressureChangeTrigger is the minimum change between change events.
func (s *Sensor) PressureChangeTrigger() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetPressureSensor_getPressureChangeTrigger(s.HandleRef())
	return v, phidget.Result(code)
}

func (s *Sensor) SetPressureChangeTrigger(trigger float64) error {
	if err := s.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetPressureSensor_setPressureChangeTrigger(s.HandleRef(), trigger))
}

func (s *Sensor) MinPressureChangeTrigger() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetPressureSensor_getMinPressureChangeTrigger(s.HandleRef())
	return v, phidget.Result(code)
}

func (s *Sensor) MaxPressureChangeTrigger() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetPressureSensor_getMaxPressureChangeTrigger(s.HandleRef())
	return v, phidget.Result(code)
}

// SetOnPressureChangeHandler registers fn for pressure change events. fn
// runs on the native event thread and must not block; nil clears it.
func (s *Sensor) SetOnPressureChangeHandler(fn func(pressure float64)) error {
	if err := s.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetPressureSensor_setOnPressureChangeHandler(s.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetPressureSensor_setOnPressureChangeHandler(s.HandleRef(),
		func(_ phidget22.Handle, v float64) { fn(v) }))
}
