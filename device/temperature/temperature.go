// Package temperature provides the TemperatureSensor channel class:
// thermocouples, RTDs and on-board temperature sensors.
package temperature

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// RTDType selects the RTD curve for RTD-capable inputs.
type RTDType uint32

const (
	RTDTypePT100_3850  RTDType = 1
	RTDTypePT1000_3850 RTDType = 2
	RTDTypePT100_3920  RTDType = 3
	RTDTypePT1000_3920 RTDType = 4
)

// RTDWireSetup selects the RTD wiring configuration.
type RTDWireSetup uint32

const (
	RTDWireSetup2Wire RTDWireSetup = 1
	RTDWireSetup3Wire RTDWireSetup = 2
	RTDWireSetup4Wire RTDWireSetup = 3
)

// ThermocoupleType selects the thermocouple junction type.
type ThermocoupleType uint32

const (
	ThermocoupleTypeJ ThermocoupleType = 1
	ThermocoupleTypeK ThermocoupleType = 2
	ThermocoupleTypeE ThermocoupleType = 3
	ThermocoupleTypeT ThermocoupleType = 4
)

// Sensor is a temperature sensor channel. Safe to hand to another goroutine
// once created; readings are synchronous native calls.
type Sensor struct {
	*phidget.Channel
}

// New creates an unopened temperature sensor channel.
func New() (*Sensor, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetTemperatureSensor_create(&h)); err != nil {
		return nil, err
	}
	return &Sensor{Channel: phidget.NewChannel(h, phidget22.PhidgetTemperatureSensor_delete)}, nil
}

// Temperature reads the current temperature in degrees Celsius.
func (s *Sensor) Temperature() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetTemperatureSensor_getTemperature(s.HandleRef())
	return v, phidget.Result(code)
}

func (s *Sensor) MinTemperature() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetTemperatureSensor_getMinTemperature(s.HandleRef())
	return v, phidget.Result(code)
}

func (s *Sensor) MaxTemperature() (float64, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetTemperatureSensor_getMaxTemperature(s.HandleRef())
	return v, phidget.Result(code)
}

func (s *Sensor) RTDType() (RTDType, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetTemperatureSensor_getRTDType(s.HandleRef())
	return RTDType(v), phidget.Result(code)
}

func (s *Sensor) SetRTDType(typ RTDType) error {
	if err := s.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetTemperatureSensor_setRTDType(s.HandleRef(), uint32(typ)))
}

func (s *Sensor) RTDWireSetup() (RTDWireSetup, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetTemperatureSensor_getRTDWireSetup(s.HandleRef())
	return RTDWireSetup(v), phidget.Result(code)
}

func (s *Sensor) SetRTDWireSetup(setup RTDWireSetup) error {
	if err := s.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetTemperatureSensor_setRTDWireSetup(s.HandleRef(), uint32(setup)))
}

func (s *Sensor) ThermocoupleType() (ThermocoupleType, error) {
	if err := s.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetTemperatureSensor_getThermocoupleType(s.HandleRef())
	return ThermocoupleType(v), phidget.Result(code)
}

func (s *Sensor) SetThermocoupleType(typ ThermocoupleType) error {
	if err := s.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetTemperatureSensor_setThermocoupleType(s.HandleRef(), uint32(typ)))
}

// SetOnTemperatureChangeHandler registers fn for temperature change events.
// fn runs on the native event thread and must not block; nil clears it.
func (s *Sensor) SetOnTemperatureChangeHandler(fn func(temperature float64)) error {
	if err := s.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetTemperatureSensor_setOnTemperatureChangeHandler(s.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetTemperatureSensor_setOnTemperatureChangeHandler(s.HandleRef(),
		func(_ phidget22.Handle, v float64) { fn(v) }))
}
