// Package digitaloutput provides the DigitalOutput channel class, including
// PWM duty cycle and LED drive control where the hardware supports it.
package digitaloutput

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// LEDForwardVoltage selects the forward voltage applied to a driven LED.
type LEDForwardVoltage uint32

const (
	LEDForwardVoltage1_7V  LEDForwardVoltage = 1
	LEDForwardVoltage2_75V LEDForwardVoltage = 2
	LEDForwardVoltage3_2V  LEDForwardVoltage = 3
	LEDForwardVoltage3_9V  LEDForwardVoltage = 4
	LEDForwardVoltage4_0V  LEDForwardVoltage = 5
	LEDForwardVoltage4_8V  LEDForwardVoltage = 6
	LEDForwardVoltage5_0V  LEDForwardVoltage = 7
	LEDForwardVoltage5_6V  LEDForwardVoltage = 8
	LEDForwardVoltage7_2V  LEDForwardVoltage = 9
)

// Output is a digital output channel.
type Output struct {
	*phidget.Channel
}

// New creates an unopened digital output channel.
func New() (*Output, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetDigitalOutput_create(&h)); err != nil {
		return nil, err
	}
	return &Output{Channel: phidget.NewChannel(h, phidget22.PhidgetDigitalOutput_delete)}, nil
}

// State reads the current output state.
func (o *Output) State() (bool, error) {
	if err := o.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getState(o.HandleRef())
	return v, phidget.Result(code)
}

// SetState drives the output high or low.
func (o *Output) SetState(state bool) error {
	if err := o.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetDigitalOutput_setState(o.HandleRef(), state))
}

// DutyCycle reads the PWM duty cycle (0..1).
func (o *Output) DutyCycle() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getDutyCycle(o.HandleRef())
	return v, phidget.Result(code)
}

// SetDutyCycle sets the PWM duty cycle. Values outside [0, 1] fail with
// ErrInvalidArg without reaching the device.
func (o *Output) SetDutyCycle(duty float64) error {
	if err := o.Alive(); err != nil {
		return err
	}
	if duty < 0 || duty > 1 {
		return phidget.ErrInvalidArg
	}
	return phidget.Result(phidget22.PhidgetDigitalOutput_setDutyCycle(o.HandleRef(), duty))
}

func (o *Output) MinDutyCycle() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getMinDutyCycle(o.HandleRef())
	return v, phidget.Result(code)
}

func (o *Output) MaxDutyCycle() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getMaxDutyCycle(o.HandleRef())
	return v, phidget.Result(code)
}

// Frequency reads the PWM frequency in Hz.
func (o *Output) Frequency() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getFrequency(o.HandleRef())
	return v, phidget.Result(code)
}

func (o *Output) SetFrequency(frequency float64) error {
	if err := o.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetDigitalOutput_setFrequency(o.HandleRef(), frequency))
}

func (o *Output) MinFrequency() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getMinFrequency(o.HandleRef())
	return v, phidget.Result(code)
}

func (o *Output) MaxFrequency() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getMaxFrequency(o.HandleRef())
	return v, phidget.Result(code)
}

// LEDCurrentLimit reads the LED drive current limit in amperes.
func (o *Output) LEDCurrentLimit() (float64, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getLEDCurrentLimit(o.HandleRef())
	return v, phidget.Result(code)
}

func (o *Output) SetLEDCurrentLimit(limit float64) error {
	if err := o.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetDigitalOutput_setLEDCurrentLimit(o.HandleRef(), limit))
}

func (o *Output) LEDForwardVoltage() (LEDForwardVoltage, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getLEDForwardVoltage(o.HandleRef())
	return LEDForwardVoltage(v), phidget.Result(code)
}

func (o *Output) SetLEDForwardVoltage(voltage LEDForwardVoltage) error {
	if err := o.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetDigitalOutput_setLEDForwardVoltage(o.HandleRef(), uint32(voltage)))
}

// EnableFailsafe arms the failsafe timer: if no valid command arrives within
// timeMs milliseconds the output resets to its safe state. Disarm by closing
// the channel.
func (o *Output) EnableFailsafe(timeMs uint32) error {
	if err := o.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetDigitalOutput_enableFailsafe(o.HandleRef(), timeMs))
}

// ResetFailsafe restarts an armed failsafe timer.
func (o *Output) ResetFailsafe() error {
	if err := o.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetDigitalOutput_resetFailsafe(o.HandleRef()))
}

func (o *Output) MinFailsafeTime() (uint32, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getMinFailsafeTime(o.HandleRef())
	return v, phidget.Result(code)
}

func (o *Output) MaxFailsafeTime() (uint32, error) {
	if err := o.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetDigitalOutput_getMaxFailsafeTime(o.HandleRef())
	return v, phidget.Result(code)
}
