// Package stepper provides the Stepper channel class for stepper motor
// controllers.
package stepper

import (
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
)

// ControlMode selects how the motor is commanded.
type ControlMode uint32

const (
	// ControlModeStep moves to TargetPosition.
	ControlModeStep ControlMode = 0
	// ControlModeRun spins continuously at VelocityLimit.
	ControlModeRun ControlMode = 1
)

// String implements fmt.Stringer.
func (m ControlMode) String() string {
	switch m {
	case ControlModeStep:
		return "step"
	case ControlModeRun:
		return "run"
	}
	return "unknown"
}

// Motor is a stepper motor channel.
type Motor struct {
	*phidget.Channel
}

// New creates an unopened stepper channel.
func New() (*Motor, error) {
	if !phidget22.Ready() {
		return nil, phidget.ErrNotConfigured
	}
	var h phidget22.Handle
	if err := phidget.Result(phidget22.PhidgetStepper_create(&h)); err != nil {
		return nil, err
	}
	return &Motor{Channel: phidget.NewChannel(h, phidget22.PhidgetStepper_delete)}, nil
}

func (m *Motor) getF64(fn func(phidget22.Handle) (float64, phidget22.Code)) (float64, error) {
	if err := m.Alive(); err != nil {
		return 0, err
	}
	v, code := fn(m.HandleRef())
	return v, phidget.Result(code)
}

func (m *Motor) setF64(fn func(phidget22.Handle, float64) phidget22.Code, v float64) error {
	if err := m.Alive(); err != nil {
		return err
	}
	return phidget.Result(fn(m.HandleRef(), v))
}

// Acceleration reads the rate the controller changes velocity at, in
// rescaled units per second squared.
func (m *Motor) Acceleration() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getAcceleration)
}

// SetAcceleration sets the acceleration.
func (m *Motor) SetAcceleration(accel float64) error {
	return m.setF64(phidget22.PhidgetStepper_setAcceleration, accel)
}

// MinAcceleration reads the lowest accepted acceleration.
func (m *Motor) MinAcceleration() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMinAcceleration)
}

// MaxAcceleration reads the highest accepted acceleration.
func (m *Motor) MaxAcceleration() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMaxAcceleration)
}

// ControlMode reads the current control mode.
func (m *Motor) ControlMode() (ControlMode, error) {
	if err := m.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetStepper_getControlMode(m.HandleRef())
	return ControlMode(v), phidget.Result(code)
}

// SetControlMode switches between step and run mode.
func (m *Motor) SetControlMode(mode ControlMode) error {
	if err := m.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetStepper_setControlMode(m.HandleRef(), uint32(mode)))
}

// CurrentLimit reads the motor current limit in amps.
func (m *Motor) CurrentLimit() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getCurrentLimit)
}

// SetCurrentLimit sets the motor current limit in amps.
func (m *Motor) SetCurrentLimit(limit float64) error {
	return m.setF64(phidget22.PhidgetStepper_setCurrentLimit, limit)
}

// MinCurrentLimit reads the lowest accepted current limit.
func (m *Motor) MinCurrentLimit() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMinCurrentLimit)
}

// MaxCurrentLimit reads the highest accepted current limit.
func (m *Motor) MaxCurrentLimit() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMaxCurrentLimit)
}

// DataInterval reads the event reporting interval in milliseconds.
func (m *Motor) DataInterval() (uint32, error) {
	if err := m.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetStepper_getDataInterval(m.HandleRef())
	return v, phidget.Result(code)
}

// SetDataInterval sets the event reporting interval in milliseconds.
func (m *Motor) SetDataInterval(ms uint32) error {
	if err := m.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetStepper_setDataInterval(m.HandleRef(), ms))
}

// MinDataInterval reads the shortest accepted data interval.
func (m *Motor) MinDataInterval() (uint32, error) {
	if err := m.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetStepper_getMinDataInterval(m.HandleRef())
	return v, phidget.Result(code)
}

// MaxDataInterval reads the longest accepted data interval.
func (m *Motor) MaxDataInterval() (uint32, error) {
	if err := m.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetStepper_getMaxDataInterval(m.HandleRef())
	return v, phidget.Result(code)
}

// DataRate reads the event reporting rate in hertz.
func (m *Motor) DataRate() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getDataRate)
}

// SetDataRate sets the event reporting rate in hertz.
func (m *Motor) SetDataRate(rate float64) error {
	return m.setF64(phidget22.PhidgetStepper_setDataRate, rate)
}

// MinDataRate reads the lowest accepted data rate.
func (m *Motor) MinDataRate() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMinDataRate)
}

// MaxDataRate reads the highest accepted data rate.
func (m *Motor) MaxDataRate() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMaxDataRate)
}

// Engaged reports whether the motor coils are energized.
func (m *Motor) Engaged() (bool, error) {
	if err := m.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.PhidgetStepper_getEngaged(m.HandleRef())
	return v, phidget.Result(code)
}

// SetEngaged energizes or releases the motor coils.
func (m *Motor) SetEngaged(on bool) error {
	if err := m.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetStepper_setEngaged(m.HandleRef(), on))
}

// EnableFailsafe arms the failsafe timer. The motor disengages if the
// timer is not reset within the given window.
func (m *Motor) EnableFailsafe(timeMs uint32) error {
	if err := m.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetStepper_enableFailsafe(m.HandleRef(), timeMs))
}

// ResetFailsafe restarts the failsafe timer.
func (m *Motor) ResetFailsafe() error {
	if err := m.Alive(); err != nil {
		return err
	}
	return phidget.Result(phidget22.PhidgetStepper_resetFailsafe(m.HandleRef()))
}

// MinFailsafeTime reads the shortest accepted failsafe window in
// milliseconds.
func (m *Motor) MinFailsafeTime() (uint32, error) {
	if err := m.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetStepper_getMinFailsafeTime(m.HandleRef())
	return v, phidget.Result(code)
}

// MaxFailsafeTime reads the longest accepted failsafe window in
// milliseconds.
func (m *Motor) MaxFailsafeTime() (uint32, error) {
	if err := m.Alive(); err != nil {
		return 0, err
	}
	v, code := phidget22.PhidgetStepper_getMaxFailsafeTime(m.HandleRef())
	return v, phidget.Result(code)
}

// HoldingCurrentLimit reads the current limit applied while the motor is
// holding position.
func (m *Motor) HoldingCurrentLimit() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getHoldingCurrentLimit)
}

// SetHoldingCurrentLimit sets the holding current limit in amps.
func (m *Motor) SetHoldingCurrentLimit(limit float64) error {
	return m.setF64(phidget22.PhidgetStepper_setHoldingCurrentLimit, limit)
}

// IsMoving reports whether the motor is currently in motion.
func (m *Motor) IsMoving() (bool, error) {
	if err := m.Alive(); err != nil {
		return false, err
	}
	v, code := phidget22.PhidgetStepper_getIsMoving(m.HandleRef())
	return v, phidget.Result(code)
}

// Position reads the current motor position in rescaled units.
func (m *Motor) Position() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getPosition)
}

// MinPosition reads the lowest reachable position.
func (m *Motor) MinPosition() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMinPosition)
}

// MaxPosition reads the highest reachable position.
func (m *Motor) MaxPosition() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMaxPosition)
}

// AddPositionOffset shifts the position reference frame without moving
// the motor.
func (m *Motor) AddPositionOffset(offset float64) error {
	return m.setF64(phidget22.PhidgetStepper_addPositionOffset, offset)
}

// RescaleFactor reads the factor applied to convert motor steps to user
// units.
func (m *Motor) RescaleFactor() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getRescaleFactor)
}

// SetRescaleFactor sets the step-to-user-unit conversion factor.
func (m *Motor) SetRescaleFactor(factor float64) error {
	return m.setF64(phidget22.PhidgetStepper_setRescaleFactor, factor)
}

// TargetPosition reads the position the motor is commanded to reach.
func (m *Motor) TargetPosition() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getTargetPosition)
}

// SetTargetPosition commands the motor to move to a position. Only
// meaningful in step mode.
func (m *Motor) SetTargetPosition(position float64) error {
	return m.setF64(phidget22.PhidgetStepper_setTargetPosition, position)
}

// Velocity reads the current motor velocity.
func (m *Motor) Velocity() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getVelocity)
}

// VelocityLimit reads the commanded velocity limit. In run mode this is
// the target velocity and its sign sets the direction.
func (m *Motor) VelocityLimit() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getVelocityLimit)
}

// SetVelocityLimit sets the velocity limit.
func (m *Motor) SetVelocityLimit(limit float64) error {
	return m.setF64(phidget22.PhidgetStepper_setVelocityLimit, limit)
}

// MinVelocityLimit reads the lowest accepted velocity limit.
func (m *Motor) MinVelocityLimit() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMinVelocityLimit)
}

// MaxVelocityLimit reads the highest accepted velocity limit.
func (m *Motor) MaxVelocityLimit() (float64, error) {
	return m.getF64(phidget22.PhidgetStepper_getMaxVelocityLimit)
}

// SetOnPositionChangeHandler registers fn for position change events. fn
// runs on the native event thread and must not block; nil clears it.
func (m *Motor) SetOnPositionChangeHandler(fn func(position float64)) error {
	if err := m.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetStepper_setOnPositionChangeHandler(m.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetStepper_setOnPositionChangeHandler(m.HandleRef(),
		func(_ phidget22.Handle, v float64) { fn(v) }))
}

// SetOnVelocityChangeHandler registers fn for velocity change events. fn
// runs on the native event thread and must not block; nil clears it.
func (m *Motor) SetOnVelocityChangeHandler(fn func(velocity float64)) error {
	if err := m.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetStepper_setOnVelocityChangeHandler(m.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetStepper_setOnVelocityChangeHandler(m.HandleRef(),
		func(_ phidget22.Handle, v float64) { fn(v) }))
}

// SetOnStoppedHandler registers fn to run when the motor comes to rest.
// fn runs on the native event thread and must not block; nil clears it.
func (m *Motor) SetOnStoppedHandler(fn func()) error {
	if err := m.Alive(); err != nil {
		return err
	}
	if fn == nil {
		return phidget.Result(phidget22.PhidgetStepper_setOnStoppedHandler(m.HandleRef(), nil))
	}
	return phidget.Result(phidget22.PhidgetStepper_setOnStoppedHandler(m.HandleRef(),
		func(_ phidget22.Handle) { fn() }))
}
