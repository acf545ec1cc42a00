package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/gophidget/device/stepper"
	"github.com/Alia5/gophidget/phidget"
)

// StepperMove engages a stepper motor, moves it to a target position and
// waits for it to come to rest.
type StepperMove struct {
	Addressing `embed:""`

	Target       float64 `arg:"" name:"target" help:"Target position in rescaled units"`
	Velocity     float64 `help:"Velocity limit (0 keeps the device default)" default:"0"`
	Acceleration float64 `help:"Acceleration (0 keeps the device default)" default:"0"`
	CurrentLimit float64 `help:"Motor current limit in amps (0 keeps the device default)" default:"0"`
	Rescale      float64 `help:"Rescale factor applied before moving (0 keeps the device default)" default:"0"`
}

// Run is called by Kong when the stepper command is executed.
func (s *StepperMove) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	motor, err := stepper.New()
	if err != nil {
		return err
	}
	defer motor.Release()
	if err := s.open(motor); err != nil {
		return err
	}
	defer func() { _ = motor.Close() }()

	if s.Rescale != 0 {
		if err := motor.SetRescaleFactor(s.Rescale); err != nil {
			return err
		}
	}
	if s.CurrentLimit != 0 {
		if err := motor.SetCurrentLimit(s.CurrentLimit); err != nil {
			return err
		}
	}
	if s.Velocity != 0 {
		if err := motor.SetVelocityLimit(s.Velocity); err != nil {
			return err
		}
	}
	if s.Acceleration != 0 {
		if err := motor.SetAcceleration(s.Acceleration); err != nil {
			return err
		}
	}

	stopped := make(chan struct{}, 1)
	if err := motor.SetOnStoppedHandler(func() {
		select {
		case stopped <- struct{}{}:
		default:
		}
	}); err != nil {
		return err
	}
	if err := motor.SetOnPositionChangeHandler(func(pos float64) {
		logger.Debug("position", "value", pos)
	}); err != nil {
		return err
	}

	if err := motor.SetEngaged(true); err != nil {
		return err
	}
	if err := motor.SetTargetPosition(s.Target); err != nil {
		return err
	}
	logger.Info("moving", "target", s.Target)

	select {
	case <-stopped:
		pos, err := motor.Position()
		if err != nil {
			return err
		}
		logger.Info("move complete", "position", pos)
	case <-ctx.Done():
		logger.Info("interrupted, disengaging motor")
	}
	return motor.SetEngaged(false)
}
