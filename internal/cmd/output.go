package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/gophidget/device/digitaloutput"
	"github.com/Alia5/gophidget/device/voltageoutput"
	"github.com/Alia5/gophidget/phidget"
)

// OutputCommand groups actuator subcommands.
type OutputCommand struct {
	Digital OutputDigital `cmd:"" help:"Drive a digital output channel"`
	Voltage OutputVoltage `cmd:"" help:"Drive a voltage output channel"`
}

// OutputDigital sets the state or duty cycle of a digital output.
type OutputDigital struct {
	Addressing `embed:""`

	State string        `arg:"" name:"state" help:"Output state" enum:"on,off"`
	Duty  float64       `help:"Duty cycle between 0 and 1 instead of a plain state" default:"-1"`
	Hold  time.Duration `help:"How long to keep the channel open after setting" default:"0s"`
}

// Run is called by Kong when the output digital command is executed.
func (o *OutputDigital) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	dev, err := digitaloutput.New()
	if err != nil {
		return err
	}
	defer dev.Release()
	if err := o.open(dev); err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()

	if o.Duty >= 0 {
		if err := dev.SetDutyCycle(o.Duty); err != nil {
			return err
		}
		logger.Info("duty cycle set", "duty", o.Duty)
	} else {
		if err := dev.SetState(o.State == "on"); err != nil {
			return err
		}
		logger.Info("state set", "state", o.State)
	}
	if o.Hold > 0 {
		time.Sleep(o.Hold)
	}
	return nil
}

// OutputVoltage sets the level of a voltage output.
type OutputVoltage struct {
	Addressing `embed:""`

	Voltage float64       `arg:"" name:"voltage" help:"Output level in volts"`
	Hold    time.Duration `help:"How long to keep the channel open after setting" default:"0s"`
}

// Run is called by Kong when the output voltage command is executed.
func (o *OutputVoltage) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	dev, err := voltageoutput.New()
	if err != nil {
		return err
	}
	defer dev.Release()
	if err := o.open(dev); err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()

	if err := dev.SetEnabled(true); err != nil {
		return err
	}
	if err := dev.SetVoltage(o.Voltage); err != nil {
		return err
	}
	logger.Info("voltage set", "voltage", o.Voltage)
	if o.Hold > 0 {
		time.Sleep(o.Hold)
	}
	return nil
}
