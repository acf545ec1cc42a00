package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/gophidget/manager"
	"github.com/Alia5/gophidget/phidget"
)

// LabelCommand groups label subcommands.
type LabelCommand struct {
	Get LabelGet `cmd:"" help:"Print the label of a device"`
	Set LabelSet `cmd:"" help:"Write a label to device flash"`
}

// LabelGet prints the label stored on the device with the given serial.
type LabelGet struct {
	Serial int32         `arg:"" name:"serial" help:"Device serial number"`
	Wait   time.Duration `help:"How long to wait for the device to appear" default:"2s"`
}

// Run is called by Kong when the label get command is executed.
func (l *LabelGet) Run(logger *slog.Logger) error {
	dev, err := findBySerial(l.Serial, l.Wait)
	if err != nil {
		return err
	}
	defer dev.Release()
	label, err := dev.Label()
	if err != nil {
		return err
	}
	fmt.Println(label)
	return nil
}

// LabelSet writes a label to the flash of the device with the given serial.
type LabelSet struct {
	Serial int32         `arg:"" name:"serial" help:"Device serial number"`
	Label  string        `arg:"" name:"label" help:"Label to store"`
	Wait   time.Duration `help:"How long to wait for the device to appear" default:"2s"`
}

// Run is called by Kong when the label set command is executed.
func (l *LabelSet) Run(logger *slog.Logger) error {
	dev, err := findBySerial(l.Serial, l.Wait)
	if err != nil {
		return err
	}
	defer dev.Release()
	if err := dev.SetLabel(l.Label); err != nil {
		return err
	}
	logger.Info("label written", "serial", l.Serial, "label", l.Label)
	return nil
}

// findBySerial sweeps the bus for the first channel of the given device and
// returns an owned view of it.
func findBySerial(serial int32, wait time.Duration) (*phidget.Generic, error) {
	if err := phidget.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to load phidget22: %w", err)
	}
	mg, err := manager.New()
	if err != nil {
		return nil, err
	}
	defer func() { _ = mg.Close() }()

	found := make(chan *phidget.Generic, 1)
	err = mg.Start(func(ref *phidget.Ref) {
		sn, err := ref.SerialNumber()
		if err != nil || sn != serial {
			return
		}
		dev, err := ref.Retain()
		if err != nil {
			return
		}
		select {
		case found <- dev:
		default:
			dev.Release()
		}
	}, nil)
	if err != nil {
		return nil, err
	}

	select {
	case dev := <-found:
		_ = mg.Stop()
		return dev, nil
	case <-time.After(wait):
		_ = mg.Stop()
		return nil, fmt.Errorf("no device with serial %d found: %w", serial, phidget.ErrTimeout)
	}
}
