package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Alia5/gophidget/device/currentinput"
	"github.com/Alia5/gophidget/device/digitalinput"
	"github.com/Alia5/gophidget/device/humidity"
	"github.com/Alia5/gophidget/device/pressure"
	"github.com/Alia5/gophidget/device/temperature"
	"github.com/Alia5/gophidget/device/voltageinput"
	"github.com/Alia5/gophidget/device/voltageratio"
	"github.com/Alia5/gophidget/phidget"
)

// Read opens a sensor channel, waits for attachment and prints a single
// measurement, or a stream of them with --watch.
type Read struct {
	Addressing `embed:""`

	Class string `arg:"" name:"class" help:"Channel class to read" enum:"temperature,humidity,pressure,current,digital,voltage,voltage-ratio"`
	Watch bool   `help:"Keep the channel open and print change events until interrupted"`
}

// Run is called by Kong when the read command is executed.
func (r *Read) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}

	switch r.Class {
	case "temperature":
		dev, err := temperature.New()
		if err != nil {
			return err
		}
		return r.readF64(logger, dev, "°C", dev.Temperature, dev.SetOnTemperatureChangeHandler)
	case "humidity":
		dev, err := humidity.New()
		if err != nil {
			return err
		}
		return r.readF64(logger, dev, "%RH", dev.Humidity, dev.SetOnHumidityChangeHandler)
	case "pressure":
		dev, err := pressure.New()
		if err != nil {
			return err
		}
		return r.readF64(logger, dev, "kPa", dev.Pressure, dev.SetOnPressureChangeHandler)
	case "current":
		dev, err := currentinput.New()
		if err != nil {
			return err
		}
		return r.readF64(logger, dev, "A", dev.Current, dev.SetOnCurrentChangeHandler)
	case "voltage":
		dev, err := voltageinput.New()
		if err != nil {
			return err
		}
		return r.readF64(logger, dev, "V", dev.Voltage, dev.SetOnVoltageChangeHandler)
	case "voltage-ratio":
		dev, err := voltageratio.New()
		if err != nil {
			return err
		}
		return r.readF64(logger, dev, "V/V", dev.VoltageRatio, dev.SetOnVoltageRatioChangeHandler)
	case "digital":
		dev, err := digitalinput.New()
		if err != nil {
			return err
		}
		defer dev.Release()
		if err := r.open(dev); err != nil {
			return err
		}
		defer func() { _ = dev.Close() }()
		state, err := dev.State()
		if err != nil {
			return err
		}
		fmt.Println(state)
		if !r.Watch {
			return nil
		}
		if err := dev.SetOnStateChangeHandler(func(state bool) {
			fmt.Println(state)
		}); err != nil {
			return err
		}
		r.waitForInterrupt(logger)
		return dev.SetOnStateChangeHandler(nil)
	}
	return fmt.Errorf("unknown channel class: %s", r.Class)
}

type readable interface {
	phidget.Phidget
	Release()
}

func (r *Read) readF64(logger *slog.Logger, dev readable, unit string, read func() (float64, error), setHandler func(func(float64)) error) error {
	defer dev.Release()
	if err := r.open(dev); err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()
	if serial, err := dev.SerialNumber(); err == nil {
		logger.Debug("channel attached", "serial", serial)
	}
	v, err := read()
	if err != nil {
		return err
	}
	fmt.Printf("%g %s\n", v, unit)
	if !r.Watch {
		return nil
	}
	if err := setHandler(func(v float64) {
		fmt.Printf("%g %s\n", v, unit)
	}); err != nil {
		return err
	}
	r.waitForInterrupt(logger)
	return setHandler(nil)
}

func (r *Read) waitForInterrupt(logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	logger.Info("watching for change events, press ctrl+c to stop")
	<-ctx.Done()
}
