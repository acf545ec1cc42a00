// Package config defines the top-level CLI surface parsed by Kong.
package config

import (
	"github.com/Alia5/gophidget/internal/cmd"
)

// Log groups the logging flags shared by every command.
type Log struct {
	Level     string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"PHIDGET_LOG_LEVEL"`
	File      string `help:"Write logs to this file instead of the console" env:"PHIDGET_LOG_FILE"`
	EventFile string `help:"Write a hotplug event trace to this file" env:"PHIDGET_EVENT_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	ConfigPath string `name:"config" help:"Path to a config file (json, yaml or toml)" env:"PHIDGET_CONFIG"`
	Log        Log    `embed:"" prefix:"log."`

	Version   cmd.Version       `cmd:"" help:"Print the native library version"`
	List      cmd.List          `cmd:"" help:"List attached Phidget channels"`
	Monitor   cmd.Monitor       `cmd:"" help:"Watch attach and detach events until interrupted"`
	Read      cmd.Read          `cmd:"" help:"Read a single value from a sensor channel"`
	Output    cmd.OutputCommand `cmd:"" help:"Drive an output channel"`
	Stepper   cmd.StepperMove   `cmd:"" help:"Move a stepper motor to a position"`
	Label     cmd.LabelCommand  `cmd:"" help:"Read or write device labels"`
	Net       cmd.NetCommand    `cmd:"" help:"Manage remote Phidget servers"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
