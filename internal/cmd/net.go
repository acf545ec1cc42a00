package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidgetnet"

	"golang.org/x/term"
)

// NetCommand groups network server subcommands.
type NetCommand struct {
	Add       NetAdd       `cmd:"" help:"Register a remote Phidget server"`
	Remove    NetRemove    `cmd:"" help:"Drop a server registration"`
	Enable    NetEnable    `cmd:"" help:"Re-enable a disabled server"`
	Disable   NetDisable   `cmd:"" help:"Stop connecting to a server without removing it"`
	Password  NetPassword  `cmd:"" help:"Set the password used for a server"`
	Discovery NetDiscovery `cmd:"" help:"Control mDNS server discovery"`
}

type NetAdd struct {
	Name     string `arg:"" help:"Server name"`
	Address  string `arg:"" help:"Server host or IP"`
	Port     int    `help:"Server port" default:"5661" env:"PHIDGET_SERVER_PORT"`
	Password string `help:"Server password (prompted when empty and --prompt is set)"`
	Prompt   bool   `help:"Prompt for the password on stdin"`
}

// Run is called by Kong when the net add command is executed.
func (n *NetAdd) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	password := n.Password
	if password == "" && n.Prompt {
		var err error
		if password, err = readPassword(); err != nil {
			return err
		}
	}
	if err := phidgetnet.AddServer(n.Name, n.Address, n.Port, password); err != nil {
		return err
	}
	logger.Info("server registered", "name", n.Name, "address", n.Address, "port", n.Port)
	return nil
}

type NetRemove struct {
	Name string `arg:"" help:"Server name, or 'all' to drop every registration"`
}

// Run is called by Kong when the net remove command is executed.
func (n *NetRemove) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	if n.Name == "all" {
		if err := phidgetnet.RemoveAllServers(); err != nil {
			return err
		}
		logger.Info("all server registrations removed")
		return nil
	}
	if err := phidgetnet.RemoveServer(n.Name); err != nil {
		return err
	}
	logger.Info("server removed", "name", n.Name)
	return nil
}

type NetEnable struct {
	Name string `arg:"" help:"Server name"`
}

// Run is called by Kong when the net enable command is executed.
func (n *NetEnable) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	return phidgetnet.EnableServer(n.Name)
}

type NetDisable struct {
	Name string `arg:"" help:"Server name"`
}

// Run is called by Kong when the net disable command is executed.
func (n *NetDisable) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	return phidgetnet.DisableServer(n.Name)
}

type NetPassword struct {
	Name     string `arg:"" help:"Server name"`
	Password string `help:"Password (prompted on stdin when empty)"`
}

// Run is called by Kong when the net password command is executed.
func (n *NetPassword) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	password := n.Password
	if password == "" {
		var err error
		if password, err = readPassword(); err != nil {
			return err
		}
	}
	if err := phidgetnet.SetServerPassword(n.Name, password); err != nil {
		return err
	}
	logger.Info("server password updated", "name", n.Name)
	return nil
}

type NetDiscovery struct {
	State string `arg:"" help:"Discovery state" enum:"on,off"`
}

// Run is called by Kong when the net discovery command is executed.
func (n *NetDiscovery) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	if n.State == "on" {
		if err := phidgetnet.EnableServerDiscovery(phidgetnet.ServerTypeDevice); err != nil {
			return err
		}
		logger.Info("server discovery enabled")
		return nil
	}
	if err := phidgetnet.DisableServerDiscovery(phidgetnet.ServerTypeDevice); err != nil {
		return err
	}
	logger.Info("server discovery disabled")
	return nil
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	pwd, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pwd), nil
}
