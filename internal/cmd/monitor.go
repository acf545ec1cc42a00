package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/gophidget/internal/log"
	"github.com/Alia5/gophidget/manager"
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidgetnet"
)

// Monitor watches the bus and logs every attach and detach until
// interrupted.
type Monitor struct {
	Discover bool `help:"Discover remote Phidget servers via mDNS while monitoring"`
}

// Run is called by Kong when the monitor command is executed.
func (m *Monitor) Run(logger *slog.Logger, events log.EventLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}

	if m.Discover {
		if err := phidgetnet.EnableServerDiscovery(phidgetnet.ServerTypeDevice); err != nil {
			return fmt.Errorf("failed to enable server discovery: %w", err)
		}
		defer func() { _ = phidgetnet.DisableServerDiscovery(phidgetnet.ServerTypeDevice) }()
	}

	mg, err := manager.New()
	if err != nil {
		return err
	}
	defer func() { _ = mg.Close() }()

	onAttach := func(ref *phidget.Ref) {
		info, err := phidget.Describe(ref)
		if err != nil {
			logger.Warn("attached channel vanished before describe", "error", err)
			return
		}
		logger.Info("channel attached",
			"serial", info.SerialNumber,
			"channel", info.Channel,
			"class", info.ChannelClass.String(),
			"sku", info.DeviceSKU)
		events.Log(true, info)
	}
	onDetach := func(ref *phidget.Ref) {
		info, err := phidget.Describe(ref)
		if err != nil {
			logger.Info("channel detached")
			return
		}
		logger.Info("channel detached",
			"serial", info.SerialNumber,
			"channel", info.Channel,
			"class", info.ChannelClass.String())
		events.Log(false, info)
	}

	if err := mg.Start(onAttach, onDetach); err != nil {
		return err
	}

	logger.Info("Monitoring Phidget channels, press Ctrl+C to stop")
	<-ctx.Done()
	logger.Info("Shutting down monitor")
	return mg.Stop()
}
