package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Alia5/gophidget/manager"
	"github.com/Alia5/gophidget/phidget"

	yaml "gopkg.in/yaml.v3"
)

// List sweeps the bus for attached channels and prints them.
type List struct {
	Wait   time.Duration `help:"How long to listen for attachments before printing" default:"2s"`
	Format string        `help:"Output format" enum:"yaml,json" default:"yaml"`
}

// Run is called by Kong when the list command is executed.
func (l *List) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}

	mg, err := manager.New()
	if err != nil {
		return err
	}
	defer func() { _ = mg.Close() }()

	var mu sync.Mutex
	var found []phidget.DeviceInfo

	err = mg.Start(func(ref *phidget.Ref) {
		info, err := phidget.Describe(ref)
		if err != nil {
			logger.Debug("failed to describe attached channel", "error", err)
			return
		}
		mu.Lock()
		found = append(found, info)
		mu.Unlock()
	}, nil)
	if err != nil {
		return err
	}

	time.Sleep(l.Wait)
	if err := mg.Stop(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	logger.Debug("sweep finished", "channels", len(found))

	var data []byte
	switch l.Format {
	case "json":
		data, err = json.MarshalIndent(found, "", "  ")
	default:
		data, err = yaml.Marshal(found)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
