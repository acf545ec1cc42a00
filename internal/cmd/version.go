package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/gophidget/phidget"
)

// Version prints the native library version.
type Version struct{}

// Run is called by Kong when the version command is executed.
func (v *Version) Run(logger *slog.Logger) error {
	if err := phidget.Initialize(); err != nil {
		return fmt.Errorf("failed to load phidget22: %w", err)
	}
	full, err := phidget.LibraryVersion()
	if err != nil {
		return err
	}
	num, err := phidget.LibraryVersionNumber()
	if err != nil {
		// Older library builds lack the number query.
		logger.Debug("library version number unavailable", "error", err)
		fmt.Println(full)
		return nil
	}
	fmt.Printf("%s (%s)\n", full, num)
	return nil
}
