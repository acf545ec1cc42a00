package cmd_test

import (
	"log/slog"
	"testing"

	"github.com/Alia5/gophidget/internal/cmd"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNetAddRegistersServer(t *testing.T) {
	sim := phidgettest.Install(t)

	add := &cmd.NetAdd{Name: "lab", Address: "192.168.1.20", Port: 5661, Password: "hunter2"}
	require.NoError(t, add.Run(discardLogger()))

	rec, ok := sim.Server("lab")
	require.True(t, ok)
	assert.Equal(t, "192.168.1.20", rec.Address)
	assert.Equal(t, "hunter2", rec.Password)
}

func TestNetRemoveAll(t *testing.T) {
	sim := phidgettest.Install(t)

	require.NoError(t, (&cmd.NetAdd{Name: "a", Address: "10.0.0.1", Port: 5661}).Run(discardLogger()))
	require.NoError(t, (&cmd.NetAdd{Name: "b", Address: "10.0.0.2", Port: 5661}).Run(discardLogger()))

	require.NoError(t, (&cmd.NetRemove{Name: "all"}).Run(discardLogger()))
	_, ok := sim.Server("a")
	assert.False(t, ok)
	_, ok = sim.Server("b")
	assert.False(t, ok)
}

func TestNetDiscoveryToggle(t *testing.T) {
	sim := phidgettest.Install(t)

	require.NoError(t, (&cmd.NetDiscovery{State: "on"}).Run(discardLogger()))
	assert.True(t, sim.DiscoveryEnabled())
	require.NoError(t, (&cmd.NetDiscovery{State: "off"}).Run(discardLogger()))
	assert.False(t, sim.DiscoveryEnabled())
}
