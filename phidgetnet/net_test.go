package phidgetnet_test

import (
	"testing"

	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidgetnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetWithoutLibrary(t *testing.T) {
	err := phidgetnet.AddServer("lab", "10.0.0.5", 5661, "")
	assert.ErrorIs(t, err, phidget.ErrNotConfigured)
}

func TestServerRegistration(t *testing.T) {
	sim := phidgettest.Install(t)

	require.NoError(t, phidgetnet.AddServer("lab", "10.0.0.5", 5661, "hunter2"))
	rec, ok := sim.Server("lab")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.5", rec.Address)
	assert.Equal(t, int32(5661), rec.Port)
	assert.Equal(t, "hunter2", rec.Password)
	assert.True(t, rec.Enabled)

	require.NoError(t, phidgetnet.DisableServer("lab"))
	rec, _ = sim.Server("lab")
	assert.False(t, rec.Enabled)

	require.NoError(t, phidgetnet.EnableServer("lab"))
	rec, _ = sim.Server("lab")
	assert.True(t, rec.Enabled)

	require.NoError(t, phidgetnet.RemoveServer("lab"))
	_, ok = sim.Server("lab")
	assert.False(t, ok)
}

func TestSetPasswordBeforeAdd(t *testing.T) {
	sim := phidgettest.Install(t)

	require.NoError(t, phidgetnet.SetServerPassword("future", "secret"))
	rec, ok := sim.Server("future")
	require.True(t, ok)
	assert.Equal(t, "secret", rec.Password)
}

func TestDiscoveryToggle(t *testing.T) {
	sim := phidgettest.Install(t)

	require.NoError(t, phidgetnet.EnableServerDiscovery(phidgetnet.ServerTypeDevice))
	assert.True(t, sim.DiscoveryEnabled())
	require.NoError(t, phidgetnet.DisableServerDiscovery(phidgetnet.ServerTypeDevice))
	assert.False(t, sim.DiscoveryEnabled())
}

func TestServerTypeString(t *testing.T) {
	assert.Equal(t, "Device", phidgetnet.ServerTypeDevice.String())
	assert.Equal(t, "SBC", phidgetnet.ServerTypeSBC.String())
}
