package hub_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/hub"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ phidget.Phidget = (*hub.Hub)(nil)

func simHub(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "6-Port USB VINT Hub",
		SKU:          "HUB0000",
		DeviceClass:  uint32(phidget.DeviceClassHub),
		ChannelClass: phidgettest.ClassHub,
		Props: map[string]float64{
			"portSupportsSetSpeed0":     1,
			"portSupportsAutoSetSpeed0": 1,
		},
	}
}

func TestPortModeRoundTrip(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simHub(1001))

	hb, err := hub.New()
	require.NoError(t, err)
	defer hb.Release()
	require.NoError(t, hb.OpenWait(time.Second))

	require.NoError(t, hb.SetPortMode(2, hub.PortModeVoltageInput))
	mode, err := hb.PortMode(2)
	require.NoError(t, err)
	assert.Equal(t, hub.PortModeVoltageInput, mode)

	// Other ports stay on their default mode.
	mode, err = hb.PortMode(0)
	require.NoError(t, err)
	assert.Equal(t, hub.PortModeVINT, mode)
}

func TestPortPowerAndSpeed(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simHub(1001))

	hb, err := hub.New()
	require.NoError(t, err)
	defer hb.Release()
	require.NoError(t, hb.OpenWait(time.Second))

	require.NoError(t, hb.SetPortPower(0, true))
	on, err := hb.PortPower(0)
	require.NoError(t, err)
	assert.True(t, on)

	ok, err := hb.PortSupportsSetSpeed(0)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = hb.PortSupportsAutoSetSpeed(0)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, hb.SetPortAutoSetSpeed(0, true))

	ok, err = hb.PortSupportsSetSpeed(3)
	require.NoError(t, err)
	assert.False(t, ok)
}
