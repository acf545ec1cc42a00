package voltageoutput_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/voltageoutput"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ phidget.Phidget = (*voltageoutput.Output)(nil)

func simOutput(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Voltage Output Phidget",
		SKU:          "OUT1001",
		ChannelClass: phidgettest.ClassVoltageOutput,
		Props: map[string]float64{
			"minVoltage": -10,
			"maxVoltage": 10,
		},
	}
}

func TestVoltageRoundTrip(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simOutput(81))

	out, err := voltageoutput.New()
	require.NoError(t, err)
	defer out.Release()
	require.NoError(t, out.OpenWait(time.Second))

	require.NoError(t, out.SetVoltage(5.0))
	v, err := out.Voltage()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-9)
}

func TestEnabledRoundTrip(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simOutput(81))

	out, err := voltageoutput.New()
	require.NoError(t, err)
	defer out.Release()
	require.NoError(t, out.OpenWait(time.Second))

	on, err := out.Enabled()
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, out.SetEnabled(true))
	on, err = out.Enabled()
	require.NoError(t, err)
	assert.True(t, on)
}
