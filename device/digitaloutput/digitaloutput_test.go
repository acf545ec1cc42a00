package digitaloutput_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/digitaloutput"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simOutput(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Digital Output Phidget",
		SKU:          "OUT1100",
		ChannelClass: phidgettest.ClassDigitalOutput,
		Props:        map[string]float64{},
	}
}

func TestStateRoundTrip(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simOutput(21))

	out, err := digitaloutput.New()
	require.NoError(t, err)
	defer out.Release()
	require.NoError(t, out.OpenWait(time.Second))

	require.NoError(t, out.SetState(true))
	state, err := out.State()
	require.NoError(t, err)
	assert.True(t, state)

	require.NoError(t, out.SetState(false))
	state, err = out.State()
	require.NoError(t, err)
	assert.False(t, state)
}

func TestDutyCycleValidation(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simOutput(21))

	out, err := digitaloutput.New()
	require.NoError(t, err)
	defer out.Release()
	require.NoError(t, out.OpenWait(time.Second))

	assert.ErrorIs(t, out.SetDutyCycle(-0.5), phidget.ErrInvalidArg)
	assert.ErrorIs(t, out.SetDutyCycle(1.5), phidget.ErrInvalidArg)

	require.NoError(t, out.SetDutyCycle(0.25))
	duty, err := out.DutyCycle()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, duty, 1e-9)
}

func TestOutputNotAttached(t *testing.T) {
	phidgettest.Install(t)

	out, err := digitaloutput.New()
	require.NoError(t, err)
	defer out.Release()
	require.NoError(t, out.Open())

	err = out.SetState(true)
	assert.ErrorIs(t, err, phidget.ErrNotAttached)
}
