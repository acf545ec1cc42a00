package digitalinput_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/digitalinput"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ phidget.Phidget = (*digitalinput.Input)(nil)

func simInput(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Digital Input Phidget",
		SKU:          "DAQ1400",
		ChannelClass: phidgettest.ClassDigitalInput,
		Props:        map[string]float64{"state": 0},
	}
}

func TestReadState(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simInput(61))

	in, err := digitalinput.New()
	require.NoError(t, err)
	defer in.Release()
	require.NoError(t, in.OpenWait(time.Second))

	state, err := in.State()
	require.NoError(t, err)
	assert.False(t, state)
}

func TestInputModeAndPowerSupplyRoundTrip(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simInput(61))

	in, err := digitalinput.New()
	require.NoError(t, err)
	defer in.Release()
	require.NoError(t, in.OpenWait(time.Second))

	require.NoError(t, in.SetInputMode(digitalinput.InputModePNP))
	mode, err := in.InputMode()
	require.NoError(t, err)
	assert.Equal(t, digitalinput.InputModePNP, mode)

	require.NoError(t, in.SetPowerSupply(digitalinput.PowerSupply12V))
	supply, err := in.PowerSupply()
	require.NoError(t, err)
	assert.Equal(t, digitalinput.PowerSupply12V, supply)
}

func TestStateChangeEvents(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simInput(61))

	in, err := digitalinput.New()
	require.NoError(t, err)
	defer in.Release()
	require.NoError(t, in.OpenWait(time.Second))

	got := make(chan bool, 4)
	require.NoError(t, in.SetOnStateChangeHandler(func(state bool) {
		got <- state
	}))

	sim.PushValue(61, "state", 1)
	sim.Flush()
	select {
	case state := <-got:
		assert.True(t, state)
	default:
		t.Fatal("state change never delivered")
	}

	require.NoError(t, in.SetOnStateChangeHandler(nil))
	sim.PushValue(61, "state", 0)
	sim.Flush()
	select {
	case <-got:
		t.Fatal("event delivered after handler cleared")
	default:
	}
}
