package currentinput_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/currentinput"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ phidget.Phidget = (*currentinput.Input)(nil)

func simSensor(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Current Phidget",
		SKU:          "VCP1100",
		ChannelClass: phidgettest.ClassCurrentInput,
		Props:        map[string]float64{"current": 1.25},
	}
}

func TestReadCurrent(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(51))

	in, err := currentinput.New()
	require.NoError(t, err)
	defer in.Release()
	require.NoError(t, in.OpenWait(time.Second))

	v, err := in.Current()
	require.NoError(t, err)
	assert.InDelta(t, 1.25, v, 1e-9)
}

func TestCurrentChangeTriggerAndEvents(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(51))

	in, err := currentinput.New()
	require.NoError(t, err)
	defer in.Release()
	require.NoError(t, in.OpenWait(time.Second))

	require.NoError(t, in.SetCurrentChangeTrigger(0.01))
	trigger, err := in.CurrentChangeTrigger()
	require.NoError(t, err)
	assert.InDelta(t, 0.01, trigger, 1e-9)

	got := make(chan float64, 4)
	require.NoError(t, in.SetOnCurrentChangeHandler(func(v float64) {
		got <- v
	}))
	sim.PushValue(51, "current", 2.5)
	sim.Flush()
	select {
	case v := <-got:
		assert.InDelta(t, 2.5, v, 1e-9)
	default:
		t.Fatal("current change never delivered")
	}
}
