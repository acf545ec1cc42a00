package voltageinput_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/voltageinput"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ phidget.Phidget = (*voltageinput.Input)(nil)

func simSensor(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Voltage Phidget",
		SKU:          "VCP1001",
		ChannelClass: phidgettest.ClassVoltageInput,
		Props: map[string]float64{
			"voltage":    3.3,
			"minVoltage": -40,
			"maxVoltage": 40,
		},
	}
}

func TestReadVoltage(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(71))

	in, err := voltageinput.New()
	require.NoError(t, err)
	defer in.Release()
	require.NoError(t, in.OpenWait(time.Second))

	v, err := in.Voltage()
	require.NoError(t, err)
	assert.InDelta(t, 3.3, v, 1e-9)

	lo, err := in.MinVoltage()
	require.NoError(t, err)
	assert.InDelta(t, -40, lo, 1e-9)
	hi, err := in.MaxVoltage()
	require.NoError(t, err)
	assert.InDelta(t, 40, hi, 1e-9)
}

func TestVoltageChangeEvents(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(71))

	in, err := voltageinput.New()
	require.NoError(t, err)
	defer in.Release()
	require.NoError(t, in.OpenWait(time.Second))

	got := make(chan float64, 4)
	require.NoError(t, in.SetOnVoltageChangeHandler(func(v float64) {
		got <- v
	}))
	sim.PushValue(71, "voltage", 4.7)
	sim.Flush()
	select {
	case v := <-got:
		assert.InDelta(t, 4.7, v, 1e-9)
	default:
		t.Fatal("voltage change never delivered")
	}
}
