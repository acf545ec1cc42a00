package pressure_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/pressure"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ phidget.Phidget = (*pressure.Sensor)(nil)

func simSensor(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Pressure Phidget",
		SKU:          "PRE1000",
		ChannelClass: phidgettest.ClassPressureSensor,
		Props: map[string]float64{
			"pressure":    101.3,
			"minPressure": 20,
			"maxPressure": 400,
		},
	}
}

func TestReadPressure(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(41))

	sensor, err := pressure.New()
	require.NoError(t, err)
	defer sensor.Release()
	require.NoError(t, sensor.OpenWait(time.Second))

	v, err := sensor.Pressure()
	require.NoError(t, err)
	assert.InDelta(t, 101.3, v, 1e-9)

	lo, err := sensor.MinPressure()
	require.NoError(t, err)
	assert.InDelta(t, 20, lo, 1e-9)
	hi, err := sensor.MaxPressure()
	require.NoError(t, err)
	assert.InDelta(t, 400, hi, 1e-9)
}

func TestPressureChangeTriggerRoundTrip(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(41))

	sensor, err := pressure.New()
	require.NoError(t, err)
	defer sensor.Release()
	require.NoError(t, sensor.OpenWait(time.Second))

	require.NoError(t, sensor.SetPressureChangeTrigger(0.5))
	trigger, err := sensor.PressureChangeTrigger()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, trigger, 1e-9)
}
