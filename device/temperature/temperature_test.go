package temperature_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/temperature"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Embedding *phidget.Channel must promote the full capability surface.
var _ phidget.Phidget = (*temperature.Sensor)(nil)

func simSensor(serial int32, temp float64) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Temperature Phidget",
		SKU:          "TMP1000",
		ChannelClass: phidgettest.ClassTemperatureSensor,
		Props:        map[string]float64{"temperature": temp},
	}
}

func TestNewWithoutLibrary(t *testing.T) {
	_, err := temperature.New()
	assert.ErrorIs(t, err, phidget.ErrNotConfigured)
}

func TestReadTemperature(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(11, 22.5))

	sensor, err := temperature.New()
	require.NoError(t, err)
	defer sensor.Release()

	require.NoError(t, sensor.OpenWait(time.Second))
	v, err := sensor.Temperature()
	require.NoError(t, err)
	assert.InDelta(t, 22.5, v, 1e-9)
}

func TestTemperatureChangeEvents(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(11, 20.0))

	sensor, err := temperature.New()
	require.NoError(t, err)
	defer sensor.Release()
	require.NoError(t, sensor.OpenWait(time.Second))

	got := make(chan float64, 4)
	require.NoError(t, sensor.SetOnTemperatureChangeHandler(func(v float64) {
		got <- v
	}))

	sim.PushValue(11, "temperature", 23.75)
	sim.Flush()
	select {
	case v := <-got:
		assert.InDelta(t, 23.75, v, 1e-9)
	default:
		t.Fatal("temperature change never delivered")
	}

	// Clearing the handler stops delivery.
	require.NoError(t, sensor.SetOnTemperatureChangeHandler(nil))
	sim.PushValue(11, "temperature", 30.0)
	sim.Flush()
	select {
	case v := <-got:
		t.Fatalf("event delivered after handler cleared: %v", v)
	default:
	}
}

func TestReadAfterRelease(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(11, 20.0))

	sensor, err := temperature.New()
	require.NoError(t, err)
	require.NoError(t, sensor.OpenWait(time.Second))

	sensor.Release()
	_, err = sensor.Temperature()
	assert.ErrorIs(t, err, phidget.ErrClosed)
}
