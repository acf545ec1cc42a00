package humidity_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/humidity"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ phidget.Phidget = (*humidity.Sensor)(nil)

func simSensor(serial int32, rh float64) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Humidity Phidget",
		SKU:          "HUM1001",
		ChannelClass: phidgettest.ClassHumiditySensor,
		Props:        map[string]float64{"humidity": rh},
	}
}

func TestReadHumidity(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(31, 45.5))

	sensor, err := humidity.New()
	require.NoError(t, err)
	defer sensor.Release()

	require.NoError(t, sensor.OpenWait(time.Second))
	v, err := sensor.Humidity()
	require.NoError(t, err)
	assert.InDelta(t, 45.5, v, 1e-9)
}

func TestHumidityChangeEvents(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(31, 40.0))

	sensor, err := humidity.New()
	require.NoError(t, err)
	defer sensor.Release()
	require.NoError(t, sensor.OpenWait(time.Second))

	got := make(chan float64, 4)
	require.NoError(t, sensor.SetOnHumidityChangeHandler(func(v float64) {
		got <- v
	}))

	sim.PushValue(31, "humidity", 51.25)
	sim.Flush()
	select {
	case v := <-got:
		assert.InDelta(t, 51.25, v, 1e-9)
	default:
		t.Fatal("humidity change never delivered")
	}
}
