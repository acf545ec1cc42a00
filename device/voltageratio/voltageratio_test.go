package voltageratio_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/voltageratio"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ phidget.Phidget = (*voltageratio.Input)(nil)

func simSensor(serial int32, ratio float64) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Voltage Ratio Phidget",
		SKU:          "1046",
		ChannelClass: phidgettest.ClassVoltageRatioInput,
		Props:        map[string]float64{"voltageRatio": ratio},
	}
}

func TestReadVoltageRatio(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(91, 0.002))

	in, err := voltageratio.New()
	require.NoError(t, err)
	defer in.Release()
	require.NoError(t, in.OpenWait(time.Second))

	v, err := in.VoltageRatio()
	require.NoError(t, err)
	assert.InDelta(t, 0.002, v, 1e-12)
}

func TestVoltageRatioChangeEvents(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simSensor(91, 0))

	in, err := voltageratio.New()
	require.NoError(t, err)
	defer in.Release()
	require.NoError(t, in.OpenWait(time.Second))

	got := make(chan float64, 4)
	require.NoError(t, in.SetOnVoltageRatioChangeHandler(func(v float64) {
		got <- v
	}))
	sim.PushValue(91, "voltageRatio", 0.0035)
	sim.Flush()
	select {
	case v := <-got:
		assert.InDelta(t, 0.0035, v, 1e-12)
	default:
		t.Fatal("ratio change never delivered")
	}
}
