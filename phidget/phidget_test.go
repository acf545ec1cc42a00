package phidget_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/Alia5/gophidget/phidget22"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChannel(t *testing.T) *phidget.Channel {
	t.Helper()
	var h phidget22.Handle
	require.Equal(t, phidget22.CodeOK, phidget22.PhidgetTemperatureSensor_create(&h))
	ch := phidget.NewChannel(h, phidget22.PhidgetTemperatureSensor_delete)
	t.Cleanup(ch.Release)
	return ch
}

func testDevice(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		Channel:      0,
		HubPort:      -1,
		Name:         "Temperature Phidget",
		SKU:          "TMP1000",
		ChannelName:  "Temperature Sensor",
		DeviceClass:  uint32(phidget.DeviceClassVINT),
		ChannelClass: phidgettest.ClassTemperatureSensor,
		DeviceID:     123,
		Props:        map[string]float64{"temperature": 21.0},
	}
}

func TestMetadataBeforeAttach(t *testing.T) {
	phidgettest.Install(t)
	ch := newTestChannel(t)

	require.NoError(t, ch.Open())
	_, err := ch.SerialNumber()
	assert.ErrorIs(t, err, phidget.ErrNotAttached)
	_, err = ch.DeviceSKU()
	assert.ErrorIs(t, err, phidget.ErrNotAttached)
}

func TestMetadataAfterAttach(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(testDevice(424242))
	ch := newTestChannel(t)

	require.NoError(t, ch.OpenWait(time.Second))

	serial, err := ch.SerialNumber()
	require.NoError(t, err)
	assert.Equal(t, int32(424242), serial)

	sku, err := ch.DeviceSKU()
	require.NoError(t, err)
	assert.Equal(t, "TMP1000", sku)

	index, err := ch.ChannelIndex()
	require.NoError(t, err)
	assert.Equal(t, int32(0), index)

	cls, err := ch.ChannelClass()
	require.NoError(t, err)
	assert.Equal(t, phidget.ChannelClassTemperatureSensor, cls)

	attached, err := ch.IsAttached()
	require.NoError(t, err)
	assert.True(t, attached)
}

func TestOpenWaitTimeout(t *testing.T) {
	phidgettest.Install(t)
	ch := newTestChannel(t)

	err := ch.OpenWait(20 * time.Millisecond)
	assert.ErrorIs(t, err, phidget.ErrTimeout)
}

func TestLabelRoundTrip(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(testDevice(7))
	ch := newTestChannel(t)
	require.NoError(t, ch.OpenWait(time.Second))

	require.NoError(t, ch.SetLabel("greenhouse"))
	label, err := ch.Label()
	require.NoError(t, err)
	assert.Equal(t, "greenhouse", label)
}

func TestCloseIsIdempotent(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(testDevice(7))
	ch := newTestChannel(t)
	require.NoError(t, ch.OpenWait(time.Second))

	require.NoError(t, ch.Close())
	require.NoError(t, ch.Close())
}

func TestReleaseInvalidatesChannel(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(testDevice(7))
	ch := newTestChannel(t)
	require.NoError(t, ch.OpenWait(time.Second))

	ch.Release()
	ch.Release() // second release is a no-op

	_, err := ch.SerialNumber()
	assert.ErrorIs(t, err, phidget.ErrClosed)
	err = ch.Open()
	assert.ErrorIs(t, err, phidget.ErrClosed)

	assert.Equal(t, 0, sim.LiveObjects())
}

func TestDescribeSnapshot(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(testDevice(99))
	ch := newTestChannel(t)
	require.NoError(t, ch.OpenWait(time.Second))

	info, err := phidget.Describe(ch)
	require.NoError(t, err)
	assert.Equal(t, int32(99), info.SerialNumber)
	assert.Equal(t, "TMP1000", info.DeviceSKU)
	assert.Equal(t, phidget.ChannelClassTemperatureSensor, info.ChannelClass)
	assert.Equal(t, "Temperature Phidget", info.DeviceName)
}

func TestAttachHandlerRunsOffCaller(t *testing.T) {
	sim := phidgettest.Install(t)
	ch := newTestChannel(t)

	attached := make(chan struct{}, 1)
	require.NoError(t, ch.SetOnAttachHandler(func() {
		attached <- struct{}{}
	}))
	require.NoError(t, ch.Open())

	sim.AttachDevice(testDevice(5))
	select {
	case <-attached:
	case <-time.After(time.Second):
		t.Fatal("attach handler never fired")
	}
}

func TestOperationsWithoutLibrary(t *testing.T) {
	// Nothing installed: every constructor and operation reports the
	// library as missing rather than crashing.
	if phidget22.Ready() {
		t.Skip("native library unexpectedly present")
	}
	ch := phidget.NewChannel(1, nil)
	err := ch.Open()
	assert.ErrorIs(t, err, phidget.ErrNotConfigured)
}
