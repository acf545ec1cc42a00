package phidget_test

import (
	"testing"

	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceClassNames(t *testing.T) {
	assert.Equal(t, "Hub", phidget.DeviceClassHub.String())
	assert.Equal(t, "VINT", phidget.DeviceClassVINT.String())
	assert.Equal(t, "Stepper", phidget.DeviceClassStepper.String())
}

func TestParseDeviceClass(t *testing.T) {
	cls, err := phidget.ParseDeviceClass("hub")
	require.NoError(t, err)
	assert.Equal(t, phidget.DeviceClassHub, cls)

	cls, err = phidget.ParseDeviceClass("TemperatureSensor")
	require.NoError(t, err)
	assert.Equal(t, phidget.DeviceClassTemperatureSensor, cls)

	_, err = phidget.ParseDeviceClass("flux capacitor")
	assert.Error(t, err)
}

func TestDeviceClassTextRoundTrip(t *testing.T) {
	text, err := phidget.DeviceClassHub.MarshalText()
	require.NoError(t, err)

	var cls phidget.DeviceClass
	require.NoError(t, cls.UnmarshalText(text))
	assert.Equal(t, phidget.DeviceClassHub, cls)
}

func TestChannelClassNames(t *testing.T) {
	assert.Equal(t, "TemperatureSensor", phidget.ChannelClassTemperatureSensor.String())
	assert.Equal(t, "DigitalOutput", phidget.ChannelClassDigitalOutput.String())
	assert.Equal(t, "VoltageRatioInput", phidget.ChannelClassVoltageRatioInput.String())
}

func TestParseChannelClass(t *testing.T) {
	cls, err := phidget.ParseChannelClass("stepper")
	require.NoError(t, err)
	assert.Equal(t, phidget.ChannelClassStepper, cls)
}
