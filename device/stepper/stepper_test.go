package stepper_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/device/stepper"
	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simMotor(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Stepper Phidget",
		SKU:          "STC1000",
		ChannelClass: phidgettest.ClassStepper,
		Props:        map[string]float64{},
	}
}

func TestMoveToTarget(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simMotor(31))

	motor, err := stepper.New()
	require.NoError(t, err)
	defer motor.Release()
	require.NoError(t, motor.OpenWait(time.Second))

	stopped := make(chan struct{}, 1)
	require.NoError(t, motor.SetOnStoppedHandler(func() {
		stopped <- struct{}{}
	}))
	positions := make(chan float64, 4)
	require.NoError(t, motor.SetOnPositionChangeHandler(func(pos float64) {
		positions <- pos
	}))

	require.NoError(t, motor.SetEngaged(true))
	require.NoError(t, motor.SetTargetPosition(1600))
	sim.Flush()

	select {
	case <-stopped:
	default:
		t.Fatal("stopped event never delivered")
	}
	select {
	case pos := <-positions:
		assert.InDelta(t, 1600, pos, 1e-9)
	default:
		t.Fatal("position change never delivered")
	}

	pos, err := motor.Position()
	require.NoError(t, err)
	assert.InDelta(t, 1600, pos, 1e-9)

	target, err := motor.TargetPosition()
	require.NoError(t, err)
	assert.InDelta(t, 1600, target, 1e-9)
}

func TestEngagedRoundTrip(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(simMotor(31))

	motor, err := stepper.New()
	require.NoError(t, err)
	defer motor.Release()
	require.NoError(t, motor.OpenWait(time.Second))

	require.NoError(t, motor.SetEngaged(true))
	on, err := motor.Engaged()
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, motor.SetEngaged(false))
	on, err = motor.Engaged()
	require.NoError(t, err)
	assert.False(t, on)
}

func TestControlModeString(t *testing.T) {
	assert.Equal(t, "step", stepper.ControlModeStep.String())
	assert.Equal(t, "run", stepper.ControlModeRun.String())
}
