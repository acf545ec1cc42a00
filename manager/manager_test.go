package manager_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/manager"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sensorDevice(serial int32) *phidgettest.Device {
	return &phidgettest.Device{
		Serial:       serial,
		HubPort:      -1,
		Name:         "Humidity Phidget",
		SKU:          "HUM1001",
		ChannelName:  "Humidity Sensor",
		DeviceClass:  uint32(phidget.DeviceClassVINT),
		ChannelClass: phidgettest.ClassHumiditySensor,
		Props:        map[string]float64{"humidity": 45.0},
	}
}

func TestManagerWithoutLibrary(t *testing.T) {
	_, err := manager.New()
	assert.ErrorIs(t, err, phidget.ErrNotConfigured)
}

func TestManagerAnnouncesExistingDevices(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(sensorDevice(123456))

	mg, err := manager.New()
	require.NoError(t, err)
	defer func() { _ = mg.Close() }()

	var mu sync.Mutex
	var seen []phidget.DeviceInfo
	require.NoError(t, mg.Start(func(ref *phidget.Ref) {
		info, err := phidget.Describe(ref)
		if err != nil {
			t.Errorf("describe failed: %v", err)
			return
		}
		mu.Lock()
		seen = append(seen, info)
		mu.Unlock()
	}, nil))

	sim.Flush()
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1)
	assert.Equal(t, int32(123456), seen[0].SerialNumber)
	assert.Equal(t, "HUM1001", seen[0].DeviceSKU)
}

func TestManagerDeliversAttachAndDetach(t *testing.T) {
	sim := phidgettest.Install(t)

	mg, err := manager.New()
	require.NoError(t, err)
	defer func() { _ = mg.Close() }()

	attach := make(chan int32, 4)
	detach := make(chan int32, 4)
	require.NoError(t, mg.Start(func(ref *phidget.Ref) {
		if sn, err := ref.SerialNumber(); err == nil {
			attach <- sn
		}
	}, func(ref *phidget.Ref) {
		detach <- 0
	}))

	sim.AttachDevice(sensorDevice(42))
	sim.Flush()
	select {
	case sn := <-attach:
		assert.Equal(t, int32(42), sn)
	default:
		t.Fatal("attach event not delivered")
	}

	sim.DetachDevice(42)
	sim.Flush()
	select {
	case <-detach:
	default:
		t.Fatal("detach event not delivered")
	}
}

func TestRefDiesWithCallback(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(sensorDevice(7))

	mg, err := manager.New()
	require.NoError(t, err)
	defer func() { _ = mg.Close() }()

	escaped := make(chan *phidget.Ref, 1)
	require.NoError(t, mg.Start(func(ref *phidget.Ref) {
		escaped <- ref
	}, nil))
	sim.Flush()

	ref := <-escaped
	_, err = ref.SerialNumber()
	assert.ErrorIs(t, err, phidget.ErrClosed)
}

func TestRetainedChannelOutlivesSweep(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(sensorDevice(123456))

	mg, err := manager.New()
	require.NoError(t, err)

	found := make(chan *phidget.Generic, 1)
	require.NoError(t, mg.Start(func(ref *phidget.Ref) {
		dev, err := ref.Retain()
		if err != nil {
			t.Errorf("retain failed: %v", err)
			return
		}
		found <- dev
	}, nil))
	sim.Flush()
	require.NoError(t, mg.Stop())

	var dev *phidget.Generic
	select {
	case dev = <-found:
	case <-time.After(time.Second):
		t.Fatal("no channel retained")
	}
	defer dev.Release()

	serial, err := dev.SerialNumber()
	require.NoError(t, err)
	assert.Equal(t, int32(123456), serial)

	// The device goes away: the owned view reports the absence but stays
	// a valid handle until released.
	sim.DetachDevice(123456)
	_, err = dev.SerialNumber()
	assert.ErrorIs(t, err, phidget.ErrNotAttached)
	assert.NoError(t, dev.Close())
}

func TestManagerLifecycle(t *testing.T) {
	phidgettest.Install(t)

	mg, err := manager.New()
	require.NoError(t, err)

	require.NoError(t, mg.Start(nil, nil))
	assert.ErrorIs(t, mg.Start(nil, nil), phidget.ErrDuplicate)

	require.NoError(t, mg.Stop())
	require.NoError(t, mg.Stop()) // idempotent
	assert.ErrorIs(t, mg.Start(nil, nil), phidget.ErrClosed)
}

func TestNewManagerResumesAfterStop(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(sensorDevice(100))

	first, err := manager.New()
	require.NoError(t, err)
	stale := make(chan int32, 4)
	require.NoError(t, first.Start(func(ref *phidget.Ref) {
		if sn, err := ref.SerialNumber(); err == nil {
			stale <- sn
		}
	}, nil))
	sim.Flush()
	require.Equal(t, int32(100), <-stale)
	require.NoError(t, first.Stop())

	// A stopped manager is terminal; a fresh instance picks up where it
	// left off, re-announcing whatever is still attached.
	second, err := manager.New()
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	attach := make(chan int32, 4)
	require.NoError(t, second.Start(func(ref *phidget.Ref) {
		if sn, err := ref.SerialNumber(); err == nil {
			attach <- sn
		}
	}, nil))
	sim.Flush()
	select {
	case sn := <-attach:
		assert.Equal(t, int32(100), sn)
	default:
		t.Fatal("attached device not re-announced to new manager")
	}

	sim.AttachDevice(sensorDevice(200))
	sim.Flush()
	select {
	case sn := <-attach:
		assert.Equal(t, int32(200), sn)
	default:
		t.Fatal("hotplug not delivered to new manager")
	}
	select {
	case sn := <-stale:
		t.Fatalf("stopped manager still receiving events: serial %d", sn)
	default:
	}
}

func TestStoppedManagerStopsDelivering(t *testing.T) {
	sim := phidgettest.Install(t)

	mg, err := manager.New()
	require.NoError(t, err)

	attach := make(chan int32, 4)
	require.NoError(t, mg.Start(func(ref *phidget.Ref) {
		if sn, err := ref.SerialNumber(); err == nil {
			attach <- sn
		}
	}, nil))
	require.NoError(t, mg.Stop())

	sim.AttachDevice(sensorDevice(9))
	sim.Flush()
	select {
	case sn := <-attach:
		t.Fatalf("event delivered after stop: serial %d", sn)
	default:
	}
}
