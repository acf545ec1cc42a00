package phidget_test

import (
	"testing"
	"time"

	"github.com/Alia5/gophidget/internal/phidgettest"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowedRefReadsMetadata(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(testDevice(1001))
	ch := newTestChannel(t)
	require.NoError(t, ch.OpenWait(time.Second))

	ref, revoke := phidget.Borrow(ch.HandleRef())
	defer revoke()

	serial, err := ref.SerialNumber()
	require.NoError(t, err)
	assert.Equal(t, int32(1001), serial)

	info, err := phidget.Describe(ref)
	require.NoError(t, err)
	assert.Equal(t, "TMP1000", info.DeviceSKU)
}

func TestRevokedRefFailsClosed(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(testDevice(1002))
	ch := newTestChannel(t)
	require.NoError(t, ch.OpenWait(time.Second))

	ref, revoke := phidget.Borrow(ch.HandleRef())
	revoke()

	_, err := ref.SerialNumber()
	assert.ErrorIs(t, err, phidget.ErrClosed)
	_, err = ref.Retain()
	assert.ErrorIs(t, err, phidget.ErrClosed)
}

func TestRetainOutlivesRevocation(t *testing.T) {
	sim := phidgettest.Install(t)
	sim.AttachDevice(testDevice(1003))
	ch := newTestChannel(t)
	require.NoError(t, ch.OpenWait(time.Second))

	ref, revoke := phidget.Borrow(ch.HandleRef())
	owned, err := ref.Retain()
	require.NoError(t, err)
	assert.Equal(t, 2, sim.Refs(ch.HandleRef()))
	revoke()

	// The borrowed view is dead, the owned view still works, even from
	// another goroutine.
	done := make(chan error, 1)
	go func() {
		_, err := owned.SerialNumber()
		done <- err
	}()
	require.NoError(t, <-done)

	owned.Release()
	assert.Equal(t, 1, sim.Refs(ch.HandleRef()))
	_, err = owned.SerialNumber()
	assert.ErrorIs(t, err, phidget.ErrClosed)
}
