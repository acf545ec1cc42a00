package log_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Alia5/gophidget/internal/log"
	"github.com/Alia5/gophidget/phidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelTrace, log.ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, log.ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, log.ParseLevel(""))
	assert.Equal(t, slog.LevelError, log.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, log.ParseLevel("bogus"))
}

func TestSetupLoggerConsole(t *testing.T) {
	logger, closers, err := log.SetupLogger("debug", "")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Empty(t, closers)
}

func TestSetupLoggerHonorsLevel(t *testing.T) {
	logger, _, err := log.SetupLogger("warn", "")
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
	assert.True(t, logger.Enabled(ctx, slog.LevelError))

	logger, _, err = log.SetupLogger("trace", "")
	require.NoError(t, err)
	assert.True(t, logger.Enabled(ctx, log.LevelTrace))
}

func TestSetupLoggerFile(t *testing.T) {
	f := t.TempDir() + "/out.log"
	logger, closers, err := log.SetupLogger("info", f)
	require.NoError(t, err)
	require.Len(t, closers, 1)
	logger.Info("hello")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}
}

type captureWriter struct{ lines []string }

func (c *captureWriter) Write(p []byte) (int, error) {
	c.lines = append(c.lines, string(p))
	return len(p), nil
}

func TestEventLoggerFormatsLine(t *testing.T) {
	w := &captureWriter{}
	ev := log.NewEvent(w)

	ev.Log(true, phidget.DeviceInfo{SerialNumber: 42, Channel: 1, HubPort: -1, DeviceSKU: "HUB0000"})
	ev.Log(false, phidget.DeviceInfo{SerialNumber: 42, Channel: 1, HubPort: -1, DeviceSKU: "HUB0000"})

	require.Len(t, w.lines, 2)
	assert.Contains(t, w.lines[0], "ATTACH")
	assert.Contains(t, w.lines[0], "serial=42")
	assert.Contains(t, w.lines[1], "DETACH")
}

func TestEventLoggerNilWriterIsNoop(t *testing.T) {
	ev := log.NewEvent(nil)
	ev.Log(true, phidget.DeviceInfo{SerialNumber: 1})
}
