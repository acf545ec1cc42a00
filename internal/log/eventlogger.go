package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Alia5/gophidget/phidget"
)

// EventLogger handles hotplug event tracing with optional file output.
type EventLogger interface {
	Log(attached bool, info phidget.DeviceInfo)
}

// eventLogger implements EventLogger with thread-safe log.
type eventLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewEvent creates a new EventLogger. If writer is nil, returns a no-op logger.
func NewEvent(w io.Writer) EventLogger {
	return &eventLogger{w: w}
}

// Log emits a single-line hotplug trace with timestamp and channel identity.
// attached=true means the channel arrived, attached=false means it left.
func (e *eventLogger) Log(attached bool, info phidget.DeviceInfo) {
	if e.w == nil {
		return
	}

	dir := "DETACH"
	if attached {
		dir = "ATTACH"
	}

	line := fmt.Sprintf("%s %s serial=%d channel=%d hubPort=%d class=%s sku=%s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir,
		info.SerialNumber,
		info.Channel,
		info.HubPort,
		info.ChannelClass,
		info.DeviceSKU)

	e.mu.Lock()
	_, _ = e.w.Write([]byte(line))
	e.mu.Unlock()
}
