// Package log wires up the CLI's slog.Logger and the hotplug event trace.
//
// Normal records go to stdout and errors to stderr so that a monitor
// session can pipe the device stream somewhere useful while native-library
// failures stay visible on the console. With --log.file everything goes to
// the file as well, and the console collapses to stderr only.
//
// The trace level sits below debug and carries per-event detail: attach and
// detach sweeps, native return codes, handler registration. At trace the
// monitor command also mirrors its event stream to stdout (see EventLogger).
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is one step more verbose than slog.LevelDebug.
const LevelTrace slog.Level = -8

// ParseLevel maps a --log.level string to its slog level. Unknown or empty
// input falls back to info rather than failing; kong's enum already rejects
// typos on the flag path.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout replays each record into every handler in the slice.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// band passes only records inside [floor, ceil) to the wrapped handler. It
// is what splits the console: one band below error on stdout, one at error
// and above on stderr.
type band struct {
	floor, ceil slog.Level
	h           slog.Handler
}

func (b band) inside(level slog.Level) bool {
	return level >= b.floor && level < b.ceil
}

func (b band) Enabled(ctx context.Context, level slog.Level) bool {
	return b.inside(level) && b.h.Enabled(ctx, level)
}

func (b band) Handle(ctx context.Context, r slog.Record) error {
	if !b.inside(r.Level) {
		return nil
	}
	return b.h.Handle(ctx, r)
}

func (b band) WithAttrs(attrs []slog.Attr) slog.Handler {
	return band{floor: b.floor, ceil: b.ceil, h: b.h.WithAttrs(attrs)}
}

func (b band) WithGroup(name string) slog.Handler {
	return band{floor: b.floor, ceil: b.ceil, h: b.h.WithGroup(name)}
}

const maxLevel = slog.Level(1 << 10)

// SetupLogger builds the process logger from the --log.level and
// --log.file settings. The returned closers own any opened log file and
// must be closed on exit.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	var handlers fanout
	var closers []io.Closer

	if logFile == "" {
		handlers = append(handlers,
			band{floor: level, ceil: slog.LevelError,
				h: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})},
			band{floor: slog.LevelError, ceil: maxLevel,
				h: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})},
		)
	} else {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		handlers = append(handlers,
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
			slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}),
		)
	}
	return slog.New(handlers), closers, nil
}
