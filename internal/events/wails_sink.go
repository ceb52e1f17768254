package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// WailsSink publishes events to the frontend through the Wails event bus.
type WailsSink struct {
	ctx context.Context
}

// NewWailsSink creates a sink bound to the Wails application context. The
// context must be the one handed to the startup lifecycle hook.
func NewWailsSink(ctx context.Context) *WailsSink {
	return &WailsSink{ctx: ctx}
}

// Publish emits the event to all frontend listeners on the channel. Emit
// errors are not reported by the Wails runtime; delivery is best-effort.
func (s *WailsSink) Publish(channel string, payload any) {
	runtime.EventsEmit(s.ctx, channel, payload)
}
