package events

import "sync"

// Channel names the frontend subscribes to. Supervisor status lines are
// multiplexed onto the same two channels as backend output.
const (
	BackendStdout = "backend-stdout"
	BackendStderr = "backend-stderr"
)

// Sink broadcasts events to whatever UI surfaces are currently listening.
// Publish is fire-and-forget: there is no delivery guarantee, no queueing
// and no backpressure. If no listener is attached the event is dropped.
type Sink interface {
	Publish(channel string, payload any)
}

// NullSink discards every event. Used before the UI runtime is available.
type NullSink struct{}

func (NullSink) Publish(string, any) {}

// MemorySink records published events in order. It exists for tests that
// need to observe supervisor output without a running UI.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// Event is one recorded publish call.
type Event struct {
	Channel string
	Payload any
}

// Publish appends the event to the in-memory record.
func (s *MemorySink) Publish(channel string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{Channel: channel, Payload: payload})
}

// Events returns a copy of everything published so far, in publish order.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// OnChannel returns the payloads published to a single channel, in order.
func (s *MemorySink) OnChannel(channel string) []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []any
	for _, e := range s.events {
		if e.Channel == channel {
			out = append(out, e.Payload)
		}
	}
	return out
}
