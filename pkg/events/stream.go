package events

import (
	"log/slog"
	"sync"
)

// defaultBuffer bounds the number of undelivered events. The run controller
// drains every 100ms, so the buffer only absorbs bursts (e.g. a parallel
// stage completing many agents at once).
const defaultBuffer = 256

// Stream is the per-run event channel: the run controller and gateway worker
// goroutines publish, the run controller's drain loop is the single consumer.
// Events from a single producer arrive in production order; events across
// producers may interleave.
type Stream struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

// NewStream creates a stream with the default buffer.
func NewStream() *Stream {
	return &Stream{ch: make(chan Event, defaultBuffer)}
}

// Publish enqueues an event. Publishing to a closed stream is a no-op (the
// consumer went away; late tool events from still-draining goroutines are
// expected and dropped). A full buffer also drops, with a warning — progress
// events are advisory, the run itself never blocks on a slow consumer.
func (s *Stream) Publish(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- evt:
	default:
		slog.Warn("Event stream buffer full, dropping event",
			"run_id", evt.RunID, "type", evt.Type)
	}
}

// TryNext returns the next queued event without blocking.
func (s *Stream) TryNext() (Event, bool) {
	select {
	case evt, ok := <-s.ch:
		return evt, ok
	default:
		return Event{}, false
	}
}

// C exposes the receive side for the consumer's select loop.
func (s *Stream) C() <-chan Event {
	return s.ch
}

// Close marks the stream closed. Queued events remain readable; subsequent
// publishes are dropped. Safe to call more than once.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
