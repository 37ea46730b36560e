package events

import "context"

// The stream travels on the context from the run controller down through
// stage executors and gateway worker goroutines. Every task under one run
// sees the run's stream; independent concurrent runs carry independent
// streams. This replaces ambient task-local state with an explicit value.

type streamKey struct{}
type noToolsKey struct{}

// NewContext returns a context carrying the run's event stream.
func NewContext(ctx context.Context, s *Stream) context.Context {
	return context.WithValue(ctx, streamKey{}, s)
}

// FromContext returns the stream installed by the run controller, if any.
func FromContext(ctx context.Context) (*Stream, bool) {
	s, ok := ctx.Value(streamKey{}).(*Stream)
	return s, ok
}

// Emit publishes to the context's stream. No-op when no stream is installed,
// so library code can emit unconditionally.
func Emit(ctx context.Context, evt Event) {
	if s, ok := FromContext(ctx); ok {
		s.Publish(evt)
	}
}

// WithNoTools marks the run as tool-free: the gateway passes no tool schemas
// regardless of agent configuration.
func WithNoTools(ctx context.Context, noTools bool) context.Context {
	return context.WithValue(ctx, noToolsKey{}, noTools)
}

// NoTools reports whether the run disabled tools.
func NoTools(ctx context.Context) bool {
	v, _ := ctx.Value(noToolsKey{}).(bool)
	return v
}
