package events

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_SingleProducerOrdering(t *testing.T) {
	s := NewStream()
	for i := 0; i < 10; i++ {
		s.Publish(New(TypeStage, "run-1", StagePayload{Message: string(rune('a' + i))}))
	}

	for i := 0; i < 10; i++ {
		evt, ok := s.TryNext()
		require.True(t, ok)
		assert.Equal(t, StagePayload{Message: string(rune('a' + i))}, evt.Payload,
			"events from one producer must arrive in production order")
	}
	_, ok := s.TryNext()
	assert.False(t, ok)
}

func TestStream_ConcurrentProducers(t *testing.T) {
	s := NewStream()

	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				s.Publish(New(TypeToolCall, "run-1", nil))
			}
		}()
	}
	wg.Wait()

	count := 0
	for {
		if _, ok := s.TryNext(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, 40, count)
}

func TestStream_PublishAfterCloseIsDropped(t *testing.T) {
	s := NewStream()
	s.Publish(New(TypeRunStart, "run-1", nil))
	s.Close()
	s.Close() // idempotent
	s.Publish(New(TypeStage, "run-1", nil))

	evt, ok := s.TryNext()
	require.True(t, ok, "events queued before close stay readable")
	assert.Equal(t, TypeRunStart, evt.Type)

	_, ok = s.TryNext()
	assert.False(t, ok)
}

func TestContextCarrier(t *testing.T) {
	ctx := context.Background()

	_, ok := FromContext(ctx)
	assert.False(t, ok)
	Emit(ctx, New(TypeStage, "run-1", nil)) // must not panic without a stream

	s := NewStream()
	ctx = NewContext(ctx, s)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, s, got)

	Emit(ctx, New(TypeStage, "run-1", nil))
	evt, ok := s.TryNext()
	require.True(t, ok)
	assert.Equal(t, TypeStage, evt.Type)
}

func TestContextCarrier_IndependentRuns(t *testing.T) {
	s1, s2 := NewStream(), NewStream()
	ctx1 := NewContext(context.Background(), s1)
	ctx2 := NewContext(context.Background(), s2)

	Emit(ctx1, New(TypeStage, "run-1", nil))

	_, ok := s2.TryNext()
	assert.False(t, ok, "streams of independent runs must not cross")
	_, ok = s1.TryNext()
	assert.True(t, ok)
	_ = ctx2
}

func TestNoToolsFlag(t *testing.T) {
	ctx := context.Background()
	assert.False(t, NoTools(ctx))
	assert.True(t, NoTools(WithNoTools(ctx, true)))
	assert.False(t, NoTools(WithNoTools(ctx, false)))
}
