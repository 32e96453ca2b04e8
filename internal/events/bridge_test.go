package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	constants "github.com/zoomctl/zoomctl/internal/constants"
	domain "github.com/zoomctl/zoomctl/internal/domain"
)

func zoomEvent(dir domain.ZoomDirection, delta float64) domain.ZoomEvent {
	return domain.ZoomEvent{Direction: dir, Delta: delta, At: time.Unix(1700000000, 0)}
}

func TestBridge_PublishSubscribe(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	first := b.Subscribe()
	second := b.Subscribe()

	b.Publish(zoomEvent(domain.ZoomIn, -0.5))

	for _, ch := range []<-chan domain.ZoomEvent{first, second} {
		select {
		case ev := <-ch:
			assert.Equal(t, domain.ZoomIn, ev.Direction)
			assert.Equal(t, -0.5, ev.Delta)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBridge_ReplaysBufferedEvents(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	b.Publish(zoomEvent(domain.ZoomIn, -1))
	b.Publish(zoomEvent(domain.ZoomOut, 1))

	ch := b.Subscribe()
	require.Len(t, ch, 2)
	assert.Equal(t, domain.ZoomIn, (<-ch).Direction)
	assert.Equal(t, domain.ZoomOut, (<-ch).Direction)
}

func TestBridge_ReplayIsBounded(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	for i := 0; i < constants.EventBridgeBufferSize+5; i++ {
		b.Publish(zoomEvent(domain.ZoomOut, float64(i)))
	}

	ch := b.Subscribe()
	require.Len(t, ch, constants.EventBridgeBufferSize)
	assert.Equal(t, float64(5), (<-ch).Delta)
}

func TestBridge_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBridge()
	defer b.Close()

	_ = b.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < constants.EventBridgeChannelSize*3; i++ {
			b.Publish(zoomEvent(domain.ZoomIn, -1))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestBridge_UnsubscribeAndClose(t *testing.T) {
	b := NewBridge()

	ch := b.Subscribe()
	b.Unsubscribe(ch)
	_, ok := <-ch
	assert.False(t, ok)

	other := b.Subscribe()
	b.Close()
	_, ok = <-other
	assert.False(t, ok)

	b.Publish(zoomEvent(domain.ZoomIn, -1))
	late := b.Subscribe()
	_, ok = <-late
	assert.False(t, ok)

	b.Close()
}
