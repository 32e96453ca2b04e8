package events

import (
	"container/ring"
	"sync"

	constants "github.com/zoomctl/zoomctl/internal/constants"
	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// Bridge multicasts zoom activity to multiple subscribers
// without slowing down the translator that publishes it.
type Bridge struct {
	subscribers []*subscriber
	subMutex    sync.RWMutex
	eventBuffer *ring.Ring
	closed      bool
}

type subscriber struct {
	ch     chan domain.ZoomEvent
	closed bool
	mu     sync.Mutex
}

var _ domain.ZoomPublisher = (*Bridge)(nil)

// NewBridge creates a new bridge with a circular replay buffer
func NewBridge() *Bridge {
	return &Bridge{
		subscribers: make([]*subscriber, 0),
		eventBuffer: ring.New(constants.EventBridgeBufferSize),
	}
}

// Publish broadcasts an event to all subscribers
// Non-blocking: if a subscriber's channel is full, the event is dropped for that subscriber
func (b *Bridge) Publish(event domain.ZoomEvent) {
	b.subMutex.Lock()
	if b.closed {
		b.subMutex.Unlock()
		return
	}
	b.eventBuffer.Value = event
	b.eventBuffer = b.eventBuffer.Next()
	subscribers := make([]*subscriber, len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.subMutex.Unlock()

	for _, sub := range subscribers {
		sub.mu.Lock()
		if !sub.closed {
			select {
			case sub.ch <- event:
			default:
			}
		}
		sub.mu.Unlock()
	}
}

// Subscribe returns a channel that receives buffered past events followed by
// every future event. On a closed bridge the channel is returned closed.
func (b *Bridge) Subscribe() <-chan domain.ZoomEvent {
	ch := make(chan domain.ZoomEvent, constants.EventBridgeChannelSize)

	b.subMutex.Lock()
	defer b.subMutex.Unlock()

	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, &subscriber{ch: ch})

	b.eventBuffer.Do(func(val any) {
		if event, ok := val.(domain.ZoomEvent); ok {
			select {
			case ch <- event:
			default:
			}
		}
	})

	return ch
}

// Unsubscribe removes a subscriber and closes its channel
func (b *Bridge) Unsubscribe(ch <-chan domain.ZoomEvent) {
	b.subMutex.Lock()
	defer b.subMutex.Unlock()

	for i, sub := range b.subscribers {
		if sub.ch == ch {
			sub.close()
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Close closes all subscriber channels; later publishes are ignored
func (b *Bridge) Close() {
	b.subMutex.Lock()
	defer b.subMutex.Unlock()

	for _, sub := range b.subscribers {
		sub.close()
	}
	b.subscribers = nil
	b.closed = true
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}
