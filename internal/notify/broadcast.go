package notify

import (
	"context"
	"sync"
)

// Broadcaster fans newly created notifications out to all active subscribers
// (SSE clients). Slow subscribers drop events rather than block publishers.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan Notification
	next int
}

// NewBroadcaster initialises an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Notification)}
}

// Subscribe registers a subscriber and returns a channel which will receive
// events. The channel is closed when the provided context ends.
func (b *Broadcaster) Subscribe(ctx context.Context) <-chan Notification {
	ch := make(chan Notification, 16)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		close(ch)
		b.mu.Unlock()
	}()

	return ch
}

// Publish delivers a notification to every subscriber without blocking.
func (b *Broadcaster) Publish(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- n:
		default:
		}
	}
}

// Subscribers reports the number of active subscriptions.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
