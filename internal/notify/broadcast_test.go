package notify

import (
	"context"
	"testing"
	"time"
)

func TestBroadcastDeliversToSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)
	if b.Subscribers() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", b.Subscribers())
	}

	b.Publish(Notification{ID: 1, Title: "Screening due"})

	for i, ch := range []<-chan Notification{ch1, ch2} {
		select {
		case n := <-ch:
			if n.ID != 1 {
				t.Fatalf("subscriber %d got id %d", i, n.ID)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d did not receive event", i)
		}
	}
}

func TestBroadcastUnsubscribesOnContextEnd(t *testing.T) {
	b := NewBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-ch:
			if !open {
				if b.Subscribers() != 0 {
					t.Fatalf("expected 0 subscribers, got %d", b.Subscribers())
				}
				return
			}
		case <-deadline:
			t.Fatal("channel was not closed after context cancel")
		}
	}
}

func TestBroadcastDropsWhenSubscriberFull(t *testing.T) {
	b := NewBroadcaster()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = b.Subscribe(ctx)
	// 16 buffered slots; extra publishes must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			b.Publish(Notification{ID: int64(i)})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
}
