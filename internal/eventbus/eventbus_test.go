package eventbus

import (
	"testing"
	"time"
)

type planEvent struct{ ID string }

func TestBus_PublishSubscribe(t *testing.T) {
	b := New()
	defer b.Close()
	sub := b.Subscribe()

	b.Publish(planEvent{ID: "p1"})

	select {
	case ev := <-sub:
		pe, ok := ev.(planEvent)
		if !ok || pe.ID != "p1" {
			t.Fatalf("unexpected event %v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()
	defer b.Close()
	sub := b.Subscribe()
	b.Unsubscribe(sub)

	if _, ok := <-sub; ok {
		t.Fatal("channel must be closed after unsubscribe")
	}
	// publishing after unsubscribe must not panic
	b.Publish(planEvent{ID: "p2"})
}

func TestBus_NonBlockingDelivery(t *testing.T) {
	b := New()
	defer b.Close()
	b.Subscribe() // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish(planEvent{ID: "spam"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish must not block on a full subscriber")
	}
}

func TestBus_Close(t *testing.T) {
	b := New()
	sub := b.Subscribe()
	b.Close()
	if _, ok := <-sub; ok {
		t.Fatal("channel must be closed after bus close")
	}
	// second close and late subscribe must be safe
	b.Close()
	late := b.Subscribe()
	if _, ok := <-late; ok {
		t.Fatal("subscribe after close must return a closed channel")
	}
}
