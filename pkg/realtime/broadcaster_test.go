package realtime

import (
	"testing"
)

func TestNewBroadcaster(t *testing.T) {
	b := NewBroadcaster[string]()
	if b == nil {
		t.Fatal("NewBroadcaster returned nil")
	}
}

func TestBroadcaster_Subscribe(t *testing.T) {
	b := NewBroadcaster[string]()
	ch := b.Subscribe()
	if ch == nil {
		t.Fatal("Subscribe returned nil channel")
	}
	if b.Len() != 1 {
		t.Errorf("Len %d, want 1", b.Len())
	}
	b.Unsubscribe(ch)
	if b.Len() != 0 {
		t.Errorf("Len %d, want 0", b.Len())
	}
}

func TestBroadcaster_PublishDeliversToSubscriber(t *testing.T) {
	b := NewBroadcaster[string]()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish("countdown")
	got := <-ch
	if got != "countdown" {
		t.Errorf("got event %q, want %q", got, "countdown")
	}
}

func TestBroadcaster_PublishDeliversToMultipleSubscribers(t *testing.T) {
	b := NewBroadcaster[int]()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()
	defer b.Unsubscribe(ch1)
	defer b.Unsubscribe(ch2)

	b.Publish(42)
	if got := <-ch1; got != 42 {
		t.Errorf("ch1 got %d, want 42", got)
	}
	if got := <-ch2; got != 42 {
		t.Errorf("ch2 got %d, want 42", got)
	}
}

func TestBroadcaster_PublishDropsWhenLagging(t *testing.T) {
	b := NewBroadcaster[int]()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	for i := 0; i < 25; i++ {
		b.Publish(i)
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffered %d, want full buffer %d", len(ch), cap(ch))
	}
	if got := <-ch; got != 0 {
		t.Errorf("first event %d, want 0", got)
	}
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster[string]()
	ch := b.Subscribe()
	b.Unsubscribe(ch)
	_, open := <-ch
	if open {
		t.Error("channel should be closed after Unsubscribe")
	}
	// Second unsubscribe must not double-close.
	b.Unsubscribe(ch)
}

func TestBroadcaster_CloseClosesAll(t *testing.T) {
	b := NewBroadcaster[string]()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()
	b.Close()
	if _, open := <-ch1; open {
		t.Error("ch1 should be closed")
	}
	if _, open := <-ch2; open {
		t.Error("ch2 should be closed")
	}
	b.Unsubscribe(ch1)
}

func TestBroadcaster_UnsubscribeRemovesFromDelivery(t *testing.T) {
	b := NewBroadcaster[string]()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()
	b.Unsubscribe(ch1) // ch1 is closed; only ch2 should receive subsequent events
	b.Publish("reveal")
	if got := <-ch2; got != "reveal" {
		t.Errorf("ch2 got %q, want reveal", got)
	}
	b.Unsubscribe(ch2)
}
