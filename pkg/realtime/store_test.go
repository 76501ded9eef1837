package realtime

import "testing"

func TestNewRoomStore(t *testing.T) {
	s := NewRoomStore[string, string]()
	if s == nil {
		t.Fatal("NewRoomStore returned nil")
	}
}

func TestRoomStore_Create_Get(t *testing.T) {
	s := NewRoomStore[string, string]()
	s.Create("room1", "state1")
	room, ok := s.Get("room1")
	if !ok {
		t.Fatal("Get returned false for existing room")
	}
	if room.ID != "room1" {
		t.Errorf("room ID %q, want room1", room.ID)
	}
	if room.State != "state1" {
		t.Errorf("room State %q, want state1", room.State)
	}

	_, ok = s.Get("nonexistent")
	if ok {
		t.Error("Get should return false for missing ID")
	}
}

func TestRoomStore_Publish(t *testing.T) {
	s := NewRoomStore[string, string]()
	s.Create("r1", "x")
	hub := s.Broadcaster("r1")
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	s.Publish("r1", "event1")
	got := <-ch
	if got != "event1" {
		t.Errorf("got %q, want event1", got)
	}
}

func TestRoomStore_PublishMissingRoomIsNoop(t *testing.T) {
	s := NewRoomStore[string, string]()
	s.Publish("nonexistent", "event1")
	if s.Broadcaster("nonexistent") != nil {
		t.Error("Broadcaster should be nil for a missing room")
	}
	if s.Len() != 0 {
		t.Errorf("Len %d, want 0", s.Len())
	}
}

func TestRoomStore_DeleteClosesSubscribers(t *testing.T) {
	s := NewRoomStore[string, string]()
	s.Create("r1", "x")
	ch := s.Broadcaster("r1").Subscribe()

	if _, ok := s.Delete("r1"); !ok {
		t.Fatal("Delete returned false for existing room")
	}
	if _, open := <-ch; open {
		t.Error("subscriber channel should be closed after Delete")
	}
	if _, ok := s.Get("r1"); ok {
		t.Error("room should be gone after Delete")
	}
	if _, ok := s.Delete("r1"); ok {
		t.Error("second Delete should return false")
	}
}

func TestRoomStore_Sweep(t *testing.T) {
	s := NewRoomStore[int, string]()
	s.Create("a", 1)
	s.Create("b", 2)
	s.Create("c", 3)

	removed := s.Sweep(func(n int) bool { return n%2 == 1 })
	if len(removed) != 1 || removed[0].ID != "b" {
		t.Fatalf("removed %+v, want only b", removed)
	}
	if s.Len() != 2 {
		t.Errorf("Len %d, want 2", s.Len())
	}
	if _, ok := s.Get("b"); ok {
		t.Error("b should have been swept")
	}
}

func TestRoomStore_Ensure(t *testing.T) {
	s := NewRoomStore[string, string]()
	calls := 0
	newState := func() string {
		calls++
		return "fresh"
	}

	r1, created := s.Ensure("r1", newState)
	if !created || r1.State != "fresh" {
		t.Fatalf("first Ensure created=%v state=%q", created, r1.State)
	}
	r2, created := s.Ensure("r1", newState)
	if created {
		t.Error("second Ensure should reuse the room")
	}
	if r1 != r2 {
		t.Error("Ensure returned a different room")
	}
	if calls != 1 {
		t.Errorf("newState called %d times, want 1", calls)
	}
}
