package realtime

import "sync"

// Room holds state and a broadcaster for one room.
type Room[T any, E any] struct {
	ID    string
	State T
	hub   *Broadcaster[E]
}

// RoomStore manages rooms and their broadcasters.
type RoomStore[T any, E any] struct {
	mu    sync.RWMutex
	rooms map[string]*Room[T, E]
}

// NewRoomStore creates an empty room store.
func NewRoomStore[T any, E any]() *RoomStore[T, E] {
	return &RoomStore[T, E]{
		rooms: make(map[string]*Room[T, E]),
	}
}

// Create adds a room with the given id and state, and a new Broadcaster.
// An existing room with the same id is replaced.
func (s *RoomStore[T, E]) Create(id string, state T) *Room[T, E] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.rooms[id]; ok && old.hub != nil {
		old.hub.Close()
	}
	r := &Room[T, E]{ID: id, State: state, hub: NewBroadcaster[E]()}
	s.rooms[id] = r
	return r
}

// Ensure returns the room for id, creating it with newState if missing.
// created reports whether newState was called.
func (s *RoomStore[T, E]) Ensure(id string, newState func() T) (room *Room[T, E], created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.rooms[id]; ok {
		return r, false
	}
	r := &Room[T, E]{ID: id, State: newState(), hub: NewBroadcaster[E]()}
	s.rooms[id] = r
	return r, true
}

// Get returns the room by ID if it exists.
func (s *RoomStore[T, E]) Get(id string) (*Room[T, E], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	return r, ok
}

// Delete removes the room and closes its subscribers.
func (s *RoomStore[T, E]) Delete(id string) (*Room[T, E], bool) {
	s.mu.Lock()
	r, ok := s.rooms[id]
	if ok {
		delete(s.rooms, id)
	}
	s.mu.Unlock()
	if ok && r.hub != nil {
		r.hub.Close()
	}
	return r, ok
}

// Len reports the number of rooms.
func (s *RoomStore[T, E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Publish notifies subscribers of the room's broadcaster.
// Publishing to a missing room is a no-op.
func (s *RoomStore[T, E]) Publish(id string, event E) {
	s.mu.RLock()
	r, ok := s.rooms[id]
	s.mu.RUnlock()
	if !ok || r.hub == nil {
		return
	}
	r.hub.Publish(event)
}

// Broadcaster returns the broadcaster for the room, or nil if the room does not exist.
func (s *RoomStore[T, E]) Broadcaster(id string) *Broadcaster[E] {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil
	}
	if r.hub == nil {
		r.hub = NewBroadcaster[E]()
	}
	return r.hub
}

// Sweep deletes every room for which keep returns false and returns the removed rooms.
// keep is called with the store lock held and must not call back into the store.
func (s *RoomStore[T, E]) Sweep(keep func(state T) bool) []*Room[T, E] {
	s.mu.Lock()
	var removed []*Room[T, E]
	for id, r := range s.rooms {
		if keep(r.State) {
			continue
		}
		delete(s.rooms, id)
		removed = append(removed, r)
	}
	s.mu.Unlock()
	for _, r := range removed {
		if r.hub != nil {
			r.hub.Close()
		}
	}
	return removed
}
