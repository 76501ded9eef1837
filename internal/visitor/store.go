// Package visitor keeps per-visit reveal state for the wedding page.
package visitor

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentuan-2001/wedding/internal/config"
	"github.com/nguyentuan-2001/wedding/pkg/realtime"
)

// Store holds sessions and delegates to realtime.RoomStore for lookup and broadcast.
type Store struct {
	r        *realtime.RoomStore[*Session, Activation]
	profiles []config.Profile
	elements []Element
}

// NewStore creates an in-memory session store. Every session observes
// elements under each of profiles.
func NewStore(profiles []config.Profile, elements []Element) *Store {
	return &Store{
		r:        realtime.NewRoomStore[*Session, Activation](),
		profiles: profiles,
		elements: elements,
	}
}

// Open returns the session for id, creating one when id is unknown.
// Malformed IDs are replaced with a fresh one.
func (s *Store) Open(id string, now time.Time) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	room, created := s.r.Ensure(id, func() *Session {
		return newSession(id, s.profiles, s.elements, func(a Activation) { s.Publish(id, a) }, now)
	})
	room.State.Touch(now)
	return room.State, created
}

// Get returns a session by ID if it exists.
func (s *Store) Get(id string) (*Session, bool) {
	room, ok := s.r.Get(id)
	if !ok {
		return nil, false
	}
	return room.State, true
}

// Broadcaster returns the activation stream for a session, or nil.
func (s *Store) Broadcaster(id string) *realtime.Broadcaster[Activation] {
	return s.r.Broadcaster(id)
}

// Publish notifies the session's subscribers.
func (s *Store) Publish(id string, a Activation) {
	s.r.Publish(id, a)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.r.Len()
}

// Sweep evicts sessions idle for longer than maxIdle and returns how many went.
func (s *Store) Sweep(now time.Time, maxIdle time.Duration) int {
	removed := s.r.Sweep(func(sess *Session) bool {
		return now.Sub(sess.LastSeen()) <= maxIdle
	})
	for _, room := range removed {
		room.State.Close()
	}
	return len(removed)
}

// StartJanitor sweeps idle sessions every interval until ctx is done.
func (s *Store) StartJanitor(ctx context.Context, every, maxIdle time.Duration) {
	ticker := time.NewTicker(every)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := s.Sweep(now, maxIdle); n > 0 {
					log.Printf("swept idle sessions count=%d live=%d", n, s.Len())
				}
			}
		}
	}()
}
