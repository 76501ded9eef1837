package visitor

import (
	"sync"
	"time"

	"github.com/nguyentuan-2001/wedding/internal/config"
	"github.com/nguyentuan-2001/wedding/internal/reveal"
)

// Element is an observable page element.
type Element struct {
	ID      string
	Classes []string
}

// Activation is pushed to the page when an element is revealed.
type Activation struct {
	ID      string `json:"id"`
	Class   string `json:"class"`
	Profile string `json:"profile"`
}

type profileTrigger struct {
	profile config.Profile
	trigger *reveal.Trigger
}

// Session holds one page visit's reveal state.
type Session struct {
	ID string

	mu       sync.Mutex
	lastSeen time.Time
	triggers []profileTrigger
	classes  map[string][]string
}

func newSession(id string, profiles []config.Profile, elements []Element, publish func(Activation), now time.Time) *Session {
	s := &Session{ID: id, lastSeen: now, classes: make(map[string][]string, len(elements))}
	for _, el := range elements {
		s.classes[el.ID] = el.Classes
	}
	for _, p := range profiles {
		var ids []string
		for _, el := range elements {
			if p.Watches(el.Classes) {
				ids = append(ids, el.ID)
			}
		}
		profile := p
		onActivate := func(id string) {
			if publish != nil {
				publish(Activation{ID: id, Class: profile.ActiveClass, Profile: profile.Name})
			}
		}
		s.triggers = append(s.triggers, profileTrigger{
			profile: p,
			trigger: reveal.New(p.Options, ids, onActivate),
		})
	}
	return s
}

// Scan runs every profile against one geometry report.
func (s *Session) Scan(viewport reveal.Rect, reports []reveal.Report, now time.Time) []Activation {
	s.Touch(now)
	var out []Activation
	for _, pt := range s.triggers {
		for _, id := range pt.trigger.Scan(viewport, reports) {
			out = append(out, Activation{ID: id, Class: pt.profile.ActiveClass, Profile: pt.profile.Name})
		}
	}
	return out
}

// Notify feeds precomputed visibility ratios to every profile.
func (s *Session) Notify(entries []reveal.Entry, now time.Time) []Activation {
	s.Touch(now)
	var out []Activation
	for _, pt := range s.triggers {
		for _, id := range pt.trigger.Notify(entries) {
			out = append(out, Activation{ID: id, Class: pt.profile.ActiveClass, Profile: pt.profile.Name})
		}
	}
	return out
}

// Forget stops observing an element that left the page.
func (s *Session) Forget(id string) {
	for _, pt := range s.triggers {
		pt.trigger.Unobserve(id)
	}
}

// Watch resumes observing an element that was added back to the page.
// IDs outside the page catalog are ignored, and an element that already
// earned a class will not earn it again.
func (s *Session) Watch(id string) {
	classes, ok := s.classes[id]
	if !ok {
		return
	}
	for _, pt := range s.triggers {
		if pt.profile.Watches(classes) {
			pt.trigger.Observe(id)
		}
	}
}

// ActiveClasses returns the classes already earned by element id.
func (s *Session) ActiveClasses(id string) []string {
	var classes []string
	for _, pt := range s.triggers {
		if pt.trigger.Activated(id) {
			classes = append(classes, pt.profile.ActiveClass)
		}
	}
	return classes
}

// Touch records activity.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
	s.mu.Unlock()
}

// LastSeen returns the time of the latest activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close releases every trigger.
func (s *Session) Close() {
	for _, pt := range s.triggers {
		pt.trigger.Close()
	}
}
