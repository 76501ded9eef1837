package countdown

import (
	"context"
	"sync"

	"github.com/nguyentuan-2001/wedding/pkg/realtime"
)

// Feed runs one engine and fans its states out to many subscribers.
type Feed struct {
	engine *Engine
	hub    *realtime.Broadcaster[State]

	mu     sync.RWMutex
	latest State
	ticked bool
	sub    *Subscription
}

// NewFeed wraps engine. Call Start to begin ticking.
func NewFeed(engine *Engine) *Feed {
	return &Feed{
		engine: engine,
		hub:    realtime.NewBroadcaster[State](),
	}
}

// Start begins ticking. Calling Start on a running feed is a no-op.
func (f *Feed) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sub != nil {
		return
	}
	f.sub = f.engine.Start(ctx, f.publish)
}

func (f *Feed) publish(state State) {
	f.mu.Lock()
	f.latest = state
	f.ticked = true
	f.mu.Unlock()
	f.hub.Publish(state)
}

// Latest returns the most recently published state, or a fresh computation
// before the first tick.
func (f *Feed) Latest() State {
	f.mu.RLock()
	latest, ticked := f.latest, f.ticked
	f.mu.RUnlock()
	if !ticked {
		return f.engine.Current()
	}
	return latest
}

// Engine returns the underlying engine.
func (f *Feed) Engine() *Engine {
	return f.engine
}

// Subscribe registers a listener for published states.
func (f *Feed) Subscribe() chan State {
	return f.hub.Subscribe()
}

// Unsubscribe removes a listener and closes its channel.
func (f *Feed) Unsubscribe(ch chan State) {
	f.hub.Unsubscribe(ch)
}

// Stop ends the engine loop and closes every listener.
func (f *Feed) Stop() {
	f.mu.Lock()
	sub := f.sub
	f.sub = nil
	f.mu.Unlock()
	if sub != nil {
		sub.Close()
	}
	f.hub.Close()
}
