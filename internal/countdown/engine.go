// Package countdown computes the time remaining until a fixed instant and
// republishes it on a repeating ticker.
package countdown

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultPeriod is the interval between ticks.
const DefaultPeriod = time.Second

// Engine recomputes the countdown state for one target.
type Engine struct {
	target Target
	period time.Duration
	clock  Clock
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithPeriod sets the tick interval. Non-positive values keep the default.
func WithPeriod(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.period = d
		}
	}
}

// WithLogger sets the logger used for tick failures.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine for target.
func NewEngine(target Target, opts ...Option) *Engine {
	e := &Engine{
		target: target,
		period: DefaultPeriod,
		clock:  SystemClock{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Target returns the configured target.
func (e *Engine) Target() Target {
	return e.target
}

// Period returns the tick interval.
func (e *Engine) Period() time.Duration {
	return e.period
}

// Current computes the state for the clock's current time.
func (e *Engine) Current() State {
	return Compute(e.target, e.clock.Now())
}

// Start invokes onTick once immediately and then on every tick until ctx is
// done or the returned subscription is closed. After the first arrived state
// every later tick reports arrival as well.
//
// A panic in onTick ends this subscription only.
func (e *Engine) Start(ctx context.Context, onTick func(State)) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}
	ticker := e.clock.NewTicker(e.period)
	go e.run(ctx, ticker, onTick, sub.done)
	return sub
}

func (e *Engine) run(ctx context.Context, ticker Ticker, onTick func(State), done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("countdown tick failed target=%s err=%v", e.target, r)
		}
	}()

	arrived := false
	tick := func() {
		state := e.Current()
		if arrived {
			state = Arrived
		} else if state.Arrived {
			arrived = true
		}
		onTick(state)
	}

	if ctx.Err() != nil {
		return
	}
	tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			tick()
		}
	}
}

// Subscription is the handle for a running engine loop.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Close stops the loop and waits for it to exit. It is safe to call more
// than once but must not be called from inside onTick; cancel the context
// passed to Start instead.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed once the loop has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
