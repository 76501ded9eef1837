// Package reveal activates page elements the first time they scroll into view.
package reveal

import (
	"math"
	"sync"
)

// Options configures a Trigger.
type Options struct {
	// Threshold is the visible-area ratio, in (0,1], an element must reach.
	Threshold float64
	// Margin adjusts the viewport before measuring.
	Margin Margin
}

// Valid reports whether the threshold can ever be satisfied.
func (o Options) Valid() bool {
	return !math.IsNaN(o.Threshold) && o.Threshold > 0 && o.Threshold <= 1
}

// Entry is one visibility notification.
type Entry struct {
	ID    string  `json:"id"`
	Ratio float64 `json:"ratio"`
}

// Report is one element's bounding box as seen by the page.
type Report struct {
	ID  string `json:"id"`
	Box Rect   `json:"box"`
}

type element struct {
	observed  bool
	activated bool
	ratio     float64
}

// Trigger tracks a set of elements and activates each one at most once.
// Leaving the viewport never resets an activation.
type Trigger struct {
	mu         sync.Mutex
	opts       Options
	elements   map[string]*element
	onActivate func(id string)
	closed     bool
}

// New subscribes ids. onActivate may be nil.
func New(opts Options, ids []string, onActivate func(id string)) *Trigger {
	t := &Trigger{
		opts:       opts,
		elements:   make(map[string]*element, len(ids)),
		onActivate: onActivate,
	}
	for _, id := range ids {
		t.elements[id] = &element{observed: true}
	}
	return t
}

// Options returns the trigger's configuration.
func (t *Trigger) Options() Options {
	return t.opts
}

// Observe adds an element, or resumes one that was unobserved.
// An element activated before it was removed stays activated.
func (t *Trigger) Observe(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	el, ok := t.elements[id]
	if !ok {
		t.elements[id] = &element{observed: true}
		return
	}
	if !el.observed {
		el.observed = true
		el.ratio = 0
	}
}

// Unobserve stops notifications for an element. Its activation is kept so a
// later Observe of the same id cannot activate it again.
func (t *Trigger) Unobserve(id string) {
	t.mu.Lock()
	if el, ok := t.elements[id]; ok {
		el.observed = false
	}
	t.mu.Unlock()
}

// Notify processes one batch and returns the IDs it activated, in batch order.
func (t *Trigger) Notify(entries []Entry) []string {
	if !t.opts.Valid() {
		return nil
	}
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	var activated []string
	for _, entry := range entries {
		el, ok := t.elements[entry.ID]
		if !ok || !el.observed {
			continue
		}
		entering := entry.Ratio >= t.opts.Threshold && el.ratio < t.opts.Threshold
		el.ratio = entry.Ratio
		if !entering || el.activated {
			continue
		}
		el.activated = true
		activated = append(activated, entry.ID)
	}
	onActivate := t.onActivate
	t.mu.Unlock()

	if onActivate != nil {
		for _, id := range activated {
			onActivate(id)
		}
	}
	return activated
}

// Scan measures each report against viewport and feeds the ratios to Notify.
func (t *Trigger) Scan(viewport Rect, reports []Report) []string {
	entries := make([]Entry, 0, len(reports))
	for _, r := range reports {
		entries = append(entries, Entry{ID: r.ID, Ratio: Measure(viewport, t.opts.Margin, r.Box)})
	}
	return t.Notify(entries)
}

// Activated reports whether id has been activated.
func (t *Trigger) Activated(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	el, ok := t.elements[id]
	return ok && el.activated
}

// Close ends the subscription. Later notifications are ignored.
func (t *Trigger) Close() {
	t.mu.Lock()
	t.closed = true
	t.elements = map[string]*element{}
	t.mu.Unlock()
}
