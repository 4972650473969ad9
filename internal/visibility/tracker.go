// Package visibility tracks which observed elements currently intersect the
// viewport. Elements are registered with Observe and flipped exclusively by
// intersection samples published by the viewport source; consumers read the
// flag from the returned handle or subscribe to change callbacks.
package visibility

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultThreshold is the visible-area fraction an element must reach before
// it counts as visible.
const DefaultThreshold = 0.1

// Sample reports the visible-area fraction of one element, in [0, 1].
type Sample struct {
	ElementID string
	Fraction  float64
}

// Source answers the current visible-area fraction of an element on demand.
// It is queried once, eagerly, when an element is first observed, so content
// already inside the viewport is visible on the first read instead of
// waiting for a scroll event.
type Source interface {
	Fraction(elementID string) (float64, bool)
}

// Options configure a single observation.
type Options struct {
	// Threshold is the inclusive visible-area fraction at which the element
	// flips visible. Zero or negative means DefaultThreshold.
	Threshold float64

	// TriggerOnce latches the first flip to visible permanently.
	TriggerOnce bool
}

// Tracker owns all observations for one page. A tracker built with a nil
// source is fail-open: every observed element is treated as immediately
// visible, so content is never hidden on a platform with no intersection
// signal.
type Tracker struct {
	mu      sync.Mutex
	source  Source
	handles map[string][]*Handle
	closed  bool

	logger *zap.Logger
}

// NewTracker creates a tracker fed by source. source may be nil (fail-open).
func NewTracker(source Source, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		source:  source,
		handles: make(map[string][]*Handle),
		logger:  logger,
	}
}

// Observe registers an element and returns its handle. The element's current
// fraction is evaluated immediately: with a real source from its answer, and
// in fail-open mode as fully visible.
func (t *Tracker) Observe(elementID string, opts Options) *Handle {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}

	h := newHandle(t, elementID, opts)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		h.disposed = true
		return h
	}
	t.handles[elementID] = append(t.handles[elementID], h)
	t.mu.Unlock()

	// Eager initial evaluation.
	if t.source == nil {
		h.apply(1.0)
		t.logger.Debug("no intersection source, failing open", zap.String("element", elementID))
		return h
	}
	if fraction, ok := t.source.Fraction(elementID); ok {
		h.apply(fraction)
	}
	return h
}

// Publish delivers intersection samples to the matching handles. Samples for
// unobserved elements are ignored. Delivery and change callbacks run
// synchronously on the calling goroutine.
func (t *Tracker) Publish(samples ...Sample) {
	for _, sample := range samples {
		t.mu.Lock()
		hs := append([]*Handle(nil), t.handles[sample.ElementID]...)
		t.mu.Unlock()

		for _, h := range hs {
			h.apply(sample.Fraction)
		}
	}
}

// Close disposes every live handle. Further Observe calls return handles
// that are already disposed.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	var all []*Handle
	for _, hs := range t.handles {
		all = append(all, hs...)
	}
	t.handles = make(map[string][]*Handle)
	t.mu.Unlock()

	for _, h := range all {
		h.markDisposed()
	}
}

// dispose detaches one handle; called from Handle.Dispose.
func (t *Tracker) dispose(h *Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	hs := t.handles[h.elementID]
	for i, candidate := range hs {
		if candidate == h {
			t.handles[h.elementID] = append(hs[:i], hs[i+1:]...)
			break
		}
	}
	if len(t.handles[h.elementID]) == 0 {
		delete(t.handles, h.elementID)
	}
}

// ObservedCount reports how many handles are currently live.
func (t *Tracker) ObservedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, hs := range t.handles {
		n += len(hs)
	}
	return n
}
