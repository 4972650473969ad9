package visibility

import (
	"sync"

	"github.com/google/uuid"
)

// Handle is one element's visibility state. Created by Tracker.Observe and
// released by Dispose; the flag flips only through published samples (or the
// eager initial evaluation), never by consumers.
type Handle struct {
	id        uuid.UUID
	elementID string
	opts      Options
	tracker   *Tracker

	mu       sync.Mutex
	visible  bool
	latched  bool
	disposed bool
	subs     map[int]func(bool)
	nextSub  int
}

func newHandle(t *Tracker, elementID string, opts Options) *Handle {
	return &Handle{
		id:        uuid.New(),
		elementID: elementID,
		opts:      opts,
		tracker:   t,
		subs:      make(map[int]func(bool)),
	}
}

// ID returns the unique handle identifier.
func (h *Handle) ID() uuid.UUID { return h.id }

// ElementID returns the observed element's identifier.
func (h *Handle) ElementID() string { return h.elementID }

// Visible reports the current (possibly latched) visibility flag.
func (h *Handle) Visible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible
}

// OnChange registers fn to run synchronously whenever the flag flips. The
// returned cancel function removes the subscription.
func (h *Handle) OnChange(fn func(visible bool)) (cancel func()) {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Dispose stops observation and releases the handle. Idempotent; must be
// called on every teardown path so the tracker holds no dangling handles.
func (h *Handle) Dispose() {
	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		return
	}
	h.disposed = true
	h.mu.Unlock()

	h.tracker.dispose(h)
}

// Disposed reports whether the handle has been released.
func (h *Handle) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}

// apply feeds one visible-area fraction into the handle. The threshold is
// inclusive: fraction == threshold counts as visible. With TriggerOnce the
// first flip to visible latches and exits are ignored from then on.
func (h *Handle) apply(fraction float64) {
	h.mu.Lock()
	if h.disposed || h.latched {
		h.mu.Unlock()
		return
	}

	next := fraction >= h.opts.Threshold
	if next && h.opts.TriggerOnce {
		h.latched = true
	}
	if next == h.visible {
		h.mu.Unlock()
		return
	}
	h.visible = next

	fns := make([]func(bool), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

// markDisposed flags the handle without detaching (tracker already dropped
// its reference during Close).
func (h *Handle) markDisposed() {
	h.mu.Lock()
	h.disposed = true
	h.mu.Unlock()
}
