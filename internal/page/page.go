// Package page models a scrollable deck of sections: it owns the scroll
// position, computes each section's visible-area fraction, and pushes those
// fractions into the visibility tracker. It plays the role a browser's
// intersection machinery plays for a web page.
package page

import (
	"sync"

	"go.uber.org/zap"

	"driftglass/internal/config"
	"driftglass/internal/visibility"
)

// sectionGap is the blank space between stacked sections, in rows.
const sectionGap = 2

// Section pairs a deck section with its layout and visibility handle.
type Section struct {
	config.Section

	// Top is the section's first row in page coordinates.
	Top int

	Handle *visibility.Handle
}

// Page is the scrollable model. All methods are safe for the single
// event-loop goroutine that drives the UI; a mutex guards the geometry so
// tests may probe concurrently.
type Page struct {
	mu       sync.Mutex
	deck     config.Deck
	sections []*Section
	byID     map[string]*Section

	tracker *visibility.Tracker

	offset     int // first visible page row
	viewHeight int
	total      int // total page height in rows

	logger *zap.Logger
}

// New lays out the deck and registers every section with a fresh tracker.
// viewHeight may be zero when the terminal size is not yet known; call
// Resize before reading visibility in that case.
func New(deck config.Deck, viewHeight int, logger *zap.Logger) *Page {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Page{
		deck:       deck,
		byID:       make(map[string]*Section, len(deck.Sections)),
		viewHeight: viewHeight,
		logger:     logger,
	}

	top := 0
	for _, sc := range deck.Sections {
		s := &Section{Section: sc, Top: top}
		p.sections = append(p.sections, s)
		p.byID[sc.ID] = s
		top += sc.Height + sectionGap
	}
	p.total = top

	// The page is its own intersection source, so geometry must exist
	// before the first Observe triggers the eager evaluation.
	p.tracker = visibility.NewTracker(p, logger)
	for _, s := range p.sections {
		s.Handle = p.tracker.Observe(s.ID, visibility.Options{
			Threshold:   s.Section.Threshold,
			TriggerOnce: s.Section.TriggerOnce,
		})
	}
	return p
}

// Fraction implements visibility.Source: the visible share of the section's
// rows under the current scroll position.
func (p *Page) Fraction(elementID string) (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.byID[elementID]
	if !ok {
		return 0, false
	}
	return p.fractionLocked(s), true
}

func (p *Page) fractionLocked(s *Section) float64 {
	if s.Height <= 0 || p.viewHeight <= 0 {
		return 0
	}

	top := s.Top
	bottom := s.Top + s.Height
	viewTop := p.offset
	viewBottom := p.offset + p.viewHeight

	overlap := min(bottom, viewBottom) - max(top, viewTop)
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(s.Height)
}

// publish recomputes every section's fraction and feeds the tracker.
func (p *Page) publish() {
	p.mu.Lock()
	samples := make([]visibility.Sample, 0, len(p.sections))
	for _, s := range p.sections {
		samples = append(samples, visibility.Sample{
			ElementID: s.ID,
			Fraction:  p.fractionLocked(s),
		})
	}
	p.mu.Unlock()

	p.tracker.Publish(samples...)
}

// ScrollBy moves the viewport by delta rows, clamped to the page.
func (p *Page) ScrollBy(delta int) {
	p.ScrollTo(p.Offset() + delta)
}

// ScrollTo moves the viewport to the given top row, clamped to the page,
// and republishes every section's fraction.
func (p *Page) ScrollTo(offset int) {
	p.mu.Lock()
	maxOffset := p.total - p.viewHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	p.offset = offset
	p.mu.Unlock()

	p.publish()
}

// Resize updates the viewport height and republishes fractions.
func (p *Page) Resize(viewHeight int) {
	p.mu.Lock()
	p.viewHeight = viewHeight
	p.mu.Unlock()

	// Re-clamp the offset against the new height.
	p.ScrollTo(p.Offset())
}

// Offset returns the current first visible row.
func (p *Page) Offset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Height returns the total page height in rows.
func (p *Page) Height() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// ViewHeight returns the viewport height in rows.
func (p *Page) ViewHeight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewHeight
}

// Progress reports overall scroll progress in [0, 1]. A page shorter than
// the viewport is always at progress 0.
func (p *Page) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	span := p.total - p.viewHeight
	if span <= 0 {
		return 0
	}
	progress := float64(p.offset) / float64(span)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Sections returns the laid-out sections in page order.
func (p *Page) Sections() []*Section {
	return p.sections
}

// Layers returns the deck's parallax layers.
func (p *Page) Layers() []config.Layer {
	return p.deck.Layers
}

// Title returns the deck title.
func (p *Page) Title() string {
	return p.deck.Title
}

// Close disposes every visibility handle.
func (p *Page) Close() {
	p.tracker.Close()
}
