package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftglass/internal/config"
)

func testDeck() config.Deck {
	return config.Deck{
		Title: "test",
		Sections: []config.Section{
			{ID: "one", Title: "One", Height: 10, TriggerOnce: true},
			{ID: "two", Title: "Two", Height: 10},
			{ID: "three", Title: "Three", Height: 10},
		},
		Layers: []config.Layer{{ID: "bg", Rune: ".", BaseDistance: 20}},
	}
}

// Layout: one occupies rows 0-9, two rows 12-21, three rows 24-33 (2-row
// gaps), total height 36.

func TestNew_AboveTheFoldVisibleImmediately(t *testing.T) {
	p := New(testDeck(), 15, nil)
	defer p.Close()

	sections := p.Sections()
	assert.True(t, sections[0].Handle.Visible(), "fully visible section must be visible on first read")
	assert.False(t, sections[2].Handle.Visible(), "off-screen section starts hidden")
}

func TestPage_Fraction(t *testing.T) {
	p := New(testDeck(), 15, nil)
	defer p.Close()

	f, ok := p.Fraction("one")
	require.True(t, ok)
	assert.Equal(t, 1.0, f)

	// Rows 12-21; viewport shows rows 0-14, so rows 12-14 overlap: 3/10.
	f, ok = p.Fraction("two")
	require.True(t, ok)
	assert.InDelta(t, 0.3, f, 1e-9)

	_, ok = p.Fraction("nope")
	assert.False(t, ok)
}

func TestPage_ScrollFlipsVisibility(t *testing.T) {
	p := New(testDeck(), 10, nil)
	defer p.Close()

	three := p.Sections()[2]
	require.False(t, three.Handle.Visible())

	p.ScrollTo(24)
	assert.True(t, three.Handle.Visible())

	p.ScrollTo(0)
	assert.False(t, three.Handle.Visible(), "non-latched section hides again on exit")
}

func TestPage_TriggerOnceSurvivesScrollOut(t *testing.T) {
	p := New(testDeck(), 10, nil)
	defer p.Close()

	one := p.Sections()[0]
	require.True(t, one.Handle.Visible())

	p.ScrollTo(26) // section one fully out of view
	assert.True(t, one.Handle.Visible(), "latched section stays visible")
}

func TestPage_ScrollClamps(t *testing.T) {
	p := New(testDeck(), 10, nil)
	defer p.Close()

	p.ScrollTo(-5)
	assert.Equal(t, 0, p.Offset())

	p.ScrollTo(10_000)
	assert.Equal(t, p.Height()-10, p.Offset())

	p.ScrollBy(-10_000)
	assert.Equal(t, 0, p.Offset())
}

func TestPage_Progress(t *testing.T) {
	p := New(testDeck(), 10, nil)
	defer p.Close()

	assert.Equal(t, 0.0, p.Progress())

	p.ScrollTo(10_000)
	assert.Equal(t, 1.0, p.Progress())

	p.ScrollTo(13) // span is 36-10=26
	assert.InDelta(t, 0.5, p.Progress(), 1e-9)
}

func TestPage_ProgressZeroWhenPageFits(t *testing.T) {
	p := New(testDeck(), 100, nil)
	defer p.Close()

	p.ScrollTo(50)
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 0.0, p.Progress())
}

func TestPage_ResizeReclampsAndRepublishes(t *testing.T) {
	p := New(testDeck(), 36, nil)
	defer p.Close()

	two := p.Sections()[1]
	require.True(t, two.Handle.Visible())

	p.Resize(5)
	assert.False(t, two.Handle.Visible(), "shrinking the viewport hides sections below the fold")
}

func TestPage_ZeroViewHeightHidesEverything(t *testing.T) {
	p := New(testDeck(), 0, nil)
	defer p.Close()

	// Section one is TriggerOnce, but with no viewport nothing latches.
	assert.False(t, p.Sections()[0].Handle.Visible())

	p.Resize(15)
	assert.True(t, p.Sections()[0].Handle.Visible())
}
