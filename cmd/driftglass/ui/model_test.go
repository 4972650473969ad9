package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftglass/internal/config"
	"driftglass/internal/page"
	"driftglass/internal/settings"
)

func testDeck() config.Deck {
	return config.Deck{
		Title: "test deck",
		Sections: []config.Section{
			{ID: "first", Title: "First Section", Body: "body one", Height: 12, TriggerOnce: true},
			{ID: "second", Title: "Second Section", Body: "body two", Height: 12},
			{ID: "last", Title: "Last Section", Body: "body three", Height: 12},
		},
		Layers: []config.Layer{{ID: "bg", Rune: "·", BaseDistance: 20}},
	}
}

func newTestModel(t *testing.T) (*Model, *settings.Store) {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"), nil)
	pg := page.New(testDeck(), 0, nil)
	t.Cleanup(pg.Close)
	return New(pg, store, NewStyles(DarkTheme()), nil), store
}

func sized(t *testing.T, m *Model) *Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(*Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestCycleValue(t *testing.T) {
	assert.Equal(t, "slide", cycleValue(settings.KeyAnimationStyle, "fade-up", 1))
	assert.Equal(t, "clip-reveal", cycleValue(settings.KeyAnimationStyle, "fade-up", -1), "cycling wraps")
	assert.Equal(t, "false", cycleValue(settings.KeyFilmGrain, "true", 1))
	assert.Equal(t, "fast", cycleValue(settings.KeyTransitionSpeed, "off", 1), "cycling wraps forward")
}

func TestCurrentValue(t *testing.T) {
	s := settings.DefaultSettings()
	assert.Equal(t, "fade-up", currentValue(s, settings.KeyAnimationStyle))
	assert.Equal(t, "normal", currentValue(s, settings.KeyTransitionSpeed))
	assert.Equal(t, "true", currentValue(s, settings.KeyCustomCursor))
	assert.Equal(t, "false", currentValue(s, settings.KeyFilmGrain))
}

func TestUpdate_WindowSizeSizesThePage(t *testing.T) {
	m, _ := newTestModel(t)
	require.False(t, m.ready)

	m = sized(t, m)
	assert.True(t, m.ready)
	assert.Equal(t, 24-headerRows-footerRows, m.page.ViewHeight())
	assert.True(t, m.page.Sections()[0].Handle.Visible(), "above-the-fold section visible after sizing")
}

func TestUpdate_ScrollKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	next, _ := m.Update(keyMsg("j"))
	m = next.(*Model)
	assert.Equal(t, 1, m.page.Offset())

	next, _ = m.Update(keyMsg("k"))
	m = next.(*Model)
	assert.Equal(t, 0, m.page.Offset())

	next, _ = m.Update(keyMsg("G"))
	m = next.(*Model)
	assert.Equal(t, m.page.Height()-m.bodyHeight(), m.page.Offset())

	next, _ = m.Update(keyMsg("g"))
	m = next.(*Model)
	assert.Equal(t, 0, m.page.Offset())
}

func TestUpdate_PanelEditsStore(t *testing.T) {
	m, store := newTestModel(t)
	m = sized(t, m)

	next, _ := m.Update(keyMsg("e"))
	m = next.(*Model)
	require.True(t, m.panelOpen)

	// First row is animationStyle; cycle it forward once.
	next, _ = m.Update(keyMsg("right"))
	m = next.(*Model)
	assert.Equal(t, settings.StyleSlide, store.Settings().AnimationStyle)
	assert.Equal(t, settings.StyleSlide, m.current.AnimationStyle)

	next, _ = m.Update(keyMsg("esc"))
	m = next.(*Model)
	assert.False(t, m.panelOpen)
}

func TestUpdate_PanelReset(t *testing.T) {
	m, store := newTestModel(t)
	m = sized(t, m)
	store.UpdateSetting(settings.KeyTransitionSpeed, "slow")
	m.current = store.Settings()

	next, _ := m.Update(keyMsg("e"))
	m = next.(*Model)
	next, _ = m.Update(keyMsg("r"))
	m = next.(*Model)

	assert.Equal(t, settings.DefaultSettings(), store.Settings())
	assert.Equal(t, settings.DefaultSettings(), m.current)
}

func TestUpdate_SettingsMsgAdoptsExternalChange(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	edited := settings.DefaultSettings()
	edited.AnimationStyle = settings.StyleBlurMorph
	next, _ := m.Update(SettingsMsg(edited))
	m = next.(*Model)

	assert.Equal(t, settings.StyleBlurMorph, m.current.AnimationStyle)
}

func TestView_RendersVisibleSectionsOnly(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	out := m.View()
	assert.Contains(t, out, "First Section")
	assert.NotContains(t, out, "Last Section", "off-screen section must not render")

	next, _ := m.Update(keyMsg("G"))
	m = next.(*Model)
	out = m.View()
	assert.Contains(t, out, "Last Section")
}

func TestView_PanelSidebar(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	next, _ := m.Update(keyMsg("e"))
	m = next.(*Model)
	out := m.View()
	assert.Contains(t, out, "effects")
	assert.Contains(t, out, "reset to defaults")
}

func TestFocusedSection(t *testing.T) {
	m, _ := newTestModel(t)
	m = sized(t, m)

	// Viewport middle row 11 sits in the first section (rows 0-11).
	require.NotNil(t, m.focusedSection())
	assert.Equal(t, "first", m.focusedSection().ID)

	next, _ := m.Update(keyMsg("G"))
	m = next.(*Model)
	assert.Equal(t, "last", m.focusedSection().ID)
}

func TestNoiseIsStableAcrossRedraws(t *testing.T) {
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			assert.Equal(t, noise(x, y), noise(x, y))
		}
	}
	assert.NotEqual(t, noise(3, 7), noise(7, 3), "hash mixes coordinates")
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Nil(t, splitLines(""))
}
