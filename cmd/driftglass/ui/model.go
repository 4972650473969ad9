package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"driftglass/internal/page"
	"driftglass/internal/resolve"
	"driftglass/internal/settings"
)

// SettingsMsg carries a settings change into the update loop. The demo
// wires store subscriptions (panel edits and watcher reloads alike) to
// Program.Send with this message.
type SettingsMsg settings.EffectsSettings

// tickMsg drives the settle rendering while a transition window is open.
type tickMsg time.Time

const (
	headerRows = 1
	footerRows = 1
	panelWidth = 38
	gutter     = 2
)

// flip records one visibility transition, so the view can render the
// settling state until the configured transition duration has elapsed.
type flip struct {
	visible bool
	at      time.Time
}

// Model is the bubbletea model for the demo page.
type Model struct {
	page  *page.Page
	store *settings.Store

	current settings.EffectsSettings
	styles  Styles
	keys    keyMap
	help    help.Model

	width  int
	height int
	ready  bool

	panelOpen bool
	panelRow  int

	// bodies caches glamour-rendered section bodies per content width.
	bodies     map[string][]string
	bodiesFor  int
	flips      map[string]flip
	ticking    bool

	logger *zap.Logger
}

// New builds the demo model around an existing page and store.
func New(p *page.Page, store *settings.Store, styles Styles, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		page:    p,
		store:   store,
		current: store.Settings(),
		styles:  styles,
		keys:    defaultKeyMap(),
		help:    help.New(),
		bodies:  make(map[string][]string),
		flips:   make(map[string]flip),
		logger:  logger,
	}

	for _, s := range p.Sections() {
		id := s.ID
		s.Handle.OnChange(func(visible bool) {
			m.flips[id] = flip{visible: visible, at: time.Now()}
		})
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// contentWidth is the width left for the page once the panel is open.
func (m *Model) contentWidth() int {
	w := m.width
	if m.panelOpen {
		w -= panelWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

// bodyHeight is the viewport height in rows.
func (m *Model) bodyHeight() int {
	h := m.height - headerRows - footerRows
	if h < 1 {
		h = 1
	}
	return h
}

// renderBodies re-renders every section body with glamour at the given
// width. Rendering is cached until the width changes.
func (m *Model) renderBodies(width int) {
	if width == m.bodiesFor {
		return
	}
	m.bodiesFor = width

	style := "light"
	if m.styles.Theme.IsDark {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.logger.Warn("glamour renderer unavailable, using raw bodies", zap.Error(err))
		renderer = nil
	}

	for _, s := range m.page.Sections() {
		body := s.Body
		if renderer != nil {
			if out, err := renderer.Render(s.Body); err == nil {
				body = out
			}
		}
		m.bodies[s.ID] = splitLines(body)
	}
}

// settling reports whether the section is inside its transition window.
func (m *Model) settling(id string) bool {
	f, ok := m.flips[id]
	if !ok {
		return false
	}
	dur := resolve.TransitionDuration(m.current.TransitionSpeed)
	return dur > 0 && time.Since(f.at) < dur
}

// anySettling reports whether any section is mid-transition.
func (m *Model) anySettling() bool {
	for _, s := range m.page.Sections() {
		if m.settling(s.ID) {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
