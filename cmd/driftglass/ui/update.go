package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"driftglass/internal/settings"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.page.Resize(m.bodyHeight())
		m.renderBodies(m.contentWidth() - gutter)
		return m, m.settleCmd()

	case SettingsMsg:
		m.current = settings.EffectsSettings(msg)
		return m, m.settleCmd()

	case tickMsg:
		m.ticking = false
		return m, m.settleCmd()

	case tea.KeyMsg:
		if m.panelOpen {
			return m.updatePanel(msg)
		}
		return m.updatePage(msg)
	}
	return m, nil
}

// updatePage handles keys while the page has focus.
func (m *Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Panel):
		m.panelOpen = true
		m.renderBodies(m.contentWidth() - gutter)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.page.ScrollBy(1)
	case key.Matches(msg, m.keys.Up):
		m.page.ScrollBy(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.page.ScrollBy(m.bodyHeight())
	case key.Matches(msg, m.keys.PageUp):
		m.page.ScrollBy(-m.bodyHeight())
	case key.Matches(msg, m.keys.Top):
		m.page.ScrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.page.ScrollTo(m.page.Height())
	}
	return m, m.settleCmd()
}

// settleCmd schedules a redraw tick while any transition window is open.
func (m *Model) settleCmd() tea.Cmd {
	if m.ticking || !m.anySettling() {
		return nil
	}
	m.ticking = true
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
