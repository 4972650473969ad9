package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"driftglass/internal/resolve"
	"driftglass/internal/settings"
)

// panelRows lists the panel entries in display order; the final row is the
// reset action.
var panelRows = []string{
	settings.KeyAnimationStyle,
	settings.KeyTransitionSpeed,
	settings.KeyParallaxIntensity,
	settings.KeyCustomCursor,
	settings.KeyAmbientLighting,
	settings.KeyFilmGrain,
	"reset",
}

// valuesFor returns the legal values for a key, in cycling order.
func valuesFor(key string) []string {
	switch key {
	case settings.KeyAnimationStyle:
		return []string{"fade-up", "slide", "scale", "blur-morph", "clip-reveal"}
	case settings.KeyTransitionSpeed:
		return []string{"fast", "normal", "slow", "off"}
	case settings.KeyParallaxIntensity:
		return []string{"off", "subtle", "normal", "intense"}
	default:
		return []string{"true", "false"}
	}
}

// currentValue reads the value for a panel key from a settings snapshot.
func currentValue(s settings.EffectsSettings, key string) string {
	switch key {
	case settings.KeyAnimationStyle:
		return string(s.AnimationStyle)
	case settings.KeyTransitionSpeed:
		return string(s.TransitionSpeed)
	case settings.KeyParallaxIntensity:
		return string(s.ParallaxIntensity)
	case settings.KeyCustomCursor:
		return fmt.Sprintf("%v", s.EffectToggles.CustomCursor)
	case settings.KeyAmbientLighting:
		return fmt.Sprintf("%v", s.EffectToggles.AmbientLighting)
	case settings.KeyFilmGrain:
		return fmt.Sprintf("%v", s.EffectToggles.FilmGrain)
	}
	return ""
}

// cycleValue returns the value delta steps away from current in the key's
// value list.
func cycleValue(key, current string, delta int) string {
	values := valuesFor(key)
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(values)) % len(values)
	return values[idx]
}

// updatePanel handles keys while the effects panel has focus.
func (m *Model) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case msg.String() == "q", key.Matches(msg, m.keys.Close):
		m.panelOpen = false
		m.renderBodies(m.contentWidth() - gutter)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.panelRow > 0 {
			m.panelRow--
		}
	case key.Matches(msg, m.keys.Down):
		if m.panelRow < len(panelRows)-1 {
			m.panelRow++
		}

	case key.Matches(msg, m.keys.Prev):
		m.cycleSelected(-1)
	case key.Matches(msg, m.keys.Next):
		if panelRows[m.panelRow] == "reset" {
			m.store.ResetToDefaults()
			m.current = m.store.Settings()
		} else {
			m.cycleSelected(1)
		}

	case key.Matches(msg, m.keys.Reset):
		m.store.ResetToDefaults()
		m.current = m.store.Settings()
	}
	return m, m.settleCmd()
}

// cycleSelected steps the selected setting through its legal values. The
// store validates; the panel only ever offers legal values, so a rejection
// here would be a bug, not a user error.
func (m *Model) cycleSelected(delta int) {
	key := panelRows[m.panelRow]
	if key == "reset" {
		return
	}
	next := cycleValue(key, currentValue(m.current, key), delta)
	if m.store.UpdateSetting(key, next) {
		m.current = m.store.Settings()
	}
}

// shortLabel trims the effectToggles prefix for display.
func shortLabel(key string) string {
	return strings.TrimPrefix(key, "effectToggles.")
}

// renderPanel draws the effects panel sidebar.
func (m *Model) renderPanel() string {
	var b strings.Builder

	b.WriteString(m.styles.PanelTitle.Render("effects"))
	b.WriteString("\n\n")

	for i, key := range panelRows {
		var line string
		if key == "reset" {
			line = "reset to defaults"
		} else {
			line = fmt.Sprintf("%-18s %s", shortLabel(key), currentValue(m.current, key))
		}

		if i == m.panelRow {
			b.WriteString(m.styles.PanelSelected.Render("› " + line))
		} else {
			b.WriteString(m.styles.PanelKey.Render("  ") + m.styles.PanelValue.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.PanelKey.Render(fmt.Sprintf("transition %s", resolve.TransitionDuration(m.current.TransitionSpeed))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.PanelKey.Render("←/→ change · r reset · esc close"))

	panel := m.styles.PanelBorder.Width(panelWidth - 2).Render(b.String())
	return panel
}
