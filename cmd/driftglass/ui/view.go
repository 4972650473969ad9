package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"driftglass/internal/page"
	"driftglass/internal/resolve"
)

// cell classes for the background plane.
const (
	cellEmpty = iota
	cellGrain
	cellLayerFar
	cellLayerNear
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "measuring viewport..."
	}

	header := m.renderHeader()
	rows := m.renderRows()
	body := strings.Join(rows, "\n")

	if m.panelOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderPanel())
	}

	return header + "\n" + body + "\n" + m.renderFooter()
}

func (m *Model) renderHeader() string {
	title := m.page.Title()
	if m.current.EffectToggles.AmbientLighting {
		return m.styles.HeaderLit.Width(m.width).Render(title)
	}
	return m.styles.Header.Width(m.width).Render(title)
}

func (m *Model) renderFooter() string {
	hint := m.help.View(m.keys)
	status := fmt.Sprintf("%s · %s · %3.0f%%",
		m.current.AnimationStyle,
		resolve.TransitionDuration(m.current.TransitionSpeed),
		m.page.Progress()*100,
	)

	pad := m.width - lipgloss.Width(hint) - lipgloss.Width(status) - 2
	if pad < 1 {
		pad = 1
	}
	return m.styles.Footer.Render(hint + strings.Repeat(" ", pad) + status)
}

// renderRows composes the viewport: parallax layers and film grain behind,
// sections in front.
func (m *Model) renderRows() []string {
	width := m.contentWidth()
	height := m.bodyHeight()
	offset := m.page.Offset()

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		rows[y] = m.backgroundRow(y+offset, width)
	}

	focused := m.focusedSection()
	for _, s := range m.page.Sections() {
		m.overlaySection(rows, s, offset, width, s == focused)
	}
	return rows
}

// backgroundRow renders one page row of parallax glyphs and grain.
func (m *Model) backgroundRow(pageRow, width int) string {
	chars := make([]rune, width)
	class := make([]int, width)
	for x := range chars {
		chars[x] = ' '
	}

	if m.current.EffectToggles.FilmGrain {
		for x := 0; x < width; x++ {
			if noise(x, pageRow)%23 == 0 {
				chars[x] = '.'
				class[x] = cellGrain
			}
		}
	}

	layers := m.page.Layers()
	progress := m.page.Progress()
	for i, layer := range layers {
		shift := int(resolve.ParallaxOffset(progress, layer.BaseDistance, m.current.ParallaxIntensity))
		spacing := 7 - 2*i // nearer layers are denser
		if spacing < 3 {
			spacing = 3
		}
		if (pageRow+shift)%spacing != 0 {
			continue
		}

		glyph := '·'
		if r := []rune(layer.Rune); len(r) > 0 {
			glyph = r[0]
		}
		cls := cellLayerFar
		if i > 0 {
			cls = cellLayerNear
		}
		for x := (pageRow*3 + i*5) % 9; x < width; x += 9 {
			chars[x] = glyph
			class[x] = cls
		}
	}

	return m.styleRow(chars, class)
}

// styleRow styles consecutive runs of same-class cells in one pass.
func (m *Model) styleRow(chars []rune, class []int) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(chars); i++ {
		if i < len(chars) && class[i] == class[start] {
			continue
		}
		segment := string(chars[start:i])
		switch class[start] {
		case cellGrain:
			segment = m.styles.Grain.Render(segment)
		case cellLayerFar:
			segment = m.styles.LayerFar.Render(segment)
		case cellLayerNear:
			segment = m.styles.LayerNear.Render(segment)
		}
		b.WriteString(segment)
		start = i
	}
	return b.String()
}

// overlaySection draws a section's rows over the background when its
// resolved presentation calls for it.
func (m *Model) overlaySection(rows []string, s *page.Section, offset, width int, focused bool) {
	visible := s.Handle.Visible()
	settling := m.settling(s.ID)
	p := resolve.Resolve(m.current, visible)

	// Opacity is binary: a hidden section outside its transition window
	// leaves the background untouched.
	if p.Opacity == 0 && !settling {
		return
	}

	lineStyle := m.styles.SectionBody
	titleStyle := m.styles.SectionTitle
	indent := 0
	if settling {
		lineStyle = m.styles.Settling
		titleStyle = m.styles.Settling
		if p.Blur > 0 {
			lineStyle = m.styles.Blurred
			titleStyle = m.styles.Blurred
		}
		// Mid-transition the block still carries the hidden offset.
		hidden := resolve.Resolve(m.current, false)
		if hidden.OffsetX < 0 {
			indent = 1
		}
	}

	lines := m.sectionLines(s, titleStyle, lineStyle, focused)
	height := m.bodyHeight()

	for i, line := range lines {
		if i >= s.Height {
			break
		}
		screenY := s.Top + i - offset
		if screenY < 0 || screenY >= height {
			continue
		}
		text := strings.Repeat(" ", gutter+indent) + line
		rows[screenY] = lipgloss.NewStyle().MaxWidth(width).Render(text)
	}
}

// sectionLines assembles the title and cached glamour body for a section.
func (m *Model) sectionLines(s *page.Section, titleStyle, bodyStyle lipgloss.Style, focused bool) []string {
	title := titleStyle.Render(s.Title)
	if focused && m.current.EffectToggles.CustomCursor {
		title = m.styles.Cursor.Render("❯ ") + title
	}

	lines := []string{title}
	for _, line := range m.bodies[s.ID] {
		lines = append(lines, bodyStyle.Render(line))
	}
	return lines
}

// focusedSection is the section under the viewport's middle row.
func (m *Model) focusedSection() *page.Section {
	middle := m.page.Offset() + m.bodyHeight()/2
	for _, s := range m.page.Sections() {
		if middle >= s.Top && middle < s.Top+s.Height {
			return s
		}
	}
	return nil
}

// noise is a cheap deterministic hash for grain placement, stable across
// redraws so the grain does not shimmer with every keypress.
func noise(x, y int) int {
	h := uint32(x)*2654435761 + uint32(y)*40503
	h ^= h >> 13
	return int(h % 97)
}
