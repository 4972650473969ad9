// Package ui implements the interactive demo: a scrollable deck of sections
// driven by the real settings store, visibility tracker, and resolver.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Dark palette (default)
	DarkBackground = lipgloss.Color("#10141c")
	DarkForeground = lipgloss.Color("#e6e9ef")
	DarkPrimary    = lipgloss.Color("#7aa2f7")
	DarkAccent     = lipgloss.Color("#e0af68")
	DarkMuted      = lipgloss.Color("#565f89")
	DarkFaint      = lipgloss.Color("#2a3040")
	DarkBorder     = lipgloss.Color("#3b4261")

	// Light palette
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1a1e26")
	LightPrimary    = lipgloss.Color("#2e5cb8")
	LightAccent     = lipgloss.Color("#b8862e")
	LightMuted      = lipgloss.Color("#8a91a0")
	LightFaint      = lipgloss.Color("#d8dbe0")
	LightBorder     = lipgloss.Color("#c4c9d4")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Faint      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Faint:      DarkFaint,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Faint:      LightFaint,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DetectTheme picks a theme from COLORFGBG when present, defaulting to dark.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if bgIdx == 7 || bgIdx == 15 {
					return LightTheme()
				}
			}
		}
	}
	return DarkTheme()
}

// Styles holds the styled components of the demo.
type Styles struct {
	Theme Theme

	Header       lipgloss.Style
	HeaderLit    lipgloss.Style // ambient lighting on
	Footer       lipgloss.Style
	SectionTitle lipgloss.Style
	SectionBody  lipgloss.Style
	Settling     lipgloss.Style // mid-transition
	Blurred      lipgloss.Style
	Grain        lipgloss.Style
	LayerFar     lipgloss.Style
	LayerNear    lipgloss.Style
	Cursor       lipgloss.Style

	PanelBorder   lipgloss.Style
	PanelTitle    lipgloss.Style
	PanelKey      lipgloss.Style
	PanelValue    lipgloss.Style
	PanelSelected lipgloss.Style
}

// NewStyles creates styles for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		HeaderLit: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Accent).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		SectionTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		SectionBody: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Settling: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Blurred: lipgloss.NewStyle().
			Foreground(theme.Faint),

		Grain: lipgloss.NewStyle().
			Foreground(theme.Faint),

		LayerFar: lipgloss.NewStyle().
			Foreground(theme.Faint),

		LayerNear: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Cursor: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		PanelKey: lipgloss.NewStyle().
			Foreground(theme.Muted),

		PanelValue: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		PanelSelected: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary),
	}
}

// DefaultStyles returns styles with the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
