// Package resolve maps (settings, visibility) to concrete presentation
// values. Everything here is a pure function: no side effects, no I/O, no
// caching. The values are target states — whatever interpolation mechanism
// the consuming layer has (CSS transitions, a terminal redraw, a tween
// library) is responsible for the in-between frames.
package resolve

import (
	"time"

	"driftglass/internal/settings"
)

// Presentation is the resolved visual target state for one element.
// Opacity is binary; the transition duration handles the tween.
type Presentation struct {
	Opacity float64

	// OffsetX/OffsetY are the translation away from rest, in presentation
	// units (pixels on a web target, cells in the terminal demo).
	OffsetX float64
	OffsetY float64

	// Blur is set only by the blur-morph style.
	Blur float64

	// Scale is 1.0 except for the scale and blur-morph styles while hidden.
	Scale float64
}

const (
	hiddenOffset = 8.0
	hiddenScale  = 0.95
	hiddenBlur   = 4.0
)

// Resolve returns the presentation for an element under the given settings
// and visibility flag. Deterministic and total over both enums.
func Resolve(s settings.EffectsSettings, visible bool) Presentation {
	p := Presentation{Scale: 1.0}
	if visible {
		p.Opacity = 1.0
		return p
	}

	p.Opacity = 0.0
	switch s.AnimationStyle {
	case settings.StyleFadeUp:
		p.OffsetY = hiddenOffset
	case settings.StyleSlide:
		p.OffsetX = -hiddenOffset
	case settings.StyleScale:
		p.Scale = hiddenScale
	case settings.StyleBlurMorph:
		p.Blur = hiddenBlur
		p.Scale = hiddenScale
	case settings.StyleClipReveal:
		// Opacity only.
	}
	return p
}

// TransitionDuration maps the speed setting to the interpolation duration
// the consuming layer should apply. SpeedOff means an instant snap.
func TransitionDuration(speed settings.TransitionSpeed) time.Duration {
	switch speed {
	case settings.SpeedFast:
		return 150 * time.Millisecond
	case settings.SpeedSlow:
		return 600 * time.Millisecond
	case settings.SpeedOff:
		return 0
	default:
		return 300 * time.Millisecond
	}
}
