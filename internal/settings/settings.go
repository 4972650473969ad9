// Package settings holds the user-tunable effects configuration: the
// animation style, transition speed, parallax intensity, and the optional
// effect toggles. The configuration is always total — every field has a
// compiled-in default and no combination of values is illegal.
package settings

import "fmt"

// AnimationStyle selects the enter/exit recipe the resolver applies.
type AnimationStyle string

const (
	StyleFadeUp     AnimationStyle = "fade-up"
	StyleSlide      AnimationStyle = "slide"
	StyleScale      AnimationStyle = "scale"
	StyleBlurMorph  AnimationStyle = "blur-morph"
	StyleClipReveal AnimationStyle = "clip-reveal"
)

// Valid reports whether the style is a known member of the enum.
func (s AnimationStyle) Valid() bool {
	switch s {
	case StyleFadeUp, StyleSlide, StyleScale, StyleBlurMorph, StyleClipReveal:
		return true
	}
	return false
}

// TransitionSpeed controls the duration of the interpolation applied by the
// consuming layer. It never changes the resolved target state itself.
type TransitionSpeed string

const (
	SpeedFast   TransitionSpeed = "fast"
	SpeedNormal TransitionSpeed = "normal"
	SpeedSlow   TransitionSpeed = "slow"
	SpeedOff    TransitionSpeed = "off"
)

// Valid reports whether the speed is a known member of the enum.
func (s TransitionSpeed) Valid() bool {
	switch s {
	case SpeedFast, SpeedNormal, SpeedSlow, SpeedOff:
		return true
	}
	return false
}

// ParallaxIntensity scales the scroll-derived background offset.
type ParallaxIntensity string

const (
	ParallaxOff     ParallaxIntensity = "off"
	ParallaxSubtle  ParallaxIntensity = "subtle"
	ParallaxNormal  ParallaxIntensity = "normal"
	ParallaxIntense ParallaxIntensity = "intense"
)

// Valid reports whether the intensity is a known member of the enum.
func (p ParallaxIntensity) Valid() bool {
	switch p {
	case ParallaxOff, ParallaxSubtle, ParallaxNormal, ParallaxIntense:
		return true
	}
	return false
}

// EffectToggles are independent boolean flags, each gating an optional
// visual embellishment unrelated to the core animation style.
type EffectToggles struct {
	CustomCursor    bool `json:"customCursor"`
	AmbientLighting bool `json:"ambientLighting"`
	FilmGrain       bool `json:"filmGrain"`
}

// EffectsSettings is the single process-wide effects configuration.
type EffectsSettings struct {
	AnimationStyle    AnimationStyle    `json:"animationStyle"`
	TransitionSpeed   TransitionSpeed   `json:"transitionSpeed"`
	ParallaxIntensity ParallaxIntensity `json:"parallaxIntensity"`
	EffectToggles     EffectToggles     `json:"effectToggles"`
}

// DefaultSettings returns the compiled-in default configuration.
func DefaultSettings() EffectsSettings {
	return EffectsSettings{
		AnimationStyle:    StyleFadeUp,
		TransitionSpeed:   SpeedNormal,
		ParallaxIntensity: ParallaxNormal,
		EffectToggles: EffectToggles{
			CustomCursor:    true,
			AmbientLighting: true,
			FilmGrain:       false,
		},
	}
}

// Validate checks that every enum field holds a defined value.
func (s EffectsSettings) Validate() error {
	if !s.AnimationStyle.Valid() {
		return fmt.Errorf("invalid animationStyle: %q", s.AnimationStyle)
	}
	if !s.TransitionSpeed.Valid() {
		return fmt.Errorf("invalid transitionSpeed: %q", s.TransitionSpeed)
	}
	if !s.ParallaxIntensity.Valid() {
		return fmt.Errorf("invalid parallaxIntensity: %q", s.ParallaxIntensity)
	}
	return nil
}

// Setting keys accepted by Store.UpdateSetting. Toggle flags are addressed
// with a dotted key under effectToggles.
const (
	KeyAnimationStyle    = "animationStyle"
	KeyTransitionSpeed   = "transitionSpeed"
	KeyParallaxIntensity = "parallaxIntensity"

	KeyCustomCursor    = "effectToggles.customCursor"
	KeyAmbientLighting = "effectToggles.ambientLighting"
	KeyFilmGrain       = "effectToggles.filmGrain"
)

// Keys lists every settable key in display order.
func Keys() []string {
	return []string{
		KeyAnimationStyle,
		KeyTransitionSpeed,
		KeyParallaxIntensity,
		KeyCustomCursor,
		KeyAmbientLighting,
		KeyFilmGrain,
	}
}
