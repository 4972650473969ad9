package resolve

import "driftglass/internal/settings"

// IntensityMultiplier returns the scroll-offset scalar for a parallax
// intensity setting.
func IntensityMultiplier(intensity settings.ParallaxIntensity) float64 {
	switch intensity {
	case settings.ParallaxOff:
		return 0
	case settings.ParallaxSubtle:
		return 0.3
	case settings.ParallaxIntense:
		return 0.8
	default:
		return 0.5
	}
}

// ParallaxOffset computes the background translation for a layer. Unlike the
// enter/exit recipes this updates continuously with scroll progress and is
// not gated by visibility.
//
//	offset = scrollProgress * baseDistance * intensityMultiplier
//
// scrollProgress is expected in [0, 1]; baseDistance is the layer's full
// travel in presentation units.
func ParallaxOffset(scrollProgress, baseDistance float64, intensity settings.ParallaxIntensity) float64 {
	return scrollProgress * baseDistance * IntensityMultiplier(intensity)
}
