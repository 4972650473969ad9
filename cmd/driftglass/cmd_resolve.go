package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"driftglass/internal/resolve"
	"driftglass/internal/settings"
)

var (
	resolveHidden   bool
	resolveStyle    string
	resolveSpeed    string
	resolveProgress float64
	resolveDistance float64
)

// resolveCmd prints the resolver's output for a given input, as a debugging
// aid for consumers embedding the library.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved presentation for a settings/visibility pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings.NewStore(resolveSettingsPath(), logger).Settings()
		if resolveStyle != "" {
			if style := settings.AnimationStyle(resolveStyle); style.Valid() {
				s.AnimationStyle = style
			} else {
				return fmt.Errorf("invalid animation style %q", resolveStyle)
			}
		}
		if resolveSpeed != "" {
			if speed := settings.TransitionSpeed(resolveSpeed); speed.Valid() {
				s.TransitionSpeed = speed
			} else {
				return fmt.Errorf("invalid transition speed %q", resolveSpeed)
			}
		}

		p := resolve.Resolve(s, !resolveHidden)
		fmt.Printf("style=%s visible=%v\n", s.AnimationStyle, !resolveHidden)
		fmt.Printf("  opacity:  %.2f\n", p.Opacity)
		fmt.Printf("  offset:   (%.1f, %.1f)\n", p.OffsetX, p.OffsetY)
		fmt.Printf("  blur:     %.1f\n", p.Blur)
		fmt.Printf("  scale:    %.2f\n", p.Scale)
		fmt.Printf("  duration: %s\n", resolve.TransitionDuration(s.TransitionSpeed))

		offset := resolve.ParallaxOffset(resolveProgress, resolveDistance, s.ParallaxIntensity)
		fmt.Printf("  parallax: %.1f (progress=%.2f, distance=%.0f, intensity=%s)\n",
			offset, resolveProgress, resolveDistance, s.ParallaxIntensity)
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveHidden, "hidden", false, "resolve the hidden state instead of the visible one")
	resolveCmd.Flags().StringVar(&resolveStyle, "style", "", "override the stored animation style")
	resolveCmd.Flags().StringVar(&resolveSpeed, "speed", "", "override the stored transition speed")
	resolveCmd.Flags().Float64Var(&resolveProgress, "progress", 0.5, "scroll progress for the parallax sample")
	resolveCmd.Flags().Float64Var(&resolveDistance, "distance", 100, "layer base distance for the parallax sample")
}
