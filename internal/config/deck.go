// Package config defines the demo deck: the ordered sections the demo page
// scrolls through and the parallax layers drawn behind them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Deck describes one scrollable page.
type Deck struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
	Layers   []Layer   `yaml:"layers"`
}

// Section is one animated unit of the page. Body is markdown, rendered by
// the demo with glamour.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`

	// Height is the section's height in rows.
	Height int `yaml:"height"`

	// Threshold overrides the visibility threshold for this section.
	// Zero means the tracker default.
	Threshold float64 `yaml:"threshold,omitempty"`

	// TriggerOnce keeps the section visible after its first reveal.
	TriggerOnce bool `yaml:"trigger_once"`
}

// Layer is a parallax background layer.
type Layer struct {
	ID   string `yaml:"id"`
	Rune string `yaml:"rune"`

	// BaseDistance is the layer's full scroll travel, in rows.
	BaseDistance float64 `yaml:"base_distance"`
}

// DefaultDeck returns the built-in demo deck.
func DefaultDeck() Deck {
	return Deck{
		Title: "driftglass",
		Sections: []Section{
			{
				ID:          "viewfinder",
				Title:       "Viewfinder",
				Body:        "**driftglass** coordinates scroll-driven reveal animations.\n\nScroll with `j`/`k` or the arrow keys. Open the effects panel with `e`.",
				Height:      14,
				TriggerOnce: true,
			},
			{
				ID:     "aperture",
				Title:  "Aperture",
				Body:   "Each section registers itself with the visibility tracker and animates in once enough of it crosses the threshold.",
				Height: 12,
			},
			{
				ID:     "focal-length",
				Title:  "Focal Length",
				Body:   "The resolver is a pure function: style plus visibility in, opacity, offset, blur and scale out.",
				Height: 12,
			},
			{
				ID:     "shutter",
				Title:  "Shutter",
				Body:   "Transition speed only changes how long the tween runs, never the target state.",
				Height: 12,
			},
			{
				ID:          "darkroom",
				Title:       "Darkroom",
				Body:        "Settings persist to `.driftglass/settings.json` and reload live when edited from another terminal.",
				Height:      14,
				TriggerOnce: true,
			},
		},
		Layers: []Layer{
			{ID: "far", Rune: "·", BaseDistance: 18},
			{ID: "near", Rune: "✦", BaseDistance: 36},
		},
	}
}

// LoadDeck reads a deck from a YAML file. An empty path returns the default
// deck.
func LoadDeck(path string) (Deck, error) {
	if path == "" {
		return DefaultDeck(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("failed to read deck: %w", err)
	}

	var deck Deck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return Deck{}, fmt.Errorf("failed to parse deck: %w", err)
	}

	if err := deck.Validate(); err != nil {
		return Deck{}, err
	}
	return deck, nil
}

// Save writes the deck as YAML, mainly so `driftglass demo --write-deck`
// can emit a starting point for customization.
func (d Deck) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write deck: %w", err)
	}
	return nil
}

// Validate checks structural invariants: at least one section, unique
// non-empty ids, positive heights, thresholds inside [0, 1].
func (d Deck) Validate() error {
	if len(d.Sections) == 0 {
		return fmt.Errorf("deck has no sections")
	}

	seen := make(map[string]bool, len(d.Sections))
	for i, s := range d.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d has no id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true

		if s.Height <= 0 {
			return fmt.Errorf("section %q: height must be positive", s.ID)
		}
		if s.Threshold < 0 || s.Threshold > 1 {
			return fmt.Errorf("section %q: threshold must be in [0, 1]", s.ID)
		}
	}

	for i, l := range d.Layers {
		if l.ID == "" {
			return fmt.Errorf("layer %d has no id", i)
		}
		if l.BaseDistance < 0 {
			return fmt.Errorf("layer %q: base_distance must be non-negative", l.ID)
		}
	}
	return nil
}
