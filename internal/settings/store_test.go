package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.AnimationStyle != StyleFadeUp {
		t.Errorf("expected animationStyle=fade-up, got %s", s.AnimationStyle)
	}
	if s.TransitionSpeed != SpeedNormal {
		t.Errorf("expected transitionSpeed=normal, got %s", s.TransitionSpeed)
	}
	if s.ParallaxIntensity != ParallaxNormal {
		t.Errorf("expected parallaxIntensity=normal, got %s", s.ParallaxIntensity)
	}
	if !s.EffectToggles.CustomCursor || !s.EffectToggles.AmbientLighting || s.EffectToggles.FilmGrain {
		t.Errorf("unexpected default toggles: %+v", s.EffectToggles)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should validate: %v", err)
	}
}

func TestStore_FreshSessionUsesDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"), nil)
	if diff := cmp.Diff(DefaultSettings(), store.Settings()); diff != "" {
		t.Errorf("fresh store differs from defaults (-want +got):\n%s", diff)
	}
}

func TestStore_UpdateSetting(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"), nil)

	require.True(t, store.UpdateSetting(KeyAnimationStyle, "slide"))
	assert.Equal(t, StyleSlide, store.Settings().AnimationStyle)

	require.True(t, store.UpdateSetting(KeyTransitionSpeed, "slow"))
	assert.Equal(t, SpeedSlow, store.Settings().TransitionSpeed)

	require.True(t, store.UpdateSetting(KeyFilmGrain, "true"))
	assert.True(t, store.Settings().EffectToggles.FilmGrain)
}

func TestStore_RejectsInvalidValues(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"), nil)
	before := store.Settings()

	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid style", KeyAnimationStyle, "purple"},
		{"invalid speed", KeyTransitionSpeed, "warp"},
		{"invalid intensity", KeyParallaxIntensity, "extreme"},
		{"non-boolean toggle", KeyCustomCursor, "maybe"},
		{"unknown key", "animation_style", "slide"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, store.UpdateSetting(tc.key, tc.value))
			assert.Equal(t, before, store.Settings(), "store must be unchanged after rejection")
		})
	}
}

// Every settings object reachable through the public API stays total: all
// enum fields keep a defined value no matter what update sequence ran.
func TestStore_ConfigurationStaysTotal(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"), nil)

	sequence := []struct{ key, value string }{
		{KeyAnimationStyle, "blur-morph"},
		{KeyAnimationStyle, "bogus"},
		{KeyTransitionSpeed, "off"},
		{KeyParallaxIntensity, "nope"},
		{KeyAmbientLighting, "false"},
		{KeyParallaxIntensity, "intense"},
		{"noSuchKey", "1"},
	}
	for _, step := range sequence {
		store.UpdateSetting(step.key, step.value)
		require.NoError(t, store.Settings().Validate())
	}
}

func TestStore_PersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	store := NewStore(path, nil)
	require.True(t, store.UpdateSetting(KeyAnimationStyle, "scale"))
	require.True(t, store.UpdateSetting(KeyParallaxIntensity, "subtle"))
	require.True(t, store.UpdateSetting(KeyCustomCursor, "false"))

	reopened := NewStore(path, nil)
	if diff := cmp.Diff(store.Settings(), reopened.Settings()); diff != "" {
		t.Errorf("settings did not survive reload (-want +got):\n%s", diff)
	}
}

func TestStore_PartialFileFallsBackPerField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"transitionSpeed":"fast"}`), 0644))

	store := NewStore(path, nil)
	got := store.Settings()
	assert.Equal(t, SpeedFast, got.TransitionSpeed)
	assert.Equal(t, StyleFadeUp, got.AnimationStyle, "missing fields fall back to defaults")
	assert.True(t, got.EffectToggles.AmbientLighting)
}

func TestStore_CorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStore(path, nil)
	assert.Equal(t, DefaultSettings(), store.Settings())
}

func TestStore_PersistenceFailureIsNonFatal(t *testing.T) {
	// A regular file where the parent directory should be forces every
	// persist to fail; the in-memory store must keep working.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	store := NewStore(filepath.Join(blocker, "settings.json"), nil)

	require.True(t, store.UpdateSetting(KeyAnimationStyle, "clip-reveal"))
	assert.Equal(t, StyleClipReveal, store.Settings().AnimationStyle)
}

func TestStore_SubscribersNotifiedSynchronously(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"), nil)

	var seen []EffectsSettings
	id := store.Subscribe(func(s EffectsSettings) { seen = append(seen, s) })

	store.UpdateSetting(KeyAnimationStyle, "slide")
	require.Len(t, seen, 1)
	assert.Equal(t, StyleSlide, seen[0].AnimationStyle)

	store.UpdateSetting(KeyAnimationStyle, "purple")
	assert.Len(t, seen, 1, "rejected updates must not notify")

	store.ResetToDefaults()
	require.Len(t, seen, 2)
	assert.Equal(t, DefaultSettings(), seen[1])

	store.Unsubscribe(id)
	store.UpdateSetting(KeyTransitionSpeed, "fast")
	assert.Len(t, seen, 2, "unsubscribed callbacks must not fire")
}

func TestStore_ResetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewStore(path, nil)
	store.UpdateSetting(KeyTransitionSpeed, "slow")
	store.ResetToDefaults()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk EffectsSettings
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, DefaultSettings(), onDisk)
}

func TestSettings_PersistedLayout(t *testing.T) {
	data, err := json.Marshal(DefaultSettings())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"animationStyle", "transitionSpeed", "parallaxIntensity", "effectToggles"} {
		assert.Contains(t, raw, key)
	}
}
